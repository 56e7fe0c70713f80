package contract

type NoteResponse struct {
	ID        int      `json:"id"`
	UserID    int      `json:"user_id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

type NoteRequest struct {
	UserID  int      `json:"user_id" validate:"required,gt=0"`
	Title   string   `json:"title" validate:"required,min=1,max=120"`
	Content string   `json:"content" validate:"required,max=1000000"`
	Tags    []string `json:"tags" validate:"omitempty,max=20,nodupes,dive,required,min=1,max=30"`
}

type UpdateNoteRequest struct {
	Title   *string  `json:"title" validate:"omitempty,min=1,max=120"`
	Content *string  `json:"content" validate:"omitempty,max=1000000"`
	Tags    []string `json:"tags" validate:"omitempty,max=20,nodupes,dive,required,min=1,max=30"`
}
