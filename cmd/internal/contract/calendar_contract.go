package contract

type EventResponse struct {
	ID          int     `json:"id"`
	UserID      int     `json:"user_id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Category    *string `json:"category,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type EventRequest struct {
	UserID      int     `json:"user_id" validate:"required,gt=0"`
	Title       string  `json:"title" validate:"required,min=1,max=120"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	StartTime   string  `json:"start_time" validate:"required,iso8601"`
	EndTime     string  `json:"end_time" validate:"required,iso8601"`
	Category    *string `json:"category" validate:"omitempty,max=60"`
}

type UpdateEventRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=120"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	StartTime   *string `json:"start_time" validate:"omitempty,iso8601"`
	EndTime     *string `json:"end_time" validate:"omitempty,iso8601"`
	Category    *string `json:"category" validate:"omitempty,max=60"`
}
