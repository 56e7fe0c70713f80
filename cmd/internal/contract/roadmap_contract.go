package contract

type Milestone struct {
	Title       string  `json:"title" validate:"required,min=1,max=120"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Completed   bool    `json:"completed"`
}

type RoadmapResponse struct {
	ID          int         `json:"id"`
	UserID      int         `json:"user_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Milestones  []Milestone `json:"milestones"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
}

type RoadmapRequest struct {
	UserID      int         `json:"user_id" validate:"required,gt=0"`
	Title       string      `json:"title" validate:"required,min=1,max=120"`
	Description string      `json:"description" validate:"max=2000"`
	Milestones  []Milestone `json:"milestones" validate:"required,dive"`
}

type UpdateRoadmapRequest struct {
	Title       *string     `json:"title" validate:"omitempty,min=1,max=120"`
	Description *string     `json:"description" validate:"omitempty,max=2000"`
	Milestones  []Milestone `json:"milestones" validate:"omitempty,dive"`
}
