package contract

type GoalResponse struct {
	ID        int      `json:"id"`
	UserID    int      `json:"user_id"`
	Goal      string   `json:"goal"`
	Progress  string   `json:"progress"`
	Resources []string `json:"resources"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

type GoalRequest struct {
	UserID    int      `json:"user_id" validate:"required,gt=0"`
	Goal      string   `json:"goal" validate:"required,min=1,max=200"`
	Progress  string   `json:"progress" validate:"omitempty,max=60"`
	Resources []string `json:"resources" validate:"omitempty,max=50,nodupes,dive,required,max=500"`
}

type UpdateGoalRequest struct {
	Goal      *string  `json:"goal" validate:"omitempty,min=1,max=200"`
	Progress  *string  `json:"progress" validate:"omitempty,max=60"`
	Resources []string `json:"resources" validate:"omitempty,max=50,nodupes,dive,required,max=500"`
}
