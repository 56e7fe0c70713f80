package contract

type ReminderResponse struct {
	ID           int     `json:"id"`
	UserID       int     `json:"user_id"`
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
	IsRecurring  bool    `json:"is_recurring"`
	ReminderTime string  `json:"reminder_time"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// ReminderRequest is shared by the reminder and follow-up creation
// routes; both write the same table.
type ReminderRequest struct {
	UserID      int     `json:"user_id" validate:"required,gt=0"`
	Title       string  `json:"title" validate:"required,min=1,max=120"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	IsRecurring bool    `json:"is_recurring"`
	DueDate     string  `json:"due_date" validate:"omitempty,iso8601"`
}

type UpdateReminderRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=120"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	IsRecurring *bool   `json:"is_recurring"`
	DueDate     *string `json:"due_date" validate:"omitempty,iso8601"`
}
