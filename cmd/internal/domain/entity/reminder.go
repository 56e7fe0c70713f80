package entity

type ReminderKind string

const (
	ReminderKindDefault  ReminderKind = "REMINDER"
	ReminderKindFollowup ReminderKind = "FOLLOWUP"
)

type Reminder struct {
	ID           int          `gorm:"primaryKey"`
	UserID       int          `gorm:"not null;index"`
	Title        string       `gorm:"not null"`
	Description  *string
	IsRecurring  bool         `gorm:"not null"`
	Kind         ReminderKind `gorm:"not null;index"`
	ReminderTime int64        `gorm:"not null"` // Defaults to the creation instant
	CreatedAt    int64        `gorm:"not null"`
	UpdatedAt    int64        `gorm:"not null"`
}
