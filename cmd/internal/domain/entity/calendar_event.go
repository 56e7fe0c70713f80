package entity

type CalendarEvent struct {
	ID          int    `gorm:"primaryKey"`
	UserID      int    `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Description *string
	StartTime   int64  `gorm:"not null"`
	EndTime     int64  `gorm:"not null"` // Never before StartTime
	Category    *string // For color-coded categories
	CreatedAt   int64  `gorm:"not null"`
	UpdatedAt   int64  `gorm:"not null"`
}
