package entity

const ProgressNotStarted = "Not Started"

type Career struct {
	ID        int    `gorm:"primaryKey"`
	UserID    int    `gorm:"not null;index"`
	Goal      string `gorm:"not null"`
	Progress  string `gorm:"not null"` // Free-text, e.g. "Not Started" or "40%"
	Resources string `gorm:"not null"` // JSON-encoded []string
	CreatedAt int64  `gorm:"not null"`
	UpdatedAt int64  `gorm:"not null"`
}
