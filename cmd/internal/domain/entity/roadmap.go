package entity

// Roadmap is at most one per user, enforced by the unique index.
type Roadmap struct {
	ID          int    `gorm:"primaryKey"`
	UserID      int    `gorm:"not null;uniqueIndex"`
	Title       string `gorm:"not null"`
	Description string `gorm:"not null"`
	Milestones  string `gorm:"not null"` // JSON-encoded, ordered
	CreatedAt   int64  `gorm:"not null"`
	UpdatedAt   int64  `gorm:"not null"`
}
