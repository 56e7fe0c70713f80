package entity

type Note struct {
	ID        int    `gorm:"primaryKey"`
	UserID    int    `gorm:"not null;index"`
	Title     string `gorm:"not null"`
	Content   string `gorm:"not null"`
	Tags      string `gorm:"not null;index"` // Comma-joined, lowercase
	CreatedAt int64  `gorm:"not null"`
	UpdatedAt int64  `gorm:"not null"`
}
