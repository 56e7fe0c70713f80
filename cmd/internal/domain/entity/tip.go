package entity

type Tip struct {
	ID      int    `gorm:"primaryKey"`
	Topic   string `gorm:"not null;index"`
	Content string `gorm:"not null"`
}
