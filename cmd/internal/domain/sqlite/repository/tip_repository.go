package repository

import (
	"sathi/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultTipRepository struct {
	db *gorm.DB
}

func NewTipRepository(db *gorm.DB) *DefaultTipRepository {
	return &DefaultTipRepository{db: db}
}

func (d *DefaultTipRepository) FindByTopic(topic string) ([]*entity.Tip, error) {
	var tips []*entity.Tip
	err := d.db.Where("topic = ?", topic).Find(&tips).Error
	if err != nil {
		return nil, err
	}
	return tips, nil
}

func (d *DefaultTipRepository) Save(tip *entity.Tip) error {
	return d.db.Save(tip).Error
}
