package repository

import (
	"errors"

	"sathi/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultCareerRepository struct {
	db *gorm.DB
}

func NewCareerRepository(db *gorm.DB) *DefaultCareerRepository {
	return &DefaultCareerRepository{db: db}
}

func (d *DefaultCareerRepository) FindAll() ([]*entity.Career, error) {
	var goals []*entity.Career
	err := d.db.Find(&goals).Error
	if err != nil {
		return nil, err
	}
	return goals, nil
}

func (d *DefaultCareerRepository) FindByID(id int) (*entity.Career, error) {
	var goal entity.Career
	err := d.db.First(&goal, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (d *DefaultCareerRepository) Save(goal *entity.Career) error {
	return d.db.Save(goal).Error
}

func (d *DefaultCareerRepository) Delete(goal *entity.Career) error {
	return d.db.Delete(goal).Error
}
