package repository

import (
	"errors"

	"sathi/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultRoadmapRepository struct {
	db *gorm.DB
}

func NewRoadmapRepository(db *gorm.DB) *DefaultRoadmapRepository {
	return &DefaultRoadmapRepository{db: db}
}

func (d *DefaultRoadmapRepository) FindByUserID(userID int) (*entity.Roadmap, error) {
	var roadmap entity.Roadmap
	err := d.db.Where("user_id = ?", userID).First(&roadmap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &roadmap, nil
}

func (d *DefaultRoadmapRepository) Save(roadmap *entity.Roadmap) error {
	return d.db.Save(roadmap).Error
}

func (d *DefaultRoadmapRepository) Delete(roadmap *entity.Roadmap) error {
	return d.db.Delete(roadmap).Error
}
