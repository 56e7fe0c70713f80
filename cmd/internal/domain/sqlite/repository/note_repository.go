package repository

import (
	"errors"

	"sathi/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultNoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *DefaultNoteRepository {
	return &DefaultNoteRepository{db: db}
}

// FindAll returns every note, or only the notes carrying the given
// tag when one is provided. Insertion order.
func (d *DefaultNoteRepository) FindAll(tag string) ([]*entity.Note, error) {
	var notes []*entity.Note

	query := d.db
	if tag != "" {
		// Exact tag match within the comma-joined column
		query = query.Where("(',' || tags || ',') LIKE ?", "%,"+tag+",%")
	}

	err := query.Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (d *DefaultNoteRepository) FindByID(id int) (*entity.Note, error) {
	var note entity.Note
	err := d.db.First(&note, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (d *DefaultNoteRepository) Save(note *entity.Note) error {
	return d.db.Save(note).Error
}

func (d *DefaultNoteRepository) Delete(note *entity.Note) error {
	return d.db.Delete(note).Error
}
