package repository

import (
	"errors"

	"sathi/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultReminderRepository struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) *DefaultReminderRepository {
	return &DefaultReminderRepository{db: db}
}

func (d *DefaultReminderRepository) FindByUser(userID int, kind entity.ReminderKind) ([]*entity.Reminder, error) {
	var reminders []*entity.Reminder
	err := d.db.
		Where("user_id = ?", userID).
		Where("kind = ?", kind).
		Find(&reminders).Error

	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (d *DefaultReminderRepository) FindByID(id int) (*entity.Reminder, error) {
	var reminder entity.Reminder
	err := d.db.First(&reminder, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &reminder, nil
}

func (d *DefaultReminderRepository) Save(reminder *entity.Reminder) error {
	return d.db.Save(reminder).Error
}

func (d *DefaultReminderRepository) Delete(reminder *entity.Reminder) error {
	return d.db.Delete(reminder).Error
}
