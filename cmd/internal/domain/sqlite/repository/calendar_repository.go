package repository

import (
	"errors"

	"sathi/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultCalendarRepository struct {
	db *gorm.DB
}

func NewCalendarRepository(db *gorm.DB) *DefaultCalendarRepository {
	return &DefaultCalendarRepository{db: db}
}

// FindOverlapping returns the user's events whose interval intersects
// [windowStart, windowEnd), ordered by start time.
func (d *DefaultCalendarRepository) FindOverlapping(userID int, windowStart, windowEnd int64) ([]*entity.CalendarEvent, error) {
	var events []*entity.CalendarEvent

	err := d.db.
		Where("user_id = ?", userID).
		Where("start_time < ?", windowEnd).
		Where("end_time > ?", windowStart).
		Order("start_time asc").
		Find(&events).Error

	if err != nil {
		return nil, err
	}
	return events, nil
}

func (d *DefaultCalendarRepository) FindByID(id int) (*entity.CalendarEvent, error) {
	var event entity.CalendarEvent
	err := d.db.First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (d *DefaultCalendarRepository) Save(event *entity.CalendarEvent) error {
	return d.db.Save(event).Error
}

func (d *DefaultCalendarRepository) Delete(event *entity.CalendarEvent) error {
	return d.db.Delete(event).Error
}
