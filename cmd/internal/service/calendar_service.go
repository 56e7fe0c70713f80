package service

import (
	"time"

	"sathi/cmd/internal/contract"
	"sathi/cmd/internal/domain/entity"
	"sathi/cmd/internal/utils"
	"sathi/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type CalendarRepository interface {
	FindOverlapping(userID int, windowStart, windowEnd int64) ([]*entity.CalendarEvent, error)
	FindByID(id int) (*entity.CalendarEvent, error)
	Save(event *entity.CalendarEvent) error
	Delete(event *entity.CalendarEvent) error
}

type DefaultCalendarService struct {
	CalendarRepo CalendarRepository
	Validate     *validator.Validate
}

func NewCalendarService(calendarRepo CalendarRepository, validate *validator.Validate) *DefaultCalendarService {
	return &DefaultCalendarService{CalendarRepo: calendarRepo, Validate: validate}
}

func (s *DefaultCalendarService) CreateEvent(req *contract.EventRequest) (*contract.EventResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	begin, _ := utils.FromEpoch(req.StartTime)
	end, _ := utils.FromEpoch(req.EndTime)
	if end < begin {
		return nil, apierror.InvalidIntervalError
	}

	now := utils.NowUTC()
	event := &entity.CalendarEvent{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		StartTime:   begin,
		EndTime:     end,
		Category:    req.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.CalendarRepo.Save(event); err != nil {
		log.Errorf("failed to save event: %v", err)
		return nil, apierror.InternalServerError
	}
	return toEventResponse(event), nil
}

// GetDailyEvents returns the user's events intersecting the current
// UTC day.
func (s *DefaultCalendarService) GetDailyEvents(userID int) ([]*contract.EventResponse, apierror.ErrorResponse) {
	dayStart := utils.StartOfDay(utils.NowUTC())
	dayEnd := dayStart + 24*time.Hour.Milliseconds()
	return s.listWindow(userID, dayStart, dayEnd, apierror.NoDailyEventsError)
}

// GetWeeklyEvents returns the user's events intersecting the 7-day
// window starting on the most recent Monday, UTC.
func (s *DefaultCalendarService) GetWeeklyEvents(userID int) ([]*contract.EventResponse, apierror.ErrorResponse) {
	weekStart := utils.StartOfWeek(utils.NowUTC())
	weekEnd := weekStart + 7*24*time.Hour.Milliseconds()
	return s.listWindow(userID, weekStart, weekEnd, apierror.NoWeeklyEventsError)
}

func (s *DefaultCalendarService) UpdateEvent(eventID int, req *contract.UpdateEventRequest) (*contract.EventResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	event, err := s.CalendarRepo.FindByID(eventID)
	if err != nil {
		log.Errorf("failed to fetch event: %v", err)
		return nil, apierror.InternalServerError
	}

	if event == nil {
		return nil, apierror.EventNotFoundError
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = req.Description
	}
	if req.StartTime != nil {
		event.StartTime, _ = utils.FromEpoch(*req.StartTime)
	}
	if req.EndTime != nil {
		event.EndTime, _ = utils.FromEpoch(*req.EndTime)
	}
	if req.Category != nil {
		event.Category = req.Category
	}

	if event.EndTime < event.StartTime {
		return nil, apierror.InvalidIntervalError
	}

	event.UpdatedAt = utils.NowUTC()
	if err = s.CalendarRepo.Save(event); err != nil {
		log.Errorf("failed to update event: %v", err)
		return nil, apierror.InternalServerError
	}
	return toEventResponse(event), nil
}

func (s *DefaultCalendarService) DeleteEvent(eventID int) apierror.ErrorResponse {
	event, err := s.CalendarRepo.FindByID(eventID)
	if err != nil {
		log.Errorf("failed to fetch event: %v", err)
		return apierror.InternalServerError
	}

	if event == nil {
		return apierror.EventNotFoundError
	}

	if err = s.CalendarRepo.Delete(event); err != nil {
		log.Errorf("failed to delete event: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func (s *DefaultCalendarService) listWindow(userID int, windowStart, windowEnd int64, empty apierror.ErrorResponse) ([]*contract.EventResponse, apierror.ErrorResponse) {
	events, err := s.CalendarRepo.FindOverlapping(userID, windowStart, windowEnd)
	if err != nil {
		log.Errorf("failed to fetch events for user %d: %v", userID, err)
		return nil, apierror.InternalServerError
	}

	if len(events) == 0 {
		return nil, empty
	}

	resp := make([]*contract.EventResponse, len(events))
	for i, event := range events {
		resp[i] = toEventResponse(event)
	}
	return resp, nil
}

func toEventResponse(event *entity.CalendarEvent) *contract.EventResponse {
	return &contract.EventResponse{
		ID:          event.ID,
		UserID:      event.UserID,
		Title:       event.Title,
		Description: event.Description,
		StartTime:   utils.FormatEpoch(event.StartTime),
		EndTime:     utils.FormatEpoch(event.EndTime),
		Category:    event.Category,
		CreatedAt:   utils.FormatEpoch(event.CreatedAt),
		UpdatedAt:   utils.FormatEpoch(event.UpdatedAt),
	}
}
