package service

import (
	"sathi/cmd/internal/contract"
	"sathi/cmd/internal/domain/entity"
	"sathi/cmd/internal/utils"
	"sathi/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type ReminderRepository interface {
	FindByUser(userID int, kind entity.ReminderKind) ([]*entity.Reminder, error)
	FindByID(id int) (*entity.Reminder, error)
	Save(reminder *entity.Reminder) error
	Delete(reminder *entity.Reminder) error
}

// DefaultReminderService backs both the reminder and follow-up routes.
// The two differ only in the kind column they read and write.
type DefaultReminderService struct {
	ReminderRepo ReminderRepository
	Validate     *validator.Validate
}

func NewReminderService(reminderRepo ReminderRepository, validate *validator.Validate) *DefaultReminderService {
	return &DefaultReminderService{ReminderRepo: reminderRepo, Validate: validate}
}

func (r *DefaultReminderService) GetReminders(userID int) ([]*contract.ReminderResponse, apierror.ErrorResponse) {
	return r.listByKind(userID, entity.ReminderKindDefault, apierror.NoRemindersFoundError)
}

func (r *DefaultReminderService) GetFollowups(userID int) ([]*contract.ReminderResponse, apierror.ErrorResponse) {
	return r.listByKind(userID, entity.ReminderKindFollowup, apierror.NoFollowupsFoundError)
}

func (r *DefaultReminderService) CreateReminder(req *contract.ReminderRequest) (*contract.ReminderResponse, apierror.ErrorResponse) {
	return r.create(req, entity.ReminderKindDefault)
}

func (r *DefaultReminderService) CreateFollowup(req *contract.ReminderRequest) (*contract.ReminderResponse, apierror.ErrorResponse) {
	return r.create(req, entity.ReminderKindFollowup)
}

func (r *DefaultReminderService) UpdateReminder(reminderID int, req *contract.UpdateReminderRequest) (*contract.ReminderResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := r.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	reminder, err := r.ReminderRepo.FindByID(reminderID)
	if err != nil {
		log.Errorf("failed to fetch reminder: %v", err)
		return nil, apierror.InternalServerError
	}

	if reminder == nil {
		return nil, apierror.ReminderNotFoundError
	}

	if req.Title != nil {
		reminder.Title = *req.Title
	}
	if req.Description != nil {
		reminder.Description = req.Description
	}
	if req.IsRecurring != nil {
		reminder.IsRecurring = *req.IsRecurring
	}
	if req.DueDate != nil {
		// The iso8601 validator already vouched for the format.
		due, _ := utils.FromEpoch(*req.DueDate)
		reminder.ReminderTime = due
	}

	reminder.UpdatedAt = utils.NowUTC()
	if err = r.ReminderRepo.Save(reminder); err != nil {
		log.Errorf("failed to update reminder: %v", err)
		return nil, apierror.InternalServerError
	}
	return toReminderResponse(reminder), nil
}

func (r *DefaultReminderService) DeleteReminder(reminderID int) apierror.ErrorResponse {
	reminder, err := r.ReminderRepo.FindByID(reminderID)
	if err != nil {
		log.Errorf("failed to fetch reminder: %v", err)
		return apierror.InternalServerError
	}

	if reminder == nil {
		return apierror.ReminderNotFoundError
	}

	if err = r.ReminderRepo.Delete(reminder); err != nil {
		log.Errorf("failed to delete reminder: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func (r *DefaultReminderService) listByKind(userID int, kind entity.ReminderKind, empty apierror.ErrorResponse) ([]*contract.ReminderResponse, apierror.ErrorResponse) {
	reminders, err := r.ReminderRepo.FindByUser(userID, kind)
	if err != nil {
		log.Errorf("failed to fetch reminders for user %d: %v", userID, err)
		return nil, apierror.InternalServerError
	}

	if len(reminders) == 0 {
		return nil, empty
	}

	resp := make([]*contract.ReminderResponse, len(reminders))
	for i, reminder := range reminders {
		resp[i] = toReminderResponse(reminder)
	}
	return resp, nil
}

func (r *DefaultReminderService) create(req *contract.ReminderRequest, kind entity.ReminderKind) (*contract.ReminderResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := r.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	now := utils.NowUTC()

	// An omitted due date means "right now".
	due := now
	if req.DueDate != "" {
		due, _ = utils.FromEpoch(req.DueDate)
	}

	reminder := &entity.Reminder{
		UserID:       req.UserID,
		Title:        req.Title,
		Description:  req.Description,
		IsRecurring:  req.IsRecurring,
		Kind:         kind,
		ReminderTime: due,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := r.ReminderRepo.Save(reminder); err != nil {
		log.Errorf("failed to save reminder: %v", err)
		return nil, apierror.InternalServerError
	}
	return toReminderResponse(reminder), nil
}

func toReminderResponse(reminder *entity.Reminder) *contract.ReminderResponse {
	return &contract.ReminderResponse{
		ID:           reminder.ID,
		UserID:       reminder.UserID,
		Title:        reminder.Title,
		Description:  reminder.Description,
		IsRecurring:  reminder.IsRecurring,
		ReminderTime: utils.FormatEpoch(reminder.ReminderTime),
		CreatedAt:    utils.FormatEpoch(reminder.CreatedAt),
		UpdatedAt:    utils.FormatEpoch(reminder.UpdatedAt),
	}
}
