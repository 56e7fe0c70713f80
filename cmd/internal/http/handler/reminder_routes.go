package handler

import (
	"net/http"
	"strconv"

	"sathi/cmd/internal/contract"
	"sathi/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ReminderService interface {
	GetReminders(userID int) ([]*contract.ReminderResponse, apierror.ErrorResponse)
	GetFollowups(userID int) ([]*contract.ReminderResponse, apierror.ErrorResponse)
	CreateReminder(req *contract.ReminderRequest) (*contract.ReminderResponse, apierror.ErrorResponse)
	CreateFollowup(req *contract.ReminderRequest) (*contract.ReminderResponse, apierror.ErrorResponse)
	UpdateReminder(reminderID int, req *contract.UpdateReminderRequest) (*contract.ReminderResponse, apierror.ErrorResponse)
	DeleteReminder(reminderID int) apierror.ErrorResponse
}

// DefaultReminderRoute serves both /reminders and /followups.
type DefaultReminderRoute struct {
	ReminderService ReminderService
}

func NewReminderDefault(reminderService ReminderService) *DefaultReminderRoute {
	return &DefaultReminderRoute{ReminderService: reminderService}
}

func (r *DefaultReminderRoute) GetReminders(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("user_id", "int"))
	}

	reminders, apierr := r.ReminderService.GetReminders(userID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, reminders)
}

func (r *DefaultReminderRoute) GetFollowups(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("user_id", "int"))
	}

	followups, apierr := r.ReminderService.GetFollowups(userID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, followups)
}

func (r *DefaultReminderRoute) CreateReminder(c echo.Context) error {
	var req contract.ReminderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	reminder, apierr := r.ReminderService.CreateReminder(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, reminder)
}

func (r *DefaultReminderRoute) CreateFollowup(c echo.Context) error {
	var req contract.ReminderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	followup, apierr := r.ReminderService.CreateFollowup(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, followup)
}

func (r *DefaultReminderRoute) UpdateReminder(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.UpdateReminderRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	reminder, apierr := r.ReminderService.UpdateReminder(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, reminder)
}

func (r *DefaultReminderRoute) DeleteReminder(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	if apierr := r.ReminderService.DeleteReminder(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"detail": "Reminder deleted successfully"})
}
