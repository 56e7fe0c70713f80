package handler

import (
	"net/http"
	"strconv"

	"sathi/cmd/internal/contract"
	"sathi/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type CalendarService interface {
	CreateEvent(req *contract.EventRequest) (*contract.EventResponse, apierror.ErrorResponse)
	GetDailyEvents(userID int) ([]*contract.EventResponse, apierror.ErrorResponse)
	GetWeeklyEvents(userID int) ([]*contract.EventResponse, apierror.ErrorResponse)
	UpdateEvent(eventID int, req *contract.UpdateEventRequest) (*contract.EventResponse, apierror.ErrorResponse)
	DeleteEvent(eventID int) apierror.ErrorResponse
}

type DefaultCalendarRoute struct {
	CalendarService CalendarService
}

func NewCalendarDefault(calendarService CalendarService) *DefaultCalendarRoute {
	return &DefaultCalendarRoute{CalendarService: calendarService}
}

func (r *DefaultCalendarRoute) CreateEvent(c echo.Context) error {
	var req contract.EventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	event, apierr := r.CalendarService.CreateEvent(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, event)
}

func (r *DefaultCalendarRoute) GetDailyEvents(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("user_id", "int"))
	}

	events, apierr := r.CalendarService.GetDailyEvents(userID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, events)
}

func (r *DefaultCalendarRoute) GetWeeklyEvents(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("user_id", "int"))
	}

	events, apierr := r.CalendarService.GetWeeklyEvents(userID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, events)
}

func (r *DefaultCalendarRoute) UpdateEvent(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.UpdateEventRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	event, apierr := r.CalendarService.UpdateEvent(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, event)
}

func (r *DefaultCalendarRoute) DeleteEvent(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	if apierr := r.CalendarService.DeleteEvent(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"detail": "Event deleted successfully"})
}
