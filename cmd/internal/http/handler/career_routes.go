package handler

import (
	"net/http"
	"strconv"

	"sathi/cmd/internal/contract"
	"sathi/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type CareerService interface {
	CreateGoal(req *contract.GoalRequest) (*contract.GoalResponse, apierror.ErrorResponse)
	GetGoals() ([]*contract.GoalResponse, apierror.ErrorResponse)
	UpdateGoal(goalID int, req *contract.UpdateGoalRequest) (*contract.GoalResponse, apierror.ErrorResponse)
	DeleteGoal(goalID int) apierror.ErrorResponse
}

type DefaultCareerRoute struct {
	CareerService CareerService
}

func NewCareerDefault(careerService CareerService) *DefaultCareerRoute {
	return &DefaultCareerRoute{CareerService: careerService}
}

func (r *DefaultCareerRoute) CreateGoal(c echo.Context) error {
	var req contract.GoalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	goal, apierr := r.CareerService.CreateGoal(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, goal)
}

func (r *DefaultCareerRoute) GetGoals(c echo.Context) error {
	goals, apierr := r.CareerService.GetGoals()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, goals)
}

func (r *DefaultCareerRoute) UpdateGoal(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.UpdateGoalRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	goal, apierr := r.CareerService.UpdateGoal(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, goal)
}

func (r *DefaultCareerRoute) DeleteGoal(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	if apierr := r.CareerService.DeleteGoal(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"detail": "Career goal deleted successfully"})
}
