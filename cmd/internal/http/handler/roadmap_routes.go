package handler

import (
	"net/http"
	"strconv"

	"sathi/cmd/internal/contract"
	"sathi/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type RoadmapService interface {
	CreateRoadmap(req *contract.RoadmapRequest) (*contract.RoadmapResponse, apierror.ErrorResponse)
	GetRoadmap(userID int) (*contract.RoadmapResponse, apierror.ErrorResponse)
	UpdateRoadmap(userID int, req *contract.UpdateRoadmapRequest) (*contract.RoadmapResponse, apierror.ErrorResponse)
	DeleteRoadmap(userID int) apierror.ErrorResponse
}

type DefaultRoadmapRoute struct {
	RoadmapService RoadmapService
}

func NewRoadmapDefault(roadmapService RoadmapService) *DefaultRoadmapRoute {
	return &DefaultRoadmapRoute{RoadmapService: roadmapService}
}

func (r *DefaultRoadmapRoute) CreateRoadmap(c echo.Context) error {
	var req contract.RoadmapRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	roadmap, apierr := r.RoadmapService.CreateRoadmap(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, roadmap)
}

func (r *DefaultRoadmapRoute) GetRoadmap(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("user_id", "int"))
	}

	roadmap, apierr := r.RoadmapService.GetRoadmap(userID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, roadmap)
}

func (r *DefaultRoadmapRoute) UpdateRoadmap(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("user_id", "int"))
	}

	var req contract.UpdateRoadmapRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	roadmap, apierr := r.RoadmapService.UpdateRoadmap(userID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, roadmap)
}

func (r *DefaultRoadmapRoute) DeleteRoadmap(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("user_id", "int"))
	}

	if apierr := r.RoadmapService.DeleteRoadmap(userID); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"detail": "Roadmap deleted successfully"})
}
