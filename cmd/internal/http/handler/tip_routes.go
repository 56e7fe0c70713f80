package handler

import (
	"net/http"
	"strings"

	"sathi/cmd/internal/contract"
	"sathi/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type TipService interface {
	GetTipsByTopic(topic string) ([]*contract.TipResponse, apierror.ErrorResponse)
	CreateTip(req *contract.TipRequest) (*contract.TipResponse, apierror.ErrorResponse)
}

type DefaultTipRoute struct {
	TipService TipService
}

func NewTipDefault(tipService TipService) *DefaultTipRoute {
	return &DefaultTipRoute{TipService: tipService}
}

func (r *DefaultTipRoute) GetTips(c echo.Context) error {
	topic := strings.TrimSpace(c.QueryParam("topic"))
	if topic == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewSimple(http.StatusBadRequest, "Query parameter 'topic' is required"))
	}

	tips, apierr := r.TipService.GetTipsByTopic(topic)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, tips)
}

// CreateTip is a seeding route; tips are otherwise read-only.
func (r *DefaultTipRoute) CreateTip(c echo.Context) error {
	var req contract.TipRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	tip, apierr := r.TipService.CreateTip(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, tip)
}
