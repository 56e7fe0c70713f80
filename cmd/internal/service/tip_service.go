package service

import (
	"sathi/cmd/internal/contract"
	"sathi/cmd/internal/domain/entity"
	"sathi/cmd/internal/utils"
	"sathi/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type TipRepository interface {
	FindByTopic(topic string) ([]*entity.Tip, error)
	Save(tip *entity.Tip) error
}

// DefaultTipService is read-only from the API's point of view;
// CreateTip exists for seeding content.
type DefaultTipService struct {
	TipRepo  TipRepository
	Validate *validator.Validate
}

func NewTipService(tipRepo TipRepository, validate *validator.Validate) *DefaultTipService {
	return &DefaultTipService{TipRepo: tipRepo, Validate: validate}
}

func (s *DefaultTipService) GetTipsByTopic(topic string) ([]*contract.TipResponse, apierror.ErrorResponse) {
	tips, err := s.TipRepo.FindByTopic(topic)
	if err != nil {
		log.Errorf("failed to fetch tips for topic %q: %v", topic, err)
		return nil, apierror.InternalServerError
	}

	if len(tips) == 0 {
		return nil, apierror.NoTipsFoundError
	}

	resp := make([]*contract.TipResponse, len(tips))
	for i, tip := range tips {
		resp[i] = toTipResponse(tip)
	}
	return resp, nil
}

func (s *DefaultTipService) CreateTip(req *contract.TipRequest) (*contract.TipResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	tip := &entity.Tip{
		Topic:   req.Topic,
		Content: req.Content,
	}

	if err := s.TipRepo.Save(tip); err != nil {
		log.Errorf("failed to save tip: %v", err)
		return nil, apierror.InternalServerError
	}
	return toTipResponse(tip), nil
}

func toTipResponse(tip *entity.Tip) *contract.TipResponse {
	return &contract.TipResponse{
		ID:      tip.ID,
		Topic:   tip.Topic,
		Content: tip.Content,
	}
}
