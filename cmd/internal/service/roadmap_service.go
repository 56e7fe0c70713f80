package service

import (
	"encoding/json"

	"sathi/cmd/internal/contract"
	"sathi/cmd/internal/domain/entity"
	"sathi/cmd/internal/utils"
	"sathi/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type RoadmapRepository interface {
	FindByUserID(userID int) (*entity.Roadmap, error)
	Save(roadmap *entity.Roadmap) error
	Delete(roadmap *entity.Roadmap) error
}

// DefaultRoadmapService keys everything by user id; a user owns at
// most one roadmap.
type DefaultRoadmapService struct {
	RoadmapRepo RoadmapRepository
	Validate    *validator.Validate
}

func NewRoadmapService(roadmapRepo RoadmapRepository, validate *validator.Validate) *DefaultRoadmapService {
	return &DefaultRoadmapService{RoadmapRepo: roadmapRepo, Validate: validate}
}

func (s *DefaultRoadmapService) CreateRoadmap(req *contract.RoadmapRequest) (*contract.RoadmapResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	existing, err := s.RoadmapRepo.FindByUserID(req.UserID)
	if err != nil {
		log.Errorf("failed to check roadmap for user %d: %v", req.UserID, err)
		return nil, apierror.InternalServerError
	}

	if existing != nil {
		return nil, apierror.RoadmapExistsError
	}

	now := utils.NowUTC()
	roadmap := &entity.Roadmap{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Milestones:  joinMilestones(req.Milestones),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err = s.RoadmapRepo.Save(roadmap); err != nil {
		log.Errorf("failed to save roadmap: %v", err)
		return nil, apierror.InternalServerError
	}
	return toRoadmapResponse(roadmap), nil
}

func (s *DefaultRoadmapService) GetRoadmap(userID int) (*contract.RoadmapResponse, apierror.ErrorResponse) {
	roadmap, err := s.RoadmapRepo.FindByUserID(userID)
	if err != nil {
		log.Errorf("failed to fetch roadmap for user %d: %v", userID, err)
		return nil, apierror.InternalServerError
	}

	if roadmap == nil {
		return nil, apierror.RoadmapNotFoundError
	}
	return toRoadmapResponse(roadmap), nil
}

func (s *DefaultRoadmapService) UpdateRoadmap(userID int, req *contract.UpdateRoadmapRequest) (*contract.RoadmapResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	roadmap, err := s.RoadmapRepo.FindByUserID(userID)
	if err != nil {
		log.Errorf("failed to fetch roadmap for user %d: %v", userID, err)
		return nil, apierror.InternalServerError
	}

	if roadmap == nil {
		return nil, apierror.RoadmapNotFoundError
	}

	if req.Title != nil {
		roadmap.Title = *req.Title
	}
	if req.Description != nil {
		roadmap.Description = *req.Description
	}
	if req.Milestones != nil {
		roadmap.Milestones = joinMilestones(req.Milestones)
	}

	roadmap.UpdatedAt = utils.NowUTC()
	if err = s.RoadmapRepo.Save(roadmap); err != nil {
		log.Errorf("failed to update roadmap: %v", err)
		return nil, apierror.InternalServerError
	}
	return toRoadmapResponse(roadmap), nil
}

func (s *DefaultRoadmapService) DeleteRoadmap(userID int) apierror.ErrorResponse {
	roadmap, err := s.RoadmapRepo.FindByUserID(userID)
	if err != nil {
		log.Errorf("failed to fetch roadmap for user %d: %v", userID, err)
		return apierror.InternalServerError
	}

	if roadmap == nil {
		return apierror.RoadmapNotFoundError
	}

	if err = s.RoadmapRepo.Delete(roadmap); err != nil {
		log.Errorf("failed to delete roadmap: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func toRoadmapResponse(roadmap *entity.Roadmap) *contract.RoadmapResponse {
	return &contract.RoadmapResponse{
		ID:          roadmap.ID,
		UserID:      roadmap.UserID,
		Title:       roadmap.Title,
		Description: roadmap.Description,
		Milestones:  toMilestonesArray(roadmap.Milestones),
		CreatedAt:   utils.FormatEpoch(roadmap.CreatedAt),
		UpdatedAt:   utils.FormatEpoch(roadmap.UpdatedAt),
	}
}

func joinMilestones(milestones []contract.Milestone) string {
	if milestones == nil {
		milestones = []contract.Milestone{}
	}
	data, _ := json.Marshal(milestones)
	return string(data)
}

func toMilestonesArray(milestones string) []contract.Milestone {
	out := []contract.Milestone{}
	if milestones == "" {
		return out
	}
	_ = json.Unmarshal([]byte(milestones), &out)
	return out
}
