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

type CareerRepository interface {
	FindAll() ([]*entity.Career, error)
	FindByID(id int) (*entity.Career, error)
	Save(goal *entity.Career) error
	Delete(goal *entity.Career) error
}

type DefaultCareerService struct {
	CareerRepo CareerRepository
	Validate   *validator.Validate
}

func NewCareerService(careerRepo CareerRepository, validate *validator.Validate) *DefaultCareerService {
	return &DefaultCareerService{CareerRepo: careerRepo, Validate: validate}
}

func (s *DefaultCareerService) CreateGoal(req *contract.GoalRequest) (*contract.GoalResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	progress := req.Progress
	if progress == "" {
		progress = entity.ProgressNotStarted
	}

	now := utils.NowUTC()
	goal := &entity.Career{
		UserID:    req.UserID,
		Goal:      req.Goal,
		Progress:  progress,
		Resources: joinResources(req.Resources),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.CareerRepo.Save(goal); err != nil {
		log.Errorf("failed to save career goal: %v", err)
		return nil, apierror.InternalServerError
	}
	return toGoalResponse(goal), nil
}

func (s *DefaultCareerService) GetGoals() ([]*contract.GoalResponse, apierror.ErrorResponse) {
	goals, err := s.CareerRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch career goals: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.GoalResponse, len(goals))
	for i, goal := range goals {
		resp[i] = toGoalResponse(goal)
	}
	return resp, nil
}

func (s *DefaultCareerService) UpdateGoal(goalID int, req *contract.UpdateGoalRequest) (*contract.GoalResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	goal, err := s.CareerRepo.FindByID(goalID)
	if err != nil {
		log.Errorf("failed to fetch career goal: %v", err)
		return nil, apierror.InternalServerError
	}

	if goal == nil {
		return nil, apierror.GoalNotFoundError
	}

	if req.Goal != nil {
		goal.Goal = *req.Goal
	}
	if req.Progress != nil {
		goal.Progress = *req.Progress
	}
	if req.Resources != nil {
		goal.Resources = joinResources(req.Resources)
	}

	goal.UpdatedAt = utils.NowUTC()
	if err = s.CareerRepo.Save(goal); err != nil {
		log.Errorf("failed to update career goal: %v", err)
		return nil, apierror.InternalServerError
	}
	return toGoalResponse(goal), nil
}

func (s *DefaultCareerService) DeleteGoal(goalID int) apierror.ErrorResponse {
	goal, err := s.CareerRepo.FindByID(goalID)
	if err != nil {
		log.Errorf("failed to fetch career goal: %v", err)
		return apierror.InternalServerError
	}

	if goal == nil {
		return apierror.GoalNotFoundError
	}

	if err = s.CareerRepo.Delete(goal); err != nil {
		log.Errorf("failed to delete career goal: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func toGoalResponse(goal *entity.Career) *contract.GoalResponse {
	return &contract.GoalResponse{
		ID:        goal.ID,
		UserID:    goal.UserID,
		Goal:      goal.Goal,
		Progress:  goal.Progress,
		Resources: toResourcesArray(goal.Resources),
		CreatedAt: utils.FormatEpoch(goal.CreatedAt),
		UpdatedAt: utils.FormatEpoch(goal.UpdatedAt),
	}
}

func joinResources(resources []string) string {
	if resources == nil {
		resources = []string{}
	}
	data, _ := json.Marshal(resources)
	return string(data)
}

func toResourcesArray(resources string) []string {
	out := []string{}
	if resources == "" {
		return out
	}
	_ = json.Unmarshal([]byte(resources), &out)
	return out
}
