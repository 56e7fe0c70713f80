package service

import (
	"testing"

	"sathi/cmd/internal/contract"
	"sathi/cmd/internal/domain/entity"
	"sathi/cmd/internal/domain/sqlite/repository"
	"sathi/cmd/internal/utils/apierror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCareerService(t *testing.T) *DefaultCareerService {
	t.Helper()
	return NewCareerService(repository.NewCareerRepository(newTestDB(t)), newTestValidator(t))
}

func TestCareerService_CreateAndList(t *testing.T) {
	svc := newCareerService(t)

	// Listing an empty table is a 200 with an empty list
	goals, apierr := svc.GetGoals()
	require.Nil(t, apierr)
	assert.Empty(t, goals)

	created, apierr := svc.CreateGoal(&contract.GoalRequest{
		UserID:    1,
		Goal:      "Become a backend engineer",
		Resources: []string{"https://roadmap.sh/backend"},
	})
	require.Nil(t, apierr)
	assert.Equal(t, entity.ProgressNotStarted, created.Progress)
	assert.Equal(t, []string{"https://roadmap.sh/backend"}, created.Resources)

	goals, apierr = svc.GetGoals()
	require.Nil(t, apierr)
	require.Len(t, goals, 1)
	assert.Equal(t, "Become a backend engineer", goals[0].Goal)
}

func TestCareerService_UpdateAndDelete(t *testing.T) {
	svc := newCareerService(t)

	created, apierr := svc.CreateGoal(&contract.GoalRequest{UserID: 1, Goal: "g"})
	require.Nil(t, apierr)

	progress := "40%"
	updated, apierr := svc.UpdateGoal(created.ID, &contract.UpdateGoalRequest{Progress: &progress})
	require.Nil(t, apierr)
	assert.Equal(t, "40%", updated.Progress)
	assert.Equal(t, "g", updated.Goal)

	require.Nil(t, svc.DeleteGoal(created.ID))
	assert.Equal(t, apierror.GoalNotFoundError, svc.DeleteGoal(created.ID))

	t.Run("UpdateAbsent", func(t *testing.T) {
		_, apierr := svc.UpdateGoal(created.ID, &contract.UpdateGoalRequest{Progress: &progress})
		assert.Equal(t, apierror.GoalNotFoundError, apierr)
	})
}
