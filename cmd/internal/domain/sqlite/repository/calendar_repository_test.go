package repository

import (
	"testing"

	"sathi/cmd/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarRepository_FindOverlapping(t *testing.T) {
	db := newTestDB(t)
	repo := NewCalendarRepository(db)

	// Window under test: [1000, 2000)
	seed := []*entity.CalendarEvent{
		{UserID: 1, Title: "inside", StartTime: 1200, EndTime: 1300},
		{UserID: 1, Title: "spans-start", StartTime: 500, EndTime: 1100},
		{UserID: 1, Title: "spans-end", StartTime: 1900, EndTime: 2500},
		{UserID: 1, Title: "covers-window", StartTime: 500, EndTime: 2500},
		{UserID: 1, Title: "before", StartTime: 100, EndTime: 900},
		{UserID: 1, Title: "after", StartTime: 2100, EndTime: 2200},
		{UserID: 1, Title: "touches-end", StartTime: 2000, EndTime: 2100},
		{UserID: 2, Title: "other-user", StartTime: 1200, EndTime: 1300},
	}
	for _, ev := range seed {
		require.NoError(t, repo.Save(ev))
	}

	events, err := repo.FindOverlapping(1, 1000, 2000)
	require.NoError(t, err)

	titles := make([]string, len(events))
	for i, ev := range events {
		titles[i] = ev.Title
	}
	assert.Equal(t, []string{"spans-start", "covers-window", "inside", "spans-end"}, titles)

	t.Run("EmptyWindow", func(t *testing.T) {
		events, err := repo.FindOverlapping(1, 5000, 6000)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}
