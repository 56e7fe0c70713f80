package service

import (
	"testing"
	"time"

	"sathi/cmd/internal/contract"
	"sathi/cmd/internal/domain/sqlite/repository"
	"sathi/cmd/internal/utils/apierror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCalendarService(t *testing.T) *DefaultCalendarService {
	t.Helper()
	return NewCalendarService(repository.NewCalendarRepository(newTestDB(t)), newTestValidator(t))
}

func rfc(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func TestCalendarService_CreateEvent(t *testing.T) {
	svc := newCalendarService(t)
	now := time.Now().UTC()

	created, apierr := svc.CreateEvent(&contract.EventRequest{
		UserID:    1,
		Title:     "Lecture",
		StartTime: rfc(now),
		EndTime:   rfc(now.Add(time.Hour)),
	})
	require.Nil(t, apierr)
	assert.NotZero(t, created.ID)
	assert.Equal(t, rfc(now), created.StartTime)

	t.Run("ReversedInterval", func(t *testing.T) {
		_, apierr := svc.CreateEvent(&contract.EventRequest{
			UserID:    1,
			Title:     "Broken",
			StartTime: rfc(now.Add(time.Hour)),
			EndTime:   rfc(now),
		})
		assert.Equal(t, apierror.InvalidIntervalError, apierr)
	})

	t.Run("MissingTimes", func(t *testing.T) {
		_, apierr := svc.CreateEvent(&contract.EventRequest{UserID: 1, Title: "Broken"})
		require.NotNil(t, apierr)
		assert.Equal(t, 400, apierr.Code())
	})
}

func TestCalendarService_DailyAndWeeklyWindows(t *testing.T) {
	svc := newCalendarService(t)
	now := time.Now().UTC()

	// Overlaps both today and this week regardless of the wall clock
	_, apierr := svc.CreateEvent(&contract.EventRequest{
		UserID:    1,
		Title:     "today",
		StartTime: rfc(now.Add(-time.Minute)),
		EndTime:   rfc(now.Add(time.Minute)),
	})
	require.Nil(t, apierr)

	// Far outside both windows
	_, apierr = svc.CreateEvent(&contract.EventRequest{
		UserID:    1,
		Title:     "far-future",
		StartTime: rfc(now.AddDate(0, 1, 0)),
		EndTime:   rfc(now.AddDate(0, 1, 0).Add(time.Hour)),
	})
	require.Nil(t, apierr)

	daily, apierr := svc.GetDailyEvents(1)
	require.Nil(t, apierr)
	require.Len(t, daily, 1)
	assert.Equal(t, "today", daily[0].Title)

	weekly, apierr := svc.GetWeeklyEvents(1)
	require.Nil(t, apierr)
	require.Len(t, weekly, 1)
	assert.Equal(t, "today", weekly[0].Title)

	t.Run("EmptyIsNotFound", func(t *testing.T) {
		_, apierr := svc.GetDailyEvents(99)
		assert.Equal(t, apierror.NoDailyEventsError, apierr)

		_, apierr = svc.GetWeeklyEvents(99)
		assert.Equal(t, apierror.NoWeeklyEventsError, apierr)
	})
}

func TestCalendarService_UpdateAndDelete(t *testing.T) {
	svc := newCalendarService(t)
	now := time.Now().UTC()

	created, apierr := svc.CreateEvent(&contract.EventRequest{
		UserID:    1,
		Title:     "Lecture",
		StartTime: rfc(now),
		EndTime:   rfc(now.Add(time.Hour)),
	})
	require.Nil(t, apierr)

	newTitle := "Seminar"
	updated, apierr := svc.UpdateEvent(created.ID, &contract.UpdateEventRequest{Title: &newTitle})
	require.Nil(t, apierr)
	assert.Equal(t, "Seminar", updated.Title)
	assert.Equal(t, created.StartTime, updated.StartTime)

	t.Run("ReversedIntervalRejected", func(t *testing.T) {
		bad := rfc(now.Add(-2 * time.Hour))
		_, apierr := svc.UpdateEvent(created.ID, &contract.UpdateEventRequest{EndTime: &bad})
		assert.Equal(t, apierror.InvalidIntervalError, apierr)
	})

	require.Nil(t, svc.DeleteEvent(created.ID))
	assert.Equal(t, apierror.EventNotFoundError, svc.DeleteEvent(created.ID))
}
