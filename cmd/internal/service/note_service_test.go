package service

import (
	"testing"

	"sathi/cmd/internal/contract"
	"sathi/cmd/internal/domain/sqlite/repository"
	"sathi/cmd/internal/utils/apierror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNoteService(t *testing.T) *DefaultNoteService {
	t.Helper()
	return NewNoteService(repository.NewNoteRepository(newTestDB(t)), newTestValidator(t))
}

func TestNoteService_CreateAndGet(t *testing.T) {
	svc := newNoteService(t)

	created, apierr := svc.CreateNote(&contract.NoteRequest{
		UserID:  1,
		Title:   "Exam",
		Content: "study ch.3",
		Tags:    []string{"School", "Exam"},
	})
	require.Nil(t, apierr)
	require.NotZero(t, created.ID)

	fetched, apierr := svc.GetNoteByID(created.ID)
	require.Nil(t, apierr)
	assert.Equal(t, "Exam", fetched.Title)
	assert.Equal(t, "study ch.3", fetched.Content)
	assert.Equal(t, []string{"school", "exam"}, fetched.Tags)

	t.Run("ValidationFailure", func(t *testing.T) {
		_, apierr := svc.CreateNote(&contract.NoteRequest{UserID: 1, Content: "no title"})
		require.NotNil(t, apierr)
		assert.Equal(t, 400, apierr.Code())
	})
}

func TestNoteService_ListFilter(t *testing.T) {
	svc := newNoteService(t)

	_, apierr := svc.CreateNote(&contract.NoteRequest{UserID: 1, Title: "a", Content: "x", Tags: []string{"math"}})
	require.Nil(t, apierr)
	_, apierr = svc.CreateNote(&contract.NoteRequest{UserID: 1, Title: "b", Content: "y", Tags: []string{"physics"}})
	require.Nil(t, apierr)

	all, apierr := svc.GetNotes("")
	require.Nil(t, apierr)
	assert.Len(t, all, 2)

	filtered, apierr := svc.GetNotes("math")
	require.Nil(t, apierr)
	require.Len(t, filtered, 1)
	assert.Equal(t, "a", filtered[0].Title)

	// Empty results are a valid list, not an error
	empty, apierr := svc.GetNotes("chemistry")
	require.Nil(t, apierr)
	assert.Empty(t, empty)
}

func TestNoteService_UpdateIsPartialAndIdempotent(t *testing.T) {
	svc := newNoteService(t)

	created, apierr := svc.CreateNote(&contract.NoteRequest{
		UserID:  1,
		Title:   "Exam",
		Content: "study ch.3",
		Tags:    []string{"school"},
	})
	require.Nil(t, apierr)

	newTitle := "Final exam"
	update := &contract.UpdateNoteRequest{Title: &newTitle}

	first, apierr := svc.UpdateNote(created.ID, update)
	require.Nil(t, apierr)
	assert.Equal(t, "Final exam", first.Title)
	assert.Equal(t, "study ch.3", first.Content)
	assert.Equal(t, []string{"school"}, first.Tags)

	second, apierr := svc.UpdateNote(created.ID, update)
	require.Nil(t, apierr)
	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, first.Content, second.Content)
	assert.Equal(t, first.Tags, second.Tags)

	t.Run("AbsentID", func(t *testing.T) {
		_, apierr := svc.UpdateNote(9999, update)
		assert.Equal(t, apierror.NoteNotFoundError, apierr)
	})
}

func TestNoteService_DeleteIsIdempotent(t *testing.T) {
	svc := newNoteService(t)

	created, apierr := svc.CreateNote(&contract.NoteRequest{UserID: 1, Title: "t", Content: "c"})
	require.Nil(t, apierr)

	require.Nil(t, svc.DeleteNote(created.ID))

	// Second delete reports not-found, never a fault
	assert.Equal(t, apierror.NoteNotFoundError, svc.DeleteNote(created.ID))

	_, apierr = svc.GetNoteByID(created.ID)
	assert.Equal(t, apierror.NoteNotFoundError, apierr)
}
