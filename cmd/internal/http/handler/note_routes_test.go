package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sathi/cmd/internal/contract"
	"sathi/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNoteService struct {
	notes map[int]*contract.NoteResponse
}

func (s *stubNoteService) GetNotes(tag string) ([]*contract.NoteResponse, apierror.ErrorResponse) {
	out := []*contract.NoteResponse{}
	for _, note := range s.notes {
		out = append(out, note)
	}
	return out, nil
}

func (s *stubNoteService) GetNoteByID(noteID int) (*contract.NoteResponse, apierror.ErrorResponse) {
	note, ok := s.notes[noteID]
	if !ok {
		return nil, apierror.NoteNotFoundError
	}
	return note, nil
}

func (s *stubNoteService) CreateNote(req *contract.NoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	return &contract.NoteResponse{ID: 1, UserID: req.UserID, Title: req.Title, Content: req.Content}, nil
}

func (s *stubNoteService) UpdateNote(noteID int, req *contract.UpdateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	return s.GetNoteByID(noteID)
}

func (s *stubNoteService) DeleteNote(noteID int) apierror.ErrorResponse {
	if _, ok := s.notes[noteID]; !ok {
		return apierror.NoteNotFoundError
	}
	delete(s.notes, noteID)
	return nil
}

func newNoteContext(t *testing.T, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestNoteRoutes(t *testing.T) {
	route := NewNoteDefault(&stubNoteService{notes: map[int]*contract.NoteResponse{
		1: {ID: 1, UserID: 1, Title: "Exam"},
	}})

	t.Run("CreateNote_Created", func(t *testing.T) {
		c, rec := newNoteContext(t, http.MethodPost, `{"user_id":1,"title":"Exam","content":"study ch.3"}`)
		require.NoError(t, route.CreateNote(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"title":"Exam"`)
	})

	t.Run("CreateNote_MalformedBody", func(t *testing.T) {
		c, rec := newNoteContext(t, http.MethodPost, `{"user_id":`)
		require.NoError(t, route.CreateNote(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("GetNote_OK", func(t *testing.T) {
		c, rec := newNoteContext(t, http.MethodGet, "")
		c.SetParamNames("id")
		c.SetParamValues("1")

		require.NoError(t, route.GetNote(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("GetNote_NotFound", func(t *testing.T) {
		c, rec := newNoteContext(t, http.MethodGet, "")
		c.SetParamNames("id")
		c.SetParamValues("42")

		require.NoError(t, route.GetNote(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Note not found")
	})

	t.Run("GetNote_BadParam", func(t *testing.T) {
		c, rec := newNoteContext(t, http.MethodGet, "")
		c.SetParamNames("id")
		c.SetParamValues("abc")

		require.NoError(t, route.GetNote(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("DeleteNote_ConfirmationThenNotFound", func(t *testing.T) {
		c, rec := newNoteContext(t, http.MethodDelete, "")
		c.SetParamNames("id")
		c.SetParamValues("1")

		require.NoError(t, route.DeleteNote(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Note deleted successfully")

		c, rec = newNoteContext(t, http.MethodDelete, "")
		c.SetParamNames("id")
		c.SetParamValues("1")

		require.NoError(t, route.DeleteNote(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
