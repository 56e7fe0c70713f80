package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Detail string `json:"detail"`
	Status int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

var (
	MalformedBodyError  = NewSimple(400, "Malformed request body")
	InternalServerError = NewSimple(500, "Internal server error")

	NoteNotFoundError     = NewSimple(404, "Note not found")
	ReminderNotFoundError = NewSimple(404, "Reminder not found")
	EventNotFoundError    = NewSimple(404, "Event not found")
	GoalNotFoundError     = NewSimple(404, "Career goal not found")
	RoadmapNotFoundError  = NewSimple(404, "Roadmap not found")

	NoTipsFoundError      = NewSimple(404, "Tips not found")
	NoRemindersFoundError = NewSimple(404, "No reminders found")
	NoFollowupsFoundError = NewSimple(404, "No follow-ups found")
	NoDailyEventsError    = NewSimple(404, "No events found for the day.")
	NoWeeklyEventsError   = NewSimple(404, "No events found for the week.")

	RoadmapExistsError   = NewSimple(409, "A roadmap already exists for this user")
	InvalidIntervalError = NewSimple(400, "Event must end at or after it starts")
)

func FromValidationError(err error) ErrorResponse {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		// validator.Struct only returns something else for a
		// non-struct argument, never for user input.
		return InternalServerError
	}

	problems := map[string][]string{}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			problems[field] = append(problems[field], "This field is required")
		case "min":
			problems[field] = append(problems[field], "Value is too short, min: "+fe.Param())
		case "max":
			problems[field] = append(problems[field], "Value is too long, max: "+fe.Param())
		case "iso8601":
			problems[field] = append(problems[field], "Value must be an RFC 3339 timestamp")
		case "nodupes":
			problems[field] = append(problems[field], "Value must not contain duplicates")

		default:
			problems[field] = append(problems[field], "Invalid value provided")
		}
	}

	return &StructuredError{
		Errors: problems,
		Status: http.StatusBadRequest,
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Detail: msg}
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", name, dataType)
}
