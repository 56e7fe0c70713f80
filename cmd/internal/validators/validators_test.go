package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()

	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("iso8601", IsIso8601))
	require.NoError(t, validate.RegisterValidation("nodupes", NoDupes))
	return validate
}

func TestIsIso8601(t *testing.T) {
	validate := newValidate(t)

	type payload struct {
		When string `validate:"iso8601"`
	}

	assert.NoError(t, validate.Struct(&payload{When: "2026-03-02T15:04:05Z"}))
	assert.NoError(t, validate.Struct(&payload{When: "2026-03-02T15:04:05+02:00"}))
	assert.Error(t, validate.Struct(&payload{When: "02/03/2026"}))
	assert.Error(t, validate.Struct(&payload{When: "2026-03-02"}))
}

func TestNoDupes(t *testing.T) {
	validate := newValidate(t)

	type payload struct {
		Tags []string `validate:"nodupes"`
	}

	assert.NoError(t, validate.Struct(&payload{Tags: []string{"a", "b"}}))
	assert.NoError(t, validate.Struct(&payload{Tags: nil}))
	assert.Error(t, validate.Struct(&payload{Tags: []string{"a", "a"}}))
}
