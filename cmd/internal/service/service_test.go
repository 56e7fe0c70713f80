package service

import (
	"testing"

	"sathi/cmd/internal/domain/entity"
	"sathi/cmd/internal/validators"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entity.Note{},
		&entity.Reminder{},
		&entity.CalendarEvent{},
		&entity.Career{},
		&entity.Roadmap{},
		&entity.Tip{},
	)
	require.NoError(t, err)

	return db
}

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()

	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("iso8601", validators.IsIso8601))
	require.NoError(t, validate.RegisterValidation("nodupes", validators.NoDupes))
	return validate
}
