package repository

import (
	"testing"

	"sathi/cmd/internal/domain/entity"

	"github.com/glebarez/sqlite"
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
