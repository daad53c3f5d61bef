package services

import (
	"database/sql"
	"testing"

	"github.com/kevradan/homestead-be/internal/database"
	"github.com/kevradan/homestead-be/internal/storage"
	"github.com/stretchr/testify/require"
)

// newTestDB opens an in-memory database with the full schema applied.
// A single connection keeps every query on the same in-memory store.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.New("file::memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func newTestServices(t *testing.T) (*UserService, *ResidencyService) {
	t.Helper()

	db := newTestDB(t)
	users := NewUserService(storage.NewUserStore(db))
	residencies := NewResidencyService(storage.NewResidencyStore(db), users)
	return users, residencies
}
