package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kevradan/homestead-be/internal/apperror"
	"github.com/kevradan/homestead-be/internal/database"
	"github.com/kevradan/homestead-be/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.New("file::memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))
	return db
}

func insertUser(t *testing.T, users *UserStore, email string) models.User {
	t.Helper()
	u := models.User{
		ID:        uuid.New().String(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, users.Insert(context.Background(), &u))
	return u
}

func testResidency(ownerEmail string) models.Residency {
	now := time.Now().UTC()
	return models.Residency{
		ID:          uuid.New().String(),
		Title:       "Flat",
		Description: "A small flat",
		Price:       500,
		Address:     "1 Main St",
		OwnerEmail:  ownerEmail,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestInsertResidencyDuplicateAddressIsConflict(t *testing.T) {
	db := newTestDB(t)
	users := NewUserStore(db)
	residencies := NewResidencyStore(db)
	insertUser(t, users, "a@x.com")

	first := testResidency("a@x.com")
	require.NoError(t, residencies.Insert(context.Background(), &first))

	second := testResidency("a@x.com")
	err := residencies.Insert(context.Background(), &second)
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestInsertResidencyUnknownOwnerIsNotFound(t *testing.T) {
	db := newTestDB(t)
	residencies := NewResidencyStore(db)

	r := testResidency("ghost@x.com")
	err := residencies.Insert(context.Background(), &r)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestInsertUserDuplicateEmailIsConflict(t *testing.T) {
	db := newTestDB(t)
	users := NewUserStore(db)
	insertUser(t, users, "a@x.com")

	dup := models.User{ID: uuid.New().String(), Email: "a@x.com", CreatedAt: time.Now().UTC()}
	err := users.Insert(context.Background(), &dup)
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestUserReferencesLoaded(t *testing.T) {
	db := newTestDB(t)
	users := NewUserStore(db)
	residencies := NewResidencyStore(db)
	ctx := context.Background()

	owner := insertUser(t, users, "a@x.com")
	r := testResidency("a@x.com")
	require.NoError(t, residencies.Insert(ctx, &r))

	visit := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second)
	_, err := db.ExecContext(ctx,
		"INSERT INTO booked_visits (user_id, residency_id, visit_date) VALUES (?, ?, ?)",
		owner.ID, r.ID, visit)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx,
		"INSERT INTO fav_residencies (user_id, residency_id) VALUES (?, ?)",
		owner.ID, r.ID)
	require.NoError(t, err)

	got, err := users.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, got.BookedVisits, 1)
	assert.Equal(t, r.ID, got.BookedVisits[0].ResidencyID)
	assert.True(t, visit.Equal(got.BookedVisits[0].Date))
	assert.Equal(t, []string{r.ID}, got.FavResidenciesID)
}

func TestGetAbsentResidencyIsNotFound(t *testing.T) {
	db := newTestDB(t)
	residencies := NewResidencyStore(db)

	_, err := residencies.Get(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
