package storage

import (
	"context"
	"database/sql"

	"github.com/kevradan/homestead-be/internal/models"
)

// UserStore persists user accounts and their residency references.
type UserStore struct {
	db *sql.DB
}

// NewUserStore creates a new UserStore.
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// Insert stores a new user. A duplicate email surfaces as Conflict.
func (s *UserStore) Insert(ctx context.Context, u *models.User) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (id, email, name, image, password_hash, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		u.ID, u.Email, u.Name, u.Image, u.PasswordHash, u.CreatedAt,
	)
	return conflictOr(err, "users.email", "a user with the provided email already exists")
}

// List returns all users with their booked visits and favorites loaded.
func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, email, name, image, password_hash, created_at FROM users ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Image, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range users {
		if err := s.loadReferences(ctx, &users[i]); err != nil {
			return nil, err
		}
	}
	return users, nil
}

// GetByEmail returns the user with the given email, or sql.ErrNoRows.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	row := s.db.QueryRowContext(ctx,
		"SELECT id, email, name, image, password_hash, created_at FROM users WHERE email = ?", email)
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Image, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return models.User{}, err
	}
	if err := s.loadReferences(ctx, &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// loadReferences fills in a user's booked visits and favorite residencies.
func (s *UserStore) loadReferences(ctx context.Context, u *models.User) error {
	visits, err := s.db.QueryContext(ctx,
		"SELECT residency_id, visit_date FROM booked_visits WHERE user_id = ? ORDER BY visit_date", u.ID)
	if err != nil {
		return err
	}
	defer visits.Close()

	u.BookedVisits = []models.BookedVisit{}
	for visits.Next() {
		var v models.BookedVisit
		if err := visits.Scan(&v.ResidencyID, &v.Date); err != nil {
			return err
		}
		u.BookedVisits = append(u.BookedVisits, v)
	}
	if err := visits.Err(); err != nil {
		return err
	}

	favs, err := s.db.QueryContext(ctx,
		"SELECT residency_id FROM fav_residencies WHERE user_id = ?", u.ID)
	if err != nil {
		return err
	}
	defer favs.Close()

	u.FavResidenciesID = []string{}
	for favs.Next() {
		var id string
		if err := favs.Scan(&id); err != nil {
			return err
		}
		u.FavResidenciesID = append(u.FavResidenciesID, id)
	}
	return favs.Err()
}
