package storage

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/kevradan/homestead-be/internal/apperror"
	"github.com/kevradan/homestead-be/internal/models"
)

// ResidencyStore persists residency records.
type ResidencyStore struct {
	db *sql.DB
}

// NewResidencyStore creates a new ResidencyStore.
func NewResidencyStore(db *sql.DB) *ResidencyStore {
	return &ResidencyStore{db: db}
}

const residencyColumns = "id, title, description, price, address, city, country, image, facilities_json, owner_email, created_at, updated_at"

// Insert stores a new residency. A duplicate address surfaces as Conflict;
// a missing owner surfaces as NotFound.
func (s *ResidencyStore) Insert(ctx context.Context, r *models.Residency) error {
	facilities, err := json.Marshal(r.Facilities)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO residencies ("+residencyColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		r.ID, r.Title, r.Description, r.Price, r.Address, r.City, r.Country,
		r.Image, string(facilities), r.OwnerEmail, r.CreatedAt, r.UpdatedAt,
	)
	if isForeignKeyViolation(err) {
		return apperror.NotFound("user", r.OwnerEmail)
	}
	return conflictOr(err, "residencies.address", "a residency with the provided address already exists")
}

// List returns all residencies, newest first.
func (s *ResidencyStore) List(ctx context.Context) ([]models.Residency, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+residencyColumns+" FROM residencies ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	residencies := []models.Residency{}
	for rows.Next() {
		r, err := scanResidency(rows)
		if err != nil {
			return nil, err
		}
		residencies = append(residencies, r)
	}
	return residencies, rows.Err()
}

// Get returns the residency with the given id, or NotFound.
func (s *ResidencyStore) Get(ctx context.Context, id string) (models.Residency, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+residencyColumns+" FROM residencies WHERE id = ?", id)
	r, err := scanResidency(row)
	if err == sql.ErrNoRows {
		return models.Residency{}, apperror.NotFound("residency", id)
	}
	return r, err
}

// Update writes back a full residency record. NotFound when the id is
// absent, Conflict when the new address collides with another record.
func (s *ResidencyStore) Update(ctx context.Context, r *models.Residency) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE residencies SET title = ?, description = ?, price = ?, address = ?,
		 city = ?, country = ?, image = ?, facilities_json = ?, updated_at = ?
		 WHERE id = ?`,
		r.Title, r.Description, r.Price, r.Address, r.City, r.Country,
		r.Image, marshalFacilities(r.Facilities), r.UpdatedAt, r.ID,
	)
	if err != nil {
		return conflictOr(err, "residencies.address", "a residency with the provided address already exists")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperror.NotFound("residency", r.ID)
	}
	return nil
}

// Delete removes the residency with the given id, or returns NotFound.
func (s *ResidencyStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM residencies WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperror.NotFound("residency", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResidency(row rowScanner) (models.Residency, error) {
	var r models.Residency
	var facilities sql.NullString
	err := row.Scan(&r.ID, &r.Title, &r.Description, &r.Price, &r.Address,
		&r.City, &r.Country, &r.Image, &facilities, &r.OwnerEmail,
		&r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return models.Residency{}, err
	}
	if facilities.Valid && facilities.String != "" {
		if err := json.Unmarshal([]byte(facilities.String), &r.Facilities); err != nil {
			return models.Residency{}, err
		}
	}
	return r, nil
}

func marshalFacilities(f models.Facilities) string {
	b, _ := json.Marshal(f)
	return string(b)
}
