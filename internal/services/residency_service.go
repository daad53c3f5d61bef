package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kevradan/homestead-be/internal/apperror"
	"github.com/kevradan/homestead-be/internal/models"
	"github.com/kevradan/homestead-be/internal/storage"
)

// ResidencyServiceProvider defines the interface for residency services.
type ResidencyServiceProvider interface {
	CreateResidency(ctx context.Context, input CreateResidencyInput) (models.Residency, error)
	GetAllResidencies(ctx context.Context) ([]models.Residency, error)
	GetResidencyByID(ctx context.Context, id string) (models.Residency, error)
	UpdateResidency(ctx context.Context, id string, update models.ResidencyUpdate, callerEmail string) (models.Residency, error)
	DeleteResidency(ctx context.Context, id, callerEmail string) error
}

// CreateResidencyInput carries the fields for a new listing.
type CreateResidencyInput struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Price       float64           `json:"price"`
	Address     string            `json:"address"`
	City        string            `json:"city"`
	Country     string            `json:"country"`
	Image       string            `json:"image"`
	Facilities  models.Facilities `json:"facilities"`
	OwnerEmail  string            `json:"userEmail"`
}

// ResidencyService provides business logic for property listings.
type ResidencyService struct {
	store *storage.ResidencyStore
	users UserServiceProvider
}

// NewResidencyService creates a new ResidencyService.
func NewResidencyService(store *storage.ResidencyStore, users UserServiceProvider) *ResidencyService {
	return &ResidencyService{store: store, users: users}
}

// CreateResidency validates the input, resolves the owning user by email
// and stores the listing. The address must be unused.
func (s *ResidencyService) CreateResidency(ctx context.Context, input CreateResidencyInput) (models.Residency, error) {
	if input.OwnerEmail == "" {
		return models.Residency{}, apperror.Validation("user email is required")
	}
	if input.Title == "" {
		return models.Residency{}, apperror.Validation("title is required")
	}
	if input.Address == "" {
		return models.Residency{}, apperror.Validation("address is required")
	}
	if input.Price < 0 {
		return models.Residency{}, apperror.Validation("price must not be negative")
	}

	owner, err := s.users.GetUserByEmail(ctx, input.OwnerEmail)
	if err != nil {
		return models.Residency{}, err
	}
	if owner == nil {
		return models.Residency{}, apperror.NotFound("user", input.OwnerEmail)
	}

	now := time.Now().UTC()
	residency := models.Residency{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Address:     input.Address,
		City:        input.City,
		Country:     input.Country,
		Image:       input.Image,
		Facilities:  input.Facilities,
		OwnerEmail:  owner.Email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.Insert(ctx, &residency); err != nil {
		return models.Residency{}, err
	}
	return residency, nil
}

// GetAllResidencies returns all listings, newest first.
func (s *ResidencyService) GetAllResidencies(ctx context.Context) ([]models.Residency, error) {
	return s.store.List(ctx)
}

// GetResidencyByID returns a single listing by its id.
func (s *ResidencyService) GetResidencyByID(ctx context.Context, id string) (models.Residency, error) {
	return s.store.Get(ctx, id)
}

// UpdateResidency applies a partial update to a listing. Only the owner
// may update a record.
func (s *ResidencyService) UpdateResidency(ctx context.Context, id string, update models.ResidencyUpdate, callerEmail string) (models.Residency, error) {
	residency, err := s.store.Get(ctx, id)
	if err != nil {
		return models.Residency{}, err
	}
	if residency.OwnerEmail != callerEmail {
		return models.Residency{}, apperror.Forbidden("only the owner may update this residency")
	}

	if update.Title != nil {
		residency.Title = *update.Title
	}
	if update.Description != nil {
		residency.Description = *update.Description
	}
	if update.Price != nil {
		if *update.Price < 0 {
			return models.Residency{}, apperror.Validation("price must not be negative")
		}
		residency.Price = *update.Price
	}
	if update.Address != nil {
		if *update.Address == "" {
			return models.Residency{}, apperror.Validation("address must not be empty")
		}
		residency.Address = *update.Address
	}
	if update.City != nil {
		residency.City = *update.City
	}
	if update.Country != nil {
		residency.Country = *update.Country
	}
	if update.Image != nil {
		residency.Image = *update.Image
	}
	if update.Facilities != nil {
		residency.Facilities = *update.Facilities
	}
	residency.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, &residency); err != nil {
		return models.Residency{}, err
	}
	return residency, nil
}

// DeleteResidency removes a listing. Only the owner may delete a record.
func (s *ResidencyService) DeleteResidency(ctx context.Context, id, callerEmail string) error {
	residency, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if residency.OwnerEmail != callerEmail {
		return apperror.Forbidden("only the owner may delete this residency")
	}
	return s.store.Delete(ctx, id)
}
