package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kevradan/homestead-be/internal/apperror"
	"github.com/kevradan/homestead-be/internal/models"
	"github.com/kevradan/homestead-be/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	CreateUser(ctx context.Context, email, password, name string) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserService provides business logic for user accounts.
type UserService struct {
	store *storage.UserStore
}

// NewUserService creates a new UserService.
func NewUserService(store *storage.UserStore) *UserService {
	return &UserService{store: store}
}

// CreateUser registers a new user. The password is optional: accounts
// provisioned through the identity provider carry no local credential.
func (s *UserService) CreateUser(ctx context.Context, email, password, name string) (models.User, error) {
	if email == "" {
		return models.User{}, apperror.Validation("email is required")
	}

	user := models.User{
		ID:               uuid.New().String(),
		Email:            email,
		Name:             name,
		BookedVisits:     []models.BookedVisit{},
		FavResidenciesID: []string{},
		CreatedAt:        time.Now().UTC(),
	}

	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hashed)
	}

	if err := s.store.Insert(ctx, &user); err != nil {
		return models.User{}, err
	}

	user.PasswordHash = ""
	return user, nil
}

// GetAllUsers returns all user accounts.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.store.List(ctx)
}

// GetUserByEmail returns the user with the given email, or nil when no
// such user exists. Used by the residency service to resolve ownership.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
