package services

import (
	"context"
	"errors"

	"github.com/envisioned/nft-marketplace/internal/logger"
	"github.com/envisioned/nft-marketplace/internal/models"
	"github.com/google/uuid"
)

// Error variables
var (
	ErrUsernameTaken = errors.New("Username already exists")
	ErrEmailTaken    = errors.New("User with email already exists")
)

// UserFinder defines read-only operations needed by UserService.
type UserFinder interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserUpdater defines write operations needed by UserService.
type UserUpdater interface {
	UpdateInfo(ctx context.Context, id uuid.UUID, username, email *string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserService exposes user lookups and account maintenance.
type UserService struct {
	finder  UserFinder
	updater UserUpdater
}

// NewUserService creates a new UserService instance.
func NewUserService(finder UserFinder, updater UserUpdater) *UserService {
	return &UserService{
		finder:  finder,
		updater: updater,
	}
}

// GetByID returns the user with the given id, or nil when absent.
func (svc *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	return svc.finder.GetByID(ctx, id)
}

// List returns all users.
func (svc *UserService) List(ctx context.Context) ([]models.UserDB, error) {
	return svc.finder.List(ctx)
}

// UpdateInfo changes username and/or email. The new values must not collide
// with any existing user.
func (svc *UserService) UpdateInfo(ctx context.Context, id uuid.UUID, username, email *string) error {
	user, err := svc.finder.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil {
		return ErrUserDoesNotExist
	}

	if username != nil {
		taken, err := svc.finder.GetByUsernameOrEmail(ctx, username, nil)
		if err != nil {
			logger.Log.Errorw("failed to check username", "err", err)
			return err
		}
		if taken != nil && taken.UserID != id {
			return ErrUsernameTaken
		}
	}

	if email != nil {
		taken, err := svc.finder.GetByUsernameOrEmail(ctx, nil, email)
		if err != nil {
			logger.Log.Errorw("failed to check email", "err", err)
			return err
		}
		if taken != nil && taken.UserID != id {
			return ErrEmailTaken
		}
	}

	return svc.updater.UpdateInfo(ctx, id, username, email)
}

// Delete removes the user with the given id.
func (svc *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	return svc.updater.Delete(ctx, id)
}
