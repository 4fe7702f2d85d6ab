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
	ErrProfileNotFound      = errors.New("Profile not found")
	ErrProfileAlreadyExists = errors.New("Profile already exists")
	ErrProfileDoesNotExist  = errors.New("Profile with provided ID does not exist")
)

// ProfileReader defines read-only operations needed by ProfileService.
type ProfileReader interface {
	GetByCreator(ctx context.Context, creatorID uuid.UUID) (*models.ProfileDB, error)
}

// ProfileWriter defines write operations needed by ProfileService.
type ProfileWriter interface {
	Save(ctx context.Context, creatorID uuid.UUID, bio, profileImageURI *string) (*models.ProfileDB, error)
	UpdateByCreator(ctx context.Context, creatorID uuid.UUID, in models.ProfileUpdate) error
}

// ProfileService manages the 0-or-1 profile each user may own. Every
// operation is keyed by the caller's own user id, so ownership is implicit:
// a user can only ever read or mutate their own profile.
type ProfileService struct {
	reader ProfileReader
	writer ProfileWriter
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(reader ProfileReader, writer ProfileWriter) *ProfileService {
	return &ProfileService{
		reader: reader,
		writer: writer,
	}
}

// GetByCreator returns the caller's profile.
func (svc *ProfileService) GetByCreator(ctx context.Context, creatorID uuid.UUID) (*models.ProfileDB, error) {
	profile, err := svc.reader.GetByCreator(ctx, creatorID)
	if err != nil {
		logger.Log.Errorw("failed to get profile", "err", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// Create makes a profile for the caller. A second profile for the same user
// is a conflict, checked before the insert.
func (svc *ProfileService) Create(ctx context.Context, creatorID uuid.UUID, bio, profileImageURI *string) (*models.ProfileDB, error) {
	existing, err := svc.reader.GetByCreator(ctx, creatorID)
	if err != nil {
		logger.Log.Errorw("failed to check profile exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("profile already exists", "creator_id", creatorID)
		return nil, ErrProfileAlreadyExists
	}

	profile, err := svc.writer.Save(ctx, creatorID, bio, profileImageURI)
	if err != nil {
		logger.Log.Errorw("failed to save profile", "err", err)
		return nil, err
	}
	return profile, nil
}

// Update applies a partial update to the caller's profile. The profile must
// already exist.
func (svc *ProfileService) Update(ctx context.Context, creatorID uuid.UUID, in models.ProfileUpdate) error {
	existing, err := svc.reader.GetByCreator(ctx, creatorID)
	if err != nil {
		logger.Log.Errorw("failed to get profile", "err", err)
		return err
	}
	if existing == nil {
		return ErrProfileDoesNotExist
	}

	return svc.writer.UpdateByCreator(ctx, creatorID, in)
}
