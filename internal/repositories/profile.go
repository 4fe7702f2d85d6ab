package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/envisioned/nft-marketplace/internal/logger"
	"github.com/envisioned/nft-marketplace/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ProfileReadRepository struct {
	db *sqlx.DB
}

func NewProfileReadRepository(db *sqlx.DB) *ProfileReadRepository {
	return &ProfileReadRepository{db: db}
}

// GetByCreator returns the profile owned by the given user, or (nil, nil)
// when the user has no profile.
func (r *ProfileReadRepository) GetByCreator(ctx context.Context, creatorID uuid.UUID) (*models.ProfileDB, error) {
	const query = `
		SELECT profile_id, bio, profile_image_uri, creator_id
		FROM profiles
		WHERE creator_id = $1
	`

	var profile models.ProfileDB
	err := r.db.GetContext(ctx, &profile, query, creatorID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{creatorID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

type ProfileWriteRepository struct {
	db *sqlx.DB
}

func NewProfileWriteRepository(db *sqlx.DB) *ProfileWriteRepository {
	return &ProfileWriteRepository{db: db}
}

func (r *ProfileWriteRepository) Save(ctx context.Context, creatorID uuid.UUID, bio, profileImageURI *string) (*models.ProfileDB, error) {
	const query = `
		INSERT INTO profiles (bio, profile_image_uri, creator_id)
		VALUES ($1, $2, $3)
		RETURNING profile_id, bio, profile_image_uri, creator_id
	`
	args := []any{bio, profileImageURI, creatorID}

	var profile models.ProfileDB
	err := r.db.GetContext(ctx, &profile, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// UpdateByCreator applies a partial update to the profile owned by the given
// user; nil fields keep their current value.
func (r *ProfileWriteRepository) UpdateByCreator(ctx context.Context, creatorID uuid.UUID, in models.ProfileUpdate) error {
	const query = `
		UPDATE profiles
		SET bio               = COALESCE($2, bio),
		    profile_image_uri = COALESCE($3, profile_image_uri)
		WHERE creator_id = $1
	`
	args := []any{creatorID, in.Bio, in.ProfileImageURI}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
