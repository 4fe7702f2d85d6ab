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

const nftColumns = `nft_id, title, short_description, long_description, category, image_uri, source_uri, creator_id, created_at`

type NFTReadRepository struct {
	db *sqlx.DB
}

func NewNFTReadRepository(db *sqlx.DB) *NFTReadRepository {
	return &NFTReadRepository{db: db}
}

func (r *NFTReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.NFTDB, error) {
	const query = `
		SELECT ` + nftColumns + `
		FROM nfts
		WHERE nft_id = $1
	`

	var nft models.NFTDB
	err := r.db.GetContext(ctx, &nft, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &nft, nil
}

func (r *NFTReadRepository) List(ctx context.Context) ([]models.NFTDB, error) {
	const query = `
		SELECT ` + nftColumns + `
		FROM nfts
		ORDER BY created_at DESC
	`

	var nfts []models.NFTDB
	err := r.db.SelectContext(ctx, &nfts, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(nfts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return nfts, nil
}

func (r *NFTReadRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]models.NFTDB, error) {
	const query = `
		SELECT ` + nftColumns + `
		FROM nfts
		WHERE creator_id = $1
		ORDER BY created_at DESC
	`

	var nfts []models.NFTDB
	err := r.db.SelectContext(ctx, &nfts, query, creatorID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{creatorID},
		"count", len(nfts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return nfts, nil
}

func (r *NFTReadRepository) ListByCategory(ctx context.Context, category string) ([]models.NFTDB, error) {
	const query = `
		SELECT ` + nftColumns + `
		FROM nfts
		WHERE category = $1
		ORDER BY created_at DESC
	`

	var nfts []models.NFTDB
	err := r.db.SelectContext(ctx, &nfts, query, category)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{category},
		"count", len(nfts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return nfts, nil
}

type NFTWriteRepository struct {
	db *sqlx.DB
}

func NewNFTWriteRepository(db *sqlx.DB) *NFTWriteRepository {
	return &NFTWriteRepository{db: db}
}

func (r *NFTWriteRepository) Save(ctx context.Context, creatorID uuid.UUID, in models.NFTCreate) (*models.NFTDB, error) {
	const query = `
		INSERT INTO nfts (title, short_description, long_description, category, image_uri, source_uri, creator_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING ` + nftColumns + `
	`
	args := []any{in.Title, in.ShortDescription, in.LongDescription, in.Category, in.ImageURI, in.SourceURI, creatorID}

	var nft models.NFTDB
	err := r.db.GetContext(ctx, &nft, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &nft, nil
}

// Update applies a partial update; nil fields keep their current value.
// created_at and creator_id are immutable.
func (r *NFTWriteRepository) Update(ctx context.Context, id uuid.UUID, in models.NFTUpdate) error {
	const query = `
		UPDATE nfts
		SET title             = COALESCE($2, title),
		    short_description = COALESCE($3, short_description),
		    long_description  = COALESCE($4, long_description),
		    category          = COALESCE($5, category),
		    image_uri         = COALESCE($6, image_uri),
		    source_uri        = COALESCE($7, source_uri)
		WHERE nft_id = $1
	`
	args := []any{id, in.Title, in.ShortDescription, in.LongDescription, in.Category, in.ImageURI, in.SourceURI}

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

func (r *NFTWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM nfts WHERE nft_id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
