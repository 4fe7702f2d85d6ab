package services

import (
	"context"
	"errors"

	"github.com/envisioned/nft-marketplace/internal/logger"
	"github.com/envisioned/nft-marketplace/internal/models"
	"github.com/google/uuid"
)

// Error variables. Existence is always checked before ownership, so a caller
// can distinguish a missing NFT from one they do not own.
var (
	ErrNFTDoesNotExist    = errors.New("NFT with provided ID does not exist")
	ErrNFTEditForbidden   = errors.New("User is not authorized to edit this NFT")
	ErrNFTDeleteForbidden = errors.New("User is not authorized to delete this NFT")
)

// NFTReader defines read-only operations needed by NFTService.
type NFTReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.NFTDB, error)
	List(ctx context.Context) ([]models.NFTDB, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]models.NFTDB, error)
	ListByCategory(ctx context.Context, category string) ([]models.NFTDB, error)
}

// NFTWriter defines write operations needed by NFTService.
type NFTWriter interface {
	Save(ctx context.Context, creatorID uuid.UUID, in models.NFTCreate) (*models.NFTDB, error)
	Update(ctx context.Context, id uuid.UUID, in models.NFTUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// NFTService exposes NFT queries and owner-gated mutations.
type NFTService struct {
	reader NFTReader
	writer NFTWriter
}

// NewNFTService creates a new NFTService instance.
func NewNFTService(reader NFTReader, writer NFTWriter) *NFTService {
	return &NFTService{
		reader: reader,
		writer: writer,
	}
}

// Create inserts a new NFT owned by the given creator.
func (svc *NFTService) Create(ctx context.Context, creatorID uuid.UUID, in models.NFTCreate) (*models.NFTDB, error) {
	nft, err := svc.writer.Save(ctx, creatorID, in)
	if err != nil {
		logger.Log.Errorw("failed to save nft", "err", err)
		return nil, err
	}
	return nft, nil
}

// List returns all NFTs.
func (svc *NFTService) List(ctx context.Context) ([]models.NFTDB, error) {
	return svc.reader.List(ctx)
}

// GetByID returns the NFT with the given id. A missing id is an error, not a
// null result.
func (svc *NFTService) GetByID(ctx context.Context, id uuid.UUID) (*models.NFTDB, error) {
	nft, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get nft", "err", err)
		return nil, err
	}
	if nft == nil {
		return nil, ErrNFTDoesNotExist
	}
	return nft, nil
}

// ListByCreator returns all NFTs owned by the given user.
func (svc *NFTService) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]models.NFTDB, error) {
	return svc.reader.ListByCreator(ctx, creatorID)
}

// ListByCategory returns all NFTs with the given category.
func (svc *NFTService) ListByCategory(ctx context.Context, category string) ([]models.NFTDB, error) {
	return svc.reader.ListByCategory(ctx, category)
}

// UpdateByID applies a partial update to the NFT with the given id. Only the
// creator may update it; the check is a direct equality of creator id and
// caller id, and it runs only after the NFT is known to exist. On any failed
// precondition the NFT is left untouched.
func (svc *NFTService) UpdateByID(ctx context.Context, id, callerID uuid.UUID, in models.NFTUpdate) error {
	nft, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get nft", "err", err)
		return err
	}
	if nft == nil {
		return ErrNFTDoesNotExist
	}

	if nft.CreatorID != callerID {
		logger.Log.Errorw("nft update denied", "nft_id", id, "caller_id", callerID)
		return ErrNFTEditForbidden
	}

	return svc.writer.Update(ctx, id, in)
}

// DeleteByID removes the NFT with the given id, subject to the same existence
// and ownership checks as UpdateByID.
func (svc *NFTService) DeleteByID(ctx context.Context, id, callerID uuid.UUID) error {
	nft, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get nft", "err", err)
		return err
	}
	if nft == nil {
		return ErrNFTDoesNotExist
	}

	if nft.CreatorID != callerID {
		logger.Log.Errorw("nft delete denied", "nft_id", id, "caller_id", callerID)
		return ErrNFTDeleteForbidden
	}

	return svc.writer.Delete(ctx, id)
}
