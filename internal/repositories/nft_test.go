package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/envisioned/nft-marketplace/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

var nftRowColumns = []string{"nft_id", "title", "short_description", "long_description", "category", "image_uri", "source_uri", "creator_id", "created_at"}

func TestNFTReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNFTReadRepository(db)
	ctx := context.Background()

	nftID := uuid.New()
	creatorID := uuid.New()
	now := time.Now()

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows(nftRowColumns).
			AddRow(nftID.String(), "Sunset", "short", "long", "art", "https://img", "https://src", creatorID.String(), now)
		mock.ExpectQuery(`(?s)SELECT (.+) FROM nfts\s+WHERE nft_id`).
			WithArgs(nftID).
			WillReturnRows(rows)

		nft, err := repo.GetByID(ctx, nftID)
		assert.NoError(t, err)
		assert.NotNil(t, nft)
		assert.Equal(t, nftID, nft.NFTID)
		assert.Equal(t, creatorID, nft.CreatorID)
		assert.Equal(t, "Sunset", nft.Title)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`(?s)SELECT (.+) FROM nfts\s+WHERE nft_id`).
			WithArgs(nftID).
			WillReturnRows(sqlmock.NewRows(nftRowColumns))

		nft, err := repo.GetByID(ctx, nftID)
		assert.NoError(t, err)
		assert.Nil(t, nft)
	})

	t.Run("QueryError", func(t *testing.T) {
		mock.ExpectQuery(`(?s)SELECT (.+) FROM nfts\s+WHERE nft_id`).
			WithArgs(nftID).
			WillReturnError(errors.New("db down"))

		nft, err := repo.GetByID(ctx, nftID)
		assert.Error(t, err)
		assert.Nil(t, nft)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNFTReadRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNFTReadRepository(db)
	ctx := context.Background()

	creatorID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows(nftRowColumns).
		AddRow(uuid.NewString(), "One", "s1", "l1", "art", "https://img1", "https://src1", creatorID.String(), now).
		AddRow(uuid.NewString(), "Two", "s2", "l2", "music", "https://img2", "https://src2", creatorID.String(), now)
	mock.ExpectQuery(`(?s)SELECT (.+) FROM nfts\s+ORDER BY created_at DESC`).
		WillReturnRows(rows)

	nfts, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, nfts, 2)
	assert.Equal(t, "One", nfts[0].Title)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNFTReadRepository_ListByCreator(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNFTReadRepository(db)
	ctx := context.Background()

	creatorID := uuid.New()

	rows := sqlmock.NewRows(nftRowColumns).
		AddRow(uuid.NewString(), "Mine", "s", "l", "art", "https://img", "https://src", creatorID.String(), time.Now())
	mock.ExpectQuery(`(?s)SELECT (.+) FROM nfts\s+WHERE creator_id`).
		WithArgs(creatorID).
		WillReturnRows(rows)

	nfts, err := repo.ListByCreator(ctx, creatorID)
	assert.NoError(t, err)
	assert.Len(t, nfts, 1)
	assert.Equal(t, creatorID, nfts[0].CreatorID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNFTReadRepository_ListByCategory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNFTReadRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows(nftRowColumns).
		AddRow(uuid.NewString(), "Piece", "s", "l", "music", "https://img", "https://src", uuid.NewString(), time.Now())
	mock.ExpectQuery(`(?s)SELECT (.+) FROM nfts\s+WHERE category`).
		WithArgs("music").
		WillReturnRows(rows)

	nfts, err := repo.ListByCategory(ctx, "music")
	assert.NoError(t, err)
	assert.Len(t, nfts, 1)
	assert.Equal(t, "music", nfts[0].Category)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNFTWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNFTWriteRepository(db)
	ctx := context.Background()

	creatorID := uuid.New()
	nftID := uuid.New()
	in := models.NFTCreate{
		Title:            "Sunset",
		ShortDescription: "short",
		LongDescription:  "long",
		Category:         "art",
		ImageURI:         "https://img",
		SourceURI:        "https://src",
	}

	rows := sqlmock.NewRows(nftRowColumns).
		AddRow(nftID.String(), in.Title, in.ShortDescription, in.LongDescription, in.Category, in.ImageURI, in.SourceURI, creatorID.String(), time.Now())
	mock.ExpectQuery("INSERT INTO nfts").
		WithArgs(in.Title, in.ShortDescription, in.LongDescription, in.Category, in.ImageURI, in.SourceURI, creatorID).
		WillReturnRows(rows)

	nft, err := repo.Save(ctx, creatorID, in)
	assert.NoError(t, err)
	assert.Equal(t, nftID, nft.NFTID)
	assert.Equal(t, creatorID, nft.CreatorID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNFTWriteRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNFTWriteRepository(db)
	ctx := context.Background()

	nftID := uuid.New()
	title := "New title"
	in := models.NFTUpdate{Title: &title}

	mock.ExpectExec(`(?s)UPDATE nfts\s+SET`).
		WithArgs(nftID, title, nil, nil, nil, nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(ctx, nftID, in)
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNFTWriteRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNFTWriteRepository(db)
	ctx := context.Background()

	nftID := uuid.New()

	mock.ExpectExec("DELETE FROM nfts WHERE nft_id").
		WithArgs(nftID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(ctx, nftID)
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
