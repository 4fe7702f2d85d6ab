package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/envisioned/nft-marketplace/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var profileRowColumns = []string{"profile_id", "bio", "profile_image_uri", "creator_id"}

func TestProfileReadRepository_GetByCreator(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileReadRepository(db)
	ctx := context.Background()

	profileID := uuid.New()
	creatorID := uuid.New()

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows(profileRowColumns).
			AddRow(profileID.String(), "painter", "https://avatar", creatorID.String())
		mock.ExpectQuery(`(?s)SELECT (.+) FROM profiles\s+WHERE creator_id`).
			WithArgs(creatorID).
			WillReturnRows(rows)

		profile, err := repo.GetByCreator(ctx, creatorID)
		assert.NoError(t, err)
		assert.NotNil(t, profile)
		assert.Equal(t, profileID, profile.ProfileID)
		assert.NotNil(t, profile.Bio)
		assert.Equal(t, "painter", *profile.Bio)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`(?s)SELECT (.+) FROM profiles\s+WHERE creator_id`).
			WithArgs(creatorID).
			WillReturnRows(sqlmock.NewRows(profileRowColumns))

		profile, err := repo.GetByCreator(ctx, creatorID)
		assert.NoError(t, err)
		assert.Nil(t, profile)
	})

	t.Run("NullFields", func(t *testing.T) {
		rows := sqlmock.NewRows(profileRowColumns).
			AddRow(profileID.String(), nil, nil, creatorID.String())
		mock.ExpectQuery(`(?s)SELECT (.+) FROM profiles\s+WHERE creator_id`).
			WithArgs(creatorID).
			WillReturnRows(rows)

		profile, err := repo.GetByCreator(ctx, creatorID)
		assert.NoError(t, err)
		assert.NotNil(t, profile)
		assert.Nil(t, profile.Bio)
		assert.Nil(t, profile.ProfileImageURI)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileWriteRepository(db)
	ctx := context.Background()

	profileID := uuid.New()
	creatorID := uuid.New()
	bio := "painter"
	imageURI := "https://avatar"

	rows := sqlmock.NewRows(profileRowColumns).
		AddRow(profileID.String(), bio, imageURI, creatorID.String())
	mock.ExpectQuery("INSERT INTO profiles").
		WithArgs(bio, imageURI, creatorID).
		WillReturnRows(rows)

	profile, err := repo.Save(ctx, creatorID, &bio, &imageURI)
	assert.NoError(t, err)
	assert.Equal(t, profileID, profile.ProfileID)
	assert.Equal(t, creatorID, profile.CreatorID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileWriteRepository_UpdateByCreator(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileWriteRepository(db)
	ctx := context.Background()

	creatorID := uuid.New()
	bio := "sculptor"
	in := models.ProfileUpdate{Bio: &bio}

	mock.ExpectExec(`(?s)UPDATE profiles\s+SET`).
		WithArgs(creatorID, bio, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateByCreator(ctx, creatorID, in)
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
