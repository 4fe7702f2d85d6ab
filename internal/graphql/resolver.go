package graphql

import (
	"context"

	"github.com/envisioned/nft-marketplace/internal/models"
	"github.com/google/uuid"
	graphqlgo "github.com/graph-gophers/graphql-go"
)

// AuthService defines the identity operations the resolver needs.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*models.UserDB, error)
	Login(ctx context.Context, email, password string) (*models.UserDB, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, oldPassword, newPassword string) error
}

// UserService defines the user operations the resolver needs.
type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
	UpdateInfo(ctx context.Context, id uuid.UUID, username, email *string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// NFTService defines the NFT operations the resolver needs.
type NFTService interface {
	Create(ctx context.Context, creatorID uuid.UUID, in models.NFTCreate) (*models.NFTDB, error)
	List(ctx context.Context) ([]models.NFTDB, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.NFTDB, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]models.NFTDB, error)
	ListByCategory(ctx context.Context, category string) ([]models.NFTDB, error)
	UpdateByID(ctx context.Context, id, callerID uuid.UUID, in models.NFTUpdate) error
	DeleteByID(ctx context.Context, id, callerID uuid.UUID) error
}

// ProfileService defines the profile operations the resolver needs.
type ProfileService interface {
	GetByCreator(ctx context.Context, creatorID uuid.UUID) (*models.ProfileDB, error)
	Create(ctx context.Context, creatorID uuid.UUID, bio, profileImageURI *string) (*models.ProfileDB, error)
	Update(ctx context.Context, creatorID uuid.UUID, in models.ProfileUpdate) error
}

// SessionWriter binds the session id to a user; registration and login use
// it to issue the caller's identity.
type SessionWriter interface {
	Set(ctx context.Context, sid string, userID uuid.UUID) error
}

// Resolver is the root resolver for both Query and Mutation.
type Resolver struct {
	auth     AuthService
	users    UserService
	nfts     NFTService
	profiles ProfileService
	sessions SessionWriter
}

// NewResolver creates the root resolver.
func NewResolver(auth AuthService, users UserService, nfts NFTService, profiles ProfileService, sessions SessionWriter) *Resolver {
	return &Resolver{
		auth:     auth,
		users:    users,
		nfts:     nfts,
		profiles: profiles,
		sessions: sessions,
	}
}

// ParseSchema binds the schema to a root resolver.
func ParseSchema(r *Resolver) (*graphqlgo.Schema, error) {
	return graphqlgo.ParseSchema(Schema, r)
}
