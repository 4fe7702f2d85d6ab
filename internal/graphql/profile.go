package graphql

import (
	"context"
	"errors"

	"github.com/envisioned/nft-marketplace/internal/middlewares"
	"github.com/envisioned/nft-marketplace/internal/models"
	graphqlgo "github.com/graph-gophers/graphql-go"
)

// CreateProfileInput carries the fields of the createProfile mutation.
type CreateProfileInput struct {
	Bio             *string `validate:"omitempty,max=255"`
	ProfileImageURI *string `validate:"omitempty,url"`
}

// UpdateProfileInput carries the fields of the updateProfile mutation.
type UpdateProfileInput struct {
	Bio             *string `validate:"omitempty,max=255"`
	ProfileImageURI *string `validate:"omitempty,url"`
}

// profileResolver resolves the Profile object type.
type profileResolver struct {
	profile models.ProfileDB
	users   UserService
}

func (r *profileResolver) ID() graphqlgo.ID         { return graphqlgo.ID(r.profile.ProfileID.String()) }
func (r *profileResolver) Bio() *string             { return r.profile.Bio }
func (r *profileResolver) ProfileImageURI() *string { return r.profile.ProfileImageURI }
func (r *profileResolver) CreatorId() graphqlgo.ID  { return graphqlgo.ID(r.profile.CreatorID.String()) }

// Creator loads the owning user.
func (r *profileResolver) Creator(ctx context.Context) (*userResolver, error) {
	user, err := r.users.GetByID(ctx, r.profile.CreatorID)
	if err != nil {
		return nil, wrapError(err)
	}
	if user == nil {
		return nil, wrapError(errors.New("creator no longer exists"))
	}
	return &userResolver{user: *user}, nil
}

// GetProfile returns the authenticated caller's profile.
func (r *Resolver) GetProfile(ctx context.Context) (*profileResolver, error) {
	userID, err := middlewares.RequireUserID(ctx)
	if err != nil {
		return nil, wrapError(err)
	}

	profile, err := r.profiles.GetByCreator(ctx, userID)
	if err != nil {
		return nil, wrapError(err)
	}
	return &profileResolver{profile: *profile, users: r.users}, nil
}

// CreateProfile creates the caller's profile; each user may have at most one.
func (r *Resolver) CreateProfile(ctx context.Context, args struct{ Options CreateProfileInput }) (*profileResolver, error) {
	userID, err := middlewares.RequireUserID(ctx)
	if err != nil {
		return nil, wrapError(err)
	}

	if err := validateInput(args.Options); err != nil {
		return nil, err
	}

	profile, err := r.profiles.Create(ctx, userID, args.Options.Bio, args.Options.ProfileImageURI)
	if err != nil {
		return nil, wrapError(err)
	}
	return &profileResolver{profile: *profile, users: r.users}, nil
}

// UpdateProfile applies a partial update to the caller's profile.
func (r *Resolver) UpdateProfile(ctx context.Context, args struct{ Options UpdateProfileInput }) (bool, error) {
	userID, err := middlewares.RequireUserID(ctx)
	if err != nil {
		return false, wrapError(err)
	}

	if err := validateInput(args.Options); err != nil {
		return false, err
	}

	if err := r.profiles.Update(ctx, userID, models.ProfileUpdate{
		Bio:             args.Options.Bio,
		ProfileImageURI: args.Options.ProfileImageURI,
	}); err != nil {
		return false, wrapError(err)
	}
	return true, nil
}
