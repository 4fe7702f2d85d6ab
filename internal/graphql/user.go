package graphql

import (
	"context"

	"github.com/envisioned/nft-marketplace/internal/logger"
	"github.com/envisioned/nft-marketplace/internal/middlewares"
	"github.com/envisioned/nft-marketplace/internal/models"
	"github.com/envisioned/nft-marketplace/internal/services"
	"github.com/google/uuid"
	graphqlgo "github.com/graph-gophers/graphql-go"
)

// RegisterUserInput carries the fields of the register mutation.
type RegisterUserInput struct {
	Username string `validate:"min=3"`
	Email    string `validate:"email"`
	Password string `validate:"min=8"`
}

// LoginUserInput carries the fields of the login mutation.
type LoginUserInput struct {
	Email    string `validate:"email"`
	Password string `validate:"min=8"`
}

// UpdatePasswordInput carries the fields of the updatePassword mutation.
type UpdatePasswordInput struct {
	OldPassword string
	NewPassword string
}

// UpdateUserInput carries the fields of the updateUserInfo mutation.
type UpdateUserInput struct {
	Username *string
	Email    *string
}

// userResolver resolves the User object type. The password hash is not
// reachable from any field.
type userResolver struct {
	user models.UserDB
}

func (r *userResolver) ID() graphqlgo.ID { return graphqlgo.ID(r.user.UserID.String()) }
func (r *userResolver) Username() string { return r.user.Username }
func (r *userResolver) Email() string    { return r.user.Email }

// GetUser returns a single user by id, or null when absent.
func (r *Resolver) GetUser(ctx context.Context, args struct{ ID graphqlgo.ID }) (*userResolver, error) {
	id, err := uuid.Parse(string(args.ID))
	if err != nil {
		return nil, nil
	}

	user, err := r.users.GetByID(ctx, id)
	if err != nil {
		return nil, wrapError(err)
	}
	if user == nil {
		return nil, nil
	}
	return &userResolver{user: *user}, nil
}

// GetUsers returns all users.
func (r *Resolver) GetUsers(ctx context.Context) ([]*userResolver, error) {
	users, err := r.users.List(ctx)
	if err != nil {
		return nil, wrapError(err)
	}

	resolvers := make([]*userResolver, 0, len(users))
	for _, u := range users {
		resolvers = append(resolvers, &userResolver{user: u})
	}
	return resolvers, nil
}

// CurrentUser returns the session's user, or null when the request carries
// no identity.
func (r *Resolver) CurrentUser(ctx context.Context) (*userResolver, error) {
	userID, ok := middlewares.GetUserIDFromContext(ctx)
	if !ok {
		return nil, nil
	}

	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		return nil, wrapError(err)
	}
	if user == nil {
		return nil, nil
	}
	return &userResolver{user: *user}, nil
}

// Register creates a new user and signs them in by binding the new user id
// to the request's session.
func (r *Resolver) Register(ctx context.Context, args struct{ Options RegisterUserInput }) (*userResolver, error) {
	if err := validateInput(args.Options); err != nil {
		return nil, err
	}

	user, err := r.auth.Register(ctx, args.Options.Username, args.Options.Email, args.Options.Password)
	if err != nil {
		return nil, wrapError(err)
	}

	if err := r.bindSession(ctx, user.UserID); err != nil {
		return nil, wrapError(err)
	}

	return &userResolver{user: *user}, nil
}

// Login authenticates by email and password and binds the user id to the
// request's session.
func (r *Resolver) Login(ctx context.Context, args struct{ Options LoginUserInput }) (*userResolver, error) {
	if err := validateInput(args.Options); err != nil {
		return nil, err
	}

	user, err := r.auth.Login(ctx, args.Options.Email, args.Options.Password)
	if err != nil {
		return nil, wrapError(err)
	}

	if err := r.bindSession(ctx, user.UserID); err != nil {
		return nil, wrapError(err)
	}

	return &userResolver{user: *user}, nil
}

// UpdatePassword replaces a user's password after verifying the old one.
func (r *Resolver) UpdatePassword(ctx context.Context, args struct {
	ID      graphqlgo.ID
	Options UpdatePasswordInput
}) (bool, error) {
	id, err := uuid.Parse(string(args.ID))
	if err != nil {
		return false, wrapError(services.ErrUserDoesNotExist)
	}

	if err := r.auth.UpdatePassword(ctx, id, args.Options.OldPassword, args.Options.NewPassword); err != nil {
		return false, wrapError(err)
	}
	return true, nil
}

// UpdateUserInfo changes username and/or email of a user.
func (r *Resolver) UpdateUserInfo(ctx context.Context, args struct {
	ID      graphqlgo.ID
	Options UpdateUserInput
}) (bool, error) {
	id, err := uuid.Parse(string(args.ID))
	if err != nil {
		return false, wrapError(services.ErrUserDoesNotExist)
	}

	if err := r.users.UpdateInfo(ctx, id, args.Options.Username, args.Options.Email); err != nil {
		return false, wrapError(err)
	}
	return true, nil
}

// DeleteUser removes a user by id.
func (r *Resolver) DeleteUser(ctx context.Context, args struct{ ID graphqlgo.ID }) (bool, error) {
	id, err := uuid.Parse(string(args.ID))
	if err != nil {
		return false, wrapError(services.ErrUserDoesNotExist)
	}

	if err := r.users.Delete(ctx, id); err != nil {
		return false, wrapError(err)
	}
	return true, nil
}

// bindSession writes the user id into the current session, if the request
// has one.
func (r *Resolver) bindSession(ctx context.Context, userID uuid.UUID) error {
	sid := middlewares.GetSessionIDFromContext(ctx)
	if sid == "" {
		// Direct schema execution (tests) has no session; nothing to bind.
		return nil
	}

	if err := r.sessions.Set(ctx, sid, userID); err != nil {
		logger.Log.Errorw("failed to bind session", "err", err)
		return err
	}
	return nil
}
