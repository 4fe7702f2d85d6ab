package graphql

import (
	"context"
	"errors"
	"time"

	"github.com/envisioned/nft-marketplace/internal/middlewares"
	"github.com/envisioned/nft-marketplace/internal/models"
	"github.com/envisioned/nft-marketplace/internal/services"
	"github.com/google/uuid"
	graphqlgo "github.com/graph-gophers/graphql-go"
)

// CreateNFTInput carries the fields of the createNFT mutation.
type CreateNFTInput struct {
	Title            string `validate:"required"`
	ShortDescription string `validate:"required"`
	LongDescription  string `validate:"required"`
	Category         string `validate:"required"`
	ImageURI         string `validate:"url"`
	SourceURI        string `validate:"url"`
}

// UpdateNFTInput carries the fields of the updateNFTById mutation; absent
// fields are left unchanged.
type UpdateNFTInput struct {
	Title            *string
	ShortDescription *string
	LongDescription  *string
	Category         *string
	ImageURI         *string `validate:"omitempty,url"`
	SourceURI        *string `validate:"omitempty,url"`
}

// nftResolver resolves the NFT object type.
type nftResolver struct {
	nft   models.NFTDB
	users UserService
}

func (r *nftResolver) ID() graphqlgo.ID         { return graphqlgo.ID(r.nft.NFTID.String()) }
func (r *nftResolver) Title() string            { return r.nft.Title }
func (r *nftResolver) ShortDescription() string { return r.nft.ShortDescription }
func (r *nftResolver) LongDescription() string  { return r.nft.LongDescription }
func (r *nftResolver) Category() string         { return r.nft.Category }
func (r *nftResolver) ImageURI() string         { return r.nft.ImageURI }
func (r *nftResolver) SourceURI() string        { return r.nft.SourceURI }
func (r *nftResolver) CreatedAt() string        { return r.nft.CreatedAt.Format(time.RFC3339) }

// Creator loads the owning user.
func (r *nftResolver) Creator(ctx context.Context) (*userResolver, error) {
	user, err := r.users.GetByID(ctx, r.nft.CreatorID)
	if err != nil {
		return nil, wrapError(err)
	}
	if user == nil {
		return nil, wrapError(errors.New("creator no longer exists"))
	}
	return &userResolver{user: *user}, nil
}

func (r *Resolver) nftResolvers(nfts []models.NFTDB) []*nftResolver {
	resolvers := make([]*nftResolver, 0, len(nfts))
	for _, n := range nfts {
		resolvers = append(resolvers, &nftResolver{nft: n, users: r.users})
	}
	return resolvers
}

// GetAllNFTs returns every NFT in the marketplace.
func (r *Resolver) GetAllNFTs(ctx context.Context) ([]*nftResolver, error) {
	nfts, err := r.nfts.List(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return r.nftResolvers(nfts), nil
}

// GetNFTById returns the NFT with the given id. A missing id is an error,
// not a null result.
func (r *Resolver) GetNFTById(ctx context.Context, args struct{ ID graphqlgo.ID }) (*nftResolver, error) {
	id, err := uuid.Parse(string(args.ID))
	if err != nil {
		return nil, wrapError(services.ErrNFTDoesNotExist)
	}

	nft, err := r.nfts.GetByID(ctx, id)
	if err != nil {
		return nil, wrapError(err)
	}
	return &nftResolver{nft: *nft, users: r.users}, nil
}

// GetNFTsByUserId returns all NFTs owned by the given creator.
func (r *Resolver) GetNFTsByUserId(ctx context.Context, args struct{ UserID graphqlgo.ID }) ([]*nftResolver, error) {
	creatorID, err := uuid.Parse(string(args.UserID))
	if err != nil {
		return []*nftResolver{}, nil
	}

	nfts, err := r.nfts.ListByCreator(ctx, creatorID)
	if err != nil {
		return nil, wrapError(err)
	}
	return r.nftResolvers(nfts), nil
}

// GetNFTsByCategory returns all NFTs with the given category.
func (r *Resolver) GetNFTsByCategory(ctx context.Context, args struct{ Category string }) ([]*nftResolver, error) {
	nfts, err := r.nfts.ListByCategory(ctx, args.Category)
	if err != nil {
		return nil, wrapError(err)
	}
	return r.nftResolvers(nfts), nil
}

// CreateNFT mints a new listing owned by the authenticated caller.
func (r *Resolver) CreateNFT(ctx context.Context, args struct{ Options CreateNFTInput }) (*nftResolver, error) {
	userID, err := middlewares.RequireUserID(ctx)
	if err != nil {
		return nil, wrapError(err)
	}

	if err := validateInput(args.Options); err != nil {
		return nil, err
	}

	nft, err := r.nfts.Create(ctx, userID, models.NFTCreate{
		Title:            args.Options.Title,
		ShortDescription: args.Options.ShortDescription,
		LongDescription:  args.Options.LongDescription,
		Category:         args.Options.Category,
		ImageURI:         args.Options.ImageURI,
		SourceURI:        args.Options.SourceURI,
	})
	if err != nil {
		return nil, wrapError(err)
	}

	return &nftResolver{nft: *nft, users: r.users}, nil
}

// UpdateNFTById updates the NFT with the given id; only its creator may.
func (r *Resolver) UpdateNFTById(ctx context.Context, args struct {
	ID      graphqlgo.ID
	Options UpdateNFTInput
}) (bool, error) {
	userID, err := middlewares.RequireUserID(ctx)
	if err != nil {
		return false, wrapError(err)
	}

	id, err := uuid.Parse(string(args.ID))
	if err != nil {
		return false, wrapError(services.ErrNFTDoesNotExist)
	}

	if err := validateInput(args.Options); err != nil {
		return false, err
	}

	if err := r.nfts.UpdateByID(ctx, id, userID, models.NFTUpdate{
		Title:            args.Options.Title,
		ShortDescription: args.Options.ShortDescription,
		LongDescription:  args.Options.LongDescription,
		Category:         args.Options.Category,
		ImageURI:         args.Options.ImageURI,
		SourceURI:        args.Options.SourceURI,
	}); err != nil {
		return false, wrapError(err)
	}
	return true, nil
}

// DeleteNFTById deletes the NFT with the given id; only its creator may.
func (r *Resolver) DeleteNFTById(ctx context.Context, args struct{ ID graphqlgo.ID }) (bool, error) {
	userID, err := middlewares.RequireUserID(ctx)
	if err != nil {
		return false, wrapError(err)
	}

	id, err := uuid.Parse(string(args.ID))
	if err != nil {
		return false, wrapError(services.ErrNFTDoesNotExist)
	}

	if err := r.nfts.DeleteByID(ctx, id, userID); err != nil {
		return false, wrapError(err)
	}
	return true, nil
}
