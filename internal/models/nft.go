package models

import (
	"time"

	"github.com/google/uuid"
)

// NFTDB represents an NFT listing record in the database
type NFTDB struct {
	NFTID            uuid.UUID `json:"id" db:"nft_id"` // Primary key
	Title            string    `json:"title" db:"title"`
	ShortDescription string    `json:"short_description" db:"short_description"`
	LongDescription  string    `json:"long_description" db:"long_description"`
	Category         string    `json:"category" db:"category"`
	ImageURI         string    `json:"image_uri" db:"image_uri"`
	SourceURI        string    `json:"source_uri" db:"source_uri"`
	CreatorID        uuid.UUID `json:"creator_id" db:"creator_id"` // Owning user
	CreatedAt        time.Time `json:"created_at" db:"created_at"` // Set once at insert
}

// NFTCreate carries the fields required to insert a new NFT.
type NFTCreate struct {
	Title            string
	ShortDescription string
	LongDescription  string
	Category         string
	ImageURI         string
	SourceURI        string
}

// NFTUpdate carries a partial update; nil fields are left unchanged.
type NFTUpdate struct {
	Title            *string
	ShortDescription *string
	LongDescription  *string
	Category         *string
	ImageURI         *string
	SourceURI        *string
}
