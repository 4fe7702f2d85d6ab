package models

import "github.com/google/uuid"

// ProfileDB represents a user profile record in the database.
// A user has at most one profile (creator_id is unique).
type ProfileDB struct {
	ProfileID       uuid.UUID `json:"id" db:"profile_id"` // Primary key
	Bio             *string   `json:"bio" db:"bio"`
	ProfileImageURI *string   `json:"profile_image_uri" db:"profile_image_uri"`
	CreatorID       uuid.UUID `json:"creator_id" db:"creator_id"` // Owning user, unique
}

// ProfileUpdate carries a partial profile update; nil fields are left unchanged.
type ProfileUpdate struct {
	Bio             *string
	ProfileImageURI *string
}
