package profile

import (
	"time"

	"github.com/google/uuid"
)

// Role enum for the profiles table.
type Role string

const (
	RoleUser   Role = "user"   // public site visitor with an account
	RoleArtist Role = "artist" // roster artist, can edit their own page
	RoleAdmin  Role = "admin"  // full back office access
)

// AllRoles returns all valid roles.
func AllRoles() []Role {
	return []Role{RoleUser, RoleArtist, RoleAdmin}
}

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleArtist, RoleAdmin:
		return true
	}
	return false
}

// Profile is an account on the site.
type Profile struct {
	ID    uuid.UUID `db:"id" json:"id"`
	Email string    `db:"email" json:"email"`

	PasswordHash string `db:"password_hash" json:"-"` // never expose in JSON

	FullName  *string `db:"full_name" json:"full_name,omitempty"`
	AvatarURL *string `db:"avatar_url" json:"avatar_url,omitempty"`

	Role Role `db:"role" json:"role"`

	// ArtistID links artist accounts to their roster entry.
	ArtistID *uuid.UUID `db:"artist_id" json:"artist_id,omitempty"`

	LastLoginAt *time.Time `db:"last_login_at" json:"last_login_at,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// IsAdmin reports whether the profile has back office access.
func (p Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}
