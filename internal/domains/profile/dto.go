package profile

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 72 // bcrypt input limit
	MaxNameLength     = 255
)

// RegisterRequest - POST /auth/register
type RegisterRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName *string `json:"full_name,omitempty"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email,
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(MinPasswordLength, MaxPasswordLength),
		),
		validation.Field(&r.FullName, validation.Length(1, MaxNameLength)),
	)
}

// LoginRequest - POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required.Error("email is required"), is.Email),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

// ChangePasswordRequest - POST /auth/change-password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r ChangePasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CurrentPassword, validation.Required.Error("current_password is required")),
		validation.Field(&r.NewPassword,
			validation.Required.Error("new_password is required"),
			validation.Length(MinPasswordLength, MaxPasswordLength),
		),
	)
}

// UpdateProfileRequest - PUT /auth/profile
type UpdateProfileRequest struct {
	FullName  *string `json:"full_name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName, validation.NilOrNotEmpty, validation.Length(1, MaxNameLength)),
		validation.Field(&r.AvatarURL, is.URL),
	)
}

// UpdateRoleRequest - PUT /admin/profiles/:id/role
type UpdateRoleRequest struct {
	Role     Role       `json:"role"`
	ArtistID *uuid.UUID `json:"artist_id,omitempty"`
}

func (r UpdateRoleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Role,
			validation.Required.Error("role is required"),
			validation.In(RoleUser, RoleArtist, RoleAdmin).Error("role must be user, artist or admin"),
		),
	)
}

// ProfileDTO is the account shape handed to clients.
type ProfileDTO struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	FullName    *string    `json:"full_name,omitempty"`
	AvatarURL   *string    `json:"avatar_url,omitempty"`
	Role        Role       `json:"role"`
	ArtistID    *uuid.UUID `json:"artist_id,omitempty"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// LoginResponse carries the token pair alongside the account.
type LoginResponse struct {
	User         ProfileDTO `json:"user"`
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
}

// ToDTO strips the fields clients never see.
func (p Profile) ToDTO() ProfileDTO {
	return ProfileDTO{
		ID:          p.ID,
		Email:       p.Email,
		FullName:    p.FullName,
		AvatarURL:   p.AvatarURL,
		Role:        p.Role,
		ArtistID:    p.ArtistID,
		LastLoginAt: p.LastLoginAt,
		CreatedAt:   p.CreatedAt,
	}
}
