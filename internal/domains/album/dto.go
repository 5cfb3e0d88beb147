package album

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

const (
	MaxTitleLength = 255
	MinReleaseYear = 1900
	MaxReleaseYear = 2100
)

// requiredUUID rejects the zero UUID, which validation.Required cannot
// detect on a fixed-size array type.
func requiredUUID(value interface{}) error {
	id, ok := value.(uuid.UUID)
	if !ok {
		if p, isPtr := value.(*uuid.UUID); isPtr {
			if p == nil {
				return nil
			}
			id = *p
		}
	}
	if id == uuid.Nil {
		return errors.New("is required")
	}
	return nil
}

// CreateAlbumRequest - POST /admin/albums
type CreateAlbumRequest struct {
	ArtistID    uuid.UUID `json:"artist_id"`
	Title       string    `json:"title"`
	ReleaseYear *int      `json:"release_year,omitempty"`
	AlbumType   string    `json:"album_type"`
	CoverURL    *string   `json:"cover_url,omitempty"`
}

func (r CreateAlbumRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArtistID, validation.By(requiredUUID)),
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.ReleaseYear, validation.Min(MinReleaseYear), validation.Max(MaxReleaseYear)),
		validation.Field(&r.AlbumType,
			validation.Required.Error("album_type is required"),
			validation.In(TypeAlbum, TypeEP, TypeSingle).Error("album_type must be album, ep or single"),
		),
		validation.Field(&r.CoverURL, is.URL),
	)
}

// UpdateAlbumRequest - PUT /admin/albums/:id
// All fields optional: only non-nil fields are applied.
type UpdateAlbumRequest struct {
	ArtistID    *uuid.UUID `json:"artist_id,omitempty"`
	Title       *string    `json:"title,omitempty"`
	ReleaseYear *int       `json:"release_year,omitempty"`
	AlbumType   *string    `json:"album_type,omitempty"`
	CoverURL    *string    `json:"cover_url,omitempty"`
}

func (r UpdateAlbumRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArtistID, validation.By(requiredUUID)),
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be empty"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.ReleaseYear, validation.Min(MinReleaseYear), validation.Max(MaxReleaseYear)),
		validation.Field(&r.AlbumType,
			validation.In(TypeAlbum, TypeEP, TypeSingle).Error("album_type must be album, ep or single"),
		),
		validation.Field(&r.CoverURL, is.URL),
	)
}

// AlbumResponse carries the joined artist name for the admin table.
type AlbumResponse struct {
	ID          uuid.UUID `json:"id"`
	ArtistID    uuid.UUID `json:"artist_id"`
	ArtistName  string    `json:"artist_name"`
	Title       string    `json:"title"`
	ReleaseYear *int      `json:"release_year,omitempty"`
	AlbumType   string    `json:"album_type"`
	CoverURL    *string   `json:"cover_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Option feeds the album selector in the track form.
type Option struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

// ApplyToEntity applies the non-nil update fields.
func (r *UpdateAlbumRequest) ApplyToEntity(a *Album) {
	if r.ArtistID != nil {
		a.ArtistID = *r.ArtistID
	}
	if r.Title != nil {
		a.Title = *r.Title
	}
	if r.ReleaseYear != nil {
		a.ReleaseYear = r.ReleaseYear
	}
	if r.AlbumType != nil {
		a.AlbumType = *r.AlbumType
	}
	if r.CoverURL != nil {
		a.CoverURL = r.CoverURL
	}
}
