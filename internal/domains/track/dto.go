package track

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

const MaxTitleLength = 255

func requiredUUID(value interface{}) error {
	id, ok := value.(uuid.UUID)
	if !ok {
		return errors.New("must be a UUID")
	}
	if id == uuid.Nil {
		return errors.New("is required")
	}
	return nil
}

// CreateTrackRequest - POST /admin/tracks
type CreateTrackRequest struct {
	ArtistID    uuid.UUID  `json:"artist_id"`
	AlbumID     *uuid.UUID `json:"album_id,omitempty"`
	Title       string     `json:"title"`
	TrackNumber *int       `json:"track_number,omitempty"`
	Duration    int        `json:"duration"`
	Featuring   *string    `json:"featuring,omitempty"`
	AudioURL    *string    `json:"audio_url,omitempty"`
}

func (r CreateTrackRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArtistID, validation.By(requiredUUID)),
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.TrackNumber, validation.Min(1)),
		validation.Field(&r.Duration, validation.Min(0)),
		validation.Field(&r.Featuring, validation.Length(0, MaxTitleLength)),
		validation.Field(&r.AudioURL, is.URL),
	)
}

// UpdateTrackRequest - PUT /admin/tracks/:id
// All fields optional: only non-nil fields are applied. ClearAlbum
// detaches the track from its album, since a nil AlbumID alone cannot
// distinguish "leave alone" from "remove".
type UpdateTrackRequest struct {
	ArtistID    *uuid.UUID `json:"artist_id,omitempty"`
	AlbumID     *uuid.UUID `json:"album_id,omitempty"`
	ClearAlbum  bool       `json:"clear_album,omitempty"`
	Title       *string    `json:"title,omitempty"`
	TrackNumber *int       `json:"track_number,omitempty"`
	Duration    *int       `json:"duration,omitempty"`
	Featuring   *string    `json:"featuring,omitempty"`
	AudioURL    *string    `json:"audio_url,omitempty"`
}

func (r UpdateTrackRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be empty"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.TrackNumber, validation.Min(1)),
		validation.Field(&r.Duration, validation.Min(0)),
		validation.Field(&r.Featuring, validation.Length(0, MaxTitleLength)),
		validation.Field(&r.AudioURL, is.URL),
	)
}

// TrackResponse carries the joined artist and album names for the admin
// table.
type TrackResponse struct {
	ID          uuid.UUID  `json:"id"`
	ArtistID    uuid.UUID  `json:"artist_id"`
	ArtistName  string     `json:"artist_name"`
	AlbumID     *uuid.UUID `json:"album_id,omitempty"`
	AlbumTitle  *string    `json:"album_title,omitempty"`
	Title       string     `json:"title"`
	TrackNumber *int       `json:"track_number,omitempty"`
	Duration    int        `json:"duration"`
	Featuring   *string    `json:"featuring,omitempty"`
	AudioURL    *string    `json:"audio_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ApplyToEntity applies the non-nil update fields.
func (r *UpdateTrackRequest) ApplyToEntity(t *Track) {
	if r.ArtistID != nil {
		t.ArtistID = *r.ArtistID
	}
	if r.ClearAlbum {
		t.AlbumID = nil
	} else if r.AlbumID != nil {
		t.AlbumID = r.AlbumID
	}
	if r.Title != nil {
		t.Title = *r.Title
	}
	if r.TrackNumber != nil {
		t.TrackNumber = r.TrackNumber
	}
	if r.Duration != nil {
		t.Duration = *r.Duration
	}
	if r.Featuring != nil {
		t.Featuring = r.Featuring
	}
	if r.AudioURL != nil {
		t.AudioURL = r.AudioURL
	}
}
