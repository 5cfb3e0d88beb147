package liveset

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 5000
)

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

// CreateLiveSetRequest - POST /admin/live-sets
type CreateLiveSetRequest struct {
	ArtistID        uuid.UUID  `json:"artist_id"`
	EventID         *uuid.UUID `json:"event_id,omitempty"`
	Title           string     `json:"title"`
	EventName       *string    `json:"event_name,omitempty"`
	PerformanceDate *time.Time `json:"performance_date,omitempty"`
	VideoURL        *string    `json:"video_url,omitempty"`
	AudioURL        *string    `json:"audio_url,omitempty"`
	Description     *string    `json:"description,omitempty"`
}

func (r CreateLiveSetRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArtistID, validation.By(requiredUUID)),
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.EventName, validation.Length(0, MaxTitleLength)),
		validation.Field(&r.VideoURL, is.URL),
		validation.Field(&r.AudioURL, is.URL),
		validation.Field(&r.Description, validation.Length(0, MaxDescriptionLength)),
	)
}

// UpdateLiveSetRequest - PUT /admin/live-sets/:id
// All fields optional: only non-nil fields are applied.
type UpdateLiveSetRequest struct {
	ArtistID        *uuid.UUID `json:"artist_id,omitempty"`
	EventID         *uuid.UUID `json:"event_id,omitempty"`
	Title           *string    `json:"title,omitempty"`
	EventName       *string    `json:"event_name,omitempty"`
	PerformanceDate *time.Time `json:"performance_date,omitempty"`
	VideoURL        *string    `json:"video_url,omitempty"`
	AudioURL        *string    `json:"audio_url,omitempty"`
	Description     *string    `json:"description,omitempty"`
}

func (r UpdateLiveSetRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be empty"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.EventName, validation.Length(0, MaxTitleLength)),
		validation.Field(&r.VideoURL, is.URL),
		validation.Field(&r.AudioURL, is.URL),
		validation.Field(&r.Description, validation.Length(0, MaxDescriptionLength)),
	)
}

// LiveSetResponse carries the joined artist name for the admin table.
type LiveSetResponse struct {
	LiveSet
	ArtistName string `json:"artist_name"`
}

// ApplyToEntity applies the non-nil update fields.
func (r *UpdateLiveSetRequest) ApplyToEntity(s *LiveSet) {
	if r.ArtistID != nil {
		s.ArtistID = *r.ArtistID
	}
	if r.EventID != nil {
		s.EventID = r.EventID
	}
	if r.Title != nil {
		s.Title = *r.Title
	}
	if r.EventName != nil {
		s.EventName = r.EventName
	}
	if r.PerformanceDate != nil {
		s.PerformanceDate = r.PerformanceDate
	}
	if r.VideoURL != nil {
		s.VideoURL = r.VideoURL
	}
	if r.AudioURL != nil {
		s.AudioURL = r.AudioURL
	}
	if r.Description != nil {
		s.Description = r.Description
	}
}
