package artist

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

const (
	MaxNameLength = 255
	MinNameLength = 2
	MaxBioLength  = 5000
)

// CreateArtistRequest - POST /admin/artists
type CreateArtistRequest struct {
	Name     string  `json:"name"`
	Bio      *string `json:"bio,omitempty"`
	LogoURL  *string `json:"logo_url,omitempty"`
	PhotoURL *string `json:"photo_url,omitempty"`
}

func (r CreateArtistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(MinNameLength, MaxNameLength),
		),
		validation.Field(&r.Bio,
			validation.Length(0, MaxBioLength).Error("bio is too long"),
		),
		validation.Field(&r.LogoURL, is.URL),
		validation.Field(&r.PhotoURL, is.URL),
	)
}

// UpdateArtistRequest - PUT /admin/artists/:id
// All fields optional: only non-nil fields are applied.
type UpdateArtistRequest struct {
	Name     *string `json:"name,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	LogoURL  *string `json:"logo_url,omitempty"`
	PhotoURL *string `json:"photo_url,omitempty"`
}

func (r UpdateArtistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error("name cannot be empty"),
			validation.Length(MinNameLength, MaxNameLength),
		),
		validation.Field(&r.Bio, validation.Length(0, MaxBioLength)),
		validation.Field(&r.LogoURL, is.URL),
		validation.Field(&r.PhotoURL, is.URL),
	)
}

// UpdateStatsRequest - PUT /admin/artists/:id/stats
type UpdateStatsRequest struct {
	Streams            int64 `json:"streams"`
	Followers          int64 `json:"followers"`
	MonthlyListeners   int64 `json:"monthly_listeners"`
	YoutubeViews       int64 `json:"youtube_views"`
	YoutubeSubscribers int64 `json:"youtube_subscribers"`
}

func (r UpdateStatsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Streams, validation.Min(int64(0))),
		validation.Field(&r.Followers, validation.Min(int64(0))),
		validation.Field(&r.MonthlyListeners, validation.Min(int64(0))),
		validation.Field(&r.YoutubeViews, validation.Min(int64(0))),
		validation.Field(&r.YoutubeSubscribers, validation.Min(int64(0))),
	)
}

// ArtistResponse - basic artist information
type ArtistResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Bio       *string   `json:"bio,omitempty"`
	LogoURL   *string   `json:"logo_url,omitempty"`
	PhotoURL  *string   `json:"photo_url,omitempty"`
	Stats     *Stats    `json:"stats,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Nested catalog rows for the public by-slug detail. Defined here (not in
// the album/track/liveset packages) so the artist repository can hydrate
// the whole profile in one place without import cycles.
type NestedTrack struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	TrackNumber *int      `json:"track_number,omitempty"`
	Duration    int       `json:"duration"`
	Featuring   *string   `json:"featuring,omitempty"`
	AudioURL    *string   `json:"audio_url,omitempty"`
}

type NestedAlbum struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	ReleaseYear *int          `json:"release_year,omitempty"`
	AlbumType   string        `json:"album_type"`
	CoverURL    *string       `json:"cover_url,omitempty"`
	Tracks      []NestedTrack `json:"tracks"`
}

type NestedLiveSet struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	EventName       *string    `json:"event_name,omitempty"`
	PerformanceDate *time.Time `json:"performance_date,omitempty"`
	VideoURL        *string    `json:"video_url,omitempty"`
	AudioURL        *string    `json:"audio_url,omitempty"`
}

// ArtistDetailResponse - public artist page: profile + stats + catalog.
type ArtistDetailResponse struct {
	ArtistResponse
	Albums   []NestedAlbum   `json:"albums"`
	LiveSets []NestedLiveSet `json:"live_sets"`
}

// Option feeds dependent form selectors, ordered by name.
type Option struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ImportRowError reports one rejected spreadsheet row.
type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportResult summarises an .xlsx roster import.
type ImportResult struct {
	Created int              `json:"created"`
	Failed  int              `json:"failed"`
	Errors  []ImportRowError `json:"errors,omitempty"`
}

// ToResponse converts an Artist entity to its response DTO.
func (a Artist) ToResponse() *ArtistResponse {
	return &ArtistResponse{
		ID:        a.ID,
		Name:      a.Name,
		Slug:      a.Slug,
		Bio:       a.Bio,
		LogoURL:   a.LogoURL,
		PhotoURL:  a.PhotoURL,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ApplyToEntity applies the non-nil update fields.
func (r *UpdateArtistRequest) ApplyToEntity(a *Artist) {
	if r.Name != nil {
		a.Name = *r.Name
	}
	if r.Bio != nil {
		a.Bio = r.Bio
	}
	if r.LogoURL != nil {
		a.LogoURL = r.LogoURL
	}
	if r.PhotoURL != nil {
		a.PhotoURL = r.PhotoURL
	}
}
