package artist

import (
	"time"

	"github.com/google/uuid"
)

// Artist is the roster entity. Referenced by albums, tracks, live sets and
// events (through the event_artists join).
type Artist struct {
	ID uuid.UUID `json:"id" db:"id"`

	Name string `json:"name" db:"name"`
	Slug string `json:"slug" db:"slug"` // URL-friendly, unique, auto-generated

	Bio      *string `json:"bio" db:"bio"`
	LogoURL  *string `json:"logo_url" db:"logo_url"`
	PhotoURL *string `json:"photo_url" db:"photo_url"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Stats is the per-artist reach snapshot shown on the public roster.
type Stats struct {
	ID                 uuid.UUID `json:"id" db:"id"`
	ArtistID           uuid.UUID `json:"artist_id" db:"artist_id"`
	Streams            int64     `json:"streams" db:"streams"`
	Followers          int64     `json:"followers" db:"followers"`
	MonthlyListeners   int64     `json:"monthly_listeners" db:"monthly_listeners"`
	YoutubeViews       int64     `json:"youtube_views" db:"youtube_views"`
	YoutubeSubscribers int64     `json:"youtube_subscribers" db:"youtube_subscribers"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}
