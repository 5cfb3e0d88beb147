package track

import (
	"time"

	"github.com/google/uuid"
)

// Track is a single recording. AlbumID is optional: standalone singles
// live outside any album. Duration is in whole seconds, zero when unknown.
type Track struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	ArtistID    uuid.UUID  `json:"artist_id" db:"artist_id"`
	AlbumID     *uuid.UUID `json:"album_id,omitempty" db:"album_id"`
	Title       string     `json:"title" db:"title"`
	TrackNumber *int       `json:"track_number,omitempty" db:"track_number"`
	Duration    int        `json:"duration" db:"duration"`
	Featuring   *string    `json:"featuring,omitempty" db:"featuring"`
	AudioURL    *string    `json:"audio_url,omitempty" db:"audio_url"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}
