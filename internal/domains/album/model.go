package album

import (
	"time"

	"github.com/google/uuid"
)

// Release type values stored in albums.album_type.
const (
	TypeAlbum  = "album"
	TypeEP     = "ep"
	TypeSingle = "single"
)

// Album is a release in an artist's catalog: a full album, an EP or a
// single.
type Album struct {
	ID          uuid.UUID `json:"id" db:"id"`
	ArtistID    uuid.UUID `json:"artist_id" db:"artist_id"`
	Title       string    `json:"title" db:"title"`
	ReleaseYear *int      `json:"release_year,omitempty" db:"release_year"`
	AlbumType   string    `json:"album_type" db:"album_type"`
	CoverURL    *string   `json:"cover_url,omitempty" db:"cover_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
