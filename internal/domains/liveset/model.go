package liveset

import (
	"time"

	"github.com/google/uuid"
)

// LiveSet is a recorded performance: a festival set, a radio mix, a club
// night. EventID links it to a calendar event when one exists; EventName
// is free text for performances outside the agency calendar.
type LiveSet struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	ArtistID        uuid.UUID  `json:"artist_id" db:"artist_id"`
	EventID         *uuid.UUID `json:"event_id,omitempty" db:"event_id"`
	Title           string     `json:"title" db:"title"`
	EventName       *string    `json:"event_name,omitempty" db:"event_name"`
	PerformanceDate *time.Time `json:"performance_date,omitempty" db:"performance_date"`
	VideoURL        *string    `json:"video_url,omitempty" db:"video_url"`
	AudioURL        *string    `json:"audio_url,omitempty" db:"audio_url"`
	Description     *string    `json:"description,omitempty" db:"description"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}
