package event

import (
	"time"

	"github.com/google/uuid"
)

// Event is a show, festival appearance or club night on the agency
// calendar. EndDate is optional: most events are single-day.
type Event struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description,omitempty" db:"description"`
	Location    string     `json:"location" db:"location"`
	StartDate   time.Time  `json:"start_date" db:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty" db:"end_date"`
	ImageURL    *string    `json:"image_url,omitempty" db:"image_url"`
	TicketURL   *string    `json:"ticket_url,omitempty" db:"ticket_url"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// ArtistRef is the slim artist shape embedded in event payloads.
type ArtistRef struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
	Slug string    `json:"slug" db:"slug"`
}
