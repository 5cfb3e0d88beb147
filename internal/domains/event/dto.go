package event

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

const (
	MaxTitleLength       = 255
	MaxLocationLength    = 255
	MaxDescriptionLength = 5000
)

// CreateEventRequest - POST /admin/events
// ArtistIDs is the full lineup; the join rows are replaced wholesale on
// every write.
type CreateEventRequest struct {
	Title       string      `json:"title"`
	Description *string     `json:"description,omitempty"`
	Location    string      `json:"location"`
	StartDate   time.Time   `json:"start_date"`
	EndDate     *time.Time  `json:"end_date,omitempty"`
	ImageURL    *string     `json:"image_url,omitempty"`
	TicketURL   *string     `json:"ticket_url,omitempty"`
	ArtistIDs   []uuid.UUID `json:"artist_ids"`
}

func (r CreateEventRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.Description, validation.Length(0, MaxDescriptionLength)),
		validation.Field(&r.Location,
			validation.Required.Error("location is required"),
			validation.Length(1, MaxLocationLength),
		),
		validation.Field(&r.StartDate, validation.Required.Error("start_date is required")),
		validation.Field(&r.EndDate, validation.By(endNotBeforeStart(r.StartDate))),
		validation.Field(&r.ImageURL, is.URL),
		validation.Field(&r.TicketURL, is.URL),
	)
}

// UpdateEventRequest - PUT /admin/events/:id
// Nil fields are left alone. A non-nil ArtistIDs replaces the lineup; an
// empty non-nil slice clears it.
type UpdateEventRequest struct {
	Title       *string      `json:"title,omitempty"`
	Description *string      `json:"description,omitempty"`
	Location    *string      `json:"location,omitempty"`
	StartDate   *time.Time   `json:"start_date,omitempty"`
	EndDate     *time.Time   `json:"end_date,omitempty"`
	ImageURL    *string      `json:"image_url,omitempty"`
	TicketURL   *string      `json:"ticket_url,omitempty"`
	ArtistIDs   *[]uuid.UUID `json:"artist_ids,omitempty"`
}

func (r UpdateEventRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be empty"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.Description, validation.Length(0, MaxDescriptionLength)),
		validation.Field(&r.Location,
			validation.NilOrNotEmpty.Error("location cannot be empty"),
			validation.Length(1, MaxLocationLength),
		),
		validation.Field(&r.ImageURL, is.URL),
		validation.Field(&r.TicketURL, is.URL),
	)
}

// endNotBeforeStart rejects an end date earlier than the start.
func endNotBeforeStart(start time.Time) validation.RuleFunc {
	return func(value interface{}) error {
		end, ok := value.(*time.Time)
		if !ok || end == nil {
			return nil
		}
		if end.Before(start) {
			return errors.New("cannot be before start_date")
		}
		return nil
	}
}

// EventResponse embeds the lineup.
type EventResponse struct {
	Event
	Artists []ArtistRef `json:"artists"`
}

// MonthQuery - GET /api/v1/events?month=&year=
type MonthQuery struct {
	Month int `form:"month"`
	Year  int `form:"year"`
}

func (q MonthQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Month, validation.Min(1), validation.Max(12)),
		validation.Field(&q.Year, validation.Min(1900), validation.Max(2200)),
	)
}

// ApplyToEntity applies the non-nil update fields. ArtistIDs is handled
// by the service, not here.
func (r *UpdateEventRequest) ApplyToEntity(e *Event) {
	if r.Title != nil {
		e.Title = *r.Title
	}
	if r.Description != nil {
		e.Description = r.Description
	}
	if r.Location != nil {
		e.Location = *r.Location
	}
	if r.StartDate != nil {
		e.StartDate = *r.StartDate
	}
	if r.EndDate != nil {
		e.EndDate = r.EndDate
	}
	if r.ImageURL != nil {
		e.ImageURL = r.ImageURL
	}
	if r.TicketURL != nil {
		e.TicketURL = r.TicketURL
	}
}
