package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"dacosta-backend/internal/domains/event"
	"dacosta-backend/internal/shared/listing"
	"dacosta-backend/pkg/logger"
)

type eventService struct {
	repo event.Repository
	loc  *time.Location
}

// NewEventService builds the event service. loc is the zone all calendar
// day math happens in.
func NewEventService(repo event.Repository, loc *time.Location) event.Service {
	if loc == nil {
		loc = time.UTC
	}
	return &eventService{repo: repo, loc: loc}
}

func (s *eventService) Create(ctx context.Context, req *event.CreateEventRequest) (*event.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return nil, event.ErrInvalidDateRange
	}

	created, err := s.repo.Create(ctx, &event.Event{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Location:    req.Location,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		ImageURL:    req.ImageURL,
		TicketURL:   req.TicketURL,
	}, req.ArtistIDs)
	if err != nil {
		return nil, err
	}

	logger.Info("Event created", map[string]interface{}{
		"event_id": created.ID.String(),
		"lineup":   len(created.Artists),
	})

	return created, nil
}

func (s *eventService) GetByID(ctx context.Context, id uuid.UUID) (*event.EventResponse, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *eventService) List(ctx context.Context, p listing.Params) ([]event.EventResponse, listing.Meta, error) {
	p.Normalize()

	events, total, err := s.repo.GetAll(ctx, p)
	if err != nil {
		return nil, listing.Meta{}, err
	}
	if events == nil {
		events = []event.EventResponse{}
	}

	return events, listing.NewMeta(p, total), nil
}

// ListMonth serves the public calendar. Zero year/month falls back to the
// current month in the configured zone.
func (s *eventService) ListMonth(ctx context.Context, year int, month time.Month) ([]event.EventResponse, error) {
	if year == 0 || month == 0 {
		now := time.Now().In(s.loc)
		year, month = now.Year(), now.Month()
	}
	if month < time.January || month > time.December {
		return nil, event.ErrInvalidMonth
	}

	from, to := event.MonthRange(year, month, s.loc)
	return s.repo.ListWindow(ctx, from, to)
}

func (s *eventService) Update(ctx context.Context, id uuid.UUID, req *event.UpdateEventRequest) (*event.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entity := existing.Event
	req.ApplyToEntity(&entity)
	entity.Title = strings.TrimSpace(entity.Title)

	if entity.EndDate != nil && entity.EndDate.Before(entity.StartDate) {
		return nil, event.ErrInvalidDateRange
	}

	updated, err := s.repo.Update(ctx, &entity)
	if err != nil {
		return nil, err
	}

	if req.ArtistIDs != nil {
		if err := s.repo.ReplaceArtists(ctx, id, *req.ArtistIDs); err != nil {
			return nil, err
		}
		updated, err = s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
	}

	logger.Info("Event updated", map[string]interface{}{"event_id": updated.ID.String()})

	return updated, nil
}

func (s *eventService) DeleteFromList(ctx context.Context, id uuid.UUID, p listing.Params) ([]event.EventResponse, listing.Meta, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, listing.Meta{}, err
	}

	logger.Info("Event deleted", map[string]interface{}{"event_id": id.String()})

	p.Normalize()
	return listing.FetchAfterDelete(ctx, p, s.repo.GetAll)
}
