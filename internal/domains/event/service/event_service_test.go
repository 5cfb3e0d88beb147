package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dacosta-backend/internal/domains/event"
	"dacosta-backend/internal/shared/listing"
)

// fakeEventRepo records calls; individual funcs override behavior per test.
type fakeEventRepo struct {
	events map[uuid.UUID]*event.EventResponse

	createCalled  bool
	createLineup  []uuid.UUID
	replaceCalls  [][]uuid.UUID
	replaceEvent  uuid.UUID
	listWindowed  bool
	windowFrom    time.Time
	windowTo      time.Time
	deletedID     uuid.UUID
	getAllReturns []event.EventResponse
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[uuid.UUID]*event.EventResponse{}}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *event.Event, artistIDs []uuid.UUID) (*event.EventResponse, error) {
	f.createCalled = true
	f.createLineup = artistIDs

	e.ID = uuid.New()
	resp := &event.EventResponse{Event: *e, Artists: make([]event.ArtistRef, len(artistIDs))}
	f.events[e.ID] = resp
	return resp, nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*event.EventResponse, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, event.ErrEventNotFound
	}
	return e, nil
}

func (f *fakeEventRepo) GetAll(ctx context.Context, p listing.Params) ([]event.EventResponse, int64, error) {
	return f.getAllReturns, int64(len(f.getAllReturns)), nil
}

func (f *fakeEventRepo) ListWindow(ctx context.Context, from, to time.Time) ([]event.EventResponse, error) {
	f.listWindowed = true
	f.windowFrom, f.windowTo = from, to
	return []event.EventResponse{}, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, e *event.Event) (*event.EventResponse, error) {
	existing, ok := f.events[e.ID]
	if !ok {
		return nil, event.ErrEventNotFound
	}
	existing.Event = *e
	return existing, nil
}

func (f *fakeEventRepo) ReplaceArtists(ctx context.Context, eventID uuid.UUID, artistIDs []uuid.UUID) error {
	f.replaceEvent = eventID
	f.replaceCalls = append(f.replaceCalls, artistIDs)
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.events[id]; !ok {
		return event.ErrEventNotFound
	}
	delete(f.events, id)
	f.deletedID = id
	return nil
}

func TestEventServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("passes lineup through", func(t *testing.T) {
		repo := newFakeEventRepo()
		svc := NewEventService(repo, time.UTC)
		lineup := []uuid.UUID{uuid.New(), uuid.New()}

		resp, err := svc.Create(ctx, &event.CreateEventRequest{
			Title:     "  Warehouse Night  ",
			Location:  "Armazem 12, Porto",
			StartDate: time.Date(2026, 9, 12, 22, 0, 0, 0, time.UTC),
			ArtistIDs: lineup,
		})
		require.NoError(t, err)
		assert.Equal(t, "Warehouse Night", resp.Title)
		assert.Equal(t, lineup, repo.createLineup)
	})

	t.Run("rejects missing title without touching the repo", func(t *testing.T) {
		repo := newFakeEventRepo()
		svc := NewEventService(repo, time.UTC)

		_, err := svc.Create(ctx, &event.CreateEventRequest{
			Location:  "Armazem 12, Porto",
			StartDate: time.Date(2026, 9, 12, 22, 0, 0, 0, time.UTC),
		})
		require.Error(t, err)
		assert.False(t, repo.createCalled)
	})

	t.Run("rejects missing location", func(t *testing.T) {
		repo := newFakeEventRepo()
		svc := NewEventService(repo, time.UTC)

		_, err := svc.Create(ctx, &event.CreateEventRequest{
			Title:     "Warehouse Night",
			StartDate: time.Date(2026, 9, 12, 22, 0, 0, 0, time.UTC),
		})
		require.Error(t, err)
		assert.False(t, repo.createCalled)
	})

	t.Run("rejects end before start", func(t *testing.T) {
		repo := newFakeEventRepo()
		svc := NewEventService(repo, time.UTC)

		start := time.Date(2026, 9, 12, 22, 0, 0, 0, time.UTC)
		end := start.Add(-24 * time.Hour)
		_, err := svc.Create(ctx, &event.CreateEventRequest{
			Title:     "Backwards",
			Location:  "Armazem 12, Porto",
			StartDate: start,
			EndDate:   &end,
		})
		require.Error(t, err)
		assert.False(t, repo.createCalled)
	})
}

func TestEventServiceUpdateLineup(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, repo *fakeEventRepo) uuid.UUID {
		t.Helper()
		resp, err := NewEventService(repo, time.UTC).Create(ctx, &event.CreateEventRequest{
			Title:     "Open Air",
			Location:  "Parque da Cidade",
			StartDate: time.Date(2026, 10, 3, 18, 0, 0, 0, time.UTC),
			ArtistIDs: []uuid.UUID{uuid.New()},
		})
		require.NoError(t, err)
		return resp.ID
	}

	t.Run("non-nil ids replace the lineup wholesale", func(t *testing.T) {
		repo := newFakeEventRepo()
		svc := NewEventService(repo, time.UTC)
		id := seed(t, repo)

		next := []uuid.UUID{uuid.New(), uuid.New()}
		_, err := svc.Update(ctx, id, &event.UpdateEventRequest{ArtistIDs: &next})
		require.NoError(t, err)

		require.Len(t, repo.replaceCalls, 1)
		assert.Equal(t, next, repo.replaceCalls[0])
		assert.Equal(t, id, repo.replaceEvent)
	})

	t.Run("empty non-nil slice clears the lineup", func(t *testing.T) {
		repo := newFakeEventRepo()
		svc := NewEventService(repo, time.UTC)
		id := seed(t, repo)

		empty := []uuid.UUID{}
		_, err := svc.Update(ctx, id, &event.UpdateEventRequest{ArtistIDs: &empty})
		require.NoError(t, err)

		require.Len(t, repo.replaceCalls, 1)
		assert.Empty(t, repo.replaceCalls[0])
	})

	t.Run("nil ids leave the lineup alone", func(t *testing.T) {
		repo := newFakeEventRepo()
		svc := NewEventService(repo, time.UTC)
		id := seed(t, repo)

		title := "Open Air 2026"
		_, err := svc.Update(ctx, id, &event.UpdateEventRequest{Title: &title})
		require.NoError(t, err)
		assert.Empty(t, repo.replaceCalls)
	})

	t.Run("update cannot move end before start", func(t *testing.T) {
		repo := newFakeEventRepo()
		svc := NewEventService(repo, time.UTC)
		id := seed(t, repo)

		end := time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC) // before the seeded start
		_, err := svc.Update(ctx, id, &event.UpdateEventRequest{EndDate: &end})
		assert.ErrorIs(t, err, event.ErrInvalidDateRange)
	})
}

func TestEventServiceListMonth(t *testing.T) {
	ctx := context.Background()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	t.Run("queries the half open month window", func(t *testing.T) {
		repo := newFakeEventRepo()
		svc := NewEventService(repo, loc)

		_, err := svc.ListMonth(ctx, 2026, time.March)
		require.NoError(t, err)
		assert.True(t, repo.listWindowed)
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, loc), repo.windowFrom)
		assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, loc), repo.windowTo)
	})

	t.Run("zero month falls back to current month", func(t *testing.T) {
		repo := newFakeEventRepo()
		svc := NewEventService(repo, loc)

		_, err := svc.ListMonth(ctx, 0, 0)
		require.NoError(t, err)

		now := time.Now().In(loc)
		assert.Equal(t, now.Month(), repo.windowFrom.Month())
		assert.Equal(t, now.Year(), repo.windowFrom.Year())
	})

	t.Run("out of range month rejected", func(t *testing.T) {
		repo := newFakeEventRepo()
		svc := NewEventService(repo, loc)

		_, err := svc.ListMonth(ctx, 2026, time.Month(13))
		assert.ErrorIs(t, err, event.ErrInvalidMonth)
	})
}

func TestEventServiceDeleteFromList(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	svc := NewEventService(repo, time.UTC)

	resp, err := svc.Create(ctx, &event.CreateEventRequest{
		Title:     "One Night Only",
		Location:  "Hard Club",
		StartDate: time.Date(2026, 11, 20, 21, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	repo.getAllReturns = []event.EventResponse{}
	rows, meta, err := svc.DeleteFromList(ctx, resp.ID, listing.Params{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, resp.ID, repo.deletedID)
	assert.Empty(t, rows)
	assert.Equal(t, 1, meta.Page)

	_, _, err = svc.DeleteFromList(ctx, resp.ID, listing.Params{Page: 1, PageSize: 10})
	assert.ErrorIs(t, err, event.ErrEventNotFound)
}
