package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dacosta-backend/internal/domains/liveset"
	"dacosta-backend/internal/shared/listing"
)

type fakeLiveSetRepo struct {
	sets        map[uuid.UUID]*liveset.LiveSet
	artistNames map[uuid.UUID]string
	eventIDs    map[uuid.UUID]bool

	createCalled bool
}

func newFakeLiveSetRepo() *fakeLiveSetRepo {
	return &fakeLiveSetRepo{
		sets:        map[uuid.UUID]*liveset.LiveSet{},
		artistNames: map[uuid.UUID]string{},
		eventIDs:    map[uuid.UUID]bool{},
	}
}

func (f *fakeLiveSetRepo) Create(ctx context.Context, s *liveset.LiveSet) (*liveset.LiveSet, error) {
	f.createCalled = true
	if _, ok := f.artistNames[s.ArtistID]; !ok {
		return nil, liveset.ErrArtistNotFound
	}
	if s.EventID != nil && !f.eventIDs[*s.EventID] {
		return nil, liveset.ErrEventNotFound
	}
	s.ID = uuid.New()
	f.sets[s.ID] = s
	return s, nil
}

func (f *fakeLiveSetRepo) GetByID(ctx context.Context, id uuid.UUID) (*liveset.LiveSet, error) {
	s, ok := f.sets[id]
	if !ok {
		return nil, liveset.ErrLiveSetNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeLiveSetRepo) GetAll(ctx context.Context, p listing.Params, flt liveset.Filter) ([]liveset.LiveSetResponse, int64, error) {
	out := []liveset.LiveSetResponse{}
	for _, s := range f.sets {
		if flt.ArtistID != nil && s.ArtistID != *flt.ArtistID {
			continue
		}
		out = append(out, liveset.LiveSetResponse{
			LiveSet:    *s,
			ArtistName: f.artistNames[s.ArtistID],
		})
	}
	return out, int64(len(out)), nil
}

func (f *fakeLiveSetRepo) Update(ctx context.Context, s *liveset.LiveSet) (*liveset.LiveSet, error) {
	if _, ok := f.sets[s.ID]; !ok {
		return nil, liveset.ErrLiveSetNotFound
	}
	f.sets[s.ID] = s
	return s, nil
}

func (f *fakeLiveSetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.sets[id]; !ok {
		return liveset.ErrLiveSetNotFound
	}
	delete(f.sets, id)
	return nil
}

func TestLiveSetServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("free-text event name needs no event link", func(t *testing.T) {
		repo := newFakeLiveSetRepo()
		svc := NewLiveSetService(repo)
		artistID := uuid.New()
		repo.artistNames[artistID] = "Nova"

		eventName := "Boiler Room Lisboa"
		when := time.Date(2025, 11, 8, 23, 0, 0, 0, time.UTC)
		created, err := svc.Create(ctx, &liveset.CreateLiveSetRequest{
			ArtistID:        artistID,
			Title:           "  Boiler Room Set  ",
			EventName:       &eventName,
			PerformanceDate: &when,
		})
		require.NoError(t, err)
		assert.Equal(t, "Boiler Room Set", created.Title)
		assert.Nil(t, created.EventID)
	})

	t.Run("empty title never reaches the repo", func(t *testing.T) {
		repo := newFakeLiveSetRepo()
		svc := NewLiveSetService(repo)

		_, err := svc.Create(ctx, &liveset.CreateLiveSetRequest{ArtistID: uuid.New()})
		require.Error(t, err)
		assert.False(t, repo.createCalled)
	})

	t.Run("zero artist id never reaches the repo", func(t *testing.T) {
		repo := newFakeLiveSetRepo()
		svc := NewLiveSetService(repo)

		_, err := svc.Create(ctx, &liveset.CreateLiveSetRequest{Title: "Boiler Room Set"})
		require.Error(t, err)
		assert.False(t, repo.createCalled)
	})

	t.Run("unknown event surfaces the fk error", func(t *testing.T) {
		repo := newFakeLiveSetRepo()
		svc := NewLiveSetService(repo)
		artistID := uuid.New()
		repo.artistNames[artistID] = "Nova"
		eventID := uuid.New()

		_, err := svc.Create(ctx, &liveset.CreateLiveSetRequest{
			ArtistID: artistID,
			EventID:  &eventID,
			Title:    "Boiler Room Set",
		})
		assert.ErrorIs(t, err, liveset.ErrEventNotFound)
	})

	t.Run("video url must be a url", func(t *testing.T) {
		svc := NewLiveSetService(newFakeLiveSetRepo())

		bad := "not a url"
		_, err := svc.Create(ctx, &liveset.CreateLiveSetRequest{
			ArtistID: uuid.New(),
			Title:    "Boiler Room Set",
			VideoURL: &bad,
		})
		assert.Error(t, err)
	})
}

func TestLiveSetServiceUpdate(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, repo *fakeLiveSetRepo) *liveset.LiveSet {
		t.Helper()
		artistID := uuid.New()
		repo.artistNames[artistID] = "Nova"

		created, err := NewLiveSetService(repo).Create(ctx, &liveset.CreateLiveSetRequest{
			ArtistID: artistID,
			Title:    "Boiler Room Set",
		})
		require.NoError(t, err)
		return created
	}

	t.Run("patches only the non-nil fields", func(t *testing.T) {
		repo := newFakeLiveSetRepo()
		svc := NewLiveSetService(repo)
		created := seed(t, repo)

		eventName := "Sonar 2026"
		updated, err := svc.Update(ctx, created.ID, &liveset.UpdateLiveSetRequest{EventName: &eventName})
		require.NoError(t, err)
		require.NotNil(t, updated.EventName)
		assert.Equal(t, "Sonar 2026", *updated.EventName)
		assert.Equal(t, "Boiler Room Set", updated.Title)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		repo := newFakeLiveSetRepo()
		svc := NewLiveSetService(repo)
		created := seed(t, repo)

		empty := ""
		_, err := svc.Update(ctx, created.ID, &liveset.UpdateLiveSetRequest{Title: &empty})
		assert.Error(t, err)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := NewLiveSetService(newFakeLiveSetRepo())

		title := "Ghost Set"
		_, err := svc.Update(ctx, uuid.New(), &liveset.UpdateLiveSetRequest{Title: &title})
		assert.ErrorIs(t, err, liveset.ErrLiveSetNotFound)
	})
}

func TestLiveSetServiceListFilteredByArtist(t *testing.T) {
	ctx := context.Background()
	repo := newFakeLiveSetRepo()
	svc := NewLiveSetService(repo)

	nova := uuid.New()
	other := uuid.New()
	repo.artistNames[nova] = "Nova"
	repo.artistNames[other] = "Madrugada"

	_, err := svc.Create(ctx, &liveset.CreateLiveSetRequest{ArtistID: nova, Title: "Boiler Room Set"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &liveset.CreateLiveSetRequest{ArtistID: other, Title: "Sunrise Set"})
	require.NoError(t, err)

	rows, meta, err := svc.List(ctx, listing.Params{}, liveset.Filter{ArtistID: &nova})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Boiler Room Set", rows[0].Title)
	assert.Equal(t, "Nova", rows[0].ArtistName)
	assert.Equal(t, int64(1), meta.TotalItems)
}

func TestLiveSetServiceDeleteFromList(t *testing.T) {
	ctx := context.Background()
	repo := newFakeLiveSetRepo()
	svc := NewLiveSetService(repo)
	artistID := uuid.New()
	repo.artistNames[artistID] = "Nova"

	created, err := svc.Create(ctx, &liveset.CreateLiveSetRequest{ArtistID: artistID, Title: "Boiler Room Set"})
	require.NoError(t, err)

	rows, meta, err := svc.DeleteFromList(ctx, created.ID, listing.Params{Page: 1, PageSize: 10}, liveset.Filter{})
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Equal(t, 1, meta.Page)

	_, _, err = svc.DeleteFromList(ctx, created.ID, listing.Params{Page: 1, PageSize: 10}, liveset.Filter{})
	assert.ErrorIs(t, err, liveset.ErrLiveSetNotFound)
}
