package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"dacosta-backend/internal/domains/artist"
	"dacosta-backend/internal/shared/listing"
)

// fakeArtistRepo keeps artists in a map keyed by id, slugs in a set.
type fakeArtistRepo struct {
	artists map[uuid.UUID]*artist.Artist
	slugs   map[string]bool

	createCalled bool
	deletedID    uuid.UUID
	pages        map[int][]artist.Artist // GetAll pages keyed by page number
	total        int64
}

func newFakeArtistRepo() *fakeArtistRepo {
	return &fakeArtistRepo{
		artists: map[uuid.UUID]*artist.Artist{},
		slugs:   map[string]bool{},
	}
}

func (f *fakeArtistRepo) Create(ctx context.Context, a *artist.Artist) (*artist.Artist, error) {
	f.createCalled = true
	if f.slugs[a.Slug] {
		return nil, artist.ErrDuplicateSlug
	}
	a.ID = uuid.New()
	f.artists[a.ID] = a
	f.slugs[a.Slug] = true
	return a, nil
}

func (f *fakeArtistRepo) GetByID(ctx context.Context, id uuid.UUID) (*artist.Artist, error) {
	a, ok := f.artists[id]
	if !ok {
		return nil, artist.ErrArtistNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeArtistRepo) GetBySlug(ctx context.Context, slug string) (*artist.ArtistDetailResponse, error) {
	for _, a := range f.artists {
		if a.Slug == slug {
			return &artist.ArtistDetailResponse{ArtistResponse: *a.ToResponse()}, nil
		}
	}
	return nil, artist.ErrArtistNotFound
}

func (f *fakeArtistRepo) GetAll(ctx context.Context, p listing.Params) ([]artist.Artist, int64, error) {
	return f.pages[p.Page], f.total, nil
}

func (f *fakeArtistRepo) ListWithStats(ctx context.Context) ([]artist.ArtistResponse, error) {
	return []artist.ArtistResponse{}, nil
}

func (f *fakeArtistRepo) Update(ctx context.Context, a *artist.Artist) (*artist.Artist, error) {
	old, ok := f.artists[a.ID]
	if !ok {
		return nil, artist.ErrArtistNotFound
	}
	delete(f.slugs, old.Slug)
	f.slugs[a.Slug] = true
	f.artists[a.ID] = a
	return a, nil
}

func (f *fakeArtistRepo) Delete(ctx context.Context, id uuid.UUID) error {
	a, ok := f.artists[id]
	if !ok {
		return artist.ErrArtistNotFound
	}
	delete(f.slugs, a.Slug)
	delete(f.artists, id)
	f.deletedID = id
	return nil
}

func (f *fakeArtistRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	return f.slugs[slug], nil
}

func (f *fakeArtistRepo) Options(ctx context.Context) ([]artist.Option, error) {
	return []artist.Option{}, nil
}

func (f *fakeArtistRepo) UpsertStats(ctx context.Context, artistID uuid.UUID, req artist.UpdateStatsRequest) (*artist.Stats, error) {
	if _, ok := f.artists[artistID]; !ok {
		return nil, artist.ErrArtistNotFound
	}
	return &artist.Stats{ArtistID: artistID, Streams: req.Streams, Followers: req.Followers}, nil
}

func TestArtistServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("derives slug from name", func(t *testing.T) {
		repo := newFakeArtistRepo()
		svc := NewArtistService(repo)

		created, err := svc.Create(ctx, &artist.CreateArtistRequest{Name: "Luz Negra"})
		require.NoError(t, err)
		assert.Equal(t, "luz-negra", created.Slug)
		assert.Equal(t, "Luz Negra", created.Name)
	})

	t.Run("trims whitespace from name", func(t *testing.T) {
		repo := newFakeArtistRepo()
		svc := NewArtistService(repo)

		created, err := svc.Create(ctx, &artist.CreateArtistRequest{Name: "  Nova  "})
		require.NoError(t, err)
		assert.Equal(t, "Nova", created.Name)
		assert.Equal(t, "nova", created.Slug)
	})

	t.Run("duplicate slug rejected before insert", func(t *testing.T) {
		repo := newFakeArtistRepo()
		svc := NewArtistService(repo)

		_, err := svc.Create(ctx, &artist.CreateArtistRequest{Name: "Nova"})
		require.NoError(t, err)

		repo.createCalled = false
		_, err = svc.Create(ctx, &artist.CreateArtistRequest{Name: "NOVA"})
		assert.ErrorIs(t, err, artist.ErrDuplicateSlug)
		assert.False(t, repo.createCalled)
	})

	t.Run("empty name fails validation without touching the repo", func(t *testing.T) {
		repo := newFakeArtistRepo()
		svc := NewArtistService(repo)

		_, err := svc.Create(ctx, &artist.CreateArtistRequest{Name: ""})
		require.Error(t, err)
		assert.False(t, repo.createCalled)
	})

	t.Run("name with no sluggable characters rejected", func(t *testing.T) {
		repo := newFakeArtistRepo()
		svc := NewArtistService(repo)

		_, err := svc.Create(ctx, &artist.CreateArtistRequest{Name: "!!"})
		assert.ErrorIs(t, err, artist.ErrInvalidName)
	})
}

func TestArtistServiceUpdate(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, svc artist.Service, name string) *artist.Artist {
		t.Helper()
		a, err := svc.Create(ctx, &artist.CreateArtistRequest{Name: name})
		require.NoError(t, err)
		return a
	}

	t.Run("renaming regenerates the slug", func(t *testing.T) {
		repo := newFakeArtistRepo()
		svc := NewArtistService(repo)
		a := seed(t, svc, "Nova")

		name := "Nova Sound System"
		updated, err := svc.Update(ctx, a.ID, &artist.UpdateArtistRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "nova-sound-system", updated.Slug)
	})

	t.Run("case-only rename keeps the slug without a conflict", func(t *testing.T) {
		repo := newFakeArtistRepo()
		svc := NewArtistService(repo)
		a := seed(t, svc, "Nova")

		// "NOVA" slugs to "nova", same as before. The own slug must not
		// count as a duplicate.
		name := "NOVA"
		updated, err := svc.Update(ctx, a.ID, &artist.UpdateArtistRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "nova", updated.Slug)
		assert.Equal(t, "NOVA", updated.Name)
	})

	t.Run("renaming onto another artist's slug rejected", func(t *testing.T) {
		repo := newFakeArtistRepo()
		svc := NewArtistService(repo)
		seed(t, svc, "Nova")
		b := seed(t, svc, "Madrugada")

		name := "Nova"
		_, err := svc.Update(ctx, b.ID, &artist.UpdateArtistRequest{Name: &name})
		assert.ErrorIs(t, err, artist.ErrDuplicateSlug)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := NewArtistService(newFakeArtistRepo())

		name := "Ghost"
		_, err := svc.Update(ctx, uuid.New(), &artist.UpdateArtistRequest{Name: &name})
		assert.ErrorIs(t, err, artist.ErrArtistNotFound)
	})
}

func TestArtistServiceDeleteFromList(t *testing.T) {
	ctx := context.Background()
	repo := newFakeArtistRepo()
	svc := NewArtistService(repo)

	a, err := svc.Create(ctx, &artist.CreateArtistRequest{Name: "Nova"})
	require.NoError(t, err)

	// After the delete, page 2 is empty and page 1 still has rows: the
	// service must fall back to page 1.
	repo.pages = map[int][]artist.Artist{
		1: {{Name: "Madrugada", Slug: "madrugada"}},
		2: {},
	}
	repo.total = 1

	rows, meta, err := svc.DeleteFromList(ctx, a.ID, listing.Params{Page: 2, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, a.ID, repo.deletedID)
	require.Len(t, rows, 1)
	assert.Equal(t, "madrugada", rows[0].Slug)
	assert.Equal(t, 1, meta.Page)
}

func TestArtistServiceUpdateStats(t *testing.T) {
	ctx := context.Background()
	repo := newFakeArtistRepo()
	svc := NewArtistService(repo)

	a, err := svc.Create(ctx, &artist.CreateArtistRequest{Name: "Nova"})
	require.NoError(t, err)

	t.Run("upserts", func(t *testing.T) {
		stats, err := svc.UpdateStats(ctx, a.ID, artist.UpdateStatsRequest{Streams: 1200, Followers: 300})
		require.NoError(t, err)
		assert.Equal(t, int64(1200), stats.Streams)
	})

	t.Run("negative counters rejected", func(t *testing.T) {
		_, err := svc.UpdateStats(ctx, a.ID, artist.UpdateStatsRequest{Streams: -1})
		assert.Error(t, err)
	})
}

func TestArtistServiceImportWorkbook(t *testing.T) {
	ctx := context.Background()

	buildWorkbook := func(t *testing.T, rows [][]string) []byte {
		t.Helper()
		f := excelize.NewFile()
		defer f.Close()
		sheet := f.GetSheetName(0)
		for i, row := range rows {
			for j, cell := range row {
				ref, err := excelize.CoordinatesToCellName(j+1, i+1)
				require.NoError(t, err)
				require.NoError(t, f.SetCellValue(sheet, ref, cell))
			}
		}
		var buf bytes.Buffer
		require.NoError(t, f.Write(&buf))
		return buf.Bytes()
	}

	t.Run("creates good rows and reports bad ones", func(t *testing.T) {
		repo := newFakeArtistRepo()
		svc := NewArtistService(repo)

		data := buildWorkbook(t, [][]string{
			{"Name", "Bio"},
			{"Nova", "Electronic duo"},
			{"Nova", ""}, // duplicate slug
			{"Madrugada", ""},
		})

		result, err := svc.ImportWorkbook(ctx, data)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Created)
		assert.Equal(t, 1, result.Failed)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, 3, result.Errors[0].Row)
	})

	t.Run("blank rows skipped silently", func(t *testing.T) {
		repo := newFakeArtistRepo()
		svc := NewArtistService(repo)

		data := buildWorkbook(t, [][]string{
			{"Name", "Bio"},
			{"", ""},
			{"Nova", ""},
		})

		result, err := svc.ImportWorkbook(ctx, data)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Created)
		assert.Equal(t, 0, result.Failed)
	})

	t.Run("garbage bytes rejected", func(t *testing.T) {
		svc := NewArtistService(newFakeArtistRepo())

		_, err := svc.ImportWorkbook(ctx, []byte("not a workbook"))
		assert.Error(t, err)
	})
}
