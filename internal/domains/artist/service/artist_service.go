package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"dacosta-backend/internal/domains/artist"
	"dacosta-backend/internal/shared/listing"
	"dacosta-backend/internal/shared/utils"
	"dacosta-backend/pkg/logger"
)

type artistService struct {
	repo artist.Repository
}

func NewArtistService(repo artist.Repository) artist.Service {
	return &artistService{repo: repo}
}

// Create validates, derives the slug from the name and inserts.
func (s *artistService) Create(ctx context.Context, req *artist.CreateArtistRequest) (*artist.Artist, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	slug := utils.GenerateSlug(req.Name)
	if slug == "" {
		return nil, artist.ErrInvalidName
	}

	exists, err := s.repo.ExistsBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, artist.ErrDuplicateSlug
	}

	created, err := s.repo.Create(ctx, &artist.Artist{
		Name:     strings.TrimSpace(req.Name),
		Slug:     slug,
		Bio:      req.Bio,
		LogoURL:  req.LogoURL,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Artist created", map[string]interface{}{
		"artist_id": created.ID.String(),
		"slug":      created.Slug,
	})

	return created, nil
}

func (s *artistService) GetByID(ctx context.Context, id uuid.UUID) (*artist.Artist, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *artistService) GetBySlug(ctx context.Context, slug string) (*artist.ArtistDetailResponse, error) {
	if slug == "" {
		return nil, artist.ErrInvalidSlug
	}
	return s.repo.GetBySlug(ctx, slug)
}

func (s *artistService) List(ctx context.Context, p listing.Params) ([]artist.Artist, listing.Meta, error) {
	p.Normalize()

	artists, total, err := s.repo.GetAll(ctx, p)
	if err != nil {
		return nil, listing.Meta{}, err
	}
	if artists == nil {
		artists = []artist.Artist{}
	}

	return artists, listing.NewMeta(p, total), nil
}

func (s *artistService) ListPublic(ctx context.Context) ([]artist.ArtistResponse, error) {
	return s.repo.ListWithStats(ctx)
}

// Update applies the non-nil fields. A changed name regenerates the slug.
func (s *artistService) Update(ctx context.Context, id uuid.UUID, req *artist.UpdateArtistRequest) (*artist.Artist, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyToEntity(existing)

	if req.Name != nil {
		slug := utils.GenerateSlug(*req.Name)
		if slug == "" {
			return nil, artist.ErrInvalidName
		}
		if slug != existing.Slug {
			exists, err := s.repo.ExistsBySlug(ctx, slug)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, artist.ErrDuplicateSlug
			}
			existing.Slug = slug
		}
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	logger.Info("Artist updated", map[string]interface{}{"artist_id": updated.ID.String()})

	return updated, nil
}

// DeleteFromList deletes the row, then refetches the caller's current page
// so the admin table can re-render without a second round trip. When the
// deletion emptied the page, the previous page is returned instead.
func (s *artistService) DeleteFromList(ctx context.Context, id uuid.UUID, p listing.Params) ([]artist.Artist, listing.Meta, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, listing.Meta{}, err
	}

	logger.Info("Artist deleted", map[string]interface{}{"artist_id": id.String()})

	p.Normalize()
	return listing.FetchAfterDelete(ctx, p, s.repo.GetAll)
}

func (s *artistService) Options(ctx context.Context) ([]artist.Option, error) {
	return s.repo.Options(ctx)
}

func (s *artistService) UpdateStats(ctx context.Context, artistID uuid.UUID, req artist.UpdateStatsRequest) (*artist.Stats, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.UpsertStats(ctx, artistID, req)
}

// ImportWorkbook bulk-creates artists from the first sheet of an .xlsx
// file. Expected columns: Name (required), Bio. The header row is skipped.
// Bad rows are reported per row number, good rows are still created.
func (s *artistService) ImportWorkbook(ctx context.Context, data []byte) (*artist.ImportResult, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	result := &artist.ImportResult{}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		rowNum := i + 1

		name := ""
		if len(row) > 0 {
			name = strings.TrimSpace(row[0])
		}
		if name == "" {
			continue // blank row
		}

		req := &artist.CreateArtistRequest{Name: name}
		if len(row) > 1 && strings.TrimSpace(row[1]) != "" {
			bio := strings.TrimSpace(row[1])
			req.Bio = &bio
		}

		if _, err := s.Create(ctx, req); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, artist.ImportRowError{
				Row:     rowNum,
				Message: err.Error(),
			})
			continue
		}
		result.Created++
	}

	logger.Info("Artist roster import finished", map[string]interface{}{
		"created": result.Created,
		"failed":  result.Failed,
	})

	return result, nil
}
