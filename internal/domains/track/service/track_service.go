package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"dacosta-backend/internal/domains/track"
	"dacosta-backend/internal/shared/listing"
	"dacosta-backend/pkg/logger"
)

type trackService struct {
	repo track.Repository
}

func NewTrackService(repo track.Repository) track.Service {
	return &trackService{repo: repo}
}

func (s *trackService) Create(ctx context.Context, req *track.CreateTrackRequest) (*track.Track, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &track.Track{
		ArtistID:    req.ArtistID,
		AlbumID:     req.AlbumID,
		Title:       strings.TrimSpace(req.Title),
		TrackNumber: req.TrackNumber,
		Duration:    req.Duration,
		Featuring:   req.Featuring,
		AudioURL:    req.AudioURL,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Track created", map[string]interface{}{
		"track_id":  created.ID.String(),
		"artist_id": created.ArtistID.String(),
	})

	return created, nil
}

func (s *trackService) GetByID(ctx context.Context, id uuid.UUID) (*track.Track, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *trackService) List(ctx context.Context, p listing.Params, f track.Filter) ([]track.TrackResponse, listing.Meta, error) {
	p.Normalize()

	tracks, total, err := s.repo.GetAll(ctx, p, f)
	if err != nil {
		return nil, listing.Meta{}, err
	}
	if tracks == nil {
		tracks = []track.TrackResponse{}
	}

	return tracks, listing.NewMeta(p, total), nil
}

func (s *trackService) Update(ctx context.Context, id uuid.UUID, req *track.UpdateTrackRequest) (*track.Track, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyToEntity(existing)
	existing.Title = strings.TrimSpace(existing.Title)

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	logger.Info("Track updated", map[string]interface{}{"track_id": updated.ID.String()})

	return updated, nil
}

func (s *trackService) DeleteFromList(ctx context.Context, id uuid.UUID, p listing.Params, f track.Filter) ([]track.TrackResponse, listing.Meta, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, listing.Meta{}, err
	}

	logger.Info("Track deleted", map[string]interface{}{"track_id": id.String()})

	p.Normalize()
	return listing.FetchAfterDelete(ctx, p, func(ctx context.Context, p listing.Params) ([]track.TrackResponse, int64, error) {
		return s.repo.GetAll(ctx, p, f)
	})
}
