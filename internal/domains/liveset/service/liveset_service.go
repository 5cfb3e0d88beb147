package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"dacosta-backend/internal/domains/liveset"
	"dacosta-backend/internal/shared/listing"
	"dacosta-backend/pkg/logger"
)

type liveSetService struct {
	repo liveset.Repository
}

func NewLiveSetService(repo liveset.Repository) liveset.Service {
	return &liveSetService{repo: repo}
}

func (s *liveSetService) Create(ctx context.Context, req *liveset.CreateLiveSetRequest) (*liveset.LiveSet, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &liveset.LiveSet{
		ArtistID:        req.ArtistID,
		EventID:         req.EventID,
		Title:           strings.TrimSpace(req.Title),
		EventName:       req.EventName,
		PerformanceDate: req.PerformanceDate,
		VideoURL:        req.VideoURL,
		AudioURL:        req.AudioURL,
		Description:     req.Description,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Live set created", map[string]interface{}{
		"live_set_id": created.ID.String(),
		"artist_id":   created.ArtistID.String(),
	})

	return created, nil
}

func (s *liveSetService) GetByID(ctx context.Context, id uuid.UUID) (*liveset.LiveSet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *liveSetService) List(ctx context.Context, p listing.Params, f liveset.Filter) ([]liveset.LiveSetResponse, listing.Meta, error) {
	p.Normalize()

	sets, total, err := s.repo.GetAll(ctx, p, f)
	if err != nil {
		return nil, listing.Meta{}, err
	}
	if sets == nil {
		sets = []liveset.LiveSetResponse{}
	}

	return sets, listing.NewMeta(p, total), nil
}

func (s *liveSetService) Update(ctx context.Context, id uuid.UUID, req *liveset.UpdateLiveSetRequest) (*liveset.LiveSet, error) {
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

	logger.Info("Live set updated", map[string]interface{}{"live_set_id": updated.ID.String()})

	return updated, nil
}

func (s *liveSetService) DeleteFromList(ctx context.Context, id uuid.UUID, p listing.Params, f liveset.Filter) ([]liveset.LiveSetResponse, listing.Meta, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, listing.Meta{}, err
	}

	logger.Info("Live set deleted", map[string]interface{}{"live_set_id": id.String()})

	p.Normalize()
	return listing.FetchAfterDelete(ctx, p, func(ctx context.Context, p listing.Params) ([]liveset.LiveSetResponse, int64, error) {
		return s.repo.GetAll(ctx, p, f)
	})
}
