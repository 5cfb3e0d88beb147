package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"dacosta-backend/internal/domains/album"
	"dacosta-backend/internal/shared/listing"
	"dacosta-backend/pkg/logger"
)

type albumService struct {
	repo album.Repository
}

func NewAlbumService(repo album.Repository) album.Service {
	return &albumService{repo: repo}
}

func (s *albumService) Create(ctx context.Context, req *album.CreateAlbumRequest) (*album.Album, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &album.Album{
		ArtistID:    req.ArtistID,
		Title:       strings.TrimSpace(req.Title),
		ReleaseYear: req.ReleaseYear,
		AlbumType:   req.AlbumType,
		CoverURL:    req.CoverURL,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Album created", map[string]interface{}{
		"album_id":  created.ID.String(),
		"artist_id": created.ArtistID.String(),
	})

	return created, nil
}

func (s *albumService) GetByID(ctx context.Context, id uuid.UUID) (*album.Album, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *albumService) List(ctx context.Context, p listing.Params, f album.Filter) ([]album.AlbumResponse, listing.Meta, error) {
	p.Normalize()

	albums, total, err := s.repo.GetAll(ctx, p, f)
	if err != nil {
		return nil, listing.Meta{}, err
	}
	if albums == nil {
		albums = []album.AlbumResponse{}
	}

	return albums, listing.NewMeta(p, total), nil
}

func (s *albumService) Update(ctx context.Context, id uuid.UUID, req *album.UpdateAlbumRequest) (*album.Album, error) {
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

	logger.Info("Album updated", map[string]interface{}{"album_id": updated.ID.String()})

	return updated, nil
}

func (s *albumService) DeleteFromList(ctx context.Context, id uuid.UUID, p listing.Params, f album.Filter) ([]album.AlbumResponse, listing.Meta, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, listing.Meta{}, err
	}

	logger.Info("Album deleted", map[string]interface{}{"album_id": id.String()})

	p.Normalize()
	return listing.FetchAfterDelete(ctx, p, func(ctx context.Context, p listing.Params) ([]album.AlbumResponse, int64, error) {
		return s.repo.GetAll(ctx, p, f)
	})
}

func (s *albumService) Options(ctx context.Context, artistID *uuid.UUID) ([]album.Option, error) {
	return s.repo.Options(ctx, artistID)
}
