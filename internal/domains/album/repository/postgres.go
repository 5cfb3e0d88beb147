package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"dacosta-backend/internal/domains/album"
	"dacosta-backend/internal/shared/listing"
	"dacosta-backend/pkg/cache"
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) album.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	albumCacheKeyPrefix = "album:"
	cacheTTL            = 15 * time.Minute
)

const albumColumns = "id, artist_id, title, release_year, album_type, cover_url, created_at, updated_at"

func scanAlbum(row pgx.Row, a *album.Album) error {
	return row.Scan(
		&a.ID,
		&a.ArtistID,
		&a.Title,
		&a.ReleaseYear,
		&a.AlbumType,
		&a.CoverURL,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
}

func (r *postgresRepository) Create(ctx context.Context, a *album.Album) (*album.Album, error) {
	query := `
        INSERT INTO albums (artist_id, title, release_year, album_type, cover_url)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + albumColumns

	var created album.Album
	err := scanAlbum(r.pool.QueryRow(ctx, query, a.ArtistID, a.Title, a.ReleaseYear, a.AlbumType, a.CoverURL), &created)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return nil, album.ErrArtistNotFound
		}
		return nil, fmt.Errorf("failed to create album: %w", err)
	}

	// Invalidate the artist page this album now appears on.
	r.invalidateArtist(ctx, created.ArtistID)

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*album.Album, error) {
	cacheKey := albumCacheKeyPrefix + id.String()

	var a album.Album
	if found, err := r.cache.Get(ctx, cacheKey, &a); err == nil && found {
		return &a, nil
	}

	err := scanAlbum(r.pool.QueryRow(ctx, `SELECT `+albumColumns+` FROM albums WHERE id = $1`, id), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, album.ErrAlbumNotFound
		}
		return nil, fmt.Errorf("failed to get album by id: %w", err)
	}

	r.cache.Set(ctx, cacheKey, a, cacheTTL)

	return &a, nil
}

func (r *postgresRepository) GetAll(ctx context.Context, p listing.Params, f album.Filter) ([]album.AlbumResponse, int64, error) {
	where, args := buildFilter(p, f)

	sortColumn := p.SortColumn(map[string]bool{
		"title":        true,
		"release_year": true,
		"created_at":   true,
	}, "created_at")
	// album columns are unambiguous except for the joined artist name.
	orderBy := "al." + sortColumn

	query := fmt.Sprintf(`
        SELECT al.id, al.artist_id, ar.name, al.title, al.release_year, al.album_type, al.cover_url,
               al.created_at, al.updated_at
        FROM albums al
        JOIN artists ar ON ar.id = al.artist_id
        %s
        ORDER BY %s %s
        LIMIT $%d OFFSET $%d`,
		where, orderBy, p.SortOrder("DESC"), len(args)+1, len(args)+2)

	rows, err := r.pool.Query(ctx, query, append(args, p.PageSize, p.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query albums: %w", err)
	}
	defer rows.Close()

	var albums []album.AlbumResponse
	for rows.Next() {
		var a album.AlbumResponse
		if err := rows.Scan(
			&a.ID, &a.ArtistID, &a.ArtistName, &a.Title, &a.ReleaseYear, &a.AlbumType, &a.CoverURL,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan album: %w", err)
		}
		albums = append(albums, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating albums: %w", err)
	}

	countWhere, countArgs := buildFilter(p, f)
	var total int64
	err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM albums al `+countWhere, countArgs...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count albums: %w", err)
	}

	return albums, total, nil
}

// buildFilter renders the WHERE clause shared by the page and count
// queries. Columns are qualified with the "al" alias.
func buildFilter(p listing.Params, f album.Filter) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString("WHERE 1=1")

	args := []interface{}{}
	if p.Search != "" {
		args = append(args, "%"+listing.EscapeLike(p.Search)+"%")
		sb.WriteString(fmt.Sprintf(" AND al.title ILIKE $%d", len(args)))
	}
	if f.ArtistID != nil {
		args = append(args, *f.ArtistID)
		sb.WriteString(fmt.Sprintf(" AND al.artist_id = $%d", len(args)))
	}

	return sb.String(), args
}

func (r *postgresRepository) Update(ctx context.Context, a *album.Album) (*album.Album, error) {
	query := `
        UPDATE albums
        SET artist_id = $1, title = $2, release_year = $3, album_type = $4, cover_url = $5, updated_at = NOW()
        WHERE id = $6
        RETURNING ` + albumColumns

	var updated album.Album
	err := scanAlbum(r.pool.QueryRow(ctx, query, a.ArtistID, a.Title, a.ReleaseYear, a.AlbumType, a.CoverURL, a.ID), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, album.ErrAlbumNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, album.ErrArtistNotFound
		}
		return nil, fmt.Errorf("failed to update album: %w", err)
	}

	r.cache.Delete(ctx, albumCacheKeyPrefix+updated.ID.String())
	r.invalidateArtist(ctx, updated.ArtistID)

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var artistID uuid.UUID
	err := r.pool.QueryRow(ctx, "SELECT artist_id FROM albums WHERE id = $1", id).Scan(&artistID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return album.ErrAlbumNotFound
		}
		return fmt.Errorf("failed to load album for delete: %w", err)
	}

	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM albums WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return album.ErrAlbumInUse
		}
		return fmt.Errorf("failed to delete album: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return album.ErrAlbumNotFound
	}

	r.cache.Delete(ctx, albumCacheKeyPrefix+id.String())
	r.invalidateArtist(ctx, artistID)

	return nil
}

func (r *postgresRepository) Options(ctx context.Context, artistID *uuid.UUID) ([]album.Option, error) {
	query := `SELECT id, title FROM albums`
	args := []interface{}{}
	if artistID != nil {
		query += ` WHERE artist_id = $1`
		args = append(args, *artistID)
	}
	query += ` ORDER BY title ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query album options: %w", err)
	}
	defer rows.Close()

	opts := []album.Option{}
	for rows.Next() {
		var o album.Option
		if err := rows.Scan(&o.ID, &o.Title); err != nil {
			return nil, fmt.Errorf("failed to scan album option: %w", err)
		}
		opts = append(opts, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating album options: %w", err)
	}

	return opts, nil
}

// invalidateArtist drops the cached artist page and slug detail that embed
// this album. The slug is looked up so the by-slug key can be removed too.
func (r *postgresRepository) invalidateArtist(ctx context.Context, artistID uuid.UUID) {
	keys := []string{"artist:" + artistID.String()}
	var slug string
	if err := r.pool.QueryRow(ctx, "SELECT slug FROM artists WHERE id = $1", artistID).Scan(&slug); err == nil {
		keys = append(keys, "artist:slug:"+slug)
	}
	r.cache.Delete(ctx, keys...)
}
