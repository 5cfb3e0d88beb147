package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"dacosta-backend/internal/domains/track"
	"dacosta-backend/internal/shared/listing"
	"dacosta-backend/pkg/cache"
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) track.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const trackColumns = "id, artist_id, album_id, title, track_number, duration, featuring, audio_url, created_at, updated_at"

func scanTrack(row pgx.Row, t *track.Track) error {
	return row.Scan(
		&t.ID,
		&t.ArtistID,
		&t.AlbumID,
		&t.Title,
		&t.TrackNumber,
		&t.Duration,
		&t.Featuring,
		&t.AudioURL,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
}

// fkError maps a foreign key violation to the referenced entity.
func fkError(pgErr *pgconn.PgError) error {
	if strings.Contains(pgErr.ConstraintName, "album") {
		return track.ErrAlbumNotFound
	}
	return track.ErrArtistNotFound
}

func (r *postgresRepository) Create(ctx context.Context, t *track.Track) (*track.Track, error) {
	query := `
        INSERT INTO tracks (artist_id, album_id, title, track_number, duration, featuring, audio_url)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + trackColumns

	var created track.Track
	err := scanTrack(r.pool.QueryRow(ctx, query,
		t.ArtistID, t.AlbumID, t.Title, t.TrackNumber, t.Duration, t.Featuring, t.AudioURL,
	), &created)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, fkError(pgErr)
		}
		return nil, fmt.Errorf("failed to create track: %w", err)
	}

	r.invalidateArtist(ctx, created.ArtistID)

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*track.Track, error) {
	var t track.Track
	err := scanTrack(r.pool.QueryRow(ctx, `SELECT `+trackColumns+` FROM tracks WHERE id = $1`, id), &t)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, track.ErrTrackNotFound
		}
		return nil, fmt.Errorf("failed to get track by id: %w", err)
	}
	return &t, nil
}

func (r *postgresRepository) GetAll(ctx context.Context, p listing.Params, f track.Filter) ([]track.TrackResponse, int64, error) {
	where, args := buildFilter(p, f)

	sortColumn := p.SortColumn(map[string]bool{
		"title":        true,
		"track_number": true,
		"duration":     true,
		"created_at":   true,
	}, "created_at")

	query := fmt.Sprintf(`
        SELECT t.id, t.artist_id, ar.name, t.album_id, al.title, t.title, t.track_number,
               t.duration, t.featuring, t.audio_url, t.created_at, t.updated_at
        FROM tracks t
        JOIN artists ar ON ar.id = t.artist_id
        LEFT JOIN albums al ON al.id = t.album_id
        %s
        ORDER BY t.%s %s
        LIMIT $%d OFFSET $%d`,
		where, sortColumn, p.SortOrder("DESC"), len(args)+1, len(args)+2)

	rows, err := r.pool.Query(ctx, query, append(args, p.PageSize, p.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query tracks: %w", err)
	}
	defer rows.Close()

	var tracks []track.TrackResponse
	for rows.Next() {
		var t track.TrackResponse
		if err := rows.Scan(
			&t.ID, &t.ArtistID, &t.ArtistName, &t.AlbumID, &t.AlbumTitle, &t.Title, &t.TrackNumber,
			&t.Duration, &t.Featuring, &t.AudioURL, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan track: %w", err)
		}
		tracks = append(tracks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating tracks: %w", err)
	}

	countWhere, countArgs := buildFilter(p, f)
	var total int64
	err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM tracks t `+countWhere, countArgs...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count tracks: %w", err)
	}

	return tracks, total, nil
}

func buildFilter(p listing.Params, f track.Filter) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString("WHERE 1=1")

	args := []interface{}{}
	if p.Search != "" {
		args = append(args, "%"+listing.EscapeLike(p.Search)+"%")
		sb.WriteString(fmt.Sprintf(" AND t.title ILIKE $%d", len(args)))
	}
	if f.ArtistID != nil {
		args = append(args, *f.ArtistID)
		sb.WriteString(fmt.Sprintf(" AND t.artist_id = $%d", len(args)))
	}
	if f.AlbumID != nil {
		args = append(args, *f.AlbumID)
		sb.WriteString(fmt.Sprintf(" AND t.album_id = $%d", len(args)))
	}

	return sb.String(), args
}

func (r *postgresRepository) Update(ctx context.Context, t *track.Track) (*track.Track, error) {
	query := `
        UPDATE tracks
        SET artist_id = $1, album_id = $2, title = $3, track_number = $4, duration = $5,
            featuring = $6, audio_url = $7, updated_at = NOW()
        WHERE id = $8
        RETURNING ` + trackColumns

	var updated track.Track
	err := scanTrack(r.pool.QueryRow(ctx, query,
		t.ArtistID, t.AlbumID, t.Title, t.TrackNumber, t.Duration, t.Featuring, t.AudioURL, t.ID,
	), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, track.ErrTrackNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, fkError(pgErr)
		}
		return nil, fmt.Errorf("failed to update track: %w", err)
	}

	r.invalidateArtist(ctx, updated.ArtistID)

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var artistID uuid.UUID
	err := r.pool.QueryRow(ctx, "SELECT artist_id FROM tracks WHERE id = $1", id).Scan(&artistID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return track.ErrTrackNotFound
		}
		return fmt.Errorf("failed to load track for delete: %w", err)
	}

	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM tracks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete track: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return track.ErrTrackNotFound
	}

	r.invalidateArtist(ctx, artistID)

	return nil
}

// invalidateArtist drops the cached artist pages that embed this track.
func (r *postgresRepository) invalidateArtist(ctx context.Context, artistID uuid.UUID) {
	keys := []string{"artist:" + artistID.String()}
	var slug string
	if err := r.pool.QueryRow(ctx, "SELECT slug FROM artists WHERE id = $1", artistID).Scan(&slug); err == nil {
		keys = append(keys, "artist:slug:"+slug)
	}
	r.cache.Delete(ctx, keys...)
}
