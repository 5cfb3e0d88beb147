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

	"dacosta-backend/internal/domains/artist"
	"dacosta-backend/internal/shared/listing"
	"dacosta-backend/pkg/cache"
)

// postgresRepository implements artist.Repository.
// Hot single-row lookups (by id, by slug) go through the Redis cache.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) artist.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	artistCacheKeyPrefix = "artist:"
	artistSlugKeyPrefix  = "artist:slug:"
	cacheTTL             = 15 * time.Minute
)

const artistColumns = "id, name, slug, bio, logo_url, photo_url, created_at, updated_at"

func scanArtist(row pgx.Row, a *artist.Artist) error {
	return row.Scan(
		&a.ID,
		&a.Name,
		&a.Slug,
		&a.Bio,
		&a.LogoURL,
		&a.PhotoURL,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
}

// Create inserts a new artist with generated id and timestamps.
func (r *postgresRepository) Create(ctx context.Context, a *artist.Artist) (*artist.Artist, error) {
	query := `
        INSERT INTO artists (name, slug, bio, logo_url, photo_url)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + artistColumns

	var created artist.Artist
	err := scanArtist(r.pool.QueryRow(ctx, query, a.Name, a.Slug, a.Bio, a.LogoURL, a.PhotoURL), &created)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.Message, "slug") {
			return nil, artist.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to create artist: %w", err)
	}

	return &created, nil
}

// GetByID retrieves an artist by UUID with read-through caching.
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*artist.Artist, error) {
	cacheKey := artistCacheKeyPrefix + id.String()

	var a artist.Artist
	if found, err := r.cache.Get(ctx, cacheKey, &a); err == nil && found {
		return &a, nil
	}

	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = $1`

	err := scanArtist(r.pool.QueryRow(ctx, query, id), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, artist.ErrArtistNotFound
		}
		return nil, fmt.Errorf("failed to get artist by id: %w", err)
	}

	r.cache.Set(ctx, cacheKey, a, cacheTTL)

	return &a, nil
}

// GetBySlug hydrates the full public profile: artist row, stats, albums
// with tracks, live sets. Mirrors the nested relation expansion the public
// site asks for in one request.
func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*artist.ArtistDetailResponse, error) {
	cacheKey := artistSlugKeyPrefix + slug

	var detail artist.ArtistDetailResponse
	if found, err := r.cache.Get(ctx, cacheKey, &detail); err == nil && found {
		return &detail, nil
	}

	var a artist.Artist
	err := scanArtist(r.pool.QueryRow(ctx, `SELECT `+artistColumns+` FROM artists WHERE slug = $1`, slug), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, artist.ErrArtistNotFound
		}
		return nil, fmt.Errorf("failed to get artist by slug: %w", err)
	}

	detail.ArtistResponse = *a.ToResponse()

	stats, err := r.getStats(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	detail.Stats = stats

	albums, err := r.getAlbumsWithTracks(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	detail.Albums = albums

	sets, err := r.getLiveSets(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	detail.LiveSets = sets

	r.cache.Set(ctx, cacheKey, detail, cacheTTL)

	return &detail, nil
}

func (r *postgresRepository) getStats(ctx context.Context, artistID uuid.UUID) (*artist.Stats, error) {
	query := `
        SELECT id, artist_id, streams, followers, monthly_listeners,
               youtube_views, youtube_subscribers, created_at, updated_at
        FROM artist_stats
        WHERE artist_id = $1
    `

	var s artist.Stats
	err := r.pool.QueryRow(ctx, query, artistID).Scan(
		&s.ID, &s.ArtistID, &s.Streams, &s.Followers, &s.MonthlyListeners,
		&s.YoutubeViews, &s.YoutubeSubscribers, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // stats are optional
		}
		return nil, fmt.Errorf("failed to get artist stats: %w", err)
	}
	return &s, nil
}

func (r *postgresRepository) getAlbumsWithTracks(ctx context.Context, artistID uuid.UUID) ([]artist.NestedAlbum, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, title, release_year, album_type, cover_url
        FROM albums
        WHERE artist_id = $1
        ORDER BY release_year DESC NULLS LAST, title ASC
    `, artistID)
	if err != nil {
		return nil, fmt.Errorf("failed to query albums: %w", err)
	}
	defer rows.Close()

	albums := []artist.NestedAlbum{}
	byID := map[uuid.UUID]int{}
	for rows.Next() {
		var al artist.NestedAlbum
		if err := rows.Scan(&al.ID, &al.Title, &al.ReleaseYear, &al.AlbumType, &al.CoverURL); err != nil {
			return nil, fmt.Errorf("failed to scan album: %w", err)
		}
		al.Tracks = []artist.NestedTrack{}
		byID[al.ID] = len(albums)
		albums = append(albums, al)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating albums: %w", err)
	}

	trackRows, err := r.pool.Query(ctx, `
        SELECT t.id, t.album_id, t.title, t.track_number, t.duration, t.featuring, t.audio_url
        FROM tracks t
        JOIN albums a ON a.id = t.album_id
        WHERE a.artist_id = $1
        ORDER BY t.track_number ASC NULLS LAST, t.title ASC
    `, artistID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracks: %w", err)
	}
	defer trackRows.Close()

	for trackRows.Next() {
		var t artist.NestedTrack
		var albumID uuid.UUID
		if err := trackRows.Scan(&t.ID, &albumID, &t.Title, &t.TrackNumber, &t.Duration, &t.Featuring, &t.AudioURL); err != nil {
			return nil, fmt.Errorf("failed to scan track: %w", err)
		}
		if idx, ok := byID[albumID]; ok {
			albums[idx].Tracks = append(albums[idx].Tracks, t)
		}
	}
	if err := trackRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tracks: %w", err)
	}

	return albums, nil
}

func (r *postgresRepository) getLiveSets(ctx context.Context, artistID uuid.UUID) ([]artist.NestedLiveSet, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, title, event_name, performance_date, video_url, audio_url
        FROM live_sets
        WHERE artist_id = $1
        ORDER BY performance_date DESC NULLS LAST
    `, artistID)
	if err != nil {
		return nil, fmt.Errorf("failed to query live sets: %w", err)
	}
	defer rows.Close()

	sets := []artist.NestedLiveSet{}
	for rows.Next() {
		var s artist.NestedLiveSet
		if err := rows.Scan(&s.ID, &s.Title, &s.EventName, &s.PerformanceDate, &s.VideoURL, &s.AudioURL); err != nil {
			return nil, fmt.Errorf("failed to scan live set: %w", err)
		}
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating live sets: %w", err)
	}

	return sets, nil
}

// GetAll retrieves a paginated admin list with filtering and sorting.
func (r *postgresRepository) GetAll(ctx context.Context, p listing.Params) ([]artist.Artist, int64, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + artistColumns + ` FROM artists WHERE 1=1`)

	args := []interface{}{}
	argPos := 1

	if p.Search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND name ILIKE $%d", argPos))
		args = append(args, "%"+listing.EscapeLike(p.Search)+"%")
		argPos++
	}

	sortColumn := p.SortColumn(map[string]bool{
		"name":       true,
		"created_at": true,
		"updated_at": true,
	}, "created_at")
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s %s", sortColumn, p.SortOrder("DESC")))

	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1))
	args = append(args, p.PageSize, p.Offset())

	rows, err := r.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query artists: %w", err)
	}
	defer rows.Close()

	var artists []artist.Artist
	for rows.Next() {
		var a artist.Artist
		if err := scanArtist(rows, &a); err != nil {
			return nil, 0, fmt.Errorf("failed to scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating artists: %w", err)
	}

	countQuery := `SELECT COUNT(*) FROM artists WHERE 1=1`
	countArgs := []interface{}{}
	if p.Search != "" {
		countQuery += " AND name ILIKE $1"
		countArgs = append(countArgs, "%"+listing.EscapeLike(p.Search)+"%")
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count artists: %w", err)
	}

	return artists, total, nil
}

// ListWithStats serves the public roster: every artist ordered by name,
// stats attached when present.
func (r *postgresRepository) ListWithStats(ctx context.Context) ([]artist.ArtistResponse, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT a.id, a.name, a.slug, a.bio, a.logo_url, a.photo_url, a.created_at, a.updated_at,
               s.id, s.streams, s.followers, s.monthly_listeners, s.youtube_views, s.youtube_subscribers,
               s.created_at, s.updated_at
        FROM artists a
        LEFT JOIN artist_stats s ON s.artist_id = a.id
        ORDER BY a.name ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query roster: %w", err)
	}
	defer rows.Close()

	out := []artist.ArtistResponse{}
	for rows.Next() {
		var a artist.Artist
		var statsID *uuid.UUID
		var streams, followers, monthly, views, subs *int64
		var statsCreated, statsUpdated *time.Time

		if err := rows.Scan(
			&a.ID, &a.Name, &a.Slug, &a.Bio, &a.LogoURL, &a.PhotoURL, &a.CreatedAt, &a.UpdatedAt,
			&statsID, &streams, &followers, &monthly, &views, &subs, &statsCreated, &statsUpdated,
		); err != nil {
			return nil, fmt.Errorf("failed to scan roster row: %w", err)
		}

		resp := *a.ToResponse()
		if statsID != nil {
			resp.Stats = &artist.Stats{
				ID:                 *statsID,
				ArtistID:           a.ID,
				Streams:            *streams,
				Followers:          *followers,
				MonthlyListeners:   *monthly,
				YoutubeViews:       *views,
				YoutubeSubscribers: *subs,
				CreatedAt:          *statsCreated,
				UpdatedAt:          *statsUpdated,
			}
		}
		out = append(out, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating roster: %w", err)
	}

	return out, nil
}

// Update rewrites the artist row by id.
func (r *postgresRepository) Update(ctx context.Context, a *artist.Artist) (*artist.Artist, error) {
	var oldSlug string
	if err := r.pool.QueryRow(ctx, "SELECT slug FROM artists WHERE id = $1", a.ID).Scan(&oldSlug); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, artist.ErrArtistNotFound
		}
		return nil, fmt.Errorf("failed to load artist for update: %w", err)
	}

	query := `
        UPDATE artists
        SET name = $1, slug = $2, bio = $3, logo_url = $4, photo_url = $5, updated_at = NOW()
        WHERE id = $6
        RETURNING ` + artistColumns

	var updated artist.Artist
	err := scanArtist(r.pool.QueryRow(ctx, query, a.Name, a.Slug, a.Bio, a.LogoURL, a.PhotoURL, a.ID), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, artist.ErrArtistNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.Message, "slug") {
			return nil, artist.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to update artist: %w", err)
	}

	r.invalidate(ctx, a.ID, oldSlug, updated.Slug)

	return &updated, nil
}

// Delete removes the artist; linked catalog rows block the delete.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var slug string
	err := r.pool.QueryRow(ctx, "SELECT slug FROM artists WHERE id = $1", id).Scan(&slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return artist.ErrArtistNotFound
		}
		return fmt.Errorf("failed to load artist for delete: %w", err)
	}

	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM artists WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return artist.ErrArtistInUse
		}
		return fmt.Errorf("failed to delete artist: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return artist.ErrArtistNotFound
	}

	r.invalidate(ctx, id, slug, "")

	return nil
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM artists WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}
	return exists, nil
}

// Options returns (id, name) ordered by name for dependent form selectors.
func (r *postgresRepository) Options(ctx context.Context) ([]artist.Option, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM artists ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query artist options: %w", err)
	}
	defer rows.Close()

	opts := []artist.Option{}
	for rows.Next() {
		var o artist.Option
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, fmt.Errorf("failed to scan artist option: %w", err)
		}
		opts = append(opts, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating artist options: %w", err)
	}

	return opts, nil
}

// UpsertStats creates or replaces the stats row for an artist.
func (r *postgresRepository) UpsertStats(ctx context.Context, artistID uuid.UUID, req artist.UpdateStatsRequest) (*artist.Stats, error) {
	var slug string
	if err := r.pool.QueryRow(ctx, "SELECT slug FROM artists WHERE id = $1", artistID).Scan(&slug); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, artist.ErrArtistNotFound
		}
		return nil, fmt.Errorf("failed to load artist for stats update: %w", err)
	}

	query := `
        INSERT INTO artist_stats (artist_id, streams, followers, monthly_listeners, youtube_views, youtube_subscribers)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (artist_id) DO UPDATE
        SET streams = EXCLUDED.streams,
            followers = EXCLUDED.followers,
            monthly_listeners = EXCLUDED.monthly_listeners,
            youtube_views = EXCLUDED.youtube_views,
            youtube_subscribers = EXCLUDED.youtube_subscribers,
            updated_at = NOW()
        RETURNING id, artist_id, streams, followers, monthly_listeners,
                  youtube_views, youtube_subscribers, created_at, updated_at
    `

	var s artist.Stats
	err := r.pool.QueryRow(ctx, query,
		artistID, req.Streams, req.Followers, req.MonthlyListeners, req.YoutubeViews, req.YoutubeSubscribers,
	).Scan(
		&s.ID, &s.ArtistID, &s.Streams, &s.Followers, &s.MonthlyListeners,
		&s.YoutubeViews, &s.YoutubeSubscribers, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, artist.ErrArtistNotFound
		}
		return nil, fmt.Errorf("failed to upsert artist stats: %w", err)
	}

	r.invalidate(ctx, artistID, slug)

	return &s, nil
}

// invalidate drops the cached copies touched by a write. Slugs may be the
// old and the new value when a rename changed them.
func (r *postgresRepository) invalidate(ctx context.Context, id uuid.UUID, slugs ...string) {
	keys := []string{artistCacheKeyPrefix + id.String()}
	for _, s := range slugs {
		if s != "" {
			keys = append(keys, artistSlugKeyPrefix+s)
		}
	}
	r.cache.Delete(ctx, keys...)
}
