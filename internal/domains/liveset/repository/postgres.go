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

	"dacosta-backend/internal/domains/liveset"
	"dacosta-backend/internal/shared/listing"
	"dacosta-backend/pkg/cache"
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) liveset.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const liveSetColumns = "id, artist_id, event_id, title, event_name, performance_date, video_url, audio_url, description, created_at, updated_at"

func scanLiveSet(row pgx.Row, s *liveset.LiveSet) error {
	return row.Scan(
		&s.ID,
		&s.ArtistID,
		&s.EventID,
		&s.Title,
		&s.EventName,
		&s.PerformanceDate,
		&s.VideoURL,
		&s.AudioURL,
		&s.Description,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
}

func fkError(pgErr *pgconn.PgError) error {
	if strings.Contains(pgErr.ConstraintName, "event") {
		return liveset.ErrEventNotFound
	}
	return liveset.ErrArtistNotFound
}

func (r *postgresRepository) Create(ctx context.Context, s *liveset.LiveSet) (*liveset.LiveSet, error) {
	query := `
        INSERT INTO live_sets (artist_id, event_id, title, event_name, performance_date, video_url, audio_url, description)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + liveSetColumns

	var created liveset.LiveSet
	err := scanLiveSet(r.pool.QueryRow(ctx, query,
		s.ArtistID, s.EventID, s.Title, s.EventName, s.PerformanceDate, s.VideoURL, s.AudioURL, s.Description,
	), &created)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, fkError(pgErr)
		}
		return nil, fmt.Errorf("failed to create live set: %w", err)
	}

	r.invalidateArtist(ctx, created.ArtistID)

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*liveset.LiveSet, error) {
	var s liveset.LiveSet
	err := scanLiveSet(r.pool.QueryRow(ctx, `SELECT `+liveSetColumns+` FROM live_sets WHERE id = $1`, id), &s)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, liveset.ErrLiveSetNotFound
		}
		return nil, fmt.Errorf("failed to get live set by id: %w", err)
	}
	return &s, nil
}

func (r *postgresRepository) GetAll(ctx context.Context, p listing.Params, f liveset.Filter) ([]liveset.LiveSetResponse, int64, error) {
	where, args := buildFilter(p, f)

	sortColumn := p.SortColumn(map[string]bool{
		"title":            true,
		"performance_date": true,
		"created_at":       true,
	}, "performance_date")

	query := fmt.Sprintf(`
        SELECT ls.id, ls.artist_id, ls.event_id, ls.title, ls.event_name, ls.performance_date,
               ls.video_url, ls.audio_url, ls.description, ls.created_at, ls.updated_at, ar.name
        FROM live_sets ls
        JOIN artists ar ON ar.id = ls.artist_id
        %s
        ORDER BY ls.%s %s NULLS LAST
        LIMIT $%d OFFSET $%d`,
		where, sortColumn, p.SortOrder("DESC"), len(args)+1, len(args)+2)

	rows, err := r.pool.Query(ctx, query, append(args, p.PageSize, p.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query live sets: %w", err)
	}
	defer rows.Close()

	var sets []liveset.LiveSetResponse
	for rows.Next() {
		var s liveset.LiveSetResponse
		if err := rows.Scan(
			&s.ID, &s.ArtistID, &s.EventID, &s.Title, &s.EventName, &s.PerformanceDate,
			&s.VideoURL, &s.AudioURL, &s.Description, &s.CreatedAt, &s.UpdatedAt, &s.ArtistName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan live set: %w", err)
		}
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating live sets: %w", err)
	}

	countWhere, countArgs := buildFilter(p, f)
	var total int64
	err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM live_sets ls `+countWhere, countArgs...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count live sets: %w", err)
	}

	return sets, total, nil
}

func buildFilter(p listing.Params, f liveset.Filter) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString("WHERE 1=1")

	args := []interface{}{}
	if p.Search != "" {
		args = append(args, "%"+listing.EscapeLike(p.Search)+"%")
		sb.WriteString(fmt.Sprintf(" AND (ls.title ILIKE $%d OR ls.event_name ILIKE $%d)", len(args), len(args)))
	}
	if f.ArtistID != nil {
		args = append(args, *f.ArtistID)
		sb.WriteString(fmt.Sprintf(" AND ls.artist_id = $%d", len(args)))
	}

	return sb.String(), args
}

func (r *postgresRepository) Update(ctx context.Context, s *liveset.LiveSet) (*liveset.LiveSet, error) {
	query := `
        UPDATE live_sets
        SET artist_id = $1, event_id = $2, title = $3, event_name = $4, performance_date = $5,
            video_url = $6, audio_url = $7, description = $8, updated_at = NOW()
        WHERE id = $9
        RETURNING ` + liveSetColumns

	var updated liveset.LiveSet
	err := scanLiveSet(r.pool.QueryRow(ctx, query,
		s.ArtistID, s.EventID, s.Title, s.EventName, s.PerformanceDate,
		s.VideoURL, s.AudioURL, s.Description, s.ID,
	), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, liveset.ErrLiveSetNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, fkError(pgErr)
		}
		return nil, fmt.Errorf("failed to update live set: %w", err)
	}

	r.invalidateArtist(ctx, updated.ArtistID)

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var artistID uuid.UUID
	err := r.pool.QueryRow(ctx, "SELECT artist_id FROM live_sets WHERE id = $1", id).Scan(&artistID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return liveset.ErrLiveSetNotFound
		}
		return fmt.Errorf("failed to load live set for delete: %w", err)
	}

	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM live_sets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete live set: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return liveset.ErrLiveSetNotFound
	}

	r.invalidateArtist(ctx, artistID)

	return nil
}

// invalidateArtist drops the cached artist pages that embed this set.
func (r *postgresRepository) invalidateArtist(ctx context.Context, artistID uuid.UUID) {
	keys := []string{"artist:" + artistID.String()}
	var slug string
	if err := r.pool.QueryRow(ctx, "SELECT slug FROM artists WHERE id = $1", artistID).Scan(&slug); err == nil {
		keys = append(keys, "artist:slug:"+slug)
	}
	r.cache.Delete(ctx, keys...)
}
