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

	"dacosta-backend/internal/domains/event"
	"dacosta-backend/internal/shared/listing"
)

// postgresRepository implements event.Repository. The calendar is read
// far more often than it changes but a stale lineup on a poster page is
// worse than a query, so events skip the cache layer.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) event.Repository {
	return &postgresRepository{pool: pool}
}

const eventColumns = "id, title, description, location, start_date, end_date, image_url, ticket_url, created_at, updated_at"

func scanEvent(row pgx.Row, e *event.Event) error {
	return row.Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.Location,
		&e.StartDate,
		&e.EndDate,
		&e.ImageURL,
		&e.TicketURL,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
}

func (r *postgresRepository) Create(ctx context.Context, e *event.Event, artistIDs []uuid.UUID) (*event.EventResponse, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO events (title, description, location, start_date, end_date, image_url, ticket_url)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + eventColumns

	var created event.Event
	err = scanEvent(tx.QueryRow(ctx, query,
		e.Title, e.Description, e.Location, e.StartDate, e.EndDate, e.ImageURL, e.TicketURL,
	), &created)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	if err := insertLineup(ctx, tx, created.ID, artistIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit event create: %w", err)
	}

	return r.GetByID(ctx, created.ID)
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*event.EventResponse, error) {
	var e event.Event
	err := scanEvent(r.pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id), &e)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, event.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event by id: %w", err)
	}

	lineups, err := r.lineupsFor(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}

	return &event.EventResponse{Event: e, Artists: lineups[id]}, nil
}

func (r *postgresRepository) GetAll(ctx context.Context, p listing.Params) ([]event.EventResponse, int64, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + eventColumns + ` FROM events WHERE 1=1`)

	args := []interface{}{}
	if p.Search != "" {
		args = append(args, "%"+listing.EscapeLike(p.Search)+"%")
		queryBuilder.WriteString(fmt.Sprintf(" AND title ILIKE $%d", len(args)))
	}

	sortColumn := p.SortColumn(map[string]bool{
		"title":      true,
		"start_date": true,
		"created_at": true,
	}, "start_date")
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s %s", sortColumn, p.SortOrder("DESC")))
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, p.PageSize, p.Offset())

	events, err := r.queryEvents(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, err
	}

	countQuery := `SELECT COUNT(*) FROM events WHERE 1=1`
	countArgs := []interface{}{}
	if p.Search != "" {
		countQuery += " AND title ILIKE $1"
		countArgs = append(countArgs, "%"+listing.EscapeLike(p.Search)+"%")
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	return events, total, nil
}

func (r *postgresRepository) ListWindow(ctx context.Context, from, to time.Time) ([]event.EventResponse, error) {
	return r.queryEvents(ctx, `
        SELECT `+eventColumns+`
        FROM events
        WHERE start_date >= $1 AND start_date < $2
        ORDER BY start_date ASC
    `, from, to)
}

// queryEvents runs an event select and attaches lineups in one extra
// round trip instead of one per event.
func (r *postgresRepository) queryEvents(ctx context.Context, query string, args ...interface{}) ([]event.EventResponse, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []event.EventResponse{}
	ids := []uuid.UUID{}
	for rows.Next() {
		var e event.Event
		if err := scanEvent(rows, &e); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event.EventResponse{Event: e, Artists: []event.ArtistRef{}})
		ids = append(ids, e.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	if len(ids) == 0 {
		return events, nil
	}

	lineups, err := r.lineupsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range events {
		if refs, ok := lineups[events[i].ID]; ok {
			events[i].Artists = refs
		}
	}

	return events, nil
}

// lineupsFor loads the lineups of the given events keyed by event id.
func (r *postgresRepository) lineupsFor(ctx context.Context, eventIDs []uuid.UUID) (map[uuid.UUID][]event.ArtistRef, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT ea.event_id, a.id, a.name, a.slug
        FROM event_artists ea
        JOIN artists a ON a.id = ea.artist_id
        WHERE ea.event_id = ANY($1)
        ORDER BY a.name ASC
    `, eventIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query event lineups: %w", err)
	}
	defer rows.Close()

	out := map[uuid.UUID][]event.ArtistRef{}
	for rows.Next() {
		var eventID uuid.UUID
		var ref event.ArtistRef
		if err := rows.Scan(&eventID, &ref.ID, &ref.Name, &ref.Slug); err != nil {
			return nil, fmt.Errorf("failed to scan event lineup: %w", err)
		}
		out[eventID] = append(out[eventID], ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event lineups: %w", err)
	}

	return out, nil
}

func (r *postgresRepository) Update(ctx context.Context, e *event.Event) (*event.EventResponse, error) {
	query := `
        UPDATE events
        SET title = $1, description = $2, location = $3, start_date = $4, end_date = $5,
            image_url = $6, ticket_url = $7, updated_at = NOW()
        WHERE id = $8
        RETURNING ` + eventColumns

	var updated event.Event
	err := scanEvent(r.pool.QueryRow(ctx, query,
		e.Title, e.Description, e.Location, e.StartDate, e.EndDate, e.ImageURL, e.TicketURL, e.ID,
	), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, event.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return r.GetByID(ctx, updated.ID)
}

// ReplaceArtists swaps the lineup wholesale inside one transaction:
// delete everything, insert the new set. Selecting the same artists again
// is a no-op from the caller's point of view.
func (r *postgresRepository) ReplaceArtists(ctx context.Context, eventID uuid.UUID, artistIDs []uuid.UUID) error {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, eventID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check event existence: %w", err)
	}
	if !exists {
		return event.ErrEventNotFound
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM event_artists WHERE event_id = $1`, eventID); err != nil {
		return fmt.Errorf("failed to clear event lineup: %w", err)
	}

	if err := insertLineup(ctx, tx, eventID, artistIDs); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit lineup replace: %w", err)
	}

	return nil
}

func insertLineup(ctx context.Context, tx pgx.Tx, eventID uuid.UUID, artistIDs []uuid.UUID) error {
	for _, artistID := range artistIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO event_artists (event_id, artist_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			eventID, artistID,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return event.ErrArtistNotFound
			}
			return fmt.Errorf("failed to insert event lineup row: %w", err)
		}
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return event.ErrEventNotFound
	}
	return nil
}
