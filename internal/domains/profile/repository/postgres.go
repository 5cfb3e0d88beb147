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

	"dacosta-backend/internal/domains/profile"
	"dacosta-backend/internal/shared/listing"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) profile.Repository {
	return &postgresRepository{pool: pool}
}

const profileColumns = "id, email, password_hash, full_name, avatar_url, role, artist_id, last_login_at, created_at, updated_at"

func scanProfile(row pgx.Row, p *profile.Profile) error {
	return row.Scan(
		&p.ID,
		&p.Email,
		&p.PasswordHash,
		&p.FullName,
		&p.AvatarURL,
		&p.Role,
		&p.ArtistID,
		&p.LastLoginAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}

func (r *postgresRepository) Create(ctx context.Context, p *profile.Profile) error {
	query := `
        INSERT INTO profiles (id, email, password_hash, full_name, avatar_url, role, artist_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `

	_, err := r.pool.Exec(ctx, query,
		p.ID, strings.ToLower(p.Email), p.PasswordHash, p.FullName, p.AvatarURL, p.Role, p.ArtistID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return profile.ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	var p profile.Profile
	err := scanProfile(r.pool.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, profile.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile by id: %w", err)
	}
	return &p, nil
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	var p profile.Profile
	err := scanProfile(r.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE email = $1`, strings.ToLower(email),
	), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, profile.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile by email: %w", err)
	}
	return &p, nil
}

func (r *postgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM profiles WHERE email = $1)`, strings.ToLower(email),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) GetAll(ctx context.Context, p listing.Params) ([]profile.Profile, int64, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + profileColumns + ` FROM profiles WHERE 1=1`)

	args := []interface{}{}
	if p.Search != "" {
		args = append(args, "%"+listing.EscapeLike(p.Search)+"%")
		queryBuilder.WriteString(fmt.Sprintf(" AND (email ILIKE $%d OR full_name ILIKE $%d)", len(args), len(args)))
	}

	sortColumn := p.SortColumn(map[string]bool{
		"email":      true,
		"role":       true,
		"created_at": true,
	}, "created_at")
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s %s", sortColumn, p.SortOrder("DESC")))
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, p.PageSize, p.Offset())

	rows, err := r.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []profile.Profile
	for rows.Next() {
		var pr profile.Profile
		if err := scanProfile(rows, &pr); err != nil {
			return nil, 0, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating profiles: %w", err)
	}

	countQuery := `SELECT COUNT(*) FROM profiles WHERE 1=1`
	countArgs := []interface{}{}
	if p.Search != "" {
		countQuery += " AND (email ILIKE $1 OR full_name ILIKE $1)"
		countArgs = append(countArgs, "%"+listing.EscapeLike(p.Search)+"%")
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count profiles: %w", err)
	}

	return profiles, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, p *profile.Profile) error {
	query := `
        UPDATE profiles
        SET full_name = $1, avatar_url = $2, role = $3, artist_id = $4, updated_at = NOW()
        WHERE id = $5
    `

	cmdTag, err := r.pool.Exec(ctx, query, p.FullName, p.AvatarURL, p.Role, p.ArtistID, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return profile.ErrProfileNotFound
	}

	return nil
}

func (r *postgresRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE profiles SET password_hash = $1, updated_at = NOW() WHERE id = $2`,
		passwordHash, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return profile.ErrProfileNotFound
	}
	return nil
}

func (r *postgresRepository) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `UPDATE profiles SET last_login_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to record login: %w", err)
	}
	return nil
}
