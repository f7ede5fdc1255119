package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pcharbonneau/muniboard/internal/domain"
)

// MunicipalityRepo defines the persistence operations for municipalities and
// their schedule-level settings (guidelines, zone map).
type MunicipalityRepo interface {
	// Create inserts a new municipality and returns the persisted record.
	Create(ctx context.Context, m domain.Municipality) (domain.Municipality, error)

	// GetByID retrieves a municipality by its slug.
	// Returns domain.ErrNotFound if it does not exist.
	GetByID(ctx context.Context, id string) (domain.Municipality, error)

	// List returns all municipalities ordered by slug.
	List(ctx context.Context) ([]domain.Municipality, error)

	// UpdateGuidelines overwrites the guidelines and zone-map URL.
	// Returns domain.ErrNotFound if the municipality does not exist.
	UpdateGuidelines(ctx context.Context, id string, g domain.Guidelines, zoneMapURL string) error

	// Guidelines returns the guidelines and zone-map URL for a municipality.
	Guidelines(ctx context.Context, id string) (domain.Guidelines, string, error)

	// Delete removes a municipality and, via cascading foreign keys, every
	// type, zone, rule, and special collection that belongs to it.
	Delete(ctx context.Context, id string) error
}

// pgMunicipalityRepo is the Postgres implementation of MunicipalityRepo.
type pgMunicipalityRepo struct {
	db db
}

// NewMunicipalityRepo constructs a MunicipalityRepo backed by the provided db
// connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx for
// rollback isolation.
func NewMunicipalityRepo(db db) MunicipalityRepo {
	return &pgMunicipalityRepo{db: db}
}

func (r *pgMunicipalityRepo) Create(ctx context.Context, m domain.Municipality) (domain.Municipality, error) {
	const q = `
		INSERT INTO municipalities (id, name_en, name_fr)
		VALUES (@id, @name_en, @name_fr)
		RETURNING id, name_en, name_fr, created_at, updated_at`

	args := pgx.NamedArgs{
		"id":      m.ID,
		"name_en": m.Name.En,
		"name_fr": m.Name.Fr,
	}

	result, err := scanMunicipality(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Municipality{}, fmt.Errorf("repo.MunicipalityRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgMunicipalityRepo) GetByID(ctx context.Context, id string) (domain.Municipality, error) {
	const q = `
		SELECT id, name_en, name_fr, created_at, updated_at
		FROM municipalities
		WHERE id = @id`

	result, err := scanMunicipality(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Municipality{}, fmt.Errorf("repo.MunicipalityRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgMunicipalityRepo) List(ctx context.Context) ([]domain.Municipality, error) {
	const q = `
		SELECT id, name_en, name_fr, created_at, updated_at
		FROM municipalities
		ORDER BY id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.MunicipalityRepo.List: %w", err)
	}
	defer rows.Close()

	var out []domain.Municipality
	for rows.Next() {
		m, err := scanMunicipality(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.MunicipalityRepo.List: scan: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.MunicipalityRepo.List: rows: %w", err)
	}
	return out, nil
}

func (r *pgMunicipalityRepo) UpdateGuidelines(ctx context.Context, id string, g domain.Guidelines, zoneMapURL string) error {
	const q = `
		UPDATE municipalities
		SET guideline_timing_en    = @timing_en,
		    guideline_timing_fr    = @timing_fr,
		    guideline_placement_en = @placement_en,
		    guideline_placement_fr = @placement_fr,
		    zone_map_url           = @zone_map_url,
		    updated_at             = now()
		WHERE id = @id`

	args := pgx.NamedArgs{
		"id":           id,
		"timing_en":    g.Timing.En,
		"timing_fr":    g.Timing.Fr,
		"placement_en": textArray(g.Placement.En),
		"placement_fr": textArray(g.Placement.Fr),
		"zone_map_url": zoneMapURL,
	}

	tag, err := r.db.Exec(ctx, q, args)
	if err != nil {
		return fmt.Errorf("repo.MunicipalityRepo.UpdateGuidelines: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.MunicipalityRepo.UpdateGuidelines: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgMunicipalityRepo) Guidelines(ctx context.Context, id string) (domain.Guidelines, string, error) {
	const q = `
		SELECT guideline_timing_en, guideline_timing_fr,
		       guideline_placement_en, guideline_placement_fr,
		       zone_map_url
		FROM municipalities
		WHERE id = @id`

	var (
		g   domain.Guidelines
		url string
	)
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(
		&g.Timing.En, &g.Timing.Fr,
		&g.Placement.En, &g.Placement.Fr,
		&url,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Guidelines{}, "", fmt.Errorf("repo.MunicipalityRepo.Guidelines: %w", domain.ErrNotFound)
		}
		return domain.Guidelines{}, "", fmt.Errorf("repo.MunicipalityRepo.Guidelines: %w", err)
	}
	return g, url, nil
}

func (r *pgMunicipalityRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM municipalities WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.MunicipalityRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.MunicipalityRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanMunicipality maps a single database row into a domain.Municipality.
func scanMunicipality(s scanner) (domain.Municipality, error) {
	var m domain.Municipality
	err := s.Scan(&m.ID, &m.Name.En, &m.Name.Fr, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Municipality{}, domain.ErrNotFound
		}
		return domain.Municipality{}, err
	}
	return m, nil
}

// textArray ensures a nil slice is stored as an empty Postgres array rather
// than NULL, keeping the NOT NULL DEFAULT '{}' columns honest.
func textArray(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
