package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pcharbonneau/muniboard/internal/domain"
)

// ZoneRepo defines the persistence operations for collection zones.
// Deleting a zone removes all of its schedule rules via the cascading
// foreign key.
type ZoneRepo interface {
	// Create inserts a new zone for a municipality.
	Create(ctx context.Context, muniID string, z domain.Zone) (domain.Zone, error)

	// GetByID retrieves a single zone by its municipality-scoped slug.
	// Returns domain.ErrNotFound if it does not exist.
	GetByID(ctx context.Context, muniID, id string) (domain.Zone, error)

	// List returns all of a municipality's zones ordered by slug.
	List(ctx context.Context, muniID string) ([]domain.Zone, error)

	// Count returns the number of zones a municipality has.
	// The service uses it to refuse deleting the last zone.
	Count(ctx context.Context, muniID string) (int64, error)

	// Update overwrites the mutable fields of an existing zone.
	Update(ctx context.Context, muniID string, z domain.Zone) (domain.Zone, error)

	// Delete removes a zone and, by cascade, its schedule rules.
	Delete(ctx context.Context, muniID, id string) error
}

// pgZoneRepo is the Postgres implementation of ZoneRepo.
type pgZoneRepo struct {
	db db
}

// NewZoneRepo constructs a ZoneRepo backed by the provided db connection.
func NewZoneRepo(db db) ZoneRepo {
	return &pgZoneRepo{db: db}
}

const zoneColumns = `
	id, name_en, name_fr, description_en, description_fr, color, created_at, updated_at`

func (r *pgZoneRepo) Create(ctx context.Context, muniID string, z domain.Zone) (domain.Zone, error) {
	const q = `
		INSERT INTO zones (municipality_id, id, name_en, name_fr, description_en, description_fr, color)
		VALUES (@municipality_id, @id, @name_en, @name_fr, @description_en, @description_fr, @color)
		RETURNING` + zoneColumns

	args := pgx.NamedArgs{
		"municipality_id": muniID,
		"id":              z.ID,
		"name_en":         z.Name.En,
		"name_fr":         z.Name.Fr,
		"description_en":  z.Description.En,
		"description_fr":  z.Description.Fr,
		"color":           z.Color,
	}

	result, err := scanZone(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Zone{}, fmt.Errorf("repo.ZoneRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgZoneRepo) GetByID(ctx context.Context, muniID, id string) (domain.Zone, error) {
	const q = `
		SELECT` + zoneColumns + `
		FROM zones
		WHERE municipality_id = @municipality_id AND id = @id`

	result, err := scanZone(r.db.QueryRow(ctx, q, pgx.NamedArgs{"municipality_id": muniID, "id": id}))
	if err != nil {
		return domain.Zone{}, fmt.Errorf("repo.ZoneRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgZoneRepo) List(ctx context.Context, muniID string) ([]domain.Zone, error) {
	const q = `
		SELECT` + zoneColumns + `
		FROM zones
		WHERE municipality_id = @municipality_id
		ORDER BY id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"municipality_id": muniID})
	if err != nil {
		return nil, fmt.Errorf("repo.ZoneRepo.List: %w", err)
	}
	defer rows.Close()

	out := []domain.Zone{}
	for rows.Next() {
		z, err := scanZone(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ZoneRepo.List: scan: %w", err)
		}
		out = append(out, z)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ZoneRepo.List: rows: %w", err)
	}
	return out, nil
}

func (r *pgZoneRepo) Count(ctx context.Context, muniID string) (int64, error) {
	const q = `SELECT count(*) FROM zones WHERE municipality_id = @municipality_id`

	var n int64
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"municipality_id": muniID}).Scan(&n); err != nil {
		return 0, fmt.Errorf("repo.ZoneRepo.Count: %w", err)
	}
	return n, nil
}

func (r *pgZoneRepo) Update(ctx context.Context, muniID string, z domain.Zone) (domain.Zone, error) {
	const q = `
		UPDATE zones
		SET name_en        = @name_en,
		    name_fr        = @name_fr,
		    description_en = @description_en,
		    description_fr = @description_fr,
		    color          = @color,
		    updated_at     = now()
		WHERE municipality_id = @municipality_id AND id = @id
		RETURNING` + zoneColumns

	args := pgx.NamedArgs{
		"municipality_id": muniID,
		"id":              z.ID,
		"name_en":         z.Name.En,
		"name_fr":         z.Name.Fr,
		"description_en":  z.Description.En,
		"description_fr":  z.Description.Fr,
		"color":           z.Color,
	}

	result, err := scanZone(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Zone{}, fmt.Errorf("repo.ZoneRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgZoneRepo) Delete(ctx context.Context, muniID, id string) error {
	const q = `DELETE FROM zones WHERE municipality_id = @municipality_id AND id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"municipality_id": muniID, "id": id})
	if err != nil {
		return fmt.Errorf("repo.ZoneRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ZoneRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanZone maps a single database row into a domain.Zone.
func scanZone(s scanner) (domain.Zone, error) {
	var z domain.Zone
	err := s.Scan(
		&z.ID, &z.Name.En, &z.Name.Fr,
		&z.Description.En, &z.Description.Fr,
		&z.Color, &z.CreatedAt, &z.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Zone{}, domain.ErrNotFound
		}
		return domain.Zone{}, err
	}
	return z, nil
}
