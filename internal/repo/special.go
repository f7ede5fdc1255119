package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pcharbonneau/muniboard/internal/domain"
)

// SpecialRepo defines the persistence operations for one-off collection events.
type SpecialRepo interface {
	// Create inserts a new special collection and returns the persisted
	// record with its DB-generated id.
	Create(ctx context.Context, muniID string, sc domain.SpecialCollection) (domain.SpecialCollection, error)

	// GetByID retrieves a single event by its UUID.
	// Returns domain.ErrNotFound if no event with that ID exists.
	GetByID(ctx context.Context, muniID string, id uuid.UUID) (domain.SpecialCollection, error)

	// List returns all of a municipality's events ordered by date ascending.
	// View filtering and per-zone applicability are computed in the
	// recurrence package, not in SQL, so every surface shares one
	// implementation of those rules.
	List(ctx context.Context, muniID string) ([]domain.SpecialCollection, error)

	// ListPaged returns one page of events ordered by date ascending and the
	// total count.
	ListPaged(ctx context.Context, muniID string, p domain.PaginationParams) ([]domain.SpecialCollection, int64, error)

	// Update overwrites the mutable fields of an existing event.
	Update(ctx context.Context, muniID string, sc domain.SpecialCollection) (domain.SpecialCollection, error)

	// Delete removes an event by ID.
	Delete(ctx context.Context, muniID string, id uuid.UUID) error
}

// pgSpecialRepo is the Postgres implementation of SpecialRepo.
type pgSpecialRepo struct {
	db db
}

// NewSpecialRepo constructs a SpecialRepo backed by the provided db connection.
func NewSpecialRepo(db db) SpecialRepo {
	return &pgSpecialRepo{db: db}
}

const specialColumns = `
	id, collection_type_id, custom_name_en, custom_name_fr, color,
	event_date, event_time, event_end_time, zones,
	description_en, description_fr, location, active, created_at, updated_at`

func (r *pgSpecialRepo) Create(ctx context.Context, muniID string, sc domain.SpecialCollection) (domain.SpecialCollection, error) {
	const q = `
		INSERT INTO special_collections (
			municipality_id, collection_type_id, custom_name_en, custom_name_fr,
			color, event_date, event_time, event_end_time, zones,
			description_en, description_fr, location, active
		)
		VALUES (
			@municipality_id, @collection_type_id, @custom_name_en, @custom_name_fr,
			@color, @event_date, @event_time, @event_end_time, @zones,
			@description_en, @description_fr, @location, @active
		)
		RETURNING` + specialColumns

	result, err := scanSpecial(r.db.QueryRow(ctx, q, specialArgs(muniID, sc)))
	if err != nil {
		return domain.SpecialCollection{}, fmt.Errorf("repo.SpecialRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgSpecialRepo) GetByID(ctx context.Context, muniID string, id uuid.UUID) (domain.SpecialCollection, error) {
	const q = `
		SELECT` + specialColumns + `
		FROM special_collections
		WHERE municipality_id = @municipality_id AND id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"municipality_id": muniID, "id": id})
	result, err := scanSpecial(row)
	if err != nil {
		return domain.SpecialCollection{}, fmt.Errorf("repo.SpecialRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgSpecialRepo) List(ctx context.Context, muniID string) ([]domain.SpecialCollection, error) {
	const q = `
		SELECT` + specialColumns + `
		FROM special_collections
		WHERE municipality_id = @municipality_id
		ORDER BY event_date, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"municipality_id": muniID})
	if err != nil {
		return nil, fmt.Errorf("repo.SpecialRepo.List: %w", err)
	}
	defer rows.Close()

	out := []domain.SpecialCollection{}
	for rows.Next() {
		sc, err := scanSpecial(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.SpecialRepo.List: scan: %w", err)
		}
		out = append(out, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.SpecialRepo.List: rows: %w", err)
	}
	return out, nil
}

func (r *pgSpecialRepo) ListPaged(ctx context.Context, muniID string, p domain.PaginationParams) ([]domain.SpecialCollection, int64, error) {
	const q = `
		SELECT` + specialColumns + `, count(*) OVER () AS total
		FROM special_collections
		WHERE municipality_id = @municipality_id
		ORDER BY event_date, id
		LIMIT @limit OFFSET @offset`

	args := pgx.NamedArgs{
		"municipality_id": muniID,
		"limit":           p.Limit,
		"offset":          p.Offset(),
	}

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.SpecialRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	var total int64
	out := []domain.SpecialCollection{}
	for rows.Next() {
		sc, n, err := scanSpecialWithTotal(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.SpecialRepo.ListPaged: scan: %w", err)
		}
		total = n
		out = append(out, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.SpecialRepo.ListPaged: rows: %w", err)
	}
	return out, total, nil
}

func (r *pgSpecialRepo) Update(ctx context.Context, muniID string, sc domain.SpecialCollection) (domain.SpecialCollection, error) {
	const q = `
		UPDATE special_collections
		SET collection_type_id = @collection_type_id,
		    custom_name_en     = @custom_name_en,
		    custom_name_fr     = @custom_name_fr,
		    color              = @color,
		    event_date         = @event_date,
		    event_time         = @event_time,
		    event_end_time     = @event_end_time,
		    zones              = @zones,
		    description_en     = @description_en,
		    description_fr     = @description_fr,
		    location           = @location,
		    active             = @active,
		    updated_at         = now()
		WHERE municipality_id = @municipality_id AND id = @id
		RETURNING` + specialColumns

	args := specialArgs(muniID, sc)
	args["id"] = sc.ID

	result, err := scanSpecial(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.SpecialCollection{}, fmt.Errorf("repo.SpecialRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgSpecialRepo) Delete(ctx context.Context, muniID string, id uuid.UUID) error {
	const q = `DELETE FROM special_collections WHERE municipality_id = @municipality_id AND id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"municipality_id": muniID, "id": id})
	if err != nil {
		return fmt.Errorf("repo.SpecialRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.SpecialRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func specialArgs(muniID string, sc domain.SpecialCollection) pgx.NamedArgs {
	// Empty string means "no typed identity" in the domain; NULL in SQL so
	// the composite foreign key is not checked against it.
	var typeID any
	if sc.CollectionTypeID != "" {
		typeID = sc.CollectionTypeID
	}

	return pgx.NamedArgs{
		"municipality_id":    muniID,
		"collection_type_id": typeID,
		"custom_name_en":     sc.CustomName.En,
		"custom_name_fr":     sc.CustomName.Fr,
		"color":              sc.Color,
		"event_date":         pgFromDate(sc.Date),
		"event_time":         sc.Time,
		"event_end_time":     sc.EndTime,
		"zones":              textArray(sc.Zones),
		"description_en":     sc.Description.En,
		"description_fr":     sc.Description.Fr,
		"location":           sc.Location,
		"active":             sc.Active,
	}
}

// scanSpecial maps a single database row into a domain.SpecialCollection.
func scanSpecial(s scanner) (domain.SpecialCollection, error) {
	sc, _, err := scanSpecialInto(s, false)
	return sc, err
}

func scanSpecialWithTotal(s scanner) (domain.SpecialCollection, int64, error) {
	return scanSpecialInto(s, true)
}

func scanSpecialInto(s scanner, withTotal bool) (domain.SpecialCollection, int64, error) {
	var (
		sc        domain.SpecialCollection
		id        pgtype.UUID
		typeID    pgtype.Text
		eventDate pgtype.Date
		total     int64
	)

	dest := []any{
		&id, &typeID, &sc.CustomName.En, &sc.CustomName.Fr, &sc.Color,
		&eventDate, &sc.Time, &sc.EndTime, &sc.Zones,
		&sc.Description.En, &sc.Description.Fr, &sc.Location, &sc.Active,
		&sc.CreatedAt, &sc.UpdatedAt,
	}
	if withTotal {
		dest = append(dest, &total)
	}

	if err := s.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.SpecialCollection{}, 0, domain.ErrNotFound
		}
		return domain.SpecialCollection{}, 0, err
	}

	sc.ID = uuid.UUID(id.Bytes)
	if typeID.Valid {
		sc.CollectionTypeID = typeID.String
	}
	sc.Date = dateFromPG(eventDate)
	return sc, total, nil
}
