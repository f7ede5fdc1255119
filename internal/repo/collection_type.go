package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pcharbonneau/muniboard/internal/domain"
)

// CollectionTypeRepo defines the persistence operations for waste streams.
// Deleting a type cascades out of every zone's schedule and every special
// collection that references it (enforced by foreign keys, not Go code).
type CollectionTypeRepo interface {
	// Create inserts a new collection type for a municipality.
	Create(ctx context.Context, muniID string, ct domain.CollectionType) (domain.CollectionType, error)

	// GetByID retrieves a single type by its municipality-scoped slug.
	// Returns domain.ErrNotFound if it does not exist.
	GetByID(ctx context.Context, muniID, id string) (domain.CollectionType, error)

	// List returns all of a municipality's types ordered by slug.
	List(ctx context.Context, muniID string) ([]domain.CollectionType, error)

	// Update overwrites the mutable fields of an existing type.
	// Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, muniID string, ct domain.CollectionType) (domain.CollectionType, error)

	// Delete removes a type. Schedule rules and typed special collections
	// referencing it are removed by the cascading foreign keys.
	Delete(ctx context.Context, muniID, id string) error
}

// pgCollectionTypeRepo is the Postgres implementation of CollectionTypeRepo.
type pgCollectionTypeRepo struct {
	db db
}

// NewCollectionTypeRepo constructs a CollectionTypeRepo backed by the
// provided db connection.
func NewCollectionTypeRepo(db db) CollectionTypeRepo {
	return &pgCollectionTypeRepo{db: db}
}

const collectionTypeColumns = `
	id, name_en, name_fr, bin_name_en, bin_name_fr, color, bin_size,
	accepted_en, accepted_fr, not_accepted_en, not_accepted_fr,
	tip_en, tip_fr, created_at, updated_at`

func (r *pgCollectionTypeRepo) Create(ctx context.Context, muniID string, ct domain.CollectionType) (domain.CollectionType, error) {
	const q = `
		INSERT INTO collection_types (
			municipality_id, id, name_en, name_fr, bin_name_en, bin_name_fr,
			color, bin_size, accepted_en, accepted_fr,
			not_accepted_en, not_accepted_fr, tip_en, tip_fr
		)
		VALUES (
			@municipality_id, @id, @name_en, @name_fr, @bin_name_en, @bin_name_fr,
			@color, @bin_size, @accepted_en, @accepted_fr,
			@not_accepted_en, @not_accepted_fr, @tip_en, @tip_fr
		)
		RETURNING` + collectionTypeColumns

	result, err := scanCollectionType(r.db.QueryRow(ctx, q, collectionTypeArgs(muniID, ct)))
	if err != nil {
		return domain.CollectionType{}, fmt.Errorf("repo.CollectionTypeRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgCollectionTypeRepo) GetByID(ctx context.Context, muniID, id string) (domain.CollectionType, error) {
	const q = `
		SELECT` + collectionTypeColumns + `
		FROM collection_types
		WHERE municipality_id = @municipality_id AND id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"municipality_id": muniID, "id": id})
	result, err := scanCollectionType(row)
	if err != nil {
		return domain.CollectionType{}, fmt.Errorf("repo.CollectionTypeRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgCollectionTypeRepo) List(ctx context.Context, muniID string) ([]domain.CollectionType, error) {
	const q = `
		SELECT` + collectionTypeColumns + `
		FROM collection_types
		WHERE municipality_id = @municipality_id
		ORDER BY id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"municipality_id": muniID})
	if err != nil {
		return nil, fmt.Errorf("repo.CollectionTypeRepo.List: %w", err)
	}
	defer rows.Close()

	out := []domain.CollectionType{}
	for rows.Next() {
		ct, err := scanCollectionType(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.CollectionTypeRepo.List: scan: %w", err)
		}
		out = append(out, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CollectionTypeRepo.List: rows: %w", err)
	}
	return out, nil
}

func (r *pgCollectionTypeRepo) Update(ctx context.Context, muniID string, ct domain.CollectionType) (domain.CollectionType, error) {
	const q = `
		UPDATE collection_types
		SET name_en         = @name_en,
		    name_fr         = @name_fr,
		    bin_name_en     = @bin_name_en,
		    bin_name_fr     = @bin_name_fr,
		    color           = @color,
		    bin_size        = @bin_size,
		    accepted_en     = @accepted_en,
		    accepted_fr     = @accepted_fr,
		    not_accepted_en = @not_accepted_en,
		    not_accepted_fr = @not_accepted_fr,
		    tip_en          = @tip_en,
		    tip_fr          = @tip_fr,
		    updated_at      = now()
		WHERE municipality_id = @municipality_id AND id = @id
		RETURNING` + collectionTypeColumns

	result, err := scanCollectionType(r.db.QueryRow(ctx, q, collectionTypeArgs(muniID, ct)))
	if err != nil {
		return domain.CollectionType{}, fmt.Errorf("repo.CollectionTypeRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgCollectionTypeRepo) Delete(ctx context.Context, muniID, id string) error {
	const q = `DELETE FROM collection_types WHERE municipality_id = @municipality_id AND id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"municipality_id": muniID, "id": id})
	if err != nil {
		return fmt.Errorf("repo.CollectionTypeRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.CollectionTypeRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func collectionTypeArgs(muniID string, ct domain.CollectionType) pgx.NamedArgs {
	return pgx.NamedArgs{
		"municipality_id": muniID,
		"id":              ct.ID,
		"name_en":         ct.Name.En,
		"name_fr":         ct.Name.Fr,
		"bin_name_en":     ct.BinName.En,
		"bin_name_fr":     ct.BinName.Fr,
		"color":           ct.Color,
		"bin_size":        ct.BinSize,
		"accepted_en":     textArray(ct.Accepted.En),
		"accepted_fr":     textArray(ct.Accepted.Fr),
		"not_accepted_en": textArray(ct.NotAccepted.En),
		"not_accepted_fr": textArray(ct.NotAccepted.Fr),
		"tip_en":          ct.Tip.En,
		"tip_fr":          ct.Tip.Fr,
	}
}

// scanCollectionType maps a single database row into a domain.CollectionType.
func scanCollectionType(s scanner) (domain.CollectionType, error) {
	var ct domain.CollectionType
	err := s.Scan(
		&ct.ID, &ct.Name.En, &ct.Name.Fr, &ct.BinName.En, &ct.BinName.Fr,
		&ct.Color, &ct.BinSize,
		&ct.Accepted.En, &ct.Accepted.Fr, &ct.NotAccepted.En, &ct.NotAccepted.Fr,
		&ct.Tip.En, &ct.Tip.Fr, &ct.CreatedAt, &ct.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.CollectionType{}, domain.ErrNotFound
		}
		return domain.CollectionType{}, err
	}
	return ct, nil
}
