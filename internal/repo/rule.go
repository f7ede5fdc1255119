package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pcharbonneau/muniboard/internal/domain"
)

// RuleRepo defines the persistence operations for per-zone schedule rules.
// A rule row exists only while the municipality has that stream enabled for
// that zone: enabling upserts, disabling deletes.
type RuleRepo interface {
	// Upsert inserts or overwrites the rule for a (zone, type) pair.
	Upsert(ctx context.Context, muniID, zoneID, typeID string, rule domain.RecurrenceRule) (domain.RecurrenceRule, error)

	// Get retrieves the rule for a (zone, type) pair.
	// Returns domain.ErrNotFound if the stream is not enabled for the zone.
	Get(ctx context.Context, muniID, zoneID, typeID string) (domain.RecurrenceRule, error)

	// ListByMunicipality returns every rule grouped by zone, the shape the
	// ScheduleData aggregate wants.
	ListByMunicipality(ctx context.Context, muniID string) (map[string]domain.ZoneSchedule, error)

	// Delete removes the rule for a (zone, type) pair.
	// Returns domain.ErrNotFound if no such rule exists.
	Delete(ctx context.Context, muniID, zoneID, typeID string) error
}

// pgRuleRepo is the Postgres implementation of RuleRepo.
type pgRuleRepo struct {
	db db
}

// NewRuleRepo constructs a RuleRepo backed by the provided db connection.
func NewRuleRepo(db db) RuleRepo {
	return &pgRuleRepo{db: db}
}

func (r *pgRuleRepo) Upsert(ctx context.Context, muniID, zoneID, typeID string, rule domain.RecurrenceRule) (domain.RecurrenceRule, error) {
	const q = `
		INSERT INTO schedule_rules (
			municipality_id, zone_id, collection_type_id,
			day_of_week, frequency, start_date, piggyback_on,
			collection_time, collection_end_time
		)
		VALUES (
			@municipality_id, @zone_id, @collection_type_id,
			@day_of_week, @frequency, @start_date, @piggyback_on,
			@collection_time, @collection_end_time
		)
		ON CONFLICT (municipality_id, zone_id, collection_type_id) DO UPDATE
		SET day_of_week         = EXCLUDED.day_of_week,
		    frequency           = EXCLUDED.frequency,
		    start_date          = EXCLUDED.start_date,
		    piggyback_on        = EXCLUDED.piggyback_on,
		    collection_time     = EXCLUDED.collection_time,
		    collection_end_time = EXCLUDED.collection_end_time,
		    updated_at          = now()
		RETURNING day_of_week, frequency, start_date, piggyback_on, collection_time, collection_end_time`

	args := pgx.NamedArgs{
		"municipality_id":     muniID,
		"zone_id":             zoneID,
		"collection_type_id":  typeID,
		"day_of_week":         rule.DayOfWeek,
		"frequency":           string(rule.Frequency),
		"start_date":          pgFromDatePtr(rule.StartDate),
		"piggyback_on":        rule.PiggybackOn,
		"collection_time":     rule.Time,
		"collection_end_time": rule.EndTime,
	}

	result, err := scanRule(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.RecurrenceRule{}, fmt.Errorf("repo.RuleRepo.Upsert: %w", err)
	}
	return result, nil
}

func (r *pgRuleRepo) Get(ctx context.Context, muniID, zoneID, typeID string) (domain.RecurrenceRule, error) {
	const q = `
		SELECT day_of_week, frequency, start_date, piggyback_on, collection_time, collection_end_time
		FROM schedule_rules
		WHERE municipality_id = @municipality_id AND zone_id = @zone_id AND collection_type_id = @collection_type_id`

	args := pgx.NamedArgs{
		"municipality_id":    muniID,
		"zone_id":            zoneID,
		"collection_type_id": typeID,
	}

	result, err := scanRule(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.RecurrenceRule{}, fmt.Errorf("repo.RuleRepo.Get: %w", err)
	}
	return result, nil
}

func (r *pgRuleRepo) ListByMunicipality(ctx context.Context, muniID string) (map[string]domain.ZoneSchedule, error) {
	const q = `
		SELECT zone_id, collection_type_id,
		       day_of_week, frequency, start_date, piggyback_on, collection_time, collection_end_time
		FROM schedule_rules
		WHERE municipality_id = @municipality_id
		ORDER BY zone_id, collection_type_id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"municipality_id": muniID})
	if err != nil {
		return nil, fmt.Errorf("repo.RuleRepo.ListByMunicipality: %w", err)
	}
	defer rows.Close()

	out := map[string]domain.ZoneSchedule{}
	for rows.Next() {
		var (
			zoneID    string
			typeID    string
			rule      domain.RecurrenceRule
			startDate pgtype.Date
		)
		err := rows.Scan(
			&zoneID, &typeID,
			&rule.DayOfWeek, &rule.Frequency, &startDate, &rule.PiggybackOn,
			&rule.Time, &rule.EndTime,
		)
		if err != nil {
			return nil, fmt.Errorf("repo.RuleRepo.ListByMunicipality: scan: %w", err)
		}
		rule.StartDate = datePtrFromPG(startDate)

		if out[zoneID] == nil {
			out[zoneID] = domain.ZoneSchedule{}
		}
		out[zoneID][typeID] = rule
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.RuleRepo.ListByMunicipality: rows: %w", err)
	}
	return out, nil
}

func (r *pgRuleRepo) Delete(ctx context.Context, muniID, zoneID, typeID string) error {
	const q = `
		DELETE FROM schedule_rules
		WHERE municipality_id = @municipality_id AND zone_id = @zone_id AND collection_type_id = @collection_type_id`

	args := pgx.NamedArgs{
		"municipality_id":    muniID,
		"zone_id":            zoneID,
		"collection_type_id": typeID,
	}

	tag, err := r.db.Exec(ctx, q, args)
	if err != nil {
		return fmt.Errorf("repo.RuleRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.RuleRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanRule maps a single database row into a domain.RecurrenceRule.
func scanRule(s scanner) (domain.RecurrenceRule, error) {
	var (
		rule      domain.RecurrenceRule
		startDate pgtype.Date
	)
	err := s.Scan(
		&rule.DayOfWeek, &rule.Frequency, &startDate, &rule.PiggybackOn,
		&rule.Time, &rule.EndTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.RecurrenceRule{}, domain.ErrNotFound
		}
		return domain.RecurrenceRule{}, err
	}
	rule.StartDate = datePtrFromPG(startDate)
	return rule, nil
}
