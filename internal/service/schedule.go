package service

import (
	"context"
	"fmt"

	"github.com/pcharbonneau/muniboard/internal/domain"
	"github.com/pcharbonneau/muniboard/internal/repo"
)

// ScheduleService implements business logic for per-zone recurrence rules and
// assembles the per-municipality schedule aggregate that the resident-facing
// projections consume. It holds nearly every repo because the aggregate spans
// them all.
type ScheduleService struct {
	munis    repo.MunicipalityRepo
	types    repo.CollectionTypeRepo
	zones    repo.ZoneRepo
	rules    repo.RuleRepo
	specials repo.SpecialRepo
}

// NewScheduleService constructs a ScheduleService backed by the provided repos.
func NewScheduleService(
	munis repo.MunicipalityRepo,
	types repo.CollectionTypeRepo,
	zones repo.ZoneRepo,
	rules repo.RuleRepo,
	specials repo.SpecialRepo,
) *ScheduleService {
	return &ScheduleService{munis: munis, types: types, zones: zones, rules: rules, specials: specials}
}

// SetRule validates and upserts the recurrence rule for a (zone, type) pair,
// which is how a stream is enabled for a zone. The zone and type must both
// exist; a piggyback reference must point at a different type that also
// exists in the municipality.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound for a
// missing zone or type.
func (s *ScheduleService) SetRule(ctx context.Context, muniID, zoneID, typeID string, rule domain.RecurrenceRule) (domain.RecurrenceRule, error) {
	if err := rule.Validate(); err != nil {
		return domain.RecurrenceRule{}, err
	}
	if _, err := s.zones.GetByID(ctx, muniID, zoneID); err != nil {
		return domain.RecurrenceRule{}, fmt.Errorf("service.ScheduleService.SetRule: zone: %w", err)
	}
	if _, err := s.types.GetByID(ctx, muniID, typeID); err != nil {
		return domain.RecurrenceRule{}, fmt.Errorf("service.ScheduleService.SetRule: type: %w", err)
	}
	if rule.PiggybackOn != "" {
		if rule.PiggybackOn == typeID {
			return domain.RecurrenceRule{}, fmt.Errorf("%w: a rule cannot piggyback on its own type", domain.ErrValidation)
		}
		if _, err := s.types.GetByID(ctx, muniID, rule.PiggybackOn); err != nil {
			return domain.RecurrenceRule{}, fmt.Errorf("service.ScheduleService.SetRule: piggyback target: %w", err)
		}
	}

	result, err := s.rules.Upsert(ctx, muniID, zoneID, typeID, rule)
	if err != nil {
		return domain.RecurrenceRule{}, fmt.Errorf("service.ScheduleService.SetRule: %w", err)
	}
	return result, nil
}

// GetRule returns the rule for a (zone, type) pair.
// Returns domain.ErrNotFound if the stream is not enabled for the zone.
func (s *ScheduleService) GetRule(ctx context.Context, muniID, zoneID, typeID string) (domain.RecurrenceRule, error) {
	result, err := s.rules.Get(ctx, muniID, zoneID, typeID)
	if err != nil {
		return domain.RecurrenceRule{}, fmt.Errorf("service.ScheduleService.GetRule: %w", err)
	}
	return result, nil
}

// DeleteRule removes the rule for a (zone, type) pair, disabling the stream
// for that zone.
// Returns domain.ErrNotFound if no such rule exists.
func (s *ScheduleService) DeleteRule(ctx context.Context, muniID, zoneID, typeID string) error {
	if err := s.rules.Delete(ctx, muniID, zoneID, typeID); err != nil {
		return fmt.Errorf("service.ScheduleService.DeleteRule: %w", err)
	}
	return nil
}

// Schedule loads the full schedule aggregate for a municipality: streams,
// zones, per-zone rules, one-off events, and guidelines.
// Returns domain.ErrNotFound if the municipality does not exist.
func (s *ScheduleService) Schedule(ctx context.Context, muniID string) (domain.ScheduleData, error) {
	if _, err := s.munis.GetByID(ctx, muniID); err != nil {
		return domain.ScheduleData{}, fmt.Errorf("service.ScheduleService.Schedule: %w", err)
	}

	types, err := s.types.List(ctx, muniID)
	if err != nil {
		return domain.ScheduleData{}, fmt.Errorf("service.ScheduleService.Schedule: %w", err)
	}
	zones, err := s.zones.List(ctx, muniID)
	if err != nil {
		return domain.ScheduleData{}, fmt.Errorf("service.ScheduleService.Schedule: %w", err)
	}
	rules, err := s.rules.ListByMunicipality(ctx, muniID)
	if err != nil {
		return domain.ScheduleData{}, fmt.Errorf("service.ScheduleService.Schedule: %w", err)
	}
	specials, err := s.specials.List(ctx, muniID)
	if err != nil {
		return domain.ScheduleData{}, fmt.Errorf("service.ScheduleService.Schedule: %w", err)
	}
	guidelines, zoneMapURL, err := s.munis.Guidelines(ctx, muniID)
	if err != nil {
		return domain.ScheduleData{}, fmt.Errorf("service.ScheduleService.Schedule: %w", err)
	}

	return domain.ScheduleData{
		MunicipalityID:     muniID,
		CollectionTypes:    types,
		Zones:              zones,
		Schedules:          rules,
		SpecialCollections: specials,
		Guidelines:         guidelines,
		ZoneMapURL:         zoneMapURL,
	}, nil
}
