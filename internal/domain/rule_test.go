package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pcharbonneau/muniboard/internal/domain"
)

func datePtr(t *testing.T, s string) *domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	if err != nil {
		t.Fatalf("bad fixture date %q: %v", s, err)
	}
	return &d
}

func TestRecurrenceRule_Validate(t *testing.T) {
	valid := domain.RecurrenceRule{DayOfWeek: 3, Frequency: domain.FrequencyWeekly}
	assert.NoError(t, valid.Validate())

	biweekly := domain.RecurrenceRule{
		DayOfWeek: 3,
		Frequency: domain.FrequencyBiweekly,
		StartDate: datePtr(t, "2024-01-03"),
	}
	assert.NoError(t, biweekly.Validate())

	t.Run("day of week out of range", func(t *testing.T) {
		r := valid
		r.DayOfWeek = 7
		assert.ErrorIs(t, r.Validate(), domain.ErrValidation)

		r.DayOfWeek = -1
		assert.ErrorIs(t, r.Validate(), domain.ErrValidation)
	})

	t.Run("unknown frequency", func(t *testing.T) {
		r := valid
		r.Frequency = "fortnightly"
		assert.ErrorIs(t, r.Validate(), domain.ErrValidation)
	})

	t.Run("biweekly requires anchor", func(t *testing.T) {
		r := domain.RecurrenceRule{DayOfWeek: 3, Frequency: domain.FrequencyBiweekly}
		assert.ErrorIs(t, r.Validate(), domain.ErrValidation)
	})

	t.Run("monthly requires anchor", func(t *testing.T) {
		r := domain.RecurrenceRule{DayOfWeek: 3, Frequency: domain.FrequencyMonthly}
		assert.ErrorIs(t, r.Validate(), domain.ErrValidation)
	})

	t.Run("piggyback only on monthly", func(t *testing.T) {
		r := domain.RecurrenceRule{DayOfWeek: 3, Frequency: domain.FrequencyWeekly, PiggybackOn: "garbage"}
		assert.ErrorIs(t, r.Validate(), domain.ErrValidation)

		m := domain.RecurrenceRule{
			DayOfWeek:   3,
			Frequency:   domain.FrequencyMonthly,
			StartDate:   datePtr(t, "2024-01-03"),
			PiggybackOn: "garbage",
		}
		assert.NoError(t, m.Validate())
	})
}

func TestSpecialCollection_Validate(t *testing.T) {
	base := domain.SpecialCollection{Date: *datePtr(t, "2024-05-01")}

	t.Run("typed", func(t *testing.T) {
		sc := base
		sc.CollectionTypeID = "garbage"
		assert.NoError(t, sc.Validate())
	})

	t.Run("custom", func(t *testing.T) {
		sc := base
		sc.CustomName = domain.Bilingual{En: "Hazardous waste day"}
		assert.NoError(t, sc.Validate())
	})

	t.Run("neither identity", func(t *testing.T) {
		assert.ErrorIs(t, base.Validate(), domain.ErrValidation)
	})

	t.Run("both identities", func(t *testing.T) {
		sc := base
		sc.CollectionTypeID = "garbage"
		sc.CustomName = domain.Bilingual{En: "x"}
		assert.ErrorIs(t, sc.Validate(), domain.ErrValidation)
	})

	t.Run("missing date", func(t *testing.T) {
		sc := domain.SpecialCollection{CollectionTypeID: "garbage"}
		assert.ErrorIs(t, sc.Validate(), domain.ErrValidation)
	})
}

func TestSpecialCollection_AppliesToZone(t *testing.T) {
	everywhere := domain.SpecialCollection{}
	restricted := domain.SpecialCollection{Zones: []string{"nord", "sud"}}

	assert.True(t, everywhere.AppliesToZone("nord"))
	assert.True(t, restricted.AppliesToZone("sud"))
	assert.False(t, restricted.AppliesToZone("ouest"))
}
