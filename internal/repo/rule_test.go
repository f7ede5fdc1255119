package repo_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcharbonneau/muniboard/internal/domain"
	"github.com/pcharbonneau/muniboard/internal/repo"
	"github.com/pcharbonneau/muniboard/testutil"
)

// newTestTx opens a transaction against the test database that is rolled
// back when the test finishes, giving free per-test isolation. All repos in
// a test share the same transaction so they see each other's writes.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		// Rollback discards all changes made during the test — no cleanup SQL needed.
		_ = tx.Rollback(context.Background())
	})

	return tx
}

// seedSchedule provisions a municipality with one zone and two collection
// types, returning the municipality ID.
func seedSchedule(t *testing.T, tx pgx.Tx) string {
	t.Helper()
	ctx := context.Background()

	_, err := repo.NewMunicipalityRepo(tx).Create(ctx, domain.Municipality{
		ID:   "ville-test",
		Name: domain.Bilingual{En: "Testville", Fr: "Villetest"},
	})
	require.NoError(t, err)

	_, err = repo.NewZoneRepo(tx).Create(ctx, "ville-test", domain.Zone{
		ID:   "nord",
		Name: domain.Bilingual{En: "North", Fr: "Nord"},
	})
	require.NoError(t, err)

	types := repo.NewCollectionTypeRepo(tx)
	for _, id := range []string{"garbage", "recycling"} {
		_, err = types.Create(ctx, "ville-test", domain.CollectionType{
			ID:   id,
			Name: domain.Bilingual{En: id, Fr: id},
		})
		require.NoError(t, err)
	}

	return "ville-test"
}

func startOf(t *testing.T, s string) *domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return &d
}

func TestRuleRepo_UpsertAndGet(t *testing.T) {
	tx := newTestTx(t)
	muniID := seedSchedule(t, tx)
	r := repo.NewRuleRepo(tx)
	ctx := context.Background()

	rule := domain.RecurrenceRule{
		DayOfWeek: 3,
		Frequency: domain.FrequencyBiweekly,
		StartDate: startOf(t, "2024-01-03"),
		Time:      "07:00",
	}

	got, err := r.Upsert(ctx, muniID, "nord", "recycling", rule)

	require.NoError(t, err)
	assert.Equal(t, 3, got.DayOfWeek)
	assert.Equal(t, domain.FrequencyBiweekly, got.Frequency)
	require.NotNil(t, got.StartDate)
	assert.Equal(t, "2024-01-03", got.StartDate.String())

	// Upsert again with new values — same primary key, updated row.
	rule.DayOfWeek = 5
	rule.Frequency = domain.FrequencyWeekly
	rule.StartDate = nil

	got, err = r.Upsert(ctx, muniID, "nord", "recycling", rule)

	require.NoError(t, err)
	assert.Equal(t, 5, got.DayOfWeek)
	assert.Nil(t, got.StartDate, "weekly rules store NULL start_date")

	fetched, err := r.Get(ctx, muniID, "nord", "recycling")
	require.NoError(t, err)
	assert.Equal(t, got, fetched)
}

func TestRuleRepo_Get_NotFound(t *testing.T) {
	tx := newTestTx(t)
	muniID := seedSchedule(t, tx)

	_, err := repo.NewRuleRepo(tx).Get(context.Background(), muniID, "nord", "compost")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRuleRepo_ListByMunicipality_GroupsByZone(t *testing.T) {
	tx := newTestTx(t)
	muniID := seedSchedule(t, tx)
	r := repo.NewRuleRepo(tx)
	ctx := context.Background()

	_, err := r.Upsert(ctx, muniID, "nord", "garbage", domain.RecurrenceRule{
		DayOfWeek: 1, Frequency: domain.FrequencyWeekly,
	})
	require.NoError(t, err)
	_, err = r.Upsert(ctx, muniID, "nord", "recycling", domain.RecurrenceRule{
		DayOfWeek: 3, Frequency: domain.FrequencyBiweekly, StartDate: startOf(t, "2024-01-03"),
	})
	require.NoError(t, err)

	got, err := r.ListByMunicipality(ctx, muniID)

	require.NoError(t, err)
	require.Contains(t, got, "nord")
	assert.Len(t, got["nord"], 2)
	assert.Equal(t, 1, got["nord"]["garbage"].DayOfWeek)
	require.NotNil(t, got["nord"]["recycling"].StartDate)
}

func TestRuleRepo_Delete(t *testing.T) {
	tx := newTestTx(t)
	muniID := seedSchedule(t, tx)
	r := repo.NewRuleRepo(tx)
	ctx := context.Background()

	_, err := r.Upsert(ctx, muniID, "nord", "garbage", domain.RecurrenceRule{
		DayOfWeek: 1, Frequency: domain.FrequencyWeekly,
	})
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, muniID, "nord", "garbage"))

	_, err = r.Get(ctx, muniID, "nord", "garbage")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, r.Delete(ctx, muniID, "nord", "garbage"), domain.ErrNotFound)
}

// Deleting a collection type must cascade-remove it from every zone's
// schedule: no rule may ever reference a nonexistent type.
func TestRuleRepo_CascadeOnTypeDelete(t *testing.T) {
	tx := newTestTx(t)
	muniID := seedSchedule(t, tx)
	rules := repo.NewRuleRepo(tx)
	ctx := context.Background()

	_, err := rules.Upsert(ctx, muniID, "nord", "garbage", domain.RecurrenceRule{
		DayOfWeek: 1, Frequency: domain.FrequencyWeekly,
	})
	require.NoError(t, err)

	require.NoError(t, repo.NewCollectionTypeRepo(tx).Delete(ctx, muniID, "garbage"))

	_, err = rules.Get(ctx, muniID, "nord", "garbage")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Deleting a zone removes all of its rules.
func TestRuleRepo_CascadeOnZoneDelete(t *testing.T) {
	tx := newTestTx(t)
	muniID := seedSchedule(t, tx)
	rules := repo.NewRuleRepo(tx)
	ctx := context.Background()

	_, err := rules.Upsert(ctx, muniID, "nord", "garbage", domain.RecurrenceRule{
		DayOfWeek: 1, Frequency: domain.FrequencyWeekly,
	})
	require.NoError(t, err)

	require.NoError(t, repo.NewZoneRepo(tx).Delete(ctx, muniID, "nord"))

	got, err := rules.ListByMunicipality(ctx, muniID)
	require.NoError(t, err)
	assert.Empty(t, got)
}
