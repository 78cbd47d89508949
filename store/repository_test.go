package store_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/shift-engine/income"
	"github.com/warp/shift-engine/schedule"
	"github.com/warp/shift-engine/store"
)

func newRepo() (*store.Repository, *store.Memory) {
	kv := store.NewMemory()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return store.NewRepository(kv, logger), kv
}

// =============================================================================
// MEMORY STORE
// =============================================================================

func TestMemory_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()

	items := []schedule.ScheduleItem{{ID: "1", Date: "2026-01-05", StartTime: "09:00", EndTime: "18:00"}}
	require.NoError(t, kv.Put(ctx, store.KeySchedules, items))

	var got []schedule.ScheduleItem
	found, err := kv.Get(ctx, store.KeySchedules, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, items, got)
}

func TestMemory_AbsentKey(t *testing.T) {
	var got []schedule.ScheduleItem
	found, err := store.NewMemory().Get(context.Background(), "nope", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemory_MalformedBlob(t *testing.T) {
	kv := store.NewMemory()
	kv.PutRaw(store.KeySchedules, []byte(`{not json`))

	var got []schedule.ScheduleItem
	_, err := kv.Get(context.Background(), store.KeySchedules, &got)
	assert.ErrorIs(t, err, store.ErrMalformed)
}

func TestMemory_Delete(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	require.NoError(t, kv.Put(ctx, "k", "v"))
	require.NoError(t, kv.Delete(ctx, "k"))
	require.NoError(t, kv.Delete(ctx, "k"), "deleting an absent key is not an error")

	var got string
	found, err := kv.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

// =============================================================================
// REPOSITORY POLICIES
// =============================================================================

func TestRepository_MalformedCollectionDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	repo, kv := newRepo()
	kv.PutRaw(store.KeySchedules, []byte(`[{"id": 12`))

	items, err := repo.LoadSchedules(ctx)

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRepository_SchedulesRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo()

	first, err := repo.LoadSchedules(ctx)
	require.NoError(t, err)
	assert.Empty(t, first, "schedules are not seeded")

	items := []schedule.ScheduleItem{{ID: "1", WorkplaceID: "1", Date: "2026-01-05",
		StartTime: "09:00", EndTime: "18:00"}}
	require.NoError(t, repo.SaveSchedules(ctx, items))

	got, err := repo.LoadSchedules(ctx)
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestRepository_WorkplacesSeededOnFirstLoad(t *testing.T) {
	ctx := context.Background()
	repo, kv := newRepo()

	workplaces, err := repo.LoadWorkplaces(ctx)
	require.NoError(t, err)
	assert.Equal(t, schedule.DefaultWorkplaces(), workplaces)

	// The seeds are persisted, not just returned.
	var persisted []schedule.Workplace
	found, err := kv.Get(ctx, store.KeyWorkplaces, &persisted)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, schedule.DefaultWorkplaces(), persisted)
}

func TestRepository_JobsSeededAndSyncedOnLoad(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo()

	jobs, err := repo.LoadJobs(ctx)
	require.NoError(t, err)
	assert.Equal(t, income.SeedJobs(), jobs)

	// Recording an application shows up on the next jobs load.
	apps, err := repo.LoadApplications(ctx)
	require.NoError(t, err)
	apps = income.UpdateApplicationStatus(apps, "101", income.ApplicationApproved)
	require.NoError(t, repo.SaveApplications(ctx, apps))

	jobs, err = repo.LoadJobs(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, jobs)
	assert.Equal(t, income.ApplicationApproved, jobs[0].ApplicationStatus)
}

func TestRepository_SettlementsRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo()

	settlements, err := repo.LoadSettlements(ctx)
	require.NoError(t, err)
	assert.Empty(t, settlements)

	settlements = income.UpdateSettlement(settlements, "101", income.SettlementCompleted, 41000)
	require.NoError(t, repo.SaveSettlements(ctx, settlements))

	got, err := repo.LoadSettlements(ctx)
	require.NoError(t, err)
	assert.Equal(t, settlements, got)
}
