/*
repository.go - Typed facade over the blob store

PURPOSE:
  Gives the API layer Load/Save pairs per collection and centralizes two
  policies the reference app applied at load time:
    1. Malformed JSON degrades to the empty collection (logged, not fatal).
    2. First-run seeding: an empty workplaces/jobs_list collection is
       populated with the seed data and written back immediately.
    3. Application state is overlaid onto the job catalogue on every jobs
       load, and the synced catalogue is persisted (the reference app kept
       both collections and re-synced on read).
*/
package store

import (
	"context"
	"errors"
	"log/slog"

	"github.com/warp/shift-engine/income"
	"github.com/warp/shift-engine/schedule"
)

// Repository wraps a Store with collection-typed access.
type Repository struct {
	kv  Store
	log *slog.Logger
}

func NewRepository(kv Store, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{kv: kv, log: logger}
}

// load decodes one collection, applying the malformed-data fallback.
// Returns found=false both for absent keys and for blobs that no longer
// decode.
func (r *Repository) load(ctx context.Context, key string, dest any) (bool, error) {
	found, err := r.kv.Get(ctx, key, dest)
	if err != nil {
		if errors.Is(err, ErrMalformed) {
			r.log.Warn("discarding malformed collection", "key", key, "error", err)
			return false, nil
		}
		return false, err
	}
	return found, nil
}

// =============================================================================
// SCHEDULES
// =============================================================================

func (r *Repository) LoadSchedules(ctx context.Context) ([]schedule.ScheduleItem, error) {
	var items []schedule.ScheduleItem
	if _, err := r.load(ctx, KeySchedules, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository) SaveSchedules(ctx context.Context, items []schedule.ScheduleItem) error {
	if items == nil {
		items = []schedule.ScheduleItem{}
	}
	return r.kv.Put(ctx, KeySchedules, items)
}

// =============================================================================
// WORKPLACES
// =============================================================================

// LoadWorkplaces returns the workplace collection, seeding and persisting
// the defaults when none exists yet.
func (r *Repository) LoadWorkplaces(ctx context.Context) ([]schedule.Workplace, error) {
	var workplaces []schedule.Workplace
	found, err := r.load(ctx, KeyWorkplaces, &workplaces)
	if err != nil {
		return nil, err
	}
	if !found || len(workplaces) == 0 {
		workplaces = schedule.DefaultWorkplaces()
		if err := r.SaveWorkplaces(ctx, workplaces); err != nil {
			return nil, err
		}
	}
	return workplaces, nil
}

func (r *Repository) SaveWorkplaces(ctx context.Context, workplaces []schedule.Workplace) error {
	return r.kv.Put(ctx, KeyWorkplaces, workplaces)
}

// =============================================================================
// JOBS & APPLICATIONS
// =============================================================================

// LoadJobs returns the job catalogue with application state already overlaid,
// seeding the catalogue on first load and persisting the synced view.
func (r *Repository) LoadJobs(ctx context.Context) ([]income.Work, error) {
	var jobs []income.Work
	found, err := r.load(ctx, KeyJobs, &jobs)
	if err != nil {
		return nil, err
	}
	if !found || len(jobs) == 0 {
		jobs = income.SeedJobs()
		if err := r.SaveJobs(ctx, jobs); err != nil {
			return nil, err
		}
	}

	apps, err := r.LoadApplications(ctx)
	if err != nil {
		return nil, err
	}
	if len(apps) > 0 {
		jobs = income.SyncApplications(jobs, apps)
		if err := r.SaveJobs(ctx, jobs); err != nil {
			return nil, err
		}
	}
	return jobs, nil
}

func (r *Repository) SaveJobs(ctx context.Context, jobs []income.Work) error {
	if jobs == nil {
		jobs = []income.Work{}
	}
	return r.kv.Put(ctx, KeyJobs, jobs)
}

func (r *Repository) LoadApplications(ctx context.Context) (income.Applications, error) {
	apps := make(income.Applications)
	if _, err := r.load(ctx, KeyApplications, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *Repository) SaveApplications(ctx context.Context, apps income.Applications) error {
	if apps == nil {
		apps = income.Applications{}
	}
	return r.kv.Put(ctx, KeyApplications, apps)
}

// =============================================================================
// SETTLEMENTS
// =============================================================================

func (r *Repository) LoadSettlements(ctx context.Context) (income.Settlements, error) {
	settlements := make(income.Settlements)
	if _, err := r.load(ctx, KeySettlements, &settlements); err != nil {
		return nil, err
	}
	return settlements, nil
}

func (r *Repository) SaveSettlements(ctx context.Context, settlements income.Settlements) error {
	if settlements == nil {
		settlements = income.Settlements{}
	}
	return r.kv.Put(ctx, KeySettlements, settlements)
}
