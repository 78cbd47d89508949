/*
Package store defines the persistence contract for the shift engine.

PURPOSE:
  The engine computes over full in-memory collections; persistence is a
  passive key-value store holding one JSON blob per collection. Every read
  loads a whole collection, every write overwrites it wholesale - there is
  no incremental sync, no delta, no optimistic concurrency token (last
  write wins, matching the reference behavior).

COLLECTIONS (one key each):
  schedules     []schedule.ScheduleItem
  workplaces    []schedule.Workplace
  settlements   map[workID]income.Settlement
  jobs_list     []income.Work
  applications  map[workID]income.Application

IMPLEMENTATIONS:
  store.Memory      in-memory (tests, dev)
  store/sqlite      SQLite single-table blob store
  store/badgerkv    Badger embedded KV store

ERROR POLICY:
  Malformed persisted JSON is wrapped in ErrMalformed; the Repository treats
  it as "no data" and degrades to the empty collection, logging instead of
  failing (the engine never crashes the UI over bad data). Storage-level
  failures propagate normally.
*/
package store

import (
	"context"
	"errors"
)

// Collection keys. One JSON blob per key.
const (
	KeySchedules    = "schedules"
	KeyWorkplaces   = "workplaces"
	KeySettlements  = "settlements"
	KeyJobs         = "jobs_list"
	KeyApplications = "applications"
)

// ErrMalformed wraps JSON decode failures on persisted blobs. Callers
// detect it with errors.Is and fall back to the empty collection.
var ErrMalformed = errors.New("malformed persisted data")

// Store is the whole-blob key-value contract all backends implement.
type Store interface {
	// Get decodes the blob under key into dest. Returns (false, nil) when
	// the key is absent, and an error wrapping ErrMalformed when the blob
	// exists but does not decode.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Put encodes value as JSON and overwrites the blob under key.
	Put(ctx context.Context, key string, value any) error

	// Delete removes the blob under key. Absent keys are not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}
