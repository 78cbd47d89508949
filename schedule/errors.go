package schedule

import "errors"

// Sentinel errors surfaced at the authoring boundary. The engine's
// computations themselves never return errors; bad intervals and dangling
// references degrade to zeroed/neutral results instead.
var (
	// ErrReversedInterval is returned when a work shift's start time is not
	// strictly before its end time.
	ErrReversedInterval = errors.New("start time must be before end time")

	// ErrScheduleNotFound is returned when an instance ID resolves to no
	// persisted shift.
	ErrScheduleNotFound = errors.New("schedule not found")
)
