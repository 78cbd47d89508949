/*
Package schedule provides the core shift scheduling and payroll engine.

PURPOSE:
  This package contains the data model and algorithms for tracking part-time
  shifts across multiple workplaces: wall-clock time arithmetic, recurrence
  expansion, per-shift and per-month payroll estimation, and a free-slot
  recommendation heuristic.

KEY CONCEPTS IN THIS FILE (types.go):
  - Workplace: A place of work with a display color
  - ScheduleItem: One dated work or holiday entry with start/end time and
    wage terms; both authored shifts and their expanded recurrence siblings
  - WorkplaceIndex: Lookup with a required fallback-name contract for
    dangling workplace references

DESIGN PRINCIPLES:
  1. Purity: Every function here is a synchronous computation over in-memory
     collections. Persistence is injected elsewhere (see package store).
  2. Total functions: Computational edge cases (reversed interval, zero wage,
     missing workplace) yield zeroed/neutral results, never errors. Input is
     rejected at the authoring boundary instead (see validate.go).
  3. Wall-clock only: Dates are "YYYY-MM-DD" strings, times are "HH:mm"
     strings, same-day only. No timezone handling.

SEE ALSO:
  - clock.go:      "HH:mm" parsing and duration arithmetic
  - recurrence.go: Repeat-rule expansion over the 3-month horizon
  - payroll.go:    Estimated pay per shift
  - aggregate.go:  Monthly rollups
  - freeslot.go:   Weekly free-slot recommendation
*/
package schedule

// =============================================================================
// IDENTIFIERS
// =============================================================================

type WorkplaceID string
type ScheduleID string

// =============================================================================
// WORKPLACE
// =============================================================================

// Workplace is a place of work. Identity is immutable; Color is a display
// hint, not a constraint. Workplaces are created on demand (including inline
// during shift authoring) and never structurally deleted.
type Workplace struct {
	ID    WorkplaceID `json:"id"`
	Name  string      `json:"name"`
	Color string      `json:"color"`
}

// DefaultWorkplaces is the seed set used when the workplaces collection is
// empty on first load.
func DefaultWorkplaces() []Workplace {
	return []Workplace{
		{ID: "1", Name: "카페 A", Color: "#FF6B6B"},
		{ID: "2", Name: "편의점 B", Color: "#4ECDC4"},
		{ID: "3", Name: "음식점 C", Color: "#FFE66D"},
	}
}

// =============================================================================
// ENUMS
// =============================================================================

type ScheduleType string

const (
	ScheduleWork    ScheduleType = "work"
	ScheduleHoliday ScheduleType = "holiday"
)

type SalaryType string

const (
	SalaryHourly  SalaryType = "hourly"
	SalaryDaily   SalaryType = "daily"
	SalaryMonthly SalaryType = "monthly"
	SalaryPerTask SalaryType = "per_task"
)

type RepeatType string

const (
	RepeatNone     RepeatType = "none"
	RepeatDaily    RepeatType = "daily"
	RepeatWeekly   RepeatType = "weekly"
	RepeatBiweekly RepeatType = "biweekly"
)

// WorkStatus tracks clock-in/out progression for a shift on the day it runs.
type WorkStatus string

const (
	StatusUpcoming WorkStatus = "upcoming"
	StatusWorking  WorkStatus = "working"
	StatusDone     WorkStatus = "done"
)

// =============================================================================
// SCHEDULE ITEM
// =============================================================================

// ScheduleItem is a single authored shift or one of its expanded recurrence
// instances. Every expanded instance carries the same WorkplaceID, wage
// fields, and type as its origin, differing only in ID and Date.
//
// The json tags match the persisted collection format: one JSON array under
// the "schedules" key.
type ScheduleItem struct {
	ID          ScheduleID  `json:"id"`
	WorkplaceID WorkplaceID `json:"workplaceId" validate:"required"`

	// ScheduleName is an optional display override; lookups fall back to the
	// workplace name and then to a fixed label when the reference dangles.
	ScheduleName string `json:"scheduleName,omitempty"`

	Date      string `json:"date" validate:"required,datetime=2006-01-02"` // YYYY-MM-DD
	StartTime string `json:"startTime" validate:"required,datetime=15:04"` // HH:mm
	EndTime   string `json:"endTime" validate:"required,datetime=15:04"`   // HH:mm, same-day only

	ScheduleType ScheduleType `json:"scheduleType,omitempty" validate:"omitempty,oneof=work holiday"`
	SalaryType   SalaryType   `json:"salaryType,omitempty" validate:"omitempty,oneof=hourly daily monthly per_task"`

	HourlyWage   int64 `json:"hourlyWage,omitempty" validate:"gte=0"`
	DailyWage    int64 `json:"dailyWage,omitempty" validate:"gte=0"`
	BreakMinutes int   `json:"breakMinutes,omitempty" validate:"gte=0"`

	RepeatType RepeatType `json:"repeatType,omitempty" validate:"omitempty,oneof=none daily weekly biweekly"`
	// RepeatDays is authoring metadata (weekday indices 0=Sun..6=Sat). The
	// expander steps by a fixed increment and does not consult it.
	RepeatDays []int `json:"repeatDays,omitempty" validate:"omitempty,dive,gte=0,lte=6"`

	Memo         string     `json:"memo,omitempty"`
	Color        string     `json:"color,omitempty"` // per-instance override of workplace color
	Notification bool       `json:"notification,omitempty"`
	Status       WorkStatus `json:"status,omitempty" validate:"omitempty,oneof=upcoming working done"`
}

// IsHoliday reports whether this entry is a holiday. A holiday always has
// zero duration and zero pay regardless of its other fields.
func (s ScheduleItem) IsHoliday() bool {
	return s.ScheduleType == ScheduleHoliday
}

// Clone returns a deep copy (RepeatDays is the only reference field).
func (s ScheduleItem) Clone() ScheduleItem {
	out := s
	if s.RepeatDays != nil {
		out.RepeatDays = make([]int, len(s.RepeatDays))
		copy(out.RepeatDays, s.RepeatDays)
	}
	return out
}

// =============================================================================
// WORKPLACE LOOKUP - Weak references with fallback contract
// =============================================================================

const (
	// FallbackScheduleName labels a shift whose workplace reference dangles.
	FallbackScheduleName = "일정"
	// FallbackColor is the neutral display color for dangling references.
	FallbackColor = "#6B7280"
)

// WorkplaceIndex resolves weak WorkplaceID references. A missing entry is
// tolerated everywhere; callers get the fallback contract, never an error.
type WorkplaceIndex map[WorkplaceID]Workplace

func IndexWorkplaces(workplaces []Workplace) WorkplaceIndex {
	idx := make(WorkplaceIndex, len(workplaces))
	for _, wp := range workplaces {
		idx[wp.ID] = wp
	}
	return idx
}

func (idx WorkplaceIndex) Lookup(id WorkplaceID) (Workplace, bool) {
	wp, ok := idx[id]
	return wp, ok
}

// DisplayName resolves the label for a shift: instance override, then
// workplace name, then the fixed fallback.
func DisplayName(s ScheduleItem, idx WorkplaceIndex) string {
	if s.ScheduleName != "" {
		return s.ScheduleName
	}
	if wp, ok := idx.Lookup(s.WorkplaceID); ok && wp.Name != "" {
		return wp.Name
	}
	return FallbackScheduleName
}

// DisplayColor resolves the display color the same way.
func DisplayColor(s ScheduleItem, idx WorkplaceIndex) string {
	if s.Color != "" {
		return s.Color
	}
	if wp, ok := idx.Lookup(s.WorkplaceID); ok && wp.Color != "" {
		return wp.Color
	}
	return FallbackColor
}
