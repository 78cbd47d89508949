/*
Package income provides the settlement and income aggregation layer.

PURPOSE:
  Combines the job catalogue, application state, and the settlement overlay
  into the "completed works" view, then derives monthly income rollups,
  per-store totals, and month-over-month growth for the income dashboard.

KEY CONCEPTS:
  - Work: A job posting / worked gig with expected pay and lifecycle status
  - Application: The worker's application state for a posting
  - Settlement: An overlay keyed by work ID that, once present, shadows the
    work's own settlement fields (last-write-wins, no merge)

Like package schedule, everything here is a pure reduction over in-memory
collections; persistence is a passive collaborator.
*/
package income

// =============================================================================
// ENUMS
// =============================================================================

// WorkStatus is the shift-day lifecycle of a gig.
type WorkStatus string

const (
	WorkUpcoming WorkStatus = "upcoming"
	WorkWorking  WorkStatus = "working"
	WorkDone     WorkStatus = "done"
)

// ApplicationStatus is the employer-side decision on an application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// SettlementStatus tracks whether a completed gig has been paid out.
type SettlementStatus string

const (
	SettlementPending   SettlementStatus = "pending"
	SettlementCompleted SettlementStatus = "completed"
)

// =============================================================================
// WORK - Job posting / worked gig
// =============================================================================

// Work is one job posting and, once applied/worked, its outcome. Persisted
// as a JSON array under the "jobs_list" key.
type Work struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"` // store name; grouping key for per-store totals
	Address     string     `json:"address"`
	Time        string     `json:"time"` // display window, e.g. "10:00~13:30"
	Duration    float64    `json:"duration"`
	Pay         int64      `json:"pay"` // hourly rate
	ExpectedPay int64      `json:"expectedPay"`
	Status      WorkStatus `json:"status"`
	Date        string     `json:"date"` // YYYY-MM-DD
	Memo        string     `json:"memo,omitempty"`
	Lat         float64    `json:"lat,omitempty"`
	Lng         float64    `json:"lng,omitempty"`

	// Overlaid from the applications collection at load time.
	ApplicationStatus ApplicationStatus `json:"applicationStatus,omitempty"`
	AppliedDate       string            `json:"appliedDate,omitempty"`

	// The work's own settlement fields. A Settlement overlay entry, once
	// present, shadows these for display and aggregation.
	SettlementStatus SettlementStatus `json:"settlementStatus,omitempty"`
	ActualPay        int64            `json:"actualPay,omitempty"`
}

// =============================================================================
// APPLICATION / SETTLEMENT OVERLAYS
// =============================================================================

// Application is the worker's application record, keyed by work ID in the
// persisted "applications" map.
type Application struct {
	Status      ApplicationStatus `json:"status"`
	AppliedDate string            `json:"appliedDate"`
}

type Applications map[string]Application

// Settlement is the settlement overlay record, keyed by work ID in the
// persisted "settlements" map. Created the first time a user sets a status
// on a completed work; last write wins.
type Settlement struct {
	Status    SettlementStatus `json:"status"`
	ActualPay int64            `json:"actualPay,omitempty"`
}

type Settlements map[string]Settlement

// =============================================================================
// SEED DATA
// =============================================================================

// SeedJobs is the initial job catalogue used when the jobs_list collection is
// empty on first load.
func SeedJobs() []Work {
	return []Work{
		{
			ID: "101", Name: "GS25 영등포점", Address: "서울시 영등포구",
			Time: "10:00~13:30", Duration: 3.5, Pay: 11500, ExpectedPay: 40250,
			Status: WorkUpcoming, Date: "2026-01-15", Lat: 37.5172, Lng: 126.9178,
		},
		{
			ID: "102", Name: "컴포즈커피 신길점", Address: "서울시 영등포구",
			Time: "17:00~22:00", Duration: 5, Pay: 11000, ExpectedPay: 55000,
			Status: WorkUpcoming, Date: "2026-01-16", Lat: 37.5055, Lng: 126.9110,
		},
		{
			ID: "103", Name: "맥도날드 여의도점", Address: "서울시 영등포구",
			Time: "14:00~18:00", Duration: 4, Pay: 12000, ExpectedPay: 48000,
			Status: WorkUpcoming, Date: "2026-01-17", Lat: 37.5219, Lng: 126.9243,
		},
		{
			ID: "104", Name: "스타벅스 당산점", Address: "서울시 영등포구",
			Time: "09:00~13:00", Duration: 4, Pay: 11500, ExpectedPay: 46000,
			Status: WorkUpcoming, Date: "2026-01-18", Lat: 37.5345, Lng: 126.9021,
		},
	}
}
