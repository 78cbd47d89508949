/*
settlement.go - Completed-works view and income rollups

PURPOSE:
  Derives everything the income dashboard shows from three collections:
  jobs_list, applications, settlements. Only works with status=done AND an
  approved application are eligible for settlement. The settlement overlay
  takes precedence over a work's own settlement fields when both exist.

PRECEDENCE (per field, first non-empty/non-zero wins):
  status: overlay.Status -> work.SettlementStatus -> pending
  pay:    overlay.ActualPay -> work.ActualPay -> work.ExpectedPay

All functions are pure reductions; callers persist the returned collections
wholesale.
*/
package income

import (
	"time"

	"github.com/warp/shift-engine/schedule"
)

// =============================================================================
// APPLICATION SYNC
// =============================================================================

// SyncApplications overlays application state onto the job catalogue. Jobs
// without an application entry pass through unchanged.
func SyncApplications(jobs []Work, apps Applications) []Work {
	out := make([]Work, len(jobs))
	for i, job := range jobs {
		if app, ok := apps[job.ID]; ok {
			job.ApplicationStatus = app.Status
			job.AppliedDate = app.AppliedDate
		}
		out[i] = job
	}
	return out
}

// Apply records a pending application for a job, dated today. Re-applying
// overwrites the previous entry (last write wins).
func Apply(apps Applications, jobID string, today time.Time) Applications {
	if apps == nil {
		apps = make(Applications)
	}
	apps[jobID] = Application{
		Status:      ApplicationPending,
		AppliedDate: schedule.FormatDate(today),
	}
	return apps
}

// UpdateApplicationStatus sets the employer decision, preserving the applied
// date when one exists.
func UpdateApplicationStatus(apps Applications, jobID string, status ApplicationStatus) Applications {
	if apps == nil {
		apps = make(Applications)
	}
	app := apps[jobID]
	app.Status = status
	apps[jobID] = app
	return apps
}

// =============================================================================
// COMPLETED WORKS
// =============================================================================

// CompletedWorks filters to settled-eligible works (done + approved) and
// resolves the settlement overlay into each work's own fields, so callers
// see one consistent view.
func CompletedWorks(jobs []Work, settlements Settlements) []Work {
	var out []Work
	for _, job := range jobs {
		if job.Status != WorkDone || job.ApplicationStatus != ApplicationApproved {
			continue
		}
		job.SettlementStatus = resolvedStatus(job, settlements)
		job.ActualPay = resolvedPay(job, settlements)
		out = append(out, job)
	}
	return out
}

func resolvedStatus(w Work, settlements Settlements) SettlementStatus {
	if s, ok := settlements[w.ID]; ok && s.Status != "" {
		return s.Status
	}
	if w.SettlementStatus != "" {
		return w.SettlementStatus
	}
	return SettlementPending
}

func resolvedPay(w Work, settlements Settlements) int64 {
	if s, ok := settlements[w.ID]; ok && s.ActualPay > 0 {
		return s.ActualPay
	}
	if w.ActualPay > 0 {
		return w.ActualPay
	}
	return w.ExpectedPay
}

// UpdateSettlement records a settlement decision for a work. A zero actualPay
// keeps any previously recorded amount (the user confirmed status without
// re-entering the figure).
func UpdateSettlement(settlements Settlements, workID string, status SettlementStatus, actualPay int64) Settlements {
	if settlements == nil {
		settlements = make(Settlements)
	}
	s := settlements[workID]
	s.Status = status
	if actualPay > 0 {
		s.ActualPay = actualPay
	}
	settlements[workID] = s
	return settlements
}

// =============================================================================
// MONTHLY ROLLUPS
// =============================================================================

// MonthlyIncome sums resolved pay over completed works in the month.
func MonthlyIncome(completed []Work, settlements Settlements, year int, month time.Month) int64 {
	var total int64
	for _, w := range completed {
		if !schedule.InMonth(w.Date, year, month) {
			continue
		}
		total += resolvedPay(w, settlements)
	}
	return total
}

// ExpectedIncome sums expected pay (settled or not) over completed works in
// the month.
func ExpectedIncome(completed []Work, year int, month time.Month) int64 {
	var total int64
	for _, w := range completed {
		if !schedule.InMonth(w.Date, year, month) {
			continue
		}
		total += w.ExpectedPay
	}
	return total
}

// StoreIncome is one per-store total for the income chart.
type StoreIncome struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// IncomeByStore groups the month's completed works by store name. Stores
// appear in first-seen order so the chart is stable across recomputes.
func IncomeByStore(completed []Work, settlements Settlements, year int, month time.Month) []StoreIncome {
	index := make(map[string]int)
	var out []StoreIncome
	for _, w := range completed {
		if !schedule.InMonth(w.Date, year, month) {
			continue
		}
		pay := resolvedPay(w, settlements)
		if i, ok := index[w.Name]; ok {
			out[i].Value += pay
			continue
		}
		index[w.Name] = len(out)
		out = append(out, StoreIncome{Name: w.Name, Value: pay})
	}
	return out
}

// MonthOverMonthGrowth is (current-previous)/previous x 100, defined as 0
// when the previous month had no income. Never NaN or Inf.
func MonthOverMonthGrowth(current, previous int64) float64 {
	if previous == 0 {
		return 0
	}
	return float64(current-previous) / float64(previous) * 100
}
