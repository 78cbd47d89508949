/*
aggregate.go - Monthly rollups over the flat shift collection

PURPOSE:
  Pure, order-independent reductions over the in-memory collection for a
  given (year, month). No incremental or cached state; everything is
  recomputed from the full collection on each call.
*/
package schedule

import (
	"sort"
	"time"
)

// MonthlySummary bundles the three per-month figures the presentation layer
// renders side by side.
type MonthlySummary struct {
	TotalHours      float64 `json:"totalHours"`
	WorkDays        int     `json:"workDays"`
	EstimatedSalary int64   `json:"estimatedSalary"`
}

// TotalHoursForMonth sums break-deducted hours over all non-holiday shifts
// whose date falls in the month.
func TotalHoursForMonth(items []ScheduleItem, year int, month time.Month) float64 {
	var hours float64
	for _, s := range items {
		if s.IsHoliday() || !InMonth(s.Date, year, month) {
			continue
		}
		hours += PaidHours(s.StartTime, s.EndTime, s.BreakMinutes)
	}
	return hours
}

// WorkDaysForMonth counts distinct dates (not instances) with at least one
// non-holiday shift in the month. Two shifts on the same date count as one
// work day.
func WorkDaysForMonth(items []ScheduleItem, year int, month time.Month) int {
	days := make(map[string]struct{})
	for _, s := range items {
		if s.IsHoliday() || !InMonth(s.Date, year, month) {
			continue
		}
		days[s.Date] = struct{}{}
	}
	return len(days)
}

// EstimatedSalaryForMonth sums EstimatedPay over all shifts in the month.
// Holiday entries contribute 0.
func EstimatedSalaryForMonth(items []ScheduleItem, year int, month time.Month) int64 {
	var total int64
	for _, s := range items {
		if !InMonth(s.Date, year, month) {
			continue
		}
		total += EstimatedPay(s)
	}
	return total
}

// SummarizeMonth computes all three monthly figures in one pass-equivalent
// call.
func SummarizeMonth(items []ScheduleItem, year int, month time.Month) MonthlySummary {
	return MonthlySummary{
		TotalHours:      TotalHoursForMonth(items, year, month),
		WorkDays:        WorkDaysForMonth(items, year, month),
		EstimatedSalary: EstimatedSalaryForMonth(items, year, month),
	}
}

// SchedulesForDate returns the shifts on one date, sorted by start time.
func SchedulesForDate(items []ScheduleItem, date string) []ScheduleItem {
	var day []ScheduleItem
	for _, s := range items {
		if s.Date == date {
			day = append(day, s)
		}
	}
	sort.SliceStable(day, func(i, j int) bool {
		return day[i].StartTime < day[j].StartTime
	})
	return day
}

// SchedulesForMonth returns the shifts in one calendar month, sorted by date
// then start time.
func SchedulesForMonth(items []ScheduleItem, year int, month time.Month) []ScheduleItem {
	var out []ScheduleItem
	for _, s := range items {
		if InMonth(s.Date, year, month) {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

// TodaySchedules returns today's non-holiday shifts, sorted by start time.
func TodaySchedules(items []ScheduleItem, today time.Time) []ScheduleItem {
	date := FormatDate(today)
	var out []ScheduleItem
	for _, s := range SchedulesForDate(items, date) {
		if !s.IsHoliday() {
			out = append(out, s)
		}
	}
	return out
}
