package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/shift-engine/schedule"
)

// januaryFixture mixes work shifts, a same-day double shift, a holiday, and
// an out-of-month entry.
func januaryFixture() []schedule.ScheduleItem {
	return []schedule.ScheduleItem{
		{ID: "a", Date: "2026-01-05", StartTime: "09:00", EndTime: "18:00",
			ScheduleType: schedule.ScheduleWork, SalaryType: schedule.SalaryHourly, HourlyWage: 10000},
		{ID: "b", Date: "2026-01-06", StartTime: "09:00", EndTime: "13:00",
			ScheduleType: schedule.ScheduleWork, SalaryType: schedule.SalaryHourly, HourlyWage: 10000},
		{ID: "c", Date: "2026-01-06", StartTime: "14:00", EndTime: "18:00",
			ScheduleType: schedule.ScheduleWork, SalaryType: schedule.SalaryHourly, HourlyWage: 10000},
		{ID: "d", Date: "2026-01-07", ScheduleType: schedule.ScheduleHoliday},
		{ID: "e", Date: "2026-02-05", StartTime: "09:00", EndTime: "18:00",
			ScheduleType: schedule.ScheduleWork, SalaryType: schedule.SalaryHourly, HourlyWage: 10000},
	}
}

func TestSummarizeMonth(t *testing.T) {
	got := schedule.SummarizeMonth(januaryFixture(), 2026, time.January)

	// 9 + 4 + 4 hours; the holiday and the February shift are excluded.
	assert.Equal(t, 17.0, got.TotalHours)
	// Jan 5 and Jan 6: the double shift on the 6th is one work day.
	assert.Equal(t, 2, got.WorkDays)
	// 170,000 won; the holiday contributes 0.
	assert.Equal(t, int64(170000), got.EstimatedSalary)
}

func TestEstimatedSalaryForMonth_SingleShift(t *testing.T) {
	items := []schedule.ScheduleItem{
		{ID: "a", Date: "2026-01-05", StartTime: "09:00", EndTime: "18:00",
			ScheduleType: schedule.ScheduleWork, SalaryType: schedule.SalaryHourly, HourlyWage: 10000},
	}

	assert.Equal(t, int64(90000), schedule.EstimatedSalaryForMonth(items, 2026, time.January))
}

func TestSummarizeMonth_EmptyCollection(t *testing.T) {
	got := schedule.SummarizeMonth(nil, 2026, time.January)

	assert.Zero(t, got.TotalHours)
	assert.Zero(t, got.WorkDays)
	assert.Zero(t, got.EstimatedSalary)
}

func TestSchedulesForDate_SortedByStartTime(t *testing.T) {
	items := januaryFixture()

	day := schedule.SchedulesForDate(items, "2026-01-06")

	require.Len(t, day, 2)
	assert.Equal(t, schedule.ScheduleID("b"), day[0].ID)
	assert.Equal(t, schedule.ScheduleID("c"), day[1].ID)
}

func TestSchedulesForMonth_SortedByDateThenTime(t *testing.T) {
	items := januaryFixture()

	month := schedule.SchedulesForMonth(items, 2026, time.January)

	require.Len(t, month, 4)
	prev := month[0]
	for _, s := range month[1:] {
		assert.True(t, prev.Date < s.Date || (prev.Date == s.Date && prev.StartTime <= s.StartTime),
			"out of order: %s/%s before %s/%s", prev.Date, prev.StartTime, s.Date, s.StartTime)
		prev = s
	}
}

func TestTodaySchedules_ExcludesHolidays(t *testing.T) {
	today, ok := schedule.ParseDate("2026-01-07")
	require.True(t, ok)

	assert.Empty(t, schedule.TodaySchedules(januaryFixture(), today))

	today, ok = schedule.ParseDate("2026-01-06")
	require.True(t, ok)
	assert.Len(t, schedule.TodaySchedules(januaryFixture(), today), 2)
}
