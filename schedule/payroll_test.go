package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warp/shift-engine/schedule"
)

func hourlyShift(start, end string, wage int64) schedule.ScheduleItem {
	return schedule.ScheduleItem{
		ID:           "s-1",
		Date:         "2026-01-05",
		StartTime:    start,
		EndTime:      end,
		ScheduleType: schedule.ScheduleWork,
		SalaryType:   schedule.SalaryHourly,
		HourlyWage:   wage,
		Status:       schedule.StatusUpcoming,
	}
}

func TestEstimatedPay_Hourly(t *testing.T) {
	// 9 hours at 10,000 won.
	assert.Equal(t, int64(90000), schedule.EstimatedPay(hourlyShift("09:00", "18:00", 10000)))
}

func TestEstimatedPay_Hourly_BreakDeducted(t *testing.T) {
	s := hourlyShift("09:00", "18:00", 10000)
	s.BreakMinutes = 60

	assert.Equal(t, int64(80000), schedule.EstimatedPay(s))
}

func TestEstimatedPay_Hourly_RoundsFractionalMinutes(t *testing.T) {
	// 50 minutes at 10,000/h = 8333.33..., rounded to the nearest won.
	assert.Equal(t, int64(8333), schedule.EstimatedPay(hourlyShift("10:00", "10:50", 10000)))
}

func TestEstimatedPay_Holiday_AlwaysZero(t *testing.T) {
	s := hourlyShift("09:00", "18:00", 10000)
	s.ScheduleType = schedule.ScheduleHoliday
	s.DailyWage = 150000

	assert.Zero(t, schedule.EstimatedPay(s))
}

func TestEstimatedPay_FlatAmountModes(t *testing.T) {
	for _, mode := range []schedule.SalaryType{
		schedule.SalaryDaily,
		schedule.SalaryMonthly,
		schedule.SalaryPerTask,
	} {
		s := hourlyShift("09:00", "18:00", 10000)
		s.SalaryType = mode
		s.DailyWage = 120000

		// The flat amount wins over any duration-based figure.
		assert.Equal(t, int64(120000), schedule.EstimatedPay(s), "mode %s", mode)
	}
}

func TestEstimatedPay_FlatModeWithoutAmount_FallsBackToHourly(t *testing.T) {
	s := hourlyShift("09:00", "18:00", 10000)
	s.SalaryType = schedule.SalaryDaily
	s.DailyWage = 0

	assert.Equal(t, int64(90000), schedule.EstimatedPay(s))
}

func TestEstimatedPay_ReversedOrZeroWage_Zero(t *testing.T) {
	assert.Zero(t, schedule.EstimatedPay(hourlyShift("18:00", "09:00", 10000)))
	assert.Zero(t, schedule.EstimatedPay(hourlyShift("09:00", "18:00", 0)))
}
