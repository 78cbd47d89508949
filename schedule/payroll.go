/*
payroll.go - Per-shift estimated pay

PURPOSE:
  Computes the estimated earnings of a single shift under the four salary
  modes. This is the one authoritative pay computation; monthly rollups
  (aggregate.go) and the API all go through EstimatedPay.

RULES:
  holiday                      -> 0, regardless of wage fields
  daily with DailyWage set     -> DailyWage (duration ignored entirely)
  monthly / per_task with
    DailyWage set              -> DailyWage as the flat amount (duration
                                  ignored; these modes have no distinct rule
                                  in the reference data, so they share the
                                  flat-amount branch rather than silently
                                  falling through to hourly)
  otherwise                    -> round(HourlyWage x paid hours), where paid
                                  hours already has BreakMinutes deducted

  Amounts are integer won; rounding is to the nearest integer with no
  currency-minor-unit handling.
*/
package schedule

import (
	"github.com/shopspring/decimal"
)

var sixty = decimal.NewFromInt(minutesPerHour)

// EstimatedPay returns the estimated earnings for one shift in won.
// Total function: malformed times and zero wages yield 0, never an error.
func EstimatedPay(s ScheduleItem) int64 {
	if s.IsHoliday() {
		return 0
	}

	switch s.SalaryType {
	case SalaryDaily, SalaryMonthly, SalaryPerTask:
		if s.DailyWage > 0 {
			return s.DailyWage
		}
		// Missing flat amount: fall through to the hourly computation.
	}

	minutes := PaidMinutes(s.StartTime, s.EndTime, s.BreakMinutes)
	if minutes == 0 || s.HourlyWage <= 0 {
		return 0
	}

	hours := decimal.NewFromInt(int64(minutes)).Div(sixty)
	return decimal.NewFromInt(s.HourlyWage).Mul(hours).Round(0).IntPart()
}
