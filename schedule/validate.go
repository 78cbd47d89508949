/*
validate.go - Authoring-boundary validation

PURPOSE:
  Rejects malformed drafts before they reach the expander or calculator.
  The engine's own functions stay total (clamping, fallbacks); this is the
  single place where bad input becomes an error the caller must handle.

CHECKS:
  - struct tags on ScheduleItem (required fields, formats, enums)
  - start < end for work-type shifts (holidays carry times for display only
    and report zero duration regardless, so the order is not enforced there)
*/
package schedule

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateDraft checks an authored shift before it is expanded or persisted.
// Returns validator.ValidationErrors for field-level failures, or
// ErrReversedInterval for a work shift whose interval is empty or reversed.
func ValidateDraft(s ScheduleItem) error {
	if err := validate.Struct(s); err != nil {
		return err
	}
	if !s.IsHoliday() {
		start, _ := MinuteOfDay(s.StartTime)
		end, _ := MinuteOfDay(s.EndTime)
		if start >= end {
			return ErrReversedInterval
		}
	}
	return nil
}
