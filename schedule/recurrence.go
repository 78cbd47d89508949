/*
recurrence.go - Repeat-rule expansion

PURPOSE:
  Turns one authored shift with a repeat rule into a bounded series of
  concrete calendar instances. Expansion runs exactly once, at creation
  time; instances are never re-expanded on read, so later horizon or clock
  changes do not retroactively add or remove siblings.

ALGORITHM:
  Starting from the authored date, step forward by a fixed increment
  (1 day / 7 days / 14 days) and materialize a copy of the authored item
  with a fresh ID and the stepped date, until the stepped date passes the
  3-calendar-month horizon. The authored item itself is kept as-is and is
  not part of the returned series.

NOTE ON RepeatDays:
  Weekday selection is authoring metadata only. The stepping is strictly
  fixed-increment regardless of weekday, matching the reference behavior.
  "weekly" means "every 7 days from the anchor", not "every selected
  weekday".
*/
package schedule

import (
	"fmt"
)

// HorizonMonths is the fixed expansion window, in calendar months from the
// authored date.
const HorizonMonths = 3

// stepDays returns the fixed date increment for a repeat rule, or 0 when the
// rule does not repeat.
func stepDays(rt RepeatType) int {
	switch rt {
	case RepeatDaily:
		return 1
	case RepeatWeekly:
		return 7
	case RepeatBiweekly:
		return 14
	default:
		return 0
	}
}

// Expand materializes the recurrence series for an authored shift. The
// returned slice is ordered by date and excludes the origin itself; it is
// empty for non-repeating rules and for unparseable anchor dates.
//
// Instance IDs are minted as "{originID}-{steppedDateUnixMilli}" so they are
// distinct from the origin and from each other (one instance per date).
func Expand(origin ScheduleItem) []ScheduleItem {
	step := stepDays(origin.RepeatType)
	if step == 0 {
		return nil
	}
	anchor, ok := ParseDate(origin.Date)
	if !ok {
		return nil
	}

	horizon := anchor.AddDate(0, HorizonMonths, 0)

	var series []ScheduleItem
	for d := anchor.AddDate(0, 0, step); !d.After(horizon); d = d.AddDate(0, 0, step) {
		instance := origin.Clone()
		instance.ID = ScheduleID(fmt.Sprintf("%s-%d", origin.ID, d.UnixMilli()))
		instance.Date = FormatDate(d)
		series = append(series, instance)
	}
	return series
}
