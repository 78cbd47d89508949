/*
freeslot.go - Weekly free-slot recommendation

PURPOSE:
  Scans the coming week for the best unscheduled window inside business
  hours, for the recommendation UI. Returns a display string, not a
  structured slot: the presentation layer renders it verbatim.

ALGORITHM:
  For each of the next 7 calendar days (today + 0..6), within the fixed
  [10:00, 22:00) business window:
    1. Sort that day's shifts by start time.
    2. Walk them tracking lastEnd (initially 10:00); the gap before each
       shift competes for that day's best slot, then lastEnd advances to the
       shift's end.
    3. The trailing gap up to 22:00 competes the same way.
    4. The first day (starting from today) whose best gap is >= 120 minutes
       wins - the scan short-circuits rather than searching the whole week
       for a global maximum.

EDGE CASES:
  Overlapping shifts are not detected; a negative gap simply never beats the
  zero-initialized maximum. An empty collection returns the "entirely free"
  message immediately; a week with no qualifying gap returns the "fully
  booked" message.
*/
package schedule

import (
	"fmt"
	"time"
)

const (
	businessDayStart = 10 * minutesPerHour // 10:00
	businessDayEnd   = 22 * minutesPerHour // 22:00
	minFreeSlotGap   = 120                 // minutes
)

// Free-slot display strings, rendered verbatim by the presentation layer.
const (
	MsgWeekWideOpen    = "이번 주 전체가 비어있어요!"
	MsgWeekFullyBooked = "이번 주는 일정이 꽉 찼네요!"
)

// weekday labels indexed by time.Weekday (Sunday = 0).
var weekdayNames = [7]string{"일", "월", "화", "수", "목", "금", "토"}

// FindFreeSlot recommends the best unscheduled window in the week starting
// at today, formatted as "<weekday>요일 <H>:00 - <HH:mm>".
func FindFreeSlot(items []ScheduleItem, today time.Time) string {
	if len(items) == 0 {
		return MsgWeekWideOpen
	}

	for i := 0; i < 7; i++ {
		target := today.AddDate(0, 0, i)
		dayName := weekdayNames[target.Weekday()]
		daySchedules := SchedulesForDate(items, FormatDate(target))

		lastEnd := businessDayStart
		maxGap := 0
		bestSlot := ""

		for _, s := range daySchedules {
			start, ok := MinuteOfDay(s.StartTime)
			if !ok {
				continue
			}
			if gap := start - lastEnd; gap > maxGap {
				maxGap = gap
				bestSlot = fmt.Sprintf("%s요일 %d:00 - %s", dayName, lastEnd/minutesPerHour, s.StartTime)
			}
			if end, ok := MinuteOfDay(s.EndTime); ok {
				lastEnd = end
			}
		}

		if gap := businessDayEnd - lastEnd; gap > maxGap {
			maxGap = gap
			bestSlot = fmt.Sprintf("%s요일 %d:00 - 22:00", dayName, lastEnd/minutesPerHour)
		}

		if maxGap >= minFreeSlotGap {
			return bestSlot
		}
	}

	return MsgWeekFullyBooked
}
