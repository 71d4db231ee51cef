package pricing

import "time"

// BusinessDaysBetween counts business days in the inclusive range [start, end].
// Saturdays, Sundays and listed holidays are skipped. If start itself falls
// on a non-business day, counting begins at the next business day. Returns 0
// when the adjusted start is after end.
//
// Used to gate cancellation and reschedule eligibility: callers pass the day
// after the reference date as start and the reservation date as end.
func (c *Calendar) BusinessDaysBetween(start, end time.Time) int {
	day := truncateToDay(start)
	last := truncateToDay(end)

	count := 0
	for !day.After(last) {
		if c.IsBusinessDay(day) {
			count++
		}
		day = day.AddDate(0, 0, 1)
	}

	return count
}
