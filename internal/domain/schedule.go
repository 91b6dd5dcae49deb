package domain

import "time"

// NextOccurrence returns the next instant strictly after now at which the
// wall clock in now's location reads c. If c has already passed today (or is
// exactly now), the result is tomorrow at c; otherwise today at c.
func NextOccurrence(now time.Time, c Clock) time.Time {
	target := time.Date(now.Year(), now.Month(), now.Day(), c.Hour, c.Minute, 0, 0, now.Location())
	if !target.After(now) {
		target = target.AddDate(0, 0, 1)
	}
	return target
}

// Tomorrow returns now shifted one calendar day forward in its location.
func Tomorrow(now time.Time) time.Time {
	return now.AddDate(0, 0, 1)
}
