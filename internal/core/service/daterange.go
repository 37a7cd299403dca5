package service

import "time"

const defaultWindowDays = 30

// resolveDateRange turns optional bounds into a concrete [start, end] window:
// end defaults to now, start defaults to 30 days before end. The pair is
// returned unchanged when both are supplied, even if start is after end; an
// inverted window simply matches no symptoms downstream.
func resolveDateRange(start, end *time.Time, now time.Time) (time.Time, time.Time) {
	e := now
	if end != nil {
		e = *end
	}
	s := e.AddDate(0, 0, -defaultWindowDays)
	if start != nil {
		s = *start
	}
	return s, e
}
