package models

import "time"

// Occurrence is the per-call derived schedule of one timed event.
// ScheduledToday is today's publish instant in the reference timezone;
// Next equals ScheduledToday while it is still ahead, otherwise the
// same instant one calendar day later.
type Occurrence struct {
	Event          Event
	Time           CanonicalTime
	ScheduledToday time.Time
	Next           time.Time
}
