package schedule

import (
	"time"

	"drd/internal/models"
)

// OccurrenceCalculator derives per-event occurrence instants in the
// single reference timezone. There are no per-event timezones.
type OccurrenceCalculator struct {
	loc *time.Location
}

func NewOccurrenceCalculator(loc *time.Location) *OccurrenceCalculator {
	return &OccurrenceCalculator{loc: loc}
}

// Occurrence computes today's scheduled instant and the next future
// occurrence for one event. An occurrence scheduled exactly at now has
// already happened; its next run is one calendar day ahead.
func (c *OccurrenceCalculator) Occurrence(event models.Event, ct models.CanonicalTime, now time.Time) models.Occurrence {
	day := now.In(c.loc)
	sched := time.Date(day.Year(), day.Month(), day.Day(), ct.Hour, ct.Minute, 0, 0, c.loc)

	next := sched
	if !sched.After(now) {
		next = sched.AddDate(0, 0, 1)
	}

	return models.Occurrence{
		Event:          event,
		Time:           ct,
		ScheduledToday: sched,
		Next:           next,
	}
}
