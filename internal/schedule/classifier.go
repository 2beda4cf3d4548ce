package schedule

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"drd/internal/models"
	"drd/internal/structures"
)

const (
	// MinLimit/MaxLimit bound the requested card count; out-of-range
	// values are clamped, never rejected.
	MinLimit = 1
	MaxLimit = 10

	// MaxPinned caps the pinned-recent head of the list regardless of
	// the requested limit.
	MaxPinned = 2

	// minFutureCandidates is the floor of the future prefetch buffer.
	// It only bounds the batched value lookup, not pinning.
	minFutureCandidates = 6
)

// ClampLimit resolves the effective card count: absent or non-positive
// input falls back to the default, everything else is clamped to
// [MinLimit, MaxLimit].
func ClampLimit(limit, defaultLimit int) int {
	if limit == 0 {
		limit = defaultLimit
	}
	if limit < MinLimit {
		return MinLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// ValueLookup resolves declared values, one month page per event,
// keyed event id -> day of month -> raw value.
type ValueLookup interface {
	DeclaredValues(ctx context.Context, eventIDs []string, year int, month time.Month) (map[string]map[int]string, error)
}

// Pin is a passed occurrence selected to head the output because it
// falls inside the trailing recency window and has a declared value.
type Pin struct {
	Occurrence       models.Occurrence
	Value            string
	MinutesUntilNext int
	ExpiresAt        time.Time
	Visible          bool
}

// Classification is the intermediate result handed to the composer.
// Passed is ordered most-recently-passed first, Future soonest first,
// Untimed in catalog order. Values holds today's declared values for
// the bounded candidate set only.
type Classification struct {
	Pinned       []Pin
	Passed       []models.Occurrence
	Future       []models.Occurrence
	FutureBuffer int
	Untimed      []models.Event
	Values       map[string]models.DeclaredValue
}

type Classifier struct {
	cfg  structures.EngineConfig
	calc *OccurrenceCalculator
	loc  *time.Location
}

func NewClassifier(cfg structures.EngineConfig, loc *time.Location) *Classifier {
	return &Classifier{
		cfg:  cfg,
		calc: NewOccurrenceCalculator(loc),
		loc:  loc,
	}
}

// Classify partitions the catalog against a single captured now,
// resolves values for the bounded candidate set and selects the pinned
// recents. Pure except for the one batched lookup; a lookup failure
// aborts the whole call.
func (c *Classifier) Classify(ctx context.Context, now time.Time, events []models.Event, limit int, lookup ValueLookup) (*Classification, error) {
	now = now.In(c.loc)

	cls := &Classification{
		Values: make(map[string]models.DeclaredValue),
	}

	for _, ev := range events {
		ct, ok := ParseTimeOfDay(ev.ResultTime)
		if !ok {
			cls.Untimed = append(cls.Untimed, ev)
			continue
		}
		occ := c.calc.Occurrence(ev, ct, now)
		if !occ.ScheduledToday.After(now) {
			cls.Passed = append(cls.Passed, occ)
		} else {
			cls.Future = append(cls.Future, occ)
		}
	}

	sort.SliceStable(cls.Passed, func(i, j int) bool {
		a, b := cls.Passed[i], cls.Passed[j]
		if !a.ScheduledToday.Equal(b.ScheduledToday) {
			return a.ScheduledToday.After(b.ScheduledToday)
		}
		return a.Event.Name < b.Event.Name
	})
	sort.SliceStable(cls.Future, func(i, j int) bool {
		a, b := cls.Future[i], cls.Future[j]
		if !a.Next.Equal(b.Next) {
			return a.Next.Before(b.Next)
		}
		return a.Event.Name < b.Event.Name
	})

	window := time.Duration(c.cfg.RecentWindowMinutes) * time.Minute
	windowStart := now.Add(-window)

	var recent []models.Occurrence
	for _, occ := range cls.Passed {
		if !occ.ScheduledToday.Before(windowStart) {
			recent = append(recent, occ)
		}
	}

	cls.FutureBuffer = limit
	if cls.FutureBuffer < minFutureCandidates {
		cls.FutureBuffer = minFutureCandidates
	}
	if cls.FutureBuffer > len(cls.Future) {
		cls.FutureBuffer = len(cls.Future)
	}

	candidateIDs := make([]string, 0, len(recent)+cls.FutureBuffer)
	for _, occ := range recent {
		candidateIDs = append(candidateIDs, occ.Event.ID)
	}
	for _, occ := range cls.Future[:cls.FutureBuffer] {
		candidateIDs = append(candidateIDs, occ.Event.ID)
	}

	if len(candidateIDs) > 0 {
		pages, err := lookup.DeclaredValues(ctx, candidateIDs, now.Year(), now.Month())
		if err != nil {
			return nil, fmt.Errorf("declared value lookup: %w", err)
		}
		day := now.Day()
		for _, id := range candidateIDs {
			cls.Values[id] = models.NewDeclaredValue(pages[id][day])
		}
	}

	for _, occ := range recent {
		if len(cls.Pinned) == MaxPinned {
			break
		}
		value, ok := cls.Values[occ.Event.ID].Value()
		if !ok {
			continue
		}
		minutes := minutesUntil(occ.Next, now)
		cls.Pinned = append(cls.Pinned, Pin{
			Occurrence:       occ,
			Value:            value,
			MinutesUntilNext: minutes,
			ExpiresAt:        occ.ScheduledToday.Add(window),
			Visible:          minutes > c.cfg.SuppressionMinutes || minutes >= c.cfg.RecentWindowMinutes,
		})
	}

	return cls, nil
}

// minutesUntil rounds the remaining duration up to whole minutes,
// never below zero.
func minutesUntil(next, now time.Time) int {
	m := int(math.Ceil(next.Sub(now).Minutes()))
	if m < 0 {
		return 0
	}
	return m
}
