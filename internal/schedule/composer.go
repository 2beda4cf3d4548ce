package schedule

import (
	"time"

	"drd/internal/models"
)

// ComposeCards assembles the fixed-length ordered card list from a
// classification. Candidates are drained tier by tier, skipping names
// already present (case-sensitive); placeholder padding is exempt from
// the dedup rule.
func ComposeCards(cls *Classification, limit int, now time.Time) []models.Card {
	cards := make([]models.Card, 0, limit)
	seen := make(map[string]struct{}, limit)

	take := func(card models.Card) {
		seen[card.Name] = struct{}{}
		cards = append(cards, card)
	}
	skip := func(name string) bool {
		_, dup := seen[name]
		return dup
	}

	// Tier 1: pinned recents, carrying their resolved values.
	for _, pin := range cls.Pinned {
		if len(cards) == limit {
			break
		}
		if skip(pin.Occurrence.Event.Name) {
			continue
		}
		value := pin.Value
		take(models.Card{
			Type:                  models.CardTypeRecent,
			Name:                  pin.Occurrence.Event.Name,
			ResultTime:            pin.Occurrence.Time.String(),
			LatestResult:          &value,
			NextOccurrenceInstant: timePtr(pin.Occurrence.Next),
			MinutesUntilNext:      intPtr(pin.MinutesUntilNext),
			RecentExpiresInstant:  timePtr(pin.ExpiresAt),
			RecentVisible:         pin.Visible,
		})
	}

	// Tier 2: the prefetched future buffer. Values are forced null even
	// when one is already declared for that day.
	for _, occ := range cls.Future[:cls.FutureBuffer] {
		if len(cards) == limit {
			break
		}
		if skip(occ.Event.Name) {
			continue
		}
		take(upcomingCard(occ, now))
	}

	// Tier 3: remaining passed events, most recently passed first.
	for _, occ := range cls.Passed {
		if len(cards) == limit {
			break
		}
		if skip(occ.Event.Name) {
			continue
		}
		take(models.Card{
			Type:                  models.CardTypeRecent,
			Name:                  occ.Event.Name,
			ResultTime:            occ.Time.String(),
			LatestResult:          cls.Values[occ.Event.ID].Ptr(),
			NextOccurrenceInstant: timePtr(occ.Next),
			MinutesUntilNext:      intPtr(minutesUntil(occ.Next, now)),
		})
	}

	// Tier 4: future events past the prefetch buffer.
	for _, occ := range cls.Future[cls.FutureBuffer:] {
		if len(cards) == limit {
			break
		}
		if skip(occ.Event.Name) {
			continue
		}
		take(upcomingCard(occ, now))
	}

	// Tier 5: untimed events, catalog order, sentinel time display.
	for _, ev := range cls.Untimed {
		if len(cards) == limit {
			break
		}
		if skip(ev.Name) {
			continue
		}
		take(models.Card{
			Type:       models.CardTypeUpcoming,
			Name:       ev.Name,
			ResultTime: models.TimeSentinel,
		})
	}

	// Tier 6: placeholders pad the list to exactly limit.
	for len(cards) < limit {
		cards = append(cards, models.Card{
			Type:       models.CardTypeUpcoming,
			Name:       models.PlaceholderName,
			ResultTime: models.TimeSentinel,
		})
	}

	return cards
}

func upcomingCard(occ models.Occurrence, now time.Time) models.Card {
	return models.Card{
		Type:                  models.CardTypeUpcoming,
		Name:                  occ.Event.Name,
		ResultTime:            occ.Time.String(),
		LatestResult:          nil,
		NextOccurrenceInstant: timePtr(occ.Next),
		MinutesUntilNext:      intPtr(minutesUntil(occ.Next, now)),
	}
}

func timePtr(t time.Time) *time.Time { return &t }

func intPtr(n int) *int { return &n }
