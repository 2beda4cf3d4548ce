package models

import "time"

const (
	CardTypeRecent   = "recent"
	CardTypeUpcoming = "upcoming"

	// PlaceholderName pads short card lists; TimeSentinel marks events
	// without a usable publish time.
	PlaceholderName = "--"
	TimeSentinel    = "--"
)

type Card struct {
	Type                  string     `json:"type"`
	Name                  string     `json:"name"`
	ResultTime            string     `json:"resultTime"`
	LatestResult          *string    `json:"latestResult"`
	NextOccurrenceInstant *time.Time `json:"nextOccurrenceInstant"`
	MinutesUntilNext      *int       `json:"minutesUntilNext"`
	RecentExpiresInstant  *time.Time `json:"recentExpiresInstant"`
	RecentVisible         bool       `json:"recentVisible"`
}

// CardListResponse is the wire envelope of one classification call.
// Cached is reserved for a future caching layer and is always false.
type CardListResponse struct {
	Cards             []Card    `json:"cards"`
	ServerTimeInstant time.Time `json:"serverTimeInstant"`
	Cached            bool      `json:"cached"`
}

// LatestResultResponse is the single-game lookup payload.
type LatestResultResponse struct {
	Game           string  `json:"game"`
	LatestResult   *string `json:"latestResult"`
	PreviousResult *string `json:"previousResult"`
	ResultTime     string  `json:"resultTime"`
}
