package models

import "time"

// Snapshot is the on-disk catalog document the daemon serves from.
// Charts hold one month of day slots per event; slot index is day-1
// and an empty value means "not declared yet".
type Snapshot struct {
	Events []Event `json:"events"`
	Charts []Chart `json:"charts"`
}

type Chart struct {
	EventID string    `json:"eventId"`
	Year    int       `json:"year"`
	Month   int       `json:"month"`
	Days    []DaySlot `json:"days"`
}

type DaySlot struct {
	Value      string     `json:"value"`
	DeclaredAt *time.Time `json:"declaredAt"`
}
