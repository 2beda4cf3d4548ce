package models

// Event is one catalog entry: a daily game publishing a single value
// per calendar day at a fixed time-of-day. ResultTime is the raw,
// possibly malformed, configured time string.
type Event struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ResultTime string `json:"resultTime"`
}

// CanonicalTime is a validated HH:MM time-of-day.
type CanonicalTime struct {
	Hour   int
	Minute int
}

func (ct CanonicalTime) String() string {
	return twoDigit(ct.Hour) + ":" + twoDigit(ct.Minute)
}

func twoDigit(n int) string {
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}
