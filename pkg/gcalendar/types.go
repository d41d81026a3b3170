package gcalendar

import "time"

// HoldRequest reserves a pickup or delivery slot on a shop calendar.
type HoldRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	Duration    time.Duration
}

// Hold is the created calendar event.
type Hold struct {
	ID       string
	HTMLLink string
	Start    time.Time
	End      time.Time
}

// DefaultHoldDuration is used when a request leaves Duration unset.
const DefaultHoldDuration = 30 * time.Minute
