package datenorm

import "time"

// DefaultOffset is the civil offset of Korean reservation platforms (KST).
const DefaultOffset = 9 * time.Hour

// Outcome is the result of normalizing a date-like input.
// The zero value is Unresolved.
type Outcome struct {
	At       time.Time
	Resolved bool
}

// Unresolved is returned when the input could not be turned into an instant.
var Unresolved = Outcome{}

func resolved(t time.Time) Outcome {
	return Outcome{At: t, Resolved: true}
}

// Time returns the instant and whether it was resolved.
func (o Outcome) Time() (time.Time, bool) {
	return o.At, o.Resolved
}

// Stage is one total rewrite step of the string pipeline.
type Stage struct {
	Name  string
	Apply func(string) string
}
