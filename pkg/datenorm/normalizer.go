package datenorm

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoCombined  = regexp.MustCompile(`\d{4}-\d{2}-\d{2}T\d{2}:\d{2}`)
	parenNoise   = regexp.MustCompile(`\([^)]*\)|（[^）]*）`)
	spaces       = regexp.MustCompile(`\s+`)
	koreanHour   = regexp.MustCompile(`(\d{1,2})\s*시(?:\s*(\d{1,2})\s*분|\s*(반))?`)
	meridiemTime = regexp.MustCompile(`(오전|오후)\s*(\d{1,2}):(\d{2})`)
	dottedDate   = regexp.MustCompile(`(\d{4})\s*[./년]\s*(\d{1,2})\s*[./월]\s*(\d{1,2})(?:\s*[.일])?`)
	bareDateTime = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})[ T]+(\d{1,2}):(\d{2})(?::(\d{2}))?$`)
)

// finalLayouts are tried in order by the last pipeline step.
var finalLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05Z07:00",
}

// Normalizer resolves date/time strings written on Korean reservation
// platforms into instants. Strings without an explicit offset are anchored to
// the normalizer's fixed civil offset, never to the process timezone.
type Normalizer struct {
	location *time.Location
	suffix   string
}

// NewNormalizer creates a Normalizer anchored to the given UTC offset.
func NewNormalizer(offset time.Duration) (*Normalizer, error) {
	if offset%time.Minute != 0 {
		return nil, fmt.Errorf("offset %s is not a whole number of minutes", offset)
	}
	if offset < -14*time.Hour || offset > 14*time.Hour {
		return nil, fmt.Errorf("offset %s out of range", offset)
	}
	return &Normalizer{
		location: time.FixedZone(zoneName(offset), int(offset/time.Second)),
		suffix:   offsetSuffix(offset),
	}, nil
}

// MustNormalizer is like NewNormalizer but panics on an invalid offset.
func MustNormalizer(offset time.Duration) *Normalizer {
	n, err := NewNormalizer(offset)
	if err != nil {
		panic(err)
	}
	return n
}

// Default returns a Normalizer anchored to KST (UTC+9).
func Default() *Normalizer {
	return MustNormalizer(DefaultOffset)
}

// Location is the fixed zone offset-less inputs are anchored to.
func (n *Normalizer) Location() *time.Location {
	return n.location
}

// Normalize accepts a string, a time value, or nil.
func (n *Normalizer) Normalize(v any) Outcome {
	switch x := v.(type) {
	case nil:
		return Unresolved
	case string:
		return n.NormalizeString(x)
	case *string:
		if x == nil {
			return Unresolved
		}
		return n.NormalizeString(*x)
	case time.Time:
		return n.NormalizeTime(x)
	case *time.Time:
		if x == nil {
			return Unresolved
		}
		return n.NormalizeTime(*x)
	default:
		return Unresolved
	}
}

// NormalizeTime accepts an already-typed instant. Only the zero time is rejected.
func (n *Normalizer) NormalizeTime(t time.Time) Outcome {
	if t.IsZero() {
		return Unresolved
	}
	return resolved(t)
}

// NormalizeString runs the staged rewrite pipeline and parses the result.
func (n *Normalizer) NormalizeString(s string) Outcome {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unresolved
	}

	// Explicit ISO-8601 input keeps its own offset.
	if isoCombined.MatchString(s) {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return resolved(t)
		}
	}

	for _, stage := range n.Stages() {
		s = stage.Apply(s)
	}

	for _, layout := range finalLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return resolved(t)
		}
	}
	return Unresolved
}

// Stages returns the ordered rewrite steps. Anchoring must stay last: it
// matches the shape produced by the earlier steps.
func (n *Normalizer) Stages() []Stage {
	return []Stage{
		{Name: "strip-noise", Apply: StripNoise},
		{Name: "resolve-meridiem", Apply: ResolveMeridiem},
		{Name: "normalize-separators", Apply: NormalizeSeparators},
		{Name: "complete-time", Apply: CompleteTime},
		{Name: "anchor-offset", Apply: n.AnchorOffset},
	}
}

// StripNoise removes parenthesized annotations such as day-of-week markers.
func StripNoise(s string) string {
	s = parenNoise.ReplaceAllString(s, " ")
	return strings.TrimSpace(spaces.ReplaceAllString(s, " "))
}

// ResolveMeridiem rewrites "오전/오후 H:MM" into 24-hour "HH:MM".
// "H시 M분" and "H시 반" are first turned into "H:MM".
func ResolveMeridiem(s string) string {
	s = koreanHour.ReplaceAllStringFunc(s, func(m string) string {
		sub := koreanHour.FindStringSubmatch(m)
		minute := 0
		switch {
		case sub[2] != "":
			minute, _ = strconv.Atoi(sub[2])
		case sub[3] != "":
			minute = 30
		}
		return fmt.Sprintf("%s:%02d", sub[1], minute)
	})

	return meridiemTime.ReplaceAllStringFunc(s, func(m string) string {
		sub := meridiemTime.FindStringSubmatch(m)
		hour, _ := strconv.Atoi(sub[2])
		switch {
		case sub[1] == "오후" && hour < 12:
			hour += 12
		case sub[1] == "오전" && hour == 12:
			hour = 0
		}
		return fmt.Sprintf("%02d:%s", hour, sub[3])
	})
}

// NormalizeSeparators rewrites "YYYY. M. D." (also "/" and 년월일) into "YYYY-M-D".
func NormalizeSeparators(s string) string {
	return strings.TrimSpace(dottedDate.ReplaceAllString(s, "$1-$2-$3"))
}

// CompleteTime appends midnight when the string carries no time at all.
func CompleteTime(s string) string {
	if strings.Contains(s, ":") {
		return s
	}
	return s + " 00:00:00"
}

// AnchorOffset turns "YYYY-M-D HH:MM[:SS]" into RFC3339 with the fixed offset.
// Strings that already carry an offset, or have any other shape, are untouched.
func (n *Normalizer) AnchorOffset(s string) string {
	m := bareDateTime.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	parts := make([]int, 0, 5)
	for _, p := range m[2:] {
		v, _ := strconv.Atoi(p) // "" for missing seconds yields 0
		parts = append(parts, v)
	}
	return fmt.Sprintf("%s-%02d-%02dT%02d:%02d:%02d%s", m[1], parts[0], parts[1], parts[2], parts[3], parts[4], n.suffix)
}

func offsetSuffix(offset time.Duration) string {
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	h := int(offset / time.Hour)
	m := int((offset % time.Hour) / time.Minute)
	return fmt.Sprintf("%s%02d:%02d", sign, h, m)
}

func zoneName(offset time.Duration) string {
	if offset == DefaultOffset {
		return "KST"
	}
	return "UTC" + offsetSuffix(offset)
}
