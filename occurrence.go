package cron

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var hhmm = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):([0-5][0-9])$`)

// Occurrence is a time of day with minute precision.
type Occurrence struct {
	Hour   int
	Minute int
}

// ParseTime parses a zero-padded HH:MM reference time.
func ParseTime(s string) (Occurrence, error) {
	m := hhmm.FindStringSubmatch(s)
	if m == nil {
		return Occurrence{}, &InputFormatError{Input: s}
	}

	// both groups are guaranteed to be two digits by the pattern
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return Occurrence{Hour: hour, Minute: minute}, nil
}

// At returns the time of day of t, dropping seconds.
func At(t time.Time) Occurrence {
	return Occurrence{Hour: t.Hour(), Minute: t.Minute()}
}

// Compare returns -1, 0 or +1 depending on whether o is earlier than, equal
// to or later than other.
func (o Occurrence) Compare(other Occurrence) int {
	switch {
	case o.Hour < other.Hour:
		return -1
	case o.Hour > other.Hour:
		return 1
	case o.Minute < other.Minute:
		return -1
	case o.Minute > other.Minute:
		return 1
	}
	return 0
}

// Before reports whether o is strictly earlier than other.
func (o Occurrence) Before(other Occurrence) bool {
	return o.Compare(other) < 0
}

// On returns the instant at o on the calendar day of t, in t's location.
func (o Occurrence) On(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), o.Hour, o.Minute, 0, 0, t.Location())
}

func (o Occurrence) String() string {
	return fmt.Sprintf("%02d:%02d", o.Hour, o.Minute)
}
