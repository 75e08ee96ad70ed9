package analyze

import (
	"fmt"
	"time"
)

// Window is an inclusive calendar-day filter over record timestamps.
// Either bound may be absent. A record without a timestamp always
// passes: the transcript may still attribute it to a member, and
// excluding it would silently change the other categories.
type Window struct {
	start *time.Time
	end   *time.Time // exclusive, already advanced past the end day
}

// NewWindow builds a Window from optional calendar dates (time
// components are ignored). Both bounds include the full named day.
func NewWindow(start, end *time.Time) Window {
	var w Window
	if start != nil {
		s := truncateDay(*start)
		w.start = &s
	}
	if end != nil {
		e := truncateDay(*end).AddDate(0, 0, 1)
		w.end = &e
	}
	return w
}

// Contains reports whether a record with the given timestamp passes the
// filter. A nil timestamp bypasses the filter entirely.
func (w Window) Contains(t *time.Time) bool {
	if t == nil {
		return true
	}
	if w.start != nil && t.Before(*w.start) {
		return false
	}
	if w.end != nil && !t.Before(*w.end) {
		return false
	}
	return true
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dateLayouts accepted by ParseDate, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"2/1/2006",
	"02.01.2006",
}

// ParseDate parses a calendar date given on the command line.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q (want e.g. 2006-01-02)", s)
}
