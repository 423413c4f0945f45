// Package availability decides whether a candidate time interval collides
// with existing bookings on a resource. The check is advisory: it powers
// candidate selection and a pre-submit gate, it is never enforced when a
// booking is written.
package availability

import (
	"time"

	"roomly/pkg/model"
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusConflict    Status = "conflict"
	StatusInvalidTime Status = "invalid_time"
)

// Result carries the machine status plus the text shown on room cards.
type Result struct {
	Status Status `json:"status"`
	Text   string `json:"text"`
}

var statusText = map[Status]string{
	StatusAvailable:   "Available",
	StatusConflict:    "Busy at this time",
	StatusInvalidTime: "Invalid time",
}

// Accepted candidate timestamp layouts. Interactive forms submit local
// date-time without zone or seconds; API clients send RFC3339.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseTime parses a candidate timestamp in any accepted layout.
func ParseTime(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Overlaps is the half-open interval intersection predicate: [aStart,aEnd)
// and [bStart,bEnd) overlap iff each starts before the other ends.
// Touching endpoints (aEnd == bStart) do not overlap, so back-to-back
// bookings are legal.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// Check evaluates a candidate [start, end) against the given bookings for
// one resource. Bookings for other resources are ignored, as is the
// booking identified by excludeID (re-checking an edit against itself).
func Check(resourceID, start, end string, bookings []model.Booking, excludeID string) Result {
	candidateStart, errStart := ParseTime(start)
	candidateEnd, errEnd := ParseTime(end)
	if errStart != nil || errEnd != nil {
		return result(StatusInvalidTime)
	}
	return CheckInterval(resourceID, candidateStart, candidateEnd, bookings, excludeID)
}

// CheckInterval is Check for already-parsed instants.
func CheckInterval(resourceID string, start, end time.Time, bookings []model.Booking, excludeID string) Result {
	if !end.After(start) {
		return result(StatusInvalidTime)
	}

	for _, b := range bookings {
		if b.ResourceID != resourceID || b.ID == excludeID {
			continue
		}
		if Overlaps(start, end, b.Start, b.End) {
			return result(StatusConflict)
		}
	}

	return result(StatusAvailable)
}

func result(status Status) Result {
	return Result{Status: status, Text: statusText[status]}
}
