// Package booking implements the reservation core: the time-interval
// model, the dynamic pricing engine, the availability checker and the
// coach allocator.  The package is pure — it never touches the store.
// Callers load the relevant bookings and inventory first and pass them
// in, which keeps every rule testable without a database.
package booking

import (
    "fmt"
    "strconv"
    "strings"
)

// Interval is a half-open time range within a single day, expressed in
// minutes since midnight.  EndMinute is exclusive, so two slots that
// merely touch (a.EndMinute == b.StartMinute) do not overlap.
type Interval struct {
    StartMinute int
    EndMinute   int
}

// ParseClock converts an "HH:MM" wall-clock string to minutes since
// midnight.  It returns ErrInvalidTime for anything that is not a
// well-formed time of day.
func ParseClock(s string) (int, error) {
    parts := strings.Split(s, ":")
    if len(parts) != 2 {
        return 0, ErrInvalidTime
    }
    h, err := strconv.Atoi(parts[0])
    if err != nil {
        return 0, ErrInvalidTime
    }
    m, err := strconv.Atoi(parts[1])
    if err != nil {
        return 0, ErrInvalidTime
    }
    if h < 0 || h > 23 || m < 0 || m > 59 {
        return 0, ErrInvalidTime
    }
    return h*60 + m, nil
}

// NewInterval builds the interval for a slot starting at the given
// "HH:MM" time and lasting a whole number of hours.  It returns
// ErrInvalidTime when the start time cannot be parsed and
// ErrInvalidDuration when hours is not positive.
func NewInterval(startTime string, hours int) (Interval, error) {
    start, err := ParseClock(startTime)
    if err != nil {
        return Interval{}, err
    }
    if hours <= 0 {
        return Interval{}, ErrInvalidDuration
    }
    return Interval{StartMinute: start, EndMinute: start + hours*60}, nil
}

// Overlaps reports whether two half-open intervals share any minutes.
// The test is symmetric; adjacent intervals never overlap.
func (a Interval) Overlaps(b Interval) bool {
    return a.StartMinute < b.EndMinute && b.StartMinute < a.EndMinute
}

// Hours returns the slot length in whole hours.
func (a Interval) Hours() int {
    return (a.EndMinute - a.StartMinute) / 60
}

// StartClock formats the interval start back into "HH:MM".
func (a Interval) StartClock() string {
    return fmt.Sprintf("%02d:%02d", a.StartMinute/60, a.StartMinute%60)
}

// OperatingHours bounds the bookable part of the day.  Both fields are
// minutes since midnight; CloseMinute is the last admissible end.
type OperatingHours struct {
    OpenMinute  int
    CloseMinute int
}

// Contains reports whether the interval lies entirely inside the
// venue's operating hours.
func (h OperatingHours) Contains(a Interval) bool {
    return a.StartMinute >= h.OpenMinute && a.EndMinute <= h.CloseMinute
}
