package booking

import (
    "errors"
    "fmt"
)

// Sentinel errors returned by the reservation core.  Handlers translate
// them into HTTP responses: validation failures become 400, a missing
// court configuration becomes 404, and resource conflicts become 409.
// Conflicts are expected outcomes, not defects — the client is free to
// retry with a different slot.
var (
    // ErrMissingField is returned when a required request field
    // (court_type, start_time, date or hours) is absent.
    ErrMissingField = errors.New("missing required fields")

    // ErrInvalidTime is returned when a time of day is not "HH:MM".
    ErrInvalidTime = errors.New("invalid time format")

    // ErrInvalidDuration is returned when the requested duration is
    // not a positive number of hours.
    ErrInvalidDuration = errors.New("invalid duration")

    // ErrInvalidDate is returned when the booking date is not a valid
    // "YYYY-MM-DD" calendar date.
    ErrInvalidDate = errors.New("invalid date format")

    // ErrOutOfHours is returned when the slot falls outside the
    // venue's operating hours.  Permanent for that request.
    ErrOutOfHours = errors.New("outside operating hours")

    // ErrNoCourtOfType is returned when no court of the requested
    // type is configured at all.
    ErrNoCourtOfType = errors.New("no court available")

    // ErrCourtConflict is returned when the resolved court already
    // has an overlapping booking on the requested date.
    ErrCourtConflict = errors.New("court already booked")

    // ErrNoCoachAvailable is returned when a coach was requested but
    // every active coach has an overlapping booking.
    ErrNoCoachAvailable = errors.New("no coach available")
)

// EquipmentUnavailableError is returned when renting the requested
// quantity of one item would exceed the venue's stock during the slot.
// It carries the item so the client knows which line to adjust.
type EquipmentUnavailableError struct {
    Item string
}

func (e *EquipmentUnavailableError) Error() string {
    return fmt.Sprintf("not enough %s available", e.Item)
}
