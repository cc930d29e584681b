package booking

import "time"

// Request carries the fields of one pricing or booking attempt.  It is
// transient: bound from the request body, validated, and discarded.
// Equipment is a multiset — repeating an item rents that many units.
type Request struct {
    CourtType string   `json:"court_type"`
    Date      string   `json:"date"`
    StartTime string   `json:"start_time"`
    Hours     int      `json:"hours"`
    Equipment []string `json:"equipment"`
    Coach     bool     `json:"coach"`
}

// Validate checks that every required field is present and parseable.
// A zero Hours value covers both an absent field and an explicit zero,
// matching the required-field semantics of the API contract.
func (r Request) Validate() error {
    if r.CourtType == "" || r.StartTime == "" || r.Date == "" || r.Hours == 0 {
        return ErrMissingField
    }
    if _, err := r.ParseDate(); err != nil {
        return ErrInvalidDate
    }
    if _, err := r.Interval(); err != nil {
        return err
    }
    return nil
}

// ParseDate parses the booking date ("YYYY-MM-DD").
func (r Request) ParseDate() (time.Time, error) {
    t, err := time.Parse("2006-01-02", r.Date)
    if err != nil {
        return time.Time{}, ErrInvalidDate
    }
    return t, nil
}

// Interval converts the start time and duration into the slot interval.
func (r Request) Interval() (Interval, error) {
    return NewInterval(r.StartTime, r.Hours)
}

// EquipmentCounts collapses the equipment multiset into per-item counts.
func (r Request) EquipmentCounts() map[string]int {
    if len(r.Equipment) == 0 {
        return nil
    }
    counts := make(map[string]int, len(r.Equipment))
    for _, item := range r.Equipment {
        counts[item]++
    }
    return counts
}
