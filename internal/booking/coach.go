package booking

import (
    "sort"

    "github.com/iliyamo/court-reservation/internal/model"
)

// AssignCoach picks one coach from the pool for the slot.  Inactive
// coaches are skipped.  Among coaches with no overlapping booking on
// the date, the one with the fewest bookings that day wins; ties break
// by coach id order so the choice is deterministic.  The second return
// value is false when nobody is free — a normal decline signal, not an
// error.
func AssignCoach(slot Interval, pool []model.Coach, existing []model.Booking) (string, bool) {
    ids := make([]string, 0, len(pool))
    for _, c := range pool {
        if c.Active {
            ids = append(ids, c.CoachID)
        }
    }
    sort.Strings(ids)

    best := ""
    bestLoad := -1
    for _, id := range ids {
        load := 0
        clash := false
        for _, b := range existing {
            if b.CoachID == nil || *b.CoachID != id {
                continue
            }
            load++
            if slot.Overlaps(Interval{StartMinute: b.StartMinute, EndMinute: b.EndMinute}) {
                clash = true
                break
            }
        }
        if clash {
            continue
        }
        if bestLoad < 0 || load < bestLoad {
            best = id
            bestLoad = load
        }
    }
    if bestLoad < 0 {
        return "", false
    }
    return best, true
}
