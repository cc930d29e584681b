package booking

import "github.com/iliyamo/court-reservation/internal/model"

// CourtFree reports whether the court has no overlapping booking in the
// given slice.  Callers pass the bookings already loaded for the
// requested date; conflicts are keyed on the specific court id, never
// on the court type.
func CourtFree(courtID string, slot Interval, existing []model.Booking) bool {
    for _, b := range existing {
        if b.CourtID != courtID {
            continue
        }
        if slot.Overlaps(Interval{StartMinute: b.StartMinute, EndMinute: b.EndMinute}) {
            return false
        }
    }
    return true
}

// EquipmentAvailable reports whether requested units of one item fit
// within the total stock during the slot.  Usage is summed across every
// overlapping booking on the date; each item is checked independently —
// distinct items never compete for the same capacity pool.  The scan
// short-circuits as soon as the stock is exceeded.
func EquipmentAvailable(item string, requested, total int, slot Interval, existing []model.Booking) bool {
    used := 0
    for _, b := range existing {
        if !slot.Overlaps(Interval{StartMinute: b.StartMinute, EndMinute: b.EndMinute}) {
            continue
        }
        used += b.Equipment[item]
        if used+requested > total {
            return false
        }
    }
    return used+requested <= total
}
