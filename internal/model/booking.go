package model

import "time"

// Booking records a confirmed reservation of a court for a time slot
// on a given date.  Equipment rented with the booking is stored as
// per-item counts in the booking_equipment table.  Bookings are
// immutable once created; the service exposes no update or cancel
// operations.
//
// Fields:
//  ID          – primary key identifier.
//  CourtID     – court reserved for the slot.
//  Date        – calendar date of the booking (date only, UTC).
//  StartMinute – slot start, minutes since midnight.
//  EndMinute   – slot end, minutes since midnight (exclusive).
//  Equipment   – rented items mapped to their counts.
//  CoachID     – assigned coach, nil when no coach was requested.
//  Price       – total price charged for the booking.
//  CreatedAt   – creation timestamp.
type Booking struct {
    ID          uint64         // bookings.id
    CourtID     string         // bookings.court_id
    Date        time.Time      // bookings.booking_date
    StartMinute int            // bookings.start_minute
    EndMinute   int            // bookings.end_minute
    Equipment   map[string]int // booking_equipment rows (item -> qty)
    CoachID     *string        // bookings.coach_id (nullable)
    Price       float64        // bookings.price
    CreatedAt   time.Time      // bookings.created_at
}
