// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a booking is successfully confirmed.
// It contains enough information for downstream consumers to log, notify, or
// trigger analytics without querying the primary database.
type BookingConfirmedEvent struct {
    BookingID     uint64   `json:"booking_id"`
    CourtID       string   `json:"court_id"`
    CourtType     string   `json:"court_type"`
    Date          string   `json:"date"`
    StartTime     string   `json:"start_time"`
    Hours         int      `json:"hours"`
    Equipment     []string `json:"equipment"`
    CoachAssigned *string  `json:"coach_assigned"`
    TotalPrice    float64  `json:"total_price"`
    ConfirmedAt   string   `json:"confirmed_at"`
}
