package booking

import (
    "testing"

    "github.com/iliyamo/court-reservation/internal/model"
)

func coachBooking(coachID string, start, end int) model.Booking {
    return model.Booking{CourtID: "outdoor_1", StartMinute: start, EndMinute: end, CoachID: &coachID}
}

func pool(ids ...string) []model.Coach {
    out := make([]model.Coach, 0, len(ids))
    for _, id := range ids {
        out = append(out, model.Coach{CoachID: id, Active: true})
    }
    return out
}

func TestAssignCoachNoneFree(t *testing.T) {
    existing := []model.Booking{
        coachBooking("coach_1", 600, 720),
        coachBooking("coach_2", 630, 750),
    }
    if id, ok := AssignCoach(Interval{660, 720}, pool("coach_1", "coach_2"), existing); ok {
        t.Errorf("expected no coach, got %q", id)
    }
}

func TestAssignCoachExactlyOneFree(t *testing.T) {
    existing := []model.Booking{
        coachBooking("coach_1", 600, 720),
        coachBooking("coach_3", 600, 720),
    }
    id, ok := AssignCoach(Interval{600, 720}, pool("coach_1", "coach_2", "coach_3"), existing)
    if !ok || id != "coach_2" {
        t.Errorf("AssignCoach = %q, %v; want coach_2, true", id, ok)
    }
}

func TestAssignCoachLeastLoaded(t *testing.T) {
    // coach_1 has two bookings today, coach_2 one, coach_3 none; all are
    // free for the requested evening slot.
    existing := []model.Booking{
        coachBooking("coach_1", 480, 540),
        coachBooking("coach_1", 600, 660),
        coachBooking("coach_2", 480, 540),
    }
    id, ok := AssignCoach(Interval{1080, 1140}, pool("coach_1", "coach_2", "coach_3"), existing)
    if !ok || id != "coach_3" {
        t.Errorf("AssignCoach = %q, %v; want coach_3, true", id, ok)
    }
}

func TestAssignCoachTieBreaksByID(t *testing.T) {
    existing := []model.Booking{
        coachBooking("coach_1", 480, 540),
        coachBooking("coach_2", 480, 540),
    }
    // Equal load; the lower id wins regardless of pool order.
    id, ok := AssignCoach(Interval{600, 660}, pool("coach_2", "coach_1"), existing)
    if !ok || id != "coach_1" {
        t.Errorf("AssignCoach = %q, %v; want coach_1, true", id, ok)
    }
}

func TestAssignCoachSkipsInactive(t *testing.T) {
    coaches := []model.Coach{
        {CoachID: "coach_1", Active: false},
        {CoachID: "coach_2", Active: true},
    }
    id, ok := AssignCoach(Interval{600, 660}, coaches, nil)
    if !ok || id != "coach_2" {
        t.Errorf("AssignCoach = %q, %v; want coach_2, true", id, ok)
    }

    onlyInactive := []model.Coach{{CoachID: "coach_1", Active: false}}
    if id, ok := AssignCoach(Interval{600, 660}, onlyInactive, nil); ok {
        t.Errorf("inactive-only pool assigned %q", id)
    }
}
