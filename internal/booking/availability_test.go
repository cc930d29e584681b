package booking

import (
    "testing"

    "github.com/iliyamo/court-reservation/internal/model"
)

func courtBooking(courtID string, start, end int) model.Booking {
    return model.Booking{CourtID: courtID, StartMinute: start, EndMinute: end}
}

func equipmentBooking(start, end int, equipment map[string]int) model.Booking {
    return model.Booking{CourtID: "outdoor_1", StartMinute: start, EndMinute: end, Equipment: equipment}
}

func TestCourtFree(t *testing.T) {
    existing := []model.Booking{
        courtBooking("indoor_1", 600, 720), // 10:00-12:00
        courtBooking("indoor_2", 600, 720),
    }

    cases := []struct {
        name    string
        courtID string
        slot    Interval
        want    bool
    }{
        {"overlapping same court", "indoor_1", Interval{660, 780}, false},
        {"identical slot same court", "indoor_1", Interval{600, 720}, false},
        {"adjacent same court", "indoor_1", Interval{720, 840}, true},
        {"same slot other court", "indoor_3", Interval{600, 720}, true},
        {"disjoint same court", "indoor_1", Interval{900, 960}, true},
    }
    for _, tc := range cases {
        if got := CourtFree(tc.courtID, tc.slot, existing); got != tc.want {
            t.Errorf("%s: CourtFree = %v, want %v", tc.name, got, tc.want)
        }
    }
}

func TestEquipmentAvailableAgainstStock(t *testing.T) {
    // Requesting more than the venue owns fails even with zero usage.
    if EquipmentAvailable("racket", 6, 5, Interval{600, 720}, nil) {
        t.Error("6 of 5 rackets with no existing usage should be unavailable")
    }
    if !EquipmentAvailable("racket", 5, 5, Interval{600, 720}, nil) {
        t.Error("exactly the full stock should be available")
    }
}

func TestEquipmentAvailableSumsOverlappingUsage(t *testing.T) {
    existing := []model.Booking{
        equipmentBooking(600, 720, map[string]int{"racket": 2}),
        equipmentBooking(660, 780, map[string]int{"racket": 2}),
        equipmentBooking(900, 960, map[string]int{"racket": 5}), // disjoint, must not count
    }

    // 2+2 in use during 10:30-11:30; stock 5 leaves room for one.
    if !EquipmentAvailable("racket", 1, 5, Interval{630, 690}, existing) {
        t.Error("one remaining racket should be available")
    }
    if EquipmentAvailable("racket", 2, 5, Interval{630, 690}, existing) {
        t.Error("two rackets should exceed stock during the overlap")
    }
    // After both bookings end the full stock is free again.
    if !EquipmentAvailable("racket", 5, 5, Interval{780, 840}, existing) {
        t.Error("full stock should be free outside the busy window")
    }
}

func TestEquipmentItemsCheckedIndependently(t *testing.T) {
    existing := []model.Booking{
        equipmentBooking(600, 720, map[string]int{"racket": 5}),
    }
    // Rackets are exhausted but shoes have their own pool.
    if EquipmentAvailable("racket", 1, 5, Interval{600, 720}, existing) {
        t.Error("rackets should be exhausted")
    }
    if !EquipmentAvailable("shoes", 3, 5, Interval{600, 720}, existing) {
        t.Error("shoes must not compete with racket usage")
    }
}
