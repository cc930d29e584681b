package booking

import (
    "math"
    "time"

    "github.com/iliyamo/court-reservation/internal/model"
)

// PricingConfig is the immutable rate card used to price a slot.  It is
// loaded once at process start and injected; nothing mutates it at
// runtime.  The peak window is half-open over wall-clock hours:
// [PeakStartHour, PeakEndHour).
type PricingConfig struct {
    BaseRate          float64
    IndoorPremium     float64
    PeakStartHour     int
    PeakEndHour       int
    PeakMultiplier    float64
    WeekendMultiplier float64
    EquipmentPrices   map[string]float64
    CoachHourlyRate   float64
}

// PriceBreakdown itemises the cost of one booking.  All values are
// rounded to two decimals at this boundary only; intermediate hourly
// sums keep full precision so rounding error never compounds.
type PriceBreakdown struct {
    BaseHourPrice float64 `json:"base_hour_price"`
    EquipmentCost float64 `json:"equipment_cost"`
    CoachCost     float64 `json:"coach_cost"`
    TotalPrice    float64 `json:"total_price"`
}

// Quote prices a slot hour by hour.  Each booked hour starts from the
// base rate (plus the indoor premium for indoor courts), is multiplied
// by the peak multiplier when its wall-clock hour falls in the peak
// window, and by the weekend multiplier on Saturdays and Sundays.
// Equipment is billed once per booking regardless of duration; coach
// time is billed per hour.
func (cfg PricingConfig) Quote(courtType string, date time.Time, slot Interval, equipment map[string]int, withCoach bool) PriceBreakdown {
    base := cfg.BaseRate
    if courtType == model.CourtTypeIndoor {
        base += cfg.IndoorPremium
    }

    weekend := date.Weekday() == time.Saturday || date.Weekday() == time.Sunday

    var totalHourly float64
    for h := 0; h < slot.Hours(); h++ {
        hourOfDay := (slot.StartMinute/60 + h) % 24
        hourPrice := base
        if hourOfDay >= cfg.PeakStartHour && hourOfDay < cfg.PeakEndHour {
            hourPrice *= cfg.PeakMultiplier
        }
        if weekend {
            hourPrice *= cfg.WeekendMultiplier
        }
        totalHourly += hourPrice
    }

    var equipmentCost float64
    for item, qty := range equipment {
        equipmentCost += cfg.EquipmentPrices[item] * float64(qty)
    }

    var coachCost float64
    if withCoach {
        coachCost = cfg.CoachHourlyRate * float64(slot.Hours())
    }

    return PriceBreakdown{
        BaseHourPrice: round2(totalHourly),
        EquipmentCost: round2(equipmentCost),
        CoachCost:     round2(coachCost),
        TotalPrice:    round2(totalHourly + equipmentCost + coachCost),
    }
}

func round2(v float64) float64 {
    return math.Round(v*100) / 100
}
