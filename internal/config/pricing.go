package config

// This file builds the immutable pricing rate card from environment
// variables.  Every value has a default matching the venue's published
// rates, so the service prices bookings correctly with no env at all.
// The resulting PricingConfig is injected into the booking handler at
// startup and never mutated afterwards.

import (
    "log"
    "strconv"
    "strings"

    "github.com/iliyamo/court-reservation/internal/booking"
)

// LoadPricingConfig reads pricing environment variables into a
// booking.PricingConfig.  Supported variables:
//   PRICE_BASE_RATE           – base hourly rate (default 300)
//   PRICE_INDOOR_PREMIUM      – indoor surcharge per hour (default 200)
//   PRICE_PEAK_START_HOUR     – first peak hour of day (default 18)
//   PRICE_PEAK_END_HOUR       – end of peak window, exclusive (default 21)
//   PRICE_PEAK_MULTIPLIER     – peak multiplier (default 1.5)
//   PRICE_WEEKEND_MULTIPLIER  – Saturday/Sunday multiplier (default 1.2)
//   PRICE_COACH_HOURLY_RATE   – coach rate per hour (default 400)
//   PRICE_EQUIPMENT           – "item:rate,item:rate" list
//                               (default "racket:100,shoes:150")
func LoadPricingConfig() booking.PricingConfig {
    return booking.PricingConfig{
        BaseRate:          envFloat("PRICE_BASE_RATE", 300),
        IndoorPremium:     envFloat("PRICE_INDOOR_PREMIUM", 200),
        PeakStartHour:     envInt("PRICE_PEAK_START_HOUR", 18),
        PeakEndHour:       envInt("PRICE_PEAK_END_HOUR", 21),
        PeakMultiplier:    envFloat("PRICE_PEAK_MULTIPLIER", 1.5),
        WeekendMultiplier: envFloat("PRICE_WEEKEND_MULTIPLIER", 1.2),
        CoachHourlyRate:   envFloat("PRICE_COACH_HOURLY_RATE", 400),
        EquipmentPrices:   parseEquipmentPrices(getenv("PRICE_EQUIPMENT", "racket:100,shoes:150")),
    }
}

// LoadOperatingHours parses the configured open and close times into
// minute bounds.  Invalid values are fatal: a venue that cannot state
// its own hours must not accept bookings.
func LoadOperatingHours(cfg Config) booking.OperatingHours {
    open, err := booking.ParseClock(cfg.OpenTime)
    if err != nil {
        log.Fatalf("invalid VENUE_OPEN_TIME: %q", cfg.OpenTime)
    }
    close, err := booking.ParseClock(cfg.CloseTime)
    if err != nil {
        log.Fatalf("invalid VENUE_CLOSE_TIME: %q", cfg.CloseTime)
    }
    if close <= open {
        log.Fatalf("VENUE_CLOSE_TIME %q must be after VENUE_OPEN_TIME %q", cfg.CloseTime, cfg.OpenTime)
    }
    return booking.OperatingHours{OpenMinute: open, CloseMinute: close}
}

// parseEquipmentPrices turns an "item:rate,item:rate" string into a
// rate map.  Malformed entries are skipped rather than fatal so a typo
// in one item does not take the whole service down.
func parseEquipmentPrices(s string) map[string]float64 {
    prices := map[string]float64{}
    for _, entry := range strings.Split(s, ",") {
        entry = strings.TrimSpace(entry)
        if entry == "" {
            continue
        }
        item, rate, ok := strings.Cut(entry, ":")
        if !ok {
            continue
        }
        v, err := strconv.ParseFloat(strings.TrimSpace(rate), 64)
        if err != nil || v < 0 {
            continue
        }
        prices[strings.TrimSpace(item)] = v
    }
    return prices
}

func envFloat(key string, def float64) float64 {
    v := getenv(key, "")
    if v == "" {
        return def
    }
    if f, err := strconv.ParseFloat(v, 64); err == nil {
        return f
    }
    return def
}

func envInt(key string, def int) int {
    v := getenv(key, "")
    if v == "" {
        return def
    }
    if n, err := strconv.Atoi(v); err == nil {
        return n
    }
    return def
}
