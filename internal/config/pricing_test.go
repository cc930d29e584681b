package config

import "testing"

func TestParseEquipmentPrices(t *testing.T) {
    prices := parseEquipmentPrices("racket:100, shoes:150,broken,towel:abc, net:-5,")
    if len(prices) != 2 {
        t.Fatalf("got %v, want exactly racket and shoes", prices)
    }
    if prices["racket"] != 100 || prices["shoes"] != 150 {
        t.Errorf("got %v", prices)
    }
}

func TestLoadPricingConfigDefaults(t *testing.T) {
    cfg := LoadPricingConfig()
    if cfg.BaseRate != 300 || cfg.IndoorPremium != 200 {
        t.Errorf("base rates: %+v", cfg)
    }
    if cfg.PeakStartHour != 18 || cfg.PeakEndHour != 21 || cfg.PeakMultiplier != 1.5 {
        t.Errorf("peak window: %+v", cfg)
    }
    if cfg.WeekendMultiplier != 1.2 || cfg.CoachHourlyRate != 400 {
        t.Errorf("multipliers: %+v", cfg)
    }
    if cfg.EquipmentPrices["racket"] != 100 || cfg.EquipmentPrices["shoes"] != 150 {
        t.Errorf("equipment defaults: %v", cfg.EquipmentPrices)
    }
}

func TestLoadPricingConfigOverrides(t *testing.T) {
    t.Setenv("PRICE_BASE_RATE", "250")
    t.Setenv("PRICE_PEAK_MULTIPLIER", "2.0")
    t.Setenv("PRICE_EQUIPMENT", "ball:20")

    cfg := LoadPricingConfig()
    if cfg.BaseRate != 250 {
        t.Errorf("BaseRate = %v, want 250", cfg.BaseRate)
    }
    if cfg.PeakMultiplier != 2.0 {
        t.Errorf("PeakMultiplier = %v, want 2.0", cfg.PeakMultiplier)
    }
    if cfg.EquipmentPrices["ball"] != 20 || len(cfg.EquipmentPrices) != 1 {
        t.Errorf("EquipmentPrices = %v", cfg.EquipmentPrices)
    }
}

func TestLoadOperatingHours(t *testing.T) {
    hours := LoadOperatingHours(Config{OpenTime: "06:00", CloseTime: "23:00"})
    if hours.OpenMinute != 360 || hours.CloseMinute != 1380 {
        t.Errorf("got %+v, want open=360 close=1380", hours)
    }
}
