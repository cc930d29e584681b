package handler

import (
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "reflect"
    "strings"
    "testing"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/court-reservation/internal/booking"
)

// priceHandler builds a handler with just enough state for the /price
// endpoint, which never touches the repositories.
func priceHandler() *BookingHandler {
    return &BookingHandler{
        Pricing: booking.PricingConfig{
            BaseRate:          300,
            IndoorPremium:     200,
            PeakStartHour:     18,
            PeakEndHour:       21,
            PeakMultiplier:    1.5,
            WeekendMultiplier: 1.2,
            EquipmentPrices:   map[string]float64{"racket": 100, "shoes": 150},
            CoachHourlyRate:   400,
        },
        Hours: booking.OperatingHours{OpenMinute: 360, CloseMinute: 1380},
    }
}

func postPrice(t *testing.T, body string) *httptest.ResponseRecorder {
    t.Helper()
    e := echo.New()
    req := httptest.NewRequest(http.MethodPost, "/price", strings.NewReader(body))
    req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    rec := httptest.NewRecorder()
    if err := priceHandler().Price(e.NewContext(req, rec)); err != nil {
        t.Fatalf("handler returned error: %v", err)
    }
    return rec
}

func TestPricePeakWeekendIndoor(t *testing.T) {
    rec := postPrice(t, `{"court_type":"indoor","start_time":"19:00","date":"2024-06-15","hours":1}`)
    if rec.Code != http.StatusOK {
        t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
    }
    var got booking.PriceBreakdown
    if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
        t.Fatalf("bad response body: %v", err)
    }
    if got.TotalPrice != 900 {
        t.Errorf("TotalPrice = %v, want 900", got.TotalPrice)
    }
}

func TestPriceWithEquipmentAndCoach(t *testing.T) {
    rec := postPrice(t, `{"court_type":"outdoor","start_time":"10:00","date":"2024-06-12","hours":2,"equipment":["racket","racket"],"coach":true}`)
    if rec.Code != http.StatusOK {
        t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
    }
    var got booking.PriceBreakdown
    if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
        t.Fatalf("bad response body: %v", err)
    }
    // 2h x 300 base + 200 equipment (flat) + 2h x 400 coach.
    if got.TotalPrice != 1600 {
        t.Errorf("TotalPrice = %v, want 1600", got.TotalPrice)
    }
}

func TestPriceMissingFields(t *testing.T) {
    rec := postPrice(t, `{"court_type":"indoor","hours":1}`)
    if rec.Code != http.StatusBadRequest {
        t.Errorf("status = %d, want 400", rec.Code)
    }
}

func TestPriceOutsideOperatingHours(t *testing.T) {
    rec := postPrice(t, `{"court_type":"indoor","start_time":"05:00","date":"2024-06-15","hours":1}`)
    if rec.Code != http.StatusBadRequest {
        t.Errorf("status = %d, want 400", rec.Code)
    }
    rec = postPrice(t, `{"court_type":"indoor","start_time":"22:00","date":"2024-06-15","hours":2}`)
    if rec.Code != http.StatusBadRequest {
        t.Errorf("slot past closing: status = %d, want 400", rec.Code)
    }
}

func TestExpandEquipment(t *testing.T) {
    got := expandEquipment(map[string]int{"shoes": 1, "racket": 2})
    want := []string{"racket", "racket", "shoes"}
    if !reflect.DeepEqual(got, want) {
        t.Errorf("expandEquipment = %v, want %v", got, want)
    }
    if got := expandEquipment(nil); len(got) != 0 {
        t.Errorf("expandEquipment(nil) = %v, want empty", got)
    }
}
