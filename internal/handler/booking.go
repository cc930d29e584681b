package handler

import (
    "errors"
    "fmt"
    "net/http"
    "sort"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/court-reservation/internal/booking"
    "github.com/iliyamo/court-reservation/internal/model"
    "github.com/iliyamo/court-reservation/internal/queue"
    "github.com/iliyamo/court-reservation/internal/repository"
    queue_publisher "github.com/iliyamo/court-reservation/internal/service"
)

// BookingHandler groups the repositories and the immutable pricing and
// operating-hours configuration needed to quote and confirm bookings.
// The Book method is the orchestrator: it runs validation, the
// availability checks, coach allocation and pricing in order, exiting
// on the first failure, and performs the final insert inside a
// transaction that locks the date's bookings so concurrent requests
// cannot double-book a resource.
type BookingHandler struct {
    BookingRepo   *repository.BookingRepo   // bookings and their equipment rows
    CourtRepo     *repository.CourtRepo     // court inventory lookups
    CoachRepo     *repository.CoachRepo     // active coach pool
    EquipmentRepo *repository.EquipmentRepo // equipment stock levels
    Pricing       booking.PricingConfig     // frozen rate card
    Hours         booking.OperatingHours    // venue open/close bounds
}

// NewBookingHandler constructs a BookingHandler with the provided
// repositories and configuration.  All repositories must be non-nil.
func NewBookingHandler(bookingRepo *repository.BookingRepo, courtRepo *repository.CourtRepo, coachRepo *repository.CoachRepo, equipmentRepo *repository.EquipmentRepo, pricing booking.PricingConfig, hours booking.OperatingHours) *BookingHandler {
    if bookingRepo == nil || courtRepo == nil || coachRepo == nil || equipmentRepo == nil {
        panic("nil repository passed to NewBookingHandler")
    }
    return &BookingHandler{
        BookingRepo:   bookingRepo,
        CourtRepo:     courtRepo,
        CoachRepo:     coachRepo,
        EquipmentRepo: equipmentRepo,
        Pricing:       pricing,
        Hours:         hours,
    }
}

// Price handles POST /price.  It validates the request, rejects slots
// outside operating hours, and returns the price breakdown without
// touching availability — quoting never requires the slot to be free.
func (h *BookingHandler) Price(c echo.Context) error {
    var req booking.Request
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if err := req.Validate(); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }
    slot, _ := req.Interval()
    if !h.Hours.Contains(slot) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": h.hoursMessage()})
    }
    date, _ := req.ParseDate()
    breakdown := h.Pricing.Quote(req.CourtType, date, slot, req.EquipmentCounts(), req.Coach)
    return c.JSON(http.StatusOK, breakdown)
}

// Book handles POST /book.  The request moves through a fixed pipeline:
// validate, operating hours, court resolution, court availability,
// per-item equipment availability, optional coach allocation, pricing,
// and a single transactional insert.  The first failing step declines
// the request; a decline is an expected outcome, not a server fault.
func (h *BookingHandler) Book(c echo.Context) error {
    var req booking.Request
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if err := req.Validate(); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }
    slot, _ := req.Interval()
    if !h.Hours.Contains(slot) {
        return c.JSON(http.StatusConflict, echo.Map{"error": h.hoursMessage()})
    }
    date, _ := req.ParseDate()
    ctx := c.Request().Context()

    // Resolve the court type to a concrete court.  Conflicts below are
    // keyed on this specific court id.
    court, err := h.CourtRepo.FirstByType(ctx, req.CourtType)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": booking.ErrNoCourtOfType.Error()})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }

    tx, err := h.BookingRepo.DB().BeginTx(ctx, nil)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()

    // Lock and load every booking on the date.  All checks below run
    // against this snapshot, and the insert commits against the same
    // locked rows, so check-then-act is atomic per date.
    existing, err := h.BookingRepo.ListByDateTx(ctx, tx, date)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }

    if !booking.CourtFree(court.CourtID, slot, existing) {
        return c.JSON(http.StatusConflict, echo.Map{"error": booking.ErrCourtConflict.Error()})
    }

    counts := req.EquipmentCounts()
    for _, item := range sortedItems(counts) {
        total, err := h.EquipmentRepo.Quantity(ctx, item)
        if err != nil && !errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
        }
        // Unknown items have zero stock and decline like any shortage.
        if err != nil || !booking.EquipmentAvailable(item, counts[item], total, slot, existing) {
            unavailable := &booking.EquipmentUnavailableError{Item: item}
            return c.JSON(http.StatusConflict, echo.Map{"error": unavailable.Error()})
        }
    }

    var coachID *string
    if req.Coach {
        pool, err := h.CoachRepo.ListActive(ctx)
        if err != nil {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
        }
        assigned, ok := booking.AssignCoach(slot, pool, existing)
        if !ok {
            return c.JSON(http.StatusConflict, echo.Map{"error": booking.ErrNoCoachAvailable.Error()})
        }
        coachID = &assigned
    }

    breakdown := h.Pricing.Quote(req.CourtType, date, slot, counts, coachID != nil)

    record := &model.Booking{
        CourtID:     court.CourtID,
        Date:        date,
        StartMinute: slot.StartMinute,
        EndMinute:   slot.EndMinute,
        Equipment:   counts,
        CoachID:     coachID,
        Price:       breakdown.TotalPrice,
    }
    if err := h.BookingRepo.CreateTx(ctx, tx, record); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create booking"})
    }
    if err := tx.Commit(); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
    }
    committed = true

    // Publish the confirmation event for downstream consumers.  A
    // broker outage must never fail a booking that already committed.
    _ = queue_publisher.PublishBookingConfirmed(ctx, queue.BookingConfirmedEvent{
        BookingID:     record.ID,
        CourtID:       record.CourtID,
        CourtType:     court.Type,
        Date:          req.Date,
        StartTime:     slot.StartClock(),
        Hours:         slot.Hours(),
        Equipment:     expandEquipment(counts),
        CoachAssigned: coachID,
        TotalPrice:    breakdown.TotalPrice,
        ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
    })

    return c.JSON(http.StatusCreated, echo.Map{
        "message":        "Booking confirmed",
        "booking_id":     record.ID,
        "coach_assigned": coachID,
        "total_price":    breakdown.TotalPrice,
    })
}

// bookingView is the public shape of a persisted booking.  Internal
// identifiers stay out of the listing.
type bookingView struct {
    Court      string   `json:"court"`
    Date       string   `json:"date"`
    StartTime  string   `json:"start_time"`
    Hours      int      `json:"hours"`
    Equipment  []string `json:"equipment"`
    Coach      *string  `json:"coach"`
    TotalPrice float64  `json:"total_price"`
}

// List handles GET /bookings.  It returns every persisted booking with
// equipment expanded back into the multiset form used by requests.
func (h *BookingHandler) List(c echo.Context) error {
    bookings, err := h.BookingRepo.ListAll(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]bookingView, 0, len(bookings))
    for _, b := range bookings {
        slot := booking.Interval{StartMinute: b.StartMinute, EndMinute: b.EndMinute}
        out = append(out, bookingView{
            Court:      b.CourtID,
            Date:       b.Date.Format("2006-01-02"),
            StartTime:  slot.StartClock(),
            Hours:      slot.Hours(),
            Equipment:  expandEquipment(b.Equipment),
            Coach:      b.CoachID,
            TotalPrice: b.Price,
        })
    }
    return c.JSON(http.StatusOK, out)
}

// hoursMessage formats the operating-hours rejection in clock terms.
func (h *BookingHandler) hoursMessage() string {
    open := booking.Interval{StartMinute: h.Hours.OpenMinute}
    close := booking.Interval{StartMinute: h.Hours.CloseMinute}
    return fmt.Sprintf("Bookings allowed only between %s and %s", open.StartClock(), close.StartClock())
}

// sortedItems returns the equipment item names in stable order so the
// first insufficient item is deterministic.
func sortedItems(counts map[string]int) []string {
    items := make([]string, 0, len(counts))
    for item := range counts {
        items = append(items, item)
    }
    sort.Strings(items)
    return items
}

// expandEquipment renders per-item counts back into the flat multiset
// list used by the request body.
func expandEquipment(counts map[string]int) []string {
    out := make([]string, 0, len(counts))
    for _, item := range sortedItems(counts) {
        for i := 0; i < counts[item]; i++ {
            out = append(out, item)
        }
    }
    return out
}
