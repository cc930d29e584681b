package repository

import (
    "context"
    "database/sql"
    "time"

    "github.com/iliyamo/court-reservation/internal/model"
)

// BookingRepo provides persistence for bookings and their rented
// equipment.  A booking's equipment multiset lives in the
// booking_equipment table as per-item counts.  Dates are stored in a
// DATE column and handled in UTC throughout.
type BookingRepo struct {
    db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying handle so handlers can open transactions
// that span the availability checks and the final insert.
func (r *BookingRepo) DB() *sql.DB { return r.db }

// ListByDateTx returns every booking on the given date and locks the
// matching rows for the remainder of the transaction.  Running the
// availability checks and the insert against this locked snapshot
// serializes concurrent attempts per date, so two requests can never
// both observe "free" and both commit.
func (r *BookingRepo) ListByDateTx(ctx context.Context, tx *sql.Tx, date time.Time) ([]model.Booking, error) {
    const q = `SELECT id, court_id, booking_date, start_minute, end_minute, coach_id, price, created_at
               FROM bookings
               WHERE booking_date = ?
               ORDER BY id
               FOR UPDATE`
    rows, err := tx.QueryContext(ctx, q, date.Format("2006-01-02"))
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    bookings, err := scanBookings(rows)
    if err != nil {
        return nil, err
    }
    if err := r.attachEquipment(ctx, tx, bookings); err != nil {
        return nil, err
    }
    return bookings, nil
}

// CreateTx inserts a booking and its equipment rows within the scope of
// an existing transaction.  It populates the generated ID on the
// provided record.  The caller must commit or rollback; the booking and
// its equipment land together or not at all.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
    const q = `INSERT INTO bookings (court_id, booking_date, start_minute, end_minute, coach_id, price)
               VALUES (?, ?, ?, ?, ?, ?)`
    var coachID interface{}
    if b.CoachID != nil {
        coachID = *b.CoachID
    }
    result, err := tx.ExecContext(ctx, q,
        b.CourtID, b.Date.Format("2006-01-02"), b.StartMinute, b.EndMinute, coachID, b.Price)
    if err != nil {
        return err
    }
    id, err := result.LastInsertId()
    if err != nil {
        return err
    }
    b.ID = uint64(id)
    return r.createEquipmentBulkTx(ctx, tx, b.ID, b.Equipment)
}

// createEquipmentBulkTx inserts all equipment counts for a booking in a
// single statement.  Passing an empty map has no effect and returns nil.
func (r *BookingRepo) createEquipmentBulkTx(ctx context.Context, tx *sql.Tx, bookingID uint64, equipment map[string]int) error {
    if len(equipment) == 0 {
        return nil
    }
    query := `INSERT INTO booking_equipment (booking_id, item, qty) VALUES `
    args := make([]interface{}, 0, len(equipment)*3)
    first := true
    for item, qty := range equipment {
        if !first {
            query += ","
        }
        first = false
        query += "(?, ?, ?)"
        args = append(args, bookingID, item, qty)
    }
    _, err := tx.ExecContext(ctx, query, args...)
    return err
}

// ListAll returns every persisted booking ordered by date and start
// time.  It is used by the public bookings listing.
func (r *BookingRepo) ListAll(ctx context.Context) ([]model.Booking, error) {
    const q = `SELECT id, court_id, booking_date, start_minute, end_minute, coach_id, price, created_at
               FROM bookings
               ORDER BY booking_date, start_minute, id`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    bookings, err := scanBookings(rows)
    if err != nil {
        return nil, err
    }
    if err := r.attachEquipmentAll(ctx, bookings); err != nil {
        return nil, err
    }
    return bookings, nil
}

// scanBookings reads booking rows into models.  Equipment maps are left
// empty; callers attach them afterwards.
func scanBookings(rows *sql.Rows) ([]model.Booking, error) {
    var out []model.Booking
    for rows.Next() {
        var b model.Booking
        var coachID sql.NullString
        if err := rows.Scan(&b.ID, &b.CourtID, &b.Date, &b.StartMinute, &b.EndMinute, &coachID, &b.Price, &b.CreatedAt); err != nil {
            return nil, err
        }
        if coachID.Valid {
            cid := coachID.String
            b.CoachID = &cid
        }
        b.Equipment = map[string]int{}
        out = append(out, b)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

// attachEquipment loads equipment counts for the given bookings inside
// the transaction.  It queries by date via a join rather than building
// an IN list, which keeps the statement stable regardless of volume.
func (r *BookingRepo) attachEquipment(ctx context.Context, tx *sql.Tx, bookings []model.Booking) error {
    if len(bookings) == 0 {
        return nil
    }
    const q = `SELECT be.booking_id, be.item, be.qty
               FROM booking_equipment be
               JOIN bookings b ON b.id = be.booking_id
               WHERE b.booking_date = ?`
    rows, err := tx.QueryContext(ctx, q, bookings[0].Date.Format("2006-01-02"))
    if err != nil {
        return err
    }
    defer rows.Close()
    return fillEquipment(rows, bookings)
}

// attachEquipmentAll loads equipment counts for every booking.
func (r *BookingRepo) attachEquipmentAll(ctx context.Context, bookings []model.Booking) error {
    if len(bookings) == 0 {
        return nil
    }
    const q = `SELECT booking_id, item, qty FROM booking_equipment`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return err
    }
    defer rows.Close()
    return fillEquipment(rows, bookings)
}

func fillEquipment(rows *sql.Rows, bookings []model.Booking) error {
    byID := make(map[uint64]*model.Booking, len(bookings))
    for i := range bookings {
        byID[bookings[i].ID] = &bookings[i]
    }
    for rows.Next() {
        var bookingID uint64
        var item string
        var qty int
        if err := rows.Scan(&bookingID, &item, &qty); err != nil {
            return err
        }
        if b, ok := byID[bookingID]; ok {
            b.Equipment[item] = qty
        }
    }
    return rows.Err()
}
