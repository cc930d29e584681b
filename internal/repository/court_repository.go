package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/court-reservation/internal/model"
)

// CourtRepo reads the venue's court inventory.  Courts are seeded by
// admin tooling and never modified by the booking flow.
type CourtRepo struct {
    db *sql.DB
}

// NewCourtRepo returns a new CourtRepo bound to the given database.
func NewCourtRepo(db *sql.DB) *CourtRepo { return &CourtRepo{db: db} }

// FirstByType resolves a court type to a concrete court, taking the
// first court id in stable order.  Conflict checks downstream are keyed
// on this specific court id.  Returns ErrNotFound when no court of the
// type is configured.
func (r *CourtRepo) FirstByType(ctx context.Context, courtType string) (*model.Court, error) {
    const q = `SELECT court_id, court_type FROM courts WHERE court_type = ? ORDER BY court_id LIMIT 1`
    var c model.Court
    err := r.db.QueryRowContext(ctx, q, courtType).Scan(&c.CourtID, &c.Type)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return &c, nil
}
