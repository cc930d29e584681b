package repository

import (
    "context"
    "database/sql"

    "github.com/iliyamo/court-reservation/internal/model"
)

// CoachRepo reads the coaching pool.  Only the active flag matters to
// the booking flow; everything else about coaches is admin territory.
type CoachRepo struct {
    db *sql.DB
}

// NewCoachRepo returns a new CoachRepo bound to the given database.
func NewCoachRepo(db *sql.DB) *CoachRepo { return &CoachRepo{db: db} }

// ListActive returns all coaches currently accepting assignments,
// ordered by coach id so allocation tie-breaks are deterministic.
func (r *CoachRepo) ListActive(ctx context.Context) ([]model.Coach, error) {
    const q = `SELECT coach_id, active FROM coaches WHERE active = 1 ORDER BY coach_id`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var out []model.Coach
    for rows.Next() {
        var c model.Coach
        if err := rows.Scan(&c.CoachID, &c.Active); err != nil {
            return nil, err
        }
        out = append(out, c)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}
