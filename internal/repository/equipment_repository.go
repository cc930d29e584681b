package repository

import (
    "context"
    "database/sql"
    "errors"
)

// EquipmentRepo reads the venue's equipment stock levels.
type EquipmentRepo struct {
    db *sql.DB
}

// NewEquipmentRepo returns a new EquipmentRepo bound to the given database.
func NewEquipmentRepo(db *sql.DB) *EquipmentRepo { return &EquipmentRepo{db: db} }

// Quantity returns the total stock of one item.  Returns ErrNotFound
// for items the venue does not carry; callers treat that the same as
// zero stock.
func (r *EquipmentRepo) Quantity(ctx context.Context, item string) (int, error) {
    const q = `SELECT quantity FROM equipment WHERE item = ?`
    var qty int
    err := r.db.QueryRowContext(ctx, q, item).Scan(&qty)
    if errors.Is(err, sql.ErrNoRows) {
        return 0, ErrNotFound
    }
    if err != nil {
        return 0, err
    }
    return qty, nil
}
