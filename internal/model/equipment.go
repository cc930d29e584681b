package model

// EquipmentItem describes the total stock of one rentable item.  The
// quantity is the venue-wide capacity: at any instant the summed count
// of the item across overlapping bookings must not exceed it.
//
// Fields:
//  Item     – item name (e.g. "racket", "shoes").
//  Quantity – total units owned by the venue.
type EquipmentItem struct {
    Item     string // equipment.item
    Quantity int    // equipment.quantity
}
