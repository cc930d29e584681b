package model

// Court is a bookable playing surface.  Courts are part of the venue's
// fixed inventory and are only modified by seed or admin tooling.
//
// Fields:
//  CourtID – stable external identifier (e.g. "indoor_1").
//  Type    – court category, one of "indoor" or "outdoor".
type Court struct {
    CourtID string // courts.court_id
    Type    string // courts.court_type
}

// Court types recognised by the booking flow.
const (
    CourtTypeIndoor  = "indoor"
    CourtTypeOutdoor = "outdoor"
)
