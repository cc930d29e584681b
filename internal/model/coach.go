package model

// Coach is a member of the coaching pool.  Only active coaches are
// considered for assignment; the flag lets admins take a coach out of
// rotation without deleting history that references them.
//
// Fields:
//  CoachID – stable external identifier (e.g. "coach_1").
//  Active  – whether the coach currently accepts assignments.
type Coach struct {
    CoachID string // coaches.coach_id
    Active  bool   // coaches.active
}
