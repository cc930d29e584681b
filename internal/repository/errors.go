// Package repository provides database access for bookings and the
// venue's fixed inventory of courts, coaches and equipment.  Sentinel
// errors defined here let handlers distinguish failure scenarios
// without inspecting driver-specific error values.
package repository

import "errors"

// ErrNotFound is returned when a lookup matches no row, e.g. asking
// for the stock of an equipment item the venue does not carry.
// Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")
