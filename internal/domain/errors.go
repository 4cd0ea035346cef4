package domain

import "errors"

var (
	// ErrNotFound is returned by repositories when a requested row is absent.
	ErrNotFound = errors.New("not found")

	// ErrInvalidAllocation rejects a night distribution that would exceed the
	// trip's total night budget. The prior allocation is kept as-is.
	ErrInvalidAllocation = errors.New("night allocation exceeds trip budget")

	// ErrNegativeInput rejects user-entered amounts below zero at the boundary.
	ErrNegativeInput = errors.New("amount cannot be negative")

	// ErrBadDurationLabel means the trip duration string could not be parsed
	// (expected something like "3 Nights / 4 Days").
	ErrBadDurationLabel = errors.New("malformed duration label")

	// ErrNoLocations means the itinerary selects no locations at all.
	ErrNoLocations = errors.New("itinerary has no locations")

	// ErrNoRooms means the room allocations sum to zero rooms.
	ErrNoRooms = errors.New("room allocations sum to zero")

	// ErrUnknownLocation is returned when an allocation change names a
	// location that is not part of the current itinerary selection.
	ErrUnknownLocation = errors.New("location not in itinerary")

	// ErrBadMargin rejects a travel margin outside [0, 100].
	ErrBadMargin = errors.New("margin percentage out of range")

	// ErrBadRequirementsMode rejects a requirements mode outside the known
	// set (all, rooms_only, travel_only).
	ErrBadRequirementsMode = errors.New("unknown requirements mode")
)
