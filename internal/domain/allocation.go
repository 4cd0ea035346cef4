package domain

import "time"

// LocationAllocation is the night distribution state for one selected
// location.
type LocationAllocation struct {
	Location string     `json:"location"`
	Nights   int        `json:"nights"`
	Skipped  bool       `json:"skipped"`
	CheckIn  *time.Time `json:"check_in,omitempty"`
	CheckOut *time.Time `json:"check_out,omitempty"`
}

// DefaultNights is the even-split default: floor(total / locations).
// Remainder nights stay unallocated; that shortfall is accepted, not an
// error.
func DefaultNights(nightsTotal, locationCount int) int {
	if locationCount <= 0 {
		return 0
	}
	return nightsTotal / locationCount
}

// AllocationPlan tracks nights and skip flags across the selected locations
// and enforces the night budget on explicit changes. Seeded defaults are
// advisory: they never count against the budget until the user touches them.
type AllocationPlan struct {
	nightsTotal int
	order       []string
	byLocation  map[string]*LocationAllocation
	explicit    map[string]bool
}

// NewAllocationPlan seeds every location with the even-split default.
func NewAllocationPlan(locations []string, nightsTotal int) *AllocationPlan {
	p := &AllocationPlan{
		nightsTotal: nightsTotal,
		order:       append([]string(nil), locations...),
		byLocation:  make(map[string]*LocationAllocation, len(locations)),
		explicit:    make(map[string]bool, len(locations)),
	}
	def := DefaultNights(nightsTotal, len(locations))
	for _, loc := range locations {
		p.byLocation[loc] = &LocationAllocation{Location: loc, Nights: def}
	}
	return p
}

// SetNights changes one location's nights. The change is rejected outright
// (no clamping, no partial apply) when it plus the other explicitly-set,
// non-skipped allocations would exceed the trip budget. Locations still on
// their seeded default do not block the change.
func (p *AllocationPlan) SetNights(location string, nights int) error {
	a, ok := p.byLocation[location]
	if !ok {
		return ErrUnknownLocation
	}
	if nights < 0 {
		return ErrNegativeInput
	}
	others := 0
	for loc, other := range p.byLocation {
		if loc == location || other.Skipped || !p.explicit[loc] {
			continue
		}
		others += other.Nights
	}
	if others+nights > p.nightsTotal {
		return ErrInvalidAllocation
	}
	a.Nights = nights
	p.explicit[location] = true
	return nil
}

// SetSkipped toggles a location's skip flag. Skipping zeroes its nights;
// un-skipping restores the even-split default regardless of how much budget
// the other locations already hold. That can overshoot the trip budget;
// the overshoot is kept for manual fix-up rather than silently clamped.
func (p *AllocationPlan) SetSkipped(location string, skipped bool) error {
	a, ok := p.byLocation[location]
	if !ok {
		return ErrUnknownLocation
	}
	a.Skipped = skipped
	if skipped {
		a.Nights = 0
	} else {
		a.Nights = DefaultNights(p.nightsTotal, len(p.order))
	}
	// Either way the location is back on engine-chosen nights.
	delete(p.explicit, location)
	return nil
}

// SetDates records per-location check-in/check-out. Dates are renderer
// context only; they never affect pricing.
func (p *AllocationPlan) SetDates(location string, checkIn, checkOut *time.Time) error {
	a, ok := p.byLocation[location]
	if !ok {
		return ErrUnknownLocation
	}
	a.CheckIn = checkIn
	a.CheckOut = checkOut
	return nil
}

// Get returns the allocation for a location.
func (p *AllocationPlan) Get(location string) (LocationAllocation, bool) {
	a, ok := p.byLocation[location]
	if !ok {
		return LocationAllocation{}, false
	}
	return *a, true
}

// All returns the allocations in itinerary order.
func (p *AllocationPlan) All() []LocationAllocation {
	out := make([]LocationAllocation, 0, len(p.order))
	for _, loc := range p.order {
		out = append(out, *p.byLocation[loc])
	}
	return out
}

// AllocatedNights sums nights over non-skipped locations.
func (p *AllocationPlan) AllocatedNights() int {
	total := 0
	for _, a := range p.byLocation {
		if !a.Skipped {
			total += a.Nights
		}
	}
	return total
}
