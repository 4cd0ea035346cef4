package domain

import "time"

// Session holds one quotation being edited. Every mutation validates, applies
// and synchronously recomputes the full result, so Result is never stale.
// Sessions are not safe for concurrent use; callers serialize access.
type Session struct {
	tables *RateTables
	in     QuoteInput
	plan   *AllocationPlan
	res    QuoteResult
}

// NewSession validates the input, runs the initial computation and returns a
// session positioned on the result.
func NewSession(in QuoteInput, tables *RateTables) (*Session, error) {
	s := &Session{tables: tables, in: in}
	res, err := Compute(in, tables)
	if err != nil {
		return nil, err
	}
	s.res = res
	// Seed the plan entries directly: the computed allocations are already
	// accepted state (an unskip overshoot included), so the mutation-time
	// budget check must not re-run here.
	s.plan = NewAllocationPlan(res.Selection.Locations, res.Selection.NightsTotal)
	for _, a := range res.Allocations {
		*s.plan.byLocation[a.Location] = a
		if _, ok := in.Nights[a.Location]; ok {
			s.plan.explicit[a.Location] = true
		}
	}
	return s, nil
}

// Input returns a copy of the current input state.
func (s *Session) Input() QuoteInput { return s.in }

// Result returns the most recent computation.
func (s *Session) Result() QuoteResult { return s.res }

// syncPlan copies the allocation plan back into the input maps so the pure
// compute pass sees the same state the plan enforces. Only explicit overrides
// are written; locations on the seeded default stay out of the maps, so
// recreating a session from the input keeps them advisory.
func (s *Session) syncPlan() {
	nights := make(map[string]int)
	skipped := make(map[string]bool)
	for _, a := range s.plan.All() {
		if s.plan.explicit[a.Location] {
			nights[a.Location] = a.Nights
		}
		if a.Skipped {
			skipped[a.Location] = true
		}
	}
	s.in.Nights = nights
	s.in.Skipped = skipped
}

func (s *Session) recompute() error {
	res, err := Compute(s.in, s.tables)
	if err != nil {
		return err
	}
	// Entering manual travel mode discards any previously entered manual
	// base so a stale figure from an earlier manual episode never leaks in.
	if res.Travel.Manual && !s.res.Travel.Manual && s.in.Travel.ManualBase != 0 {
		s.in.Travel.ManualBase = 0
		res, err = Compute(s.in, s.tables)
		if err != nil {
			return err
		}
	}
	s.res = res
	// Dates live on the plan only; carry them onto the fresh allocations.
	if s.plan != nil {
		for i := range s.res.Allocations {
			if a, ok := s.plan.Get(s.res.Allocations[i].Location); ok {
				s.res.Allocations[i].CheckIn = a.CheckIn
				s.res.Allocations[i].CheckOut = a.CheckOut
			}
		}
	}
	return nil
}

// resetPlan reseeds the allocation plan with an even split over the current
// selection, dropping per-location overrides. Used when the selection itself
// changes.
func (s *Session) resetPlan() error {
	sel := SelectedLocations(s.in.Itinerary)
	if len(sel) == 0 {
		return ErrNoLocations
	}
	nights, _, err := ParseDurationLabel(s.in.Client.DurationLabel)
	if err != nil {
		return err
	}
	s.plan = NewAllocationPlan(sel, nights)
	s.syncPlan()
	return s.recompute()
}

// SetNights overrides a location's night count. Raising the count past the
// trip's night budget is rejected.
func (s *Session) SetNights(location string, nights int) error {
	if err := s.plan.SetNights(location, nights); err != nil {
		return err
	}
	s.syncPlan()
	return s.recompute()
}

// SetSkipped toggles a location's hotel skip. Un-skipping restores the even
// split, which may overshoot the budget; the overshoot is kept for the user
// to resolve.
func (s *Session) SetSkipped(location string, skipped bool) error {
	if err := s.plan.SetSkipped(location, skipped); err != nil {
		return err
	}
	s.syncPlan()
	return s.recompute()
}

// SetDates records check-in/check-out for a location. Dates do not affect
// pricing.
func (s *Session) SetDates(location string, checkIn, checkOut *time.Time) error {
	if err := s.plan.SetDates(location, checkIn, checkOut); err != nil {
		return err
	}
	s.syncPlan()
	return s.recompute()
}

// SetItinerary replaces the day plan. A changed location set reseeds the
// allocation to the even split.
func (s *Session) SetItinerary(days []ItineraryDay) error {
	prev := s.in.Itinerary
	s.in.Itinerary = days
	if err := s.resetPlan(); err != nil {
		s.in.Itinerary = prev
		return err
	}
	return nil
}

// SetDuration replaces the trip duration label, e.g. "3 Nights / 4 Days".
func (s *Session) SetDuration(label string) error {
	if _, _, err := ParseDurationLabel(label); err != nil {
		return err
	}
	prev := s.in.Client.DurationLabel
	s.in.Client.DurationLabel = label
	if err := s.resetPlan(); err != nil {
		s.in.Client.DurationLabel = prev
		return err
	}
	return nil
}

// SetClient replaces the client details. The room allocations and duration
// label inside it feed pricing; a changed duration reseeds the allocation.
func (s *Session) SetClient(c ClientDetails) error {
	if TotalRooms(c.RoomAllocations) < 1 {
		return ErrNoRooms
	}
	prev := s.in.Client
	s.in.Client = c
	if c.DurationLabel != prev.DurationLabel {
		if err := s.resetPlan(); err != nil {
			s.in.Client = prev
			return err
		}
		return nil
	}
	if err := s.recompute(); err != nil {
		s.in.Client = prev
		return err
	}
	return nil
}

// SetRequirements switches the requirements mode gating the final totals.
func (s *Session) SetRequirements(mode RequirementsMode) error {
	switch mode {
	case RequireAll, RequireRoomsOnly, RequireTravelOnly:
	default:
		return ErrBadRequirementsMode
	}
	s.in.Requirements = mode
	return s.recompute()
}

// SetTierExtra sets the additional hotel cost for one tier.
func (s *Session) SetTierExtra(tier PackageTier, extra int64) error {
	if extra < 0 {
		return ErrNegativeInput
	}
	if s.in.Tiers == nil {
		s.in.Tiers = make(map[PackageTier]TierInput)
	}
	ti := s.in.Tiers[tier]
	ti.ExtraCost = extra
	s.in.Tiers[tier] = ti
	return s.recompute()
}

// SetCustomHotel switches a tier to a manually priced hotel, bypassing the
// catalog derivation for that tier.
func (s *Session) SetCustomHotel(tier PackageTier, name string, base int64) error {
	if base < 0 {
		return ErrNegativeInput
	}
	if s.in.Tiers == nil {
		s.in.Tiers = make(map[PackageTier]TierInput)
	}
	ti := s.in.Tiers[tier]
	ti.Override = HotelOverride{Custom: true, HotelName: name, BaseCost: base}
	s.in.Tiers[tier] = ti
	return s.recompute()
}

// ClearCustomHotel returns a tier to catalog-derived pricing.
func (s *Session) ClearCustomHotel(tier PackageTier) error {
	if s.in.Tiers == nil {
		return s.recompute()
	}
	ti := s.in.Tiers[tier]
	ti.Override = HotelOverride{}
	s.in.Tiers[tier] = ti
	return s.recompute()
}

// SetTravelRoute sets the travel endpoints. Free-text flags mark endpoints
// typed outside the known location list, which forces manual travel pricing.
func (s *Session) SetTravelRoute(from, to string, fromFreeText, toFreeText bool) error {
	s.in.Travel.From = from
	s.in.Travel.To = to
	s.in.Travel.FromFreeText = fromFreeText
	s.in.Travel.ToFreeText = toFreeText
	return s.recompute()
}

// SetVehicle sets the vehicle class used for the travel lookup.
func (s *Session) SetVehicle(vehicle string) error {
	s.in.Travel.Vehicle = vehicle
	return s.recompute()
}

// SetTravelMargin sets the travel margin percentage, 0 to 100.
func (s *Session) SetTravelMargin(pct float64) error {
	if pct < 0 || pct > 100 {
		return ErrBadMargin
	}
	s.in.Travel.MarginPct = pct
	return s.recompute()
}

// SetTravelExtra sets the additional travel cost.
func (s *Session) SetTravelExtra(extra int64) error {
	if extra < 0 {
		return ErrNegativeInput
	}
	s.in.Travel.ExtraCost = extra
	return s.recompute()
}

// SetDummy toggles placeholder transport with a manually entered cost.
func (s *Session) SetDummy(use bool, cost int64) error {
	if cost < 0 {
		return ErrNegativeInput
	}
	s.in.Travel.UseDummy = use
	s.in.Travel.DummyCost = cost
	return s.recompute()
}

// SetManualBase sets the base travel cost while in manual mode.
func (s *Session) SetManualBase(base int64) error {
	if base < 0 {
		return ErrNegativeInput
	}
	s.in.Travel.ManualBase = base
	return s.recompute()
}
