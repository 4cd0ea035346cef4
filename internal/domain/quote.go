package domain

// DefaultTravelMargin is the travel margin percentage applied when the
// caller does not supply one.
const DefaultTravelMargin = 15

// QuoteInput is the complete input state of one quotation computation: trip
// parameters plus every user-entered override. It is plain data so the
// compute pass stays a pure function over it.
type QuoteInput struct {
	Client       ClientDetails             `json:"client"`
	Itinerary    []ItineraryDay            `json:"itinerary"`
	Requirements RequirementsMode          `json:"requirements"`
	Nights       map[string]int            `json:"nights,omitempty"`  // per-location override of the even split
	Skipped      map[string]bool           `json:"skipped,omitempty"` // per-location hotel skip
	Travel       TravelInput               `json:"travel"`
	Tiers        map[PackageTier]TierInput `json:"tiers,omitempty"`
}

// FinalCosting is the aggregated result for one tier. Contributions are
// zero-forced here per the requirements mode; the upstream records keep
// their computed values.
type FinalCosting struct {
	Tier       PackageTier `json:"tier"`
	HotelCost  int64       `json:"hotel_cost"`
	TravelCost int64       `json:"travel_cost"`
	TotalCost  int64       `json:"total_cost"`
}

// QuoteResult is the full computed output set: always fully defined for any
// valid input, never a partial failure.
type QuoteResult struct {
	Selection    TripSelection        `json:"selection"`
	Requirements RequirementsMode     `json:"requirements"`
	Allocations  []LocationAllocation `json:"allocations"`
	Hotel        []HotelCosting       `json:"hotel"`
	Travel       TravelCosting        `json:"travel"`
	Final        []FinalCosting       `json:"final"`
}

// HotelFor returns the hotel costing record for a tier.
func (r QuoteResult) HotelFor(tier PackageTier) HotelCosting {
	for _, h := range r.Hotel {
		if h.Tier == tier {
			return h
		}
	}
	return HotelCosting{Tier: tier}
}

// FinalFor returns the aggregated costing for a tier.
func (r QuoteResult) FinalFor(tier PackageTier) FinalCosting {
	for _, f := range r.Final {
		if f.Tier == tier {
			return f
		}
	}
	return FinalCosting{Tier: tier}
}

func validateInput(in QuoteInput) error {
	switch in.Requirements {
	case "", RequireAll, RequireRoomsOnly, RequireTravelOnly:
	default:
		return ErrBadRequirementsMode
	}
	if in.Travel.MarginPct < 0 || in.Travel.MarginPct > 100 {
		return ErrBadMargin
	}
	if in.Travel.ExtraCost < 0 || in.Travel.DummyCost < 0 || in.Travel.ManualBase < 0 {
		return ErrNegativeInput
	}
	for _, ra := range in.Client.RoomAllocations {
		if ra.RoomCount < 0 {
			return ErrNegativeInput
		}
	}
	for _, ti := range in.Tiers {
		if ti.ExtraCost < 0 || ti.Override.BaseCost < 0 {
			return ErrNegativeInput
		}
	}
	for _, n := range in.Nights {
		if n < 0 {
			return ErrNegativeInput
		}
	}
	return nil
}

// Compute runs one full dependency-ordered pricing pass:
// selection → allocation → {hotel, travel} → final aggregation.
// It mutates nothing and recomputing with unchanged inputs yields identical
// output.
func Compute(in QuoteInput, tables *RateTables) (QuoteResult, error) {
	if err := validateInput(in); err != nil {
		return QuoteResult{}, err
	}

	nights, days, err := ParseDurationLabel(in.Client.DurationLabel)
	if err != nil {
		return QuoteResult{}, err
	}
	locations := SelectedLocations(in.Itinerary)
	if len(locations) == 0 {
		return QuoteResult{}, ErrNoLocations
	}
	rooms := TotalRooms(in.Client.RoomAllocations)
	if rooms < 1 {
		return QuoteResult{}, ErrNoRooms
	}

	mode := in.Requirements
	if mode == "" {
		mode = RequireAll
	}

	sel := TripSelection{
		Locations:   locations,
		NightsTotal: nights,
		DaysTotal:   days,
		RoomCount:   rooms,
		Vehicle:     in.Travel.Vehicle,
	}

	// Allocation: even split unless the input carries explicit state. The
	// explicit values are applied as-is; budget enforcement happens at
	// mutation time (Session.SetNights), not here, so an accepted overshoot
	// from un-skipping survives the recompute.
	def := DefaultNights(nights, len(locations))
	allocs := make([]LocationAllocation, 0, len(locations))
	for _, loc := range locations {
		a := LocationAllocation{Location: loc, Nights: def}
		if n, ok := in.Nights[loc]; ok {
			a.Nights = n
		}
		if in.Skipped[loc] {
			a.Skipped = true
			a.Nights = 0
		}
		allocs = append(allocs, a)
	}

	travel := computeTravelCosting(tables, in.Travel, nights)

	res := QuoteResult{
		Selection:    sel,
		Requirements: mode,
		Allocations:  allocs,
		Travel:       travel,
	}
	for _, tier := range Tiers() {
		hc := computeHotelCosting(tables, tier, allocs, rooms, in.Tiers[tier])
		res.Hotel = append(res.Hotel, hc)

		fc := FinalCosting{Tier: tier}
		if mode != RequireTravelOnly {
			fc.HotelCost = hc.FinalCost
		}
		if mode != RequireRoomsOnly {
			fc.TravelCost = travel.FinalCost
		}
		fc.TotalCost = fc.HotelCost + fc.TravelCost
		res.Final = append(res.Final, fc)
	}
	return res, nil
}
