package domain

import "math"

const hotelMarginPct = 15 // fixed for hotel costing, not user-editable

// HotelOverride is the custom-hotel variant for one tier. When Custom is set
// the per-location derivation does not run at all; BaseCost is whatever the
// user entered.
type HotelOverride struct {
	Custom    bool   `json:"custom"`
	HotelName string `json:"hotel_name,omitempty"`
	BaseCost  int64  `json:"base_cost,omitempty"`
}

// TierInput is the user-entered state for one tier's hotel costing.
type TierInput struct {
	Override  HotelOverride `json:"override"`
	ExtraCost int64         `json:"extra_cost"`
}

// LocationCost is one line of the per-location hotel breakdown.
type LocationCost struct {
	Location string  `json:"location"`
	Nights   int     `json:"nights"`
	AvgRate  float64 `json:"avg_rate"`
	Cost     int64   `json:"cost"`
}

// HotelCosting is the computed hotel cost record for one tier.
type HotelCosting struct {
	Tier            PackageTier    `json:"tier"`
	BaseCost        int64          `json:"base_cost"`
	MarginPct       int64          `json:"margin_pct"`
	ExtraCost       int64          `json:"extra_cost"`
	FinalCost       int64          `json:"final_cost"`
	CustomHotel     bool           `json:"custom_hotel"`
	CustomHotelName string         `json:"custom_hotel_name,omitempty"`
	Locations       []LocationCost `json:"locations,omitempty"`
}

// perLocationHotelCost prices one non-skipped location for a tier:
// round((avgRate + premium) × rooms × nights). A location with no catalog
// match prices at 0, surfaced as a zero cost rather than an error.
func perLocationHotelCost(tables *RateTables, location string, tier PackageTier, rooms, nights int) (float64, int64) {
	avg := tables.AvgHotelRate(location, tier)
	if avg <= 0 || rooms <= 0 || nights <= 0 {
		return avg, 0
	}
	adjusted := avg + float64(nightlyPremium[tier])
	return avg, int64(math.Round(adjusted * float64(rooms) * float64(nights)))
}

// computeHotelCosting derives one tier's hotel costing from the allocation
// state, or takes the override branch wholesale when a custom hotel is set.
func computeHotelCosting(tables *RateTables, tier PackageTier, allocs []LocationAllocation, rooms int, in TierInput) HotelCosting {
	hc := HotelCosting{
		Tier:      tier,
		MarginPct: hotelMarginPct,
		ExtraCost: in.ExtraCost,
	}

	if in.Override.Custom {
		hc.CustomHotel = true
		hc.CustomHotelName = in.Override.HotelName
		hc.BaseCost = in.Override.BaseCost
	} else {
		for _, a := range allocs {
			if a.Skipped {
				continue
			}
			avg, cost := perLocationHotelCost(tables, a.Location, tier, rooms, a.Nights)
			hc.Locations = append(hc.Locations, LocationCost{
				Location: a.Location,
				Nights:   a.Nights,
				AvgRate:  avg,
				Cost:     cost,
			})
			hc.BaseCost += cost
		}
	}

	// Margin applies to the base alone; extra cost is never margined.
	hc.FinalCost = applyMargin(hc.BaseCost, float64(hotelMarginPct)) + in.ExtraCost
	return hc
}

// applyMargin rounds base × (1 + pct/100) to whole rupees.
func applyMargin(base int64, pct float64) int64 {
	return int64(math.Round(float64(base) * (1 + pct/100)))
}
