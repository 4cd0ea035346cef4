package domain

// ManualReason says why the travel engine is in manual mode. When several
// conditions hold at once the highest-priority one is reported; they all
// suspend auto-lookup identically.
type ManualReason string

const (
	ManualNone     ManualReason = ""
	ManualDummy    ManualReason = "dummy_transport"
	ManualVehicle  ManualReason = "vehicle_class"
	ManualDuration ManualReason = "duration_out_of_range"
	ManualLocation ManualReason = "free_text_location"
)

// TravelInput is the user-entered travel costing state. One shared instance
// feeds all three tiers.
type TravelInput struct {
	From         string  `json:"from"`
	To           string  `json:"to"`
	FromFreeText bool    `json:"from_free_text"`
	ToFreeText   bool    `json:"to_free_text"`
	Vehicle      string  `json:"vehicle"`
	MarginPct    float64 `json:"margin_pct"` // user-editable, default 15
	ExtraCost    int64   `json:"extra_cost"`
	UseDummy     bool    `json:"use_dummy"`
	DummyCost    int64   `json:"dummy_cost"`
	ManualBase   int64   `json:"manual_base"` // last user-entered base in manual mode
}

// TravelCosting is the computed shared travel cost record.
type TravelCosting struct {
	From      string       `json:"from"`
	To        string       `json:"to"`
	Vehicle   string       `json:"vehicle"`
	Bucket    string       `json:"bucket,omitempty"`
	BaseCost  int64        `json:"base_cost"`
	MarginPct float64      `json:"margin_pct"`
	ExtraCost int64        `json:"extra_cost"`
	FinalCost int64        `json:"final_cost"`
	Manual    bool         `json:"manual"`
	Reason    ManualReason `json:"manual_reason,omitempty"`
	Rate      *TravelRate  `json:"rate,omitempty"` // matched catalog row, auto mode only
}

// travelManualReason applies the detection priority: dummy transport first,
// then vehicle class, duration range and free-text endpoints.
func travelManualReason(in TravelInput, nights int) ManualReason {
	switch {
	case in.UseDummy:
		return ManualDummy
	case IsManualVehicle(in.Vehicle):
		return ManualVehicle
	case nights > MaxBucketNights:
		return ManualDuration
	case in.FromFreeText || in.ToFreeText:
		return ManualLocation
	}
	return ManualNone
}

// computeTravelCosting derives the shared travel costing. In manual mode the
// base is the dummy cost or whatever the user last entered; auto mode looks
// the route up and resolves a missing row to 0, not an error.
func computeTravelCosting(tables *RateTables, in TravelInput, nights int) TravelCosting {
	tc := TravelCosting{
		From:      in.From,
		To:        in.To,
		Vehicle:   in.Vehicle,
		MarginPct: in.MarginPct,
		ExtraCost: in.ExtraCost,
	}

	if reason := travelManualReason(in, nights); reason != ManualNone {
		tc.Manual = true
		tc.Reason = reason
		if reason == ManualDummy {
			tc.BaseCost = in.DummyCost
		} else {
			tc.BaseCost = in.ManualBase
		}
	} else if bucket, ok := DurationBucket(nights); ok {
		tc.Bucket = bucket
		if rate, found := tables.TravelRateFor(in.From, in.To, in.Vehicle, bucket); found {
			r := rate
			tc.Rate = &r
			tc.BaseCost = rate.Payable
		}
	}

	tc.FinalCost = applyMargin(tc.BaseCost, in.MarginPct) + in.ExtraCost
	return tc
}
