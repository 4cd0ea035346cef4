package domain_test

import (
	"errors"
	"reflect"
	"testing"

	"toorizo_quote/internal/domain"
)

// ---- fixtures ----

func testTables() *domain.RateTables {
	hotels := []domain.HotelRate{
		{Location: "OOTY", Tier: domain.TierStandard, Hotel: "Hill Crest", RoomType: "Deluxe", NightlyRate: 1000},
		{Location: "OOTY", Tier: domain.TierStandard, Hotel: "Green Nest", RoomType: "Deluxe", NightlyRate: 1200},
		{Location: "OOTY", Tier: domain.TierComfort, Hotel: "Pine Grove", RoomType: "Premium", NightlyRate: 2000},
		{Location: "OOTY", Tier: domain.TierLuxury, Hotel: "Savoy Crown", RoomType: "Suite", NightlyRate: 3600},
		{Location: "COORG", Tier: domain.TierStandard, Hotel: "Misty Court", RoomType: "Deluxe", NightlyRate: 1100},
		{Location: "COORG", Tier: domain.TierComfort, Hotel: "Coffee Bloom", RoomType: "Premium", NightlyRate: 1900},
		{Location: "COORG", Tier: domain.TierLuxury, Hotel: "Orange County", RoomType: "Villa", NightlyRate: 4200},
	}
	travel := []domain.TravelRate{
		{From: "BANGALORE", To: "OOTY", Vehicle: "SEDAN", Bucket: "1N2D", Km: 620, Bata: 900, Permit: 700, Tolls: 400, PerKm: 11, Payable: 8700},
		{From: "BANGALORE", To: "OOTY", Vehicle: "SEDAN", Bucket: "2N3D", Km: 680, Bata: 1350, Permit: 700, Tolls: 400, PerKm: 11, Payable: 10600},
		{From: "BANGALORE", To: "COORG", Vehicle: "SUV", Bucket: "3N4D", Km: 760, Bata: 1800, Permit: 500, Tolls: 300, PerKm: 14, Payable: 14200},
	}
	return domain.NewRateTables(hotels, travel)
}

func baseInput() domain.QuoteInput {
	return domain.QuoteInput{
		Client: domain.ClientDetails{
			Name:            "Meera Nair",
			DurationLabel:   "4 Nights / 5 Days",
			Adults:          2,
			RoomAllocations: []domain.RoomAllocation{{RoomType: "Deluxe", RoomCount: 1}},
		},
		Itinerary: []domain.ItineraryDay{
			{Day: 1, Location: "OOTY", Title: "Arrival"},
			{Day: 2, Location: "OOTY", Title: "Sightseeing"},
			{Day: 3, Location: "COORG", Title: "Transfer"},
			{Day: 4, Location: "COORG", Title: "Plantation walk"},
		},
		Travel: domain.TravelInput{
			From: "BANGALORE", To: "OOTY", Vehicle: "SEDAN",
			MarginPct: domain.DefaultTravelMargin,
		},
	}
}

// ---- hotel costing ----

func TestCompute_StandardHotelCosting(t *testing.T) {
	res, err := domain.Compute(baseInput(), testTables())
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	hc := res.HotelFor(domain.TierStandard)
	// OOTY avg 1100 +1000 premium × 1 room × 2 nights = 4200,
	// COORG 1100 +1000 × 1 × 2 = 4200.
	if hc.BaseCost != 8400 {
		t.Fatalf("standard base: got %d want 8400", hc.BaseCost)
	}
	if hc.FinalCost != 9660 {
		t.Fatalf("standard final: got %d want 9660", hc.FinalCost)
	}
	if len(hc.Locations) != 2 {
		t.Fatalf("breakdown rows: %+v", hc.Locations)
	}
	if hc.Locations[0].Location != "OOTY" || hc.Locations[0].Nights != 2 || hc.Locations[0].AvgRate != 1100 {
		t.Fatalf("OOTY row: %+v", hc.Locations[0])
	}
}

func TestCompute_TiersPricedIndependently(t *testing.T) {
	res, err := domain.Compute(baseInput(), testTables())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	// Comfort: (2000+700)×2 + (1900+700)×2 = 10600.
	if hc := res.HotelFor(domain.TierComfort); hc.BaseCost != 10600 {
		t.Fatalf("comfort base: got %d", hc.BaseCost)
	}
	// Luxury: (3600+700)×2 + (4200+700)×2 = 18400.
	if hc := res.HotelFor(domain.TierLuxury); hc.BaseCost != 18400 {
		t.Fatalf("luxury base: got %d", hc.BaseCost)
	}
}

func TestCompute_CustomHotelBypassesDerivation(t *testing.T) {
	in := baseInput()
	in.Tiers = map[domain.PackageTier]domain.TierInput{
		domain.TierStandard: {
			Override:  domain.HotelOverride{Custom: true, HotelName: "Lake View Manor", BaseCost: 12000},
			ExtraCost: 500,
		},
	}
	res, err := domain.Compute(in, testTables())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	hc := res.HotelFor(domain.TierStandard)
	if !hc.CustomHotel || hc.CustomHotelName != "Lake View Manor" {
		t.Fatalf("override not applied: %+v", hc)
	}
	if hc.BaseCost != 12000 {
		t.Fatalf("base: got %d want 12000", hc.BaseCost)
	}
	// 12000 × 1.15 = 13800, +500 extra (never margined).
	if hc.FinalCost != 14300 {
		t.Fatalf("final: got %d want 14300", hc.FinalCost)
	}
	if hc.Locations != nil {
		t.Fatalf("override tier must not carry a breakdown: %+v", hc.Locations)
	}
	// Other tiers stay catalog-derived.
	if res.HotelFor(domain.TierComfort).CustomHotel {
		t.Fatal("comfort tier leaked the override")
	}
}

func TestCompute_SkippedLocationContributesZero(t *testing.T) {
	in := baseInput()
	in.Skipped = map[string]bool{"COORG": true}
	res, err := domain.Compute(in, testTables())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	hc := res.HotelFor(domain.TierStandard)
	if hc.BaseCost != 4200 {
		t.Fatalf("base with COORG skipped: got %d want 4200", hc.BaseCost)
	}
	for _, lc := range hc.Locations {
		if lc.Location == "COORG" {
			t.Fatalf("skipped location in breakdown: %+v", lc)
		}
	}
}

func TestCompute_LocationAliasing(t *testing.T) {
	in := baseInput()
	in.Itinerary = []domain.ItineraryDay{{Day: 1, Location: "CHIKMAGALUR"}}
	in.Client.DurationLabel = "2 Nights / 3 Days"
	res, err := domain.Compute(in, testTables())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	// CHIKMAGALUR prices with OOTY's rates: (1100+1000)×1×2 = 4200.
	hc := res.HotelFor(domain.TierStandard)
	if hc.BaseCost != 4200 {
		t.Fatalf("aliased base: got %d want 4200", hc.BaseCost)
	}
	if hc.Locations[0].Location != "CHIKMAGALUR" {
		t.Fatalf("breakdown keeps the selected name: %+v", hc.Locations[0])
	}
}

func TestCompute_UnknownLocationPricesZero(t *testing.T) {
	in := baseInput()
	in.Itinerary = append(in.Itinerary, domain.ItineraryDay{Day: 5, Location: "VAGAMON"})
	res, err := domain.Compute(in, testTables())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	hc := res.HotelFor(domain.TierStandard)
	var found bool
	for _, lc := range hc.Locations {
		if lc.Location == "VAGAMON" {
			found = true
			if lc.Cost != 0 || lc.AvgRate != 0 {
				t.Fatalf("unmatched location must price 0: %+v", lc)
			}
		}
	}
	if !found {
		t.Fatalf("VAGAMON missing from breakdown: %+v", hc.Locations)
	}
}

// ---- travel costing ----

func TestCompute_TravelAutoLookup(t *testing.T) {
	in := baseInput()
	in.Client.DurationLabel = "1 Night / 2 Days"
	in.Itinerary = in.Itinerary[:2] // OOTY only
	res, err := domain.Compute(in, testTables())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	tc := res.Travel
	if tc.Manual {
		t.Fatalf("expected auto mode: %+v", tc)
	}
	if tc.Bucket != "1N2D" || tc.BaseCost != 8700 {
		t.Fatalf("lookup: bucket=%s base=%d", tc.Bucket, tc.BaseCost)
	}
	// 8700 × 1.15 = 10005.
	if tc.FinalCost != 10005 {
		t.Fatalf("final: got %d want 10005", tc.FinalCost)
	}
	if tc.Rate == nil || tc.Rate.Km != 620 {
		t.Fatalf("matched row not surfaced: %+v", tc.Rate)
	}
}

func TestCompute_TravelMissingRowPricesZero(t *testing.T) {
	in := baseInput()
	in.Travel.To = "COORG" // no SEDAN row for this route
	res, err := domain.Compute(in, testTables())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if res.Travel.Manual || res.Travel.BaseCost != 0 || res.Travel.FinalCost != 0 {
		t.Fatalf("missing row must price 0 in auto mode: %+v", res.Travel)
	}
}

func TestCompute_TravelManualReasons(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.QuoteInput)
		reason domain.ManualReason
	}{
		{"dummy", func(in *domain.QuoteInput) {
			in.Travel.UseDummy = true
			in.Travel.DummyCost = 5000
		}, domain.ManualDummy},
		{"seater vehicle", func(in *domain.QuoteInput) {
			in.Travel.Vehicle = "21 SEATER"
		}, domain.ManualVehicle},
		{"long duration", func(in *domain.QuoteInput) {
			in.Client.DurationLabel = "6 Nights / 7 Days"
		}, domain.ManualDuration},
		{"free-text endpoint", func(in *domain.QuoteInput) {
			in.Travel.ToFreeText = true
		}, domain.ManualLocation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := baseInput()
			tc.mutate(&in)
			res, err := domain.Compute(in, testTables())
			if err != nil {
				t.Fatalf("err: %v", err)
			}
			if !res.Travel.Manual || res.Travel.Reason != tc.reason {
				t.Fatalf("got manual=%v reason=%q want %q", res.Travel.Manual, res.Travel.Reason, tc.reason)
			}
			if res.Travel.Rate != nil {
				t.Fatalf("manual mode must not match a catalog row: %+v", res.Travel.Rate)
			}
		})
	}
}

func TestCompute_ManualReasonPriority(t *testing.T) {
	in := baseInput()
	in.Travel.UseDummy = true
	in.Travel.DummyCost = 3000
	in.Travel.Vehicle = "32 SEATER"
	in.Travel.FromFreeText = true
	res, err := domain.Compute(in, testTables())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if res.Travel.Reason != domain.ManualDummy {
		t.Fatalf("dummy must win: got %q", res.Travel.Reason)
	}
	if res.Travel.BaseCost != 3000 {
		t.Fatalf("dummy cost is the base: got %d", res.Travel.BaseCost)
	}
}

func TestCompute_TravelMarginEditable(t *testing.T) {
	in := baseInput()
	in.Client.DurationLabel = "1 Night / 2 Days"
	in.Travel.MarginPct = 20
	in.Travel.ExtraCost = 250
	res, err := domain.Compute(in, testTables())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	// round(8700 × 1.20) + 250 = 10690.
	if res.Travel.FinalCost != 10690 {
		t.Fatalf("final: got %d want 10690", res.Travel.FinalCost)
	}
}

// ---- aggregation ----

func TestCompute_RequirementsModeGating(t *testing.T) {
	in := baseInput()
	in.Client.DurationLabel = "1 Night / 2 Days"
	in.Itinerary = in.Itinerary[:2]

	full, err := domain.Compute(in, testTables())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	hotel := full.HotelFor(domain.TierStandard).FinalCost
	travel := full.Travel.FinalCost
	if f := full.FinalFor(domain.TierStandard); f.TotalCost != hotel+travel {
		t.Fatalf("all mode total: got %d want %d", f.TotalCost, hotel+travel)
	}

	in.Requirements = domain.RequireRoomsOnly
	rooms, _ := domain.Compute(in, testTables())
	if f := rooms.FinalFor(domain.TierStandard); f.TravelCost != 0 || f.TotalCost != hotel {
		t.Fatalf("rooms_only: %+v", f)
	}
	// The computed travel record itself is untouched; only the aggregate is
	// gated.
	if rooms.Travel.FinalCost != travel {
		t.Fatalf("travel record mutated by gating: %+v", rooms.Travel)
	}

	in.Requirements = domain.RequireTravelOnly
	tr, _ := domain.Compute(in, testTables())
	if f := tr.FinalFor(domain.TierStandard); f.HotelCost != 0 || f.TotalCost != travel {
		t.Fatalf("travel_only: %+v", f)
	}
	if tr.HotelFor(domain.TierStandard).FinalCost != hotel {
		t.Fatalf("hotel record mutated by gating: %+v", tr.HotelFor(domain.TierStandard))
	}
}

func TestCompute_Deterministic(t *testing.T) {
	in := baseInput()
	a, err := domain.Compute(in, testTables())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	b, err := domain.Compute(in, testTables())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("recompute diverged:\n%+v\n%+v", a, b)
	}
}

// ---- validation ----

func TestCompute_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.QuoteInput)
		want   error
	}{
		{"bad duration label", func(in *domain.QuoteInput) {
			in.Client.DurationLabel = "about a week"
		}, domain.ErrBadDurationLabel},
		{"zero nights", func(in *domain.QuoteInput) {
			in.Client.DurationLabel = "0 Nights / 1 Day"
		}, domain.ErrBadDurationLabel},
		{"empty itinerary", func(in *domain.QuoteInput) {
			in.Itinerary = nil
		}, domain.ErrNoLocations},
		{"zero rooms", func(in *domain.QuoteInput) {
			in.Client.RoomAllocations = nil
		}, domain.ErrNoRooms},
		{"negative room count", func(in *domain.QuoteInput) {
			in.Client.RoomAllocations = []domain.RoomAllocation{
				{RoomType: "Deluxe", RoomCount: -1},
				{RoomType: "Suite", RoomCount: 3},
			}
		}, domain.ErrNegativeInput},
		{"unknown requirements mode", func(in *domain.QuoteInput) {
			in.Requirements = "weekends_only"
		}, domain.ErrBadRequirementsMode},
		{"negative extra", func(in *domain.QuoteInput) {
			in.Travel.ExtraCost = -1
		}, domain.ErrNegativeInput},
		{"negative dummy cost", func(in *domain.QuoteInput) {
			in.Travel.DummyCost = -100
		}, domain.ErrNegativeInput},
		{"margin above range", func(in *domain.QuoteInput) {
			in.Travel.MarginPct = 120
		}, domain.ErrBadMargin},
		{"margin below range", func(in *domain.QuoteInput) {
			in.Travel.MarginPct = -5
		}, domain.ErrBadMargin},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := baseInput()
			tc.mutate(&in)
			if _, err := domain.Compute(in, testTables()); !errors.Is(err, tc.want) {
				t.Fatalf("got %v want %v", err, tc.want)
			}
		})
	}
}

func TestParseDurationLabel(t *testing.T) {
	n, d, err := domain.ParseDurationLabel("3 Nights / 4 Days")
	if err != nil || n != 3 || d != 4 {
		t.Fatalf("got %d/%d err=%v", n, d, err)
	}
	n, d, err = domain.ParseDurationLabel("1 night/2 days")
	if err != nil || n != 1 || d != 2 {
		t.Fatalf("case-insensitive form: %d/%d err=%v", n, d, err)
	}
	if _, _, err := domain.ParseDurationLabel("weekend trip"); !errors.Is(err, domain.ErrBadDurationLabel) {
		t.Fatalf("expected parse failure, got %v", err)
	}
}

func TestDurationBucket(t *testing.T) {
	for nights, want := range map[int]string{1: "1N2D", 2: "2N3D", 3: "3N4D", 4: "4N5D"} {
		got, ok := domain.DurationBucket(nights)
		if !ok || got != want {
			t.Fatalf("nights=%d got %q ok=%v", nights, got, ok)
		}
	}
	if _, ok := domain.DurationBucket(5); ok {
		t.Fatal("5 nights must be out of bucket range")
	}
}
