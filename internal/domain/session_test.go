package domain_test

import (
	"errors"
	"testing"
	"time"

	"toorizo_quote/internal/domain"
)

func newSession(t *testing.T) *domain.Session {
	t.Helper()
	s, err := domain.NewSession(baseInput(), testTables())
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	return s
}

func TestSession_SetNightsEnforcesBudget(t *testing.T) {
	s := newSession(t)

	if err := s.SetNights("COORG", 1); err != nil {
		t.Fatalf("err: %v", err)
	}
	if err := s.SetNights("OOTY", 3); err != nil {
		t.Fatalf("err: %v", err)
	}
	// 3 + 2 = 5 > 4: rejected outright, prior state kept.
	if err := s.SetNights("COORG", 2); !errors.Is(err, domain.ErrInvalidAllocation) {
		t.Fatalf("got %v want ErrInvalidAllocation", err)
	}
	res := s.Result()
	if res.Allocations[0].Nights != 3 || res.Allocations[1].Nights != 1 {
		t.Fatalf("allocation after rejected change: %+v", res.Allocations)
	}

	if err := s.SetNights("MYSORE", 1); !errors.Is(err, domain.ErrUnknownLocation) {
		t.Fatalf("got %v want ErrUnknownLocation", err)
	}
}

func TestSession_DefaultsDoNotBlockFirstOverride(t *testing.T) {
	s := newSession(t)

	// OOTY and COORG both sit on the seeded default of 2. Raising OOTY to 3
	// must succeed: COORG's untouched default is advisory, not committed.
	if err := s.SetNights("OOTY", 3); err != nil {
		t.Fatalf("err: %v", err)
	}
	res := s.Result()
	if res.Allocations[0].Nights != 3 || res.Allocations[1].Nights != 2 {
		t.Fatalf("allocations: %+v", res.Allocations)
	}
	// Once COORG is touched it is held to the budget.
	if err := s.SetNights("COORG", 2); !errors.Is(err, domain.ErrInvalidAllocation) {
		t.Fatalf("got %v want ErrInvalidAllocation", err)
	}
}

func TestSession_SkipAndUnskip(t *testing.T) {
	s := newSession(t)
	if err := s.SetSkipped("COORG", true); err != nil {
		t.Fatalf("err: %v", err)
	}
	if err := s.SetNights("OOTY", 4); err != nil {
		t.Fatalf("err: %v", err)
	}
	res := s.Result()
	if a := res.Allocations[1]; !a.Skipped || a.Nights != 0 {
		t.Fatalf("skip must zero nights: %+v", a)
	}
	// OOTY 4 nights, standard avg 1100: (1100+1000)×1×4 = 8400.
	if hc := res.HotelFor(domain.TierStandard); hc.BaseCost != 8400 {
		t.Fatalf("base with COORG skipped: got %d", hc.BaseCost)
	}

	// Un-skip restores the even split even though OOTY already holds the
	// whole budget. 4+2 nights against a 4-night trip stands until the user
	// fixes it.
	if err := s.SetSkipped("COORG", false); err != nil {
		t.Fatalf("err: %v", err)
	}
	res = s.Result()
	if a := res.Allocations[1]; a.Skipped || a.Nights != 2 {
		t.Fatalf("unskip must restore default split: %+v", a)
	}
	if res.Allocations[0].Nights != 4 {
		t.Fatalf("other allocations must not be clamped: %+v", res.Allocations[0])
	}
}

func TestSession_ManualBaseLifecycle(t *testing.T) {
	s := newSession(t)

	if err := s.SetVehicle("21 SEATER"); err != nil {
		t.Fatalf("err: %v", err)
	}
	tc := s.Result().Travel
	if !tc.Manual || tc.Reason != domain.ManualVehicle || tc.BaseCost != 0 {
		t.Fatalf("entering manual mode: %+v", tc)
	}

	if err := s.SetManualBase(22000); err != nil {
		t.Fatalf("err: %v", err)
	}
	// 22000 × 1.15 = 25300.
	if tc := s.Result().Travel; tc.FinalCost != 25300 {
		t.Fatalf("manual final: got %d want 25300", tc.FinalCost)
	}

	// Unrelated edits keep the manual base.
	if err := s.SetTravelExtra(300); err != nil {
		t.Fatalf("err: %v", err)
	}
	if tc := s.Result().Travel; tc.BaseCost != 22000 || tc.FinalCost != 25600 {
		t.Fatalf("manual base lost on extra-cost edit: %+v", tc)
	}

	// Leaving and re-entering manual mode discards the stale base.
	if err := s.SetVehicle("SEDAN"); err != nil {
		t.Fatalf("err: %v", err)
	}
	if tc := s.Result().Travel; tc.Manual {
		t.Fatalf("expected auto mode: %+v", tc)
	}
	if err := s.SetVehicle("50 SEATER"); err != nil {
		t.Fatalf("err: %v", err)
	}
	if tc := s.Result().Travel; tc.BaseCost != 0 {
		t.Fatalf("stale manual base leaked back in: %+v", tc)
	}
}

func TestSession_DurationChangeReseedsAllocation(t *testing.T) {
	s := newSession(t)
	if err := s.SetNights("OOTY", 3); err != nil {
		t.Fatalf("err: %v", err)
	}
	if err := s.SetDuration("2 Nights / 3 Days"); err != nil {
		t.Fatalf("err: %v", err)
	}
	res := s.Result()
	if res.Selection.NightsTotal != 2 {
		t.Fatalf("selection: %+v", res.Selection)
	}
	for _, a := range res.Allocations {
		if a.Nights != 1 {
			t.Fatalf("expected even split after duration change: %+v", res.Allocations)
		}
	}

	if err := s.SetDuration("garbage"); !errors.Is(err, domain.ErrBadDurationLabel) {
		t.Fatalf("got %v want ErrBadDurationLabel", err)
	}
	if s.Result().Selection.NightsTotal != 2 {
		t.Fatal("failed change must leave state intact")
	}
}

func TestSession_CustomHotelRoundTrip(t *testing.T) {
	s := newSession(t)
	if err := s.SetCustomHotel(domain.TierLuxury, "Taj Residency", 30000); err != nil {
		t.Fatalf("err: %v", err)
	}
	if hc := s.Result().HotelFor(domain.TierLuxury); !hc.CustomHotel || hc.FinalCost != 34500 {
		t.Fatalf("custom hotel: %+v", hc)
	}
	if err := s.ClearCustomHotel(domain.TierLuxury); err != nil {
		t.Fatalf("err: %v", err)
	}
	hc := s.Result().HotelFor(domain.TierLuxury)
	if hc.CustomHotel {
		t.Fatalf("clear did not restore derivation: %+v", hc)
	}
	if hc.BaseCost != 18400 {
		t.Fatalf("derived base after clear: got %d want 18400", hc.BaseCost)
	}
}

func TestSession_DatesSurviveRecompute(t *testing.T) {
	s := newSession(t)
	in := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	out := in.AddDate(0, 0, 2)
	if err := s.SetDates("OOTY", &in, &out); err != nil {
		t.Fatalf("err: %v", err)
	}
	if err := s.SetTravelExtra(100); err != nil {
		t.Fatalf("err: %v", err)
	}
	a := s.Result().Allocations[0]
	if a.CheckIn == nil || !a.CheckIn.Equal(in) || a.CheckOut == nil || !a.CheckOut.Equal(out) {
		t.Fatalf("dates dropped on recompute: %+v", a)
	}
}

func TestSession_RequirementsSwitch(t *testing.T) {
	s := newSession(t)
	if err := s.SetRequirements(domain.RequireRoomsOnly); err != nil {
		t.Fatalf("err: %v", err)
	}
	if f := s.Result().FinalFor(domain.TierStandard); f.TravelCost != 0 {
		t.Fatalf("rooms_only final: %+v", f)
	}
	if err := s.SetRequirements("weekends_only"); !errors.Is(err, domain.ErrBadRequirementsMode) {
		t.Fatalf("got %v want ErrBadRequirementsMode", err)
	}
}
