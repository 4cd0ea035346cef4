package domain

import (
	"regexp"
	"strconv"
	"time"
)

// PackageTier is one of the three package grades a quotation is priced for.
type PackageTier string

const (
	TierStandard PackageTier = "standard"
	TierComfort  PackageTier = "comfort"
	TierLuxury   PackageTier = "luxury"
)

// Tiers returns all tiers in presentation order.
func Tiers() []PackageTier {
	return []PackageTier{TierStandard, TierComfort, TierLuxury}
}

// Label returns the customer-facing package name, e.g. "Standard Package".
func (t PackageTier) Label() string {
	switch t {
	case TierStandard:
		return "Standard Package"
	case TierComfort:
		return "Comfort Package"
	case TierLuxury:
		return "Luxury Package"
	}
	return string(t)
}

// nightlyPremium is a fixed per-room-night markup added on top of the
// averaged catalog rate for each tier.
var nightlyPremium = map[PackageTier]int64{
	TierStandard: 1000,
	TierComfort:  700,
	TierLuxury:   700,
}

// RequirementsMode selects which cost categories the final quotation includes.
type RequirementsMode string

const (
	RequireAll        RequirementsMode = "all"
	RequireRoomsOnly  RequirementsMode = "rooms_only"
	RequireTravelOnly RequirementsMode = "travel_only"
)

// RoomAllocation is one room-type line from the client details form.
type RoomAllocation struct {
	RoomType  string `json:"room_type"`
	RoomCount int    `json:"room_count"`
}

// ItineraryDay is one day entry of the trip plan.
type ItineraryDay struct {
	Day         int      `json:"day"`
	Title       string   `json:"title"`
	Activities  []string `json:"activities"`
	Location    string   `json:"location"`
	TravelAlone bool     `json:"travel_alone"`
}

// ClientDetails carries the quotation-session context that rides along with
// the engine input. Only the room allocations and the duration label affect
// pricing; the rest is passed through to the rendered document.
type ClientDetails struct {
	Name            string           `json:"name"`
	ContactNumber   string           `json:"contact_number,omitempty"`
	DurationLabel   string           `json:"duration_label"` // e.g. "3 Nights / 4 Days"
	Adults          int              `json:"adults"`
	Children        int              `json:"children"`
	RoomAllocations []RoomAllocation `json:"room_allocations"`
	CheckIn         *time.Time       `json:"check_in,omitempty"`
	CheckOut        *time.Time       `json:"check_out,omitempty"`
	PackageName     string           `json:"package_name,omitempty"`
}

// TripSelection is what the itinerary and client details boil down to for
// pricing: the ordered unique location set, the night budget and room count.
type TripSelection struct {
	Locations   []string
	NightsTotal int
	DaysTotal   int
	RoomCount   int
	Vehicle     string
}

var durationRe = regexp.MustCompile(`(?i)(\d+)\s*Nights?\s*/\s*(\d+)\s*Days?`)

// ParseDurationLabel extracts nights and days from a label like
// "3 Nights / 4 Days". A label that does not match is a caller error, not a
// silent fallback.
func ParseDurationLabel(label string) (nights, days int, err error) {
	m := durationRe.FindStringSubmatch(label)
	if m == nil {
		return 0, 0, ErrBadDurationLabel
	}
	nights, _ = strconv.Atoi(m[1])
	days, _ = strconv.Atoi(m[2])
	if nights < 1 {
		return 0, 0, ErrBadDurationLabel
	}
	return nights, days, nil
}

// SelectedLocations collapses the itinerary into its unique location names,
// ordered by first appearance. Empty location tags are dropped.
func SelectedLocations(days []ItineraryDay) []string {
	seen := make(map[string]bool, len(days))
	var out []string
	for _, d := range days {
		if d.Location == "" || seen[d.Location] {
			continue
		}
		seen[d.Location] = true
		out = append(out, d.Location)
	}
	return out
}

// TotalRooms sums the per-room-type counts.
func TotalRooms(allocs []RoomAllocation) int {
	total := 0
	for _, a := range allocs {
		total += a.RoomCount
	}
	return total
}
