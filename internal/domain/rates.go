package domain

import (
	"fmt"
	"strings"
)

// HotelRate is one hotel catalog row: the nightly TAC-season rate for a hotel
// of a given package tier in a location.
type HotelRate struct {
	Location    string      `json:"location"`
	Tier        PackageTier `json:"tier"`
	Hotel       string      `json:"hotel"`
	RoomType    string      `json:"room_type"`
	NightlyRate int64       `json:"nightly_rate"`
}

// TravelRate is one travel catalog row, keyed by route, vehicle class and
// duration bucket. Payable is the amount the engine prices from; the other
// columns are operator detail surfaced in admin breakdowns.
type TravelRate struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Vehicle string `json:"vehicle"`
	Bucket  string `json:"bucket"` // "1N2D" .. "4N5D"
	Km      int    `json:"km"`
	Bata    int64  `json:"bata"`
	Permit  int64  `json:"permit"`
	Tolls   int64  `json:"tolls"`
	PerKm   int64  `json:"per_km"`
	AddInfo string `json:"add_info,omitempty"`
	Payable int64  `json:"payable"`
}

// locationAliases maps locations without direct hotel catalog entries onto
// the location whose rates they are priced with. Fixed, not user-configurable.
var locationAliases = map[string]string{
	"CHIKMAGALUR": "OOTY",
	"KODAIKANAL":  "OOTY",
}

// manualVehicles are vehicle classes with no tabulated rates; selecting one
// suspends auto-computation and requires a manually entered base cost.
var manualVehicles = map[string]bool{
	"12 SEATER": true,
	"21 SEATER": true,
	"32 SEATER": true,
	"50 SEATER": true,
}

// IsManualVehicle reports whether the vehicle class requires manual entry.
func IsManualVehicle(vehicle string) bool {
	return manualVehicles[strings.ToUpper(strings.TrimSpace(vehicle))]
}

// MaxBucketNights is the longest tabulated trip duration ("4N5D"). Longer
// trips fall back to manual entry.
const MaxBucketNights = 4

// DurationBucket maps a night count onto its rate-table bucket label.
// The second return is false when the duration exceeds the tabulated range.
func DurationBucket(nights int) (string, bool) {
	if nights < 1 || nights > MaxBucketNights {
		return "", false
	}
	return fmt.Sprintf("%dN%dD", nights, nights+1), true
}

// RateTables is the immutable, indexed view over both catalogs. Built once at
// startup and passed explicitly into the engine; lookups are map reads, never
// scans.
type RateTables struct {
	hotels map[string][]HotelRate // key: LOCATION|tier
	travel map[string]TravelRate  // key: FROM|TO|VEHICLE|bucket
}

func hotelKey(location string, tier PackageTier) string {
	return strings.ToUpper(strings.TrimSpace(location)) + "|" + string(tier)
}

func travelKey(from, to, vehicle, bucket string) string {
	up := func(s string) string { return strings.ToUpper(strings.TrimSpace(s)) }
	return up(from) + "|" + up(to) + "|" + up(vehicle) + "|" + up(bucket)
}

// NewRateTables indexes the given catalog rows. Later duplicates of a travel
// key overwrite earlier ones.
func NewRateTables(hotels []HotelRate, travel []TravelRate) *RateTables {
	t := &RateTables{
		hotels: make(map[string][]HotelRate, len(hotels)),
		travel: make(map[string]TravelRate, len(travel)),
	}
	for _, h := range hotels {
		k := hotelKey(h.Location, h.Tier)
		t.hotels[k] = append(t.hotels[k], h)
	}
	for _, r := range travel {
		t.travel[travelKey(r.From, r.To, r.Vehicle, r.Bucket)] = r
	}
	return t
}

// HotelRatesFor returns the catalog rows used to price (location, tier) after
// alias resolution. A nil slice means no catalog match (costs resolve to 0).
func (t *RateTables) HotelRatesFor(location string, tier PackageTier) []HotelRate {
	loc := strings.ToUpper(strings.TrimSpace(location))
	if alias, ok := locationAliases[loc]; ok {
		loc = alias
	}
	return t.hotels[hotelKey(loc, tier)]
}

// AvgHotelRate is the arithmetic mean of the nightly rates for (location,
// tier), 0 when no catalog entries exist.
func (t *RateTables) AvgHotelRate(location string, tier PackageTier) float64 {
	rows := t.HotelRatesFor(location, tier)
	if len(rows) == 0 {
		return 0
	}
	var sum int64
	for _, r := range rows {
		sum += r.NightlyRate
	}
	return float64(sum) / float64(len(rows))
}

// TravelRateFor looks up the travel row for a route, vehicle class and
// duration bucket. ok is false on no catalog match.
func (t *RateTables) TravelRateFor(from, to, vehicle, bucket string) (TravelRate, bool) {
	r, ok := t.travel[travelKey(from, to, vehicle, bucket)]
	return r, ok
}

// HotelRateCount and TravelRateCount report catalog sizes (startup logging).
func (t *RateTables) HotelRateCount() int {
	n := 0
	for _, rows := range t.hotels {
		n += len(rows)
	}
	return n
}

func (t *RateTables) TravelRateCount() int { return len(t.travel) }
