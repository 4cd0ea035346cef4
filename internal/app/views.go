package app

import (
	"strconv"
	"time"

	"toorizo_quote/internal/domain"
)

// Hidden is the placeholder shown in place of cost internals the viewer may
// not see.
const Hidden = "Hidden"

// QuoteView is the renderer-facing shape of a computed quotation: amounts
// formatted as rupee strings, internals redacted per the viewer's capability.
type QuoteView struct {
	ClientName   string           `json:"client_name"`
	Duration     string           `json:"duration"`
	Requirements string           `json:"requirements"`
	Currency     string           `json:"currency"`
	Allocations  []AllocationView `json:"allocations"`
	Packages     []PackageView    `json:"packages"`
	Travel       TravelView       `json:"travel"`
}

type AllocationView struct {
	Location string     `json:"location"`
	Nights   int        `json:"nights"`
	Skipped  bool       `json:"skipped"`
	CheckIn  *time.Time `json:"check_in,omitempty"`
	CheckOut *time.Time `json:"check_out,omitempty"`
}

type PackageView struct {
	Tier        string             `json:"tier"`
	Label       string             `json:"label"`
	CustomHotel string             `json:"custom_hotel,omitempty"`
	BaseCost    string             `json:"base_cost"`
	MarginPct   string             `json:"margin_pct"`
	ExtraCost   string             `json:"extra_cost"`
	HotelCost   string             `json:"hotel_cost"`
	TravelCost  string             `json:"travel_cost"`
	TotalCost   string             `json:"total_cost"`
	Locations   []LocationCostView `json:"locations,omitempty"`
}

type LocationCostView struct {
	Location string `json:"location"`
	Nights   int    `json:"nights"`
	AvgRate  string `json:"avg_rate"`
	Cost     string `json:"cost"`
}

type TravelView struct {
	From      string          `json:"from"`
	To        string          `json:"to"`
	Vehicle   string          `json:"vehicle"`
	Bucket    string          `json:"bucket,omitempty"`
	Manual    bool            `json:"manual"`
	Reason    string          `json:"manual_reason,omitempty"`
	BaseCost  string          `json:"base_cost"`
	MarginPct string          `json:"margin_pct"`
	ExtraCost string          `json:"extra_cost"`
	FinalCost string          `json:"final_cost"`
	Rate      *TravelRateView `json:"rate,omitempty"`
}

// TravelRateView is the operator cost breakdown of the matched catalog row.
// Admin only; employees never receive it.
type TravelRateView struct {
	Km      int    `json:"km"`
	Bata    string `json:"bata"`
	Permit  string `json:"permit"`
	Tolls   string `json:"tolls"`
	PerKm   string `json:"per_km"`
	AddInfo string `json:"add_info,omitempty"`
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func pctString(pct float64) string {
	return trimFloat(pct) + "%"
}

// RenderQuote shapes a computed result for the document renderer. Every cost
// field, finals included, is replaced with the Hidden placeholder unless the
// viewer can see cost internals; only admins get the rate breakdown.
func RenderQuote(res domain.QuoteResult, client domain.ClientDetails, v domain.Viewer) QuoteView {
	full := v.CanSeeCostInternals()
	redact := func(amount int64) string {
		if !full {
			return Hidden
		}
		return domain.FormatINR(amount)
	}
	redactPct := func(pct float64) string {
		if !full {
			return Hidden
		}
		return pctString(pct)
	}

	qv := QuoteView{
		ClientName:   client.Name,
		Duration:     client.DurationLabel,
		Requirements: string(res.Requirements),
		Currency:     "INR",
	}
	for _, a := range res.Allocations {
		qv.Allocations = append(qv.Allocations, AllocationView{
			Location: a.Location,
			Nights:   a.Nights,
			Skipped:  a.Skipped,
			CheckIn:  a.CheckIn,
			CheckOut: a.CheckOut,
		})
	}

	for _, tier := range domain.Tiers() {
		hc := res.HotelFor(tier)
		fc := res.FinalFor(tier)
		pv := PackageView{
			Tier:       string(tier),
			Label:      tier.Label(),
			BaseCost:   redact(hc.BaseCost),
			MarginPct:  redactPct(float64(hc.MarginPct)),
			ExtraCost:  redact(hc.ExtraCost),
			HotelCost:  redact(fc.HotelCost),
			TravelCost: redact(fc.TravelCost),
			TotalCost:  redact(fc.TotalCost),
		}
		if hc.CustomHotel {
			pv.CustomHotel = hc.CustomHotelName
		}
		if full {
			for _, lc := range hc.Locations {
				pv.Locations = append(pv.Locations, LocationCostView{
					Location: lc.Location,
					Nights:   lc.Nights,
					AvgRate:  trimFloat(lc.AvgRate),
					Cost:     domain.FormatINR(lc.Cost),
				})
			}
		}
		qv.Packages = append(qv.Packages, pv)
	}

	tc := res.Travel
	qv.Travel = TravelView{
		From:      tc.From,
		To:        tc.To,
		Vehicle:   tc.Vehicle,
		Bucket:    tc.Bucket,
		Manual:    tc.Manual,
		Reason:    string(tc.Reason),
		BaseCost:  redact(tc.BaseCost),
		MarginPct: redactPct(tc.MarginPct),
		ExtraCost: redact(tc.ExtraCost),
		FinalCost: redact(tc.FinalCost),
	}
	if full && tc.Rate != nil {
		qv.Travel.Rate = &TravelRateView{
			Km:      tc.Rate.Km,
			Bata:    domain.FormatINR(tc.Rate.Bata),
			Permit:  domain.FormatINR(tc.Rate.Permit),
			Tolls:   domain.FormatINR(tc.Rate.Tolls),
			PerKm:   domain.FormatINR(tc.Rate.PerKm),
			AddInfo: tc.Rate.AddInfo,
		}
	}
	return qv
}
