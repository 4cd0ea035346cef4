package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"time"

	"toorizo_quote/internal/adapters/observability"
	"toorizo_quote/internal/domain"
)

// QuoteService computes quotations over a fixed rate catalog, with computed
// results cached by input hash. Redaction happens per request after the
// cache, so admin and employee callers share entries.
type QuoteService struct {
	tables     *domain.RateTables
	travelRows []domain.TravelRate
	cache      domain.Cache
	cacheTTL   time.Duration
}

func NewQuoteService(hotels []domain.HotelRate, travel []domain.TravelRate, c domain.Cache, ttl time.Duration) *QuoteService {
	return &QuoteService{
		tables:     domain.NewRateTables(hotels, travel),
		travelRows: travel,
		cache:      c,
		cacheTTL:   ttl,
	}
}

// Tables exposes the indexed catalog for session-based editing.
func (s *QuoteService) Tables() *domain.RateTables { return s.tables }

// travelRatesKey caches the rates listing; a reseed drops it alongside the
// quote entries.
const travelRatesKey = "rates:travel"

// quoteKey derives a stable cache key from the full input state. Marshalled
// maps are key-sorted, so equal inputs always hash the same.
func quoteKey(in domain.QuoteInput) string {
	b, _ := json.Marshal(in)
	sum := sha1.Sum(b)
	return "quotes:" + hex.EncodeToString(sum[:])
}

func (s *QuoteService) Quote(ctx context.Context, in domain.QuoteInput) (domain.QuoteResult, error) {
	key := quoteKey(in)
	var res domain.QuoteResult
	if ok, _ := s.cache.Get(ctx, key, &res); ok {
		return res, nil
	}

	res, err := domain.Compute(in, s.tables)
	mode := string(in.Requirements)
	if mode == "" {
		mode = string(domain.RequireAll)
	}
	observability.ObserveQuote(mode, err)
	if err != nil {
		return domain.QuoteResult{}, err
	}
	if !res.Travel.Manual {
		observability.ObserveRateLookup("travel", res.Travel.Rate != nil)
	}
	for _, hc := range res.Hotel {
		for _, lc := range hc.Locations {
			observability.ObserveRateLookup("hotel", lc.AvgRate > 0)
		}
	}

	_ = s.cache.Set(ctx, key, res, int(s.cacheTTL.Seconds()))
	return res, nil
}

// TravelRates returns the full travel catalog for the rates listing, cached
// under travelRatesKey.
func (s *QuoteService) TravelRates(ctx context.Context) ([]domain.TravelRate, error) {
	var out []domain.TravelRate
	if ok, _ := s.cache.Get(ctx, travelRatesKey, &out); ok {
		return out, nil
	}
	out = make([]domain.TravelRate, len(s.travelRows))
	copy(out, s.travelRows)
	_ = s.cache.Set(ctx, travelRatesKey, out, int(s.cacheTTL.Seconds()))
	return out, nil
}
