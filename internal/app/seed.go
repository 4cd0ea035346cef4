package app

import (
	"context"
	"fmt"

	"toorizo_quote/internal/domain"
)

// SeedService writes catalog rows into the repository and drops caches that
// were priced off the previous catalog.
type SeedService struct {
	repo  domain.RateRepository
	cache domain.Cache
}

func NewSeedService(r domain.RateRepository, c domain.Cache) *SeedService {
	return &SeedService{repo: r, cache: c}
}

func (s *SeedService) SeedHotelRate(ctx context.Context, r domain.HotelRate) error {
	if err := s.repo.UpsertHotelRate(ctx, r); err != nil {
		return fmt.Errorf("upsert hotel rate %s/%s: %w", r.Location, r.Tier, err)
	}
	return nil
}

func (s *SeedService) SeedTravelRate(ctx context.Context, r domain.TravelRate) error {
	if err := s.repo.UpsertTravelRate(ctx, r); err != nil {
		return fmt.Errorf("upsert travel rate %s->%s %s: %w", r.From, r.To, r.Vehicle, err)
	}
	return nil
}

// Invalidate drops cached quote results and rate listings after a reseed.
func (s *SeedService) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	if pd, ok := s.cache.(interface {
		DelPrefix(ctx context.Context, prefix string) error
	}); ok {
		if err := pd.DelPrefix(ctx, "quotes:"); err != nil {
			return err
		}
	}
	return s.cache.Del(ctx, travelRatesKey)
}
