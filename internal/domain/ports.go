package domain

import "context"

type RateRepository interface {
	// Write paths
	UpsertHotelRate(ctx context.Context, r HotelRate) error
	UpsertTravelRate(ctx context.Context, r TravelRate) error

	// Read paths
	HotelRates(ctx context.Context) ([]HotelRate, error)
	TravelRates(ctx context.Context) ([]TravelRate, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Viewer is the capability a caller presents when reading priced output.
// Renderers ask it before exposing margin and base-cost internals.
type Viewer interface {
	// CanSeeCostInternals reports whether base costs, margins and the
	// travel rate breakdown may be shown unredacted.
	CanSeeCostInternals() bool
}

// Role is the built-in Viewer set.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

func (r Role) CanSeeCostInternals() bool { return r == RoleAdmin }
