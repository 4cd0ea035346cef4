package shared

import "toorizo_quote/internal/domain"

// StartLocations, EndLocations and VehicleTypes are the selectable values the
// travel rate catalog is keyed by. Anything typed outside these lists is
// free-text and forces manual travel pricing.
var (
	StartLocations = []string{"BANGALORE", "MYSORE", "COIMBATORE", "METTUPALAYAM", "OOTY"}
	EndLocations   = []string{"OOTY", "COORG", "WAYANAD"}
	VehicleTypes   = []string{"SEDAN", "SUV", "12 SEATER", "21 SEATER", "32 SEATER", "50 SEATER"}
)

// DefaultRateTables indexes the embedded catalogs. Used when no database is
// configured, and as the seed set for cmd/seeder.
func DefaultRateTables() *domain.RateTables {
	return domain.NewRateTables(DefaultHotelRates(), DefaultTravelRates())
}

// DefaultHotelRates is the built-in hotel catalog: TAC-season nightly rates
// per location and package tier.
func DefaultHotelRates() []domain.HotelRate {
	return []domain.HotelRate{
		{Location: "OOTY", Tier: domain.TierStandard, Hotel: "Hotel Lakeview", RoomType: "Standard Room", NightlyRate: 1200},
		{Location: "OOTY", Tier: domain.TierStandard, Hotel: "Darshan Residency", RoomType: "Standard Room", NightlyRate: 1000},
		{Location: "OOTY", Tier: domain.TierStandard, Hotel: "Hotel Maneck", RoomType: "Deluxe Room", NightlyRate: 1400},
		{Location: "OOTY", Tier: domain.TierComfort, Hotel: "Sinclairs Retreat", RoomType: "Premium Room", NightlyRate: 2200},
		{Location: "OOTY", Tier: domain.TierComfort, Hotel: "Gem Park", RoomType: "Executive Room", NightlyRate: 2400},
		{Location: "OOTY", Tier: domain.TierLuxury, Hotel: "Savoy IHCL", RoomType: "Luxury Suite", NightlyRate: 4200},
		{Location: "OOTY", Tier: domain.TierLuxury, Hotel: "Fortune Sullivan Court", RoomType: "Suite", NightlyRate: 3600},

		{Location: "COORG", Tier: domain.TierStandard, Hotel: "Coorg Jungle Camp", RoomType: "Standard Cottage", NightlyRate: 1100},
		{Location: "COORG", Tier: domain.TierStandard, Hotel: "Hilldale Resort", RoomType: "Standard Room", NightlyRate: 1300},
		{Location: "COORG", Tier: domain.TierComfort, Hotel: "Amanvana Spa Resort", RoomType: "Premium Cottage", NightlyRate: 2600},
		{Location: "COORG", Tier: domain.TierComfort, Hotel: "Club Mahindra Madikeri", RoomType: "Studio", NightlyRate: 2300},
		{Location: "COORG", Tier: domain.TierLuxury, Hotel: "Orange County Resort", RoomType: "Pool Villa", NightlyRate: 4500},
		{Location: "COORG", Tier: domain.TierLuxury, Hotel: "Taj Madikeri", RoomType: "Premium Villa", NightlyRate: 4800},

		{Location: "WAYANAD", Tier: domain.TierStandard, Hotel: "Wayanad Breeze", RoomType: "Standard Room", NightlyRate: 1150},
		{Location: "WAYANAD", Tier: domain.TierStandard, Hotel: "Green Gates", RoomType: "Standard Room", NightlyRate: 1250},
		{Location: "WAYANAD", Tier: domain.TierComfort, Hotel: "Vythiri Village", RoomType: "Premium Room", NightlyRate: 2500},
		{Location: "WAYANAD", Tier: domain.TierComfort, Hotel: "Sterling Wayanad", RoomType: "Premium Room", NightlyRate: 2100},
		{Location: "WAYANAD", Tier: domain.TierLuxury, Hotel: "Vythiri Resort", RoomType: "Tree House", NightlyRate: 4000},

		{Location: "MYSORE", Tier: domain.TierStandard, Hotel: "Hotel Roopa", RoomType: "Standard Room", NightlyRate: 1050},
		{Location: "MYSORE", Tier: domain.TierStandard, Hotel: "Pai Vista", RoomType: "Deluxe Room", NightlyRate: 1350},
		{Location: "MYSORE", Tier: domain.TierComfort, Hotel: "Royal Orchid Metropole", RoomType: "Executive Room", NightlyRate: 2450},
		{Location: "MYSORE", Tier: domain.TierLuxury, Hotel: "Radisson Blu Plaza", RoomType: "Business Suite", NightlyRate: 3900},
	}
}

// DefaultTravelRates is the built-in travel catalog: payable amounts per
// route, vehicle class and duration bucket, with the operator cost columns
// surfaced in admin breakdowns.
func DefaultTravelRates() []domain.TravelRate {
	return []domain.TravelRate{
		{From: "BANGALORE", To: "OOTY", Vehicle: "SEDAN", Bucket: "1N2D", Km: 750, Bata: 1200, Permit: 500, Tolls: 1000, PerKm: 10, Payable: 10200},
		{From: "BANGALORE", To: "OOTY", Vehicle: "SEDAN", Bucket: "2N3D", Km: 900, Bata: 1600, Permit: 500, Tolls: 1200, PerKm: 10, Payable: 12300},
		{From: "BANGALORE", To: "OOTY", Vehicle: "SEDAN", Bucket: "3N4D", Km: 1200, Bata: 2000, Permit: 500, Tolls: 1500, PerKm: 10, Payable: 16000},
		{From: "BANGALORE", To: "OOTY", Vehicle: "SEDAN", Bucket: "4N5D", Km: 1500, Bata: 2400, Permit: 500, Tolls: 1800, PerKm: 10, Payable: 19700},
		{From: "BANGALORE", To: "OOTY", Vehicle: "SUV", Bucket: "1N2D", Km: 750, Bata: 1500, Permit: 1000, Tolls: 1000, PerKm: 15, AddInfo: "NOVA 16RS, CRY", Payable: 14750},
		{From: "BANGALORE", To: "OOTY", Vehicle: "SUV", Bucket: "2N3D", Km: 900, Bata: 2000, Permit: 1000, Tolls: 1200, PerKm: 15, AddInfo: "NOVA 16RS, CRY", Payable: 17700},
		{From: "BANGALORE", To: "OOTY", Vehicle: "SUV", Bucket: "3N4D", Km: 1200, Bata: 2500, Permit: 1000, Tolls: 1500, PerKm: 15, AddInfo: "NOVA 16RS, CRY", Payable: 23000},
		{From: "BANGALORE", To: "OOTY", Vehicle: "SUV", Bucket: "4N5D", Km: 1500, Bata: 3000, Permit: 1000, Tolls: 1800, PerKm: 15, AddInfo: "NOVA 16RS, CRY", Payable: 28300},

		{From: "BANGALORE", To: "COORG", Vehicle: "SEDAN", Bucket: "1N2D", Km: 750, Bata: 1200, Permit: 0, Tolls: 1000, PerKm: 10, Payable: 9700},
		{From: "BANGALORE", To: "COORG", Vehicle: "SEDAN", Bucket: "2N3D", Km: 900, Bata: 1600, Permit: 0, Tolls: 1200, PerKm: 10, Payable: 11800},
		{From: "BANGALORE", To: "COORG", Vehicle: "SEDAN", Bucket: "3N4D", Km: 1200, Bata: 2000, Permit: 0, Tolls: 1500, PerKm: 10, Payable: 15500},
		{From: "BANGALORE", To: "COORG", Vehicle: "SEDAN", Bucket: "4N5D", Km: 1500, Bata: 2400, Permit: 0, Tolls: 1800, PerKm: 10, Payable: 19200},
		{From: "BANGALORE", To: "COORG", Vehicle: "SUV", Bucket: "1N2D", Km: 750, Bata: 1500, Permit: 1000, Tolls: 1000, PerKm: 15, AddInfo: "NOVA 16RS, CRY", Payable: 13750},
		{From: "BANGALORE", To: "COORG", Vehicle: "SUV", Bucket: "2N3D", Km: 900, Bata: 2000, Permit: 1000, Tolls: 1200, PerKm: 15, AddInfo: "NOVA 16RS, CRY", Payable: 16700},
		{From: "BANGALORE", To: "COORG", Vehicle: "SUV", Bucket: "3N4D", Km: 1200, Bata: 2500, Permit: 1000, Tolls: 1500, PerKm: 15, AddInfo: "NOVA 16RS, CRY", Payable: 22000},
		{From: "BANGALORE", To: "COORG", Vehicle: "SUV", Bucket: "4N5D", Km: 1500, Bata: 3000, Permit: 1000, Tolls: 1800, PerKm: 15, AddInfo: "NOVA 16RS, CRY", Payable: 27300},

		{From: "MYSORE", To: "OOTY", Vehicle: "SEDAN", Bucket: "1N2D", Km: 500, Bata: 1050, Permit: 500, Tolls: 850, PerKm: 12, Payable: 8400},
		{From: "MYSORE", To: "OOTY", Vehicle: "SEDAN", Bucket: "2N3D", Km: 750, Bata: 1400, Permit: 500, Tolls: 1350, PerKm: 12, Payable: 12250},
		{From: "MYSORE", To: "OOTY", Vehicle: "SEDAN", Bucket: "3N4D", Km: 1000, Bata: 1750, Permit: 500, Tolls: 1850, PerKm: 12, Payable: 16100},
		{From: "MYSORE", To: "OOTY", Vehicle: "SEDAN", Bucket: "4N5D", Km: 1250, Bata: 2100, Permit: 500, Tolls: 2350, PerKm: 12, Payable: 19950},
		{From: "MYSORE", To: "OOTY", Vehicle: "SUV", Bucket: "1N2D", Km: 500, Bata: 1200, Permit: 1000, Tolls: 850, PerKm: 16, Payable: 11050},
		{From: "MYSORE", To: "OOTY", Vehicle: "SUV", Bucket: "2N3D", Km: 750, Bata: 1600, Permit: 1000, Tolls: 1350, PerKm: 16, Payable: 15950},
		{From: "MYSORE", To: "OOTY", Vehicle: "SUV", Bucket: "3N4D", Km: 1000, Bata: 2000, Permit: 1000, Tolls: 1850, PerKm: 16, Payable: 20850},
		{From: "MYSORE", To: "OOTY", Vehicle: "SUV", Bucket: "4N5D", Km: 1250, Bata: 2400, Permit: 1000, Tolls: 2350, PerKm: 16, Payable: 25750},

		{From: "MYSORE", To: "COORG", Vehicle: "SEDAN", Bucket: "1N2D", Km: 500, Bata: 1050, Permit: 0, Tolls: 850, PerKm: 12, Payable: 7900},
		{From: "MYSORE", To: "COORG", Vehicle: "SEDAN", Bucket: "2N3D", Km: 750, Bata: 1400, Permit: 0, Tolls: 1350, PerKm: 12, Payable: 11750},
		{From: "MYSORE", To: "COORG", Vehicle: "SEDAN", Bucket: "3N4D", Km: 1000, Bata: 1750, Permit: 0, Tolls: 1850, PerKm: 12, Payable: 15600},
		{From: "MYSORE", To: "COORG", Vehicle: "SEDAN", Bucket: "4N5D", Km: 1250, Bata: 2100, Permit: 0, Tolls: 2350, PerKm: 12, Payable: 19450},
		{From: "MYSORE", To: "COORG", Vehicle: "SUV", Bucket: "1N2D", Km: 500, Bata: 1200, Permit: 0, Tolls: 850, PerKm: 16, Payable: 10050},
		{From: "MYSORE", To: "COORG", Vehicle: "SUV", Bucket: "2N3D", Km: 750, Bata: 1600, Permit: 0, Tolls: 1350, PerKm: 16, Payable: 14950},
		{From: "MYSORE", To: "COORG", Vehicle: "SUV", Bucket: "3N4D", Km: 1000, Bata: 2000, Permit: 0, Tolls: 1850, PerKm: 16, Payable: 19850},
		{From: "MYSORE", To: "COORG", Vehicle: "SUV", Bucket: "4N5D", Km: 1250, Bata: 2400, Permit: 0, Tolls: 2350, PerKm: 16, Payable: 24750},

		{From: "COIMBATORE", To: "OOTY", Vehicle: "SEDAN", Bucket: "1N2D", Payable: 9200},
		{From: "COIMBATORE", To: "OOTY", Vehicle: "SEDAN", Bucket: "2N3D", Payable: 11300},
		{From: "COIMBATORE", To: "OOTY", Vehicle: "SEDAN", Bucket: "3N4D", Payable: 13900},
		{From: "COIMBATORE", To: "OOTY", Vehicle: "SUV", Bucket: "1N2D", Payable: 12700},
		{From: "COIMBATORE", To: "OOTY", Vehicle: "SUV", Bucket: "2N3D", Payable: 15800},
		{From: "COIMBATORE", To: "OOTY", Vehicle: "SUV", Bucket: "3N4D", Payable: 18900},

		{From: "METTUPALAYAM", To: "OOTY", Vehicle: "SEDAN", Bucket: "1N2D", Payable: 7700},
		{From: "METTUPALAYAM", To: "OOTY", Vehicle: "SEDAN", Bucket: "2N3D", Payable: 9300},
		{From: "METTUPALAYAM", To: "OOTY", Vehicle: "SEDAN", Bucket: "3N4D", Payable: 11400},
		{From: "METTUPALAYAM", To: "OOTY", Vehicle: "SUV", Bucket: "1N2D", Payable: 9700},
		{From: "METTUPALAYAM", To: "OOTY", Vehicle: "SUV", Bucket: "2N3D", Payable: 12800},
		{From: "METTUPALAYAM", To: "OOTY", Vehicle: "SUV", Bucket: "3N4D", Payable: 15900},

		{From: "BANGALORE", To: "WAYANAD", Vehicle: "SEDAN", Bucket: "1N2D", Km: 750, Bata: 1200, Permit: 500, Tolls: 1700, PerKm: 10, Payable: 10900},
		{From: "BANGALORE", To: "WAYANAD", Vehicle: "SEDAN", Bucket: "2N3D", Km: 900, Bata: 1600, Permit: 500, Tolls: 1900, PerKm: 10, Payable: 13000},
		{From: "BANGALORE", To: "WAYANAD", Vehicle: "SEDAN", Bucket: "3N4D", Km: 1200, Bata: 2000, Permit: 500, Tolls: 2200, PerKm: 10, Payable: 16700},
		{From: "BANGALORE", To: "WAYANAD", Vehicle: "SEDAN", Bucket: "4N5D", Km: 1500, Bata: 2400, Permit: 500, Tolls: 2500, PerKm: 10, Payable: 20400},
		{From: "BANGALORE", To: "WAYANAD", Vehicle: "SUV", Bucket: "1N2D", Km: 750, Bata: 1500, Permit: 1000, Tolls: 1700, PerKm: 15, Payable: 15450},
		{From: "BANGALORE", To: "WAYANAD", Vehicle: "SUV", Bucket: "2N3D", Km: 900, Bata: 2000, Permit: 1000, Tolls: 1900, PerKm: 15, Payable: 18400},
		{From: "BANGALORE", To: "WAYANAD", Vehicle: "SUV", Bucket: "3N4D", Km: 1200, Bata: 2500, Permit: 1000, Tolls: 2200, PerKm: 15, Payable: 23700},
		{From: "BANGALORE", To: "WAYANAD", Vehicle: "SUV", Bucket: "4N5D", Km: 1500, Bata: 3000, Permit: 1000, Tolls: 2500, PerKm: 15, Payable: 29000},

		{From: "MYSORE", To: "WAYANAD", Vehicle: "SEDAN", Bucket: "1N2D", Km: 500, Bata: 1050, Permit: 500, Tolls: 850, PerKm: 12, Payable: 8400},
		{From: "MYSORE", To: "WAYANAD", Vehicle: "SEDAN", Bucket: "2N3D", Km: 750, Bata: 1400, Permit: 500, Tolls: 1350, PerKm: 12, Payable: 12250},
		{From: "MYSORE", To: "WAYANAD", Vehicle: "SEDAN", Bucket: "3N4D", Km: 1000, Bata: 1750, Permit: 500, Tolls: 1850, PerKm: 12, Payable: 16100},
		{From: "MYSORE", To: "WAYANAD", Vehicle: "SEDAN", Bucket: "4N5D", Km: 1250, Bata: 2100, Permit: 500, Tolls: 2350, PerKm: 12, Payable: 19950},
		{From: "MYSORE", To: "WAYANAD", Vehicle: "SUV", Bucket: "1N2D", Km: 500, Bata: 1200, Permit: 1000, Tolls: 850, PerKm: 16, Payable: 11050},
		{From: "MYSORE", To: "WAYANAD", Vehicle: "SUV", Bucket: "2N3D", Km: 750, Bata: 1600, Permit: 1000, Tolls: 1350, PerKm: 16, Payable: 15950},
		{From: "MYSORE", To: "WAYANAD", Vehicle: "SUV", Bucket: "3N4D", Km: 1000, Bata: 2000, Permit: 1000, Tolls: 1850, PerKm: 16, Payable: 20850},
		{From: "MYSORE", To: "WAYANAD", Vehicle: "SUV", Bucket: "4N5D", Km: 1250, Bata: 2400, Permit: 1000, Tolls: 2350, PerKm: 16, Payable: 25750},

		{From: "OOTY", To: "OOTY", Vehicle: "SEDAN", Bucket: "1N2D", AddInfo: "Local sightseeing", Payable: 2700},
		{From: "OOTY", To: "OOTY", Vehicle: "SEDAN", Bucket: "2N3D", AddInfo: "Local sightseeing", Payable: 6300},
		{From: "OOTY", To: "OOTY", Vehicle: "SEDAN", Bucket: "3N4D", AddInfo: "Local sightseeing", Payable: 8400},
		{From: "OOTY", To: "OOTY", Vehicle: "SEDAN", Bucket: "4N5D", AddInfo: "Local sightseeing", Payable: 10500},
		{From: "OOTY", To: "OOTY", Vehicle: "SUV", Bucket: "1N2D", AddInfo: "Local sightseeing", Payable: 6200},
		{From: "OOTY", To: "OOTY", Vehicle: "SUV", Bucket: "2N3D", AddInfo: "Local sightseeing", Payable: 9300},
		{From: "OOTY", To: "OOTY", Vehicle: "SUV", Bucket: "3N4D", AddInfo: "Local sightseeing", Payable: 13400},
		{From: "OOTY", To: "OOTY", Vehicle: "SUV", Bucket: "4N5D", AddInfo: "Local sightseeing", Payable: 6800},
	}
}
