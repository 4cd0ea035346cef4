package mysql

const upsertHotelRateSQL = `
INSERT INTO hotel_rates
  (location, tier, hotel, room_type, nightly_rate)
VALUES
  (?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  room_type    = VALUES(room_type),
  nightly_rate = VALUES(nightly_rate),
  updated_at   = CURRENT_TIMESTAMP
`

const upsertTravelRateSQL = `
INSERT INTO travel_rates
  (from_location, to_location, vehicle, bucket, km, bata, permit, tolls, per_km, add_info, payable)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  km         = VALUES(km),
  bata       = VALUES(bata),
  permit     = VALUES(permit),
  tolls      = VALUES(tolls),
  per_km     = VALUES(per_km),
  add_info   = VALUES(add_info),
  payable    = VALUES(payable),
  updated_at = CURRENT_TIMESTAMP
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

// Full-catalog reads: the engine indexes everything in memory at startup, so
// there are no keyed row lookups here.
const selectHotelRatesSQL = `
SELECT location, tier, hotel, room_type, nightly_rate
FROM hotel_rates
ORDER BY location, tier, hotel
`

const selectTravelRatesSQL = `
SELECT from_location, to_location, vehicle, bucket, km, bata, permit, tolls, per_km, add_info, payable
FROM travel_rates
ORDER BY from_location, to_location, vehicle, bucket
`
