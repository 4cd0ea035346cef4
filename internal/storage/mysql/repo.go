package mysql

import (
	"context"
	"database/sql"

	"toorizo_quote/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertHotelRate(ctx context.Context, h domain.HotelRate) error {
	_, err := r.db.ExecContext(ctx, upsertHotelRateSQL,
		h.Location,
		string(h.Tier),
		h.Hotel,
		h.RoomType,
		h.NightlyRate,
	)
	return err
}

func (r *Repo) UpsertTravelRate(ctx context.Context, t domain.TravelRate) error {
	var addInfo any
	if t.AddInfo != "" {
		addInfo = t.AddInfo
	}
	_, err := r.db.ExecContext(ctx, upsertTravelRateSQL,
		t.From,
		t.To,
		t.Vehicle,
		t.Bucket,
		t.Km,
		t.Bata,
		t.Permit,
		t.Tolls,
		t.PerKm,
		addInfo,
		t.Payable,
	)
	return err
}

func (r *Repo) HotelRates(ctx context.Context) ([]domain.HotelRate, error) {
	rows, err := r.db.QueryContext(ctx, selectHotelRatesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.HotelRate
	for rows.Next() {
		var h domain.HotelRate
		var tier string
		if err := rows.Scan(&h.Location, &tier, &h.Hotel, &h.RoomType, &h.NightlyRate); err != nil {
			return nil, err
		}
		h.Tier = domain.PackageTier(tier)
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *Repo) TravelRates(ctx context.Context) ([]domain.TravelRate, error) {
	rows, err := r.db.QueryContext(ctx, selectTravelRatesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TravelRate
	for rows.Next() {
		var t domain.TravelRate
		var addInfo sql.NullString
		if err := rows.Scan(
			&t.From,
			&t.To,
			&t.Vehicle,
			&t.Bucket,
			&t.Km,
			&t.Bata,
			&t.Permit,
			&t.Tolls,
			&t.PerKm,
			&addInfo,
			&t.Payable,
		); err != nil {
			return nil, err
		}
		if addInfo.Valid {
			t.AddInfo = addInfo.String
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
