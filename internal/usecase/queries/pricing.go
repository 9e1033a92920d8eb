package queries

import (
	"context"
	"time"

	"rentdesk/internal/domain/booking"
	"rentdesk/internal/infra"

	"github.com/google/uuid"
)

type QuoteView struct {
	VehicleID *uuid.UUID `json:"vehicle_id,omitempty"`
	Days      int        `json:"days"`
	DailyRate int64      `json:"daily_rate"`
	Total     int64      `json:"total"`
	// Complete is false while the form is still missing inputs; the
	// zeroed figures then mean "no estimate yet", not "free".
	Complete bool `json:"complete"`
}

type VehicleRateStore interface {
	FindDailyRate(ctx context.Context, id uuid.UUID) (int64, error)
}

type PricingQueries interface {
	Quote(ctx context.Context, vehicleID *uuid.UUID, pickup, ret *time.Time) (*QuoteView, error)
}

type pricingQueriesImpl struct {
	rates VehicleRateStore
	calc  booking.PriceCalculator
}

func NewPricingQueries(rates VehicleRateStore, calc booking.PriceCalculator) PricingQueries {
	return &pricingQueriesImpl{rates: rates, calc: calc}
}

// Quote prices the live form preview. Any missing input, and an unknown
// vehicle id, yield the zero quote rather than an error so the form can
// keep rendering while the customer fills it in.
func (q *pricingQueriesImpl) Quote(ctx context.Context, vehicleID *uuid.UUID, pickup, ret *time.Time) (*QuoteView, error) {
	if vehicleID == nil || pickup == nil || ret == nil {
		return &QuoteView{VehicleID: vehicleID}, nil
	}

	rate, err := q.rates.FindDailyRate(ctx, *vehicleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &QuoteView{VehicleID: vehicleID}, nil
		}
		return nil, err
	}

	total := q.calc.Estimate(&rate, pickup, ret)
	if total.IsZero() {
		return &QuoteView{VehicleID: vehicleID}, nil
	}
	return &QuoteView{
		VehicleID: vehicleID,
		Days:      booking.RentalDays(*pickup, *ret),
		DailyRate: rate,
		Total:     total.Amount(),
		Complete:  true,
	}, nil
}
