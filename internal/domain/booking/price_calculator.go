package booking

import "time"

type PriceCalculator interface {
	Total(dailyRate Money, period RentalPeriod) Money
	Estimate(dailyRate *int64, pickup, ret *time.Time) Money
}

// DailyRatePriceCalculator bills whole days at the vehicle's snapshot rate.
type DailyRatePriceCalculator struct{}

func NewDailyRatePriceCalculator() *DailyRatePriceCalculator {
	return &DailyRatePriceCalculator{}
}

func (c *DailyRatePriceCalculator) Total(dailyRate Money, period RentalPeriod) Money {
	return dailyRate.MulDays(period.Days())
}

// Estimate is the live form preview: when the vehicle or either date is
// missing it returns zero instead of an error, matching the form showing
// no estimate rather than a failure.
func (c *DailyRatePriceCalculator) Estimate(dailyRate *int64, pickup, ret *time.Time) Money {
	if dailyRate == nil || *dailyRate <= 0 || pickup == nil || ret == nil {
		return Money{}
	}
	days := RentalDays(*pickup, *ret)
	return NewMoney(*dailyRate).MulDays(days)
}
