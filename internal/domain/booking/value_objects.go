package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidDateRange = errors.New("return datetime must be after pickup datetime")
	ErrNegativeAmount   = errors.New("amount cannot be negative")
)

// Money is an amount in whole rupiah. Daily rates in the fleet are plain
// rupiah figures (e.g. 350000), so no sub-unit is carried.
type Money struct {
	amount int64
}

func NewMoney(amount int64) Money {
	return Money{amount: amount}
}

func NewMoneyChecked(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: amount}, nil
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) IsZero() bool {
	return m.amount == 0
}

func (m Money) MulDays(days int) Money {
	return Money{amount: m.amount * int64(days)}
}

// RentalPeriod is a validated pickup/return datetime pair.
type RentalPeriod struct {
	pickup time.Time
	ret    time.Time
}

func NewRentalPeriod(pickup, ret time.Time) (RentalPeriod, error) {
	if !ret.After(pickup) {
		return RentalPeriod{}, ErrInvalidDateRange
	}
	return RentalPeriod{pickup: pickup, ret: ret}, nil
}

func (p RentalPeriod) Pickup() time.Time { return p.pickup }
func (p RentalPeriod) Return() time.Time { return p.ret }

// Days bills in whole calendar days: the ceiling of the period length, and
// never less than one so a same-day return still counts as a full day.
func (p RentalPeriod) Days() int {
	return RentalDays(p.pickup, p.ret)
}

// RentalDays works on a raw datetime pair so live estimates can use it
// before the pair has been validated. The absolute difference is taken so
// operand order does not flip the sign.
func RentalDays(pickup, ret time.Time) int {
	diff := ret.Sub(pickup)
	if diff < 0 {
		diff = -diff
	}
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}
