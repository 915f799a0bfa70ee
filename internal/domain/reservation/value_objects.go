package reservation

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// StayPeriod is a closed interval [start, end] with end strictly after start.
type StayPeriod struct {
	start time.Time
	end   time.Time
}

func NewStayPeriod(start, end time.Time) (StayPeriod, error) {
	if !end.After(start) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}
	return StayPeriod{start: start, end: end}, nil
}

// ReconstructStayPeriod skips validation for rows already in the ledger.
func ReconstructStayPeriod(start, end time.Time) StayPeriod {
	return StayPeriod{start: start, end: end}
}

func (p StayPeriod) Start() time.Time { return p.start }
func (p StayPeriod) End() time.Time   { return p.end }

// Nights counts calendar days, rounding partial days up.
func (p StayPeriod) Nights() int64 {
	d := p.end.Sub(p.start)
	n := int64(d / day)
	if d%day != 0 {
		n++
	}
	return n
}

// Overlaps treats touching endpoints as overlapping.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	startInside := !other.start.After(p.start) && !p.start.After(other.end)
	endInside := !other.start.After(p.end) && !p.end.After(other.end)
	covers := !other.start.Before(p.start) && !p.end.Before(other.end)
	return startInside || endInside || covers
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

// NewMoneyFromAmount converts a currency amount to cents, rounding half away from zero.
func NewMoneyFromAmount(amount float64) (Money, error) {
	if amount < 0 || math.IsNaN(amount) {
		return Money{}, ErrNegativePrice
	}
	cents := math.Round(amount * 100)
	if cents >= math.MaxInt64 {
		return Money{}, ErrPriceTooLarge
	}
	return Money{cents: int64(cents)}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}

// Times multiplies by a non-negative factor and fails instead of wrapping.
func (m Money) Times(n int64) (Money, error) {
	if n < 0 || m.cents < 0 {
		return Money{}, ErrNegativePrice
	}
	if m.cents != 0 && n > math.MaxInt64/m.cents {
		return Money{}, ErrPriceTooLarge
	}
	return Money{cents: m.cents * n}, nil
}

type Guests struct {
	value int
}

func NewGuests(n int) (Guests, error) {
	if n < 1 {
		return Guests{}, ErrInvalidGuests
	}
	return Guests{value: n}, nil
}

func (g Guests) Value() int {
	return g.value
}
