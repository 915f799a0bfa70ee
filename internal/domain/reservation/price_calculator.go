package reservation

// DefaultNightlyRateCents applies when a campsite has no configured cost.
const DefaultNightlyRateCents int64 = 3000

type PriceCalculator interface {
	CalculatePrice(nightlyRate *Money, period StayPeriod) (Money, error)
}

type NightlyPriceCalculator struct {
	DefaultNightlyRate Money
}

func NewNightlyPriceCalculator() *NightlyPriceCalculator {
	return &NightlyPriceCalculator{
		DefaultNightlyRate: NewMoney(DefaultNightlyRateCents),
	}
}

func (pc *NightlyPriceCalculator) CalculatePrice(nightlyRate *Money, period StayPeriod) (Money, error) {
	rate := pc.DefaultNightlyRate
	if nightlyRate != nil {
		rate = *nightlyRate
	}
	return rate.Times(period.Nights())
}
