package usecase

import "github.com/rail-reserve/railway-reservation-system/internal/domain"

// FallbackBaseFare prices a class the train has no fare for.
const FallbackBaseFare int64 = 1000

// ConvenienceFeePercent is added to every base fare.
const ConvenienceFeePercent = 5

// BaseFare returns the per-passenger base fare of cls on t. The second result
// is false when the fallback fare was used.
func BaseFare(t domain.Train, cls string) (int64, bool) {
	if fare, ok := t.BaseFare[cls]; ok && fare > 0 {
		return fare, true
	}
	return FallbackBaseFare, false
}

// ConvenienceFee returns base * 5% rounded half up.
func ConvenienceFee(base int64) int64 {
	return (base*ConvenienceFeePercent + 50) / 100
}

// QuoteFare prices cls on t for pax passengers (at least one).
// Search results, seat prices and ticket amounts all come from here.
func QuoteFare(t domain.Train, cls string, pax int) domain.FareQuote {
	base, priced := BaseFare(t, cls)
	fee := ConvenienceFee(base)
	pax = domain.ClampPassengers(pax)

	return domain.FareQuote{
		BaseFare:       base,
		ConvenienceFee: fee,
		UnitFare:       base + fee,
		Passengers:     pax,
		Total:          (base + fee) * int64(pax),
		Fallback:       !priced,
	}
}
