package domain

// CoachAvailability is the advisory seats-left count for one coach.
// It is cosmetic only and never gates seat selection.
type CoachAvailability struct {
	Coach     string `json:"coach"`
	SeatsLeft int    `json:"seatsLeft"`
}

// FareQuote is the price breakdown for a class and passenger count.
type FareQuote struct {
	// BaseFare is the per-passenger base fare
	BaseFare int64 `json:"baseFare"`

	// ConvenienceFee is round(BaseFare * 5%)
	ConvenienceFee int64 `json:"convenienceFee"`

	// UnitFare is BaseFare + ConvenienceFee
	UnitFare int64 `json:"unitFare"`

	// Passengers is the passenger count the total covers (at least 1)
	Passengers int `json:"passengers"`

	// Total is UnitFare * Passengers
	Total int64 `json:"total"`

	// Fallback is true when the train has no price for the class
	// and the system-wide fallback base fare was used
	Fallback bool `json:"fallback,omitempty"`
}
