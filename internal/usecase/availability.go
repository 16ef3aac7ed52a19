package usecase

import (
	"math"

	"github.com/rail-reserve/railway-reservation-system/internal/domain"
)

// Seats-left range of the mocked availability: [30, 80).
const (
	MinSeatsLeft    = 30
	SeatsLeftSpread = 50
)

// AvailabilityGenerator produces the advisory seats-left view of a train.
// The same train, class and date always give the same counts.
type AvailabilityGenerator struct {
	newGenerator GeneratorFactory
}

// NewAvailabilityGenerator creates a generator. A nil factory uses NewLCG.
func NewAvailabilityGenerator(factory GeneratorFactory) *AvailabilityGenerator {
	if factory == nil {
		factory = NewLCG
	}
	return &AvailabilityGenerator{newGenerator: factory}
}

// For returns one entry per coach, in coach order.
func (g *AvailabilityGenerator) For(trainNo, cls, date string) []domain.CoachAvailability {
	rng := g.newGenerator(SeedFromString(trainNo + cls + date))

	out := make([]domain.CoachAvailability, 0, len(domain.Coaches))
	for _, coach := range domain.Coaches {
		out = append(out, domain.CoachAvailability{
			Coach:     coach,
			SeatsLeft: MinSeatsLeft + int(math.Floor(rng()*SeatsLeftSpread)),
		})
	}
	return out
}
