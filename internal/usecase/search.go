package usecase

import (
	"context"

	"github.com/rail-reserve/railway-reservation-system/internal/domain"
	"github.com/rail-reserve/railway-reservation-system/internal/infrastructure/logger"
)

// TrainCatalog is the read-only train data the flow needs.
type TrainCatalog interface {
	// Trains returns every train in catalog order.
	Trains() []domain.Train

	// Train looks up a train by number, returning domain.ErrTrainNotFound if absent.
	Train(no string) (domain.Train, error)
}

// SearchUseCase defines the train search operation.
type SearchUseCase interface {
	// Search returns the trains running directly from q.From to q.To in class q.Class,
	// in catalog order, each with its availability view and fare quote.
	// The date is validated but does not filter trains.
	Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchResponse, error)
}

type searchUseCase struct {
	catalog      TrainCatalog
	availability *AvailabilityGenerator
	log          *logger.Logger
}

// NewSearchUseCase creates a SearchUseCase. A nil availability generator uses
// the default LCG and a nil logger discards output.
func NewSearchUseCase(catalog TrainCatalog, availability *AvailabilityGenerator, log *logger.Logger) SearchUseCase {
	if availability == nil {
		availability = NewAvailabilityGenerator(nil)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &searchUseCase{
		catalog:      catalog,
		availability: availability,
		log:          log,
	}
}

// Search implements SearchUseCase.Search.
func (uc *searchUseCase) Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q.Normalize()
	if err := q.Validate(); err != nil {
		return nil, err
	}

	var results []domain.SearchResult
	for _, t := range uc.catalog.Trains() {
		if !t.Serves(q.From, q.To) || !t.HasClass(q.Class) {
			continue
		}

		quote := QuoteFare(t, q.Class, q.Passengers)
		if quote.Fallback {
			uc.log.Warn().
				Str("train", t.No).
				Str("cls", q.Class).
				Int64("base_fare", quote.BaseFare).
				Msg("no fare for class, using fallback base fare")
		}

		results = append(results, domain.SearchResult{
			Train:        t,
			Availability: uc.availability.For(t.No, q.Class, q.Date),
			Fare:         quote,
		})
	}

	uc.log.Debug().
		Str("from", q.From).
		Str("to", q.To).
		Str("date", q.Date).
		Str("cls", q.Class).
		Int("pax", q.Passengers).
		Int("results", len(results)).
		Msg("train search")

	return domain.NewSearchResponse(q, results), nil
}
