package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rail-reserve/railway-reservation-system/internal/domain"
	"github.com/rail-reserve/railway-reservation-system/internal/infrastructure/logger"
	"github.com/rail-reserve/railway-reservation-system/internal/infrastructure/timeutil"
)

// OccupancyRepository tracks sold seats per occupancy key.
type OccupancyRepository interface {
	// Occupied returns the sold seat ids for key.
	Occupied(key domain.OccupancyKey) []string

	// Claim marks seats as sold. It fails with domain.ErrSeatOccupied, changing
	// nothing, if any seat is already sold. An error wrapping domain.ErrStorage
	// means the claim was applied but could not be persisted.
	Claim(ctx context.Context, key domain.OccupancyKey, seats []string) error
}

// TicketRepository stores issued tickets, most recent first.
type TicketRepository interface {
	// Add prepends a ticket. An error wrapping domain.ErrStorage means the
	// ticket was recorded but could not be persisted.
	Add(ctx context.Context, t domain.Ticket) error

	// List returns every ticket, most recent first.
	List() []domain.Ticket

	// Get returns the ticket with the given PNR or domain.ErrTicketNotFound.
	Get(pnr string) (domain.Ticket, error)
}

// BookingDeps are the collaborators of a BookingService.
type BookingDeps struct {
	Catalog   TrainCatalog
	Search    SearchUseCase
	Occupancy OccupancyRepository
	Tickets   TicketRepository

	// PNR defaults to NewPNRGenerator
	PNR domain.PNRGenerator

	// Clock defaults to the real clock
	Clock timeutil.Clock

	// Logger defaults to a discarding logger
	Logger *logger.Logger
}

// BookingService runs the booking state machine on caller-owned sessions:
// NoSelection -> Selecting -> Ready -> Confirmed -> Selecting.
// Callers must not use a session from two goroutines at once; see SessionRegistry.
type BookingService struct {
	catalog   TrainCatalog
	search    SearchUseCase
	occupancy OccupancyRepository
	tickets   TicketRepository
	pnr       domain.PNRGenerator
	clock     timeutil.Clock
	log       *logger.Logger
}

// NewBookingService creates a BookingService.
func NewBookingService(deps BookingDeps) *BookingService {
	svc := &BookingService{
		catalog:   deps.Catalog,
		search:    deps.Search,
		occupancy: deps.Occupancy,
		tickets:   deps.Tickets,
		pnr:       deps.PNR,
		clock:     deps.Clock,
		log:       deps.Logger,
	}
	if svc.log == nil {
		svc.log = logger.Nop()
	}
	if svc.search == nil {
		svc.search = NewSearchUseCase(deps.Catalog, nil, svc.log)
	}
	if svc.pnr == nil {
		svc.pnr = NewPNRGenerator()
	}
	if svc.clock == nil {
		svc.clock = timeutil.NewRealClock()
	}
	return svc
}

// Search runs a search and stores query and results on the session.
// The previous selection and seats are dropped: they were bound to the old
// date and passenger count.
func (s *BookingService) Search(ctx context.Context, sess *domain.Session, q domain.SearchQuery) (*domain.SearchResponse, error) {
	resp, err := s.search.Search(ctx, q)
	if err != nil {
		return nil, err
	}

	query := resp.Query
	sess.Query = &query
	sess.Results = resp.Results
	sess.Selection = nil
	sess.Booking = domain.Booking{}
	sess.CheckoutOpen = false

	return resp, nil
}

// SelectCoach replaces the selection and empties the seat set.
// An empty class means the class of the last search.
func (s *BookingService) SelectCoach(ctx context.Context, sess *domain.Session, trainNo, cls, coach string) (*domain.SeatMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if sess.Query == nil {
		return nil, domain.ErrNoSearch
	}

	cls = strings.ToUpper(strings.TrimSpace(cls))
	if cls == "" {
		cls = sess.Query.Class
	}
	coach = strings.ToUpper(strings.TrimSpace(coach))

	train, err := s.catalog.Train(strings.TrimSpace(trainNo))
	if err != nil {
		return nil, err
	}
	if !inResults(sess.Results, train.No) {
		return nil, fmt.Errorf("%w: %s is not in the search results", domain.ErrTrainNotFound, train.No)
	}
	if !train.HasClass(cls) {
		return nil, fmt.Errorf("%w: %s on train %s", domain.ErrClassNotOffered, cls, train.No)
	}
	if !domain.IsCoach(coach) {
		return nil, fmt.Errorf("%w: %q", domain.ErrCoachNotFound, coach)
	}

	sess.Selection = &domain.Selection{Train: train, Class: cls, Coach: coach}
	sess.Booking = domain.Booking{TrainNo: train.No, Coach: coach}
	sess.CheckoutOpen = false

	s.log.WithSession(sess.ID).Info().
		Str("train", train.No).
		Str("cls", cls).
		Str("coach", coach).
		Msg("coach selected")

	return s.SeatMap(sess)
}

// SeatMap builds the coach layout for the current selection. Seats in the
// working set are reported as selected, other sold seats as occupied.
func (s *BookingService) SeatMap(sess *domain.Session) (*domain.SeatMap, error) {
	if sess.Selection == nil {
		return nil, domain.ErrNoSelection
	}

	key := sess.Key()
	occupied := s.occupiedSet(key)
	unit := s.unitFare(sess)

	m := &domain.SeatMap{
		Key:      key,
		UnitFare: unit,
		Seats:    make([]domain.Seat, 0, domain.SeatsPerCoach),
	}
	for _, id := range domain.AllSeatIDs() {
		status := domain.SeatAvailable
		switch {
		case sess.Booking.Has(id):
			status = domain.SeatSelected
		case occupied[id]:
			status = domain.SeatOccupied
		}
		row, col, _ := domain.ParseSeatID(id)
		m.Seats = append(m.Seats, domain.Seat{
			ID:     id,
			Row:    string(row),
			Column: col,
			Status: status,
			Price:  unit,
		})
	}
	return m, nil
}

// ToggleSeat removes a selected seat or adds an available one.
// A selected seat can always be removed. Adding fails for a sold seat or when
// the set already holds one seat per passenger. Any toggle cancels a pending checkout.
func (s *BookingService) ToggleSeat(ctx context.Context, sess *domain.Session, id string) (*domain.BookingSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if sess.Selection == nil {
		return nil, domain.ErrNoSelection
	}

	id = strings.ToUpper(strings.TrimSpace(id))
	if _, _, err := domain.ParseSeatID(id); err != nil {
		return nil, err
	}

	switch {
	case sess.Booking.Has(id):
		sess.Booking.Remove(id)
	case s.occupiedSet(sess.Key())[id]:
		return nil, fmt.Errorf("%w: %s", domain.ErrSeatOccupied, id)
	case len(sess.Booking.Seats) >= sess.Passengers():
		return nil, domain.ErrSeatLimitReached
	default:
		sess.Booking.Add(id)
	}

	sess.CheckoutOpen = false
	return s.Summary(sess), nil
}

// SetPassengers changes the passenger count of the session's search.
// The count is clamped to at least one and cannot drop below the seats
// already picked. It cancels a pending checkout and requotes the results.
func (s *BookingService) SetPassengers(sess *domain.Session, pax int) (*domain.BookingSummary, error) {
	if sess.Query == nil {
		return nil, domain.ErrNoSearch
	}

	pax = domain.ClampPassengers(pax)
	if picked := len(sess.Booking.Seats); pax < picked {
		return nil, domain.WrapInvalidRequest("pax %d is below the %d seats already selected", pax, picked)
	}

	sess.Query.Passengers = pax
	for i := range sess.Results {
		sess.Results[i].Fare = QuoteFare(sess.Results[i].Train, sess.Query.Class, pax)
	}
	sess.CheckoutOpen = false

	return s.Summary(sess), nil
}

// Summary describes the booking panel of the session.
func (s *BookingService) Summary(sess *domain.Session) *domain.BookingSummary {
	sum := &domain.BookingSummary{
		SessionID:    sess.ID,
		State:        sess.State(),
		Passengers:   sess.Passengers(),
		Seats:        append([]string{}, sess.Booking.Seats...),
		CheckoutOpen: sess.CheckoutOpen,
	}
	if sess.Query != nil {
		sum.From = sess.Query.From
		sum.To = sess.Query.To
		sum.Date = sess.Query.Date
	}
	if sess.LastTicket != nil {
		sum.LastPNR = sess.LastTicket.PNR
	}
	if sess.Selection == nil {
		return sum
	}

	sum.TrainNo = sess.Selection.Train.No
	sum.TrainName = sess.Selection.Train.Name
	sum.Class = sess.Selection.Class
	sum.Coach = sess.Selection.Coach
	sum.UnitFare = s.unitFare(sess)
	sum.Total = sum.UnitFare * int64(len(sess.Booking.Seats))
	sum.CanCheckout = sum.State == domain.StateReady
	sess.Booking.Fare = sum.Total

	return sum
}

// Checkout opens a pending checkout. It needs one seat per passenger.
func (s *BookingService) Checkout(sess *domain.Session) (*domain.Checkout, error) {
	if sess.Selection == nil {
		return nil, domain.ErrNoSelection
	}
	if sess.State() != domain.StateReady {
		return nil, fmt.Errorf("%w: %d of %d seats selected",
			domain.ErrIncompleteSelection, len(sess.Booking.Seats), sess.Passengers())
	}

	sel := sess.Selection
	sess.CheckoutOpen = true

	return &domain.Checkout{
		Description: fmt.Sprintf("%s %s • %s→%s • %s • %s %s • Seats: %s",
			sel.Train.No, sel.Train.Name,
			sess.Query.From, sess.Query.To,
			sess.Query.Date,
			sel.Class, sel.Coach,
			strings.Join(sess.Booking.Seats, ", ")),
		Amount: s.unitFare(sess) * int64(len(sess.Booking.Seats)),
	}, nil
}

// ConfirmPayment completes a pending checkout: it claims the seats, issues a
// ticket and empties the seat set while keeping the selection.
// Seats sold by another session since they were picked fail the payment with
// domain.ErrSeatOccupied and leave the session unchanged. Persistence failures
// are logged; the in-memory stores remain authoritative.
func (s *BookingService) ConfirmPayment(ctx context.Context, sess *domain.Session) (*domain.Confirmation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !sess.CheckoutOpen {
		return nil, domain.ErrCheckoutRequired
	}
	if sess.Selection == nil {
		return nil, domain.ErrNoSelection
	}
	if sess.State() != domain.StateReady {
		return nil, domain.ErrIncompleteSelection
	}

	log := s.log.WithSession(sess.ID)
	sel := sess.Selection
	key := sess.Key()
	seats := append([]string{}, sess.Booking.Seats...)

	if err := s.occupancy.Claim(ctx, key, seats); err != nil {
		if !errors.Is(err, domain.ErrStorage) {
			return nil, err
		}
		log.Error().Err(err).Str("key", string(key)).Msg("failed to persist occupied seats")
	}

	ticket := domain.Ticket{
		PNR:       s.pnr.Generate(),
		TrainNo:   sel.Train.No,
		TrainName: sel.Train.Name,
		From:      sess.Query.From,
		To:        sess.Query.To,
		Date:      sess.Query.Date,
		Class:     sel.Class,
		Coach:     sel.Coach,
		Seats:     seats,
		Amount:    QuoteFare(sel.Train, sel.Class, len(seats)).Total,
		BookedAt:  s.clock.Now().UTC(),
	}

	if err := s.tickets.Add(ctx, ticket); err != nil {
		if !errors.Is(err, domain.ErrStorage) {
			return nil, err
		}
		log.Error().Err(err).Str("pnr", ticket.PNR).Msg("failed to persist ticket")
	}

	sess.Booking.PNR = ticket.PNR
	sess.Booking.Clear()
	sess.Booking.Fare = 0
	sess.LastTicket = &ticket
	sess.CheckoutOpen = false

	log.WithPNR(ticket.PNR).Info().
		Str("key", string(key)).
		Strs("seats", seats).
		Int64("amount", ticket.Amount).
		Msg("payment confirmed")

	return &domain.Confirmation{Ticket: ticket, State: domain.StateConfirmed}, nil
}

// Tickets returns every issued ticket, most recent first.
func (s *BookingService) Tickets() []domain.Ticket {
	return s.tickets.List()
}

// Ticket looks up a ticket by PNR, case-insensitively.
func (s *BookingService) Ticket(pnr string) (domain.Ticket, error) {
	pnr = strings.ToUpper(strings.TrimSpace(pnr))
	if !domain.IsValidPNR(pnr) {
		return domain.Ticket{}, fmt.Errorf("%w: %q", domain.ErrTicketNotFound, pnr)
	}
	return s.tickets.Get(pnr)
}

func (s *BookingService) occupiedSet(key domain.OccupancyKey) map[string]bool {
	if key == "" {
		return map[string]bool{}
	}
	seats := s.occupancy.Occupied(key)
	set := make(map[string]bool, len(seats))
	for _, id := range seats {
		set[id] = true
	}
	return set
}

func (s *BookingService) unitFare(sess *domain.Session) int64 {
	if sess.Selection == nil {
		return 0
	}
	quote := QuoteFare(sess.Selection.Train, sess.Selection.Class, 1)
	if quote.Fallback {
		s.log.Warn().
			Str("train", sess.Selection.Train.No).
			Str("cls", sess.Selection.Class).
			Msg("no fare for class, using fallback base fare")
	}
	return quote.UnitFare
}

func inResults(results []domain.SearchResult, trainNo string) bool {
	for _, r := range results {
		if r.Train.No == trainNo {
			return true
		}
	}
	return false
}
