package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rail-reserve/railway-reservation-system/internal/adapter/storage/memory"
	"github.com/rail-reserve/railway-reservation-system/internal/catalog"
	"github.com/rail-reserve/railway-reservation-system/internal/domain"
	"github.com/rail-reserve/railway-reservation-system/internal/infrastructure/retry"
	"github.com/rail-reserve/railway-reservation-system/internal/infrastructure/timeutil"
	"github.com/rail-reserve/railway-reservation-system/internal/repository"
)

const journeyDate = "2026-11-02"

type bookingFixture struct {
	svc       *BookingService
	pnr       *domain.MockPNRGenerator
	occupancy *repository.OccupancyStore
	tickets   *repository.TicketStore
	clock     *timeutil.MockClock
}

func newBookingFixture(t *testing.T, kv domain.KeyValueStore) *bookingFixture {
	t.Helper()
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	if kv == nil {
		kv = memory.New()
	}
	cfg := &repository.Config{Retry: &retry.NoRetry}
	occupancy, err := repository.NewOccupancyStore(ctx, kv, cfg)
	require.NoError(t, err)
	tickets, err := repository.NewTicketStore(ctx, kv, cfg)
	require.NoError(t, err)

	f := &bookingFixture{
		pnr:       domain.NewMockPNRGenerator(ctrl),
		occupancy: occupancy,
		tickets:   tickets,
		clock:     timeutil.NewMockClock(time.Date(2026, 10, 19, 8, 35, 0, 0, time.UTC)),
	}
	f.svc = NewBookingService(BookingDeps{
		Catalog:   catalog.Default(),
		Occupancy: occupancy,
		Tickets:   tickets,
		PNR:       f.pnr,
		Clock:     f.clock,
	})
	return f
}

// selected returns a session that searched NDLS->BCT 3A and picked 12952 S1.
func (f *bookingFixture) selected(t *testing.T, pax int) *domain.Session {
	t.Helper()
	ctx := context.Background()
	sess := domain.NewSession("s-"+t.Name(), f.clock.Now())

	_, err := f.svc.Search(ctx, sess, domain.SearchQuery{From: "NDLS", To: "BCT", Date: journeyDate, Class: "3A", Passengers: pax})
	require.NoError(t, err)
	_, err = f.svc.SelectCoach(ctx, sess, "12952", "", "S1")
	require.NoError(t, err)
	return sess
}

func (f *bookingFixture) pick(t *testing.T, sess *domain.Session, seats ...string) {
	t.Helper()
	for _, id := range seats {
		_, err := f.svc.ToggleSeat(context.Background(), sess, id)
		require.NoError(t, err, id)
	}
}

func TestBooking_EndToEnd(t *testing.T) {
	f := newBookingFixture(t, nil)
	f.pnr.EXPECT().Generate().Return("K7M2QX9A")
	ctx := context.Background()

	sess := f.selected(t, 2)
	assert.Equal(t, domain.StateSelecting, sess.State())

	f.pick(t, sess, "A1", "A2")
	assert.Equal(t, domain.StateReady, sess.State())

	co, err := f.svc.Checkout(sess)
	require.NoError(t, err)
	assert.Equal(t, "12952 Rajdhani Express • NDLS→BCT • 2026-11-02 • 3A S1 • Seats: A1, A2", co.Description)
	assert.Equal(t, int64(3886), co.Amount)

	conf, err := f.svc.ConfirmPayment(ctx, sess)
	require.NoError(t, err)

	assert.Equal(t, domain.StateConfirmed, conf.State)
	assert.Equal(t, domain.Ticket{
		PNR:       "K7M2QX9A",
		TrainNo:   "12952",
		TrainName: "Rajdhani Express",
		From:      "NDLS",
		To:        "BCT",
		Date:      journeyDate,
		Class:     "3A",
		Coach:     "S1",
		Seats:     []string{"A1", "A2"},
		Amount:    3886,
		BookedAt:  time.Date(2026, 10, 19, 8, 35, 0, 0, time.UTC),
	}, conf.Ticket)

	assert.Equal(t, []domain.Ticket{conf.Ticket}, f.tickets.List())
	assert.Equal(t, []string{"A1", "A2"}, f.occupancy.Occupied("12952|3A|2026-11-02|S1"))

	// The selection survives; the seat set is emptied.
	assert.Equal(t, domain.StateSelecting, sess.State())
	assert.Empty(t, sess.Booking.Seats)
	assert.Equal(t, "K7M2QX9A", sess.Booking.PNR)
	assert.False(t, sess.CheckoutOpen)
	require.NotNil(t, sess.Selection)
	assert.Equal(t, "S1", sess.Selection.Coach)

	m, err := f.svc.SeatMap(sess)
	require.NoError(t, err)
	a1, _ := m.Seat("A1")
	assert.Equal(t, domain.SeatOccupied, a1.Status)
}

func TestBooking_SeatMap(t *testing.T) {
	f := newBookingFixture(t, nil)
	require.NoError(t, f.occupancy.Claim(context.Background(), "12952|3A|2026-11-02|S1", []string{"C7"}))

	sess := f.selected(t, 2)
	f.pick(t, sess, "B2")

	m, err := f.svc.SeatMap(sess)
	require.NoError(t, err)

	assert.Len(t, m.Seats, domain.SeatsPerCoach)
	assert.Equal(t, domain.OccupancyKey("12952|3A|2026-11-02|S1"), m.Key)
	assert.Equal(t, int64(1943), m.UnitFare)

	counts := map[domain.SeatStatus]int{}
	for _, s := range m.Seats {
		counts[s.Status]++
		assert.Equal(t, int64(1943), s.Price)
		assert.NotEqual(t, 5, s.Column)
		assert.NotEqual(t, 15, s.Column)
	}
	assert.Equal(t, 1, counts[domain.SeatOccupied])
	assert.Equal(t, 1, counts[domain.SeatSelected])
	assert.Equal(t, 158, counts[domain.SeatAvailable])

	c7, ok := m.Seat("C7")
	require.True(t, ok)
	assert.Equal(t, "C", c7.Row)
	assert.Equal(t, 7, c7.Column)
}

func TestBooking_OccupancyScopedByKey(t *testing.T) {
	f := newBookingFixture(t, nil)
	require.NoError(t, f.occupancy.Claim(context.Background(), "12952|3A|2026-11-02|S2", []string{"A1"}))

	sess := f.selected(t, 1)

	_, err := f.svc.ToggleSeat(context.Background(), sess, "A1")
	assert.NoError(t, err, "A1 is sold in S2, not S1")
}

func TestBooking_ToggleSeat(t *testing.T) {
	ctx := context.Background()

	t.Run("occupied seat cannot be selected", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		require.NoError(t, f.occupancy.Claim(ctx, "12952|3A|2026-11-02|S1", []string{"D4"}))
		sess := f.selected(t, 2)

		_, err := f.svc.ToggleSeat(ctx, sess, "D4")

		assert.ErrorIs(t, err, domain.ErrSeatOccupied)
		assert.Empty(t, sess.Booking.Seats)
	})

	t.Run("limit equals passenger count", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		sess := f.selected(t, 2)
		f.pick(t, sess, "A1", "A2")

		_, err := f.svc.ToggleSeat(ctx, sess, "A3")

		assert.ErrorIs(t, err, domain.ErrSeatLimitReached)
		assert.Equal(t, []string{"A1", "A2"}, sess.Booking.Seats)
	})

	t.Run("toggle twice restores the set", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		sess := f.selected(t, 3)
		f.pick(t, sess, "A1")

		f.pick(t, sess, "J18", "J18")

		assert.Equal(t, []string{"A1"}, sess.Booking.Seats)
	})

	t.Run("seat ids are normalized", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		sess := f.selected(t, 1)

		sum, err := f.svc.ToggleSeat(ctx, sess, " b12 ")

		require.NoError(t, err)
		assert.Equal(t, []string{"B12"}, sum.Seats)
	})

	t.Run("invalid ids are rejected", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		sess := f.selected(t, 1)

		for _, id := range []string{"", "K1", "A0", "A5", "A15", "A19", "A01"} {
			_, err := f.svc.ToggleSeat(ctx, sess, id)
			assert.ErrorIs(t, err, domain.ErrInvalidSeat, id)
		}
	})

	t.Run("requires a selection", func(t *testing.T) {
		f := newBookingFixture(t, nil)

		_, err := f.svc.ToggleSeat(ctx, domain.NewSession("x", f.clock.Now()), "A1")

		assert.ErrorIs(t, err, domain.ErrNoSelection)
	})

	t.Run("cancels a pending checkout", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		sess := f.selected(t, 1)
		f.pick(t, sess, "A1")
		_, err := f.svc.Checkout(sess)
		require.NoError(t, err)

		f.pick(t, sess, "A1")
		f.pick(t, sess, "A2")

		assert.False(t, sess.CheckoutOpen)
		_, err = f.svc.ConfirmPayment(ctx, sess)
		assert.ErrorIs(t, err, domain.ErrCheckoutRequired)
	})
}

func TestBooking_SelectCoach(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a search", func(t *testing.T) {
		f := newBookingFixture(t, nil)

		_, err := f.svc.SelectCoach(ctx, domain.NewSession("x", f.clock.Now()), "12952", "3A", "S1")

		assert.ErrorIs(t, err, domain.ErrNoSearch)
	})

	t.Run("unknown train", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		sess := f.selected(t, 1)

		_, err := f.svc.SelectCoach(ctx, sess, "00000", "3A", "S1")

		assert.ErrorIs(t, err, domain.ErrTrainNotFound)
		assert.Equal(t, "12952", sess.Selection.Train.No, "failed selection leaves the old one")
	})

	t.Run("train outside search results", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		sess := f.selected(t, 1)
		f.pick(t, sess, "A1")

		_, err := f.svc.SelectCoach(ctx, sess, "12860", "CC", "S1")

		assert.ErrorIs(t, err, domain.ErrTrainNotFound)
		assert.Equal(t, "12952", sess.Selection.Train.No)
		assert.Equal(t, []string{"A1"}, sess.Booking.Seats)
	})

	t.Run("class not offered", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		sess := f.selected(t, 1)

		_, err := f.svc.SelectCoach(ctx, sess, "12261", "CC", "S1")

		assert.ErrorIs(t, err, domain.ErrClassNotOffered)
	})

	t.Run("unknown coach", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		sess := f.selected(t, 1)

		_, err := f.svc.SelectCoach(ctx, sess, "12952", "3A", "S9")

		assert.ErrorIs(t, err, domain.ErrCoachNotFound)
	})

	t.Run("reselection replaces seats", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		sess := f.selected(t, 2)
		f.pick(t, sess, "A1")

		m, err := f.svc.SelectCoach(ctx, sess, "12952", "2A", "s2")

		require.NoError(t, err)
		assert.Empty(t, sess.Booking.Seats)
		assert.Equal(t, "S2", sess.Booking.Coach)
		assert.Equal(t, domain.OccupancyKey("12952|2A|2026-11-02|S2"), m.Key)
		assert.Equal(t, int64(2573), m.UnitFare)
	})
}

func TestBooking_SetPassengers(t *testing.T) {
	f := newBookingFixture(t, nil)
	sess := f.selected(t, 3)
	f.pick(t, sess, "A1", "A2")

	_, err := f.svc.SetPassengers(sess, 1)
	assert.True(t, domain.IsInvalidRequest(err))
	assert.Equal(t, 3, sess.Passengers())

	sum, err := f.svc.SetPassengers(sess, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.StateReady, sum.State)
	assert.True(t, sum.CanCheckout)
	assert.Equal(t, int64(3886), sum.Total)
	assert.Equal(t, int64(3886), sess.Results[0].Fare.Total, "results are requoted")

	_, err = f.svc.SetPassengers(domain.NewSession("x", f.clock.Now()), 2)
	assert.ErrorIs(t, err, domain.ErrNoSearch)
}

func TestBooking_SetPassengersClamps(t *testing.T) {
	f := newBookingFixture(t, nil)
	sess := f.selected(t, 2)

	sum, err := f.svc.SetPassengers(sess, -4)

	require.NoError(t, err)
	assert.Equal(t, 1, sum.Passengers)
}

func TestBooking_Summary(t *testing.T) {
	f := newBookingFixture(t, nil)

	empty := f.svc.Summary(domain.NewSession("x", f.clock.Now()))
	assert.Equal(t, domain.StateNoSelection, empty.State)
	assert.Equal(t, 1, empty.Passengers)
	assert.Zero(t, empty.Total)
	assert.False(t, empty.CanCheckout)

	sess := f.selected(t, 2)
	f.pick(t, sess, "E10")
	sum := f.svc.Summary(sess)

	assert.Equal(t, "12952", sum.TrainNo)
	assert.Equal(t, "Rajdhani Express", sum.TrainName)
	assert.Equal(t, "NDLS", sum.From)
	assert.Equal(t, "BCT", sum.To)
	assert.Equal(t, journeyDate, sum.Date)
	assert.Equal(t, "3A", sum.Class)
	assert.Equal(t, "S1", sum.Coach)
	assert.Equal(t, int64(1943), sum.Total)
	assert.Equal(t, int64(1943), sess.Booking.Fare)
	assert.False(t, sum.CanCheckout)
}

func TestBooking_CheckoutAndPaymentGuards(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t, nil)

	_, err := f.svc.Checkout(domain.NewSession("x", f.clock.Now()))
	assert.ErrorIs(t, err, domain.ErrNoSelection)

	sess := f.selected(t, 2)
	f.pick(t, sess, "A1")

	_, err = f.svc.Checkout(sess)
	assert.ErrorIs(t, err, domain.ErrIncompleteSelection)
	assert.False(t, sess.CheckoutOpen)

	_, err = f.svc.ConfirmPayment(ctx, sess)
	assert.ErrorIs(t, err, domain.ErrCheckoutRequired)
	assert.Empty(t, f.tickets.List())
}

func TestBooking_SeatSoldByAnotherSession(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t, nil)
	f.pnr.EXPECT().Generate().Return("AAAAAAAA")

	first := f.selected(t, 1)
	second := f.selected(t, 1)
	f.pick(t, first, "F6")
	f.pick(t, second, "F6")

	_, err := f.svc.Checkout(first)
	require.NoError(t, err)
	_, err = f.svc.Checkout(second)
	require.NoError(t, err)

	_, err = f.svc.ConfirmPayment(ctx, first)
	require.NoError(t, err)

	_, err = f.svc.ConfirmPayment(ctx, second)
	assert.ErrorIs(t, err, domain.ErrSeatOccupied)
	assert.Equal(t, []string{"F6"}, second.Booking.Seats, "failed payment leaves the session unchanged")
	assert.Len(t, f.tickets.List(), 1)

	// The losing session can still release the seat it holds.
	_, err = f.svc.ToggleSeat(ctx, second, "F6")
	assert.NoError(t, err)
}

func TestBooking_StorageFailureDoesNotFailPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := domain.NewMockKeyValueStore(ctrl)
	kv.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, domain.ErrKeyNotFound).Times(2)
	kv.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full")).Times(2)

	f := newBookingFixture(t, kv)
	f.pnr.EXPECT().Generate().Return("BBBBBBBB")
	sess := f.selected(t, 1)
	f.pick(t, sess, "G9")
	_, err := f.svc.Checkout(sess)
	require.NoError(t, err)

	conf, err := f.svc.ConfirmPayment(context.Background(), sess)

	require.NoError(t, err)
	assert.Equal(t, "BBBBBBBB", conf.Ticket.PNR)
	assert.Equal(t, []string{"G9"}, f.occupancy.Occupied(sess.Key()))
	assert.Len(t, f.tickets.List(), 1)
}

func TestBooking_NewSearchResetsSelection(t *testing.T) {
	f := newBookingFixture(t, nil)
	sess := f.selected(t, 1)
	f.pick(t, sess, "A1")

	resp, err := f.svc.Search(context.Background(), sess, domain.SearchQuery{From: "HWH", To: "CSTM", Date: "2026-12-01", Class: "SL", Passengers: 4})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Nil(t, sess.Selection)
	assert.Empty(t, sess.Booking.Seats)
	assert.Equal(t, 4, sess.Passengers())
	assert.Equal(t, domain.StateNoSelection, sess.State())
}

func TestBooking_Tickets(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t, nil)
	gomock.InOrder(
		f.pnr.EXPECT().Generate().Return("CCCCCCCC"),
		f.pnr.EXPECT().Generate().Return("DDDDDDDD"),
	)

	sess := f.selected(t, 1)
	for _, seat := range []string{"H1", "H2"} {
		f.pick(t, sess, seat)
		_, err := f.svc.Checkout(sess)
		require.NoError(t, err)
		_, err = f.svc.ConfirmPayment(ctx, sess)
		require.NoError(t, err)
	}

	list := f.svc.Tickets()
	require.Len(t, list, 2)
	assert.Equal(t, "DDDDDDDD", list[0].PNR, "most recent first")
	assert.Equal(t, "CCCCCCCC", list[1].PNR)

	got, err := f.svc.Ticket("cccccccc")
	require.NoError(t, err)
	assert.Equal(t, []string{"H1"}, got.Seats)

	_, err = f.svc.Ticket("ZZZZZZZZ")
	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
	_, err = f.svc.Ticket("bad")
	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
}
