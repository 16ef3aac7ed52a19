package domain

import "time"

// BookingState is the position of a session in the booking flow.
type BookingState string

// Booking states.
const (
	// StateNoSelection means no coach has been chosen yet
	StateNoSelection BookingState = "no_selection"

	// StateSelecting means a coach is chosen and fewer seats than passengers are picked
	StateSelecting BookingState = "selecting"

	// StateReady means the seat count equals the passenger count
	StateReady BookingState = "ready"

	// StateConfirmed is reported once, by the payment that issued a ticket
	StateConfirmed BookingState = "confirmed"
)

// Selection is the in-progress booking target. It is replaced on every coach pick.
type Selection struct {
	Train Train  `json:"train"`
	Class string `json:"cls"`
	Coach string `json:"coach"`
}

// Booking is the working set of chosen seats for the active selection.
// Seats keep their pick order and never contain duplicates.
type Booking struct {
	TrainNo string   `json:"trainNo"`
	Coach   string   `json:"coach"`
	Seats   []string `json:"seats"`
	Fare    int64    `json:"fare"`
	PNR     string   `json:"pnr,omitempty"`
}

// Has reports whether the seat is in the working set.
func (b *Booking) Has(id string) bool {
	for _, s := range b.Seats {
		if s == id {
			return true
		}
	}
	return false
}

// Add appends a seat if it is not already present.
func (b *Booking) Add(id string) {
	if !b.Has(id) {
		b.Seats = append(b.Seats, id)
	}
}

// Remove drops a seat from the working set.
func (b *Booking) Remove(id string) {
	for i, s := range b.Seats {
		if s == id {
			b.Seats = append(b.Seats[:i], b.Seats[i+1:]...)
			return
		}
	}
}

// Clear empties the working set; the booking itself is reused.
func (b *Booking) Clear() {
	b.Seats = nil
}

// Session is the state of one booking flow. It is owned by the caller and
// passed to each booking operation; nothing in the flow keeps global state.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	// Query is the last search; nil until the first search
	Query *SearchQuery `json:"query,omitempty"`

	// Results is the outcome of the last search
	Results []SearchResult `json:"results,omitempty"`

	// Selection is nil until a coach is chosen
	Selection *Selection `json:"selection,omitempty"`

	// Booking is the working seat set for Selection
	Booking Booking `json:"booking"`

	// CheckoutOpen is set by checkout and consumed by payment
	CheckoutOpen bool `json:"checkoutOpen"`

	// LastTicket is the ticket issued by the most recent payment
	LastTicket *Ticket `json:"lastTicket,omitempty"`
}

// NewSession creates an empty session.
func NewSession(id string, now time.Time) *Session {
	return &Session{ID: id, CreatedAt: now}
}

// Passengers returns the passenger count of the current query (at least 1).
func (s *Session) Passengers() int {
	if s.Query == nil {
		return 1
	}
	return ClampPassengers(s.Query.Passengers)
}

// State derives the booking state from the selection and seat count.
func (s *Session) State() BookingState {
	switch {
	case s.Selection == nil:
		return StateNoSelection
	case len(s.Booking.Seats) == s.Passengers():
		return StateReady
	default:
		return StateSelecting
	}
}

// Key returns the occupancy key of the current selection.
// It returns "" when there is no selection or no search.
func (s *Session) Key() OccupancyKey {
	if s.Selection == nil || s.Query == nil {
		return ""
	}
	return NewOccupancyKey(s.Selection.Train.No, s.Selection.Class, s.Query.Date, s.Selection.Coach)
}

// BookingSummary is the read model of a session's booking panel.
type BookingSummary struct {
	SessionID  string       `json:"sessionId"`
	State      BookingState `json:"state"`
	TrainNo    string       `json:"trainNo,omitempty"`
	TrainName  string       `json:"trainName,omitempty"`
	From       string       `json:"from,omitempty"`
	To         string       `json:"to,omitempty"`
	Date       string       `json:"date,omitempty"`
	Class      string       `json:"cls,omitempty"`
	Coach      string       `json:"coach,omitempty"`
	Passengers int          `json:"pax"`
	Seats      []string     `json:"seats"`
	UnitFare   int64        `json:"unitFare"`
	Total      int64        `json:"total"`

	// CanCheckout is true when the seat count equals the passenger count
	CanCheckout bool `json:"canCheckout"`

	// CheckoutOpen is true between checkout and payment
	CheckoutOpen bool `json:"checkoutOpen"`

	// LastPNR is the PNR issued by the most recent payment on this session
	LastPNR string `json:"lastPnr,omitempty"`
}

// Checkout is the confirmation returned when a checkout is opened.
type Checkout struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
}

// Confirmation is the outcome of a successful payment.
type Confirmation struct {
	Ticket Ticket       `json:"ticket"`
	State  BookingState `json:"state"`
}
