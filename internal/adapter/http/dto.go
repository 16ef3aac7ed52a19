package http

import (
	"time"

	"github.com/rail-reserve/railway-reservation-system/internal/adapter/document"
	"github.com/rail-reserve/railway-reservation-system/internal/catalog"
	"github.com/rail-reserve/railway-reservation-system/internal/domain"
	"github.com/rail-reserve/railway-reservation-system/internal/infrastructure/timeutil"
)

// StationsResponse lists the catalog stations.
type StationsResponse struct {
	Stations []domain.Station `json:"stations"`
	Total    int              `json:"total"`
}

// TrainsResponse lists the catalog trains with catalog stats.
type TrainsResponse struct {
	Trains []domain.Train `json:"trains"`
	Stats  catalog.Stats  `json:"stats"`
}

// SessionResponse describes a booking session.
type SessionResponse struct {
	ID        string                `json:"id"`
	CreatedAt time.Time             `json:"createdAt"`
	Summary   domain.BookingSummary `json:"summary"`
}

// SeatMapResponse is the seat map of the selected coach with the booking summary.
type SeatMapResponse struct {
	SeatMap *domain.SeatMap        `json:"seatMap"`
	Summary *domain.BookingSummary `json:"summary"`
}

// CheckoutResponse is the confirmation shown before payment.
type CheckoutResponse struct {
	Description     string `json:"description" example:"12952 Rajdhani Express • NDLS→BCT • 2026-11-02 • 3A S1 • Seats: A1, A2"`
	Amount          int64  `json:"amount" example:"3886"`
	AmountFormatted string `json:"amountFormatted" example:"₹3,886"`
}

// TicketResponse is a ticket with display fields.
type TicketResponse struct {
	domain.Ticket
	AmountFormatted string `json:"amountFormatted" example:"₹3,886"`
	BookedAtDisplay string `json:"bookedAtDisplay" example:"19 Oct 2026, 14:05 IST"`
}

// TicketsResponse lists tickets, most recent first.
type TicketsResponse struct {
	Tickets []TicketResponse `json:"tickets"`
	Total   int              `json:"total"`
}

// PaymentResponse is the outcome of a successful payment.
type PaymentResponse struct {
	Message string              `json:"message" example:"Payment successful. PNR: K7M2QX9A"`
	State   domain.BookingState `json:"state" example:"confirmed"`
	Ticket  TicketResponse      `json:"ticket"`
}

// ToTicketResponse adds display fields to a ticket.
func ToTicketResponse(t domain.Ticket) TicketResponse {
	return TicketResponse{
		Ticket:          t,
		AmountFormatted: document.FormatINR(t.Amount),
		BookedAtDisplay: timeutil.FormatBookedAt(t.BookedAt),
	}
}

// ToTicketsResponse converts a ticket list, keeping its order.
func ToTicketsResponse(tickets []domain.Ticket) TicketsResponse {
	out := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, ToTicketResponse(t))
	}
	return TicketsResponse{Tickets: out, Total: len(out)}
}

// ToCheckoutResponse formats a checkout confirmation.
func ToCheckoutResponse(c *domain.Checkout) CheckoutResponse {
	return CheckoutResponse{
		Description:     c.Description,
		Amount:          c.Amount,
		AmountFormatted: document.FormatINR(c.Amount),
	}
}
