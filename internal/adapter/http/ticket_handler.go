package http

import (
	"github.com/labstack/echo/v4"

	"github.com/rail-reserve/railway-reservation-system/internal/adapter/http/response"
)

// ListTickets handles GET /api/v1/tickets
//
// @Summary List tickets, most recent first
// @Tags tickets
// @Produce json
// @Success 200 {object} TicketsResponse
// @Router /api/v1/tickets [get]
func (h *Handler) ListTickets(c echo.Context) error {
	out := ToTicketsResponse(h.booking.Tickets())
	return response.OK(c, &out)
}

// GetTicket handles GET /api/v1/tickets/:pnr
//
// @Summary Get a ticket by PNR
// @Tags tickets
// @Produce json
// @Param pnr path string true "PNR"
// @Success 200 {object} TicketResponse
// @Failure 404 {object} response.ErrorDetail "Unknown PNR"
// @Router /api/v1/tickets/{pnr} [get]
func (h *Handler) GetTicket(c echo.Context) error {
	t, err := h.booking.Ticket(c.Param("pnr"))
	if err != nil {
		return h.handleError(c, err)
	}
	out := ToTicketResponse(t)
	return response.OK(c, &out)
}

// GetTicketPDF handles GET /api/v1/tickets/:pnr/pdf
//
// @Summary Download the PDF e-ticket
// @Tags tickets
// @Produce application/pdf
// @Param pnr path string true "PNR"
// @Success 200 {file} binary
// @Failure 404 {object} response.ErrorDetail "Unknown PNR"
// @Router /api/v1/tickets/{pnr}/pdf [get]
func (h *Handler) GetTicketPDF(c echo.Context) error {
	t, err := h.booking.Ticket(c.Param("pnr"))
	if err != nil {
		return h.handleError(c, err)
	}

	data, err := h.renderer.Render(t)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.PDF(c, h.renderer.Filename(t), data)
}
