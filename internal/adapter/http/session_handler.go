package http

import (
	"github.com/labstack/echo/v4"

	"github.com/rail-reserve/railway-reservation-system/internal/adapter/http/response"
	"github.com/rail-reserve/railway-reservation-system/internal/domain"
)

// withSession runs fn on the session named by the :id path parameter.
func (h *Handler) withSession(c echo.Context, fn func(*domain.Session) error) error {
	return h.sessions.Do(c.Param("id"), fn)
}

// CreateSession handles POST /api/v1/sessions
//
// @Summary Start a booking session
// @Tags sessions
// @Produce json
// @Success 201 {object} SessionResponse
// @Router /api/v1/sessions [post]
func (h *Handler) CreateSession(c echo.Context) error {
	sess := h.sessions.Create()
	h.log.WithSession(sess.ID).Debug().Msg("session created")

	return response.Created(c, &SessionResponse{
		ID:        sess.ID,
		CreatedAt: sess.CreatedAt,
		Summary:   *h.booking.Summary(&sess),
	})
}

// GetSession handles GET /api/v1/sessions/:id
//
// @Summary Booking summary of a session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} response.ErrorDetail "Unknown session"
// @Router /api/v1/sessions/{id} [get]
func (h *Handler) GetSession(c echo.Context) error {
	var out SessionResponse
	err := h.withSession(c, func(s *domain.Session) error {
		out = SessionResponse{ID: s.ID, CreatedAt: s.CreatedAt, Summary: *h.booking.Summary(s)}
		return nil
	})
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, &out)
}

// SessionSearch handles POST /api/v1/sessions/:id/search
//
// @Summary Search trains within a session
// @Description Stores the query and results on the session and drops any previous selection.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body SearchTrainsRequest true "Search query"
// @Success 200 {object} domain.SearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Unknown session"
// @Router /api/v1/sessions/{id}/search [post]
func (h *Handler) SessionSearch(c echo.Context) error {
	var req SearchTrainsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	var out *domain.SearchResponse
	err := h.withSession(c, func(s *domain.Session) error {
		var err error
		out, err = h.booking.Search(c.Request().Context(), s, req.ToQuery())
		return err
	})
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, out)
}

// SelectCoach handles POST /api/v1/sessions/:id/selection
//
// @Summary Select train, class and coach
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body SelectCoachRequest true "Selection"
// @Success 200 {object} SeatMapResponse
// @Failure 400 {object} response.ErrorDetail "Validation error or class not offered"
// @Failure 404 {object} response.ErrorDetail "Unknown session or coach, or train not in the search results"
// @Failure 409 {object} response.ErrorDetail "No search on session"
// @Router /api/v1/sessions/{id}/selection [post]
func (h *Handler) SelectCoach(c echo.Context) error {
	var req SelectCoachRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleError(c, err)
	}

	var out SeatMapResponse
	err := h.withSession(c, func(s *domain.Session) error {
		m, err := h.booking.SelectCoach(c.Request().Context(), s, req.TrainNo, req.Class, req.Coach)
		if err != nil {
			return err
		}
		out = SeatMapResponse{SeatMap: m, Summary: h.booking.Summary(s)}
		return nil
	})
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, &out)
}

// GetSeatMap handles GET /api/v1/sessions/:id/seats
//
// @Summary Seat map of the selected coach
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SeatMapResponse
// @Failure 404 {object} response.ErrorDetail "Unknown session"
// @Failure 409 {object} response.ErrorDetail "No coach selected"
// @Router /api/v1/sessions/{id}/seats [get]
func (h *Handler) GetSeatMap(c echo.Context) error {
	var out SeatMapResponse
	err := h.withSession(c, func(s *domain.Session) error {
		m, err := h.booking.SeatMap(s)
		if err != nil {
			return err
		}
		out = SeatMapResponse{SeatMap: m, Summary: h.booking.Summary(s)}
		return nil
	})
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, &out)
}

// ToggleSeat handles POST /api/v1/sessions/:id/seats/:seat/toggle
//
// @Summary Select or release a seat
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param seat path string true "Seat ID, e.g. A1"
// @Success 200 {object} domain.BookingSummary
// @Failure 400 {object} response.ErrorDetail "Invalid seat"
// @Failure 404 {object} response.ErrorDetail "Unknown session"
// @Failure 409 {object} response.ErrorDetail "Seat occupied or seat count equals passenger count"
// @Router /api/v1/sessions/{id}/seats/{seat}/toggle [post]
func (h *Handler) ToggleSeat(c echo.Context) error {
	var out *domain.BookingSummary
	err := h.withSession(c, func(s *domain.Session) error {
		var err error
		out, err = h.booking.ToggleSeat(c.Request().Context(), s, c.Param("seat"))
		return err
	})
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, out)
}

// SetPassengers handles PUT /api/v1/sessions/:id/passengers
//
// @Summary Change the passenger count
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body SetPassengersRequest true "Passenger count"
// @Success 200 {object} domain.BookingSummary
// @Failure 400 {object} response.ErrorDetail "Below the seats already selected"
// @Failure 404 {object} response.ErrorDetail "Unknown session"
// @Failure 409 {object} response.ErrorDetail "No search on session"
// @Router /api/v1/sessions/{id}/passengers [put]
func (h *Handler) SetPassengers(c echo.Context) error {
	var req SetPassengersRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleError(c, err)
	}

	var out *domain.BookingSummary
	err := h.withSession(c, func(s *domain.Session) error {
		var err error
		out, err = h.booking.SetPassengers(s, *req.Passengers)
		return err
	})
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, out)
}

// Checkout handles POST /api/v1/sessions/:id/checkout
//
// @Summary Open checkout
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} CheckoutResponse
// @Failure 404 {object} response.ErrorDetail "Unknown session"
// @Failure 409 {object} response.ErrorDetail "Seat count does not match passenger count"
// @Router /api/v1/sessions/{id}/checkout [post]
func (h *Handler) Checkout(c echo.Context) error {
	var out CheckoutResponse
	err := h.withSession(c, func(s *domain.Session) error {
		co, err := h.booking.Checkout(s)
		if err != nil {
			return err
		}
		out = ToCheckoutResponse(co)
		return nil
	})
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, &out)
}

// ConfirmPayment handles POST /api/v1/sessions/:id/payment
//
// @Summary Pay and issue the ticket
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} PaymentResponse
// @Failure 404 {object} response.ErrorDetail "Unknown session"
// @Failure 409 {object} response.ErrorDetail "No pending checkout or seat sold meanwhile"
// @Router /api/v1/sessions/{id}/payment [post]
func (h *Handler) ConfirmPayment(c echo.Context) error {
	var out PaymentResponse
	err := h.withSession(c, func(s *domain.Session) error {
		conf, err := h.booking.ConfirmPayment(c.Request().Context(), s)
		if err != nil {
			return err
		}
		out = PaymentResponse{
			Message: "Payment successful. PNR: " + conf.Ticket.PNR,
			State:   conf.State,
			Ticket:  ToTicketResponse(conf.Ticket),
		}
		return nil
	})
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, &out)
}
