package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the reservation API routes.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1")

	api.GET("/stations", h.ListStations)
	api.GET("/trains", h.ListTrains)
	api.POST("/trains/search", h.SearchTrains)

	sessions := api.Group("/sessions")
	sessions.POST("", h.CreateSession)
	sessions.GET("/:id", h.GetSession)
	sessions.POST("/:id/search", h.SessionSearch)
	sessions.POST("/:id/selection", h.SelectCoach)
	sessions.GET("/:id/seats", h.GetSeatMap)
	sessions.POST("/:id/seats/:seat/toggle", h.ToggleSeat)
	sessions.PUT("/:id/passengers", h.SetPassengers)
	sessions.POST("/:id/checkout", h.Checkout)
	sessions.POST("/:id/payment", h.ConfirmPayment)

	tickets := api.Group("/tickets")
	tickets.GET("", h.ListTickets)
	tickets.GET("/:pnr", h.GetTicket)
	tickets.GET("/:pnr/pdf", h.GetTicketPDF)
}
