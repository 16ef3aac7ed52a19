package response

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status   string `json:"status"`
	Stations int    `json:"stations"`
	Trains   int    `json:"trains"`
	Sessions int    `json:"sessions"`
	Tickets  int    `json:"tickets"`
}

// Health writes a health check response.
func Health(c echo.Context, h HealthResponse) error {
	h.Status = "ok"
	return c.JSON(http.StatusOK, &h)
}

// PDF writes a PDF document as an attachment.
func PDF(c echo.Context, filename string, data []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+strconv.Quote(filename))
	return c.Blob(http.StatusOK, "application/pdf", data)
}
