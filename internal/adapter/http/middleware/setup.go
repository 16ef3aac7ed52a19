package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup registers the middleware chain on e. Call it before registering routes.
// Order: RequestID, so every later log line carries the ID; RequestLogger;
// Recover, innermost, so a recovered panic is still logged as a 500.
func Setup(e *echo.Echo, log zerolog.Logger, recovery RecoveryConfig) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(RecoverWithConfig(log, recovery))
}
