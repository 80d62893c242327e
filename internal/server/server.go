// Package server is the bridge daemon behind the screening client: six
// RPCs over HTTP, a sqlite-backed assessment store and a report writer.
package server

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// NewEcho assembles the daemon's HTTP surface.
func NewEcho(h *Handler, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(recovery(logger))
	e.Use(requestLogger(logger))
	h.RegisterRoutes(e)
	return e
}
