package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aeropoints/awardsearch/internal/models"
	"github.com/aeropoints/awardsearch/internal/seatsaero"
)

// ConnectionProber reports provider reachability for diagnostics.
type ConnectionProber interface {
	TestConnection(ctx context.Context) seatsaero.ConnectionStatus
}

type StatusHandler struct {
	prober ConnectionProber
}

func NewStatusHandler(prober ConnectionProber) *StatusHandler {
	return &StatusHandler{prober: prober}
}

// Status probes the upstream provider. Auth and rate-limit problems show
// up here; the search path degrades to empty results instead.
func (h *StatusHandler) Status(c echo.Context) error {
	status := h.prober.TestConnection(c.Request().Context())
	return c.JSON(http.StatusOK, models.StatusResponse{
		OK:      status.OK,
		Message: status.Message,
	})
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
