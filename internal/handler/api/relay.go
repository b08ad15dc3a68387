package api

import (
	"io"
	"net/http"

	"TVRelay/internal/usecase"
	"TVRelay/pkg/config"
	xhttp "TVRelay/pkg/http"
	xlogger "TVRelay/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RelayHandler exposes the webhook relay over HTTP.
type RelayHandler struct {
	logger *xlogger.Logger
	cfg    *config.Config
	relay  *usecase.Relay
}

func NewRelayHandler(logger *xlogger.Logger, cfg *config.Config, relay *usecase.Relay) *RelayHandler {
	return &RelayHandler{logger: logger, cfg: cfg, relay: relay}
}

func (h *RelayHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/webhook", h.Webhook)
	e.GET("/healthz", h.Health)
}

// Webhook receives a trading alert and forwards it downstream.
func (h *RelayHandler) Webhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return xhttp.AppErrorResponse(c, xhttp.PayloadError("Invalid or empty request body").WithError(err))
	}

	if err := h.relay.Handle(c.Request().Context(), body, c.Request().Header); err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.OKResponse(c)
}

// Health reports liveness plus the degraded flag so operators can see a
// missing webhook URL without sending a test alert.
func (h *RelayHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, xhttp.HealthResponse{
		Status:   "ok",
		Mode:     h.cfg.Relay.Mode,
		Degraded: h.cfg.Degraded(),
	})
}
