package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"CotSignal/internal/usecase"
)

// HealthHandler exposes process liveness plus a data-source check.
type HealthHandler struct {
	series *usecase.SeriesUsecase
}

func NewHealthHandler(series *usecase.SeriesUsecase) *HealthHandler {
	return &HealthHandler{series: series}
}

func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
}

func (h *HealthHandler) Healthz(c echo.Context) error {
	if err := h.series.Health(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"error":  err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
