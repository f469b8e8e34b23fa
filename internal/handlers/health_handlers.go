package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandlers serves the liveness endpoint.
type HealthHandlers struct{}

func NewHealthHandlers() *HealthHandlers {
	return &HealthHandlers{}
}

// Health reports the process is up.
func (h *HealthHandlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
