package handler

import (
	"net/http"

	"authhub/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthView is the body of the health endpoint.
type HealthView struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}

// HealthCheck reports liveness and the number of tracked client sessions.
func (h *AuthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, &HealthView{Status: "ok", Sessions: h.registry.Len()}, "")
}
