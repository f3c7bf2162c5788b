// Package handler contains the HTTP handlers of the API.
package handler

import (
	"net/http"

	"fieldops/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the server is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
