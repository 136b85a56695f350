package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	serverName    = "catalog-api"
	serverVersion = "1.0.0"
)

// StatusHandler serves server metadata and the catch-all 404 response.
type StatusHandler struct {
	startedAt time.Time
}

func NewStatusHandler() *StatusHandler {
	return &StatusHandler{startedAt: time.Now()}
}

type statusResponse struct {
	Server    string `json:"server"`
	Version   string `json:"version"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Uptime    string `json:"uptime"`
}

// Status handles GET /api/status.
//
// @Summary      Server metadata and uptime
// @Tags         status
// @Produce      json
// @Success      200  {object}  statusResponse
// @Router       /api/status [get]
func (h *StatusHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, statusResponse{
		Server:    serverName,
		Version:   serverVersion,
		Status:    "running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    fmt.Sprintf("%.2fs", time.Since(h.startedAt).Seconds()),
	})
}

type notFoundResponse struct {
	Error              string   `json:"error"`
	AvailableEndpoints []string `json:"availableEndpoints"`
}

// NotFound answers every unmatched route with the list of known endpoints.
func (h *StatusHandler) NotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, notFoundResponse{
		Error: "API endpoint not found",
		AvailableEndpoints: []string{
			"GET /api/status",
			"POST /api/register",
			"POST /api/login",
			"GET /api/products",
			"POST /api/products",
			"GET /api/products/low-stock",
			"GET /api/products/total-value",
			"GET /api/products/:id",
			"PUT /api/products/:id",
			"DELETE /api/products/:id",
		},
	})
}
