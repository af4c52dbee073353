package handler // declare the package name; contains HTTP handlers

import (
	"net/http" // net/http provides status codes and response helpers
	"time"

	"github.com/labstack/echo/v4" // echo is the web framework used for this project

	"github.com/iliyamo/health-tip-agent/internal/tips"
)

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running. It returns
// a plain text "ok" message with an HTTP 200 status code.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// ServiceHealth reports service status as JSON, including the number of
// tips loaded so a misconfigured (empty) store is visible from outside.
func ServiceHealth(store *tips.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		status := "healthy"
		if store.Len() == 0 {
			status = "degraded"
		}
		return c.JSON(http.StatusOK, echo.Map{
			"status":    status,
			"service":   "health_tip_agent",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"tip_count": store.Len(),
		})
	}
}
