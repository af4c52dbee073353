// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/health-tip-agent/internal/config"
	"github.com/iliyamo/health-tip-agent/internal/handler"
	"github.com/iliyamo/health-tip-agent/internal/middleware"
	"github.com/iliyamo/health-tip-agent/internal/tips"
)

// PublicHandlers groups the handlers mounted without authentication.
type PublicHandlers struct {
	Tips  *handler.TipHandler
	Daily *handler.DailyTipHandler
	A2A   *handler.A2AHandler
	Store *tips.Store
}

// RegisterPublic registers the tip-serving API and health checks. The
// response cache wraps only the tip listing — its body is immutable for the
// process lifetime. The random and daily-tip routes must never be cached
// (randomness, and a delivery record written per call).
func RegisterPublic(e *echo.Echo, h PublicHandlers, cacheCfg config.CacheConfig, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)
	e.GET("/api/health", handler.ServiceHealth(h.Store))

	e.POST("/api/a2a/health", h.A2A.Handle)
	e.GET("/api/daily-tip", h.Daily.Run)
	e.GET("/api/health-tip/", h.Tips.RandomTip)
	e.GET("/api/health-tip", h.Tips.RandomTip) // trailing-slash variant of the same route
	e.GET("/api/tips", h.Tips.ListTips, middleware.NewRedisCache(cacheCfg, rdb))
}

// RegisterAuth registers the admin authentication endpoints under /v1/auth.
// Register, login and refresh issue or rotate token pairs; none of them
// require an existing session.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
}

// RegisterAdmin registers the delivery-log endpoints under /v1. All routes
// require a valid JWT with the ADMIN role.
func RegisterAdmin(e *echo.Echo, d *handler.DeliveryAdminHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN"),
	)
	g.GET("/deliveries", d.List)
}
