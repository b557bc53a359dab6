package api

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes regista todas as rotas da API.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	// Agrupa as rotas sob /api/requests
	g := e.Group("/api/requests")

	g.GET("", h.HandleListRequests)
	g.POST("", h.HandleCreateRequest)
	g.GET("/stats", h.HandleStatsRequests)
	g.GET("/:id", h.HandleGetRequest)
	g.PUT("/:id", h.HandleUpdateRequest)
	g.PATCH("/:id/reschedule", h.HandleRescheduleRequest)
	g.DELETE("/:id", h.HandleDeleteRequest)

	e.GET("/health", h.HandleHealthCheck)
}
