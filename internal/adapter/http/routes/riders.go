package routes

import (
	"zap_shift/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathRiders = "/riders"

func addRiderRoutes(rg *gin.RouterGroup, h *handlers.RiderHandler, requireToken, requireAdmin gin.HandlerFunc) {
	riders := rg.Group(PathRiders, requireToken)
	{
		riders.POST("", h.Apply)
		riders.GET("", requireAdmin, h.ListRiders)
		riders.PATCH("/:id", requireAdmin, h.UpdateStatus)
	}
}
