package routes

import (
	"zap_shift/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathParcels = "/parcels"

func addParcelRoutes(rg *gin.RouterGroup, h *handlers.ParcelHandler, requireToken gin.HandlerFunc) {
	parcels := rg.Group(PathParcels, requireToken)
	{
		parcels.POST("", h.CreateParcel)
		parcels.GET("", h.ListParcels)
		parcels.GET("/:id", h.GetParcel)
		parcels.DELETE("/:id", h.DeleteParcel)
	}
}
