package routes

import (
	"zap_shift/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathUsers = "/users"

func addUserRoutes(rg *gin.RouterGroup, h *handlers.UserHandler, requireToken, requireAdmin gin.HandlerFunc) {
	users := rg.Group(PathUsers)
	{
		users.POST("", h.CreateUser)
		users.GET("/:email/role", requireToken, h.GetRole)
		users.GET("", requireToken, requireAdmin, h.ListUsers)
		users.PATCH("/:id/role", requireToken, requireAdmin, h.UpdateRole)
	}
}
