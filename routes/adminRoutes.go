package routes

import (
	"civic-reporter-be/controllers"
	"civic-reporter-be/middlewares"

	"github.com/gin-gonic/gin"
)

// AdminRoutes sets up staff-only administrative routes
func AdminRoutes(r *gin.Engine) {
	admin := r.Group("/api/admin")
	{
		admin.POST("/migrate-collections", middlewares.AuthMiddleware(), middlewares.RequireStaff(), controllers.MigrateCollections)
	}
}
