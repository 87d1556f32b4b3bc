package routes

import (
	"civic-reporter-be/controllers"
	"civic-reporter-be/middlewares"

	"github.com/gin-gonic/gin"
)

// MapRoutes sets up the civic object and QR routes
func MapRoutes(r *gin.Engine) {
	m := r.Group("/api/map")
	{
		m.GET("/all-objects", controllers.AllObjects)
		m.POST("/nearby-objects", controllers.NearbyObjects)
		m.POST("/create-object", middlewares.AuthMiddleware(), middlewares.RequireStaff(), controllers.CreateObject)
		m.PUT("/update-object", middlewares.AuthMiddleware(), middlewares.RequireStaff(), controllers.UpdateObject)
		m.DELETE("/delete-object", middlewares.AuthMiddleware(), middlewares.RequireStaff(), controllers.DeleteObject)
	}

	qr := r.Group("/api/qr")
	{
		qr.POST("/generate", middlewares.AuthMiddleware(), middlewares.RequireStaff(), controllers.GenerateQR)
	}
}
