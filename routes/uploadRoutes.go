package routes

import (
	"civic-reporter-be/controllers"
	"civic-reporter-be/middlewares"

	"github.com/gin-gonic/gin"
)

// UploadRoutes sets up the image upload route and static serving
func UploadRoutes(r *gin.Engine) {
	upload := r.Group("/api/upload")
	{
		upload.POST("/image", middlewares.AuthMiddleware(), controllers.UploadImage)
	}

	r.Static("/uploads", "./public/uploads")
}
