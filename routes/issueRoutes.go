package routes

import (
	"civic-reporter-be/controllers"
	"civic-reporter-be/middlewares"

	"github.com/gin-gonic/gin"
)

// IssueRoutes sets up the issue routes
func IssueRoutes(r *gin.Engine) {
	issue := r.Group("/api/issues")
	{
		issue.POST("/create", middlewares.AuthMiddleware(), middlewares.IssueRateLimiter(10), controllers.CreateIssue)
		issue.GET("/my-issues", middlewares.AuthMiddleware(), controllers.MyIssues)
		issue.GET("/active", middlewares.AuthMiddleware(), controllers.ActiveIssues)
		issue.GET("/all", middlewares.AuthMiddleware(), middlewares.RequireStaff(), controllers.AllIssues)
		issue.GET("/grouped", middlewares.AuthMiddleware(), middlewares.RequireStaff(), controllers.GroupedIssues)
		issue.PUT("/update-status", middlewares.AuthMiddleware(), middlewares.RequireStaff(), controllers.UpdateIssueStatus)
		issue.POST("/add-comment", middlewares.AuthMiddleware(), middlewares.RequireStaff(), controllers.AddComment)
	}
}
