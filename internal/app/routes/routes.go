package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/juko/registry/internal/app/controllers"
	"github.com/juko/registry/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	analyticsController *controllers.AnalyticsController,
) {
	api := router.Group("/api")

	// Student registry routes
	students := api.Group("/students")
	{
		students.GET("", studentController.ListStudents)
		students.POST("", studentController.CreateStudent)
		// Registered before /:id so "export" is not taken for a record ID
		students.GET("/export", studentController.ExportStudents)
		students.GET("/:id", studentController.GetStudent)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	// Analytics view data source
	api.GET("/analytics", analyticsController.GetSummary)

	// Health check endpoint
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewMessageResponse("ok"))
	})
}
