package app

import (
	"gradebook_backend/docs"
	"gradebook_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		gradebook := api.Group("/gradebook")
		{
			gradebook.GET("", c.gradebook.GetGradebook)
			gradebook.GET("/overview", c.gradebook.GetOverview)
			gradebook.GET("/upcoming", c.gradebook.GetUpcoming)
			gradebook.POST("/students", c.gradebook.CreateStudent)

			subjects := gradebook.Group("/students/:studentId/subjects")
			{
				subjects.POST("", c.subject.CreateSubject)
				subjects.GET("/:subjectId", c.subject.GetSummary)
				subjects.PUT("/:subjectId/weights", c.subject.UpdateWeights)
				subjects.POST("/:subjectId/import", c.subject.ImportCSV)

				assignments := subjects.Group("/:subjectId/assignments")
				{
					assignments.POST("", c.assignment.CreateAssignment)
					assignments.PUT("/:assignmentId", c.assignment.UpdateAssignment)
					assignments.DELETE("/:assignmentId", c.assignment.DeleteAssignment)
				}
			}
		}
	}
}
