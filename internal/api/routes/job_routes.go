package routes

import (
	"jobtrack/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to job applications. Every
// route is authenticated; ownership and role gating happen in the service.
func RegisterJobRoutes(
	rg *gin.RouterGroup,
	jobHandler handlers.JobHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	jobsGroup := rg.Group("/jobs")
	jobsGroup.Use(authMiddleware)
	{
		jobsGroup.GET("", jobHandler.ListJobs)
		jobsGroup.GET("/:id", jobHandler.GetJobByID)
		jobsGroup.POST("", jobHandler.CreateJob)
		jobsGroup.PUT("/:id", jobHandler.UpdateJob)
		jobsGroup.DELETE("/:id", jobHandler.DeleteJob)
	}
}
