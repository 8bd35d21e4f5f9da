package routes

import (
	"jobtrack/internal/api/handlers"
	"jobtrack/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers the account management routes. The whole
// group sits behind the admin navigation gate; other roles never see it.
func RegisterUserRoutes(
	rg *gin.RouterGroup,
	userHandler handlers.UserHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	usersGroup := rg.Group("/users")
	usersGroup.Use(authMiddleware, middleware.RequireUserManagement())
	{
		usersGroup.GET("", userHandler.GetUsers)
		usersGroup.GET("/:id", userHandler.GetUserByID)
		usersGroup.POST("", userHandler.CreateUser)
		usersGroup.PUT("/:id", userHandler.UpdateUser)
		usersGroup.DELETE("/:id", userHandler.DeleteUser)
		usersGroup.POST("/bulk-delete", userHandler.BulkDeleteUsers)
	}
}
