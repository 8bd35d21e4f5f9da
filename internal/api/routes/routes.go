package routes

import (
	"log"

	"jobtrack/internal/api/handlers"
	"jobtrack/internal/api/middleware"
	"jobtrack/internal/app"
	"jobtrack/internal/services"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	// --- Services ---
	authenticator := services.NewPlaintextScanAuthenticator(app.UserRepo)
	authService := services.NewAuthService(authenticator, app.Sessions, app.Config.JWT)
	jobService := services.NewJobService(app.JobRepo, app.Config.Tracker.PageSize, app.Config.Tracker.NotesLimit)
	userService := services.NewUserService(app.UserRepo)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService, app.Validator)
	jobHandler := handlers.NewJobHandler(jobService, app.Validator)
	userHandler := handlers.NewUserHandler(userService, app.Validator)
	policyHandler := handlers.NewPolicyHandler()

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret, app.Sessions)

	// --- Register Resource Routes ---
	RegisterAuthRoutes(apiV1, authHandler, authMiddleware)
	RegisterJobRoutes(apiV1, jobHandler, authMiddleware)
	RegisterUserRoutes(apiV1, userHandler, authMiddleware)

	// Field policy lookup for form renderers.
	apiV1.GET("/policy/fields", authMiddleware, policyHandler.GetFieldPolicies)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
