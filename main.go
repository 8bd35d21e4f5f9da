package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"jobtrack/config"
	"jobtrack/internal/app"
	"jobtrack/internal/database"
	"jobtrack/internal/server"
	"jobtrack/internal/services"
	"jobtrack/internal/storage/rest"

	_ "jobtrack/docs" // Import generated docs (created by swag init)

	"github.com/go-playground/validator/v10"
)

// @title           Jobtrack API
// @version         1.0
// @description     Job-application tracker API. All persistence is delegated to a remote REST store; this service owns validation, role-gated field policy, list shaping and sessions.

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Initialize Redis Client (session store) ---
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// --- Initialize Remote Store Gateways ---
	remoteClient, err := rest.NewClient(cfg.Remote)
	if err != nil {
		log.Fatalf("Failed to configure remote store client: %v", err)
	}

	validate := validator.New()

	application := &app.Application{
		Config:      cfg,
		RedisClient: redisClient,
		Validator:   validate,
		JobRepo:     rest.NewJobGateway(remoteClient),
		UserRepo:    rest.NewUserGateway(remoteClient),
		Sessions:    services.NewRedisSessionStore(redisClient),
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Shutting down...")

	//Gin shutdowns on its own

	log.Println("Application gracefully stopped.")
}
