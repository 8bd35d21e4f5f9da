package app

import (
	"jobtrack/config"
	"jobtrack/internal/services"
	"jobtrack/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	RedisClient *redis.Client
	Validator   *validator.Validate
	JobRepo     storage.JobRepository
	UserRepo    storage.UserRepository
	Sessions    services.SessionStore
}
