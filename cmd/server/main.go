package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/aeropoints/awardsearch/internal/aggregator"
	"github.com/aeropoints/awardsearch/internal/cache"
	"github.com/aeropoints/awardsearch/internal/handler"
	"github.com/aeropoints/awardsearch/internal/ratelimit"
	"github.com/aeropoints/awardsearch/internal/resolver"
	"github.com/aeropoints/awardsearch/internal/seatsaero"
	"github.com/aeropoints/awardsearch/pkg/logger"
)

type Config struct {
	Port            string
	Env             string
	SeatsAeroAPIKey string
	SeatsAeroURL    string
	ResolverWorkers int
	CacheEnabled    bool
	RedisHost       string
	RedisPort       string
	RedisTTL        time.Duration
}

func main() {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := loadConfig()
	appLogger := logger.NewZeroLog(cfg.Env)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	limiter := ratelimit.NewEndpointLimiterWithDefaults()
	limiter.SetEndpointLimit("search", 5, 10)
	limiter.SetEndpointLimit("live", 2, 4)
	limiter.SetEndpointLimit("trips", 10, 20)

	client := seatsaero.New(seatsaero.Config{
		APIKey:  cfg.SeatsAeroAPIKey,
		BaseURL: cfg.SeatsAeroURL,
		Limiter: limiter,
		Logger:  appLogger,
	})
	if !client.IsConfigured() {
		appLogger.Warn("SEATS_AERO_API_KEY not set, searches will return empty results")
	}

	resolverConfig := resolver.DefaultConfig()
	resolverConfig.Workers = cfg.ResolverWorkers
	tripResolver := resolver.New(client, resolverConfig, appLogger)

	agg := aggregator.New(client, tripResolver, appLogger)

	var flightCache cache.Cache
	if cfg.CacheEnabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
			TTL:  cfg.RedisTTL,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		flightCache = redisCache
		appLogger.Info("redis cache enabled",
			logger.F("addr", cfg.RedisHost+":"+cfg.RedisPort),
			logger.F("ttl", cfg.RedisTTL.String()))
	} else {
		flightCache = cache.NewNoOpCache()
		appLogger.Info("cache disabled")
	}

	searchHandler := handler.NewSearchHandler(agg, flightCache, appLogger)
	airportHandler := handler.NewAirportHandler()
	statusHandler := handler.NewStatusHandler(client)

	api := e.Group("/api")
	api.POST("/flights/search", searchHandler.Search)
	api.GET("/airports", airportHandler.List)
	api.GET("/airports/search", airportHandler.Search)
	api.GET("/airports/:code", airportHandler.Get)
	api.GET("/status", statusHandler.Status)
	e.GET("/health", handler.HealthHandler)

	appLogger.Info("starting award search server", logger.F("port", cfg.Port))

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func loadConfig() Config {
	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("APP_ENV", "development"),
		SeatsAeroAPIKey: getEnv("SEATS_AERO_API_KEY", ""),
		SeatsAeroURL:    getEnv("SEATS_AERO_BASE_URL", ""),
		ResolverWorkers: getEnvInt("RESOLVER_WORKERS", 4),
		CacheEnabled:    getEnvBool("CACHE_ENABLED", false),
		RedisHost:       getEnv("REDIS_HOST", "localhost"),
		RedisPort:       getEnv("REDIS_PORT", "6379"),
		RedisTTL:        getEnvDuration("REDIS_TTL", 5*time.Minute),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
