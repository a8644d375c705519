package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/brokerlane/dealengine/internal/cache"
	"github.com/brokerlane/dealengine/internal/config"
	"github.com/brokerlane/dealengine/internal/server"
	"github.com/brokerlane/dealengine/pkg/constants"
	"github.com/brokerlane/dealengine/pkg/letter"
)

// version is set at build time via -ldflags.
var version = "dev"

func buildLogger(loggingConfig config.LoggingConfig) (*zap.Logger, error) {
	level := loggingConfig.Level
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	zapConfig := zap.NewProductionConfig()
	if loggingConfig.Format == "console" {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	return zapConfig.Build()
}

func main() {
	configLocation := flag.String("config", constants.DefaultServerConfigFile, "path to server configuration file")
	flag.Parse()

	// Optional .env for API keys; absence is not an error.
	_ = godotenv.Load()

	cfg, err := server.LoadConfig(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}

	logger, err := buildLogger(cfg.Logging)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	var store cache.Store
	if cfg.RedisAddress != "" {
		redisStore := cache.NewRedisStore(cfg.RedisAddress)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisStore.Ping(ctx)
		cancel()
		if err != nil {
			logger.Warn("redis unreachable, falling back to in-memory cache",
				zap.String("op", "main"),
				zap.String("address", cfg.RedisAddress),
				zap.Error(err),
			)
			store = cache.NewMemoryStore()
		} else {
			store = redisStore
		}
	} else {
		store = cache.NewMemoryStore()
	}

	letters := letter.NewGenerator(os.Getenv("GEMINI_API_KEY"), cfg.LetterModel, logger)
	if !letters.Enabled() {
		logger.Info("no GEMINI_API_KEY set, offer letters use the built-in template",
			zap.String("op", "main"),
		)
	}

	handler := server.NewHandler(server.Options{
		Logger:        logger,
		MaxUploadSize: cfg.UploadSizeBytes(),
		Version:       version,
		Store:         store,
		Letters:       letters,
	})

	if cfg.RateLimit.Requests > 0 && cfg.RateLimit.WindowSeconds > 0 {
		limiter := server.NewRateLimiter(cfg.RateLimit.Requests,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second)
		defer limiter.Stop()
		handler = limiter.Middleware(handler)
	}

	logger.Info("starting dealengine server",
		zap.String("op", "main"),
		zap.String("address", cfg.Address),
		zap.String("version", version),
	)

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server terminated",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
