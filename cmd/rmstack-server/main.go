package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rmstack/rmstack/internal/config"
	"github.com/rmstack/rmstack/internal/countries"
	"github.com/rmstack/rmstack/internal/database"
	"github.com/rmstack/rmstack/internal/pages"
	"github.com/rmstack/rmstack/internal/users"
)

// AppState holds all application services
type AppState struct {
	DB              *bun.DB
	Logger          *zap.Logger
	Config          *config.Config
	UserHandlers    *users.Handlers
	CountryHandlers *countries.Handlers
	PageService     *pages.Service
}

func main() {
	// Load configuration
	config.Load()

	// Initialize logger with config
	logger := initLogger()

	// Initialize application state
	as, err := newAppState(logger)
	if err != nil {
		logger.Fatal("Failed to initialize application state", zap.Error(err))
	}

	// Create tables and seed reference data
	ctx := context.Background()
	if err := database.CreateTables(ctx, as.DB); err != nil {
		logger.Fatal("Failed to create tables", zap.Error(err))
	}
	if err := database.SetupDefaults(ctx, as.DB); err != nil {
		logger.Fatal("Failed to seed default data", zap.Error(err))
	}

	// Create HTTP server
	router, err := setupRouter(as)
	if err != nil {
		logger.Fatal("Failed to set up router", zap.Error(err))
	}

	addr := fmt.Sprintf("%s:%d", config.Http().Host, config.Http().Port)

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Setup graceful shutdown
	done := setupSignalHandler(as, server, logger)

	// Start server
	logger.Info("Starting rmstack server", zap.String("address", addr))

	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Failed to start server", zap.Error(err))
	}

	<-done
	logger.Info("Server shutdown complete")
}

// newAppState creates and initializes the application state
func newAppState(logger *zap.Logger) (*AppState, error) {
	sqliteConfig := config.Sqlite()

	logger.Info("Database configuration", zap.String("path", sqliteConfig.Path))

	db, err := database.OpenFile(sqliteConfig.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	userStore := users.NewSQLiteStore(db)
	userService := users.NewService(userStore)
	userHandlers := users.NewHandlers(userService, logger)

	countryStore := countries.NewSQLiteStore(db)
	countryHandlers := countries.NewHandlers(countryStore, logger)

	pageService, err := pages.NewService(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create page service: %w", err)
	}

	return &AppState{
		DB:              db,
		Logger:          logger,
		Config:          config.Get(),
		UserHandlers:    userHandlers,
		CountryHandlers: countryHandlers,
		PageService:     pageService,
	}, nil
}

func initLogger() *zap.Logger {
	logConfig := config.Logger()

	var cfg zap.Config
	if logConfig.Format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	switch logConfig.Level {
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	return logger
}

func setupRouter(as *AppState) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	router.Use(cors.Default())
	router.Use(requestIDMiddleware())
	router.Use(requestLogger(as.Logger))
	router.Use(recoveryMiddleware(as.Logger))

	// API routes
	as.UserHandlers.RegisterRoutes(router)
	as.CountryHandlers.RegisterRoutes(router)

	// Health endpoint
	router.GET("/health", func(c *gin.Context) {
		if err := as.DB.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"timestamp": time.Now().Format(time.RFC3339),
				"error":     err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Everything else: static assets and templated pages
	if err := as.PageService.SetupRoutes(router); err != nil {
		return nil, err
	}

	return router, nil
}

// requestIDMiddleware assigns each request a correlation id, echoed in the
// X-Request-ID response header.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// requestLogger logs one line per request after it completes
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("Request handled",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", c.GetString("request_id")))
	}
}

// recoveryMiddleware is the single top-level failure boundary: any panic in
// the call chain becomes the generic server-error envelope.
func recoveryMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":   "Server error",
			"details": fmt.Sprint(recovered),
		})
	})
}

func setupSignalHandler(as *AppState, server *http.Server, logger *zap.Logger) chan struct{} {
	done := make(chan struct{}, 1)

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signalCh

		logger.Info("Shutting down server...")

		// Create context with timeout for graceful shutdown
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Shutdown server
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Error during server shutdown", zap.Error(err))
		}

		// Close database handle
		if err := as.DB.Close(); err != nil {
			logger.Error("Error closing database", zap.Error(err))
		}

		done <- struct{}{}
	}()

	return done
}
