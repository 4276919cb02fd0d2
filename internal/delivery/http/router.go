package http

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"tradeacademy/internal/infra"
	"tradeacademy/internal/utils"
)

// RouterConfig holds all dependencies for routing
type RouterConfig struct {
	WebHandler        *WebHandler
	APIHandler        *APIHandler
	SessionMiddleware echo.MiddlewareFunc
	Sessions          *infra.SessionStore
	Logger            *zap.Logger
}

// SetupRoutes configures all HTTP routes
func SetupRoutes(e *echo.Echo, config *RouterConfig) {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return path == "/health" || path == "/favicon.ico"
		},
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				logger.Warn("request failed", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Info("request", fields...)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())

	// Health check
	e.GET("/health", func(c echo.Context) error {
		data := map[string]interface{}{
			"status":    "healthy",
			"service":   "tradeacademy",
			"timestamp": utils.Now().Format(time.RFC3339),
		}
		if config.Sessions != nil {
			data["sessions"] = config.Sessions.Len()
		}
		return SuccessResponse(c, data)
	})

	// API group
	api := e.Group("/api")
	{
		api.GET("/user", config.APIHandler.GetUser)
		api.GET("/achievements", config.APIHandler.GetAchievements)
		api.GET("/seasonal", config.APIHandler.GetSeasonal)
		api.GET("/seasonal/:month", config.APIHandler.GetSeasonalMonth)
		api.GET("/session", config.APIHandler.GetSession, config.SessionMiddleware)
	}

	RegisterWebRoutes(e, config.WebHandler, config.SessionMiddleware)
}
