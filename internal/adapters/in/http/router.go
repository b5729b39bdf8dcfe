package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"logistics/internal/adapters/in/http/openapi"
	"logistics/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

// RouterConfig tunes the echo instance built by NewRouter.
type RouterConfig struct {
	// RateLimit is the number of API requests per second allowed per client
	// IP. Zero disables limiting.
	RateLimit float64
	// LogLevel is applied to echo's own logger.
	LogLevel log.Lvl
}

// NewRouter builds the echo instance serving the API, health, metrics and
// Swagger UI.
func NewRouter(cfg RouterConfig, server *Server, m *metrics.Metrics, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := openapi.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := requestValidator(doc)
	if err != nil {
		return nil, err
	}
	spec, err := openapi.SpecJSON()
	if err != nil {
		return nil, fmt.Errorf("render openapi document: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(cfg.LogLevel)
	e.HTTPErrorHandler = errorHandler(logger.With("component", "HTTPErrorHandler"))

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger.With("component", "HTTPAccessLog")))
	e.Use(requestMetrics(m))
	e.Use(rateLimiter(cfg.RateLimit))
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))
	mountSwagger(e, spec)

	openapi.RegisterHandlers(e, server)

	return e, nil
}

// ParseLogLevel maps a level name onto gommon's levels. Unknown names
// fall back to INFO.
func ParseLogLevel(level string) log.Lvl {
	switch level {
	case "debug", "DEBUG":
		return log.DEBUG
	case "warn", "WARN", "warning":
		return log.WARN
	case "error", "ERROR":
		return log.ERROR
	case "off", "OFF":
		return log.OFF
	default:
		return log.INFO
	}
}
