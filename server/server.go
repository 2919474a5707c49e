// Package server wires configuration, the mailer and the HTTP routes into an Echo instance.
package server

import (
	"net/http"
	"northbridge_site_go/config"
	"northbridge_site_go/handlers"
	"northbridge_site_go/logging"
	"northbridge_site_go/middleware"
	"northbridge_site_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// New builds the HTTP server. mailer receives every contact submission.
func New(cfg *config.Config, mailer services.Mailer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				logging.L().Warn("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logging.L().Info("request", fields...)
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))

	// Make config and mailer available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			c.Set("mailer", mailer)
			return next(c)
		}
	})
	e.Use(middleware.Locale(cfg))
	e.Use(middleware.CSPNonce())

	e.Static("/static", "static")

	// Public pages
	e.GET("/", handlers.HomeHandler)
	e.GET("/approach", handlers.ApproachHandler)
	e.GET("/contact", handlers.ContactPageHandler)
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)
	e.GET("/robots.txt", handlers.RobotsHandler)

	// API
	e.POST("/api/contact", handlers.ContactSubmitHandler)

	// Operations
	e.GET("/healthz", handlers.HealthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Development-only routes
	if !cfg.IsProduction() {
		e.GET("/dev/email/preview", handlers.PreviewContactEmailHandler)
	}

	return e
}
