package handlers

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// NewRouter assembles the HTTP surface: a health check and the read-only
// list endpoints. Full CRUD is exposed over gRPC only.
func NewRouter(healthHandlers *HealthHandlers, tenantHandlers *TenantHandlers, staffHandlers *StaffHandlers, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			logger.Info("request", fields...)
			return nil
		},
	}))

	e.GET("/health", healthHandlers.Health)

	v1 := e.Group("/api/v1")
	v1.GET("/tenants", tenantHandlers.ListTenants)
	v1.GET("/staffs", staffHandlers.ListStaffs)

	return e
}
