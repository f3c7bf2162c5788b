// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fieldops/internal/delivery/http/middleware"
	"fieldops/internal/delivery/http/router/handler"
	"fieldops/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware registered on the server.
type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	CaptureHandler *handler.CaptureHandler
	ReportHandler  *handler.ReportHandler
	GoalHandler    *handler.GoalHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	captureHandler *handler.CaptureHandler
	reportHandler  *handler.ReportHandler
	goalHandler    *handler.GoalHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		captureHandler: params.CaptureHandler,
		reportHandler:  params.ReportHandler,
		goalHandler:    params.GoalHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	catalogGroup := api.Group("/catalog", r.authMiddleware.Authenticate)
	{
		catalogGroup.GET("/service-types", r.captureHandler.ServiceTypes)
		catalogGroup.GET("/cities", r.captureHandler.Cities)
	}

	captureGroup := api.Group("/capture", r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleOperator))
	{
		captureGroup.POST("", r.captureHandler.Start)
		captureGroup.GET("", r.captureHandler.Get)
		captureGroup.POST("/city", r.captureHandler.SelectCity)
		captureGroup.POST("/service", r.captureHandler.SelectService)

		captureGroup.POST("/tracking", r.captureHandler.StartTracking)
		captureGroup.GET("/tracking", r.captureHandler.Tracking)
		captureGroup.DELETE("/tracking", r.captureHandler.StopTracking)
		captureGroup.POST("/tracking/confirm", r.captureHandler.ConfirmMatch)
		captureGroup.POST("/position", r.captureHandler.ReportFix)
		captureGroup.POST("/position/error", r.captureHandler.ReportPositionError)

		captureGroup.GET("/locations", r.captureHandler.SearchLocations)
		captureGroup.POST("/location", r.captureHandler.SelectLocation)
		captureGroup.POST("/location/new", r.captureHandler.CreateLocation)

		captureGroup.POST("/photos/:phase", r.captureHandler.UploadPhoto)
		captureGroup.GET("/photos/:phase/:index", r.captureHandler.GetPhoto)
		captureGroup.DELETE("/photos/:phase/:index", r.captureHandler.RemovePhoto)
		captureGroup.POST("/photos/:phase/done", r.captureHandler.FinishPhotos)
		captureGroup.POST("/camera/:phase", r.captureHandler.OpenCamera)
		captureGroup.POST("/camera/:phase/shutter", r.captureHandler.Shutter)
		captureGroup.DELETE("/camera", r.captureHandler.CloseCamera)

		captureGroup.POST("/back", r.captureHandler.Back)
		captureGroup.POST("/cancel", r.captureHandler.Cancel)
		captureGroup.POST("/submit", r.captureHandler.Submit)
	}

	reportGroup := api.Group("/reports", r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleFiscal))
	{
		reportGroup.GET("/records", r.reportHandler.Records)
		reportGroup.POST("/exports", r.reportHandler.Export)
		reportGroup.GET("/artifacts/*", r.reportHandler.Artifact)
	}

	api.GET("/goals/progress", r.goalHandler.Progress, r.authMiddleware.Authenticate)

	adminGroup := api.Group("/admin", r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/locations", r.adminHandler.ListLocations)
		adminGroup.GET("/locations.geojson", r.adminHandler.LocationsGeoJSON)
		adminGroup.POST("/locations", r.adminHandler.CreateLocation)
		adminGroup.PUT("/locations/:id", r.adminHandler.UpdateLocation)
		adminGroup.DELETE("/locations/:id", r.adminHandler.DeleteLocation)

		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.POST("/users", r.adminHandler.CreateUser)
		adminGroup.PUT("/users/:id", r.adminHandler.UpdateUser)
		adminGroup.DELETE("/users/:id", r.adminHandler.DeleteUser)

		adminGroup.GET("/goals", r.goalHandler.List)
		adminGroup.POST("/goals", r.goalHandler.Create)
		adminGroup.PUT("/goals/:id", r.goalHandler.Update)
		adminGroup.DELETE("/goals/:id", r.goalHandler.Delete)

		adminGroup.GET("/backup", r.adminHandler.Backup)
		adminGroup.POST("/restore", r.adminHandler.Restore)
	}
}
