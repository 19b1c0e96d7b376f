package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Pungieee/smart-property-pms/config"
	"github.com/Pungieee/smart-property-pms/internal/dataset"
)

func SetupRoutes(router *gin.Engine, store *dataset.Store, logger *logrus.Logger, cfg *config.Config) {
	handler := NewHandler(store, logger)

	router.Use(gin.Recovery())
	router.Use(RequestLogger(handler.logger))
	router.Use(cors.New(corsConfig()))

	router.GET("/health", handler.HealthCheck)

	if cfg == nil || cfg.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := router.Group("/api")
	{
		api.GET("/dashboard/overview", RequirePermission(config.PermViewOverview), handler.GetDashboardOverview)
		api.GET("/property-insights", RequirePermission(config.PermViewOverview), handler.GetPropertyInsights)
		api.GET("/areas/geo", RequirePermission(config.PermViewOverview), handler.GetAreaGeometries)
		api.GET("/properties", RequirePermission(config.PermViewSales), handler.GetProperties)
		api.GET("/sales/contracts", RequirePermission(config.PermViewSales), handler.GetSalesContracts)
		api.GET("/maintenance/tasks", RequirePermission(config.PermViewMaintenance), handler.GetMaintenanceTasks)
	}
}

// corsConfig keeps the dashboard reachable from any origin. The API is
// read-only, so only GET and the preflight verb are allowed.
func corsConfig() cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowMethods = []string{"GET", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Role", "X-Request-ID"}
	return corsCfg
}
