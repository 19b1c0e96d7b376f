package api

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Pungieee/smart-property-pms/internal/dataset"
	"github.com/Pungieee/smart-property-pms/internal/geometry"
	"github.com/Pungieee/smart-property-pms/internal/maintenance"
	"github.com/Pungieee/smart-property-pms/internal/models"
	"github.com/Pungieee/smart-property-pms/internal/sales"
	"github.com/Pungieee/smart-property-pms/internal/stats"
)

type Handler struct {
	store     *dataset.Store
	logger    *logrus.Logger
	startedAt time.Time
}

// HealthResponse is the body of the liveness probe.
type HealthResponse struct {
	Status string  `json:"status"`
	Uptime float64 `json:"uptime"`
}

func NewHandler(store *dataset.Store, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	if store == nil {
		store = dataset.New(nil)
	}

	return &Handler{
		store:     store,
		logger:    logger,
		startedAt: time.Now(),
	}
}

// GetDashboardOverview godoc
// @Summary Portfolio KPIs
// @Description Total value, unit count, average price, and the busiest areas.
// @Tags dashboard
// @Produce json
// @Param x-role header string false "Caller role" default(sales)
// @Success 200 {object} models.Overview
// @Failure 403 {object} ForbiddenResponse
// @Router /api/dashboard/overview [get]
func (h *Handler) GetDashboardOverview(c *gin.Context) {
	c.JSON(http.StatusOK, h.safeOverview())
}

// safeOverview downgrades any fault while crunching a malformed dataset
// to the zeroed payload.
func (h *Handler) safeOverview() (overview models.Overview) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.WithField("cause", r).Error("Overview computation failed, serving zeroed payload")
			overview = stats.Empty()
		}
	}()

	return stats.BuildOverview(h.store.Records())
}

// GetPropertyInsights godoc
// @Summary Every unit with its raw record and premium flag
// @Tags dashboard
// @Produce json
// @Param x-role header string false "Caller role" default(sales)
// @Success 200 {array} models.UnitInsight
// @Failure 403 {object} ForbiddenResponse
// @Router /api/property-insights [get]
func (h *Handler) GetPropertyInsights(c *gin.Context) {
	c.JSON(http.StatusOK, stats.BuildInsights(h.store.Records()))
}

// GetProperties godoc
// @Summary Unit inventory
// @Description Normalized units, optionally narrowed by status, area, or price bounds.
// @Tags sales
// @Produce json
// @Param x-role header string false "Caller role" default(sales)
// @Param status query string false "Exact status, case-insensitive"
// @Param area query string false "Sub-locality substring, case-insensitive"
// @Param minPrice query number false "Lowest price to include"
// @Param maxPrice query number false "Highest price to include"
// @Success 200 {array} models.Unit
// @Failure 403 {object} ForbiddenResponse
// @Router /api/properties [get]
func (h *Handler) GetProperties(c *gin.Context) {
	var filter models.UnitFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.logger.WithError(err).Error("Failed to parse listing filter")
	}

	c.JSON(http.StatusOK, sales.FilterUnits(h.store.Records(), &filter))
}

// GetSalesContracts godoc
// @Summary Synthetic contracts for the sales workspace
// @Description One demonstration contract per unit, regenerated on every call.
// @Tags sales
// @Produce json
// @Param x-role header string false "Caller role" default(sales)
// @Success 200 {array} models.Contract
// @Failure 403 {object} ForbiddenResponse
// @Router /api/sales/contracts [get]
func (h *Handler) GetSalesContracts(c *gin.Context) {
	c.JSON(http.StatusOK, sales.BuildContracts(h.store.Records(), time.Now()))
}

// GetMaintenanceTasks godoc
// @Summary Synthetic maintenance queue
// @Description One demonstration task per unit, regenerated on every call.
// @Tags maintenance
// @Produce json
// @Param x-role header string false "Caller role" default(sales)
// @Success 200 {array} models.MaintenanceTask
// @Failure 403 {object} ForbiddenResponse
// @Router /api/maintenance/tasks [get]
func (h *Handler) GetMaintenanceTasks(c *gin.Context) {
	c.JSON(http.StatusOK, maintenance.BuildTasks(h.store.Records(), time.Now()))
}

// GetAreaGeometries godoc
// @Summary Area centroids, geohashes, and convex hulls
// @Description Derived from the units that carry coordinates.
// @Tags dashboard
// @Produce json
// @Param x-role header string false "Caller role" default(sales)
// @Success 200 {array} geometry.AreaGeometry
// @Failure 403 {object} ForbiddenResponse
// @Router /api/areas/geo [get]
func (h *Handler) GetAreaGeometries(c *gin.Context) {
	c.JSON(http.StatusOK, geometry.BuildAreaGeometries(h.store.Records()))
}

// HealthCheck godoc
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
		Uptime: time.Since(h.startedAt).Seconds(),
	})
}
