package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Rinde17/stocky/internal/cache"
	"github.com/Rinde17/stocky/internal/service"
	"github.com/Rinde17/stocky/pkg/errors"
)

// DashboardHandler serves the per-user dashboard payload, cache-first when a
// cache is configured.
type DashboardHandler struct {
	logger    *zap.Logger
	items     *service.ItemService
	dashboard *service.DashboardService
	cache     cache.Cache
	cacheTTL  int
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(logger *zap.Logger, items *service.ItemService, dashboard *service.DashboardService, cacheClient cache.Cache, cacheTTL int) *DashboardHandler {
	return &DashboardHandler{
		logger:    logger,
		items:     items,
		dashboard: dashboard,
		cache:     cacheClient,
		cacheTTL:  cacheTTL,
	}
}

// GetDashboard handles GET /app/dashboard
// @Summary      Dashboard payload
// @Description  Aggregate statistics over the user's inventory: counts,
// @Description  quantities, low/out-of-stock counters, total value, the five
// @Description  lowest-stock items and the five most recently added items.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  DashboardResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /app/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errors.NewUnauthorized("not authenticated"))
		return
	}

	// Try cache first (if enabled)
	if h.cache != nil {
		cacheKey := cache.DashboardKey(userID.String())
		var cached DashboardResponse
		if err := cache.GetJSON(c.Request.Context(), h.cache, cacheKey, &cached); err == nil {
			h.logger.Debug("Dashboard cache hit", zap.String("key", cacheKey))
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	user, err := h.items.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	data, err := h.dashboard.GetDashboardData(c.Request.Context(), user)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	response := DashboardResponse{
		Stats:              data.Stats,
		LowestStockItems:   toItemResponses(data.LowestStockItems),
		RecentlyAddedItems: toItemResponses(data.RecentlyAddedItems),
		LowStockThreshold:  data.LowStockThreshold,
	}

	if h.cache != nil {
		cacheKey := cache.DashboardKey(userID.String())
		if err := cache.SetJSON(c.Request.Context(), h.cache, cacheKey, response, cache.TTL(h.cacheTTL)); err != nil {
			h.logger.Warn("Failed to cache dashboard", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, response)
}
