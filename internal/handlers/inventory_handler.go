package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Rinde17/stocky/internal/cache"
	"github.com/Rinde17/stocky/internal/service"
	"github.com/Rinde17/stocky/pkg/errors"
)

const inventoryPath = "/app/inventory"

// InventoryHandler serves the inventory page and item mutations
type InventoryHandler struct {
	logger    *zap.Logger
	items     *service.ItemService
	itemTypes *service.ItemTypeService
	cache     cache.Cache
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(logger *zap.Logger, items *service.ItemService, itemTypes *service.ItemTypeService, cacheClient cache.Cache) *InventoryHandler {
	return &InventoryHandler{
		logger:    logger,
		items:     items,
		itemTypes: itemTypes,
		cache:     cacheClient,
	}
}

// Index handles GET /app/inventory
// @Summary      Inventory page payload
// @Description  The user's items (name ascending, item type attached), item
// @Description  types, low stock threshold and the status message from the
// @Description  last mutation, if any.
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  InventoryIndexResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /app/inventory [get]
func (h *InventoryHandler) Index(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errors.NewUnauthorized("not authenticated"))
		return
	}

	items, err := h.items.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	itemTypes, err := h.itemTypes.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	threshold := 0
	if user, err := h.items.GetUser(c.Request.Context(), userID); err == nil {
		threshold = user.LowStockThreshold
	}

	c.JSON(http.StatusOK, InventoryIndexResponse{
		Items:             toItemResponses(items),
		ItemTypes:         toItemTypeResponses(itemTypes),
		LowStockThreshold: threshold,
		Status:            popStatus(c),
	})
}

// Create handles POST /app/inventory
// @Summary      Create an item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request  body  ItemRequest  true  "Item fields"
// @Success      303  "Redirects to the inventory page with a status message"
// @Failure      400  {object}  ErrorResponse
// @Router       /app/inventory [post]
func (h *InventoryHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errors.NewUnauthorized("not authenticated"))
		return
	}

	input, err := h.bindItemInput(c, userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if _, err := h.items.Create(c.Request.Context(), userID, *input); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.invalidateDashboard(c, userID)
	setStatus(c, "Item added successfully!")
	c.Redirect(http.StatusSeeOther, inventoryPath)
}

// Update handles PUT /app/inventory/:id
// @Summary      Update an item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id       path  string       true  "Item ID (UUID)"
// @Param        request  body  ItemRequest  true  "Item fields"
// @Success      303  "Redirects to the inventory page with a status message"
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /app/inventory/{id} [put]
func (h *InventoryHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errors.NewUnauthorized("not authenticated"))
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, errors.NewInvalidRequest("invalid item id", c.Param("id")))
		return
	}

	input, bindErr := h.bindItemInput(c, userID)
	if bindErr != nil {
		respondError(c, h.logger, bindErr)
		return
	}

	if _, err := h.items.Update(c.Request.Context(), userID, itemID, *input); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.invalidateDashboard(c, userID)
	setStatus(c, "Item updated!")
	c.Redirect(http.StatusSeeOther, inventoryPath)
}

// Delete handles DELETE /app/inventory/:id
// @Summary      Delete an item
// @Tags         inventory
// @Produce      json
// @Param        id  path  string  true  "Item ID (UUID)"
// @Success      303  "Redirects to the inventory page with a status message"
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /app/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errors.NewUnauthorized("not authenticated"))
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, errors.NewInvalidRequest("invalid item id", c.Param("id")))
		return
	}

	if err := h.items.Delete(c.Request.Context(), userID, itemID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.invalidateDashboard(c, userID)
	setStatus(c, "Item deleted!")
	c.Redirect(http.StatusSeeOther, inventoryPath)
}

// UpdateLowStockThreshold handles PATCH /app/user/low-stock-threshold
// @Summary      Update the low stock threshold
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request  body  ThresholdRequest  true  "New threshold (>= 1)"
// @Success      303  "Redirects to the inventory page with a status message"
// @Failure      400  {object}  ErrorResponse
// @Router       /app/user/low-stock-threshold [patch]
func (h *InventoryHandler) UpdateLowStockThreshold(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errors.NewUnauthorized("not authenticated"))
		return
	}

	var req ThresholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, errors.NewValidationError("low stock threshold is required", "low_stock_threshold"))
		return
	}

	if err := h.items.UpdateLowStockThreshold(c.Request.Context(), userID, *req.LowStockThreshold); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.invalidateDashboard(c, userID)
	setStatus(c, "Low stock threshold updated successfully.")
	c.Redirect(http.StatusSeeOther, inventoryPath)
}

// bindItemInput parses and converts the request body into a service input
func (h *InventoryHandler) bindItemInput(c *gin.Context, userID uuid.UUID) (*service.ItemInput, error) {
	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, errors.NewInvalidRequest("invalid item request", err.Error())
	}

	input := service.ItemInput{
		Name:         req.Name,
		Quantity:     *req.Quantity,
		Unit:         req.Unit,
		PricePerUnit: req.PricePerUnit,
	}

	if req.ItemTypeID != nil && *req.ItemTypeID != "" {
		itemTypeID, err := uuid.Parse(*req.ItemTypeID)
		if err != nil {
			return nil, errors.NewValidationError("item type id must be a valid UUID", "item_type_id")
		}
		input.ItemTypeID = &itemTypeID
	}

	return &input, nil
}

// invalidateDashboard drops the user's cached dashboard after a mutation
func (h *InventoryHandler) invalidateDashboard(c *gin.Context, userID uuid.UUID) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Delete(c.Request.Context(), cache.DashboardKey(userID.String())); err != nil {
		h.logger.Warn("Failed to invalidate dashboard cache",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
	}
}
