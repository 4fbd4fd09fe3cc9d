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

const itemTypesPath = "/app/item-types"

// ItemTypeHandler serves the item types page and mutations
type ItemTypeHandler struct {
	logger    *zap.Logger
	itemTypes *service.ItemTypeService
	cache     cache.Cache
}

// NewItemTypeHandler creates a new item type handler
func NewItemTypeHandler(logger *zap.Logger, itemTypes *service.ItemTypeService, cacheClient cache.Cache) *ItemTypeHandler {
	return &ItemTypeHandler{
		logger:    logger,
		itemTypes: itemTypes,
		cache:     cacheClient,
	}
}

// Index handles GET /app/item-types
// @Summary      Item types page payload
// @Tags         item-types
// @Produce      json
// @Success      200  {object}  ItemTypeIndexResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /app/item-types [get]
func (h *ItemTypeHandler) Index(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errors.NewUnauthorized("not authenticated"))
		return
	}

	itemTypes, err := h.itemTypes.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, ItemTypeIndexResponse{
		ItemTypes: toItemTypeResponses(itemTypes),
		Status:    popStatus(c),
	})
}

// Create handles POST /app/item-types
// @Summary      Create an item type
// @Description  The name must be unique among this user's item types; another
// @Description  user may use the same name.
// @Tags         item-types
// @Accept       json
// @Produce      json
// @Param        request  body  ItemTypeRequest  true  "Item type fields"
// @Success      303  "Redirects to the item types page with a status message"
// @Failure      400  {object}  ErrorResponse
// @Router       /app/item-types [post]
func (h *ItemTypeHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errors.NewUnauthorized("not authenticated"))
		return
	}

	var req ItemTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, errors.NewInvalidRequest("invalid item type request", err.Error()))
		return
	}

	input := service.ItemTypeInput{Name: req.Name, Description: req.Description}
	if _, err := h.itemTypes.Create(c.Request.Context(), userID, input); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.invalidateDashboard(c, userID)
	setStatus(c, "Item type created successfully!")
	c.Redirect(http.StatusSeeOther, itemTypesPath)
}

// Update handles PUT /app/item-types/:id
// @Summary      Update an item type
// @Tags         item-types
// @Accept       json
// @Produce      json
// @Param        id       path  string           true  "Item type ID (UUID)"
// @Param        request  body  ItemTypeRequest  true  "Item type fields"
// @Success      303  "Redirects to the item types page with a status message"
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /app/item-types/{id} [put]
func (h *ItemTypeHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errors.NewUnauthorized("not authenticated"))
		return
	}

	itemTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, errors.NewInvalidRequest("invalid item type id", c.Param("id")))
		return
	}

	var req ItemTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, errors.NewInvalidRequest("invalid item type request", err.Error()))
		return
	}

	input := service.ItemTypeInput{Name: req.Name, Description: req.Description}
	if _, err := h.itemTypes.Update(c.Request.Context(), userID, itemTypeID, input); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.invalidateDashboard(c, userID)
	setStatus(c, "Item type updated!")
	c.Redirect(http.StatusSeeOther, itemTypesPath)
}

// Delete handles DELETE /app/item-types/:id
// @Summary      Delete an item type
// @Description  Items referencing the type are kept; their reference is
// @Description  cleared by the storage layer.
// @Tags         item-types
// @Produce      json
// @Param        id  path  string  true  "Item type ID (UUID)"
// @Success      303  "Redirects to the item types page with a status message"
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /app/item-types/{id} [delete]
func (h *ItemTypeHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errors.NewUnauthorized("not authenticated"))
		return
	}

	itemTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, errors.NewInvalidRequest("invalid item type id", c.Param("id")))
		return
	}

	if err := h.itemTypes.Delete(c.Request.Context(), userID, itemTypeID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.invalidateDashboard(c, userID)
	setStatus(c, "Item type deleted!")
	c.Redirect(http.StatusSeeOther, itemTypesPath)
}

func (h *ItemTypeHandler) invalidateDashboard(c *gin.Context, userID uuid.UUID) {
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
