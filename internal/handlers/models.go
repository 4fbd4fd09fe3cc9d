package handlers

import (
	"github.com/Rinde17/stocky/internal/models"
	"github.com/Rinde17/stocky/internal/service"
)

// timestampLayout is the wire format for item and item type timestamps.
const timestampLayout = "2006-01-02 15:04:05"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"ValidationError"`
	Message string `json:"message" example:"name is required"`
	Details string `json:"details" example:"Field: name"`
}

// ItemTypeResponse is the wire shape of an item type
type ItemTypeResponse struct {
	ID          string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name        string `json:"name" example:"Hardware"`
	Description string `json:"description,omitempty" example:"Screws, bolts and fixings"`
	CreatedAt   string `json:"created_at" example:"2024-01-15 10:30:00"`
	UpdatedAt   string `json:"updated_at" example:"2024-01-15 10:30:00"`
}

// ItemResponse is the wire shape of an item, with its type attached when set
type ItemResponse struct {
	ID           string            `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name         string            `json:"name" example:"Widget"`
	Quantity     int               `json:"quantity" example:"3"`
	Unit         string            `json:"unit,omitempty" example:"pcs"`
	PricePerUnit *float64          `json:"price_per_unit" example:"2.5"`
	CreatedAt    string            `json:"created_at" example:"2024-01-15 10:30:00"`
	UpdatedAt    string            `json:"updated_at" example:"2024-01-15 10:30:00"`
	ItemTypeID   *string           `json:"item_type_id"`
	ItemType     *ItemTypeResponse `json:"item_type,omitempty"`
}

// InventoryIndexResponse is the inventory page payload
type InventoryIndexResponse struct {
	Items             []ItemResponse     `json:"items"`
	ItemTypes         []ItemTypeResponse `json:"itemTypes"`
	LowStockThreshold int                `json:"lowStockThreshold"`
	Status            string             `json:"status,omitempty"`
}

// ItemTypeIndexResponse is the item types page payload
type ItemTypeIndexResponse struct {
	ItemTypes []ItemTypeResponse `json:"itemTypes"`
	Status    string             `json:"status,omitempty"`
}

// DashboardResponse is the dashboard page payload
type DashboardResponse struct {
	Stats              service.DashboardStats `json:"stats"`
	LowestStockItems   []ItemResponse         `json:"lowestStockItems"`
	RecentlyAddedItems []ItemResponse         `json:"recentlyAddedItems"`
	LowStockThreshold  int                    `json:"lowStockThreshold"`
}

// ItemRequest is the request body for creating or updating an item.
// Quantity is a pointer so that an explicit 0 passes the required check.
type ItemRequest struct {
	Name         string   `json:"name" binding:"required,max=255" example:"Widget"`
	Quantity     *int     `json:"quantity" binding:"required" example:"3"`
	Unit         string   `json:"unit" binding:"max=50" example:"pcs"`
	PricePerUnit *float64 `json:"price_per_unit" example:"2.5"`
	ItemTypeID   *string  `json:"item_type_id"`
}

// ItemTypeRequest is the request body for creating or updating an item type
type ItemTypeRequest struct {
	Name        string `json:"name" binding:"required,max=255" example:"Hardware"`
	Description string `json:"description" example:"Screws, bolts and fixings"`
}

// ThresholdRequest is the request body for the low stock threshold update
type ThresholdRequest struct {
	LowStockThreshold *int `json:"low_stock_threshold" binding:"required" example:"5"`
}

func toItemTypeResponse(t *models.ItemType) ItemTypeResponse {
	return ItemTypeResponse{
		ID:          t.ID.String(),
		Name:        t.Name,
		Description: t.Description,
		CreatedAt:   t.CreatedAt.Format(timestampLayout),
		UpdatedAt:   t.UpdatedAt.Format(timestampLayout),
	}
}

func toItemResponse(i *models.Item) ItemResponse {
	resp := ItemResponse{
		ID:           i.ID.String(),
		Name:         i.Name,
		Quantity:     i.Quantity,
		Unit:         i.Unit,
		PricePerUnit: i.PricePerUnit,
		CreatedAt:    i.CreatedAt.Format(timestampLayout),
		UpdatedAt:    i.UpdatedAt.Format(timestampLayout),
	}
	if i.ItemTypeID != nil {
		id := i.ItemTypeID.String()
		resp.ItemTypeID = &id
	}
	if i.ItemType != nil {
		t := toItemTypeResponse(i.ItemType)
		resp.ItemType = &t
	}
	return resp
}

func toItemResponses(items []models.Item) []ItemResponse {
	responses := make([]ItemResponse, len(items))
	for i := range items {
		responses[i] = toItemResponse(&items[i])
	}
	return responses
}

func toItemTypeResponses(itemTypes []models.ItemType) []ItemTypeResponse {
	responses := make([]ItemTypeResponse, len(itemTypes))
	for i := range itemTypes {
		responses[i] = toItemTypeResponse(&itemTypes[i])
	}
	return responses
}
