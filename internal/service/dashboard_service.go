package service

import (
	"context"

	"github.com/Rinde17/stocky/internal/models"
)

// dashboardListLimit caps the lowest-stock and recently-added lists.
const dashboardListLimit = 5

// DashboardStats holds the per-user aggregate counters
type DashboardStats struct {
	TotalItemsCount     int     `json:"totalItemsCount"`
	TotalDistinctItems  int     `json:"totalDistinctItems"`
	TotalQuantity       int     `json:"totalQuantity"`
	ItemsInLowStock     int     `json:"itemsInLowStock"`
	ItemsOutOfStock     int     `json:"itemsOutOfStock"`
	TotalItemTypes      int     `json:"totalItemTypes"`
	TotalInventoryValue float64 `json:"totalInventoryValue"`
}

// DashboardData is the full dashboard payload for one user
type DashboardData struct {
	Stats              DashboardStats
	LowestStockItems   []models.Item
	RecentlyAddedItems []models.Item
	LowStockThreshold  int
}

// DashboardService composes the dashboard payload from the item and item
// type services. Pure read-side composition: every sub-query is an
// independent read, and any storage failure propagates as-is.
type DashboardService struct {
	items     *ItemService
	itemTypes *ItemTypeService
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(items *ItemService, itemTypes *ItemTypeService) *DashboardService {
	return &DashboardService{
		items:     items,
		itemTypes: itemTypes,
	}
}

// GetDashboardData collects all dashboard statistics for the given user
func (s *DashboardService) GetDashboardData(ctx context.Context, user *models.User) (*DashboardData, error) {
	threshold := user.LowStockThreshold

	totalItems, err := s.items.TotalItemsCount(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	distinctItems, err := s.items.DistinctItemsCount(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	totalQuantity, err := s.items.TotalQuantity(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.items.LowStockCount(ctx, user.ID, threshold)
	if err != nil {
		return nil, err
	}
	outOfStock, err := s.items.OutOfStockCount(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	totalItemTypes, err := s.itemTypes.TotalItemTypesCount(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	totalValue, err := s.items.TotalInventoryValue(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	lowestStock, err := s.items.LowestStockItems(ctx, user.ID, dashboardListLimit)
	if err != nil {
		return nil, err
	}
	recentlyAdded, err := s.items.RecentlyAddedItems(ctx, user.ID, dashboardListLimit)
	if err != nil {
		return nil, err
	}

	return &DashboardData{
		Stats: DashboardStats{
			TotalItemsCount:     totalItems,
			TotalDistinctItems:  distinctItems,
			TotalQuantity:       totalQuantity,
			ItemsInLowStock:     lowStock,
			ItemsOutOfStock:     outOfStock,
			TotalItemTypes:      totalItemTypes,
			TotalInventoryValue: totalValue,
		},
		LowestStockItems:   lowestStock,
		RecentlyAddedItems: recentlyAdded,
		LowStockThreshold:  threshold,
	}, nil
}
