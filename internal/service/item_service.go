package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Rinde17/stocky/internal/models"
	"github.com/Rinde17/stocky/internal/repository"
	stderrors "github.com/Rinde17/stocky/pkg/errors"
)

const (
	maxItemNameLength = 255
	maxItemUnitLength = 50
)

// ItemInput carries the writable item fields
type ItemInput struct {
	Name         string
	Quantity     int
	Unit         string
	PricePerUnit *float64
	ItemTypeID   *uuid.UUID
}

// ItemService implements item CRUD and the dashboard aggregate reads, always
// scoped to a single owner.
type ItemService struct {
	logger    *zap.Logger
	items     repository.ItemRepository
	itemTypes repository.ItemTypeRepository
	users     repository.UserRepository
}

// NewItemService creates a new item service
func NewItemService(logger *zap.Logger, items repository.ItemRepository, itemTypes repository.ItemTypeRepository, users repository.UserRepository) *ItemService {
	return &ItemService{
		logger:    logger,
		items:     items,
		itemTypes: itemTypes,
		users:     users,
	}
}

// List returns the owner's items sorted by name ascending, item types joined
func (s *ItemService) List(ctx context.Context, ownerID uuid.UUID) ([]models.Item, error) {
	items, err := s.items.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, stderrors.NewDatabaseError("list items", err)
	}
	return items, nil
}

// Get resolves an item by id
func (s *ItemService) Get(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, stderrors.NewNotFound("item")
		}
		return nil, stderrors.NewDatabaseError("find item", err)
	}
	return item, nil
}

// Create validates the input and persists a new item owned by ownerID
func (s *ItemService) Create(ctx context.Context, ownerID uuid.UUID, input ItemInput) (*models.Item, error) {
	if err := s.validateInput(ctx, ownerID, input); err != nil {
		return nil, err
	}

	item := models.NewItem(ownerID, input.Name, input.Quantity)
	item.Unit = input.Unit
	item.PricePerUnit = input.PricePerUnit
	item.ItemTypeID = input.ItemTypeID

	if err := s.items.Create(ctx, item); err != nil {
		return nil, stderrors.NewDatabaseError("create item", err)
	}

	s.logger.Info("Item created",
		zap.String("item_id", item.ID.String()),
		zap.String("user_id", ownerID.String()),
	)

	return s.Get(ctx, item.ID)
}

// Update validates ownership and input, then persists the changes. Unchanged
// fields are written back as-is, which makes an identical update a no-op
// success.
func (s *ItemService) Update(ctx context.Context, actingUserID, itemID uuid.UUID, input ItemInput) (*models.Item, error) {
	item, err := s.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err := AssertOwnership(item, actingUserID); err != nil {
		return nil, err
	}
	if err := s.validateInput(ctx, actingUserID, input); err != nil {
		return nil, err
	}

	item.Name = input.Name
	item.Quantity = input.Quantity
	item.Unit = input.Unit
	item.PricePerUnit = input.PricePerUnit
	item.ItemTypeID = input.ItemTypeID

	if err := s.items.Update(ctx, item); err != nil {
		return nil, stderrors.NewDatabaseError("update item", err)
	}

	s.logger.Info("Item updated", zap.String("item_id", item.ID.String()))

	return s.Get(ctx, item.ID)
}

// Delete validates ownership and removes the item permanently
func (s *ItemService) Delete(ctx context.Context, actingUserID, itemID uuid.UUID) error {
	item, err := s.Get(ctx, itemID)
	if err != nil {
		return err
	}
	if err := AssertOwnership(item, actingUserID); err != nil {
		return err
	}

	if err := s.items.Delete(ctx, itemID); err != nil {
		return stderrors.NewDatabaseError("delete item", err)
	}

	s.logger.Info("Item deleted", zap.String("item_id", itemID.String()))
	return nil
}

// GetUser resolves a user by id
func (s *ItemService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, stderrors.NewNotFound("user")
		}
		return nil, stderrors.NewDatabaseError("find user", err)
	}
	return user, nil
}

// UpdateLowStockThreshold persists the owner's threshold, which must be >= 1
func (s *ItemService) UpdateLowStockThreshold(ctx context.Context, ownerID uuid.UUID, threshold int) error {
	if threshold < 1 {
		return stderrors.NewValidationError("low stock threshold must be at least 1", "low_stock_threshold")
	}

	if err := s.users.UpdateLowStockThreshold(ctx, ownerID, threshold); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return stderrors.NewNotFound("user")
		}
		return stderrors.NewDatabaseError("update low stock threshold", err)
	}

	s.logger.Info("Low stock threshold updated",
		zap.String("user_id", ownerID.String()),
		zap.Int("threshold", threshold),
	)
	return nil
}

// validateInput enforces the item field contract before any write happens.
// A submitted item type id must resolve to a type owned by the same user;
// a foreign or unknown id is rejected the same way.
func (s *ItemService) validateInput(ctx context.Context, ownerID uuid.UUID, input ItemInput) error {
	if input.Name == "" {
		return stderrors.NewValidationError("name is required", "name")
	}
	if len(input.Name) > maxItemNameLength {
		return stderrors.NewValidationError("name must be at most 255 characters", "name")
	}
	if input.Quantity < 0 {
		return stderrors.NewValidationError("quantity must be at least 0", "quantity")
	}
	if len(input.Unit) > maxItemUnitLength {
		return stderrors.NewValidationError("unit must be at most 50 characters", "unit")
	}
	if input.PricePerUnit != nil && *input.PricePerUnit < 0 {
		return stderrors.NewValidationError("price per unit must be at least 0", "price_per_unit")
	}
	if input.ItemTypeID != nil {
		if _, err := s.itemTypes.FindByIDForOwner(ctx, *input.ItemTypeID, ownerID); err != nil {
			if errors.Is(err, repository.ErrItemTypeNotFound) {
				return stderrors.NewValidationError("item type does not exist", "item_type_id")
			}
			return stderrors.NewDatabaseError("resolve item type", err)
		}
	}
	return nil
}

// Aggregate reads for the dashboard, all scoped to the owner

// TotalItemsCount counts the owner's item rows
func (s *ItemService) TotalItemsCount(ctx context.Context, ownerID uuid.UUID) (int, error) {
	count, err := s.items.CountByOwner(ctx, ownerID)
	if err != nil {
		return 0, stderrors.NewDatabaseError("count items", err)
	}
	return count, nil
}

// DistinctItemsCount counts the owner's distinct item names
func (s *ItemService) DistinctItemsCount(ctx context.Context, ownerID uuid.UUID) (int, error) {
	count, err := s.items.CountDistinctNames(ctx, ownerID)
	if err != nil {
		return 0, stderrors.NewDatabaseError("count distinct items", err)
	}
	return count, nil
}

// TotalQuantity sums the quantity across the owner's items
func (s *ItemService) TotalQuantity(ctx context.Context, ownerID uuid.UUID) (int, error) {
	sum, err := s.items.SumQuantity(ctx, ownerID)
	if err != nil {
		return 0, stderrors.NewDatabaseError("sum quantity", err)
	}
	return sum, nil
}

// LowStockCount counts items where 0 < quantity <= threshold
func (s *ItemService) LowStockCount(ctx context.Context, ownerID uuid.UUID, threshold int) (int, error) {
	count, err := s.items.CountLowStock(ctx, ownerID, threshold)
	if err != nil {
		return 0, stderrors.NewDatabaseError("count low stock items", err)
	}
	return count, nil
}

// OutOfStockCount counts items with quantity 0
func (s *ItemService) OutOfStockCount(ctx context.Context, ownerID uuid.UUID) (int, error) {
	count, err := s.items.CountOutOfStock(ctx, ownerID)
	if err != nil {
		return 0, stderrors.NewDatabaseError("count out of stock items", err)
	}
	return count, nil
}

// TotalInventoryValue sums quantity * price over the owner's items
func (s *ItemService) TotalInventoryValue(ctx context.Context, ownerID uuid.UUID) (float64, error) {
	total, err := s.items.TotalValue(ctx, ownerID)
	if err != nil {
		return 0, stderrors.NewDatabaseError("sum inventory value", err)
	}
	return total, nil
}

// LowestStockItems returns the owner's items with the smallest quantities
func (s *ItemService) LowestStockItems(ctx context.Context, ownerID uuid.UUID, limit int) ([]models.Item, error) {
	items, err := s.items.ListLowestStock(ctx, ownerID, limit)
	if err != nil {
		return nil, stderrors.NewDatabaseError("list lowest stock items", err)
	}
	return items, nil
}

// RecentlyAddedItems returns the owner's most recently created items
func (s *ItemService) RecentlyAddedItems(ctx context.Context, ownerID uuid.UUID, limit int) ([]models.Item, error) {
	items, err := s.items.ListRecentlyAdded(ctx, ownerID, limit)
	if err != nil {
		return nil, stderrors.NewDatabaseError("list recently added items", err)
	}
	return items, nil
}
