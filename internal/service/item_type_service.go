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

// ItemTypeInput carries the writable item type fields
type ItemTypeInput struct {
	Name        string
	Description string
}

// ItemTypeService implements item type CRUD scoped to a single owner.
type ItemTypeService struct {
	logger    *zap.Logger
	itemTypes repository.ItemTypeRepository
}

// NewItemTypeService creates a new item type service
func NewItemTypeService(logger *zap.Logger, itemTypes repository.ItemTypeRepository) *ItemTypeService {
	return &ItemTypeService{
		logger:    logger,
		itemTypes: itemTypes,
	}
}

// List returns the owner's item types sorted by name ascending
func (s *ItemTypeService) List(ctx context.Context, ownerID uuid.UUID) ([]models.ItemType, error) {
	itemTypes, err := s.itemTypes.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, stderrors.NewDatabaseError("list item types", err)
	}
	return itemTypes, nil
}

// Get resolves an item type by id
func (s *ItemTypeService) Get(ctx context.Context, id uuid.UUID) (*models.ItemType, error) {
	itemType, err := s.itemTypes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrItemTypeNotFound) {
			return nil, stderrors.NewNotFound("item type")
		}
		return nil, stderrors.NewDatabaseError("find item type", err)
	}
	return itemType, nil
}

// Create validates the input and persists a new item type owned by ownerID
func (s *ItemTypeService) Create(ctx context.Context, ownerID uuid.UUID, input ItemTypeInput) (*models.ItemType, error) {
	if err := s.validateInput(ctx, ownerID, input, uuid.Nil); err != nil {
		return nil, err
	}

	itemType := models.NewItemType(ownerID, input.Name, input.Description)
	if err := s.itemTypes.Create(ctx, itemType); err != nil {
		return nil, stderrors.NewDatabaseError("create item type", err)
	}

	s.logger.Info("Item type created",
		zap.String("item_type_id", itemType.ID.String()),
		zap.String("user_id", ownerID.String()),
	)

	return itemType, nil
}

// Update validates ownership and input, then persists the changes. The
// uniqueness check excludes the record being updated.
func (s *ItemTypeService) Update(ctx context.Context, actingUserID, itemTypeID uuid.UUID, input ItemTypeInput) (*models.ItemType, error) {
	itemType, err := s.Get(ctx, itemTypeID)
	if err != nil {
		return nil, err
	}
	if err := AssertOwnership(itemType, actingUserID); err != nil {
		return nil, err
	}
	if err := s.validateInput(ctx, actingUserID, input, itemTypeID); err != nil {
		return nil, err
	}

	itemType.Name = input.Name
	itemType.Description = input.Description

	if err := s.itemTypes.Update(ctx, itemType); err != nil {
		return nil, stderrors.NewDatabaseError("update item type", err)
	}

	s.logger.Info("Item type updated", zap.String("item_type_id", itemType.ID.String()))
	return itemType, nil
}

// Delete validates ownership and removes the item type. Items referencing it
// keep existing with the reference cleared by the storage layer.
func (s *ItemTypeService) Delete(ctx context.Context, actingUserID, itemTypeID uuid.UUID) error {
	itemType, err := s.Get(ctx, itemTypeID)
	if err != nil {
		return err
	}
	if err := AssertOwnership(itemType, actingUserID); err != nil {
		return err
	}

	if err := s.itemTypes.Delete(ctx, itemTypeID); err != nil {
		return stderrors.NewDatabaseError("delete item type", err)
	}

	s.logger.Info("Item type deleted", zap.String("item_type_id", itemTypeID.String()))
	return nil
}

// TotalItemTypesCount counts the owner's item types
func (s *ItemTypeService) TotalItemTypesCount(ctx context.Context, ownerID uuid.UUID) (int, error) {
	count, err := s.itemTypes.CountByOwner(ctx, ownerID)
	if err != nil {
		return 0, stderrors.NewDatabaseError("count item types", err)
	}
	return count, nil
}

// validateInput enforces the item type field contract. The name uniqueness
// check is scoped to the owner, never global.
func (s *ItemTypeService) validateInput(ctx context.Context, ownerID uuid.UUID, input ItemTypeInput, excludeID uuid.UUID) error {
	if input.Name == "" {
		return stderrors.NewValidationError("name is required", "name")
	}
	if len(input.Name) > maxItemNameLength {
		return stderrors.NewValidationError("name must be at most 255 characters", "name")
	}

	inUse, err := s.itemTypes.NameInUse(ctx, ownerID, input.Name, excludeID)
	if err != nil {
		return stderrors.NewDatabaseError("check item type name", err)
	}
	if inUse {
		return stderrors.NewValidationError("an item type with this name already exists", "name")
	}
	return nil
}
