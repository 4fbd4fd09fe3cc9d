package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/Rinde17/stocky/internal/models"
)

// Every query that touches owned data takes the owner id explicitly. Nothing
// in this package trusts the caller to have pre-scoped the rows: cross-tenant
// isolation is visible in each signature and enforced in each WHERE clause.

// ItemRepository defines storage operations for items
type ItemRepository interface {
	// ListByOwner returns the owner's items sorted by name ascending, with
	// the item type eagerly joined where present.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Item, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
	Create(ctx context.Context, item *models.Item) error
	Update(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Dashboard aggregates, all scoped to a single owner
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
	CountDistinctNames(ctx context.Context, ownerID uuid.UUID) (int, error)
	SumQuantity(ctx context.Context, ownerID uuid.UUID) (int, error)
	CountLowStock(ctx context.Context, ownerID uuid.UUID, threshold int) (int, error)
	CountOutOfStock(ctx context.Context, ownerID uuid.UUID) (int, error)
	TotalValue(ctx context.Context, ownerID uuid.UUID) (float64, error)
	ListLowestStock(ctx context.Context, ownerID uuid.UUID, limit int) ([]models.Item, error)
	ListRecentlyAdded(ctx context.Context, ownerID uuid.UUID, limit int) ([]models.Item, error)
}

// ItemTypeRepository defines storage operations for item types
type ItemTypeRepository interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.ItemType, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.ItemType, error)
	// FindByIDForOwner resolves a type only when it belongs to the owner.
	FindByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*models.ItemType, error)
	Create(ctx context.Context, itemType *models.ItemType) error
	Update(ctx context.Context, itemType *models.ItemType) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
	// NameInUse reports whether the owner already has a type with this name,
	// excluding the given id (uuid.Nil to exclude nothing).
	NameInUse(ctx context.Context, ownerID uuid.UUID, name string, excludeID uuid.UUID) (bool, error)
}

// UserRepository defines storage operations for users
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateLowStockThreshold(ctx context.Context, id uuid.UUID, threshold int) error
}

var (
	ErrItemNotFound     = &RepositoryError{Message: "item not found"}
	ErrItemTypeNotFound = &RepositoryError{Message: "item type not found"}
	ErrUserNotFound     = &RepositoryError{Message: "user not found"}
)

type RepositoryError struct {
	Message string
}

func (e *RepositoryError) Error() string {
	return e.Message
}
