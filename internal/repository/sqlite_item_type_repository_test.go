package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rinde17/stocky/internal/models"
)

func TestItemTypeRepository_CreateAndFindByID(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "owner@example.com")
	typeRepo := NewSQLiteItemTypeRepository(db)
	ctx := context.Background()

	itemType := models.NewItemType(user.ID, "Hardware", "Screws and bolts")
	require.NoError(t, typeRepo.Create(ctx, itemType))

	found, err := typeRepo.FindByID(ctx, itemType.ID)
	require.NoError(t, err)
	assert.Equal(t, itemType.ID, found.ID)
	assert.Equal(t, user.ID, found.UserID)
	assert.Equal(t, "Hardware", found.Name)
	assert.Equal(t, "Screws and bolts", found.Description)
}

func TestItemTypeRepository_FindByIDForOwner(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")
	typeRepo := NewSQLiteItemTypeRepository(db)
	ctx := context.Background()

	itemType := models.NewItemType(owner.ID, "Hardware", "")
	require.NoError(t, typeRepo.Create(ctx, itemType))

	found, err := typeRepo.FindByIDForOwner(ctx, itemType.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, itemType.ID, found.ID)

	// Someone else's id resolves to not-found, never to the row
	_, err = typeRepo.FindByIDForOwner(ctx, itemType.ID, other.ID)
	assert.ErrorIs(t, err, ErrItemTypeNotFound)
}

func TestItemTypeRepository_ListByOwner_SortedAndScoped(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")
	typeRepo := NewSQLiteItemTypeRepository(db)
	ctx := context.Background()

	require.NoError(t, typeRepo.Create(ctx, models.NewItemType(owner.ID, "Tools", "")))
	require.NoError(t, typeRepo.Create(ctx, models.NewItemType(other.ID, "Foreign", "")))
	require.NoError(t, typeRepo.Create(ctx, models.NewItemType(owner.ID, "Hardware", "")))

	itemTypes, err := typeRepo.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, itemTypes, 2)
	assert.Equal(t, "Hardware", itemTypes[0].Name)
	assert.Equal(t, "Tools", itemTypes[1].Name)
}

func TestItemTypeRepository_NameInUse(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")
	typeRepo := NewSQLiteItemTypeRepository(db)
	ctx := context.Background()

	itemType := models.NewItemType(owner.ID, "Hardware", "")
	require.NoError(t, typeRepo.Create(ctx, itemType))

	inUse, err := typeRepo.NameInUse(ctx, owner.ID, "Hardware", uuid.Nil)
	require.NoError(t, err)
	assert.True(t, inUse)

	// Uniqueness is per owner, not global
	inUse, err = typeRepo.NameInUse(ctx, other.ID, "Hardware", uuid.Nil)
	require.NoError(t, err)
	assert.False(t, inUse)

	// Excluding the record itself allows a no-op rename
	inUse, err = typeRepo.NameInUse(ctx, owner.ID, "Hardware", itemType.ID)
	require.NoError(t, err)
	assert.False(t, inUse)
}

func TestItemTypeRepository_DuplicateNameSameOwnerRejected(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "owner@example.com")
	typeRepo := NewSQLiteItemTypeRepository(db)
	ctx := context.Background()

	require.NoError(t, typeRepo.Create(ctx, models.NewItemType(user.ID, "Hardware", "")))

	err := typeRepo.Create(ctx, models.NewItemType(user.ID, "Hardware", "duplicate"))
	assert.Error(t, err)
}

func TestItemTypeRepository_Update(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "owner@example.com")
	typeRepo := NewSQLiteItemTypeRepository(db)
	ctx := context.Background()

	itemType := models.NewItemType(user.ID, "Hardware", "")
	require.NoError(t, typeRepo.Create(ctx, itemType))

	itemType.Name = "Fasteners"
	itemType.Description = "Screws only"
	require.NoError(t, typeRepo.Update(ctx, itemType))

	found, err := typeRepo.FindByID(ctx, itemType.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fasteners", found.Name)
	assert.Equal(t, "Screws only", found.Description)
}

func TestItemTypeRepository_Update_NotFound(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "owner@example.com")
	typeRepo := NewSQLiteItemTypeRepository(db)

	ghost := models.NewItemType(user.ID, "Ghost", "")
	assert.ErrorIs(t, typeRepo.Update(context.Background(), ghost), ErrItemTypeNotFound)
}

func TestItemTypeRepository_DeleteClearsItemReference(t *testing.T) {
	// Deleting a type must keep its items and null out the reference
	db := newTestDB(t)
	user := createTestUser(t, db, "owner@example.com")
	typeRepo := NewSQLiteItemTypeRepository(db)
	itemRepo := NewSQLiteItemRepository(db)
	ctx := context.Background()

	itemType := models.NewItemType(user.ID, "Hardware", "")
	require.NoError(t, typeRepo.Create(ctx, itemType))

	item := models.NewItem(user.ID, "Widget", 3)
	item.ItemTypeID = &itemType.ID
	require.NoError(t, itemRepo.Create(ctx, item))

	require.NoError(t, typeRepo.Delete(ctx, itemType.ID))

	found, err := itemRepo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, found.ItemTypeID)
	assert.Nil(t, found.ItemType)
	assert.Equal(t, 3, found.Quantity)
}

func TestItemTypeRepository_Delete_NotFound(t *testing.T) {
	db := newTestDB(t)
	typeRepo := NewSQLiteItemTypeRepository(db)

	assert.ErrorIs(t, typeRepo.Delete(context.Background(), uuid.New()), ErrItemTypeNotFound)
}

func TestItemTypeRepository_CountByOwner(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")
	typeRepo := NewSQLiteItemTypeRepository(db)
	ctx := context.Background()

	require.NoError(t, typeRepo.Create(ctx, models.NewItemType(owner.ID, "Hardware", "")))
	require.NoError(t, typeRepo.Create(ctx, models.NewItemType(owner.ID, "Tools", "")))
	require.NoError(t, typeRepo.Create(ctx, models.NewItemType(other.ID, "Foreign", "")))

	count, err := typeRepo.CountByOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
