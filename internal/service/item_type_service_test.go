package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemTypeService_Create(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "owner@example.com")
	ctx := context.Background()

	created, err := env.itemTypes.Create(ctx, user.ID, ItemTypeInput{
		Name:        "Hardware",
		Description: "Screws and bolts",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hardware", created.Name)
	assert.Equal(t, user.ID, created.UserID)
}

func TestItemTypeService_Create_EmptyNameRejected(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "owner@example.com")

	_, err := env.itemTypes.Create(context.Background(), user.ID, ItemTypeInput{Name: ""})
	assertErrorCode(t, err, "ValidationError")
}

func TestItemTypeService_Create_DuplicateNamePerOwner(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner@example.com")
	other := env.createUser(t, "other@example.com")
	ctx := context.Background()

	_, err := env.itemTypes.Create(ctx, owner.ID, ItemTypeInput{Name: "Hardware"})
	require.NoError(t, err)

	// Same owner, same name: rejected
	_, err = env.itemTypes.Create(ctx, owner.ID, ItemTypeInput{Name: "Hardware"})
	assertErrorCode(t, err, "ValidationError")

	// Different owner, same name: fine
	_, err = env.itemTypes.Create(ctx, other.ID, ItemTypeInput{Name: "Hardware"})
	require.NoError(t, err)
}

func TestItemTypeService_Update_ExcludesSelfFromUniqueness(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "owner@example.com")
	ctx := context.Background()

	created, err := env.itemTypes.Create(ctx, user.ID, ItemTypeInput{Name: "Hardware"})
	require.NoError(t, err)

	// Keeping the name while changing the description must pass
	updated, err := env.itemTypes.Update(ctx, user.ID, created.ID, ItemTypeInput{
		Name:        "Hardware",
		Description: "Updated description",
	})
	require.NoError(t, err)
	assert.Equal(t, "Updated description", updated.Description)
}

func TestItemTypeService_Update_RejectsNameTakenByAnotherType(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "owner@example.com")
	ctx := context.Background()

	_, err := env.itemTypes.Create(ctx, user.ID, ItemTypeInput{Name: "Hardware"})
	require.NoError(t, err)
	tools, err := env.itemTypes.Create(ctx, user.ID, ItemTypeInput{Name: "Tools"})
	require.NoError(t, err)

	_, err = env.itemTypes.Update(ctx, user.ID, tools.ID, ItemTypeInput{Name: "Hardware"})
	assertErrorCode(t, err, "ValidationError")
}

func TestItemTypeService_Update_ForbiddenForNonOwner(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner@example.com")
	intruder := env.createUser(t, "intruder@example.com")
	ctx := context.Background()

	created, err := env.itemTypes.Create(ctx, owner.ID, ItemTypeInput{Name: "Hardware"})
	require.NoError(t, err)

	_, err = env.itemTypes.Update(ctx, intruder.ID, created.ID, ItemTypeInput{Name: "Stolen"})
	assertErrorCode(t, err, "Forbidden")

	found, err := env.itemTypes.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hardware", found.Name)
}

func TestItemTypeService_Delete_ForbiddenForNonOwner(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner@example.com")
	intruder := env.createUser(t, "intruder@example.com")
	ctx := context.Background()

	created, err := env.itemTypes.Create(ctx, owner.ID, ItemTypeInput{Name: "Hardware"})
	require.NoError(t, err)

	err = env.itemTypes.Delete(ctx, intruder.ID, created.ID)
	assertErrorCode(t, err, "Forbidden")

	_, err = env.itemTypes.Get(ctx, created.ID)
	require.NoError(t, err)
}

func TestItemTypeService_Delete_DetachesItems(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "owner@example.com")
	ctx := context.Background()

	itemType, err := env.itemTypes.Create(ctx, user.ID, ItemTypeInput{Name: "Hardware"})
	require.NoError(t, err)

	item, err := env.items.Create(ctx, user.ID, ItemInput{
		Name:       "Widget",
		Quantity:   3,
		ItemTypeID: &itemType.ID,
	})
	require.NoError(t, err)

	require.NoError(t, env.itemTypes.Delete(ctx, user.ID, itemType.ID))

	// The item survives, untyped
	found, err := env.items.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, found.ItemTypeID)
	assert.Nil(t, found.ItemType)
}

func TestItemTypeService_Get_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.itemTypes.Get(context.Background(), uuid.New())
	assertErrorCode(t, err, "NotFound")
}
