package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rinde17/stocky/internal/models"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewSQLiteUserRepository(db)
	ctx := context.Background()

	user := models.NewUser("Jane Doe", "jane@example.com", "hashed-password")
	require.NoError(t, userRepo.Create(ctx, user))

	byID, err := userRepo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", byID.Name)
	assert.Equal(t, "jane@example.com", byID.Email)
	assert.Equal(t, "hashed-password", byID.PasswordHash)
	assert.False(t, byID.IsAdmin)
	assert.Zero(t, byID.LowStockThreshold)

	byEmail, err := userRepo.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepository_FindNotFound(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewSQLiteUserRepository(db)
	ctx := context.Background()

	_, err := userRepo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = userRepo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_DuplicateEmailRejected(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewSQLiteUserRepository(db)
	ctx := context.Background()

	require.NoError(t, userRepo.Create(ctx, models.NewUser("Jane", "jane@example.com", "hash")))
	err := userRepo.Create(ctx, models.NewUser("Other Jane", "jane@example.com", "hash"))
	assert.Error(t, err)
}

func TestUserRepository_UpdateLowStockThreshold(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewSQLiteUserRepository(db)
	ctx := context.Background()

	user := models.NewUser("Jane", "jane@example.com", "hash")
	require.NoError(t, userRepo.Create(ctx, user))

	require.NoError(t, userRepo.UpdateLowStockThreshold(ctx, user.ID, 5))

	found, err := userRepo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, found.LowStockThreshold)
}

func TestUserRepository_UpdateLowStockThreshold_NotFound(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewSQLiteUserRepository(db)

	err := userRepo.UpdateLowStockThreshold(context.Background(), uuid.New(), 5)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
