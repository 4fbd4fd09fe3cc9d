package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Rinde17/stocky/internal/models"
)

// SQLiteItemTypeRepository persists item types in SQLite
type SQLiteItemTypeRepository struct {
	db *sql.DB
}

// NewSQLiteItemTypeRepository creates a new SQLite item type repository
func NewSQLiteItemTypeRepository(db *sql.DB) ItemTypeRepository {
	return &SQLiteItemTypeRepository{db: db}
}

func scanItemType(scanner interface{ Scan(...interface{}) error }) (*models.ItemType, error) {
	var itemType models.ItemType
	var createdAtStr, updatedAtStr string

	err := scanner.Scan(
		&itemType.ID,
		&itemType.UserID,
		&itemType.Name,
		&itemType.Description,
		&createdAtStr,
		&updatedAtStr,
	)
	if err != nil {
		return nil, err
	}

	itemType.CreatedAt = parseTimestamp(createdAtStr)
	itemType.UpdatedAt = parseTimestamp(updatedAtStr)
	return &itemType, nil
}

// ListByOwner returns the owner's item types sorted by name ascending
func (r *SQLiteItemTypeRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.ItemType, error) {
	query := `
		SELECT id, user_id, name, description, created_at, updated_at
		FROM item_types
		WHERE user_id = ?
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list item types: %w", err)
	}
	defer rows.Close()

	itemTypes := make([]models.ItemType, 0)
	for rows.Next() {
		itemType, err := scanItemType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item type: %w", err)
		}
		itemTypes = append(itemTypes, *itemType)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating item types: %w", err)
	}

	return itemTypes, nil
}

// FindByID finds an item type by ID
func (r *SQLiteItemTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.ItemType, error) {
	query := `
		SELECT id, user_id, name, description, created_at, updated_at
		FROM item_types
		WHERE id = ?
	`

	itemType, err := scanItemType(r.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrItemTypeNotFound
		}
		return nil, fmt.Errorf("failed to find item type by ID: %w", err)
	}

	return itemType, nil
}

// FindByIDForOwner resolves an item type only when it belongs to the owner
func (r *SQLiteItemTypeRepository) FindByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*models.ItemType, error) {
	query := `
		SELECT id, user_id, name, description, created_at, updated_at
		FROM item_types
		WHERE id = ? AND user_id = ?
	`

	itemType, err := scanItemType(r.db.QueryRowContext(ctx, query, id.String(), ownerID.String()))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrItemTypeNotFound
		}
		return nil, fmt.Errorf("failed to find item type for owner: %w", err)
	}

	return itemType, nil
}

// Create persists a new item type
func (r *SQLiteItemTypeRepository) Create(ctx context.Context, itemType *models.ItemType) error {
	query := `
		INSERT INTO item_types (id, user_id, name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()
	itemType.CreatedAt = now
	itemType.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, query,
		itemType.ID.String(),
		itemType.UserID.String(),
		itemType.Name,
		itemType.Description,
		now.Format(time.RFC3339),
		now.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to create item type: %w", err)
	}

	return nil
}

// Update persists changes to an existing item type
func (r *SQLiteItemTypeRepository) Update(ctx context.Context, itemType *models.ItemType) error {
	query := `
		UPDATE item_types
		SET name = ?, description = ?, updated_at = ?
		WHERE id = ?
	`

	now := time.Now().UTC()
	itemType.UpdatedAt = now

	result, err := r.db.ExecContext(ctx, query,
		itemType.Name,
		itemType.Description,
		now.Format(time.RFC3339),
		itemType.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to update item type: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrItemTypeNotFound
	}

	return nil
}

// Delete removes an item type. The item_type_id foreign key is declared
// ON DELETE SET NULL, so referencing items survive with the reference cleared.
func (r *SQLiteItemTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM item_types WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete item type: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrItemTypeNotFound
	}

	return nil
}

// CountByOwner counts the owner's item types
func (r *SQLiteItemTypeRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM item_types WHERE user_id = ?`, ownerID.String()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count item types: %w", err)
	}
	return count, nil
}

// NameInUse reports whether the owner already has a type with this name
func (r *SQLiteItemTypeRepository) NameInUse(ctx context.Context, ownerID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	query := `SELECT COUNT(*) FROM item_types WHERE user_id = ? AND name = ? AND id != ?`

	var count int
	err := r.db.QueryRowContext(ctx, query, ownerID.String(), name, excludeID.String()).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check item type name: %w", err)
	}
	return count > 0, nil
}
