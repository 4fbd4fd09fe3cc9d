package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Rinde17/stocky/internal/models"
)

// SQLiteItemRepository persists items in SQLite
type SQLiteItemRepository struct {
	db *sql.DB
}

// NewSQLiteItemRepository creates a new SQLite item repository
func NewSQLiteItemRepository(db *sql.DB) ItemRepository {
	return &SQLiteItemRepository{db: db}
}

const itemColumns = `
	i.id, i.user_id, i.item_type_id, i.name, i.quantity, i.unit, i.price_per_unit,
	i.created_at, i.updated_at,
	t.id, t.user_id, t.name, t.description, t.created_at, t.updated_at
`

const itemJoin = `
	FROM items i
	LEFT JOIN item_types t ON t.id = i.item_type_id
`

// scanItem scans one joined items row, including the optional item type.
func scanItem(scanner interface{ Scan(...interface{}) error }) (*models.Item, error) {
	var item models.Item
	var itemTypeID sql.NullString
	var price sql.NullFloat64
	var createdAtStr, updatedAtStr string
	var tID, tUserID, tName, tDescription, tCreatedAt, tUpdatedAt sql.NullString

	err := scanner.Scan(
		&item.ID,
		&item.UserID,
		&itemTypeID,
		&item.Name,
		&item.Quantity,
		&item.Unit,
		&price,
		&createdAtStr,
		&updatedAtStr,
		&tID,
		&tUserID,
		&tName,
		&tDescription,
		&tCreatedAt,
		&tUpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if price.Valid {
		p := price.Float64
		item.PricePerUnit = &p
	}
	if itemTypeID.Valid {
		id, err := uuid.Parse(itemTypeID.String)
		if err != nil {
			return nil, fmt.Errorf("invalid item_type_id: %w", err)
		}
		item.ItemTypeID = &id
	}
	item.CreatedAt = parseTimestamp(createdAtStr)
	item.UpdatedAt = parseTimestamp(updatedAtStr)

	if tID.Valid {
		typeID, err := uuid.Parse(tID.String)
		if err != nil {
			return nil, fmt.Errorf("invalid joined item type id: %w", err)
		}
		typeUserID, err := uuid.Parse(tUserID.String)
		if err != nil {
			return nil, fmt.Errorf("invalid joined item type user id: %w", err)
		}
		item.ItemType = &models.ItemType{
			ID:          typeID,
			UserID:      typeUserID,
			Name:        tName.String,
			Description: tDescription.String,
			CreatedAt:   parseTimestamp(tCreatedAt.String),
			UpdatedAt:   parseTimestamp(tUpdatedAt.String),
		}
	}

	return &item, nil
}

func parseTimestamp(s string) time.Time {
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return ts
}

// ListByOwner returns the owner's items sorted by name ascending
func (r *SQLiteItemRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Item, error) {
	query := `SELECT ` + itemColumns + itemJoin + `WHERE i.user_id = ? ORDER BY i.name ASC`
	return r.queryItems(ctx, query, ownerID.String())
}

// ListLowestStock returns the owner's items with the smallest quantities.
// Ties keep the store's stable rowid order.
func (r *SQLiteItemRepository) ListLowestStock(ctx context.Context, ownerID uuid.UUID, limit int) ([]models.Item, error) {
	query := `SELECT ` + itemColumns + itemJoin + `WHERE i.user_id = ? ORDER BY i.quantity ASC LIMIT ?`
	return r.queryItems(ctx, query, ownerID.String(), limit)
}

// ListRecentlyAdded returns the owner's most recently created items
func (r *SQLiteItemRepository) ListRecentlyAdded(ctx context.Context, ownerID uuid.UUID, limit int) ([]models.Item, error) {
	query := `SELECT ` + itemColumns + itemJoin + `WHERE i.user_id = ? ORDER BY i.created_at DESC LIMIT ?`
	return r.queryItems(ctx, query, ownerID.String(), limit)
}

func (r *SQLiteItemRepository) queryItems(ctx context.Context, query string, args ...interface{}) ([]models.Item, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}

// FindByID finds an item by ID
func (r *SQLiteItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	query := `SELECT ` + itemColumns + itemJoin + `WHERE i.id = ?`

	item, err := scanItem(r.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to find item by ID: %w", err)
	}

	return item, nil
}

// Create persists a new item
func (r *SQLiteItemRepository) Create(ctx context.Context, item *models.Item) error {
	query := `
		INSERT INTO items (id, user_id, item_type_id, name, quantity, unit, price_per_unit, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, query,
		item.ID.String(),
		item.UserID.String(),
		itemTypeIDValue(item),
		item.Name,
		item.Quantity,
		item.Unit,
		priceValue(item),
		now.Format(time.RFC3339),
		now.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}

	return nil
}

// Update persists changes to an existing item
func (r *SQLiteItemRepository) Update(ctx context.Context, item *models.Item) error {
	query := `
		UPDATE items
		SET name = ?, quantity = ?, unit = ?, price_per_unit = ?, item_type_id = ?, updated_at = ?
		WHERE id = ?
	`

	now := time.Now().UTC()
	item.UpdatedAt = now

	result, err := r.db.ExecContext(ctx, query,
		item.Name,
		item.Quantity,
		item.Unit,
		priceValue(item),
		itemTypeIDValue(item),
		now.Format(time.RFC3339),
		item.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// Delete removes an item permanently
func (r *SQLiteItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// CountByOwner counts the owner's item rows
func (r *SQLiteItemRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	return r.countQuery(ctx, `SELECT COUNT(*) FROM items WHERE user_id = ?`, ownerID.String())
}

// CountDistinctNames counts the owner's distinct item names (case-sensitive)
func (r *SQLiteItemRepository) CountDistinctNames(ctx context.Context, ownerID uuid.UUID) (int, error) {
	return r.countQuery(ctx, `SELECT COUNT(DISTINCT name) FROM items WHERE user_id = ?`, ownerID.String())
}

// SumQuantity sums the quantity of all the owner's items (0 when none)
func (r *SQLiteItemRepository) SumQuantity(ctx context.Context, ownerID uuid.UUID) (int, error) {
	return r.countQuery(ctx, `SELECT COALESCE(SUM(quantity), 0) FROM items WHERE user_id = ?`, ownerID.String())
}

// CountLowStock counts items where 0 < quantity <= threshold. With the
// default threshold of 0 the count is always 0.
func (r *SQLiteItemRepository) CountLowStock(ctx context.Context, ownerID uuid.UUID, threshold int) (int, error) {
	return r.countQuery(ctx,
		`SELECT COUNT(*) FROM items WHERE user_id = ? AND quantity > 0 AND quantity <= ?`,
		ownerID.String(), threshold)
}

// CountOutOfStock counts items with quantity 0
func (r *SQLiteItemRepository) CountOutOfStock(ctx context.Context, ownerID uuid.UUID) (int, error) {
	return r.countQuery(ctx, `SELECT COUNT(*) FROM items WHERE user_id = ? AND quantity = 0`, ownerID.String())
}

func (r *SQLiteItemRepository) countQuery(ctx context.Context, query string, args ...interface{}) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return count, nil
}

// TotalValue sums quantity * price_per_unit over the owner's items. Items
// without a price contribute 0.
func (r *SQLiteItemRepository) TotalValue(ctx context.Context, ownerID uuid.UUID) (float64, error) {
	query := `SELECT COALESCE(SUM(quantity * price_per_unit), 0) FROM items WHERE user_id = ?`

	var total float64
	if err := r.db.QueryRowContext(ctx, query, ownerID.String()).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum inventory value: %w", err)
	}
	return total, nil
}

func itemTypeIDValue(item *models.Item) interface{} {
	if item.ItemTypeID == nil {
		return nil
	}
	return item.ItemTypeID.String()
}

func priceValue(item *models.Item) interface{} {
	if item.PricePerUnit == nil {
		return nil
	}
	return *item.PricePerUnit
}
