package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// Open opens the SQLite database and initializes the schema.
// WAL mode for read concurrency, foreign keys on so that deleting an item
// type nulls out item references instead of cascading.
func Open(path string, logger *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=1&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1) // single writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Info("SQLite database initialized", zap.String("path", path))
	return db, nil
}

// initSchema creates the database schema
func initSchema(db *sql.DB) error {
	schema := `
	-- Users table: account identities owning inventory
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		is_admin INTEGER NOT NULL DEFAULT 0,
		low_stock_threshold INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		CHECK(is_admin IN (0, 1)),
		CHECK(low_stock_threshold >= 0)
	);

	-- Item types table: per-user categories, names unique per owner only
	CREATE TABLE IF NOT EXISTS item_types (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
		UNIQUE(user_id, name)
	);

	-- Items table: stock units. Deleting an item type must never delete its
	-- items, only clear their reference (ON DELETE SET NULL).
	CREATE TABLE IF NOT EXISTS items (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		item_type_id TEXT,
		name TEXT NOT NULL,
		quantity INTEGER NOT NULL DEFAULT 0,
		unit TEXT NOT NULL DEFAULT '',
		price_per_unit REAL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
		FOREIGN KEY (item_type_id) REFERENCES item_types(id) ON DELETE SET NULL,
		CHECK(quantity >= 0),
		CHECK(price_per_unit IS NULL OR price_per_unit >= 0)
	);

	-- Indexes for the per-owner queries and dashboard aggregates
	CREATE INDEX IF NOT EXISTS idx_items_user_id ON items(user_id);
	CREATE INDEX IF NOT EXISTS idx_items_user_name ON items(user_id, name);
	CREATE INDEX IF NOT EXISTS idx_items_user_quantity ON items(user_id, quantity);
	CREATE INDEX IF NOT EXISTS idx_items_user_created ON items(user_id, created_at);
	CREATE INDEX IF NOT EXISTS idx_items_item_type_id ON items(item_type_id);
	CREATE INDEX IF NOT EXISTS idx_item_types_user_id ON item_types(user_id);
	CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);
	`

	_, err := db.Exec(schema)
	return err
}
