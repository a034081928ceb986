package db

import (
	"fmt"
)

// createItemsTable holds the idempotent DDL for each supported dialect.
var createItemsTable = map[string]string{
	"postgres": `CREATE TABLE IF NOT EXISTS items (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		created_at TIMESTAMP DEFAULT NOW()
	)`,
	"sqlite": `CREATE TABLE IF NOT EXISTS items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

// EnsureSchema creates the items table if it does not already exist.
// Running it against an existing table is a no-op.
func EnsureSchema(db *DB) error {
	dialect := db.Dialector.Name()
	ddl, ok := createItemsTable[dialect]
	if !ok {
		return fmt.Errorf("unsupported database dialect %q", dialect)
	}

	if err := db.Exec(ddl).Error; err != nil {
		return fmt.Errorf("failed to create items table: %w", err)
	}

	return nil
}
