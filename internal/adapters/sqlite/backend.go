// Package sqlite implements catalog and order storage on SQLite, using
// the pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Backend owns the database handle shared by the catalog and order stores.
type Backend struct {
	db *sql.DB
}

// Open creates the data directory if needed, opens (or creates) the
// database file, and ensures the schema exists.
func Open(dataDir string) (*Backend, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("ensure data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "showroom.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return &Backend{db: db}, nil
}

// Catalog returns the catalog store view of the backend.
func (b *Backend) Catalog() *CatalogStore {
	return &CatalogStore{db: b.db}
}

// Orders returns the order store view of the backend.
func (b *Backend) Orders() *OrderStore {
	return &OrderStore{db: b.db}
}

// Close closes the database.
func (b *Backend) Close() error {
	return b.db.Close()
}
