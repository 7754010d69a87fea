package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/abelbrown/vanity/internal/config"
	"github.com/abelbrown/vanity/internal/store"
)

// dbPath returns the path to vanity.db, creating the data directory if needed.
func dbPath() string {
	dir := config.DataDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("failed to create data directory: %v", err)
	}
	return filepath.Join(dir, "vanity.db")
}

// openDB opens the store or fatals.
func openDB() *store.Store {
	st, err := store.Open(dbPath())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	return st
}
