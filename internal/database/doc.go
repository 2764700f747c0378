// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations
//	└── entries/         # Key-value entries (catalog persistence)
//
// User rows are managed directly by internal/auth through the gorm handle.
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./bookhaven.db")
//
//	// Create domain-specific repositories
//	entriesRepo := entries.NewRepository(db.DB)
//
//	// Use repositories
//	entry, err := entriesRepo.Get("bookhaven-books")
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Implement the required interface
//  5. Add compile-time interface check: var _ SomeInterface = (*Repository)(nil)
package database
