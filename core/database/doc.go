// Package database handles the optional load history database connection and
// schema inspection.
//
// It wraps GORM to configure MySQL or SQLite connections from the application's
// configuration. The garden service runs without a database; when one is
// configured, model load outcomes are persisted through the history package.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns back the integrity check, which verifies
// that the history table carries the columns the service writes.
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "garden_load_events", []string{"id", "model"})
package database
