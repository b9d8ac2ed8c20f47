// Package database handles CRM database connections.
//
// It wraps GORM to configure the connection where imported leads and their
// companies are persisted. MySQL is the production driver; SQLite is
// supported for local runs and tests (the in-memory DSN used across the test
// suite goes through the same Connect path as production).
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
