// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to configure
// SQLite and MySQL connections based on the application's configuration. SQLite
// is the default driver; the product table the Stock Auditor reads lives in a
// single database file next to the inventory snapshot.
//
// # Connect
//
// The generic Connect function establishes a connection to the database. It is
// agnostic to the product table schema; the Schema Inspector is what knows which
// columns the auditor expects.
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema. The audit feature
// and the inventory mirror only communicate through the persisted table, so any
// schema drift must be detected explicitly rather than discovered mid-query.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.HasColumns(db, "productos", []string{"nombre", "stock"})
package database
