// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure MySQL connections (sqlite for tests) from the
// application's configuration, with pool tuning and a ping-on-connect.
//
// # Connect
//
// The Connect function establishes a connection based on the configured
// driver. Connection, read and write timeouts are encoded into the MySQL DSN.
//
// # Schema Inspection
//
// The package includes tools to inspect the live schema, used by the doctor
// command to verify the menu tables (restaurants, categories, dishes) match
// the migrated models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "categories")
package database
