// Package database handles the development backend's database connection and
// schema inspection.
//
// It wraps GORM and supports two drivers: sqlite (the default, a local file or
// ":memory:") and mysql.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns read the live table definition so the
// backend can verify its schema after migrating.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//	missing, err := database.MissingColumns(db, "characters", "id", "name", "image", "votes")
package database
