// Package sqlite opens the local GORM SQLite database that backs bindings
// and the lottery draw log. Table models and CRUD live in the repo packages.
package sqlite

import (
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open opens (creating parent directories if needed) the SQLite DB at
// dbPath. Callers own AutoMigrate and all CRUD.
func Open(dbPath string) (*gorm.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}
