package store

import (
	"fmt"

	"zip-league-api/packages/core/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models lists every table owned by the rating store.
func Models() []interface{} {
	return []interface{}{
		&models.Player{},
		&models.Match{},
		&models.PeriodArchive{},
		&models.ArchivedPlayerSnapshot{},
	}
}

// AutoMigrate creates the schema from the models. PostgreSQL deployments use
// the SQL migrations instead.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// OpenSQLite opens an embedded database with the schema in place. The pool is
// limited to one connection, so callers must not use the outer handle while
// a transaction is open.
func OpenSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
