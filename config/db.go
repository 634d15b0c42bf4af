package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN renders the postgres connection string for the delivery journal.
func (db *DB) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		db.HOST, db.USER, db.PASSWORD, db.NAME, db.PORT, db.SSLMODE,
	)
}

func (db *DB) GormConnect() (*gorm.DB, error) {
	return gorm.Open(postgres.Open(db.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}
