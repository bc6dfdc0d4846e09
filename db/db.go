package db

import (
	"tourserver/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the store configured in the environment: MySQL when MYSQL_DSN
// is set, otherwise the single SQLite file. The returned handle is shared by
// all request handlers for the life of the process.
func Connect() (*gorm.DB, error) {
	cfg := &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}
	if config.MYSQL_DSN != "" {
		return gorm.Open(mysql.Open(config.MYSQL_DSN), cfg)
	}
	return gorm.Open(sqlite.Open(config.SQLITE_FILE), cfg)
}
