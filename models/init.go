package models

import (
	"gorm.io/gorm"
)

// Init creates or updates the schema for all entities.
func Init(dbc *gorm.DB) error {
	return dbc.AutoMigrate(
		&Settings{},
		&City{},
		&Place{},
		&Hotel{},
		&Review{},
	)
}
