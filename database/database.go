package database

import (
	"gorm.io/gorm"
)

var DB *gorm.DB

// GetDB returns the audit database, nil when none is configured.
func GetDB() *gorm.DB {
	return DB
}
