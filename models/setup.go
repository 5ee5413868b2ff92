package models

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDataBase Open the configured database and migrate the schema.
// Sqlite is the default; mysql can be selected for shared deployments.
func ConnectDataBase(driver string, dsn string) {
	var err error

	switch driver {
	case "sqlite", "":
		DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	case "mysql":
		DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	default:
		log.Fatal(fmt.Sprintf("Unknown database driver %s", driver))
	}

	if err != nil {
		log.Fatal(fmt.Sprintf("Cannot connect %s database at %s: %v", driver, dsn, err))
	}
	log.Info(fmt.Sprintf("Connecting %s database at %s", driver, dsn))

	DB.AutoMigrate(&Image{})
	DB.AutoMigrate(&Annotation{})
	DB.AutoMigrate(&Classification{})
}
