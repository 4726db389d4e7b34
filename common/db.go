package common

import (
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func ConnectDb() *gorm.DB {
	dbFile := os.Getenv("sqlite_db")
	if dbFile == "" {
		log.Println("sqlite_db not set")
		return nil
	}

	db, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Println("Error opening sqlite db: " + err.Error())
		return nil
	}
	log.Println("opened sqlite db at:", dbFile)
	return db
}

// ConnectAnalyticsDb opens the separate analytics database, if configured.
func ConnectAnalyticsDb() *gorm.DB {
	analyticsDbFile := os.Getenv("analytics_db")
	if analyticsDbFile == "" {
		log.Println("analytics_db not set - analytics will be disabled")
		return nil
	}

	db, err := gorm.Open(sqlite.Open(analyticsDbFile), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Println("Error opening analytics sqlite db: " + err.Error())
		return nil
	}

	log.Println("opened analytics sqlite db at:", analyticsDbFile)
	return db
}
