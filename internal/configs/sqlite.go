package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "servicehub.com/servicehub/internal/models"
)

func NewDatabase(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Subscription{},
		&model.Task{},
		&model.Response{},
		&model.Review{},
		&model.Notification{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
