package config

import (
	"ReportDeskAPI/internal/entity"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitGorm(cfg *AppConfig) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBConnectionString()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed opening connection to postgres: %v", err)
	}

	if cfg.DBMigrate {
		if err := Migrate(db); err != nil {
			log.Fatalf("failed migrating schema: %v", err)
		}
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&entity.User{}, &entity.Report{})
}
