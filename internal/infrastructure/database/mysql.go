package database

import (
	"log"
	"time"

	"github.com/Sanzzyy/management-finasial/internal/model"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewMySQLConnection(dsn string) *gorm.DB {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("Fatal: cannot connect to database: %v", err)
	}

	// Auto migrate keeps the schema in sync with the entity structs,
	// including the unique (user_id, category) index on budgets.
	if err := db.AutoMigrate(
		&model.User{},
		&model.Transaction{},
		&model.Budget{},
		&model.Goal{},
		&model.Schedule{},
	); err != nil {
		log.Fatalf("Fatal: database migration failed: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db
}
