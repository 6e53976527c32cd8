package config

import (
	"fmt"
	"log"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the postgres connection from DB_* environment variables and
// configures the pool.
func InitDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "hospital_billing"),
		getEnv("DB_SSLMODE", "disable"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to access database pool: %v", err)
	}
	if maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "20")); err == nil && maxConns > 0 {
		sqlDB.SetMaxOpenConns(maxConns)
	}
	if maxIdle, err := strconv.Atoi(getEnv("DB_MAX_IDLE", "5")); err == nil && maxIdle > 0 {
		sqlDB.SetMaxIdleConns(maxIdle)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	return db
}
