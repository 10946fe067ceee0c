package storage

import (
	"sync"

	"clientbase-backend/internal/config"
	"clientbase-backend/internal/util/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var (
	db   *gorm.DB
	once sync.Once
)

// GetDb returns the shared GORM handle, opening the connection on first use.
func GetDb() *gorm.DB {
	once.Do(connect)
	return db
}

func connect() {
	log := logger.GetLogger()

	logLevel := gorm_logger.Warn
	if config.GetEnv().IsTesting {
		logLevel = gorm_logger.Silent
	}

	conn, err := gorm.Open(postgres.Open(config.GetEnv().DatabaseDsn), &gorm.Config{
		Logger: gorm_logger.Default.LogMode(logLevel),
	})
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		panic(err)
	}

	sqlDb, err := conn.DB()
	if err != nil {
		log.Error("Failed to get database connection", "error", err)
		panic(err)
	}

	sqlDb.SetMaxOpenConns(25)
	sqlDb.SetMaxIdleConns(5)

	db = conn
}
