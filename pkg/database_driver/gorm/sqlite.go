package gorm

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB struct
type DB struct {
	SQLite *gorm.DB
}

// ConnectToSQLite func - Opens the local state database file, creating it on
// first run. Path ":memory:" is accepted for tests.
func ConnectToSQLite(path string) (*DB, error) {
	if path == "" {
		return nil, errors.New("cannot estabished the connection")
	}

	dial := sqlite.Open(path)
	db, err := gorm.Open(dial, &gorm.Config{
		DryRun: false,
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		logrus.Error(err)
		return nil, err
	}

	logrus.Info("Local state database: ", path)
	return &DB{SQLite: db}, nil
}

// DisconnectSQLite func
func DisconnectSQLite(db *gorm.DB) {
	sqlDb, err := db.DB()
	if err != nil {
		panic("close db")
	}
	err = sqlDb.Close()
	if err != nil {
		logrus.Error(err)
	}
	logrus.Println("Local state database closed")
}
