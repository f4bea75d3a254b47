package localstate

import (
	"errors"
	"time"

	"storefront/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Compile-time check to ensure SQLiteStore implements the LocalState port
var _ output.LocalState = (*SQLiteStore)(nil)

// StateEntry struct - One persisted key-value row.
type StateEntry struct {
	Key       string     `gorm:"primaryKey;type:varchar(64)"`
	Value     string     `gorm:"type:text"`
	UpdatedAt *time.Time `gorm:"type:timestamp"`
}

// TableName func
func (e *StateEntry) TableName() string {
	return "state_entries"
}

// SQLiteStore struct - Output adapter: the durable local mirror of session and
// cart state, the gateway's stand-in for browser localStorage.
type SQLiteStore struct {
	db *gorm.DB
}

// NewSQLiteStore func - Creates the store and migrates its single table.
func NewSQLiteStore(db *gorm.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("nil database handle")
	}
	if err := db.AutoMigrate(&StateEntry{}); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// Get func - Returns (nil, nil) for an absent key.
func (s *SQLiteStore) Get(key string) ([]byte, error) {
	var entry StateEntry
	err := s.db.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return []byte(entry.Value), nil
}

// Set func
func (s *SQLiteStore) Set(key string, value []byte) error {
	now := time.Now()
	entry := StateEntry{Key: key, Value: string(value), UpdatedAt: &now}
	err := s.db.Save(&entry).Error
	if err != nil {
		logrus.Errorln(err)
	}
	return err
}

// Delete func - Idempotent.
func (s *SQLiteStore) Delete(key string) error {
	err := s.db.Delete(&StateEntry{}, "key = ?", key).Error
	if err != nil {
		logrus.Errorln(err)
	}
	return err
}

// EnsureDeviceID returns the stable per-installation identifier, generating
// and persisting a fresh uuid on first call.
func (s *SQLiteStore) EnsureDeviceID() (string, error) {
	value, err := s.Get(output.LocalStateKeyDeviceID)
	if err != nil {
		return "", err
	}
	if len(value) > 0 {
		return string(value), nil
	}

	id, err := uuid.NewRandom() // v4
	if err != nil {
		return "", err
	}
	if err := s.Set(output.LocalStateKeyDeviceID, []byte(id.String())); err != nil {
		return "", err
	}
	logrus.Info("Generated device id: ", id.String())
	return id.String(), nil
}
