// Package localstore is the device-local persisted storage used for the
// auth session and each domain store's last-known collection. Values are
// JSON snapshots keyed by store name in a single SQLite file; the whole
// file is purged on logout or when the backend rejects the session.
package localstore

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type record struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte
	UpdatedAt time.Time
}

func (record) TableName() string { return "local_records" }

type Store struct {
	db *gorm.DB
}

func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Put serializes value as JSON and upserts it under key.
func (s *Store) Put(key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	rec := record{Key: key, Value: payload, UpdatedAt: time.Now().UTC()}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
}

// Get unmarshals the snapshot stored under key into out. The boolean
// reports whether a snapshot existed.
func (s *Store) Get(key string, out any) (bool, error) {
	var rec record
	err := s.db.Where("key = ?", key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(rec.Value, out); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) Delete(key string) error {
	return s.db.Where("key = ?", key).Delete(&record{}).Error
}

// Clear removes every persisted snapshot. Used on logout and on an
// unauthorized response from the backend.
func (s *Store) Clear() error {
	return s.db.Where("1 = 1").Delete(&record{}).Error
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
