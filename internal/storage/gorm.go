package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StateRecord is the kv row the GormMedium maps onto.
type StateRecord struct {
	Key   string `gorm:"primaryKey;type:varchar(255)"`
	Value string `gorm:"type:text;not null"`
}

// GormMedium persists keys into a Postgres kv table through GORM, for
// deployments where the state should survive the host.
type GormMedium struct {
	db *gorm.DB
}

// NewGormMedium connects to Postgres with the given DSN and auto-migrates
// the kv table.
func NewGormMedium(dsn string) (*GormMedium, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&StateRecord{}); err != nil {
		return nil, fmt.Errorf("auto-migrate state table: %w", err)
	}
	return &GormMedium{db: db}, nil
}

func (m *GormMedium) Persist(ctx context.Context, key, value string) error {
	record := StateRecord{Key: key, Value: value}
	err := m.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}

func (m *GormMedium) Retrieve(ctx context.Context, key string) (string, bool, error) {
	var record StateRecord
	err := m.db.WithContext(ctx).First(&record, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return record.Value, true, nil
}

func (m *GormMedium) Clear(ctx context.Context, key string) error {
	if err := m.db.WithContext(ctx).Delete(&StateRecord{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}

func (m *GormMedium) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
