// Package postgres contains the GORM implementation of the persistence layer.
package postgres

import (
	"context"

	domainerrors "fieldops/internal/domain/errors"
	"fieldops/internal/domain/service"
	"fieldops/internal/errors"
	"fieldops/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type kvStore struct {
	db        *gorm.DB
	namespace string
}

// NewKVStore creates the kv_entries table when missing and returns a store
// that prefixes every key with namespace.
func NewKVStore(db *gorm.DB, namespace string) (service.KVStore, error) {
	if err := db.AutoMigrate(&model.KVEntryModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate kv_entries")
	}

	return &kvStore{db: db, namespace: namespace}, nil
}

func (s *kvStore) key(key string) string {
	if s.namespace == "" {
		return key
	}

	return s.namespace + ":" + key
}

func (s *kvStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry model.KVEntryModel
	err := s.db.WithContext(ctx).
		Where("key = ?", s.key(key)).
		Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, domainerrors.NewStoreError(err, "failed to get "+key)
	}

	return entry.Value, true, nil
}

func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	entry := &model.KVEntryModel{Key: s.key(key), Value: value}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(entry).Error
	if err != nil {
		return domainerrors.NewStoreError(err, "failed to set "+key)
	}

	return nil
}

func (s *kvStore) Clear(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).
		Where("key = ?", s.key(key)).
		Delete(&model.KVEntryModel{}).Error
	if err != nil {
		return domainerrors.NewStoreError(err, "failed to clear "+key)
	}

	return nil
}
