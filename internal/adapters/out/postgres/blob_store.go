// Package postgres provides a GORM-based implementation of ports.BlobStore.
// Each blob is one row of the "blobs" table keyed by the blob key; saving
// upserts the whole value.
//
// Usage:
//
//	db, err := postgres.OpenDB(postgres.ConnectionConfig{...})
//	if err != nil {
//	    return err
//	}
//	store := postgres.NewBlobStore(db)
//	if err := store.Migrate(ctx); err != nil {
//	    return err
//	}
//
// The store is a drop-in persistence target for the in-memory Entity
// Store: the collections still live in process memory and are written here
// after every commit.
package postgres

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ ports.BlobStore = (*BlobStore)(nil)

// BlobDTO represents the database structure of a persisted blob.
type BlobDTO struct {
	Key       string `gorm:"primaryKey;type:varchar(128)"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming convention to use "blobs".
func (BlobDTO) TableName() string {
	return "blobs"
}

// BlobStore implements ports.BlobStore using GORM.
type BlobStore struct {
	db *gorm.DB
}

// NewBlobStore creates a blob store over an open GORM connection.
func NewBlobStore(db *gorm.DB) *BlobStore {
	return &BlobStore{db: db}
}

// Migrate creates or updates the blobs table.
func (s *BlobStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&BlobDTO{})
}

// Load retrieves the value under key.
// Returns errs.ErrObjectNotFound when no row has the key.
func (s *BlobStore) Load(ctx context.Context, key string) ([]byte, error) {
	var dto BlobDTO
	if err := s.db.WithContext(ctx).First(&dto, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("blob", key)
		}
		return nil, err
	}
	return []byte(dto.Value), nil
}

// Save inserts the value or overwrites the existing row.
func (s *BlobStore) Save(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errs.NewValueIsRequiredError("blob key")
	}

	dto := BlobDTO{Key: key, Value: string(value)}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&dto).Error
}

// Delete removes the row under key. Deleting an absent key is not an error.
func (s *BlobStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("key = ?", key).Delete(&BlobDTO{}).Error
}
