package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrRecordNotFound is returned by Get when no record exists for the id.
var ErrRecordNotFound = errors.New("record not found")

// RecordStore is the generic persistence contract shared by every record
// kind. One collection holds one kind; writes are last-write-wins per id and
// there are no multi-record transactions.
type RecordStore interface {
	List(ctx context.Context, collection string) ([]json.RawMessage, error)
	Get(ctx context.Context, collection, id string) (json.RawMessage, error)
	Upsert(ctx context.Context, collection string, record model.Record) error
	Delete(ctx context.Context, collection, id string) error
}

// gormRecordStore stores records as (collection, id, JSON payload) rows.
type gormRecordStore struct {
	db *gorm.DB
}

// NewGormRecordStore creates a record store backed by a GORM database.
func NewGormRecordStore(db *gorm.DB) RecordStore {
	return &gormRecordStore{db: db}
}

// List returns the payloads of every record in the collection.
func (s *gormRecordStore) List(ctx context.Context, collection string) ([]json.RawMessage, error) {
	var rows []model.RecordRow
	err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", collection, err)
	}

	out := make([]json.RawMessage, 0, len(rows))
	for _, row := range rows {
		out = append(out, json.RawMessage(row.Data))
	}
	return out, nil
}

// Get returns one record's payload, or ErrRecordNotFound.
func (s *gormRecordStore) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	var row model.RecordRow
	err := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s/%s: %w", collection, id, err)
	}
	return json.RawMessage(row.Data), nil
}

// Upsert inserts or replaces the record keyed by record.RecordID().
func (s *gormRecordStore) Upsert(ctx context.Context, collection string, record model.Record) error {
	if record.RecordID() == "" {
		return errors.New("record id is required")
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	now := time.Now()
	row := model.RecordRow{
		Collection: collection,
		ID:         record.RecordID(),
		Data:       data,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "collection"}, {Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to upsert %s/%s: %w", collection, record.RecordID(), err)
	}
	return nil
}

// Delete removes one record; deleting an absent id is not an error.
func (s *gormRecordStore) Delete(ctx context.Context, collection, id string) error {
	err := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		Delete(&model.RecordRow{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", collection, id, err)
	}
	return nil
}
