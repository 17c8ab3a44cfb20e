package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/model"
)

// MemoryRecordStore is an in-memory RecordStore used by tests and local
// experiments. Insertion order is preserved per collection, matching the
// GORM store's created_at ordering.
type MemoryRecordStore struct {
	mu    sync.RWMutex
	data  map[string]map[string][]byte // collection -> id -> payload
	order map[string][]string          // collection -> ids in insertion order
}

// NewMemoryRecordStore creates an empty in-memory record store.
func NewMemoryRecordStore() *MemoryRecordStore {
	return &MemoryRecordStore{
		data:  make(map[string]map[string][]byte),
		order: make(map[string][]string),
	}
}

// List implements RecordStore
func (s *MemoryRecordStore) List(ctx context.Context, collection string) ([]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.order[collection]
	out := make([]json.RawMessage, 0, len(ids))
	for _, id := range ids {
		if payload, ok := s.data[collection][id]; ok {
			out = append(out, json.RawMessage(payload))
		}
	}
	return out, nil
}

// Get implements RecordStore
func (s *MemoryRecordStore) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payload, ok := s.data[collection][id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return json.RawMessage(payload), nil
}

// Upsert implements RecordStore
func (s *MemoryRecordStore) Upsert(ctx context.Context, collection string, record model.Record) error {
	id := record.RecordID()
	if id == "" {
		return fmt.Errorf("record id is required")
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data[collection] == nil {
		s.data[collection] = make(map[string][]byte)
	}
	if _, exists := s.data[collection][id]; !exists {
		s.order[collection] = append(s.order[collection], id)
	}
	s.data[collection][id] = payload
	return nil
}

// Delete implements RecordStore
func (s *MemoryRecordStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data[collection] != nil {
		delete(s.data[collection], id)
	}
	ids := s.order[collection]
	for i, existing := range ids {
		if existing == id {
			s.order[collection] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}
