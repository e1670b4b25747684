/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of the ModelStore
// interface for testing
package mock

import (
	"context"
	"sort"
	"sync"

	"github.com/suparena/modelregistry/errors"
	"github.com/suparena/modelregistry/schema"
	"github.com/suparena/modelregistry/storagemodels"
)

// ModelStore is an in-memory implementation of datastore.ModelStore for
// testing. It models the storage location lifecycle: a fresh ModelStore has
// no location, and DropLocation simulates the location being deleted
// out-of-band.
type ModelStore struct {
	mu             sync.RWMutex
	records        map[string]storagemodels.ModelRecord
	locationExists bool

	existsErr error
	createErr error
	getErr    error
	searchErr error
	indexErr  error
	deleteErr error

	createCalls int
}

// New creates a new mock ModelStore with no storage location.
func New() *ModelStore {
	return &ModelStore{
		records: make(map[string]storagemodels.ModelRecord),
	}
}

// WithLocation marks the storage location as already existing.
func (m *ModelStore) WithLocation() *ModelStore {
	m.locationExists = true
	return m
}

// WithExistsError makes LocationExists return an error
func (m *ModelStore) WithExistsError(err error) *ModelStore {
	m.existsErr = err
	return m
}

// WithCreateError makes CreateLocation return an error
func (m *ModelStore) WithCreateError(err error) *ModelStore {
	m.createErr = err
	return m
}

// WithGetError makes GetModel return an error
func (m *ModelStore) WithGetError(err error) *ModelStore {
	m.getErr = err
	return m
}

// WithSearchError makes SearchModels return an error
func (m *ModelStore) WithSearchError(err error) *ModelStore {
	m.searchErr = err
	return m
}

// WithIndexError makes IndexModel return an error
func (m *ModelStore) WithIndexError(err error) *ModelStore {
	m.indexErr = err
	return m
}

// WithDeleteError makes DeleteModel return an error
func (m *ModelStore) WithDeleteError(err error) *ModelStore {
	m.deleteErr = err
	return m
}

// LocationExists reports whether the storage location exists.
func (m *ModelStore) LocationExists(ctx context.Context) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.locationExists, nil
}

// CreateLocation creates the storage location. Creating an existing location
// is benign, matching the real store's tolerance of a creation race.
func (m *ModelStore) CreateLocation(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.createCalls++
	if m.createErr != nil {
		return m.createErr
	}
	if !m.locationExists {
		m.locationExists = true
		m.records = make(map[string]storagemodels.ModelRecord)
	}
	return nil
}

// GetModel retrieves a record by entity type.
func (m *ModelStore) GetModel(ctx context.Context, entityType string) (*storagemodels.ModelRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.locationExists {
		return nil, errors.NewLocationNotFoundError(schema.LocationName)
	}
	record, ok := m.records[entityType]
	if !ok {
		return nil, errors.NewNotFoundError(entityType)
	}
	return &record, nil
}

// SearchModels returns every stored record, ordered by entity type.
func (m *ModelStore) SearchModels(ctx context.Context) ([]storagemodels.ModelRecord, error) {
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.locationExists {
		return nil, errors.NewLocationNotFoundError(schema.LocationName)
	}
	records := make([]storagemodels.ModelRecord, 0, len(m.records))
	for _, record := range m.records {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].EntityType < records[j].EntityType
	})
	return records, nil
}

// IndexModel stores a record, rejecting duplicates when createOnly is set.
func (m *ModelStore) IndexModel(ctx context.Context, record storagemodels.ModelRecord, createOnly bool) error {
	if m.indexErr != nil {
		return m.indexErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.locationExists {
		return errors.NewLocationNotFoundError(schema.LocationName)
	}
	if createOnly {
		if _, exists := m.records[record.EntityType]; exists {
			return errors.NewAlreadyExistsError(record.EntityType)
		}
	}
	m.records[record.EntityType] = record
	return nil
}

// DeleteModel removes a record by entity type, reporting whether it existed.
func (m *ModelStore) DeleteModel(ctx context.Context, entityType string) (bool, error) {
	if m.deleteErr != nil {
		return false, m.deleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.locationExists {
		return false, errors.NewLocationNotFoundError(schema.LocationName)
	}
	if _, exists := m.records[entityType]; !exists {
		return false, nil
	}
	delete(m.records, entityType)
	return true, nil
}

// Helper methods for testing

// DropLocation simulates the storage location being deleted out-of-band,
// discarding all records.
func (m *ModelStore) DropLocation() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locationExists = false
	m.records = make(map[string]storagemodels.ModelRecord)
}

// Seed stores a record directly, creating the location if needed (for testing)
func (m *ModelStore) Seed(record storagemodels.ModelRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.locationExists {
		m.locationExists = true
		m.records = make(map[string]storagemodels.ModelRecord)
	}
	m.records[record.EntityType] = record
}

// CreateCalls returns how many times CreateLocation has been invoked
func (m *ModelStore) CreateCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.createCalls
}

// Count returns the number of stored records
func (m *ModelStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// Clear removes all records without touching the location
func (m *ModelStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = make(map[string]storagemodels.ModelRecord)
}
