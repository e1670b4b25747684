/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/modelregistry/datastore"
	"github.com/suparena/modelregistry/errors"
	"github.com/suparena/modelregistry/model"
	"github.com/suparena/modelregistry/storagemodels"
)

// Registry exposes the entity model operations over a ModelStore. It holds
// no document state between calls; the store is the sole source of truth.
//
// Reads and deletes repair a missing storage location reactively: on a
// location-not-found report they recreate the location and retry exactly
// once. Writes repair proactively via EnsureExists before writing. A second
// consecutive location-not-found after a repair is a fatal infrastructure
// error, never retried further.
type Registry struct {
	store datastore.ModelStore
	log   *slog.Logger
	now   func() time.Time
}

// New creates a Registry over the given store. A nil logger falls back to
// slog.Default.
func New(store datastore.ModelStore, log *slog.Logger) *Registry {
	if log == nil {
		log = slog.Default()
	}
	return &Registry{
		store: store,
		log:   log,
		now:   time.Now,
	}
}

// ListAll fetches every entity model in the storage location.
func (r *Registry) ListAll(ctx context.Context) (*storagemodels.ListResult, error) {
	records, err := r.store.SearchModels(ctx)
	if errors.IsLocationNotFound(err) {
		r.log.Warn("storage location missing during list, repairing")
		if healErr := r.CreateUnconditionally(ctx); healErr != nil {
			return nil, healErr
		}
		records, err = r.store.SearchModels(ctx)
	}
	if err != nil {
		if errors.IsLocationNotFound(err) {
			return nil, errors.NewInfrastructureError("list models after repair", err)
		}
		return nil, err
	}

	return &storagemodels.ListResult{
		Total:  len(records),
		Models: records,
	}, nil
}

// GetOne fetches the entity model for one entity type. A missing document is
// an error matching errors.ErrNotFound, distinct from a missing storage
// location, which is repaired transparently.
func (r *Registry) GetOne(ctx context.Context, entityType string) (*storagemodels.ModelRecord, error) {
	record, err := r.store.GetModel(ctx, entityType)
	if errors.IsLocationNotFound(err) {
		r.log.Warn("storage location missing during get, repairing", "entity_type", entityType)
		if healErr := r.CreateUnconditionally(ctx); healErr != nil {
			return nil, healErr
		}
		record, err = r.store.GetModel(ctx, entityType)
	}
	if err != nil {
		if errors.IsLocationNotFound(err) {
			return nil, errors.NewInfrastructureError("get model after repair", err)
		}
		return nil, err
	}
	return record, nil
}

// Create stores a new entity model. The model must already have passed
// validation. Create-only semantics: if a model for the entity type exists
// the write fails with an error matching errors.ErrAlreadyExists and the
// stored document is left untouched. On return the write is visible to
// subsequent reads.
func (r *Registry) Create(ctx context.Context, entityType string, m *model.Model) (*storagemodels.WriteResult, error) {
	if m == nil {
		return nil, errors.NewValidationError("", "model is required")
	}
	if err := r.EnsureExists(ctx); err != nil {
		return nil, err
	}

	now := strfmt.DateTime(r.now().UTC())
	if err := r.store.IndexModel(ctx, r.record(entityType, m, now), true); err != nil {
		return nil, err
	}

	r.log.Info("entity model created", "entity_type", entityType)
	return &storagemodels.WriteResult{
		EntityType: entityType,
		Result:     storagemodels.ResultCreated,
		Timestamp:  now,
	}, nil
}

// Update replaces the entity model for one entity type, creating it if
// absent. No partial updates: the stored document becomes exactly the given
// model. On return the write is visible to subsequent reads.
func (r *Registry) Update(ctx context.Context, entityType string, m *model.Model) (*storagemodels.WriteResult, error) {
	if m == nil {
		return nil, errors.NewValidationError("", "model is required")
	}
	if err := r.EnsureExists(ctx); err != nil {
		return nil, err
	}

	now := strfmt.DateTime(r.now().UTC())
	if err := r.store.IndexModel(ctx, r.record(entityType, m, now), false); err != nil {
		return nil, err
	}

	r.log.Info("entity model updated", "entity_type", entityType)
	return &storagemodels.WriteResult{
		EntityType: entityType,
		Result:     storagemodels.ResultUpdated,
		Timestamp:  now,
	}, nil
}

// Delete removes the entity model for one entity type. Deleting a model that
// does not exist is a terminal not-found outcome, not an error. On return
// the delete is visible to subsequent reads.
func (r *Registry) Delete(ctx context.Context, entityType string) (*storagemodels.DeleteResult, error) {
	deleted, err := r.store.DeleteModel(ctx, entityType)
	if errors.IsLocationNotFound(err) {
		r.log.Warn("storage location missing during delete, repairing", "entity_type", entityType)
		if healErr := r.CreateUnconditionally(ctx); healErr != nil {
			return nil, healErr
		}
		deleted, err = r.store.DeleteModel(ctx, entityType)
	}
	if err != nil {
		if errors.IsLocationNotFound(err) {
			return nil, errors.NewInfrastructureError("delete model after repair", err)
		}
		return nil, err
	}

	result := storagemodels.ResultNotFound
	if deleted {
		result = storagemodels.ResultDeleted
		r.log.Info("entity model deleted", "entity_type", entityType)
	}
	return &storagemodels.DeleteResult{
		EntityType: entityType,
		Result:     result,
	}, nil
}

func (r *Registry) record(entityType string, m *model.Model, now strfmt.DateTime) storagemodels.ModelRecord {
	return storagemodels.ModelRecord{
		EntityType: entityType,
		Attributes: m.Attributes,
		Resolvers:  m.Resolvers,
		Matchers:   m.Matchers,
		Indices:    m.Indices,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
