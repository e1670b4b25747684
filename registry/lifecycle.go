/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"context"

	"github.com/suparena/modelregistry/errors"
)

// EnsureExists checks whether the storage location exists and creates it if
// absent. Idempotent: two callers may both observe the location missing and
// both attempt creation; the store treats the losing creation as success.
//
// Write operations call this before touching the store, so a write never
// runs against a location known to be missing.
func (r *Registry) EnsureExists(ctx context.Context) error {
	exists, err := r.store.LocationExists(ctx)
	if err != nil {
		return errors.NewInfrastructureError("check storage location", err)
	}
	if exists {
		return nil
	}
	return r.CreateUnconditionally(ctx)
}

// CreateUnconditionally creates the storage location outright. Read and
// delete operations use it to repair a location reported missing mid-flight.
// Any creation failure is fatal; the store already swallows the benign
// already-exists race.
func (r *Registry) CreateUnconditionally(ctx context.Context) error {
	r.log.Warn("creating entity model storage location")
	if err := r.store.CreateLocation(ctx); err != nil {
		return errors.NewInfrastructureError("create storage location", err)
	}
	return nil
}
