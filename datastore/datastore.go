/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/modelregistry/storagemodels"
)

// MaxModelCount is the upper bound on models returned by SearchModels.
// Registries needing more than this must use a different mechanism.
const MaxModelCount = 10000

// ModelStore is the contract between the registry and a backing document
// store. One storage location holds one document per entity type.
//
// Every document-level operation (GetModel, SearchModels, IndexModel,
// DeleteModel) must report a missing storage location as an error matching
// errors.ErrLocationNotFound, distinguished from all other failures; the
// registry relies on that distinction to repair the location. A missing
// document is never reported as a location error.
type ModelStore interface {
	// LocationExists reports whether the storage location exists.
	LocationExists(ctx context.Context) (bool, error)

	// CreateLocation creates the storage location with the fixed schema.
	// Creation racing another creator must succeed: an already-exists
	// outcome is not an error.
	CreateLocation(ctx context.Context) error

	// GetModel fetches the document for one entity type. A missing document
	// is an error matching errors.ErrNotFound.
	GetModel(ctx context.Context, entityType string) (*storagemodels.ModelRecord, error)

	// SearchModels fetches every document in the storage location, up to
	// MaxModelCount.
	SearchModels(ctx context.Context) ([]storagemodels.ModelRecord, error)

	// IndexModel writes a document. With createOnly set the write fails
	// with an error matching errors.ErrAlreadyExists if a document for the
	// same entity type is present; otherwise it replaces any existing
	// document. On return the write is visible to subsequent reads.
	IndexModel(ctx context.Context, record storagemodels.ModelRecord, createOnly bool) error

	// DeleteModel removes the document for one entity type. It returns
	// false without error when no document existed. On return the delete
	// is visible to subsequent reads.
	DeleteModel(ctx context.Context, entityType string) (bool, error)
}
