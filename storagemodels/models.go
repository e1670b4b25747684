/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/go-openapi/strfmt"
)

// Write results, mirrored in the HTTP response bodies.
const (
	ResultCreated  = "created"
	ResultUpdated  = "updated"
	ResultDeleted  = "deleted"
	ResultNotFound = "not_found"
)

// ModelRecord is one entity model as persisted in the storage location:
// the entity type key, the four opaque document sections, and the envelope
// timestamps stamped at write time.
//
// The sections are decoded JSON objects. Their internal shape is whatever
// passed validation; the store never inspects it.
type ModelRecord struct {
	// EntityType is the unique key naming this model.
	EntityType string `json:"entityType" dynamodbav:"EntityType"`

	// The four model document sections.
	Attributes map[string]interface{} `json:"attributes" dynamodbav:"attributes"`
	Resolvers  map[string]interface{} `json:"resolvers" dynamodbav:"resolvers"`
	Matchers   map[string]interface{} `json:"matchers" dynamodbav:"matchers"`
	Indices    map[string]interface{} `json:"indices" dynamodbav:"indices"`

	// CreatedAt is the timestamp of the write that produced this record.
	// Format: date-time
	CreatedAt strfmt.DateTime `json:"createdAt" dynamodbav:"CreatedAt"`

	// UpdatedAt is the timestamp of the last write to this record.
	// Format: date-time
	UpdatedAt strfmt.DateTime `json:"updatedAt" dynamodbav:"UpdatedAt"`
}

// WriteResult acknowledges a successful create or update. By the time a
// WriteResult is returned the write is visible to readers.
type WriteResult struct {
	EntityType string          `json:"entityType"`
	Result     string          `json:"result"`
	Timestamp  strfmt.DateTime `json:"timestamp"`
}

// DeleteResult acknowledges a delete. Result is ResultNotFound when no
// document existed for the entity type; that is a terminal outcome, not an
// error.
type DeleteResult struct {
	EntityType string `json:"entityType"`
	Result     string `json:"result"`
}

// ListResult holds every model in the storage location.
type ListResult struct {
	Total  int           `json:"total"`
	Models []ModelRecord `json:"models"`
}
