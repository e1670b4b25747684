/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// LocationName is the name of the single table holding all entity models.
const LocationName = "entity-models"

// KeyAttribute is the partition key attribute. One item per entity type.
const KeyAttribute = "EntityType"

// The four sections of an entity model document. Each is stored as a plain
// map attribute: values are persisted verbatim but never indexed, since only
// KeyAttribute participates in the key schema.
const (
	SectionAttributes = "attributes"
	SectionResolvers  = "resolvers"
	SectionMatchers   = "matchers"
	SectionIndices    = "indices"
)

// Fixed capacity for the model table. Model documents are small and rarely
// written, so the location is created once with minimal throughput and never
// migrated.
const (
	ReadCapacityUnits  int64 = 1
	WriteCapacityUnits int64 = 1
)

// Sections returns the section names of a model document in canonical order.
func Sections() []string {
	return []string{SectionAttributes, SectionResolvers, SectionMatchers, SectionIndices}
}

// IsSection reports whether name is one of the four model document sections.
func IsSection(name string) bool {
	switch name {
	case SectionAttributes, SectionResolvers, SectionMatchers, SectionIndices:
		return true
	}
	return false
}

// AttributeDefinitions returns the attribute definitions for the model table.
// Only the key attribute is declared; section attributes carry arbitrary
// shapes and stay outside the key schema.
func AttributeDefinitions() []types.AttributeDefinition {
	return []types.AttributeDefinition{
		{
			AttributeName: aws.String(KeyAttribute),
			AttributeType: types.ScalarAttributeTypeS,
		},
	}
}

// KeySchema returns the key schema for the model table.
func KeySchema() []types.KeySchemaElement {
	return []types.KeySchemaElement{
		{
			AttributeName: aws.String(KeyAttribute),
			KeyType:       types.KeyTypeHash,
		},
	}
}

// ProvisionedThroughput returns the fixed throughput the model table is
// created with.
func ProvisionedThroughput() *types.ProvisionedThroughput {
	return &types.ProvisionedThroughput{
		ReadCapacityUnits:  aws.Int64(ReadCapacityUnits),
		WriteCapacityUnits: aws.Int64(WriteCapacityUnits),
	}
}
