/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestSections(t *testing.T) {
	want := []string{"attributes", "resolvers", "matchers", "indices"}
	got := Sections()

	if len(got) != len(want) {
		t.Fatalf("Expected %d sections, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i] != name {
			t.Errorf("Expected section %d to be %q, got %q", i, name, got[i])
		}
	}

	for _, name := range want {
		if !IsSection(name) {
			t.Errorf("IsSection(%q) should be true", name)
		}
	}
	if IsSection("EntityType") {
		t.Error("IsSection should reject the key attribute")
	}
	if IsSection("mappings") {
		t.Error("IsSection should reject unknown names")
	}
}

func TestKeySchema(t *testing.T) {
	ks := KeySchema()
	if len(ks) != 1 {
		t.Fatalf("Expected a single key element, got %d", len(ks))
	}
	if *ks[0].AttributeName != KeyAttribute {
		t.Errorf("Expected key attribute %q, got %q", KeyAttribute, *ks[0].AttributeName)
	}
	if ks[0].KeyType != types.KeyTypeHash {
		t.Errorf("Expected hash key, got %v", ks[0].KeyType)
	}

	defs := AttributeDefinitions()
	if len(defs) != 1 {
		t.Fatalf("Expected a single attribute definition, got %d", len(defs))
	}
	if *defs[0].AttributeName != KeyAttribute {
		t.Errorf("Expected defined attribute %q, got %q", KeyAttribute, *defs[0].AttributeName)
	}
}

func TestProvisionedThroughput(t *testing.T) {
	pt := ProvisionedThroughput()
	if *pt.ReadCapacityUnits != ReadCapacityUnits {
		t.Errorf("Expected %d read units, got %d", ReadCapacityUnits, *pt.ReadCapacityUnits)
	}
	if *pt.WriteCapacityUnits != WriteCapacityUnits {
		t.Errorf("Expected %d write units, got %d", WriteCapacityUnits, *pt.WriteCapacityUnits)
	}
}
