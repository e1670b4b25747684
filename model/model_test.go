/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/modelregistry/errors"
)

const validBody = `{
	"attributes": {"name": {"type": "string"}},
	"resolvers": {"name_only": {"attributes": ["name"]}},
	"matchers": {"exact": {"clause": {"term": {"{{ field }}": "{{ value }}"}}}},
	"indices": {"people": {"fields": {"name": {"exact": "name.keyword"}}}}
}`

func TestNewValidBody(t *testing.T) {
	m, err := New(validBody)
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Contains(t, m.Attributes, "name")
	assert.Contains(t, m.Resolvers, "name_only")
	assert.Contains(t, m.Matchers, "exact")
	assert.Contains(t, m.Indices, "people")
}

func TestNewEmptySections(t *testing.T) {
	// Empty section objects are valid; the registry does not interpret their
	// contents beyond shape.
	m, err := New(`{"attributes": {}, "resolvers": {}, "matchers": {}, "indices": {}}`)
	require.NoError(t, err)
	assert.Empty(t, m.Attributes)
}

func TestNewRejectsBadBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"whitespace body", "   \n\t"},
		{"not json", "{not json"},
		{"json null", "null"},
		{"json array", `["attributes"]`},
		{"json scalar", `"attributes"`},
		{"missing attributes", `{"resolvers": {}, "matchers": {}, "indices": {}}`},
		{"missing indices", `{"attributes": {}, "resolvers": {}, "matchers": {}}`},
		{"unexpected top-level field", `{"attributes": {}, "resolvers": {}, "matchers": {}, "indices": {}, "mappings": {}}`},
		{"section is array", `{"attributes": [], "resolvers": {}, "matchers": {}, "indices": {}}`},
		{"section is null", `{"attributes": null, "resolvers": {}, "matchers": {}, "indices": {}}`},
		{"section is scalar", `{"attributes": {}, "resolvers": {}, "matchers": {}, "indices": 7}`},
		{"blank entry name", `{"attributes": {" ": {}}, "resolvers": {}, "matchers": {}, "indices": {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.body)
			require.Error(t, err)
			assert.Nil(t, m)
			assert.True(t, errors.IsBadInput(err), "expected a bad-input error, got %v", err)
		})
	}
}

func TestValidateEntityType(t *testing.T) {
	require.NoError(t, ValidateEntityType("person"))
	require.NoError(t, ValidateEntityType("person_v2"))

	for _, bad := range []string{"", "two words", "tab\tname", "line\nname", "ctl\x00"} {
		err := ValidateEntityType(bad)
		require.Error(t, err, "entity type %q should be rejected", bad)
		assert.True(t, errors.IsBadInput(err))
	}
}
