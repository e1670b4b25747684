/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package model

import (
	"encoding/json"
	"strings"
	"unicode"

	"github.com/suparena/modelregistry/errors"
	"github.com/suparena/modelregistry/schema"
)

// Model is a parsed, validated entity model document. Construct one with New;
// a Model that exists has passed validation.
type Model struct {
	Attributes map[string]interface{}
	Resolvers  map[string]interface{}
	Matchers   map[string]interface{}
	Indices    map[string]interface{}
}

// New parses and validates a raw entity model body. The body must be a JSON
// object containing exactly the four document sections, each of which must
// itself be a JSON object with non-empty entry names. Any violation returns
// errors.ValidationError.
func New(raw string) (*Model, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.NewValidationError("", "request body is missing")
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &top); err != nil || top == nil {
		return nil, errors.NewValidationError("", "request body must be a JSON object")
	}

	// Strict shape: no top-level fields beyond the four sections.
	for name := range top {
		if !schema.IsSection(name) {
			return nil, errors.NewValidationError(name, "unexpected field")
		}
	}

	m := &Model{}
	for _, name := range schema.Sections() {
		sectionRaw, ok := top[name]
		if !ok {
			return nil, errors.NewValidationError(name, "is required")
		}
		section, err := parseSection(name, sectionRaw)
		if err != nil {
			return nil, err
		}
		switch name {
		case schema.SectionAttributes:
			m.Attributes = section
		case schema.SectionResolvers:
			m.Resolvers = section
		case schema.SectionMatchers:
			m.Matchers = section
		case schema.SectionIndices:
			m.Indices = section
		}
	}
	return m, nil
}

func parseSection(name string, raw json.RawMessage) (map[string]interface{}, error) {
	var section map[string]interface{}
	if err := json.Unmarshal(raw, &section); err != nil || section == nil {
		return nil, errors.NewValidationError(name, "must be a JSON object")
	}
	for entry := range section {
		if strings.TrimSpace(entry) == "" {
			return nil, errors.NewValidationError(name, "entry names must be non-empty")
		}
	}
	return section, nil
}

// ValidateEntityType checks that an entity type is a usable document key:
// non-empty and free of whitespace and control characters.
func ValidateEntityType(entityType string) error {
	if entityType == "" {
		return errors.NewValidationError("entity_type", "must be non-empty")
	}
	for _, r := range entityType {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return errors.NewValidationError("entity_type", "must not contain whitespace or control characters")
		}
	}
	return nil
}
