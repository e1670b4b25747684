/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("person")

	expected := `entity model "person" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestAlreadyExistsError(t *testing.T) {
	err := NewAlreadyExistsError("organization")

	expected := `entity model "organization" already exists`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrAlreadyExists) {
		t.Error("AlreadyExistsError should match ErrAlreadyExists")
	}

	if !IsAlreadyExists(err) {
		t.Error("IsAlreadyExists should return true for AlreadyExistsError")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "attributes",
			message:  "must be an object",
			expected: `validation failed for field "attributes": must be an object`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "request body is missing",
			expected: "validation failed: request body is missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !errors.Is(err, ErrBadInput) {
				t.Error("ValidationError should match ErrBadInput")
			}

			if !IsBadInput(err) {
				t.Error("IsBadInput should return true for ValidationError")
			}
		})
	}
}

func TestNotImplementedError(t *testing.T) {
	err := NewNotImplementedError("PATCH", "/models/person")

	expected := "method PATCH and endpoint /models/person not implemented"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsNotImplemented(err) {
		t.Error("IsNotImplemented should return true for NotImplementedError")
	}
}

func TestLocationNotFoundError(t *testing.T) {
	err := NewLocationNotFoundError("entity-models")

	expected := `storage location "entity-models" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrLocationNotFound) {
		t.Error("LocationNotFoundError should match ErrLocationNotFound")
	}

	if !IsLocationNotFound(err) {
		t.Error("IsLocationNotFound should return true for LocationNotFoundError")
	}

	// A missing location must never classify as a missing model.
	if IsNotFound(err) {
		t.Error("LocationNotFoundError should not match ErrNotFound")
	}
}

func TestInfrastructureError(t *testing.T) {
	cause := fmt.Errorf("create table: throttled")
	err := NewInfrastructureError("create location", cause)

	expected := "infrastructure failure during create location: create table: throttled"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsInfrastructure(err) {
		t.Error("IsInfrastructure should return true for InfrastructureError")
	}

	if !errors.Is(err, cause) {
		t.Error("InfrastructureError should unwrap to its cause")
	}
}

func TestInfrastructureErrorWithoutCause(t *testing.T) {
	err := NewInfrastructureError("repair", nil)

	expected := "infrastructure failure during repair"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}
}

func TestHelpersRejectOtherErrors(t *testing.T) {
	plain := errors.New("some transport error")

	if IsNotFound(plain) || IsAlreadyExists(plain) || IsBadInput(plain) ||
		IsNotImplemented(plain) || IsLocationNotFound(plain) || IsInfrastructure(plain) {
		t.Error("classification helpers should reject unrelated errors")
	}
}
