/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when an entity model is not found
	ErrNotFound = errors.New("model not found")

	// ErrAlreadyExists is returned when attempting to create a model that already exists
	ErrAlreadyExists = errors.New("model already exists")

	// ErrBadInput is returned when a request body is missing or fails validation
	ErrBadInput = errors.New("bad input")

	// ErrNotImplemented is returned for an unrecognized method and endpoint combination
	ErrNotImplemented = errors.New("not implemented")

	// ErrLocationNotFound is returned by the store when the storage location is absent
	ErrLocationNotFound = errors.New("storage location not found")

	// ErrInfrastructure is returned when the storage location cannot be
	// created or stays missing after a repair attempt
	ErrInfrastructure = errors.New("infrastructure failure")
)

// NotFoundError represents an error when an entity model is not found
type NotFoundError struct {
	EntityType string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("entity model %q not found", e.EntityType)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents an error when an entity model already exists
type AlreadyExistsError struct {
	EntityType string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("entity model %q already exists", e.EntityType)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrBadInput
}

// NotImplementedError represents a request for an unrecognized method and endpoint
type NotImplementedError struct {
	Method string
	Path   string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("method %s and endpoint %s not implemented", e.Method, e.Path)
}

func (e *NotImplementedError) Is(target error) bool {
	return target == ErrNotImplemented
}

// LocationNotFoundError is reported by a store when the storage location
// holding entity models does not exist
type LocationNotFoundError struct {
	Location string
}

func (e *LocationNotFoundError) Error() string {
	return fmt.Sprintf("storage location %q not found", e.Location)
}

func (e *LocationNotFoundError) Is(target error) bool {
	return target == ErrLocationNotFound
}

// InfrastructureError represents a fatal storage failure: location creation
// failed for a reason other than already-exists, or the location stayed
// missing after a repair attempt
type InfrastructureError struct {
	Op  string
	Err error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("infrastructure failure during %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("infrastructure failure during %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

func (e *InfrastructureError) Is(target error) bool {
	return target == ErrInfrastructure
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entityType string) error {
	return &NotFoundError{EntityType: entityType}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(entityType string) error {
	return &AlreadyExistsError{EntityType: entityType}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewNotImplementedError creates a new NotImplementedError
func NewNotImplementedError(method, path string) error {
	return &NotImplementedError{Method: method, Path: path}
}

// NewLocationNotFoundError creates a new LocationNotFoundError
func NewLocationNotFoundError(location string) error {
	return &LocationNotFoundError{Location: location}
}

// NewInfrastructureError creates a new InfrastructureError wrapping err
func NewInfrastructureError(op string, err error) error {
	return &InfrastructureError{Op: op, Err: err}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsBadInput checks if an error is a missing-body or validation error
func IsBadInput(err error) bool {
	return errors.Is(err, ErrBadInput)
}

// IsNotImplemented checks if an error is a not implemented error
func IsNotImplemented(err error) bool {
	return errors.Is(err, ErrNotImplemented)
}

// IsLocationNotFound checks if an error is a missing storage location error
func IsLocationNotFound(err error) bool {
	return errors.Is(err, ErrLocationNotFound)
}

// IsInfrastructure checks if an error is a fatal infrastructure error
func IsInfrastructure(err error) bool {
	return errors.Is(err, ErrInfrastructure)
}
