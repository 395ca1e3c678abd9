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
	// ErrMissingFacet is returned when a key template references a facet
	// that is absent or empty in the supplied values
	ErrMissingFacet = errors.New("missing facet value")

	// ErrMalformedKey is returned when a physical key string does not match
	// the template shape it is parsed against
	ErrMalformedKey = errors.New("malformed physical key")

	// ErrUnknownIndex is returned when no index is registered for an
	// (entity, index) pair
	ErrUnknownIndex = errors.New("unknown index")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// MissingFacetError reports a facet required by a key template that was not
// supplied (or was supplied empty)
type MissingFacetError struct {
	Facet    string
	Template string
}

func (e *MissingFacetError) Error() string {
	return fmt.Sprintf("facet %q required by template %q is missing or empty", e.Facet, e.Template)
}

func (e *MissingFacetError) Is(target error) bool {
	return target == ErrMissingFacet
}

// MalformedKeyError reports a physical key string that could not be decoded
// against its template
type MalformedKeyError struct {
	Key      string
	Template string
	Reason   string
}

func (e *MalformedKeyError) Error() string {
	return fmt.Sprintf("key %q does not match template %q: %s", e.Key, e.Template, e.Reason)
}

func (e *MalformedKeyError) Is(target error) bool {
	return target == ErrMalformedKey
}

// UnknownIndexError reports a lookup for an index that was never registered
type UnknownIndexError struct {
	Entity string
	Index  string
}

func (e *UnknownIndexError) Error() string {
	return fmt.Sprintf("no index %q registered for entity %q", e.Index, e.Entity)
}

func (e *UnknownIndexError) Is(target error) bool {
	return target == ErrUnknownIndex
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
	return target == ErrInvalidInput
}

// Helper functions for creating errors

// NewMissingFacetError creates a new MissingFacetError
func NewMissingFacetError(facet, template string) error {
	return &MissingFacetError{Facet: facet, Template: template}
}

// NewMalformedKeyError creates a new MalformedKeyError
func NewMalformedKeyError(key, template, reason string) error {
	return &MalformedKeyError{Key: key, Template: template, Reason: reason}
}

// NewUnknownIndexError creates a new UnknownIndexError
func NewUnknownIndexError(entity, index string) error {
	return &UnknownIndexError{Entity: entity, Index: index}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsMissingFacet checks if an error is a missing facet error
func IsMissingFacet(err error) bool {
	return errors.Is(err, ErrMissingFacet)
}

// IsMalformedKey checks if an error is a malformed key error
func IsMalformedKey(err error) bool {
	return errors.Is(err, ErrMalformedKey)
}

// IsUnknownIndex checks if an error is an unknown index error
func IsUnknownIndex(err error) bool {
	return errors.Is(err, ErrUnknownIndex)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
