// Package errors provides custom error types for the zarrs-conventions system.
// These errors enable programmatic error checking across the identity model,
// the convention registry, and the attribute representation protocol.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the zarrs-conventions system
var (
	// ErrMissingIdentifier indicates an identity record with none of
	// uuid, schema_url, or spec_url set
	ErrMissingIdentifier = errors.New("missing identifier")

	// ErrDuplicateIdentifier indicates a registry collision on one of the
	// three identifier keys
	ErrDuplicateIdentifier = errors.New("duplicate identifier")

	// ErrKeyNotFound indicates a nested decode against an absent key
	ErrKeyNotFound = errors.New("key not found")

	// ErrNotAnObject indicates a prefixed encode of a value that does not
	// serialize to a JSON object
	ErrNotAnObject = errors.New("not an object")

	// ErrDecode indicates a structural mismatch while decoding a value
	ErrDecode = errors.New("decode failed")

	// ErrEncode indicates a failure while encoding a value
	ErrEncode = errors.New("encode failed")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrParse indicates a failure to parse a data format
	ErrParse = errors.New("parse failed")

	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")
)

// MissingIdentifierError reports an identity record or builder with no
// usable identifier field
type MissingIdentifierError struct {
	Context string
}

// Error implements the error interface
func (e *MissingIdentifierError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: at least one of uuid, schema_url, or spec_url must be set", e.Context)
	}
	return "at least one of uuid, schema_url, or spec_url must be set"
}

// Is implements errors.Is support
func (e *MissingIdentifierError) Is(target error) bool {
	return target == ErrMissingIdentifier
}

// NewMissingIdentifierError creates a new MissingIdentifierError
func NewMissingIdentifierError(context string) *MissingIdentifierError {
	return &MissingIdentifierError{Context: context}
}

// DuplicateIdentifierError reports which identifier collided during
// registration
type DuplicateIdentifierError struct {
	Kind  string // "uuid", "schema_url", or "spec_url"
	Value string
}

// Error implements the error interface
func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("convention with %s %s is already registered", e.Kind, e.Value)
}

// Is implements errors.Is support
func (e *DuplicateIdentifierError) Is(target error) bool {
	return target == ErrDuplicateIdentifier
}

// NewDuplicateIdentifierError creates a new DuplicateIdentifierError
func NewDuplicateIdentifierError(kind, value string) *DuplicateIdentifierError {
	return &DuplicateIdentifierError{Kind: kind, Value: value}
}

// KeyNotFoundError reports a nested decode against an attribute map that
// lacks the convention's reserved key
type KeyNotFoundError struct {
	Key string
}

// Error implements the error interface
func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("convention key not found: %q", e.Key)
}

// Is implements errors.Is support
func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}

// NewKeyNotFoundError creates a new KeyNotFoundError
func NewKeyNotFoundError(key string) *KeyNotFoundError {
	return &KeyNotFoundError{Key: key}
}

// NotAnObjectError reports a prefixed encode of a value whose serialized
// form is not a JSON object
type NotAnObjectError struct {
	Prefix string
}

// Error implements the error interface
func (e *NotAnObjectError) Error() string {
	if e.Prefix != "" {
		return fmt.Sprintf("prefixed representation %q must serialize to a JSON object", e.Prefix)
	}
	return "prefixed representation must serialize to a JSON object"
}

// Is implements errors.Is support
func (e *NotAnObjectError) Is(target error) bool {
	return target == ErrNotAnObject
}

// NewNotAnObjectError creates a new NotAnObjectError
func NewNotAnObjectError(prefix string) *NotAnObjectError {
	return &NotAnObjectError{Prefix: prefix}
}

// DecodeError represents a structural or type mismatch while decoding a
// convention value or unstructured field
type DecodeError struct {
	Target string // what was being decoded, e.g. a convention name or attribute key
	Err    error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("failed to decode %s: %v", e.Target, e.Err)
	}
	return fmt.Sprintf("decode failed: %v", e.Err)
}

// Unwrap implements errors.Unwrap
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// NewDecodeError creates a new DecodeError
func NewDecodeError(target string, err error) *DecodeError {
	return &DecodeError{Target: target, Err: err}
}

// EncodeError represents a failure while serializing a convention value or
// unstructured field
type EncodeError struct {
	Target string
	Err    error
}

// Error implements the error interface
func (e *EncodeError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("failed to encode %s: %v", e.Target, e.Err)
	}
	return fmt.Sprintf("encode failed: %v", e.Err)
}

// Unwrap implements errors.Unwrap
func (e *EncodeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *EncodeError) Is(target error) bool {
	return target == ErrEncode
}

// NewEncodeError creates a new EncodeError
func NewEncodeError(target string, err error) *EncodeError {
	return &EncodeError{Target: target, Err: err}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml", etc.
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// Helper functions for error checking

// IsMissingIdentifier checks if an error is a missing identifier error
func IsMissingIdentifier(err error) bool {
	return errors.Is(err, ErrMissingIdentifier)
}

// IsDuplicateIdentifier checks if an error is a duplicate identifier error
func IsDuplicateIdentifier(err error) bool {
	return errors.Is(err, ErrDuplicateIdentifier)
}

// IsKeyNotFound checks if an error is a key not found error
func IsKeyNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}

// IsNotAnObject checks if an error is a not-an-object error
func IsNotAnObject(err error) bool {
	return errors.Is(err, ErrNotAnObject)
}

// IsDecodeError checks if an error is a decode error
func IsDecodeError(err error) bool {
	return errors.Is(err, ErrDecode)
}

// IsEncodeError checks if an error is an encode error
func IsEncodeError(err error) bool {
	return errors.Is(err, ErrEncode)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	return errors.Is(err, ErrParse)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
