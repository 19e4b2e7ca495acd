// Package errors defines the typed error values returned by the catalog
// loader, lexicon, and relevance harness.
package errors

import (
	"fmt"
	"time"
)

// ErrorType tags which subsystem raised an error.
type ErrorType string

const (
	ErrorTypeCatalog ErrorType = "catalog"
	ErrorTypeParse   ErrorType = "parse"
	ErrorTypeMatch   ErrorType = "match"
	ErrorTypeConfig  ErrorType = "config"
)

// CatalogError represents a malformed alias or domain found while loading
// or registering a catalog.
type CatalogError struct {
	Domain     string
	AliasIndex int
	Underlying error
	Timestamp  time.Time
}

// NewCatalogError creates a new catalog error with context.
func NewCatalogError(domain string, aliasIndex int, err error) *CatalogError {
	return &CatalogError{
		Domain:     domain,
		AliasIndex: aliasIndex,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface.
func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog domain %q alias[%d]: %v", e.Domain, e.AliasIndex, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *CatalogError) Unwrap() error {
	return e.Underlying
}

// ParseError represents a YAML decode failure for a catalog or suite file.
type ParseError struct {
	Path       string
	Line       int
	Column     int
	Underlying error
	Timestamp  time.Time
}

// NewParseError creates a new parse error.
func NewParseError(path string, line, column int, err error) *ParseError {
	return &ParseError{
		Path:       path,
		Line:       line,
		Column:     column,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s:%d:%d: %v", e.Path, e.Line, e.Column, e.Underlying)
	}
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Underlying)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Underlying
}

// MatchError is reserved for a matcher implementation that cannot complete.
// Neither required matcher (exact-prefix, approximate) currently fails, but
// the type gives a future matcher somewhere to report into.
type MatchError struct {
	Matcher    string
	Underlying error
	Timestamp  time.Time
}

// NewMatchError creates a new match error.
func NewMatchError(matcher string, err error) *MatchError {
	return &MatchError{
		Matcher:    matcher,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface.
func (e *MatchError) Error() string {
	return fmt.Sprintf("matcher %q failed: %v", e.Matcher, e.Underlying)
}

// Unwrap returns the underlying error.
func (e *MatchError) Unwrap() error {
	return e.Underlying
}

// ConfigError represents an invalid configuration field.
type ConfigError struct {
	Field      string
	Value      string
	Underlying error
	Timestamp  time.Time
}

// NewConfigError creates a new config error.
func NewConfigError(field, value string, err error) *ConfigError {
	return &ConfigError{
		Field:      field,
		Value:      value,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error for field %s (value %s): %v", e.Field, e.Value, e.Underlying)
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Underlying
}

// MultiError aggregates multiple catalog/suite validation failures so a
// validator can report all of them in one pass instead of stopping at the
// first.
type MultiError struct {
	Errors []error
}

// NewMultiError creates a new multi-error, filtering out nil errors.
func NewMultiError(errs []error) *MultiError {
	filtered := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	return &MultiError{Errors: filtered}
}

// Error implements the error interface.
func (e *MultiError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d errors: %v", len(e.Errors), e.Errors)
}

// Unwrap returns all errors.
func (e *MultiError) Unwrap() []error {
	return e.Errors
}
