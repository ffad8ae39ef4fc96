// Package errors provides the error taxonomy for dexmap.
// Callers check errors with errors.Is against the sentinels below or with
// the Is* helpers; typed errors carry the context needed for reporting.
package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"
)

// New returns an error that formats as the given text.
var New = errors.New

// Is, As and Join are the standard library helpers, re-exported so callers
// that import this package as errors need only one import.
var (
	Is   = errors.Is
	As   = errors.As
	Join = errors.Join
)

// Sentinel errors.
var (
	// ErrNotFound indicates an unknown element or an id the provider has no record for.
	ErrNotFound = errors.New("not found")

	// ErrProvider indicates a transport failure or malformed provider response.
	ErrProvider = errors.New("provider error")

	// ErrPreconditionViolation indicates the input catalog is not sorted ascending with unique ids.
	ErrPreconditionViolation = errors.New("precondition violation")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrProviderUnavailable indicates that a provider is temporarily unavailable
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrRateLimited indicates that the provider rate limit has been exceeded
	ErrRateLimited = errors.New("rate limited")

	// ErrTimeout indicates that an operation timed out
	ErrTimeout = errors.New("operation timed out")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")

	// ErrSynthesis indicates one or more missing ids could not be synthesized.
	ErrSynthesis = errors.New("synthesis failed")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ProviderError wraps any failure to obtain a record from an external provider.
type ProviderError struct {
	Provider string
	ID       int
	Message  string
	Err      error
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.ID > 0 {
		return fmt.Sprintf("provider %s failed for id %d: %s", e.Provider, e.ID, msg)
	}
	return fmt.Sprintf("provider %s failed: %s", e.Provider, msg)
}

// Unwrap implements errors.Unwrap
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ProviderError) Is(target error) bool {
	return target == ErrProvider
}

// NewProviderError creates a new ProviderError
func NewProviderError(provider string, id int, err error) *ProviderError {
	return &ProviderError{Provider: provider, ID: id, Err: err}
}

// PreconditionError reports an input that breaks an ordering or range assumption.
type PreconditionError struct {
	Subject string
	Index   int
	Message string
}

// Error implements the error interface
func (e *PreconditionError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("precondition violated for %s at index %d: %s", e.Subject, e.Index, e.Message)
	}
	return fmt.Sprintf("precondition violated for %s: %s", e.Subject, e.Message)
}

// Is implements errors.Is support
func (e *PreconditionError) Is(target error) bool {
	return target == ErrPreconditionViolation
}

// NewPreconditionError creates a new PreconditionError. Use index -1 when
// the violation is not tied to a position.
func NewPreconditionError(subject string, index int, message string) *PreconditionError {
	return &PreconditionError{Subject: subject, Index: index, Message: message}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
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
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// APIError represents a non-success HTTP response from a provider.
type APIError struct {
	Provider   string
	StatusCode int
	Message    string
	Endpoint   string
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API error from %s (status %d): %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error from %s: %s", e.Provider, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support. Every API error is a provider error;
// 429 and 5xx additionally match the more specific sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrProvider:
		return true
	case ErrRateLimited:
		return e.StatusCode == http.StatusTooManyRequests
	case ErrProviderUnavailable:
		return e.StatusCode >= http.StatusInternalServerError
	}
	return false
}

// NewAPIError creates a new APIError
func NewAPIError(provider string, statusCode int, message string) *APIError {
	return &APIError{
		Provider:   provider,
		StatusCode: statusCode,
		Message:    message,
	}
}

// SynthesisError summarizes the ids that could not be synthesized in one run.
type SynthesisError struct {
	Failures map[int]error
}

// IDs returns the failed ids in ascending order.
func (e *SynthesisError) IDs() []int {
	ids := make([]int, 0, len(e.Failures))
	for id := range e.Failures {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Error implements the error interface
func (e *SynthesisError) Error() string {
	ids := e.IDs()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return fmt.Sprintf("synthesis failed for %d id(s): %s", len(ids), strings.Join(parts, ", "))
}

// Unwrap exposes the per-id causes so errors.Is can see through them.
func (e *SynthesisError) Unwrap() []error {
	ids := e.IDs()
	errs := make([]error, 0, len(ids))
	for _, id := range ids {
		errs = append(errs, e.Failures[id])
	}
	return errs
}

// Is implements errors.Is support
func (e *SynthesisError) Is(target error) bool {
	return target == ErrSynthesis
}

// NewSynthesisError returns nil when failures is empty.
func NewSynthesisError(failures map[int]error) error {
	if len(failures) == 0 {
		return nil
	}
	return &SynthesisError{Failures: failures}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml"
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

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "rename", "open"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ResourceError represents a failed operation on a named resource.
type ResourceError struct {
	Operation string // "load", "combine", "reconcile", "synthesize"
	Resource  string // "catalog", "entry", "registry"
	ID        string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ResourceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("failed to %s %s %s: %s", e.Operation, e.Resource, e.ID, e.Message)
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a new ResourceError
func NewResourceError(operation, resource, id string, err error) *ResourceError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ResourceError{
		Operation: operation,
		Resource:  resource,
		ID:        id,
		Message:   message,
		Err:       err,
	}
}

// TimeoutError represents an operation that ran out of time.
type TimeoutError struct {
	Operation string
	Duration  string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *TimeoutError) Error() string {
	if e.Duration != "" {
		return fmt.Sprintf("operation %s timed out after %s: %s", e.Operation, e.Duration, e.Message)
	}
	return fmt.Sprintf("operation %s timed out: %s", e.Operation, e.Message)
}

// Unwrap returns the underlying error
func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

// NewTimeoutError creates a TimeoutError for operation. A zero timeout
// leaves Duration empty.
func NewTimeoutError(operation string, timeout time.Duration, err error) *TimeoutError {
	e := &TimeoutError{Operation: operation, Err: err}
	if timeout > 0 {
		e.Duration = timeout.String()
	}
	if err != nil {
		e.Message = err.Error()
	}
	return e
}

// CanceledError represents an operation stopped by context cancellation.
type CanceledError struct {
	Operation string
	Err       error
}

// Error implements the error interface
func (e *CanceledError) Error() string {
	return fmt.Sprintf("operation %s canceled", e.Operation)
}

// Unwrap returns the underlying error
func (e *CanceledError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *CanceledError) Is(target error) bool {
	return target == ErrCanceled
}

// NewCanceledError creates a CanceledError
func NewCanceledError(operation string, err error) *CanceledError {
	return &CanceledError{Operation: operation, Err: err}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsProviderError checks if an error came from an external provider
func IsProviderError(err error) bool {
	return errors.Is(err, ErrProvider)
}

// IsPreconditionViolation checks if an error is a catalog precondition failure
func IsPreconditionViolation(err error) bool {
	return errors.Is(err, ErrPreconditionViolation)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsSynthesisError checks if an error reports failed synthesis
func IsSynthesisError(err error) bool {
	return errors.Is(err, ErrSynthesis)
}

// IsRateLimited checks if an error is a rate limit error
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsTimeout checks if an error is a timeout error
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsCanceled checks if an error is a cancellation error
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// IsProviderUnavailable checks if an error indicates provider unavailability
func IsProviderUnavailable(err error) bool {
	return errors.Is(err, ErrProviderUnavailable)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapResource wraps an error as a ResourceError
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return NewResourceError(operation, resource, id, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapProvider wraps an error as a ProviderError unless it already is one
// or is a NotFound, which keeps its own classification.
func WrapProvider(provider string, id int, err error) error {
	if err == nil {
		return nil
	}
	if IsProviderError(err) || IsNotFound(err) {
		return err
	}
	return NewProviderError(provider, id, err)
}

// WrapContext classifies context errors: an expired deadline becomes a
// TimeoutError and a cancellation a CanceledError. Other errors, and errors
// already classified, are returned unchanged.
func WrapContext(operation string, timeout time.Duration, err error) error {
	switch {
	case err == nil:
		return nil
	case IsTimeout(err) || IsCanceled(err):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return NewTimeoutError(operation, timeout, err)
	case errors.Is(err, context.Canceled):
		return NewCanceledError(operation, err)
	}
	return err
}
