// Package errors defines custom error types for better error handling and debugging.
// CatalogError provides context-aware error reporting with type classification.
package errors

import (
	"errors"
	"fmt"
)

// CatalogError represents errors that occur while fetching or normalizing
// catalog data.
type CatalogError struct {
	Type    string
	Message string
	Cause   error
}

func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *CatalogError) Unwrap() error {
	return e.Cause
}

// Error type constants
const (
	ErrorTypeConfigurationInvalid = "CONFIGURATION_INVALID"
	ErrorTypeUpstreamFailure      = "UPSTREAM_FAILURE"
	ErrorTypeMalformedResponse    = "MALFORMED_RESPONSE"
	ErrorTypePostNotFound         = "POST_NOT_FOUND"
	ErrorTypeEpisodeNotFound      = "EPISODE_NOT_FOUND"
	ErrorTypeInvalidID            = "INVALID_ID"
)

// NewCatalogError creates a new CatalogError
func NewCatalogError(errorType, message string, cause error) *CatalogError {
	return &CatalogError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigurationError creates a configuration-related error
func NewConfigurationError(message string, cause error) *CatalogError {
	return NewCatalogError(ErrorTypeConfigurationInvalid, message, cause)
}

// NewUpstreamError creates an error for a failed upstream API call
func NewUpstreamError(message string, cause error) *CatalogError {
	return NewCatalogError(ErrorTypeUpstreamFailure, message, cause)
}

// NewMalformedResponseError creates an error for an undecodable payload
func NewMalformedResponseError(message string, cause error) *CatalogError {
	return NewCatalogError(ErrorTypeMalformedResponse, message, cause)
}

// NewPostNotFoundError creates an error for a missing post
func NewPostNotFoundError(id string) *CatalogError {
	return NewCatalogError(ErrorTypePostNotFound, fmt.Sprintf("post %s not found", id), nil)
}

// NewEpisodeNotFoundError creates an error for a missing episode
func NewEpisodeNotFoundError(id string) *CatalogError {
	return NewCatalogError(ErrorTypeEpisodeNotFound, fmt.Sprintf("episode %s not found", id), nil)
}

// NewInvalidIDError creates an invalid ID error
func NewInvalidIDError(id string) *CatalogError {
	return NewCatalogError(ErrorTypeInvalidID, fmt.Sprintf("invalid ID format: %s", id), nil)
}

// IsNotFound reports whether err is a not-found catalog error.
func IsNotFound(err error) bool {
	var ce *CatalogError
	if errors.As(err, &ce) {
		return ce.Type == ErrorTypePostNotFound || ce.Type == ErrorTypeEpisodeNotFound
	}
	return false
}
