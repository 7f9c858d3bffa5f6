package domain

import "errors"

var (
	// ErrValidation signals a missing or invalid required input field.
	ErrValidation = errors.New("validation failed")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrIndexUnavailable signals a vector index call failure.
	ErrIndexUnavailable = errors.New("vector index unavailable")
)
