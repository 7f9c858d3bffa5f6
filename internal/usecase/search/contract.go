package search

import (
	"context"

	"github.com/myuze/searchapi/internal/domain"
	"github.com/myuze/searchapi/internal/domain/search/predicate"
	"github.com/myuze/searchapi/internal/domain/search/result"
)

// Index is the vector index access this use case needs.
type Index interface {
	Query(ctx context.Context, vector []float32, pred *predicate.Predicate, topK int, includeMetadata bool) ([]result.Match, error)
}

// Embedder turns query text into a vector.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
