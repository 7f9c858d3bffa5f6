// Package db defines the storage contract for the vector index collaborator.
package db

import (
	"context"
	"time"

	"github.com/myuze/searchapi/internal/domain/search/predicate"
)

// Store is the database facade. Consumers depend on the narrow sub-interfaces.
type Store interface {
	Pinger
	KVStore
	Searcher
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks index connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// KVStore provides the key-value operations backing the embedding cache.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Searcher provides query and diagnostic operations over the FT index.
type Searcher interface {
	SearchKNN(ctx context.Context, q *KNNQuery) (*SearchResult, error)
	IndexInfo(ctx context.Context, index string) (*IndexInfo, error)
}

// KNNQuery describes one nearest-neighbor search.
type KNNQuery struct {
	IndexName string
	Vector    []float32
	// Filters pre-filters candidates; nil means match-all.
	Filters *predicate.Predicate
	K       int
	// IncludeMetadata controls whether stored fields come back with each hit.
	IncludeMetadata bool
}

// SearchEntry is a single raw hit.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}

// SearchResult holds the hits of one query in relevance order.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// IndexInfo holds FT.INFO summary statistics.
type IndexInfo struct {
	NumDocs        int64
	PercentIndexed float64
}
