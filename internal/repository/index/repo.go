// Package index adapts the db store into the domain-facing vector index
// collaborator: nearest-neighbor queries and summary statistics.
package index

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/myuze/searchapi/internal/db"
	"github.com/myuze/searchapi/internal/domain"
	"github.com/myuze/searchapi/internal/domain/search/predicate"
	"github.com/myuze/searchapi/internal/domain/search/result"
)

// docKeyPrefix is stripped from index keys to recover the vector id.
const docKeyPrefix = domain.KeyPrefix + "content:"

// store is the consumer interface for index operations (ISP).
type store interface {
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
	IndexInfo(ctx context.Context, index string) (*db.IndexInfo, error)
}

// Repo implements the index collaborator over a db store.
type Repo struct {
	store   store
	index   string
	timeout time.Duration
}

// New creates an index repository for the named FT index.
func New(s store, indexName string) *Repo {
	return &Repo{store: s, index: indexName}
}

// WithTimeout bounds every index call with a deadline.
func (r *Repo) WithTimeout(d time.Duration) *Repo {
	r.timeout = d
	return r
}

// Query runs a top-k nearest-neighbor search. Matches come back in the
// index's relevance order; no re-sorting happens here or above.
func (r *Repo) Query(
	ctx context.Context, vector []float32, pred *predicate.Predicate,
	topK int, includeMetadata bool,
) ([]result.Match, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	sr, err := r.store.SearchKNN(ctx, &db.KNNQuery{
		IndexName:       r.index,
		Vector:          vector,
		Filters:         pred,
		K:               topK,
		IncludeMetadata: includeMetadata,
	})
	if err != nil {
		return nil, fmt.Errorf("index query failed: %s: %w", err, domain.ErrIndexUnavailable)
	}

	matches := make([]result.Match, 0, len(sr.Entries))
	for _, e := range sr.Entries {
		matches = append(matches, result.New(vectorID(e.Key), e.Score, e.Fields))
	}
	return matches, nil
}

// Describe returns index summary statistics for diagnostics.
func (r *Repo) Describe(ctx context.Context) (domain.IndexStats, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	info, err := r.store.IndexInfo(ctx, r.index)
	if err != nil {
		return domain.IndexStats{}, fmt.Errorf("index describe failed: %s: %w", err, domain.ErrIndexUnavailable)
	}
	return domain.IndexStats{
		TotalVectors:  info.NumDocs,
		IndexFullness: info.PercentIndexed,
	}, nil
}

func (r *Repo) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func vectorID(key string) string {
	return strings.TrimPrefix(key, docKeyPrefix)
}
