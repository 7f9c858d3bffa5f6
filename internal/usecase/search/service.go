package search

import (
	"context"
	"fmt"

	"github.com/myuze/searchapi/internal/domain"
	"github.com/myuze/searchapi/internal/domain/catalog"
	"github.com/myuze/searchapi/internal/domain/search/filter"
)

// Defaults applied by the transport when the request leaves them unset.
const (
	DefaultTopK           = 50
	DefaultScoreThreshold = 0.7
)

// Service implements semantic catalog search: embed the query, translate the
// business filter, run a KNN lookup and keep matches above the score threshold.
type Service struct {
	index Index
	embed Embedder
}

// New creates a search use case.
func New(index Index, embed Embedder) *Service {
	return &Service{index: index, embed: embed}
}

// Search runs a semantic query against the catalog index. Matches scoring
// below threshold are dropped, so fewer than topK items may come back.
func (s *Service) Search(ctx context.Context, query string, f filter.Filter, topK int, threshold float64) ([]catalog.Item, error) {
	if query == "" {
		return nil, fmt.Errorf("query is required: %w", domain.ErrValidation)
	}
	if topK <= 0 {
		return nil, fmt.Errorf("top_k must be positive: %w", domain.ErrValidation)
	}

	emb, err := s.embed.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	matches, err := s.index.Query(ctx, emb.Embedding, f.Translate(), topK, true)
	if err != nil {
		return nil, fmt.Errorf("index query: %w", err)
	}

	items := make([]catalog.Item, 0, len(matches))
	for i := range matches {
		if matches[i].Score() < threshold {
			continue
		}
		items = append(items, catalog.ItemFromMatch(&matches[i]))
	}
	return items, nil
}
