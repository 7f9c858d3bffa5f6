package health

import (
	"context"
	"fmt"

	"github.com/myuze/searchapi/internal/domain"
	"github.com/myuze/searchapi/internal/domain/search/result"
)

const (
	sampleQuery = "Hindi Bollywood entertainment"
	sampleTopK  = 3
)

// Report describes a healthy service: live index stats plus the embedding
// model identity.
type Report struct {
	TotalVectors   int64
	IndexFullness  float64
	EmbeddingModel string
}

// SampleResult is one probe hit, reduced to title and score.
type SampleResult struct {
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

// SampleReport is the outcome of a fixed end-to-end probe search.
type SampleReport struct {
	Query        string         `json:"test_query"`
	ResultsFound int            `json:"results_found"`
	Results      []SampleResult `json:"sample_results"`
}

// Service implements liveness and smoke-test probes.
type Service struct {
	index Index
	embed Embedder
	model string
}

// New creates a health use case. model names the embedding model reported by Check.
func New(index Index, embed Embedder, model string) *Service {
	return &Service{index: index, embed: embed, model: model}
}

// Check reads live index statistics and probes the embedding provider when
// it supports probing. Any failure means the service is unhealthy.
func (s *Service) Check(ctx context.Context) (Report, error) {
	stats, err := s.index.Describe(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("describe index: %w", err)
	}
	if hc, ok := s.embed.(domain.HealthChecker); ok {
		if err := hc.HealthCheck(ctx); err != nil {
			return Report{}, fmt.Errorf("embedding provider check: %w", err)
		}
	}
	return Report{
		TotalVectors:   stats.TotalVectors,
		IndexFullness:  stats.IndexFullness,
		EmbeddingModel: s.model,
	}, nil
}

// SampleSearch runs a fixed probe query through the whole pipeline. No score
// threshold is applied; the probe validates the path, not relevance.
func (s *Service) SampleSearch(ctx context.Context) (SampleReport, error) {
	emb, err := s.embed.Embed(ctx, sampleQuery)
	if err != nil {
		return SampleReport{}, fmt.Errorf("embed probe query: %w", err)
	}

	matches, err := s.index.Query(ctx, emb.Embedding, nil, sampleTopK, true)
	if err != nil {
		return SampleReport{}, fmt.Errorf("probe query: %w", err)
	}

	return SampleReport{
		Query:        sampleQuery,
		ResultsFound: len(matches),
		Results:      sampleResults(matches),
	}, nil
}

func sampleResults(matches []result.Match) []SampleResult {
	out := make([]SampleResult, 0, len(matches))
	for i := range matches {
		out = append(out, SampleResult{
			Title: matches[i].Meta("title"),
			Score: matches[i].Score(),
		})
	}
	return out
}
