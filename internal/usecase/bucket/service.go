package bucket

import (
	"context"
	"fmt"

	"github.com/myuze/searchapi/internal/domain/catalog"
)

// Defaults applied by the transport when the request leaves them unset.
const (
	DefaultNumBuckets = 5
	DefaultBucketSize = 15
)

// Bucket is one curated shelf: template identity plus its matched items.
// TotalItems is the raw match count; every match is kept, no score cutoff.
type Bucket struct {
	Name       string               `json:"bucket_name"`
	Type       string               `json:"bucket_type"`
	Reasoning  string               `json:"reasoning"`
	TotalItems int                  `json:"total_items"`
	Items      []catalog.BucketItem `json:"items"`
}

// Service generates curated discovery buckets from per-market templates.
type Service struct {
	index Index
	embed Embedder
}

// New creates a bucket generation use case.
func New(index Index, embed Embedder) *Service {
	return &Service{index: index, embed: embed}
}

// Generate runs the first numBuckets templates for a market, in template
// order. A market with fewer templates yields fewer buckets.
func (s *Service) Generate(ctx context.Context, country string, numBuckets, bucketSize int) ([]Bucket, error) {
	templates := catalog.TemplatesForMarket(country)
	if numBuckets < 0 {
		numBuckets = 0
	}
	if numBuckets < len(templates) {
		templates = templates[:numBuckets]
	}

	buckets := make([]Bucket, 0, len(templates))
	for _, t := range templates {
		emb, err := s.embed.Embed(ctx, t.Query)
		if err != nil {
			return nil, fmt.Errorf("embed template %q: %w", t.Name, err)
		}

		matches, err := s.index.Query(ctx, emb.Embedding, t.Filter, bucketSize, true)
		if err != nil {
			return nil, fmt.Errorf("query template %q: %w", t.Name, err)
		}

		items := make([]catalog.BucketItem, 0, len(matches))
		for i := range matches {
			items = append(items, catalog.BucketItemFromMatch(&matches[i]))
		}

		buckets = append(buckets, Bucket{
			Name:       t.Name,
			Type:       t.Type,
			Reasoning:  t.Reasoning,
			TotalItems: len(matches),
			Items:      items,
		})
	}
	return buckets, nil
}
