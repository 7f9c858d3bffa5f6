package search

import (
	"context"
	"errors"
	"testing"

	"github.com/myuze/searchapi/internal/domain"
	"github.com/myuze/searchapi/internal/domain/search/filter"
	"github.com/myuze/searchapi/internal/domain/search/predicate"
	"github.com/myuze/searchapi/internal/domain/search/result"
)

type mockIndex struct {
	queryFn func(ctx context.Context, vector []float32, pred *predicate.Predicate, topK int, includeMetadata bool) ([]result.Match, error)

	lastPred *predicate.Predicate
	lastTopK int
	calls    int
}

func (m *mockIndex) Query(ctx context.Context, vector []float32, pred *predicate.Predicate, topK int, includeMetadata bool) ([]result.Match, error) {
	m.calls++
	m.lastPred = pred
	m.lastTopK = topK
	return m.queryFn(ctx, vector, pred, topK, includeMetadata)
}

type mockEmbedder struct {
	embedFn func(ctx context.Context, text string) (domain.EmbeddingResult, error)
	calls   int
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) (domain.EmbeddingResult, error) {
	m.calls++
	return m.embedFn(ctx, text)
}

func staticEmbedder(vec []float32) *mockEmbedder {
	return &mockEmbedder{embedFn: func(context.Context, string) (domain.EmbeddingResult, error) {
		return domain.EmbeddingResult{Embedding: vec}, nil
	}}
}

func match(id string, score float64, title string) result.Match {
	return result.New(id, score, map[string]string{"podcast_id": id, "title": title})
}

func TestSearch_EmptyQuery(t *testing.T) {
	emb := staticEmbedder([]float32{0.1})
	idx := &mockIndex{queryFn: func(context.Context, []float32, *predicate.Predicate, int, bool) ([]result.Match, error) {
		return nil, nil
	}}
	svc := New(idx, emb)

	_, err := svc.Search(context.Background(), "", filter.Filter{}, DefaultTopK, DefaultScoreThreshold)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if emb.calls != 0 {
		t.Errorf("embedder called %d times for invalid query, want 0", emb.calls)
	}
	if idx.calls != 0 {
		t.Errorf("index called %d times for invalid query, want 0", idx.calls)
	}
}

func TestSearch_InvalidTopK(t *testing.T) {
	emb := staticEmbedder([]float32{0.1})
	idx := &mockIndex{queryFn: func(context.Context, []float32, *predicate.Predicate, int, bool) ([]result.Match, error) {
		return nil, nil
	}}
	svc := New(idx, emb)

	_, err := svc.Search(context.Background(), "cricket", filter.Filter{}, 0, DefaultScoreThreshold)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if emb.calls != 0 {
		t.Errorf("embedder called %d times, want 0", emb.calls)
	}
}

func TestSearch_ThresholdDropsLowScores(t *testing.T) {
	idx := &mockIndex{queryFn: func(context.Context, []float32, *predicate.Predicate, int, bool) ([]result.Match, error) {
		return []result.Match{
			match("a", 0.95, "Top Match"),
			match("b", 0.71, "Borderline"),
			match("c", 0.69, "Below"),
			match("d", 0.10, "Way Below"),
		}, nil
	}}
	svc := New(idx, staticEmbedder([]float32{0.1, 0.2}))

	items, err := svc.Search(context.Background(), "cricket podcasts", filter.Filter{}, 50, 0.7)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].PodcastID != "a" || items[1].PodcastID != "b" {
		t.Errorf("order not preserved: %q, %q", items[0].PodcastID, items[1].PodcastID)
	}
	if items[0].Score != 0.95 {
		t.Errorf("Score = %v, want 0.95", items[0].Score)
	}
}

func TestSearch_ZeroThresholdKeepsAll(t *testing.T) {
	idx := &mockIndex{queryFn: func(context.Context, []float32, *predicate.Predicate, int, bool) ([]result.Match, error) {
		return []result.Match{match("a", 0.5, "A"), match("b", 0.0, "B")}, nil
	}}
	svc := New(idx, staticEmbedder([]float32{0.1}))

	items, err := svc.Search(context.Background(), "anything", filter.Filter{}, 50, 0)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
}

func TestSearch_PassesTranslatedFilter(t *testing.T) {
	idx := &mockIndex{queryFn: func(context.Context, []float32, *predicate.Predicate, int, bool) ([]result.Match, error) {
		return nil, nil
	}}
	svc := New(idx, staticEmbedder([]float32{0.1}))

	f := filter.Filter{Ptype: []string{"Vodacast"}, Country: "IN"}
	if _, err := svc.Search(context.Background(), "cricket", f, 25, 0.7); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if idx.lastPred == nil {
		t.Fatal("predicate not passed to index")
	}
	if len(idx.lastPred.Must()) != 1 || len(idx.lastPred.Any()) != 2 {
		t.Errorf("predicate shape: must=%d any=%d, want 1/2",
			len(idx.lastPred.Must()), len(idx.lastPred.Any()))
	}
	if idx.lastTopK != 25 {
		t.Errorf("topK = %d, want 25", idx.lastTopK)
	}
}

func TestSearch_EmptyFilterPassesNilPredicate(t *testing.T) {
	idx := &mockIndex{queryFn: func(context.Context, []float32, *predicate.Predicate, int, bool) ([]result.Match, error) {
		return nil, nil
	}}
	svc := New(idx, staticEmbedder([]float32{0.1}))

	if _, err := svc.Search(context.Background(), "cricket", filter.Filter{}, 50, 0.7); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if idx.lastPred != nil {
		t.Errorf("expected nil predicate for empty filter, got %+v", idx.lastPred)
	}
}

func TestSearch_EmbedError(t *testing.T) {
	embedErr := errors.New("provider down")
	emb := &mockEmbedder{embedFn: func(context.Context, string) (domain.EmbeddingResult, error) {
		return domain.EmbeddingResult{}, embedErr
	}}
	idx := &mockIndex{queryFn: func(context.Context, []float32, *predicate.Predicate, int, bool) ([]result.Match, error) {
		return nil, nil
	}}
	svc := New(idx, emb)

	_, err := svc.Search(context.Background(), "cricket", filter.Filter{}, 50, 0.7)
	if !errors.Is(err, embedErr) {
		t.Fatalf("expected embed error to propagate, got %v", err)
	}
	if idx.calls != 0 {
		t.Errorf("index called %d times after embed failure, want 0", idx.calls)
	}
}

func TestSearch_IndexError(t *testing.T) {
	idx := &mockIndex{queryFn: func(context.Context, []float32, *predicate.Predicate, int, bool) ([]result.Match, error) {
		return nil, domain.ErrIndexUnavailable
	}}
	svc := New(idx, staticEmbedder([]float32{0.1}))

	_, err := svc.Search(context.Background(), "cricket", filter.Filter{}, 50, 0.7)
	if !errors.Is(err, domain.ErrIndexUnavailable) {
		t.Fatalf("expected index error to propagate, got %v", err)
	}
}
