// Package chi wires the use cases into an HTTP API.
package chi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/myuze/searchapi/internal/domain"
	"github.com/myuze/searchapi/internal/domain/catalog"
	"github.com/myuze/searchapi/internal/domain/search/filter"
	bucketuc "github.com/myuze/searchapi/internal/usecase/bucket"
	healthuc "github.com/myuze/searchapi/internal/usecase/health"
	searchuc "github.com/myuze/searchapi/internal/usecase/search"
	"github.com/myuze/searchapi/internal/version"
)

// Server exposes the search, bucket and health use cases over HTTP.
type Server struct {
	search  *searchuc.Service
	buckets *bucketuc.Service
	health  *healthuc.Service
	logger  *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	buckets *bucketuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	return &Server{
		search:  search,
		buckets: buckets,
		health:  health,
		logger:  logger,
	}
}

// Routes registers all HTTP routes on the router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/v1/search/semantic", s.SemanticSearch)
	r.Post("/v1/buckets/generate", s.GenerateBuckets)
	r.Get("/health", s.Health)
	r.Get("/test", s.TestSearch)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

type searchRequest struct {
	Query          string         `json:"query"`
	Filters        *filter.Filter `json:"filters"`
	TopK           *int           `json:"top_k"`
	ScoreThreshold *float64       `json:"score_threshold"`
}

type searchResponse struct {
	Query          string         `json:"query"`
	FiltersApplied *filter.Filter `json:"filters_applied"`
	TotalResults   int            `json:"total_results"`
	Results        []catalog.Item `json:"results"`
}

// SemanticSearch handles POST /v1/search/semantic.
func (s *Server) SemanticSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	f := filter.Filter{}
	if req.Filters != nil {
		f = *req.Filters
	}
	topK := searchuc.DefaultTopK
	if req.TopK != nil {
		topK = *req.TopK
	}
	threshold := searchuc.DefaultScoreThreshold
	if req.ScoreThreshold != nil {
		threshold = *req.ScoreThreshold
	}

	items, err := s.search.Search(r.Context(), req.Query, f, topK, threshold)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Query:          req.Query,
		FiltersApplied: req.Filters,
		TotalResults:   len(items),
		Results:        items,
	})
}

type bucketsRequest struct {
	Country    *string `json:"country"`
	NumBuckets *int    `json:"num_buckets"`
	BucketSize *int    `json:"bucket_size"`
}

type bucketsResponse struct {
	Country string            `json:"country"`
	Buckets []bucketuc.Bucket `json:"buckets"`
}

// GenerateBuckets handles POST /v1/buckets/generate. An empty body means all defaults.
func (s *Server) GenerateBuckets(w http.ResponseWriter, r *http.Request) {
	var req bucketsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	country := catalog.DefaultMarket
	if req.Country != nil && *req.Country != "" {
		country = *req.Country
	}
	numBuckets := bucketuc.DefaultNumBuckets
	if req.NumBuckets != nil {
		numBuckets = *req.NumBuckets
	}
	bucketSize := bucketuc.DefaultBucketSize
	if req.BucketSize != nil {
		bucketSize = *req.BucketSize
	}

	buckets, err := s.buckets.Generate(r.Context(), country, numBuckets, bucketSize)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, bucketsResponse{Country: country, Buckets: buckets})
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	rep, err := s.health.Check(r.Context())
	if err != nil {
		s.logger.Warn("health check failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":          "healthy",
		"total_vectors":   rep.TotalVectors,
		"index_fullness":  rep.IndexFullness,
		"embedding_model": rep.EmbeddingModel,
		"version":         version.Version,
	})
}

// TestSearch handles GET /test: a fixed probe search through the full pipeline.
func (s *Server) TestSearch(w http.ResponseWriter, r *http.Request) {
	rep, err := s.health.SampleSearch(r.Context())
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rep)
}

// handleError maps a use case error to an HTTP response. The failure text is
// surfaced to the caller in both cases.
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrValidation) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Error("request failed",
		zap.String("path", r.URL.Path),
		zap.Error(err))
	writeError(w, http.StatusInternalServerError, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
