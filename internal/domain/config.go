package domain

// KeyPrefix namespaces every key this service writes (embedding cache).
// Catalog documents live under the same prefix but are written by the
// ingestion pipeline, not by this service.
const KeyPrefix = "myuze:"

// IndexStats are the summary statistics the vector index reports for diagnostics.
type IndexStats struct {
	TotalVectors  int64
	IndexFullness float64
}
