package result

// Match is one raw hit from the vector index: vector id, similarity score
// (higher is more relevant), and the flat metadata stored alongside the
// vector. Any metadata field may be absent in a given record; readers must
// degrade to an empty value, never error.
type Match struct {
	id       string
	score    float64
	metadata map[string]string
}

// New creates a match.
func New(id string, score float64, metadata map[string]string) Match {
	return Match{id: id, score: score, metadata: metadata}
}

// ID returns the vector identifier.
func (m *Match) ID() string { return m.id }

// Score returns the similarity score.
func (m *Match) Score() float64 { return m.score }

// Metadata returns the flat metadata mapping.
func (m *Match) Metadata() map[string]string { return m.metadata }

// Meta returns the named metadata field, or "" when absent.
func (m *Match) Meta(field string) string { return m.metadata[field] }
