// Package filter holds the client-facing search filter and its translation
// into the vector index's predicate dialect.
package filter

import "github.com/myuze/searchapi/internal/domain/search/predicate"

// WorldwideZone is the sentinel zone value marking content available in every market.
const WorldwideZone = "WorldWide"

// Index schema field names touched by filter translation.
const (
	fieldPtype    = "ptype"
	fieldZone     = "zoneid"
	fieldBillable = "is_billable"
)

// Filter is the client-facing search filter. Every field is optional; a zero
// Filter constrains nothing. Language is part of the client contract but is
// not yet backed by an index predicate.
type Filter struct {
	Ptype        []string `json:"ptype,omitempty"`
	Country      string   `json:"country,omitempty"`
	Language     []string `json:"language,omitempty"`
	Monetization []string `json:"monetization,omitempty"`
}

// Translate maps the filter onto the index predicate dialect. Dimensions
// combine by AND. Returns nil when nothing is constrained, so no filter at
// all reaches the index.
func (f Filter) Translate() *predicate.Predicate {
	var must, any []predicate.Condition

	switch {
	case len(f.Ptype) == 1:
		must = append(must, predicate.Eq(fieldPtype, f.Ptype[0]))
	case len(f.Ptype) > 1:
		must = append(must, predicate.In(fieldPtype, f.Ptype...))
	}

	if f.Country != "" {
		// Exact equality against the stored zone value. zoneid is kept
		// comma-joined in the index, so a record zoned "IN,US" is a single
		// value and will not match country "IN". Known precision gap.
		any = append(any,
			predicate.Eq(fieldZone, WorldwideZone),
			predicate.Eq(fieldZone, f.Country),
		)
	}

	if len(f.Monetization) > 0 {
		must = append(must, predicate.In(fieldBillable, f.Monetization...))
	}

	return predicate.New(must, any)
}
