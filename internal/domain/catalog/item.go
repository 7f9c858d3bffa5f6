// Package catalog holds the client-facing projections of catalog records and
// the static bucket templates used for curated discovery shelves.
package catalog

import (
	"strings"

	"github.com/myuze/searchapi/internal/domain/search/result"
)

// Item is the search-path projection of a match. Multi-valued metadata fields
// (language, category_levels, zoneid) are stored comma-joined in the index
// and restored to slices here. Timestamps and numeric-ish fields are copied
// through verbatim as stored.
type Item struct {
	PodcastID      string   `json:"podcast_id"`
	Score          float64  `json:"score"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Ptype          string   `json:"ptype"`
	Language       []string `json:"language"`
	Category       string   `json:"category"`
	CategoryLevels []string `json:"category_levels"`
	ZoneID         []string `json:"zoneid"`
	IsBillable     string   `json:"is_billable"`
	EpisodeCount   string   `json:"episode_count"`
	AddedOn        string   `json:"ADDED_ON"`
	UpdatedAt      string   `json:"updated_at"`
}

// ItemFromMatch projects a raw match into the search result shape.
func ItemFromMatch(m *result.Match) Item {
	return Item{
		PodcastID:      m.Meta("podcast_id"),
		Score:          m.Score(),
		Title:          m.Meta("title"),
		Description:    m.Meta("description"),
		Ptype:          m.Meta("ptype"),
		Language:       splitList(m.Meta("language")),
		Category:       m.Meta("category"),
		CategoryLevels: splitList(m.Meta("category_levels")),
		ZoneID:         splitList(m.Meta("zoneid")),
		IsBillable:     m.Meta("is_billable"),
		EpisodeCount:   m.Meta("episode_count"),
		AddedOn:        m.Meta("ADDED_ON"),
		UpdatedAt:      m.Meta("updated_at"),
	}
}

// BucketItem is the reduced projection used by bucket generation. Language
// stays in its stored comma-joined form on this path.
type BucketItem struct {
	PodcastID string  `json:"podcast_id"`
	Title     string  `json:"title"`
	Ptype     string  `json:"ptype"`
	Language  string  `json:"language"`
	Category  string  `json:"category"`
	Score     float64 `json:"score"`
}

// BucketItemFromMatch projects a raw match into the bucket item shape.
func BucketItemFromMatch(m *result.Match) BucketItem {
	return BucketItem{
		PodcastID: m.Meta("podcast_id"),
		Title:     m.Meta("title"),
		Ptype:     m.Meta("ptype"),
		Language:  m.Meta("language"),
		Category:  m.Meta("category"),
		Score:     m.Score(),
	}
}

// splitList splits a comma-joined stored value into an ordered slice.
// An absent or empty value yields an empty slice, never [""]. Substrings are
// not trimmed; the stored form is authoritative.
func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
