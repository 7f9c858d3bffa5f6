package catalog

import "github.com/myuze/searchapi/internal/domain/search/predicate"

// DefaultMarket is used when a requested market has no template list.
const DefaultMarket = "IN"

// BucketTemplate is one fixed curated query driving a discovery shelf.
// Templates are defined at process start and immutable.
type BucketTemplate struct {
	Name      string
	Type      string
	Query     string
	Filter    *predicate.Predicate
	Reasoning string
}

func ptypeEq(v string) *predicate.Predicate {
	return predicate.New([]predicate.Condition{predicate.Eq("ptype", v)}, nil)
}

var templatesByMarket = map[string][]BucketTemplate{
	"IN": {
		{
			Name:      "Top Hindi Vodacasts",
			Type:      "Vodacast",
			Query:     "Hindi Bollywood entertainment celebrity video podcasts India",
			Filter:    ptypeEq("Vodacast"),
			Reasoning: "Hindi Vodacasts have highest engagement in India market",
		},
		{
			Name:      "Cricket Insider Talk",
			Type:      "Vodacast",
			Query:     "Cricket IPL T20 sports analysis commentary India",
			Filter:    ptypeEq("Vodacast"),
			Reasoning: "Cricket is the most popular sport in India",
		},
		{
			Name:      "Startup Stories India",
			Type:      "Show",
			Query:     "Business entrepreneur startup founder success stories India",
			Filter:    ptypeEq("Show"),
			Reasoning: "Strong startup ecosystem interest",
		},
		{
			Name:      "New Hindi Podcasts",
			Type:      "Podcast",
			Query:     "Hindi entertainment news talk podcasts recently added",
			Filter:    ptypeEq("Podcast"),
			Reasoning: "Recency-driven discovery for Hindi listeners",
		},
		{
			Name:      "Mythology Audiobooks India",
			Type:      "Book",
			Query:     "Indian mythology Ramayana Mahabharata Hindu epics audiobooks",
			Filter:    ptypeEq("Book"),
			Reasoning: "Cultural storytelling interest",
		},
		{
			Name:      "Comedy & Standup Shows",
			Type:      "Vodacast",
			Query:     "Hindi comedy standup funny entertainment India",
			Filter:    ptypeEq("Vodacast"),
			Reasoning: "Growing comedy scene in India",
		},
		{
			Name:      "Technology & Gadgets",
			Type:      "Show",
			Query:     "Technology mobile phones gadgets tech reviews India",
			Filter:    ptypeEq("Show"),
			Reasoning: "High tech adoption market",
		},
	},
	"PK": {
		{
			Name:      "Top Urdu Vodacasts",
			Type:      "Vodacast",
			Query:     "Urdu entertainment talk video podcasts Pakistan",
			Filter:    ptypeEq("Vodacast"),
			Reasoning: "Urdu is primary language in Pakistan",
		},
		{
			Name:      "Cricket Talk Pakistan",
			Type:      "Podcast",
			Query:     "Cricket PSL Pakistan sports commentary Urdu",
			Filter:    ptypeEq("Podcast"),
			Reasoning: "Cricket dominates sports interest",
		},
		{
			Name:      "Islamic Content",
			Type:      "Podcast",
			Query:     "Islamic Quran Hadith religious spiritual Pakistan Urdu",
			Filter:    ptypeEq("Podcast"),
			Reasoning: "Strong religious content interest",
		},
	},
	"US": {
		{
			Name:      "Top English Podcasts",
			Type:      "Podcast",
			Query:     "English talk entertainment news podcasts USA",
			Filter:    ptypeEq("Podcast"),
			Reasoning: "English is primary language",
		},
	},
}

// TemplatesForMarket returns the ordered template list for a market, falling
// back to the default market for unknown codes.
func TemplatesForMarket(country string) []BucketTemplate {
	if ts, ok := templatesByMarket[country]; ok {
		return ts
	}
	return templatesByMarket[DefaultMarket]
}
