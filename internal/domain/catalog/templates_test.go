package catalog

import "testing"

func TestTemplatesForMarket_Ordering(t *testing.T) {
	ts := TemplatesForMarket("IN")
	if len(ts) != 7 {
		t.Fatalf("expected 7 IN templates, got %d", len(ts))
	}
	if ts[0].Name != "Top Hindi Vodacasts" {
		t.Errorf("first IN template = %q", ts[0].Name)
	}
	if ts[1].Name != "Cricket Insider Talk" {
		t.Errorf("second IN template = %q", ts[1].Name)
	}
}

func TestTemplatesForMarket_KnownMarkets(t *testing.T) {
	if got := len(TemplatesForMarket("PK")); got != 3 {
		t.Errorf("expected 3 PK templates, got %d", got)
	}
	if got := len(TemplatesForMarket("US")); got != 1 {
		t.Errorf("expected 1 US template, got %d", got)
	}
}

func TestTemplatesForMarket_UnknownFallsBackToDefault(t *testing.T) {
	ts := TemplatesForMarket("ZZ")
	want := TemplatesForMarket(DefaultMarket)
	if len(ts) != len(want) || ts[0].Name != want[0].Name {
		t.Errorf("unknown market must fall back to %s templates", DefaultMarket)
	}
}

func TestTemplates_CarryPtypePredicates(t *testing.T) {
	for market, ts := range templatesByMarket {
		for _, tpl := range ts {
			if tpl.Filter == nil || len(tpl.Filter.Must()) != 1 {
				t.Errorf("%s/%s: expected a single ptype condition", market, tpl.Name)
				continue
			}
			c := tpl.Filter.Must()[0]
			if c.Field() != "ptype" || !c.IsEq() || c.Values()[0] != tpl.Type {
				t.Errorf("%s/%s: filter %+v does not pin ptype to %q", market, tpl.Name, c, tpl.Type)
			}
			if tpl.Query == "" || tpl.Reasoning == "" {
				t.Errorf("%s/%s: incomplete template", market, tpl.Name)
			}
		}
	}
}
