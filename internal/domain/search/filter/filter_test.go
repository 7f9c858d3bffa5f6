package filter

import (
	"testing"

	"github.com/myuze/searchapi/internal/domain/search/predicate"
)

func TestTranslate_EmptyFilterIsNil(t *testing.T) {
	if p := (Filter{}).Translate(); p != nil {
		t.Fatalf("empty filter must translate to nil, got %+v", p)
	}
}

func TestTranslate_EmptyPtypeSliceOmitted(t *testing.T) {
	if p := (Filter{Ptype: []string{}}).Translate(); p != nil {
		t.Fatalf("empty ptype list must be omitted entirely, got %+v", p)
	}
}

func TestTranslate_SinglePtypeIsEquality(t *testing.T) {
	p := Filter{Ptype: []string{"Vodacast"}}.Translate()
	if p == nil {
		t.Fatal("expected predicate")
	}
	if len(p.Must()) != 1 || len(p.Any()) != 0 {
		t.Fatalf("unexpected groups: must=%d any=%d", len(p.Must()), len(p.Any()))
	}
	c := p.Must()[0]
	if !c.IsEq() || c.Field() != "ptype" || c.Values()[0] != "Vodacast" {
		t.Errorf("expected ptype equality, got %+v", c)
	}
}

func TestTranslate_MultiplePtypesAreMembership(t *testing.T) {
	p := Filter{Ptype: []string{"Vodacast", "Show", "Podcast"}}.Translate()
	if p == nil {
		t.Fatal("expected predicate")
	}
	c := p.Must()[0]
	if c.IsEq() {
		t.Error("multi-value ptype must be a membership condition")
	}
	got := map[string]bool{}
	for _, v := range c.Values() {
		got[v] = true
	}
	for _, want := range []string{"Vodacast", "Show", "Podcast"} {
		if !got[want] {
			t.Errorf("membership set missing %q", want)
		}
	}
	if len(c.Values()) != 3 {
		t.Errorf("expected exactly 3 values, got %d", len(c.Values()))
	}
}

func TestTranslate_CountryIsZoneDisjunction(t *testing.T) {
	p := Filter{Country: "IN"}.Translate()
	if p == nil {
		t.Fatal("expected predicate")
	}
	if len(p.Must()) != 0 || len(p.Any()) != 2 {
		t.Fatalf("unexpected groups: must=%d any=%d", len(p.Must()), len(p.Any()))
	}
	ww, cc := p.Any()[0], p.Any()[1]
	if ww.Field() != "zoneid" || ww.Values()[0] != WorldwideZone {
		t.Errorf("first branch must match the worldwide sentinel, got %+v", ww)
	}
	if cc.Field() != "zoneid" || cc.Values()[0] != "IN" {
		t.Errorf("second branch must match the country code, got %+v", cc)
	}
}

// The zone predicate checks exact equality against the stored comma-joined
// zone string. A record zoned "IN,US" therefore does not match country "IN".
// This documents intended current behavior, not a bug to fix silently.
func TestTranslate_CountryExactEquality(t *testing.T) {
	p := Filter{Country: "IN"}.Translate()
	for _, c := range p.Any() {
		if !c.IsEq() {
			t.Errorf("zone branches must be exact equality, got %+v", c)
		}
		if v := c.Values()[0]; v == "IN,US" {
			t.Errorf("predicate must target the bare country code, got %q", v)
		}
	}
}

func TestTranslate_Monetization(t *testing.T) {
	p := Filter{Monetization: []string{"free", "premium"}}.Translate()
	if p == nil {
		t.Fatal("expected predicate")
	}
	c := p.Must()[0]
	if c.Field() != "is_billable" || len(c.Values()) != 2 {
		t.Errorf("expected is_billable membership, got %+v", c)
	}

	if p := (Filter{Monetization: []string{}}).Translate(); p != nil {
		t.Errorf("empty monetization list must be omitted, got %+v", p)
	}
}

func TestTranslate_LanguageNotTranslated(t *testing.T) {
	if p := (Filter{Language: []string{"hi", "en"}}).Translate(); p != nil {
		t.Fatalf("language is not part of the index predicate, got %+v", p)
	}
}

func TestTranslate_DimensionsCombine(t *testing.T) {
	p := Filter{
		Ptype:        []string{"Vodacast"},
		Country:      "PK",
		Monetization: []string{"premium"},
	}.Translate()
	if p == nil {
		t.Fatal("expected predicate")
	}
	if len(p.Must()) != 2 {
		t.Errorf("expected ptype and is_billable in must group, got %d", len(p.Must()))
	}
	if len(p.Any()) != 2 {
		t.Errorf("expected zone disjunction, got %d", len(p.Any()))
	}
	var _ *predicate.Predicate = p
}
