package feed

import (
	"testing"

	"github.com/mgalindo/wpeek/internal/wp"
)

func TestVisibleItems(t *testing.T) {
	news := wp.Term{ID: 10, Name: "News"}
	events := wp.Term{ID: 11, Name: "Events"}
	summer := wp.Term{ID: 20, Name: "Summer"}

	items := []wp.ContentItem{
		{ID: 1, Categories: []wp.Term{news}, Tags: []wp.Term{summer}},
		{ID: 2, Categories: []wp.Term{events}},
		{ID: 3, Categories: []wp.Term{news, events}},
		{ID: 4},
	}

	tests := []struct {
		name     string
		category string
		tag      string
		want     []int64
	}{
		{"no filters", FilterAll, FilterAll, []int64{1, 2, 3, 4}},
		{"category only", "10", FilterAll, []int64{1, 3}},
		{"tag only", FilterAll, "20", []int64{1}},
		{"category and tag", "10", "20", []int64{1}},
		{"mutually exclusive", "11", "20", nil},
		{"unknown term id", "999", FilterAll, nil},
		{"malformed id", "nope", FilterAll, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := State{Items: items, ActiveCategory: tt.category, ActiveTag: tt.tag}
			if got := ids(VisibleItems(s)); !equalIDs(got, tt.want) {
				t.Errorf("VisibleItems = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVisibleItemsUnfilteredSharesSlice(t *testing.T) {
	items := []wp.ContentItem{{ID: 1}}
	s := State{Items: items, ActiveCategory: FilterAll, ActiveTag: FilterAll}
	if got := VisibleItems(s); &got[0] != &items[0] {
		t.Error("unfiltered VisibleItems should return the backing slice, not a copy")
	}
}

func TestMergeTerms(t *testing.T) {
	seen := []wp.Term{{ID: 1, Name: "A"}}
	items := []wp.ContentItem{
		{Categories: []wp.Term{{ID: 2, Name: "B"}, {ID: 1, Name: "A"}}},
		{Categories: []wp.Term{{ID: 2, Name: "B"}, {ID: 3, Name: "C"}}},
	}

	merged := mergeTerms(seen, items, func(it wp.ContentItem) []wp.Term { return it.Categories })

	want := []int64{1, 2, 3}
	got := make([]int64, len(merged))
	for i, term := range merged {
		got[i] = term.ID
	}
	if !equalIDs(got, want) {
		t.Errorf("mergeTerms ids = %v, want %v", got, want)
	}
}

func TestStickyFirst(t *testing.T) {
	in := []wp.ContentItem{
		{ID: 1}, {ID: 2, Sticky: true}, {ID: 3}, {ID: 4, Sticky: true}, {ID: 5},
	}
	if got, want := ids(stickyFirst(in)), []int64{2, 4, 1, 3, 5}; !equalIDs(got, want) {
		t.Errorf("stickyFirst = %v, want %v", got, want)
	}
	if got := ids(in); !equalIDs(got, []int64{1, 2, 3, 4, 5}) {
		t.Errorf("stickyFirst mutated its input: %v", got)
	}
}
