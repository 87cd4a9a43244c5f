// Package feed owns the content-loading state machine: one State per feed,
// mutated only by its Loader, filtered client-side without refetching.
package feed

import (
	"strconv"

	"github.com/mgalindo/wpeek/internal/wp"
)

// FilterAll is the sentinel meaning "no category/tag filter active".
const FilterAll = "all"

// PageCursor is the pagination position of a feed. Page advances by exactly
// one per successful fetch and never regresses except on reset.
type PageCursor struct {
	Page     int
	PageSize int
}

// State is the mutable aggregate for one feed. It is owned by a Loader;
// callers get copies via Loader.Snapshot and must treat the slices as
// read-only.
type State struct {
	Source      wp.Source
	ContentType string

	// Items in fetch order, which is not necessarily chronological.
	Items  []wp.ContentItem
	Cursor PageCursor

	HasMore   bool
	IsLoading bool

	// Total is the server-reported item count across all pages.
	Total int

	// Categories and Tags accumulate every term seen so far, deduped by id.
	Categories []wp.Term
	Tags       []wp.Term

	// ActiveCategory and ActiveTag are FilterAll or a decimal term id.
	ActiveCategory string
	ActiveTag      string

	// Search is the free-text term sent with each fetch.
	Search string
}

// VisibleItems derives the visible subset of s.Items from the active
// category and tag filters. It is a pure function: it never fetches, never
// mutates state, and has no effect on pagination.
func VisibleItems(s State) []wp.ContentItem {
	if s.ActiveCategory == FilterAll && s.ActiveTag == FilterAll {
		return s.Items
	}
	visible := make([]wp.ContentItem, 0, len(s.Items))
	for _, item := range s.Items {
		if matchesFilters(item, s.ActiveCategory, s.ActiveTag) {
			visible = append(visible, item)
		}
	}
	return visible
}

func matchesFilters(item wp.ContentItem, category, tag string) bool {
	if category != FilterAll {
		id, err := strconv.ParseInt(category, 10, 64)
		if err != nil || !item.HasCategory(id) {
			return false
		}
	}
	if tag != FilterAll {
		id, err := strconv.ParseInt(tag, 10, 64)
		if err != nil || !item.HasTag(id) {
			return false
		}
	}
	return true
}

// mergeTerms appends terms from items that have not been seen yet, deduped
// by id, preserving first-seen order.
func mergeTerms(seen []wp.Term, items []wp.ContentItem, pick func(wp.ContentItem) []wp.Term) []wp.Term {
	known := make(map[int64]bool, len(seen))
	for _, t := range seen {
		known[t.ID] = true
	}
	for _, item := range items {
		for _, t := range pick(item) {
			if known[t.ID] {
				continue
			}
			known[t.ID] = true
			seen = append(seen, t)
		}
	}
	return seen
}

// stickyFirst stably partitions items so sticky ones come first, preserving
// relative order within each partition. It is applied per fetched page, not
// to the accumulated list; sticky ordering is therefore only locally correct
// per page, which matches the behavior the viewer has always had.
func stickyFirst(items []wp.ContentItem) []wp.ContentItem {
	sorted := make([]wp.ContentItem, 0, len(items))
	for _, item := range items {
		if item.Sticky {
			sorted = append(sorted, item)
		}
	}
	for _, item := range items {
		if !item.Sticky {
			sorted = append(sorted, item)
		}
	}
	return sorted
}
