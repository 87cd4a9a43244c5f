package feed

import (
	"context"
	"sync"

	"github.com/mgalindo/wpeek/internal/logger"
	"github.com/mgalindo/wpeek/internal/wp"
)

// stickyType is the only content type with sticky ordering semantics.
const stickyType = "posts"

// Client is the slice of the API client the loader needs.
type Client interface {
	ListContent(ctx context.Context, contentType string, query wp.ListQuery) (*wp.ListResult, error)
	Source() wp.Source
}

// Outcome reports what one effective LoadNextPage call did.
type Outcome struct {
	Added      int
	Total      int
	TotalPages int
	HasMore    bool
}

// Loader orchestrates page fetches for one feed. At most one fetch is in
// flight at a time; calls made while loading are dropped, not queued, so
// scroll-triggered and button-triggered loads coalesce for free.
type Loader struct {
	mu     sync.Mutex
	client Client
	state  State
	log    *logger.Logger

	sortDescending bool

	// gen is bumped by every Reset. An in-flight fetch that started under an
	// older generation must not merge its page into the new feed.
	gen int
}

// Options configures a new Loader.
type Options struct {
	ContentType    string
	PageSize       int
	SortDescending bool
	Logger         *logger.Logger
}

// NewLoader creates a loader bound to one client/source.
func NewLoader(client Client, opts Options) *Loader {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	contentType := opts.ContentType
	if contentType == "" {
		contentType = stickyType
	}
	return &Loader{
		client:         client,
		log:            log,
		sortDescending: opts.SortDescending,
		state: State{
			Source:         client.Source(),
			ContentType:    contentType,
			Cursor:         PageCursor{Page: 1, PageSize: wp.ClampPerPage(opts.PageSize)},
			HasMore:        true,
			ActiveCategory: FilterAll,
			ActiveTag:      FilterAll,
		},
	}
}

// Snapshot returns a copy of the current state. Slices are shared and must
// be treated as read-only by callers.
func (l *Loader) Snapshot() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Visible returns the filtered view of the loaded items.
func (l *Loader) Visible() []wp.ContentItem {
	return VisibleItems(l.Snapshot())
}

// LoadNextPage fetches the next page and merges it into the state. A call
// while a fetch is in flight, or after the last page, is a no-op returning
// (nil, nil). On failure the items are left untouched and the typed error is
// returned; the loading flag is always released. If the feed was reset while
// the fetch was in flight the stale page is discarded and the load is retried
// against the fresh state, since the reset's own load was dropped by the
// in-flight gate.
func (l *Loader) LoadNextPage(ctx context.Context) (*Outcome, error) {
	l.mu.Lock()
	if l.state.IsLoading || !l.state.HasMore {
		l.mu.Unlock()
		return nil, nil
	}
	l.state.IsLoading = true
	gen := l.gen
	contentType := l.state.ContentType
	query := wp.ListQuery{
		Page:           l.state.Cursor.Page,
		PerPage:        l.state.Cursor.PageSize,
		SortDescending: l.sortDescending,
		Search:         l.state.Search,
	}
	l.mu.Unlock()

	result, err := l.client.ListContent(ctx, contentType, query)

	l.mu.Lock()
	if l.gen != gen {
		l.state.IsLoading = false
		l.mu.Unlock()
		return l.LoadNextPage(ctx)
	}
	defer func() {
		l.state.IsLoading = false
		l.mu.Unlock()
	}()

	if err != nil {
		l.log.WithField("type", contentType).Warnf("load page %d: %v", query.Page, err)
		return nil, err
	}

	items := result.Items
	if contentType == stickyType {
		items = stickyFirst(items)
	}

	l.state.Items = append(l.state.Items, items...)
	l.state.Categories = mergeTerms(l.state.Categories, items, func(it wp.ContentItem) []wp.Term { return it.Categories })
	l.state.Tags = mergeTerms(l.state.Tags, items, func(it wp.ContentItem) []wp.Term { return it.Tags })
	l.state.Total = result.Total
	l.state.HasMore = l.state.Cursor.Page < result.TotalPages
	l.state.Cursor.Page++

	return &Outcome{
		Added:      len(items),
		Total:      result.Total,
		TotalPages: result.TotalPages,
		HasMore:    l.state.HasMore,
	}, nil
}

// Reset atomically clears the feed for a new content type: items, seen
// terms, and active filters go, the cursor returns to page one, and HasMore
// is re-armed. A partial reset is a correctness bug, so all of it happens
// under one lock. Bumping the generation invalidates any fetch still in
// flight, even one for the same type and page.
func (l *Loader) Reset(contentType string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	l.state.ContentType = contentType
	l.state.Items = nil
	l.state.Categories = nil
	l.state.Tags = nil
	l.state.ActiveCategory = FilterAll
	l.state.ActiveTag = FilterAll
	l.state.Cursor.Page = 1
	l.state.HasMore = true
	l.state.Total = 0
}

// ResetAndLoad resets to the given content type and fetches its first page.
func (l *Loader) ResetAndLoad(ctx context.Context, contentType string) (*Outcome, error) {
	l.Reset(contentType)
	return l.LoadNextPage(ctx)
}

// SetActiveCategory changes the client-side category filter. It never
// touches items or the cursor.
func (l *Loader) SetActiveCategory(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.ActiveCategory = normalizeFilter(id)
}

// SetActiveTag changes the client-side tag filter.
func (l *Loader) SetActiveTag(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.ActiveTag = normalizeFilter(id)
}

// SetSearch sets the free-text term used by subsequent fetches.
func (l *Loader) SetSearch(term string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.Search = term
}

// SetPageSize changes the page size for subsequent fetches, clamped to the
// API's accepted range.
func (l *Loader) SetPageSize(n int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.Cursor.PageSize = wp.ClampPerPage(n)
}

// SetSortDescending changes the server-side order for subsequent fetches.
// Already-loaded items are not refetched; display order is a render concern.
func (l *Loader) SetSortDescending(desc bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sortDescending = desc
}

func normalizeFilter(id string) string {
	if id == "" {
		return FilterAll
	}
	return id
}
