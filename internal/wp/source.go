package wp

import "strings"

// Source identifies one API endpoint a feed can be pointed at.
type Source struct {
	ID      string
	Label   string
	BaseURL string // full collection root, e.g. https://example.com/wp-json/wp/v2
}

// Well-known source ids.
const (
	SourceCurrent = "current"
	SourceParent  = "parent"
	SourceCustom  = "custom"
)

// Registry holds the fixed set of selectable sources plus an optional
// user-supplied custom URL. Changing the selection is an explicit user action
// that resets the feed.
type Registry struct {
	current Source
	parent  Source
	custom  Source
}

// NewRegistry builds the registry from the configured site base URL. The
// parent source is derived by dropping the site's last path segment, which
// maps a subsite API base to its parent install.
func NewRegistry(baseURL string) *Registry {
	base := strings.TrimSuffix(baseURL, "/")
	return &Registry{
		current: Source{ID: SourceCurrent, Label: "Current Site", BaseURL: base},
		parent:  Source{ID: SourceParent, Label: "Parent Site", BaseURL: ParentBase(base)},
	}
}

// SetCustomURL records the user-supplied custom endpoint.
func (r *Registry) SetCustomURL(url string) {
	r.custom = Source{ID: SourceCustom, Label: "Custom URL", BaseURL: strings.TrimSuffix(strings.TrimSpace(url), "/")}
}

// Resolve returns the source for the given id. Unknown ids and a custom
// selection without a URL fall back to the current site.
func (r *Registry) Resolve(id string) Source {
	switch id {
	case SourceParent:
		return r.parent
	case SourceCustom:
		if r.custom.BaseURL != "" {
			return r.custom
		}
	}
	return r.current
}

// Sources lists the selectable sources in presentation order. The custom
// entry appears even when no URL is set yet so it can be offered for input.
func (r *Registry) Sources() []Source {
	custom := r.custom
	if custom.ID == "" {
		custom = Source{ID: SourceCustom, Label: "Custom URL"}
	}
	return []Source{r.current, r.parent, custom}
}

// ParentBase rewrites a /wp-json/wp/v2 base so it points at the parent site:
// the API suffix is stripped, the last remaining path segment dropped, and
// the suffix re-applied.
func ParentBase(base string) string {
	const apiSuffix = "/wp-json/wp/v2"
	root := strings.TrimSuffix(base, apiSuffix)
	if idx := strings.LastIndex(root, "/"); idx > len("https://") {
		root = root[:idx]
	}
	return root + apiSuffix
}

// TypesRoot returns the namespace root used for content-type discovery: the
// collection base without its trailing /wp/v2 segment.
func TypesRoot(base string) string {
	return strings.TrimSuffix(strings.TrimSuffix(base, "/"), "/wp/v2")
}
