package wp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mgalindo/wpeek/internal/logger"
)

const (
	// MinPerPage and MaxPerPage bound the page size accepted by the API.
	// Requests are clamped into this range before anything is sent.
	MinPerPage = 1
	MaxPerPage = 20

	defaultTimeout = 15 * time.Second

	// nonceHeader carries the optional session token. Requests without it
	// are still issued as anonymous public reads.
	nonceHeader = "X-WP-Nonce"

	totalHeader      = "X-WP-Total"
	totalPagesHeader = "X-WP-TotalPages"
)

// excludedTypes are platform-internal content types the viewer must never
// offer for browsing, no matter what discovery returns.
var excludedTypes = map[string]bool{
	"nav_menu_item":    true,
	"wp_template":      true,
	"wp_template_part": true,
	"wp_global_styles": true,
	"wp_navigation":    true,
	"wp_font_family":   true,
	"wp_font_face":     true,
	"blocks":           true,
	"block-types":      true,
}

// fallbackTypes are offered when discovery fails entirely.
var fallbackTypes = []ContentType{
	{Name: "posts", Label: "Posts", RestBase: "posts"},
	{Name: "pages", Label: "Pages", RestBase: "pages"},
	{Name: "media", Label: "Media", RestBase: "media"},
}

// ListQuery carries the per-request knobs for a collection fetch.
type ListQuery struct {
	Page           int
	PerPage        int
	SortDescending bool
	Search         string
}

// ListResult is one page of content plus the server's pagination totals.
type ListResult struct {
	Items      []ContentItem
	Total      int
	TotalPages int
}

// Client talks to one API source. It is safe for concurrent use; the only
// mutable state is the discovered type-to-REST-base mapping.
type Client struct {
	http   *resty.Client
	source Source
	log    *logger.Logger

	mu    sync.Mutex
	bases map[string]string // content type name -> REST base
}

// Option configures a Client.
type Option func(*Client)

// WithNonce sets the session nonce sent on every request.
func WithNonce(nonce string) Option {
	return func(c *Client) {
		if nonce != "" {
			c.http.SetHeader(nonceHeader, nonce)
		}
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.SetTimeout(d)
		}
	}
}

// WithLogger sets the structured logger for request failures.
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a client for the given source.
func New(source Source, opts ...Option) *Client {
	httpClient := resty.New().
		SetTimeout(defaultTimeout).
		SetHeader("Accept", "application/json")

	c := &Client{
		http:   httpClient,
		source: source,
		log:    logger.Discard(),
		bases:  map[string]string{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Source returns the source this client is bound to.
func (c *Client) Source() Source {
	return c.source
}

// ClampPerPage bounds a page size into the accepted range.
func ClampPerPage(n int) int {
	if n < MinPerPage {
		return MinPerPage
	}
	if n > MaxPerPage {
		return MaxPerPage
	}
	return n
}

// ListContent fetches one page of the given content type. Non-success
// statuses and malformed bodies come back as typed errors; the caller decides
// whether to render an empty list or surface a banner.
func (c *Client) ListContent(ctx context.Context, contentType string, query ListQuery) (*ListResult, error) {
	op := "list " + contentType
	if c.source.BaseURL == "" {
		return nil, &Error{Kind: ErrConfigurationMissing, Op: op}
	}
	if contentType == "" {
		return nil, &Error{Kind: ErrInvalidContentType, Op: op}
	}

	restBase := c.RestBase(contentType)
	order := "asc"
	if query.SortDescending {
		order = "desc"
	}
	page := query.Page
	if page < 1 {
		page = 1
	}

	params := map[string]string{
		"_embed":   "true",
		"per_page": strconv.Itoa(ClampPerPage(query.PerPage)),
		"page":     strconv.Itoa(page),
		"orderby":  "date",
		"order":    order,
	}
	if restBase == "media" {
		params["media_type"] = "image"
	} else {
		params["acf"] = "1"
	}
	if s := strings.TrimSpace(query.Search); s != "" {
		params["search"] = s
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(c.source.BaseURL + "/" + restBase)
	if err != nil {
		c.log.WithField("url", c.source.BaseURL+"/"+restBase).Warnf("request failed: %v", err)
		return nil, unreachable(op, err)
	}
	if resp.IsError() {
		c.log.WithField("status", resp.StatusCode()).Warnf("%s failed", op)
		return nil, httpError(op, resp.StatusCode())
	}

	items, err := decodeItems(resp.Body())
	if err != nil {
		c.log.Warnf("%s: decoding response: %v", op, err)
		return nil, badFormat(op, err)
	}

	total := headerInt(resp, totalHeader, len(items))
	totalPages := headerInt(resp, totalPagesHeader, 1)

	return &ListResult{Items: items, Total: total, TotalPages: totalPages}, nil
}

// GetItem fetches the full single-item representation with embedded
// relations.
func (c *Client) GetItem(ctx context.Context, contentType string, id int64) (*ContentItem, error) {
	op := fmt.Sprintf("get %s/%d", contentType, id)
	if c.source.BaseURL == "" {
		return nil, &Error{Kind: ErrConfigurationMissing, Op: op}
	}

	restBase := c.RestBase(contentType)
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("_embed", "true").
		Get(fmt.Sprintf("%s/%s/%d", c.source.BaseURL, restBase, id))
	if err != nil {
		return nil, unreachable(op, err)
	}
	if resp.IsError() {
		return nil, httpError(op, resp.StatusCode())
	}

	item, err := decodeItem(resp.Body())
	if err != nil {
		return nil, badFormat(op, err)
	}
	return &item, nil
}

// ListContentTypes discovers the browsable content types. System/internal
// types and types without a REST base are filtered out; on any failure the
// basic posts/pages/media set is returned along with the error so callers
// can keep going.
func (c *Client) ListContentTypes(ctx context.Context) ([]ContentType, error) {
	const op = "list types"
	if c.source.BaseURL == "" {
		return fallback(c), &Error{Kind: ErrConfigurationMissing, Op: op}
	}

	resp, err := c.http.R().
		SetContext(ctx).
		Get(TypesRoot(c.source.BaseURL) + "/types")
	if err != nil {
		c.log.Warnf("%s: %v", op, err)
		return fallback(c), unreachable(op, err)
	}
	if resp.IsError() {
		c.log.WithField("status", resp.StatusCode()).Warnf("%s failed", op)
		return fallback(c), httpError(op, resp.StatusCode())
	}

	var raw map[string]struct {
		Name     string `json:"name"`
		RestBase string `json:"rest_base"`
	}
	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		return fallback(c), badFormat(op, err)
	}

	types := make([]ContentType, 0, len(raw))
	for name, t := range raw {
		if t.RestBase == "" || excludedTypes[name] || excludedTypes[t.RestBase] {
			continue
		}
		types = append(types, ContentType{Name: name, Label: t.Name, RestBase: t.RestBase})
	}
	sortTypes(types)

	c.mu.Lock()
	for _, t := range types {
		c.bases[t.Name] = t.RestBase
	}
	c.mu.Unlock()

	return types, nil
}

// RestBase resolves a content type name to its REST base, falling back to
// the name itself when the type was never discovered.
func (c *Client) RestBase(contentType string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if base, ok := c.bases[contentType]; ok {
		return base
	}
	return contentType
}

func fallback(c *Client) []ContentType {
	c.mu.Lock()
	for _, t := range fallbackTypes {
		c.bases[t.Name] = t.RestBase
	}
	c.mu.Unlock()
	return fallbackTypes
}

// sortTypes keeps posts first, then pages, then the rest alphabetically, so
// the navigation order is stable across discoveries.
func sortTypes(types []ContentType) {
	rank := func(name string) int {
		switch name {
		case "post", "posts":
			return 0
		case "page", "pages":
			return 1
		default:
			return 2
		}
	}
	for i := 1; i < len(types); i++ {
		for j := i; j > 0; j-- {
			a, b := types[j-1], types[j]
			if rank(a.Name) < rank(b.Name) || (rank(a.Name) == rank(b.Name) && a.Name <= b.Name) {
				break
			}
			types[j-1], types[j] = b, a
		}
	}
}

func decodeItems(body []byte) ([]ContentItem, error) {
	var rawItems []json.RawMessage
	if err := json.Unmarshal(body, &rawItems); err != nil {
		return nil, err
	}
	items := make([]ContentItem, 0, len(rawItems))
	for _, raw := range rawItems {
		item, err := decodeItem(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func headerInt(resp *resty.Response, name string, def int) int {
	if v, err := strconv.Atoi(resp.Header().Get(name)); err == nil && v > 0 {
		return v
	}
	return def
}
