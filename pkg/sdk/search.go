package tripdex

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// headerSearchPartial mirrors the server header naming failed collections.
const headerSearchPartial = "X-Search-Partial"

// Search runs the merged destination and package search.
// A blank query returns an empty result without a round trip.
func (c *Client) Search(ctx context.Context, q string) (res SearchResult, err error) {
	if strings.TrimSpace(q) == "" {
		return SearchResult{}, nil
	}
	start := time.Now()
	defer func() { c.obs.observe("search", start, err) }()

	var recs []Record
	h, err := c.do(ctx, http.MethodGet, "/api/search", url.Values{"q": {q}}, nil, &recs)
	if err != nil {
		return SearchResult{}, err
	}
	return SearchResult{Records: recs, Partial: partial(h)}, nil
}

// Suggest returns the ranked suggestion list for q. limit <= 0 lets the
// server pick its default.
func (c *Client) Suggest(ctx context.Context, q string, limit int) (res SearchResult, err error) {
	if strings.TrimSpace(q) == "" {
		return SearchResult{}, nil
	}
	start := time.Now()
	defer func() { c.obs.observe("suggest", start, err) }()

	v := url.Values{"q": {q}}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	var recs []Record
	h, err := c.do(ctx, http.MethodGet, "/api/search/suggestions", v, nil, &recs)
	if err != nil {
		return SearchResult{}, err
	}
	return SearchResult{Records: recs, Partial: partial(h)}, nil
}

func partial(h http.Header) []string {
	raw := h.Get(headerSearchPartial)
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
