package tripdex

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

func (o ListOptions) values() url.Values {
	v := url.Values{}
	if o.Query != "" {
		v.Set("q", o.Query)
	}
	if o.SortBy != "" {
		v.Set("sortBy", o.SortBy)
	}
	if o.Category != "" {
		v.Set("category", o.Category)
	}
	if o.Type != "" {
		v.Set("type", o.Type)
	}
	return v
}

// ListDestinations returns destinations matching opts, newest first unless
// opts.SortBy says otherwise.
func (c *Client) ListDestinations(ctx context.Context, opts ListOptions) (out []Destination, err error) {
	start := time.Now()
	defer func() { c.obs.observe("list_destinations", start, err) }()

	_, err = c.do(ctx, http.MethodGet, "/api/destinations", opts.values(), nil, &out)
	return out, err
}

// GetDestination fetches one destination by id.
func (c *Client) GetDestination(ctx context.Context, id string) (out Destination, err error) {
	start := time.Now()
	defer func() { c.obs.observe("get_destination", start, err) }()

	esc, err := escapeID(id)
	if err != nil {
		return Destination{}, err
	}
	_, err = c.do(ctx, http.MethodGet, "/api/destinations/"+esc, nil, nil, &out)
	return out, err
}

// ListPackages returns packages matching opts.
func (c *Client) ListPackages(ctx context.Context, opts ListOptions) (out []Package, err error) {
	start := time.Now()
	defer func() { c.obs.observe("list_packages", start, err) }()

	_, err = c.do(ctx, http.MethodGet, "/api/packages", opts.values(), nil, &out)
	return out, err
}

// GetPackage fetches one package by id.
func (c *Client) GetPackage(ctx context.Context, id string) (out Package, err error) {
	start := time.Now()
	defer func() { c.obs.observe("get_package", start, err) }()

	esc, err := escapeID(id)
	if err != nil {
		return Package{}, err
	}
	_, err = c.do(ctx, http.MethodGet, "/api/packages/"+esc, nil, nil, &out)
	return out, err
}

// CreatePackage adds a package. Requires an admin token.
func (c *Client) CreatePackage(ctx context.Context, in PackageInput) (out Package, err error) {
	start := time.Now()
	defer func() { c.obs.observe("create_package", start, err) }()

	_, err = c.do(ctx, http.MethodPost, "/api/packages", nil, in, &out)
	return out, err
}

// UpdatePackage applies a partial update. Requires an admin token.
func (c *Client) UpdatePackage(ctx context.Context, id string, p PackagePatch) (out Package, err error) {
	start := time.Now()
	defer func() { c.obs.observe("update_package", start, err) }()

	esc, err := escapeID(id)
	if err != nil {
		return Package{}, err
	}
	_, err = c.do(ctx, http.MethodPut, "/api/packages/"+esc, nil, p, &out)
	return out, err
}

// DeletePackage removes a package. Requires an admin token.
func (c *Client) DeletePackage(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("delete_package", start, err) }()

	esc, err := escapeID(id)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodDelete, "/api/packages/"+esc, nil, nil, nil)
	return err
}
