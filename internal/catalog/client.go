package catalog

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"resty.dev/v3"
)

const (
	clientName    = "SouqCouch"
	clientVersion = "0.1.0"
)

// Client talks to the marketplace REST API.
type Client struct {
	http    *resty.Client
	baseURL string
}

func normalizeURL(baseURL string) string {
	baseURL = strings.TrimSpace(baseURL)
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}
	return strings.TrimRight(baseURL, "/")
}

func NewClient(baseURL string) *Client {
	baseURL = normalizeURL(baseURL)
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15*time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(time.Second).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", clientName+"/"+clientVersion)

	return &Client{http: c, baseURL: baseURL}
}

// Categories returns the top-level categories for the given locale.
// The locale is passed through so the API can pre-sort by localized name.
func (c *Client) Categories(ctx context.Context, locale string) ([]Category, error) {
	var out struct {
		Categories []Category `json:"categories"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("locale", locale).
		SetResult(&out).
		Get("/api/v1/categories")
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch categories: %d %s", resp.StatusCode(), resp.Status())
	}
	return out.Categories, nil
}

// Listings returns listings filtered by category slug, plus the total count.
// An empty slug returns the newest listings across all categories.
func (c *Client) Listings(ctx context.Context, slug, locale string, limit int) ([]Listing, int, error) {
	var out struct {
		Listings []Listing `json:"listings"`
		Total    int       `json:"total"`
	}
	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("locale", locale).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&out)
	if slug != "" {
		req.SetQueryParam("category", slug)
	}
	resp, err := req.Get("/api/v1/listings")
	if err != nil {
		return nil, 0, fmt.Errorf("fetch listings: %w", err)
	}
	if resp.IsError() {
		return nil, 0, fmt.Errorf("fetch listings: %d %s", resp.StatusCode(), resp.Status())
	}
	return out.Listings, out.Total, nil
}

// Listing fetches one listing by id.
func (c *Client) Listing(ctx context.Context, id string) (*Listing, error) {
	var out Listing
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/v1/listings/" + id)
	if err != nil {
		return nil, fmt.Errorf("fetch listing %s: %w", id, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch listing %s: %d %s", id, resp.StatusCode(), resp.Status())
	}
	return &out, nil
}

// ImageURL resolves an API-relative image path to an absolute URL.
// Absolute URLs pass through, empty paths stay empty.
func (c *Client) ImageURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}
