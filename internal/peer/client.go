package peer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds every peer call. The consistency model is
// degrade-on-failure, so a slow peer should turn into a soft failure
// rather than hold the request thread indefinitely.
const DefaultTimeout = 5 * time.Second

// Lookup is the capability the orchestrators use to ask a peer service
// about related entities. Implementations must never return an error:
// any failure is absorbed into a false/nil result.
type Lookup interface {
	// CheckExists asks a peer's validate endpoint whether a resource
	// exists. Unreachable peer means false.
	CheckExists(ctx context.Context, service, path string) bool

	// Fetch retrieves a single resource as a generic field map, or nil
	// on any failure.
	Fetch(ctx context.Context, service, path string) map[string]interface{}

	// FetchList retrieves a resource collection as generic field maps,
	// or nil on any failure.
	FetchList(ctx context.Context, service, path string) []map[string]interface{}

	// Notify POSTs a side effect to a peer (capacity adjustments,
	// cascade cleanups). Returns whether the peer accepted it.
	Notify(ctx context.Context, service, path string) bool
}

// Client is the HTTP implementation of Lookup.
type Client struct {
	registry *Registry
	http     *http.Client
}

// NewClient creates a peer client over the given registry. A
// non-positive timeout falls back to DefaultTimeout.
func NewClient(registry *Registry, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		registry: registry,
		http:     &http.Client{Timeout: timeout},
	}
}

// CheckExists asks a peer's validate endpoint whether a resource exists.
func (c *Client) CheckExists(ctx context.Context, service, path string) bool {
	body := c.get(ctx, service, path)
	if body == nil {
		return false
	}
	exists, ok := body["exists"].(bool)
	return ok && exists
}

// Fetch retrieves a single resource from a peer.
func (c *Client) Fetch(ctx context.Context, service, path string) map[string]interface{} {
	return c.get(ctx, service, path)
}

// FetchList retrieves a resource collection from a peer.
func (c *Client) FetchList(ctx context.Context, service, path string) []map[string]interface{} {
	url, ok := c.url(service, path)
	if !ok {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		slog.Error("peer request build failed", slog.String("url", url), slog.String("error", err.Error()))
		return nil
	}

	resp, err := c.http.Do(req)
	if err != nil {
		slog.Error("peer unreachable", slog.String("service", service), slog.String("url", url), slog.String("error", err.Error()))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Error("peer returned error status", slog.String("service", service), slog.String("url", url), slog.Int("status", resp.StatusCode))
		return nil
	}

	var list []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		slog.Error("peer returned malformed body", slog.String("service", service), slog.String("url", url), slog.String("error", err.Error()))
		return nil
	}
	return list
}

// Notify POSTs a side effect to a peer.
func (c *Client) Notify(ctx context.Context, service, path string) bool {
	url, ok := c.url(service, path)
	if !ok {
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		slog.Error("peer request build failed", slog.String("url", url), slog.String("error", err.Error()))
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		slog.Error("peer unreachable", slog.String("service", service), slog.String("url", url), slog.String("error", err.Error()))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Error("peer rejected notification", slog.String("service", service), slog.String("url", url), slog.Int("status", resp.StatusCode))
		return false
	}
	return true
}

func (c *Client) get(ctx context.Context, service, path string) map[string]interface{} {
	url, ok := c.url(service, path)
	if !ok {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		slog.Error("peer request build failed", slog.String("url", url), slog.String("error", err.Error()))
		return nil
	}

	resp, err := c.http.Do(req)
	if err != nil {
		slog.Error("peer unreachable", slog.String("service", service), slog.String("url", url), slog.String("error", err.Error()))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Error("peer returned error status", slog.String("service", service), slog.String("url", url), slog.Int("status", resp.StatusCode))
		return nil
	}

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		slog.Error("peer returned malformed body", slog.String("service", service), slog.String("url", url), slog.String("error", err.Error()))
		return nil
	}
	return body
}

func (c *Client) url(service, path string) (string, bool) {
	base, ok := c.registry.Resolve(service)
	if !ok {
		slog.Error("unknown peer service", slog.String("service", service))
		return "", false
	}
	return fmt.Sprintf("%s/%s", base, strings.TrimLeft(path, "/")), true
}
