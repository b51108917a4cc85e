package hostlist

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

const (
	maxResponseSize   = 100 * 1024 * 1024
	healthCacheWindow = 5 * time.Minute
	healthTimeout     = 10 * time.Second
)

// HTTPSource downloads a host list from an HTTP(S) mirror.
type HTTPSource struct {
	client     *http.Client
	config     SourceConfig
	lastHealth time.Time
	healthy    bool
	mu         sync.Mutex
}

func NewHTTPSource(config SourceConfig) *HTTPSource {
	config = config.withDefaults()
	return &HTTPSource{
		client: &http.Client{
			Timeout: config.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:    10,
				IdleConnTimeout: 30 * time.Second,
			},
		},
		config:  config,
		healthy: true,
	}
}

func (h *HTTPSource) Name() string {
	return "http:" + h.config.Location
}

// Fetch downloads the list, retrying with quadratic backoff.
func (h *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var lastErr error

	for attempt := 0; attempt < h.config.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt*attempt) * h.config.RetryDelay
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		data, err := h.fetchOnce(ctx)
		if err == nil {
			h.healthy = true
			h.lastHealth = time.Now()
			return data, nil
		}

		lastErr = err
	}

	h.healthy = false
	h.lastHealth = time.Now()
	return nil, NewSourceError(h.Name(), "fetch", lastErr)
}

func (h *HTTPSource) fetchOnce(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.config.Location, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", h.config.UserAgent)
	req.Header.Set("Accept", "text/plain, text/csv, application/zip, */*")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	if resp.ContentLength > maxResponseSize {
		return nil, fmt.Errorf("response too large: %d bytes", resp.ContentLength)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if len(data) > maxResponseSize {
		return nil, fmt.Errorf("response too large: more than %d bytes", maxResponseSize)
	}

	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	return data, nil
}

// IsHealthy reports the cached health state, refreshing it with a HEAD
// request once the cache window has passed.
func (h *HTTPSource) IsHealthy(ctx context.Context) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.lastHealth.IsZero() && time.Since(h.lastHealth) < healthCacheWindow {
		return h.healthy
	}

	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	h.lastHealth = time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, h.config.Location, nil)
	if err != nil {
		h.healthy = false
		return false
	}
	req.Header.Set("User-Agent", h.config.UserAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		h.healthy = false
		return false
	}
	defer resp.Body.Close()

	h.healthy = resp.StatusCode == http.StatusOK
	return h.healthy
}
