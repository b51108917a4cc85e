package hostlist

import (
	"context"
	"time"
)

// Source represents a host list data source (local file, HTTP mirror, etc.)
type Source interface {
	// Fetch retrieves raw host list data from the source
	Fetch(ctx context.Context) ([]byte, error)

	// Name returns a human-readable name for the source
	Name() string

	// IsHealthy checks if the source is currently available
	IsHealthy(ctx context.Context) bool
}

type SourceType string

const (
	SourceTypeFile SourceType = "file"
	SourceTypeHTTP SourceType = "http"
)

// SourceConfig holds configuration for a host list source.
// Location is a file path for file sources and a URL for HTTP sources.
type SourceConfig struct {
	Type       SourceType
	Location   string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
	UserAgent  string
}

const (
	defaultUserAgent  = "hostname-catalog/1.0"
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
	defaultRetryDelay = time.Second
)

func (c SourceConfig) withDefaults() SourceConfig {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = defaultMaxRetries
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = defaultRetryDelay
	}
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	return c
}
