package hostlist

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/kerim-dauren/hostname/internal/domain"
)

// Client manages multiple host list sources with fallback logic
type Client struct {
	sources []Source
	parser  *Parser
	timeout time.Duration
	logger  *slog.Logger

	mu                   sync.Mutex
	lastSuccessfulSource string
	lastUpdateTime       time.Time
	consecutiveFailures  int
}

type ClientConfig struct {
	Sources []SourceConfig
	Timeout time.Duration
	// Normalizer, when set, is applied to every list entry before parsing.
	Normalizer Normalizer
	Logger     *slog.Logger
}

func NewClient(config ClientConfig) (*Client, error) {
	if len(config.Sources) == 0 {
		return nil, fmt.Errorf("at least one source must be configured")
	}

	sources := make([]Source, 0, len(config.Sources))
	for _, srcConfig := range config.Sources {
		source, err := createSource(srcConfig)
		if err != nil {
			return nil, fmt.Errorf("creating source %s: %w", srcConfig.Type, err)
		}
		sources = append(sources, source)
	}

	return newClient(sources, config), nil
}

func newClient(sources []Source, config ClientConfig) *Client {
	parser := NewParser()
	if config.Normalizer != nil {
		parser = NewNormalizingParser(config.Normalizer)
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		sources: sources,
		parser:  parser,
		timeout: timeout,
		logger:  logger,
	}
}

func createSource(config SourceConfig) (Source, error) {
	if config.Location == "" {
		return nil, fmt.Errorf("source location is empty")
	}

	switch config.Type {
	case SourceTypeFile:
		return NewFileSource(config), nil
	case SourceTypeHTTP:
		return NewHTTPSource(config), nil
	default:
		return nil, fmt.Errorf("unsupported source type: %s", config.Type)
	}
}

// FetchHostList tries every source in turn and returns the first list that
// parses.
func (c *Client) FetchHostList(ctx context.Context) (*domain.HostList, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var lastErr error
	for _, source := range c.orderSources() {
		list, err := c.fetchFromSource(ctx, source)
		if err == nil {
			c.onFetchSuccess(source.Name())
			return list, nil
		}

		lastErr = err
		c.logger.Warn("Host list source failed", "source", source.Name(), "error", err)

		if ctx.Err() != nil {
			break
		}
	}

	c.mu.Lock()
	c.consecutiveFailures++
	c.mu.Unlock()

	return nil, fmt.Errorf("%w: last error: %v", ErrAllSourcesFailed, lastErr)
}

func (c *Client) fetchFromSource(ctx context.Context, source Source) (*domain.HostList, error) {
	if !source.IsHealthy(ctx) {
		return nil, NewSourceError(source.Name(), "health_check",
			fmt.Errorf("source is not healthy"))
	}

	data, err := source.Fetch(ctx)
	if err != nil {
		return nil, NewSourceError(source.Name(), "fetch", err)
	}

	list, err := c.parser.Parse(data)
	if err != nil {
		return nil, NewSourceError(source.Name(), "parse", err)
	}

	list.Source = source.Name()
	list.LastUpdated = time.Now()

	if len(list.Rejected) > 0 {
		c.logger.Debug("Host list lines rejected",
			"source", source.Name(),
			"rejected", len(list.Rejected),
			"accepted", list.Size())
	}

	return list, nil
}

// orderSources returns sources with the last successful one first
func (c *Client) orderSources() []Source {
	c.mu.Lock()
	last := c.lastSuccessfulSource
	c.mu.Unlock()

	if last == "" {
		return c.sources
	}

	ordered := make([]Source, 0, len(c.sources))
	var lastSuccessful Source

	for _, source := range c.sources {
		if source.Name() == last {
			lastSuccessful = source
		} else {
			ordered = append(ordered, source)
		}
	}

	if lastSuccessful != nil {
		ordered = append([]Source{lastSuccessful}, ordered...)
	}

	return ordered
}

func (c *Client) onFetchSuccess(sourceName string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastSuccessfulSource = sourceName
	c.lastUpdateTime = time.Now()
	c.consecutiveFailures = 0
}

func (c *Client) GetHealthStatus(ctx context.Context) map[string]bool {
	status := make(map[string]bool, len(c.sources))
	for _, source := range c.sources {
		status[source.Name()] = source.IsHealthy(ctx)
	}
	return status
}

func (c *Client) GetLastUpdateTime() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastUpdateTime
}

func (c *Client) GetConsecutiveFailures() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.consecutiveFailures
}

func (c *Client) GetLastSuccessfulSource() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSuccessfulSource
}
