package updater

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/kerim-dauren/hostname/internal/domain"
	"github.com/kerim-dauren/hostname/internal/infrastructure/metrics"
)

var (
	ErrEmptyHostList   = errors.New("host list has no entries")
	ErrTooManyRejected = errors.New("host list has too many rejected lines")
)

// Reload results, as reported in Status.LastResult and the reload metric.
const (
	ResultUpdated   = metrics.ResultSuccess
	ResultUnchanged = metrics.ResultUnchanged
	ResultFailed    = metrics.ResultFailure
)

// HostListClient fetches the current host list
type HostListClient interface {
	FetchHostList(ctx context.Context) (*domain.HostList, error)
}

// CatalogUpdater is the write side of the catalog. Version reports the
// version of the list it currently serves.
type CatalogUpdater interface {
	UpdateCatalog(ctx context.Context, list *domain.HostList) error
	CatalogVersion() string
	CatalogSize() int
}

// Scheduler keeps the catalog in sync with the configured host list sources.
// A fetched list whose version matches the one already served is not
// reloaded.
type Scheduler struct {
	client  HostListClient
	catalog CatalogUpdater
	logger  *slog.Logger

	interval         time.Duration
	maxRetries       int
	retryDelay       time.Duration
	updateTimeout    time.Duration
	maxRejectedRatio float64

	mu      sync.RWMutex
	running bool
	status  Status

	stopCh    chan struct{}
	triggerCh chan struct{}
	doneCh    chan struct{}
}

// Config holds configuration for the update scheduler
type Config struct {
	Interval      time.Duration // How often to reload
	MaxRetries    int           // Fetch attempts per reload
	RetryDelay    time.Duration // Delay before the second attempt, doubled after each
	UpdateTimeout time.Duration // Timeout for one reload including retries

	// MaxRejectedRatio fails a reload whose rejected lines exceed this share
	// of all data lines. Zero disables the check.
	MaxRejectedRatio float64

	Logger *slog.Logger
}

func DefaultConfig() Config {
	return Config{
		Interval:         time.Hour,
		MaxRetries:       3,
		RetryDelay:       30 * time.Second,
		UpdateTimeout:    5 * time.Minute,
		MaxRejectedRatio: 0.5,
	}
}

func NewScheduler(client HostListClient, catalog CatalogUpdater, config Config) *Scheduler {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if config.MaxRetries <= 0 {
		config.MaxRetries = 1
	}

	return &Scheduler{
		client:           client,
		catalog:          catalog,
		logger:           logger,
		interval:         config.Interval,
		maxRetries:       config.MaxRetries,
		retryDelay:       config.RetryDelay,
		updateTimeout:    config.UpdateTimeout,
		maxRejectedRatio: config.MaxRejectedRatio,
		stopCh:           make(chan struct{}),
		triggerCh:        make(chan struct{}, 1),
		doneCh:           make(chan struct{}),
	}
}

// Start performs an initial reload and then reloads every interval until
// Stop is called or ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("scheduler is already running")
	}
	s.running = true

	go s.loop(ctx)

	return nil
}

func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return fmt.Errorf("scheduler is not running")
	}
	close(s.stopCh)
	s.mu.Unlock()

	<-s.doneCh
	return nil
}

// TriggerUpdate requests an immediate reload. Requests made while one is
// already pending are coalesced.
func (s *Scheduler) TriggerUpdate() {
	select {
	case s.triggerCh <- struct{}{}:
	default:
	}
}

func (s *Scheduler) loop(ctx context.Context) {
	defer close(s.doneCh)
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.Reload(ctx)

		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
		case <-s.triggerCh:
		}
	}
}

// Reload fetches the host list once and applies it to the catalog. It
// returns the result recorded in Status.LastResult.
func (s *Scheduler) Reload(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, s.updateTimeout)
	defer cancel()

	list, err := s.fetch(ctx)
	if err == nil {
		err = s.accept(list)
	}
	if err != nil {
		return s.finish(ResultFailed, list, err)
	}

	if list.Version != "" && list.Version == s.catalog.CatalogVersion() {
		return s.finish(ResultUnchanged, list, nil)
	}

	if err := s.catalog.UpdateCatalog(ctx, list); err != nil {
		return s.finish(ResultFailed, list, fmt.Errorf("updating catalog: %w", err))
	}
	return s.finish(ResultUpdated, list, nil)
}

// fetch retries transport failures with exponential backoff. A list that
// arrives is returned as-is; its content is judged by accept.
func (s *Scheduler) fetch(ctx context.Context) (*domain.HostList, error) {
	delay := s.retryDelay

	for attempt := 1; ; attempt++ {
		list, err := s.client.FetchHostList(ctx)
		if err == nil {
			return list, nil
		}

		s.logger.Warn("Host list fetch failed",
			"attempt", attempt,
			"max_attempts", s.maxRetries,
			"error", err)

		if attempt >= s.maxRetries {
			return nil, fmt.Errorf("fetching host list (%d attempts): %w", attempt, err)
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("fetching host list: %w", ctx.Err())
		case <-time.After(delay):
		}
		delay *= 2
	}
}

func (s *Scheduler) accept(list *domain.HostList) error {
	if list == nil || list.Size() == 0 {
		return ErrEmptyHostList
	}

	if s.maxRejectedRatio <= 0 || len(list.Rejected) == 0 {
		return nil
	}

	lines := list.Size() + len(list.Rejected)
	if ratio := float64(len(list.Rejected)) / float64(lines); ratio > s.maxRejectedRatio {
		return fmt.Errorf("%w: %d of %d lines (%.2f > %.2f)",
			ErrTooManyRejected, len(list.Rejected), lines, ratio, s.maxRejectedRatio)
	}
	return nil
}

func (s *Scheduler) finish(result string, list *domain.HostList, err error) string {
	size := s.catalog.CatalogSize()
	version := s.catalog.CatalogVersion()
	metrics.ObserveReload(result, size)

	s.mu.Lock()
	now := time.Now()
	st := &s.status
	st.Reloads++
	st.LastResult = result
	st.LastAttempt = now
	st.CatalogSize = size
	st.CatalogVersion = version

	switch result {
	case ResultFailed:
		st.Failed++
		st.ConsecutiveFailures++
		st.LastError = err
	case ResultUnchanged:
		st.Unchanged++
	default:
		st.Updated++
	}
	if result != ResultFailed {
		st.LastSuccess = now
		st.ConsecutiveFailures = 0
		st.LastError = nil
		st.Rejected = len(list.Rejected)
	}
	failures := st.ConsecutiveFailures
	s.mu.Unlock()

	switch result {
	case ResultFailed:
		s.logger.Error("Catalog reload failed",
			"consecutive_failures", failures,
			"error", err)
	case ResultUnchanged:
		s.logger.Debug("Host list unchanged, catalog kept",
			"source", list.Source,
			"version", list.Version)
	default:
		s.logger.Info("Catalog reloaded",
			"source", list.Source,
			"version", list.Version,
			"entries", size,
			"wildcards", list.Wildcards(),
			"rejected", len(list.Rejected))
	}

	return result
}

func (s *Scheduler) GetStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := s.status
	st.Running = s.running
	st.NextUpdate = time.Now()
	if !st.LastAttempt.IsZero() {
		st.NextUpdate = st.LastAttempt.Add(s.interval)
	}
	return st
}

// IsHealthy reports false after five consecutive failed reloads or when the
// catalog has not been confirmed current for two intervals.
func (s *Scheduler) IsHealthy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.status.ConsecutiveFailures >= 5 {
		return false
	}
	return s.status.LastSuccess.IsZero() || time.Since(s.status.LastSuccess) <= s.interval*2
}

// Status is a snapshot of the scheduler. LastSuccess is the last time the
// catalog was confirmed current, whether by an update or an unchanged list.
type Status struct {
	Running     bool
	LastResult  string
	LastAttempt time.Time
	LastSuccess time.Time
	LastError   error
	NextUpdate  time.Time

	Reloads             int
	Updated             int
	Unchanged           int
	Failed              int
	ConsecutiveFailures int

	CatalogVersion string
	CatalogSize    int
	Rejected       int // rejected lines in the last accepted list
}

// SuccessRate returns the share of reloads that did not fail, as a percentage.
func (s Status) SuccessRate() float64 {
	if s.Reloads == 0 {
		return 0
	}
	return float64(s.Updated+s.Unchanged) / float64(s.Reloads) * 100
}
