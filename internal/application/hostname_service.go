package application

import (
	"context"
	"strings"
	"time"

	"github.com/kerim-dauren/hostname/internal/domain"
	"github.com/kerim-dauren/hostname/internal/infrastructure/metrics"
)

type HostnameService struct {
	normalizer HostNormalizer
	store      CatalogStore
}

func NewHostnameService(normalizer HostNormalizer, store CatalogStore) *HostnameService {
	return &HostnameService{
		normalizer: normalizer,
		store:      store,
	}
}

// Validate reports whether raw is a well-formed host with an optional port.
// No normalization is applied.
func (hs *HostnameService) Validate(ctx context.Context, raw string) bool {
	valid := domain.Validate(raw)
	metrics.ObserveValidation(valid)
	return valid
}

// Parse decomposes raw. With normalize set, raw is first passed through the
// normalizer, so URLs and Unicode names are accepted.
func (hs *HostnameService) Parse(ctx context.Context, raw string, normalize bool) (*ParseResult, error) {
	result, err := hs.parse(raw, normalize)
	metrics.ObserveParse(err == nil)
	return result, err
}

func (hs *HostnameService) parse(raw string, normalize bool) (*ParseResult, error) {
	input := raw
	if normalize {
		normalized, err := hs.normalizer.Normalize(raw)
		if err != nil {
			return nil, err
		}
		raw = normalized
	}

	d, port, hasPort, err := domain.ParseHostPort(raw)
	if err != nil {
		return nil, err
	}

	return newParseResult(input, d, port, hasPort, normalize), nil
}

// Match normalizes raw and looks the host up in the catalog.
func (hs *HostnameService) Match(ctx context.Context, raw string) (*domain.MatchResult, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, domain.ErrEmptyHost
	}

	normalized, err := hs.normalizer.Normalize(raw)
	if err != nil {
		return nil, err
	}

	host, _, _, err := domain.ParseHostPort(normalized)
	if err != nil {
		return nil, err
	}

	if host.IsWildcard() {
		return nil, domain.ErrInvalidHost
	}

	result := hs.store.Lookup(host)
	if result == nil {
		result = domain.NewMatchResult(host, nil)
	}

	metrics.ObserveLookup(result.Matched)
	return result, nil
}

func (hs *HostnameService) GetStats(ctx context.Context) (*CatalogStats, error) {
	stats := hs.store.Stats()

	return &CatalogStats{
		TotalEntries:    stats.TotalEntries,
		ExactEntries:    stats.ExactEntries,
		WildcardEntries: stats.WildcardEntries,
		RejectedLines:   stats.RejectedLines,
		LastUpdate:      stats.LastUpdate.Format(time.RFC3339),
		Version:         stats.Version,
		Source:          stats.Source,
	}, nil
}

// UpdateCatalog replaces the served host list. It is the store path used by
// the reload scheduler.
func (hs *HostnameService) UpdateCatalog(ctx context.Context, list *domain.HostList) error {
	if list == nil {
		return domain.ErrInvalidHostList
	}
	return hs.store.Update(list)
}

func (hs *HostnameService) CatalogVersion() string {
	return hs.store.Stats().Version
}

func (hs *HostnameService) CatalogSize() int {
	return int(hs.store.Stats().TotalEntries)
}
