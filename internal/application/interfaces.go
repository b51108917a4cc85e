package application

import (
	"context"

	"github.com/kerim-dauren/hostname/internal/domain"
	"github.com/kerim-dauren/hostname/internal/infrastructure/storage"
)

type HostNormalizer interface {
	Normalize(raw string) (string, error)
}

type CatalogStore interface {
	Lookup(host domain.Domain) *domain.MatchResult
	Update(list *domain.HostList) error
	Stats() storage.CatalogStats
}

type HostnameChecker interface {
	Validate(ctx context.Context, raw string) bool
	Parse(ctx context.Context, raw string, normalize bool) (*ParseResult, error)
	Match(ctx context.Context, raw string) (*domain.MatchResult, error)
	GetStats(ctx context.Context) (*CatalogStats, error)
}

type CatalogStats struct {
	TotalEntries    int64  `json:"total_entries"`
	ExactEntries    int64  `json:"exact_entries"`
	WildcardEntries int64  `json:"wildcard_entries"`
	RejectedLines   int64  `json:"rejected_lines"`
	LastUpdate      string `json:"last_update"`
	Version         string `json:"version"`
	Source          string `json:"source"`
}
