package storage

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/kerim-dauren/hostname/internal/domain"
)

// Catalog is an in-memory set of domains answering "is this host listed?".
// Exact entries are keyed by their lower-cased canonical form; wildcard
// entries live in a LabelTree under their parent name.
type Catalog struct {
	mu sync.RWMutex

	exact     map[string]domain.Domain
	wildcards *LabelTree

	lastUpdate time.Time
	entryCount int64
	rejected   int64
	version    string
	source     string
}

func NewCatalog() *Catalog {
	return &Catalog{
		exact:      make(map[string]domain.Domain),
		wildcards:  NewLabelTree(),
		lastUpdate: time.Now(),
	}
}

func (c *Catalog) Lookup(host domain.Domain) *domain.MatchResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if entry, exists := c.exact[host.Key()]; exists {
		return domain.NewMatchResult(host, &entry)
	}

	if entry, exists := c.wildcards.LongestProperSuffix(host.Labels()); exists && entry.Covers(host) {
		return domain.NewMatchResult(host, &entry)
	}

	return domain.NewMatchResult(host, nil)
}

// Update replaces the catalog contents with list.
func (c *Catalog) Update(list *domain.HostList) error {
	if list == nil {
		return domain.ErrInvalidHostList
	}

	newExact := make(map[string]domain.Domain, len(list.Entries))
	newWildcards := NewLabelTree()

	for _, entry := range list.Entries {
		if entry.IsWildcard() {
			parent, _ := entry.Parent()
			newWildcards.Insert(parent.Labels(), entry)
			continue
		}
		newExact[entry.Key()] = entry
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.exact = newExact
	c.wildcards = newWildcards
	c.lastUpdate = time.Now()
	c.version = list.Version
	c.source = list.Source

	atomic.StoreInt64(&c.entryCount, int64(len(newExact)+newWildcards.Size()))
	atomic.StoreInt64(&c.rejected, int64(len(list.Rejected)))

	return nil
}

func (c *Catalog) Stats() CatalogStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return CatalogStats{
		TotalEntries:    atomic.LoadInt64(&c.entryCount),
		ExactEntries:    int64(len(c.exact)),
		WildcardEntries: int64(c.wildcards.Size()),
		RejectedLines:   atomic.LoadInt64(&c.rejected),
		LastUpdate:      c.lastUpdate,
		Version:         c.version,
		Source:          c.source,
	}
}

func (c *Catalog) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.exact = make(map[string]domain.Domain)
	c.wildcards.Clear()
	c.version = ""
	c.source = ""

	atomic.StoreInt64(&c.entryCount, 0)
	atomic.StoreInt64(&c.rejected, 0)
	c.lastUpdate = time.Now()
}

// Version returns the version of the list last loaded, empty after Clear.
func (c *Catalog) Version() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

func (c *Catalog) Size() int {
	return int(atomic.LoadInt64(&c.entryCount))
}

func (c *Catalog) LastUpdateTime() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastUpdate
}

type CatalogStats struct {
	TotalEntries    int64
	ExactEntries    int64
	WildcardEntries int64
	RejectedLines   int64
	LastUpdate      time.Time
	Version         string
	Source          string
}
