package domain

import (
	"strings"
	"time"
)

// Covers reports whether host falls under d. A plain Domain covers only
// itself; a wildcard Domain covers every host below its parent. Comparison
// ignores letter case.
func (d Domain) Covers(host Domain) bool {
	if !d.IsWildcard() {
		return d.EqualFold(host)
	}
	if host.IsWildcard() || len(host.subdomains) == 0 {
		return false
	}
	return d.sld.EqualFold(host.sld) && d.tld.EqualFold(host.tld)
}

// Parent returns the Domain with the leftmost subdomain removed. It returns
// false if d has no subdomains.
func (d Domain) Parent() (Domain, bool) {
	if len(d.subdomains) == 0 {
		return Domain{}, false
	}
	parent := Domain{
		subdomains: make([]Subdomain, len(d.subdomains)-1),
		sld:        d.sld,
		tld:        d.tld,
	}
	copy(parent.subdomains, d.subdomains[1:])
	return parent, true
}

// Key is the lower-cased canonical form, used to index domains regardless
// of letter case.
func (d Domain) Key() string {
	return strings.ToLower(d.String())
}

type MatchResult struct {
	Matched   bool
	Host      Domain
	Entry     *Domain
	Wildcard  bool
	CheckedAt time.Time
}

func NewMatchResult(host Domain, entry *Domain) *MatchResult {
	result := &MatchResult{
		Matched:   entry != nil,
		Host:      host,
		Entry:     entry,
		CheckedAt: time.Now(),
	}

	if entry != nil {
		result.Wildcard = entry.IsWildcard()
	}

	return result
}

// HostList is a parsed collection of domains with the lines that were
// rejected while reading it.
type HostList struct {
	Entries     []Domain
	Rejected    []RejectedLine
	Source      string
	Version     string
	LastUpdated time.Time
}

type RejectedLine struct {
	Line  int
	Text  string
	Cause error
}

func NewHostList() *HostList {
	return &HostList{
		Entries:     make([]Domain, 0),
		LastUpdated: time.Now(),
	}
}

func (l *HostList) Add(d Domain) {
	l.Entries = append(l.Entries, d)
}

func (l *HostList) Reject(line int, text string, cause error) {
	l.Rejected = append(l.Rejected, RejectedLine{Line: line, Text: text, Cause: cause})
}

func (l *HostList) Size() int {
	return len(l.Entries)
}

func (l *HostList) Wildcards() int {
	count := 0
	for _, d := range l.Entries {
		if d.IsWildcard() {
			count++
		}
	}
	return count
}
