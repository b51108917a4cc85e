package domain

import (
	"errors"
	"fmt"
	"hash/fnv"
	"strings"
)

const localhost = "localhost"

var (
	errMissingSLD        = errors.New("missing second-level domain")
	errWildcardNotAlone  = errors.New("wildcard must be the only subdomain")
	errTooManySeparators = errors.New("more than one port separator")
)

// Domain is a host name split into subdomains, a second-level label and an
// optional top-level label. Values are immutable once constructed.
type Domain struct {
	subdomains []Subdomain
	sld        SLD
	tld        TLD
}

// hostParts is the result of classifying raw input, before any value is built.
type hostParts struct {
	subdomains []string
	sld        string
	tld        string
	port       string
	hasPort    bool
}

func classify(raw string) (hostParts, error) {
	var parts hostParts

	segments := strings.Split(raw, ":")
	if len(segments) > 2 {
		return parts, newDomainParseError(raw, errTooManySeparators)
	}

	host := segments[0]
	if len(segments) == 2 {
		if !ValidatePort(segments[1]) {
			return parts, newDomainParseError(raw, &PortParseError{Text: segments[1]})
		}
		parts.port = segments[1]
		parts.hasPort = true
	}

	if host == "" {
		return parts, newDomainParseError(raw, ErrEmptyHost)
	}
	if len(host) > hostMax {
		return parts, newDomainParseError(raw, fmt.Errorf("host too big (%d octets > max %d)", len(host), hostMax))
	}

	labels := strings.Split(host, ".")
	last := labels[len(labels)-1]

	var rest []string
	if isLocalhostLabel(last) {
		parts.sld = last
		rest = labels[:len(labels)-1]
	} else {
		if !ValidateTLD(last) {
			return parts, newDomainParseError(raw, &TLDParseError{Text: last})
		}
		if len(labels) < 2 {
			return parts, newDomainParseError(raw, errMissingSLD)
		}
		sld := labels[len(labels)-2]
		if !ValidateSLD(sld) {
			return parts, newDomainParseError(raw, &SLDParseError{Text: sld})
		}
		parts.sld = sld
		parts.tld = last
		rest = labels[:len(labels)-2]
	}

	for _, sub := range rest {
		if !ValidateSubdomain(sub) {
			return parts, newDomainParseError(raw, &SubdomainParseError{Text: sub})
		}
		if sub == Wildcard && len(rest) > 1 {
			return parts, newDomainParseError(raw, errWildcardNotAlone)
		}
	}
	parts.subdomains = rest

	return parts, nil
}

func (p hostParts) domain() Domain {
	d := Domain{
		subdomains: make([]Subdomain, len(p.subdomains)),
		sld:        SLD{label{p.sld}},
	}
	for i, sub := range p.subdomains {
		d.subdomains[i] = Subdomain{label{sub}}
	}
	if p.tld != "" {
		d.tld = TLD{label{p.tld}}
	}
	return d
}

// Validate reports whether raw is a host name with an optional ":port".
// Beyond the per-label grammar it also rejects hosts longer than 253 octets
// and top-level labels shorter than two letters.
func Validate(raw string) bool {
	_, err := classify(raw)
	return err == nil
}

// Parse parses raw into a Domain. A port, if present, is validated and
// discarded. Errors are *DomainParseError.
func Parse(raw string) (Domain, error) {
	parts, err := classify(raw)
	if err != nil {
		return Domain{}, err
	}
	return parts.domain(), nil
}

// ParseHostPort is like Parse but also returns the port and whether raw
// carried one.
func ParseHostPort(raw string) (Domain, Port, bool, error) {
	parts, err := classify(raw)
	if err != nil {
		return Domain{}, 0, false, err
	}

	var port Port
	if parts.hasPort {
		// classify already validated the port text.
		port, _ = ParsePort(parts.port)
	}
	return parts.domain(), port, parts.hasPort, nil
}

func MustParse(raw string) Domain {
	d, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return d
}

// Create composes a Domain from already validated parts. A zero tld means
// the Domain has no TLD. Errors are *CompositionError.
func Create(subdomains []Subdomain, sld SLD, tld TLD) (Domain, error) {
	if sld.IsZero() {
		return Domain{}, &CompositionError{Reason: "second-level domain is required"}
	}
	if tld.IsZero() && !sld.IsLocalhost() {
		return Domain{}, &CompositionError{Reason: fmt.Sprintf("top-level domain is required for %q", sld.String())}
	}
	if isLocalhostLabel(tld.text) {
		return Domain{}, &CompositionError{Reason: "localhost cannot be a top-level domain"}
	}

	for _, sub := range subdomains {
		if sub.IsZero() {
			return Domain{}, &CompositionError{Reason: "subdomain cannot be empty"}
		}
		if sub.IsWildcard() && len(subdomains) > 1 {
			return Domain{}, &CompositionError{Reason: errWildcardNotAlone.Error()}
		}
	}

	d := Domain{
		subdomains: make([]Subdomain, len(subdomains)),
		sld:        sld,
		tld:        tld,
	}
	copy(d.subdomains, subdomains)

	if size := len(d.String()); size > hostMax {
		return Domain{}, &CompositionError{Reason: fmt.Sprintf("domain name too big (%d octets > max %d)", size, hostMax)}
	}

	return d, nil
}

// Subdomains returns a copy of the subdomain labels, leftmost first.
func (d Domain) Subdomains() []Subdomain {
	subs := make([]Subdomain, len(d.subdomains))
	copy(subs, d.subdomains)
	return subs
}

func (d Domain) SLD() SLD {
	return d.sld
}

// TLD returns the top-level label and false if the Domain has none.
func (d Domain) TLD() (TLD, bool) {
	return d.tld, !d.tld.IsZero()
}

func (d Domain) IsLocalhost() bool {
	return d.tld.IsZero() && d.sld.IsLocalhost()
}

func (d Domain) IsWildcard() bool {
	return len(d.subdomains) == 1 && d.subdomains[0].IsWildcard()
}

// Name returns the SLD followed by ".TLD" when there is one.
func (d Domain) Name() string {
	if d.tld.IsZero() {
		return d.sld.String()
	}
	return d.sld.String() + "." + d.tld.String()
}

// String returns the canonical text form. Parse(d.String()) equals d.
func (d Domain) String() string {
	var b strings.Builder
	for _, sub := range d.subdomains {
		b.WriteString(sub.String())
		b.WriteByte('.')
	}
	b.WriteString(d.Name())
	return b.String()
}

func (d Domain) StringWithPort(port Port) string {
	return d.String() + ":" + port.String()
}

func (d Domain) Bytes() []byte {
	return []byte(d.String())
}

// Labels returns every label of the canonical form, leftmost first.
func (d Domain) Labels() []string {
	labels := make([]string, 0, len(d.subdomains)+2)
	for _, sub := range d.subdomains {
		labels = append(labels, sub.String())
	}
	labels = append(labels, d.sld.String())
	if !d.tld.IsZero() {
		labels = append(labels, d.tld.String())
	}
	return labels
}

// Equal compares subdomains (in order), SLD and TLD case-sensitively.
func (d Domain) Equal(other Domain) bool {
	if d.sld != other.sld || d.tld != other.tld {
		return false
	}
	if len(d.subdomains) != len(other.subdomains) {
		return false
	}
	for i := range d.subdomains {
		if d.subdomains[i] != other.subdomains[i] {
			return false
		}
	}
	return true
}

// EqualFold is Equal with ASCII case folding.
func (d Domain) EqualFold(other Domain) bool {
	if !d.sld.EqualFold(other.sld) || !d.tld.EqualFold(other.tld) {
		return false
	}
	if len(d.subdomains) != len(other.subdomains) {
		return false
	}
	for i := range d.subdomains {
		if !d.subdomains[i].EqualFold(other.subdomains[i]) {
			return false
		}
	}
	return true
}

// Hash is consistent with Equal.
func (d Domain) Hash() uint64 {
	h := fnv.New64a()
	for _, sub := range d.subdomains {
		h.Write([]byte(sub.text))
		h.Write([]byte{0})
	}
	h.Write([]byte{1})
	h.Write([]byte(d.sld.text))
	h.Write([]byte{1})
	h.Write([]byte(d.tld.text))
	return h.Sum64()
}

func (d Domain) MarshalText() ([]byte, error) {
	return d.Bytes(), nil
}

func (d *Domain) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func isLocalhostLabel(text string) bool {
	return strings.EqualFold(text, localhost)
}
