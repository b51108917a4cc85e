package application

import "github.com/kerim-dauren/hostname/internal/domain"

// ParseResult is the decomposed form of a parsed host, shared by every
// delivery channel.
type ParseResult struct {
	Input      string   `json:"input"`
	Host       string   `json:"host"`
	Name       string   `json:"name"`
	Subdomains []string `json:"subdomains"`
	SLD        string   `json:"sld"`
	TLD        string   `json:"tld,omitempty"`
	Port       *uint16  `json:"port,omitempty"`
	Wildcard   bool     `json:"wildcard"`
	Localhost  bool     `json:"localhost"`
	Normalized bool     `json:"normalized"`
}

func newParseResult(input string, d domain.Domain, port domain.Port, hasPort, normalized bool) *ParseResult {
	subs := d.Subdomains()
	result := &ParseResult{
		Input:      input,
		Host:       d.String(),
		Name:       d.Name(),
		Subdomains: make([]string, len(subs)),
		SLD:        d.SLD().String(),
		Wildcard:   d.IsWildcard(),
		Localhost:  d.IsLocalhost(),
		Normalized: normalized,
	}

	for i, sub := range subs {
		result.Subdomains[i] = sub.String()
	}

	if tld, ok := d.TLD(); ok {
		result.TLD = tld.String()
	}

	if hasPort {
		p := uint16(port)
		result.Port = &p
	}

	return result
}

// HostWithPort returns the canonical host followed by ":port" when the
// input carried one.
func (r *ParseResult) HostWithPort() string {
	if r.Port == nil {
		return r.Host
	}
	return r.Host + ":" + domain.Port(*r.Port).String()
}

// Fields returns the result as a generic map, with the port as a float64 the
// way JSON and protobuf Struct values carry numbers.
func (r *ParseResult) Fields() map[string]any {
	subs := make([]any, len(r.Subdomains))
	for i, s := range r.Subdomains {
		subs[i] = s
	}

	fields := map[string]any{
		"input":      r.Input,
		"host":       r.Host,
		"name":       r.Name,
		"subdomains": subs,
		"sld":        r.SLD,
		"wildcard":   r.Wildcard,
		"localhost":  r.Localhost,
		"normalized": r.Normalized,
	}
	if r.TLD != "" {
		fields["tld"] = r.TLD
	}
	if r.Port != nil {
		fields["port"] = float64(*r.Port)
	}
	return fields
}
