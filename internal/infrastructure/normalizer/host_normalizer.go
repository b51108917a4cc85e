package normalizer

import (
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"

	"github.com/kerim-dauren/hostname/internal/domain"
)

const wildcardPrefix = domain.Wildcard + "."

// HostNormalizer turns user input (bare hosts, host:port, URLs, Unicode
// names) into the ASCII text form accepted by domain.Parse.
type HostNormalizer struct {
	idnProfile *idna.Profile
}

func NewHostNormalizer() *HostNormalizer {
	return &HostNormalizer{
		idnProfile: idna.New(
			idna.ValidateLabels(true),
			idna.VerifyDNSLength(true),
			idna.StrictDomainName(false),
		),
	}
}

// Normalize returns the lower-cased ASCII host, followed by ":port" when the
// input carried one.
func (n *HostNormalizer) Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", domain.ErrEmptyHost
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	parsedURL, err := url.Parse(raw)
	if err != nil {
		return "", domain.ErrInvalidHost
	}

	if parsedURL.Host == "" || strings.HasPrefix(parsedURL.Host, "[") {
		return "", domain.ErrInvalidHost
	}

	host := parsedURL.Hostname()
	port := parsedURL.Port()

	if net.ParseIP(host) != nil {
		return "", domain.ErrInvalidHost
	}

	ascii, err := n.toASCII(host)
	if err != nil {
		return "", err
	}

	normalized := ascii
	if port != "" {
		normalized += ":" + port
	}

	if !domain.Validate(normalized) {
		return "", domain.ErrInvalidHost
	}

	return normalized, nil
}

// NormalizeDomain normalizes raw and parses the result.
func (n *HostNormalizer) NormalizeDomain(raw string) (domain.Domain, domain.Port, bool, error) {
	normalized, err := n.Normalize(raw)
	if err != nil {
		return domain.Domain{}, 0, false, err
	}
	return domain.ParseHostPort(normalized)
}

func (n *HostNormalizer) toASCII(host string) (string, error) {
	wildcard := strings.HasPrefix(host, wildcardPrefix)
	if wildcard {
		host = strings.TrimPrefix(host, wildcardPrefix)
	}

	host = strings.ToLower(norm.NFC.String(host))

	ascii, err := n.idnProfile.ToASCII(host)
	if err != nil {
		return "", domain.ErrNormalizationFailed
	}

	ascii = strings.ToLower(ascii)
	if wildcard {
		ascii = wildcardPrefix + ascii
	}
	return ascii, nil
}
