package domain

import (
	"regexp"
	"strings"
)

const (
	labelMax = 63  // octets
	hostMax  = 253 // octets, without the trailing root dot

	alphanumericPattern = `[a-zA-Z0-9](?:[-a-zA-Z0-9]*[a-zA-Z0-9])?`
	alphabeticPattern   = `[a-zA-Z]+`
	acePattern          = `(?i:xn--)` + alphanumericPattern
)

var (
	alphanumericRegex = regexp.MustCompile("^" + alphanumericPattern + "$")
	alphabeticRegex   = regexp.MustCompile("^" + alphabeticPattern + "$")
	aceRegex          = regexp.MustCompile("^" + acePattern + "$")
)

// Charset selects the grammar a label is checked against.
type Charset int

const (
	// CharsetAlphanumeric allows letters, digits and internal hyphens.
	CharsetAlphanumeric Charset = iota
	// CharsetAlphabetic allows letters only.
	CharsetAlphabetic
)

// LabelPolicy parameterizes IsValidLabel. Zero MinLength means 1 and zero
// MaxLength means 63.
type LabelPolicy struct {
	MinLength int
	MaxLength int
	Charset   Charset

	// Literals are accepted as-is before the grammar is consulted.
	Literals []string

	// AllowACE accepts IDNA A-labels ("xn--...") regardless of Charset.
	AllowACE bool
}

var (
	SubdomainPolicy = LabelPolicy{
		MinLength: 1,
		MaxLength: labelMax,
		Charset:   CharsetAlphanumeric,
		Literals:  []string{Wildcard},
	}

	SLDPolicy = LabelPolicy{MinLength: 1, MaxLength: labelMax, Charset: CharsetAlphanumeric}

	TLDPolicy = LabelPolicy{
		MinLength: 2,
		MaxLength: labelMax,
		Charset:   CharsetAlphabetic,
		AllowACE:  true,
	}
)

func (p LabelPolicy) bounds() (int, int) {
	lo, hi := p.MinLength, p.MaxLength
	if lo <= 0 {
		lo = 1
	}
	if hi <= 0 || hi > labelMax {
		hi = labelMax
	}
	return lo, hi
}

// IsValidLabel reports whether text is a single label acceptable under policy.
func IsValidLabel(text string, policy LabelPolicy) bool {
	for _, literal := range policy.Literals {
		if text == literal {
			return true
		}
	}

	lo, hi := policy.bounds()
	if len(text) < lo || len(text) > hi {
		return false
	}

	if policy.AllowACE && aceRegex.MatchString(text) {
		return true
	}

	switch policy.Charset {
	case CharsetAlphabetic:
		return alphabeticRegex.MatchString(text)
	default:
		return alphanumericRegex.MatchString(text)
	}
}

// label is the text shared by Subdomain, SLD and TLD.
type label struct {
	text string
}

func (l label) String() string {
	return l.text
}

func (l label) Len() int {
	return len(l.text)
}

// At returns the byte at index i. It panics if i is out of range.
func (l label) At(i int) byte {
	return l.text[i]
}

// Slice returns the text in [start, end). It panics if the range is out of bounds.
func (l label) Slice(start, end int) string {
	return l.text[start:end]
}

func (l label) IsZero() bool {
	return l.text == ""
}

func (l label) equalFold(other label) bool {
	return strings.EqualFold(l.text, other.text)
}
