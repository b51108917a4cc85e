package domain

// Wildcard is the subdomain label that stands for any subdomain.
const Wildcard = "*"

// Subdomain is a single validated label to the left of the SLD.
type Subdomain struct {
	label
}

func ValidateSubdomain(text string) bool {
	return IsValidLabel(text, SubdomainPolicy)
}

func NewSubdomain(text string) (Subdomain, error) {
	if !ValidateSubdomain(text) {
		return Subdomain{}, &SubdomainParseError{Text: text}
	}
	return Subdomain{label{text}}, nil
}

// MustSubdomain is like NewSubdomain but panics on invalid input.
func MustSubdomain(text string) Subdomain {
	s, err := NewSubdomain(text)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Subdomain) IsWildcard() bool {
	return s.text == Wildcard
}

func (s Subdomain) EqualFold(other Subdomain) bool {
	return s.equalFold(other.label)
}

func (s Subdomain) MarshalText() ([]byte, error) {
	return []byte(s.text), nil
}

func (s *Subdomain) UnmarshalText(text []byte) error {
	parsed, err := NewSubdomain(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
