package domain

// SLD is the second-level label, the mandatory name part of a Domain.
type SLD struct {
	label
}

func ValidateSLD(text string) bool {
	return IsValidLabel(text, SLDPolicy)
}

func NewSLD(text string) (SLD, error) {
	if !ValidateSLD(text) {
		return SLD{}, &SLDParseError{Text: text}
	}
	return SLD{label{text}}, nil
}

func MustSLD(text string) SLD {
	s, err := NewSLD(text)
	if err != nil {
		panic(err)
	}
	return s
}

// IsLocalhost reports whether the label is "localhost" in any letter case.
func (s SLD) IsLocalhost() bool {
	return isLocalhostLabel(s.text)
}

func (s SLD) EqualFold(other SLD) bool {
	return s.equalFold(other.label)
}

func (s SLD) MarshalText() ([]byte, error) {
	return []byte(s.text), nil
}

func (s *SLD) UnmarshalText(text []byte) error {
	parsed, err := NewSLD(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
