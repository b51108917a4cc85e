package domain

// TLD is the rightmost label of a Domain. The zero TLD means no TLD, which
// only the localhost pseudo-domain may have.
type TLD struct {
	label
}

func ValidateTLD(text string) bool {
	return IsValidLabel(text, TLDPolicy)
}

func NewTLD(text string) (TLD, error) {
	if !ValidateTLD(text) {
		return TLD{}, &TLDParseError{Text: text}
	}
	return TLD{label{text}}, nil
}

func MustTLD(text string) TLD {
	t, err := NewTLD(text)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TLD) EqualFold(other TLD) bool {
	return t.equalFold(other.label)
}

func (t TLD) MarshalText() ([]byte, error) {
	return []byte(t.text), nil
}

func (t *TLD) UnmarshalText(text []byte) error {
	parsed, err := NewTLD(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
