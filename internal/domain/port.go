package domain

import (
	"strconv"
)

// Port is a TCP/UDP port number written after a host.
type Port uint16

func ValidatePort(text string) bool {
	_, err := ParsePort(text)
	return err == nil
}

// ParsePort accepts decimal digits only, in the range 0-65535.
func ParsePort(text string) (Port, error) {
	if text == "" {
		return 0, &PortParseError{Text: text}
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return 0, &PortParseError{Text: text}
		}
	}

	n, err := strconv.ParseUint(text, 10, 16)
	if err != nil {
		return 0, &PortParseError{Text: text}
	}
	return Port(n), nil
}

func (p Port) String() string {
	return strconv.FormatUint(uint64(p), 10)
}
