package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestIsValidLabel(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		policy LabelPolicy
		want   bool
	}{
		{"single letter", "a", SLDPolicy, true},
		{"single digit", "7", SLDPolicy, true},
		{"internal hyphen", "my-host", SLDPolicy, true},
		{"double hyphen", "my--host", SLDPolicy, true},
		{"63 characters", strings.Repeat("a", 63), SLDPolicy, true},
		{"64 characters", strings.Repeat("a", 64), SLDPolicy, false},
		{"empty", "", SLDPolicy, false},
		{"leading hyphen", "-host", SLDPolicy, false},
		{"trailing hyphen", "host-", SLDPolicy, false},
		{"only hyphen", "-", SLDPolicy, false},
		{"underscore", "my_host", SLDPolicy, false},
		{"space", "my host", SLDPolicy, false},
		{"dot", "a.b", SLDPolicy, false},
		{"non ascii", "тест", SLDPolicy, false},
		{"wildcard not in sld policy", "*", SLDPolicy, false},
		{"wildcard literal", "*", SubdomainPolicy, true},
		{"alphabetic letters", "com", TLDPolicy, true},
		{"alphabetic rejects digits", "c0m", TLDPolicy, false},
		{"alphabetic rejects hyphen", "co-m", TLDPolicy, false},
		{"tld too short", "c", TLDPolicy, false},
		{"ace label", "xn--p1ai", TLDPolicy, true},
		{"ace label upper case", "XN--P1AI", TLDPolicy, true},
		{"ace label trailing hyphen", "xn--p1ai-", TLDPolicy, false},
		{"zero policy uses defaults", "host", LabelPolicy{}, true},
		{"zero policy rejects empty", "", LabelPolicy{}, false},
		{"custom max length", "abcd", LabelPolicy{MaxLength: 3}, false},
		{"custom min length", "ab", LabelPolicy{MinLength: 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidLabel(tt.text, tt.policy); got != tt.want {
				t.Errorf("IsValidLabel(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestNewSubdomain(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"plain", "www", false},
		{"wildcard", "*", false},
		{"digits", "123", false},
		{"empty", "", true},
		{"double wildcard", "**", true},
		{"wildcard prefix", "*a", true},
		{"leading hyphen", "-www", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := NewSubdomain(tt.text)

			if tt.wantErr {
				var parseErr *SubdomainParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("NewSubdomain() error = %v, want *SubdomainParseError", err)
				}
				if parseErr.Text != tt.text {
					t.Errorf("SubdomainParseError.Text = %q, want %q", parseErr.Text, tt.text)
				}
				if !errors.Is(err, ErrInvalidLabel) {
					t.Errorf("NewSubdomain() error does not match ErrInvalidLabel")
				}
				return
			}

			if err != nil {
				t.Fatalf("NewSubdomain() unexpected error: %v", err)
			}
			if sub.String() != tt.text {
				t.Errorf("String() = %q, want %q", sub.String(), tt.text)
			}
		})
	}
}

func TestSubdomain_CharacterSequence(t *testing.T) {
	sub := MustSubdomain("mail-01")

	if sub.Len() != 7 {
		t.Errorf("Len() = %d, want 7", sub.Len())
	}
	if sub.At(0) != 'm' {
		t.Errorf("At(0) = %q, want 'm'", sub.At(0))
	}
	if sub.Slice(5, 7) != "01" {
		t.Errorf("Slice(5, 7) = %q, want \"01\"", sub.Slice(5, 7))
	}
	if sub.IsWildcard() {
		t.Errorf("IsWildcard() = true, want false")
	}
	if !MustSubdomain("*").IsWildcard() {
		t.Errorf("IsWildcard() = false for \"*\"")
	}
}

func TestLabelEquality(t *testing.T) {
	upper := MustSubdomain("WWW")
	lower := MustSubdomain("www")

	if upper == lower {
		t.Errorf("subdomains with different case compare equal")
	}
	if !upper.EqualFold(lower) {
		t.Errorf("EqualFold() = false, want true")
	}
	if MustSubdomain("www") != lower {
		t.Errorf("identical subdomains compare unequal")
	}

	if MustSLD("Example") == MustSLD("example") {
		t.Errorf("SLDs with different case compare equal")
	}
	if !MustSLD("Example").EqualFold(MustSLD("example")) {
		t.Errorf("SLD EqualFold() = false, want true")
	}

	if MustTLD("COM") == MustTLD("com") {
		t.Errorf("TLDs with different case compare equal")
	}
	if !MustTLD("COM").EqualFold(MustTLD("com")) {
		t.Errorf("TLD EqualFold() = false, want true")
	}
}

func TestNewSLD(t *testing.T) {
	tests := []struct {
		text    string
		wantErr bool
	}{
		{"example", false},
		{"a", false},
		{"123", false},
		{"ex-ample", false},
		{"*", true},
		{"", true},
		{"example-", true},
		{strings.Repeat("b", 64), true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := NewSLD(tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewSLD(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
			if err != nil {
				var parseErr *SLDParseError
				if !errors.As(err, &parseErr) {
					t.Errorf("NewSLD() error = %T, want *SLDParseError", err)
				}
			}
		})
	}
}

func TestNewTLD(t *testing.T) {
	tests := []struct {
		text    string
		wantErr bool
	}{
		{"com", false},
		{"io", false},
		{"COM", false},
		{"xn--p1ai", false},
		{"c", true},
		{"c0m", true},
		{"*", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			tld, err := NewTLD(tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewTLD(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
			if err != nil {
				var parseErr *TLDParseError
				if !errors.As(err, &parseErr) {
					t.Errorf("NewTLD() error = %T, want *TLDParseError", err)
				}
				if !tld.IsZero() {
					t.Errorf("NewTLD() returned non-zero TLD on error")
				}
			}
		})
	}
}

func TestLabel_UnmarshalText(t *testing.T) {
	var sub Subdomain
	if err := sub.UnmarshalText([]byte("api")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if sub.String() != "api" {
		t.Errorf("UnmarshalText() = %q, want \"api\"", sub.String())
	}

	var tld TLD
	if err := tld.UnmarshalText([]byte("123")); err == nil {
		t.Errorf("UnmarshalText() expected error for numeric TLD")
	}
	if !tld.IsZero() {
		t.Errorf("failed UnmarshalText() modified the receiver")
	}
}

func TestParsePort(t *testing.T) {
	tests := []struct {
		text    string
		want    Port
		wantErr bool
	}{
		{"0", 0, false},
		{"80", 80, false},
		{"8080", 8080, false},
		{"65535", 65535, false},
		{"65536", 0, true},
		{"99999", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"-1", 0, true},
		{"+80", 0, true},
		{" 80", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParsePort(tt.text)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPort) {
					t.Errorf("ParsePort(%q) error = %v, want ErrInvalidPort", tt.text, err)
				}
				if ValidatePort(tt.text) {
					t.Errorf("ValidatePort(%q) = true, want false", tt.text)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePort(%q) unexpected error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParsePort(%q) = %d, want %d", tt.text, got, tt.want)
			}
			if got.String() != tt.text {
				t.Errorf("String() = %q, want %q", got.String(), tt.text)
			}
		})
	}
}
