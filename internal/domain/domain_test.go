package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"plain domain", "example.com", true},
		{"subdomain", "www.example.com", true},
		{"deep subdomain", "a.b.c.example.com", true},
		{"mixed case", "WWW.Example.COM", true},
		{"wildcard", "*.example.com", true},
		{"localhost", "localhost", true},
		{"localhost upper case", "LOCALHOST", true},
		{"localhost with subdomain", "api.localhost", true},
		{"localhost with port", "localhost:3000", true},
		{"wildcard localhost", "*.localhost", true},
		{"with port", "example.com:8080", true},
		{"port zero", "example.com:0", true},
		{"max port", "example.com:65535", true},
		{"ace tld", "xn--e1aybc.xn--p1ai", true},
		{"63 char label", strings.Repeat("a", 63) + ".com", true},
		{"single char labels", "a.b.io", true},

		{"empty", "", false},
		{"port only", ":80", false},
		{"single label", "example", false},
		{"three colon segments", "a:b:c", false},
		{"port out of range", "example.com:99999", false},
		{"port not numeric", "example.com:abc", false},
		{"empty port", "example.com:", false},
		{"64 char label", strings.Repeat("a", 64) + ".com", false},
		{"leading hyphen", "-example.com", false},
		{"trailing hyphen", "example-.com", false},
		{"subdomain trailing hyphen", "www-.example.com", false},
		{"numeric tld", "example.123", false},
		{"one letter tld", "example.c", false},
		{"empty label", "www..example.com", false},
		{"leading dot", ".example.com", false},
		{"trailing dot", "example.com.", false},
		{"two wildcards", "*.*.example.com", false},
		{"wildcard with sibling", "*.a.example.com", false},
		{"sibling with wildcard", "a.*.example.com", false},
		{"wildcard as sld", "*.com", false},
		{"embedded space", "exam ple.com", false},
		{"underscore", "my_host.example.com", false},
		{"ipv6 literal", "[::1]:80", false},
		{"url", "https://example.com", false},
		{"too long host", strings.Repeat(strings.Repeat("a", 60)+".", 5) + "com", false},
		{"253 octet host", strings.Repeat(strings.Repeat("a", 63)+".", 3) + strings.Repeat("a", 57) + ".com", true},
		{"254 octet host", strings.Repeat(strings.Repeat("a", 63)+".", 3) + strings.Repeat("a", 58) + ".com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(tt.raw); got != tt.want {
				t.Errorf("Validate(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			if got := Validate(tt.raw); got != tt.want {
				t.Errorf("second Validate(%q) = %v, want %v", tt.raw, got, tt.want)
			}

			_, err := Parse(tt.raw)
			if (err == nil) != tt.want {
				t.Errorf("Parse(%q) error = %v, Validate = %v", tt.raw, err, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		subdomains []string
		sld        string
		tld        string
		localhost  bool
	}{
		{"standard", "www.example.com", []string{"www"}, "example", "com", false},
		{"no subdomain", "example.com", []string{}, "example", "com", false},
		{"ordered subdomains", "a.b.example.com", []string{"a", "b"}, "example", "com", false},
		{"localhost", "localhost", []string{}, "localhost", "", true},
		{"localhost subdomain", "api.localhost", []string{"api"}, "localhost", "", true},
		{"localhost keeps case", "LocalHost", []string{}, "LocalHost", "", true},
		{"port discarded", "example.com:8080", []string{}, "example", "com", false},
		{"wildcard", "*.example.com", []string{"*"}, "example", "com", false},
		{"case kept", "WWW.Example.COM", []string{"WWW"}, "Example", "COM", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse(tt.raw)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.raw, err)
			}

			subs := d.Subdomains()
			if len(subs) != len(tt.subdomains) {
				t.Fatalf("Subdomains() = %v, want %v", subs, tt.subdomains)
			}
			for i, sub := range subs {
				if sub.String() != tt.subdomains[i] {
					t.Errorf("Subdomains()[%d] = %q, want %q", i, sub, tt.subdomains[i])
				}
			}

			if d.SLD().String() != tt.sld {
				t.Errorf("SLD() = %q, want %q", d.SLD(), tt.sld)
			}

			tld, ok := d.TLD()
			if ok != (tt.tld != "") {
				t.Errorf("TLD() present = %v, want %v", ok, tt.tld != "")
			}
			if tld.String() != tt.tld {
				t.Errorf("TLD() = %q, want %q", tld, tt.tld)
			}

			if d.IsLocalhost() != tt.localhost {
				t.Errorf("IsLocalhost() = %v, want %v", d.IsLocalhost(), tt.localhost)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		cause error
	}{
		{"bad tld", "example.c0m", &TLDParseError{}},
		{"bad sld", "www.-example.com", &SLDParseError{}},
		{"bad subdomain", "w_w.example.com", &SubdomainParseError{}},
		{"bad port", "example.com:http", &PortParseError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw)
			if err == nil {
				t.Fatalf("Parse(%q) expected error, got nil", tt.raw)
			}

			var parseErr *DomainParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Parse() error = %T, want *DomainParseError", err)
			}
			if parseErr.Input != tt.raw {
				t.Errorf("DomainParseError.Input = %q, want %q", parseErr.Input, tt.raw)
			}
			if !errors.Is(err, ErrInvalidDomain) {
				t.Errorf("Parse() error does not match ErrInvalidDomain")
			}
			if errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Parse() error matches ErrInvalidArgument")
			}

			switch tt.cause.(type) {
			case *TLDParseError:
				var target *TLDParseError
				if !errors.As(err, &target) {
					t.Errorf("Parse() cause = %v, want *TLDParseError", parseErr.Cause)
				}
			case *SLDParseError:
				var target *SLDParseError
				if !errors.As(err, &target) {
					t.Errorf("Parse() cause = %v, want *SLDParseError", parseErr.Cause)
				}
			case *SubdomainParseError:
				var target *SubdomainParseError
				if !errors.As(err, &target) {
					t.Errorf("Parse() cause = %v, want *SubdomainParseError", parseErr.Cause)
				}
			case *PortParseError:
				if !errors.Is(err, ErrInvalidPort) {
					t.Errorf("Parse() cause = %v, want ErrInvalidPort", parseErr.Cause)
				}
			}
		})
	}
}

func TestParse_EmptyHost(t *testing.T) {
	for _, raw := range []string{"", ":80"} {
		_, err := Parse(raw)
		if !errors.Is(err, ErrEmptyHost) {
			t.Errorf("Parse(%q) error = %v, want ErrEmptyHost", raw, err)
		}
		if !errors.Is(err, ErrInvalidDomain) {
			t.Errorf("Parse(%q) error does not match ErrInvalidDomain", raw)
		}
	}
}

func TestParseHostPort(t *testing.T) {
	d, port, ok, err := ParseHostPort("example.com:8080")
	if err != nil {
		t.Fatalf("ParseHostPort() unexpected error: %v", err)
	}
	if !ok || port != 8080 {
		t.Errorf("ParseHostPort() port = %d, %v, want 8080, true", port, ok)
	}
	if got := d.StringWithPort(port); got != "example.com:8080" {
		t.Errorf("StringWithPort() = %q, want \"example.com:8080\"", got)
	}

	_, _, ok, err = ParseHostPort("example.com")
	if err != nil {
		t.Fatalf("ParseHostPort() unexpected error: %v", err)
	}
	if ok {
		t.Errorf("ParseHostPort() reported a port for input without one")
	}

	if _, _, _, err := ParseHostPort("example.com:99999"); err == nil {
		t.Errorf("ParseHostPort() expected error for out of range port")
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"example.com",
		"www.example.com",
		"a.b.c.example.com",
		"WWW.Example.COM",
		"localhost",
		"api.localhost",
		"*.example.com",
		"*.localhost",
		"xn--e1aybc.xn--p1ai",
		strings.Repeat("a", 63) + ".io",
	}

	for _, raw := range inputs {
		t.Run(raw, func(t *testing.T) {
			d := MustParse(raw)
			if d.String() != raw {
				t.Errorf("String() = %q, want %q", d.String(), raw)
			}

			again, err := Parse(d.String())
			if err != nil {
				t.Fatalf("Parse(String()) unexpected error: %v", err)
			}
			if !again.Equal(d) {
				t.Errorf("Parse(String()) = %v, want %v", again, d)
			}
			if again.Hash() != d.Hash() {
				t.Errorf("Hash() differs after round trip")
			}
		})
	}
}

func TestRoundTrip_Create(t *testing.T) {
	d, err := Create(
		[]Subdomain{MustSubdomain("api"), MustSubdomain("v2")},
		MustSLD("example"),
		MustTLD("org"),
	)
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	parsed, err := Parse(d.String())
	if err != nil {
		t.Fatalf("Parse(%q) unexpected error: %v", d.String(), err)
	}
	if !parsed.Equal(d) {
		t.Errorf("Parse(Create().String()) = %v, want %v", parsed, d)
	}
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name       string
		subdomains []Subdomain
		sld        SLD
		tld        TLD
		wantErr    bool
	}{
		{"no subdomains", nil, MustSLD("example"), MustTLD("com"), false},
		{"one subdomain", []Subdomain{MustSubdomain("www")}, MustSLD("example"), MustTLD("com"), false},
		{"lone wildcard", []Subdomain{MustSubdomain("*")}, MustSLD("example"), MustTLD("com"), false},
		{"localhost", nil, MustSLD("localhost"), TLD{}, false},
		{"localhost subdomain", []Subdomain{MustSubdomain("api")}, MustSLD("LOCALHOST"), TLD{}, false},
		{"localhost as sld with tld", nil, MustSLD("localhost"), MustTLD("com"), false},

		{"wildcard first", []Subdomain{MustSubdomain("*"), MustSubdomain("a")}, MustSLD("example"), MustTLD("com"), true},
		{"wildcard last", []Subdomain{MustSubdomain("a"), MustSubdomain("*")}, MustSLD("example"), MustTLD("com"), true},
		{"two wildcards", []Subdomain{MustSubdomain("*"), MustSubdomain("*")}, MustSLD("example"), MustTLD("com"), true},
		{"missing tld", nil, MustSLD("example"), TLD{}, true},
		{"missing sld", nil, SLD{}, MustTLD("com"), true},
		{"zero subdomain", []Subdomain{{}}, MustSLD("example"), MustTLD("com"), true},
		{"localhost tld", nil, MustSLD("example"), MustTLD("localhost"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Create(tt.subdomains, tt.sld, tt.tld)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("Create() expected error, got %v", d)
				}
				var compErr *CompositionError
				if !errors.As(err, &compErr) {
					t.Errorf("Create() error = %T, want *CompositionError", err)
				}
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("Create() error does not match ErrInvalidArgument")
				}
				if errors.Is(err, ErrInvalidDomain) {
					t.Errorf("Create() error matches ErrInvalidDomain")
				}
				return
			}

			if err != nil {
				t.Fatalf("Create() unexpected error: %v", err)
			}
			if len(d.Subdomains()) != len(tt.subdomains) {
				t.Errorf("Subdomains() length = %d, want %d", len(d.Subdomains()), len(tt.subdomains))
			}
		})
	}
}

func TestCreate_TooLong(t *testing.T) {
	label := MustSubdomain(strings.Repeat("a", 63))
	subs := []Subdomain{label, label, label, label}

	if _, err := Create(subs, MustSLD("example"), MustTLD("com")); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Create() error = %v, want ErrInvalidArgument", err)
	}
}

func TestDomain_Immutability(t *testing.T) {
	subs := []Subdomain{MustSubdomain("a"), MustSubdomain("b")}
	d, err := Create(subs, MustSLD("example"), MustTLD("com"))
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	subs[0] = MustSubdomain("changed")
	if d.String() != "a.b.example.com" {
		t.Errorf("mutating the input slice changed the domain: %q", d.String())
	}

	view := d.Subdomains()
	view[1] = MustSubdomain("changed")
	if d.String() != "a.b.example.com" {
		t.Errorf("mutating Subdomains() changed the domain: %q", d.String())
	}
}

func TestDomain_Equal(t *testing.T) {
	tests := []struct {
		name      string
		a, b      string
		equal     bool
		equalFold bool
	}{
		{"identical", "www.example.com", "www.example.com", true, true},
		{"case differs", "WWW.Example.COM", "www.example.com", false, true},
		{"order matters", "a.b.example.com", "b.a.example.com", false, false},
		{"extra subdomain", "a.example.com", "a.a.example.com", false, false},
		{"different tld", "example.com", "example.org", false, false},
		{"localhost vs tld", "localhost", "localhost.com", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := MustParse(tt.a), MustParse(tt.b)

			if got := a.Equal(b); got != tt.equal {
				t.Errorf("Equal() = %v, want %v", got, tt.equal)
			}
			if got := b.Equal(a); got != tt.equal {
				t.Errorf("Equal() is not symmetric")
			}
			if tt.equal && a.Hash() != b.Hash() {
				t.Errorf("equal domains have different hashes")
			}
			if got := a.EqualFold(b); got != tt.equalFold {
				t.Errorf("EqualFold() = %v, want %v", got, tt.equalFold)
			}
		})
	}
}

func TestDomain_Address(t *testing.T) {
	var addr Address = MustParse("www.example.com")

	if addr.Name() != "example.com" {
		t.Errorf("Name() = %q, want \"example.com\"", addr.Name())
	}
	if string(addr.Bytes()) != "www.example.com" {
		t.Errorf("Bytes() = %q, want \"www.example.com\"", addr.Bytes())
	}
	if got := addr.StringWithPort(443); got != "www.example.com:443" {
		t.Errorf("StringWithPort() = %q, want \"www.example.com:443\"", got)
	}

	if got := MustParse("api.localhost").Name(); got != "localhost" {
		t.Errorf("Name() = %q, want \"localhost\"", got)
	}
}

func TestDomain_Labels(t *testing.T) {
	got := MustParse("a.b.example.com").Labels()
	want := []string{"a", "b", "example", "com"}

	if len(got) != len(want) {
		t.Fatalf("Labels() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Labels()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDomain_TextMarshaling(t *testing.T) {
	var d Domain
	if err := d.UnmarshalText([]byte("api.example.com")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	text, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if string(text) != "api.example.com" {
		t.Errorf("MarshalText() = %q, want \"api.example.com\"", text)
	}

	if err := d.UnmarshalText([]byte("not a domain")); err == nil {
		t.Errorf("UnmarshalText() expected error")
	}
}
