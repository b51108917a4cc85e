package domain

// Address is a network address that can be rendered with a port.
type Address interface {
	// Bytes returns the UTF-8 encoding of the canonical text form.
	Bytes() []byte

	// Name returns the registrable part of the address.
	Name() string

	StringWithPort(port Port) string
}

var _ Address = Domain{}
