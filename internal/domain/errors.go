package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLabel        = errors.New("invalid label")
	ErrInvalidPort         = errors.New("invalid port")
	ErrInvalidDomain       = errors.New("invalid domain name")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrEmptyHost           = errors.New("host cannot be empty")
	ErrInvalidHost         = errors.New("invalid host format")
	ErrNormalizationFailed = errors.New("host normalization failed")
	ErrInvalidHostList     = errors.New("host list is invalid")
)

type SubdomainParseError struct {
	Text string
}

func (e *SubdomainParseError) Error() string {
	return fmt.Sprintf("invalid subdomain %q", e.Text)
}

func (e *SubdomainParseError) Unwrap() error {
	return ErrInvalidLabel
}

type SLDParseError struct {
	Text string
}

func (e *SLDParseError) Error() string {
	return fmt.Sprintf("invalid second-level domain %q", e.Text)
}

func (e *SLDParseError) Unwrap() error {
	return ErrInvalidLabel
}

type TLDParseError struct {
	Text string
}

func (e *TLDParseError) Error() string {
	return fmt.Sprintf("invalid top-level domain %q", e.Text)
}

func (e *TLDParseError) Unwrap() error {
	return ErrInvalidLabel
}

type PortParseError struct {
	Text string
}

func (e *PortParseError) Error() string {
	return fmt.Sprintf("invalid port %q", e.Text)
}

func (e *PortParseError) Unwrap() error {
	return ErrInvalidPort
}

// DomainParseError reports raw input that is not a domain name. Cause, when
// set, is the label or port error that rejected it.
type DomainParseError struct {
	Input string
	Cause error
}

func (e *DomainParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cannot parse domain name %q: %v", e.Input, e.Cause)
	}
	return fmt.Sprintf("cannot parse domain name %q", e.Input)
}

func (e *DomainParseError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrInvalidDomain, e.Cause}
	}
	return []error{ErrInvalidDomain}
}

// CompositionError reports already-typed parts that cannot form a Domain.
type CompositionError struct {
	Reason string
}

func (e *CompositionError) Error() string {
	return fmt.Sprintf("invalid domain composition: %s", e.Reason)
}

func (e *CompositionError) Unwrap() error {
	return ErrInvalidArgument
}

func newDomainParseError(input string, cause error) *DomainParseError {
	return &DomainParseError{Input: input, Cause: cause}
}
