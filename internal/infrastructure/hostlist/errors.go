package hostlist

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrAllSourcesFailed indicates all configured sources failed
	ErrAllSourcesFailed = errors.New("all host list sources failed")

	// ErrEmptyData indicates no data was received from source
	ErrEmptyData = errors.New("empty host list data received")

	// ErrNoEntries indicates the data held no valid host
	ErrNoEntries = errors.New("no valid hosts found")

	// ErrUnsupportedFormat indicates the data format is not supported
	ErrUnsupportedFormat = errors.New("unsupported host list format")
)

// SourceError wraps errors from host list sources with additional context
type SourceError struct {
	Source    string
	Operation string
	Cause     error
	Timestamp time.Time
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("host list source %q failed during %s: %v (at %s)",
		e.Source, e.Operation, e.Cause, e.Timestamp.Format(time.RFC3339))
}

func (e *SourceError) Unwrap() error {
	return e.Cause
}

func NewSourceError(source, operation string, cause error) *SourceError {
	return &SourceError{
		Source:    source,
		Operation: operation,
		Cause:     cause,
		Timestamp: time.Now(),
	}
}

// ParsingError wraps errors that occur while reading host list data
type ParsingError struct {
	Format string
	Line   int
	Cause  error
}

func (e *ParsingError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parsing %s host list failed at line %d: %v", e.Format, e.Line, e.Cause)
	}
	return fmt.Sprintf("parsing %s host list failed: %v", e.Format, e.Cause)
}

func (e *ParsingError) Unwrap() error {
	return e.Cause
}

func NewParsingError(format string, cause error) *ParsingError {
	return &ParsingError{
		Format: format,
		Cause:  cause,
	}
}
