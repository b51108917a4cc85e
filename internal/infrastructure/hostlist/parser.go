package hostlist

import (
	"archive/zip"
	"bytes"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/kerim-dauren/hostname/internal/domain"
)

const (
	formatText = "text"
	formatZIP  = "zip"

	versionLength = 16
	headerField   = "host"
)

// Normalizer rewrites a raw list entry into the text form accepted by
// domain.Parse. Implemented by normalizer.HostNormalizer.
type Normalizer interface {
	Normalize(raw string) (string, error)
}

// Parser turns raw host list data into a domain.HostList.
//
// A host list is line oriented: each non-blank, non-comment line is a record
// whose first ';'-separated field is a host name. Lines starting with '#' are
// comments. A ZIP archive holding such a file is accepted as well.
type Parser struct {
	normalizer Normalizer
}

func NewParser() *Parser {
	return &Parser{}
}

// NewNormalizingParser returns a parser that passes every entry through n
// before parsing, so Unicode names and URLs in the list are accepted.
func NewNormalizingParser(n Normalizer) *Parser {
	return &Parser{normalizer: n}
}

func (p *Parser) Parse(data []byte) (*domain.HostList, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	format, err := p.detectFormat(data)
	if err != nil {
		return nil, fmt.Errorf("detecting format: %w", err)
	}

	switch format {
	case formatZIP:
		return p.parseZIP(data)
	case formatText:
		return p.parseText(data)
	default:
		return nil, NewParsingError(format, ErrUnsupportedFormat)
	}
}

// detectFormat detects the data format based on content
func (p *Parser) detectFormat(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyData
	}

	if bytes.HasPrefix(data, []byte{0x50, 0x4B, 0x03, 0x04}) ||
		bytes.HasPrefix(data, []byte{0x50, 0x4B, 0x05, 0x06}) ||
		bytes.HasPrefix(data, []byte{0x50, 0x4B, 0x07, 0x08}) {
		return formatZIP, nil
	}

	sample := data[:min(1024, len(data))]
	if bytes.IndexByte(sample, 0) >= 0 {
		return "", ErrUnsupportedFormat
	}

	return formatText, nil
}

// parseZIP parses the first list file found in the archive.
func (p *Parser) parseZIP(data []byte) (*domain.HostList, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, NewParsingError(formatZIP, fmt.Errorf("opening ZIP: %w", err))
	}

	for _, file := range reader.File {
		if file.FileInfo().IsDir() || !isListFile(file.Name) {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			continue
		}

		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			continue
		}

		list, err := p.parseText(content)
		if err == nil {
			list.Version = version(data)
			return list, nil
		}
	}

	return nil, NewParsingError(formatZIP, fmt.Errorf("no host list found in archive"))
}

func isListFile(name string) bool {
	name = strings.ToLower(name)
	return strings.HasSuffix(name, ".csv") || strings.HasSuffix(name, ".txt") || strings.HasSuffix(name, ".list")
}

func (p *Parser) parseText(data []byte) (*domain.HostList, error) {
	text, err := decode(data)
	if err != nil {
		return nil, NewParsingError(formatText, err)
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = ';'
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	list := domain.NewHostList()
	list.Version = version(data)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, &ParsingError{Format: formatText, Line: parseErr.Line, Cause: err}
			}
			return nil, NewParsingError(formatText, err)
		}

		line, _ := reader.FieldPos(0)
		entry := strings.TrimSpace(record[0])
		if entry == "" {
			continue
		}
		if line == 1 && strings.EqualFold(entry, headerField) {
			continue
		}

		host, err := p.parseEntry(entry)
		if err != nil {
			list.Reject(line, entry, err)
			continue
		}
		list.Add(host)
	}

	if list.Size() == 0 {
		return nil, NewParsingError(formatText, ErrNoEntries)
	}

	return list, nil
}

func (p *Parser) parseEntry(entry string) (domain.Domain, error) {
	if p.normalizer != nil {
		normalized, err := p.normalizer.Normalize(entry)
		if err != nil {
			return domain.Domain{}, err
		}
		entry = normalized
	}

	host, port, hasPort, err := domain.ParseHostPort(entry)
	if err != nil {
		return domain.Domain{}, err
	}
	if hasPort {
		return domain.Domain{}, fmt.Errorf("%w: unexpected port %s", domain.ErrInvalidHost, port)
	}
	return host, nil
}

// decode returns data as UTF-8, falling back to Windows-1251 for lists
// exported by legacy tooling.
func decode(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if utf8.Valid(data) {
		return string(data), nil
	}

	result, err := charmap.Windows1251.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding windows-1251: %w", err)
	}
	return string(result), nil
}

func version(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:versionLength]
}
