package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/portfolio-tracker-go/pkg/tracker/models"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultDelimiter is used when a descriptor does not set one.
const DefaultDelimiter = ','

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// LoadTable reads the file described by d into a Table. Errors returned
// here mean the file could not be opened or read at all. An empty Format is
// inferred from the file extension.
func LoadTable(d models.SourceDescriptor) (models.Table, error) {
	format := d.Format
	if format == "" {
		format = FormatFromPath(d.Path)
	}
	switch format {
	case models.FormatXLSX:
		return ReadWorkbook(d.Path, d.Sheet)
	case models.FormatCSV:
		f, err := os.Open(d.Path)
		if err != nil {
			return models.Table{}, err
		}
		defer f.Close()
		return ReadCSV(f, d.Delimiter, d.Encoding)
	default:
		return models.Table{}, fmt.Errorf("unsupported format %q", d.Format)
	}
}

// ReadCSV decodes r with the named encoding, repairs the header line and
// parses the delimited records. A stream with no lines yields an empty Table.
func ReadCSV(r io.Reader, delim rune, enc string) (models.Table, error) {
	if delim == 0 {
		delim = DefaultDelimiter
	}
	dec, err := LookupEncoding(enc)
	if err != nil {
		return models.Table{}, err
	}
	data, err := io.ReadAll(transform.NewReader(r, unicode.BOMOverride(dec.NewDecoder())))
	if err != nil {
		return models.Table{}, fmt.Errorf("decode: %w", err)
	}

	lines := splitLines(string(data))
	if len(lines) == 0 {
		return models.Table{}, nil
	}
	lines = RepairHeader(lines, delim)

	cr := csv.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return models.Table{}, fmt.Errorf("parse: %w", err)
	}
	if len(records) == 0 {
		return models.Table{}, nil
	}
	return models.NewTable(records[0], records[1:]), nil
}

// LookupEncoding resolves a WHATWG encoding label. An empty label and
// "utf-8-sig" both mean UTF-8; a leading byte order mark is always honoured.
func LookupEncoding(label string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "", "utf-8", "utf8", "utf-8-sig":
		return unicode.UTF8, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", label, err)
	}
	return enc, nil
}

// splitLines splits text on LF, CRLF or bare CR line endings, dropping the
// empty tail left by a final line terminator.
func splitLines(text string) []string {
	text = lineEndings.Replace(text)
	text = strings.TrimSuffix(text, "\n")
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// FormatFromPath infers the source format from a file name.
func FormatFromPath(path string) models.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return models.FormatXLSX
	default:
		return models.FormatCSV
	}
}
