package parser

import (
	"strings"
	"unicode"
)

// RepairHeader appends one delimiter to the header line when it does not
// already end with one. Some broker exports terminate every data row with an
// empty trailing field but leave it off the header, which shifts the columns.
// Lines other than the first are returned unchanged and lines is not modified.
func RepairHeader(lines []string, delim rune) []string {
	if len(lines) == 0 {
		return lines
	}
	header := strings.TrimRightFunc(lines[0], func(r rune) bool {
		return r != delim && unicode.IsSpace(r)
	})
	if header == "" || strings.HasSuffix(header, string(delim)) {
		return lines
	}
	out := make([]string, len(lines))
	copy(out, lines)
	out[0] = header + string(delim)
	return out
}
