// Package lineio decodes a .catg byte stream into lines and re-encodes the
// edited lines with the original line-ending convention intact, including
// whether the file ended with a trailing line break.
package lineio

import (
	"bytes"
	"strings"
)

const (
	crlf = "\r\n"
	lf   = "\n"
)

// Document is the decoded form of one file: its lines without line endings,
// plus enough of the original text to reproduce its exact byte layout when
// the edited lines are encoded again.
type Document struct {
	Lines  []string
	ending string
	text   string
}

// Decode splits content into lines. If the stream contains a CRLF sequence
// anywhere, every line break is treated as CRLF and carriage returns are
// stripped from the split lines; otherwise plain LF is used throughout.
func Decode(content []byte) *Document {
	text := string(content)
	ending := lf
	if bytes.Contains(content, []byte(crlf)) {
		ending = crlf
	}

	lines := strings.Split(text, "\n")
	if ending == crlf {
		for i, line := range lines {
			lines[i] = strings.TrimRight(line, "\r")
		}
	}

	return &Document{Lines: lines, ending: ending, text: text}
}

// Ending returns the line-ending sequence detected on decode.
func (d *Document) Ending() string {
	return d.ending
}

// Encode joins lines with the detected ending and matches the original file's
// trailing-newline presence: a final line break is appended only when the
// source had one and the join did not already produce it.
func (d *Document) Encode(lines []string) []byte {
	out := strings.Join(lines, d.ending)
	if strings.HasSuffix(d.text, lf) && !strings.HasSuffix(out, lf) {
		out += d.ending
	}
	return []byte(out)
}
