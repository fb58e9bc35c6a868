package token

import "strings"

// Span is the half-open character range a field owns within a line. It runs
// from the field's first character up to the start of the next field, so the
// whitespace padding after a token belongs to that token's span and is
// reconstructed on replacement.
type Span struct {
	Start int
	End   int
}

// Width returns the number of characters the span allocates.
func (s Span) Width() int {
	return s.End - s.Start
}

// FieldSpan resolves the span owned by the idx-th token (0-based) of a record
// line. For the last token the span extends to the end of the line content,
// excluding any stray line-ending characters. ok is false when the line has
// no token at that index.
func FieldSpan(line string, idx int) (Span, bool) {
	tokens := Tokenize(line)
	if idx < 0 || idx >= len(tokens) {
		return Span{}, false
	}

	span := Span{Start: tokens[idx].Start}
	if idx+1 < len(tokens) {
		span.End = tokens[idx+1].Start
	} else {
		span.End = len(strings.TrimRight(line, "\r\n"))
	}
	return span, true
}
