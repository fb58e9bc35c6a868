// Package token extracts the whitespace-delimited tokens of a .catg record
// line together with their exact character offsets, and resolves the span a
// field owns so it can be rewritten in place without disturbing alignment.
// Tokens are derived on demand, never stored.
package token

import (
	"strings"
	"unicode"

	"catgedit/pkg/catg"
)

// Token is a maximal non-whitespace run within a record line. Start and End
// are character offsets into the full line, End exclusive, so callers can cut
// the exact range back out of the original text.
type Token struct {
	Start int
	End   int
	Text  string
}

// Tokenize returns the ordered tokens of a record line. A line that does not
// begin with the record marker yields no tokens; that is how callers tell a
// non-record line apart, it is not an error. Offsets account for the
// one-character marker prefix, so Token.Start indexes into the full line.
func Tokenize(line string) []Token {
	if !strings.HasPrefix(line, catg.Marker) {
		return nil
	}

	var tokens []Token
	start := -1
	for i, r := range line {
		if i == 0 {
			// The marker itself is never a token.
			continue
		}
		if unicode.IsSpace(r) {
			if start >= 0 {
				tokens = append(tokens, Token{Start: start, End: i, Text: line[start:i]})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, Token{Start: start, End: len(line), Text: line[start:]})
	}
	return tokens
}
