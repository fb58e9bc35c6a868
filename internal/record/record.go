// Package record classifies .catg record lines by their token shape. The
// format declares no per-variant schema (optional fields shift later token
// positions), so classification is a pair of heuristics over token count and
// numeric parseability rather than a grammar. Each predicate is independent
// and pure; the only carried context is the caller's coordinate-line counter.
package record

import (
	"strconv"

	"catgedit/internal/token"
)

// A reach header carries at least ReachNo through Ncoords, ten tokens. The
// Ncoords count sits at a fixed ordinal within the header.
const (
	minReachHeaderTokens = 10
	ncoordsIndex         = 9
)

// IsNode reports whether a line is a node record: marker-prefixed, at least
// three tokens, with an integer NodeNo followed by numeric X and Y
// coordinates. This is the cheapest reliable discriminator for node records.
func IsNode(line string) bool {
	tokens := token.Tokenize(line)
	if len(tokens) < 3 {
		return false
	}
	if !isInt(tokens[0].Text) {
		return false
	}
	return isFloat(tokens[1].Text) && isFloat(tokens[2].Text)
}

// ReachHeader reports whether a line is a reach header rather than one of the
// coordinate lines trailing it. pending is the caller's count of coordinate
// lines still expected; while it is positive an all-numeric line is rejected
// here as well, which guards against a stale counter on malformed input. On
// success the parsed Ncoords value is returned alongside.
func ReachHeader(line string, pending int) (bool, int) {
	tokens := token.Tokenize(line)
	if len(tokens) < minReachHeaderTokens {
		return false, 0
	}

	if pending > 0 && allFloat(tokens) {
		return false, 0
	}

	if !isInt(tokens[0].Text) {
		return false, 0
	}
	ncoords, err := strconv.Atoi(tokens[ncoordsIndex].Text)
	if err != nil {
		return false, 0
	}
	return true, ncoords
}

func isInt(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

func isFloat(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func allFloat(tokens []token.Token) bool {
	for _, t := range tokens {
		if !isFloat(t.Text) {
			return false
		}
	}
	return true
}
