package catg

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Marker is the leading character that identifies a line as a data or header
// record in a .catg file. Lines without it are passed through untouched.
const Marker = "C"

// Section header lines are the marker followed by a literal #-prefixed name.
const (
	NodesHeader   = "C #NODES"
	ReachesHeader = "C #REACHES"
	headerPrefix  = "C #"
)

// Section identifies one of the two logical blocks this tool edits. Every
// other #-prefixed section deactivates editing until the next known header.
type Section string

const (
	Nodes   Section = "NODES"
	Reaches Section = "REACHES"
)

// ErrInvalidSection is returned when a selector names neither known section.
var ErrInvalidSection = errors.New("invalid section")

// ParseSection resolves a case-insensitive section selector.
func ParseSection(s string) (Section, error) {
	switch strings.ToUpper(s) {
	case string(Nodes):
		return Nodes, nil
	case string(Reaches):
		return Reaches, nil
	}
	return "", errors.WithHintf(
		errors.Wrapf(ErrInvalidSection, "%q", s),
		"valid sections are %s and %s", Nodes, Reaches)
}

// IsRecord reports whether a line carries the record marker.
func IsRecord(line string) bool {
	return strings.HasPrefix(line, Marker)
}

// IsSectionHeader reports whether a line opens any section, known or not.
func IsSectionHeader(line string) bool {
	return strings.HasPrefix(line, headerPrefix)
}
