package editor

import (
	"strings"

	"catgedit/internal/logging"
	"catgedit/internal/record"
	"catgedit/internal/token"
	"catgedit/pkg/catg"
)

// coordLinesPerReach is how many coordinate lines trail each reach header in
// the files this tool targets. The header's own Ncoords value is parsed by
// the classifier but does not vary this count.
const coordLinesPerReach = 2

// scanner is the single-pass section state machine. active tracks whether the
// current line falls inside the requested section; coordPending counts the
// reach coordinate lines still to skip after an accepted header. There is no
// backtracking: each line is classified and, if it qualifies, edited exactly
// once.
type scanner struct {
	target       catg.Section
	active       bool
	coordPending int
}

// step advances the machine by one line and returns the (possibly replaced)
// output line. Section-header lines update the state first and then fall
// through to classification, where they never qualify as records.
func (s *scanner) step(line string, idx int, value string) (string, bool, error) {
	switch {
	case strings.HasPrefix(line, catg.NodesHeader):
		s.active = s.target == catg.Nodes
		logging.L().Debugw("entered section", "section", catg.Nodes, "active", s.active)
	case strings.HasPrefix(line, catg.ReachesHeader):
		s.active = s.target == catg.Reaches
		s.coordPending = 0
		logging.L().Debugw("entered section", "section", catg.Reaches, "active", s.active)
	case catg.IsSectionHeader(line):
		s.active = false
		s.coordPending = 0
	}

	if !s.active {
		return line, false, nil
	}

	switch s.target {
	case catg.Nodes:
		if !record.IsNode(line) {
			return line, false, nil
		}
		return s.replace(line, idx, value)

	case catg.Reaches:
		if s.coordPending > 0 {
			s.coordPending--
			logging.L().Debugw("skipping coordinate line", "remaining", s.coordPending)
			return line, false, nil
		}
		header, _ := record.ReachHeader(line, s.coordPending)
		if !header {
			return line, false, nil
		}
		out, edited, err := s.replace(line, idx, value)
		if edited {
			s.coordPending = coordLinesPerReach
		}
		return out, edited, err
	}

	return line, false, nil
}

// replace substitutes the target field on one qualifying line. A record with
// fewer tokens than the resolved index is left untouched rather than treated
// as an error; record variants legitimately differ in token count.
func (s *scanner) replace(line string, idx int, value string) (string, bool, error) {
	span, ok := token.FieldSpan(line, idx)
	if !ok {
		return line, false, nil
	}
	out, err := ReplaceSpan(line, span, value)
	if err != nil {
		return line, false, err
	}
	return out, true, nil
}
