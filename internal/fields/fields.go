// Package fields maps symbolic field names to token ordinals for the two
// editable sections, and resolves a user's field selector (name or 1-based
// ordinal) to the 0-based token index applied to every qualifying record.
package fields

import (
	"maps"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"

	"catgedit/pkg/catg"
)

// Table maps field names to 0-based token ordinals within a record.
type Table map[string]int

// Builtin layouts. Node records may carry a conditional second impermeability
// value (Imp2) that shifts every later field by one; the stock table stops at
// Imp1, and sites using the extended layout can load their own table.
var (
	nodeFields = Table{
		"NodeNo":         0,
		"X":              1,
		"Y":              2,
		"Size":           3,
		"NodeType":       4,
		"PrintFlag":      5,
		"DownstreamNode": 6,
		"Name":           7,
		"Area":           8,
		"Imp1":           9,
	}

	reachFields = Table{
		"ReachNo":      0,
		"ReachName":    1,
		"FromNode":     2,
		"ToNode":       3,
		"TransFlag":    4,
		"ReachType":    5,
		"PrintFlag":    6,
		"Length":       7,
		"SlopeOrTrans": 8,
		"Ncoords":      9,
		"Reserved":     10,
	}
)

var (
	// ErrUnknownField is returned when a symbolic selector is not in the
	// section's table.
	ErrUnknownField = errors.New("unknown field")

	// ErrInvalidTokenIndex is returned for ordinal selectors below 1.
	ErrInvalidTokenIndex = errors.New("token index must be >= 1")
)

// Tables holds the field tables in effect for one run.
type Tables struct {
	Nodes   Table
	Reaches Table
}

// Builtin returns fresh copies of the stock tables.
func Builtin() Tables {
	return Tables{
		Nodes:   maps.Clone(nodeFields),
		Reaches: maps.Clone(reachFields),
	}
}

// Load reads a TOML fields file and merges its [nodes] and [reaches] tables
// over the builtin ones. Entries are `Name = ordinal` with 0-based ordinals;
// unknown names extend the table, known names override it.
func Load(path string) (Tables, error) {
	var doc struct {
		Nodes   map[string]int `toml:"nodes"`
		Reaches map[string]int `toml:"reaches"`
	}
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return Tables{}, errors.Wrapf(err, "reading fields file %s", path)
	}

	t := Builtin()
	for name, idx := range doc.Nodes {
		t.Nodes[name] = idx
	}
	for name, idx := range doc.Reaches {
		t.Reaches[name] = idx
	}
	return t, nil
}

// Resolve converts a field selector into a 0-based token index. A selector of
// all digits is a 1-based ordinal; anything else is a field name looked up in
// the section's table. The index is resolved once per run and applied
// uniformly to every qualifying record, regardless of record variant.
func (t Tables) Resolve(section catg.Section, spec string) (int, error) {
	if isDigits(spec) {
		n, err := strconv.Atoi(spec)
		if err != nil {
			return 0, errors.Wrapf(err, "field ordinal %q", spec)
		}
		if n < 1 {
			return 0, errors.Wrapf(ErrInvalidTokenIndex, "got %d", n)
		}
		return n - 1, nil
	}

	table := t.Nodes
	if section == catg.Reaches {
		table = t.Reaches
	}
	idx, ok := table[spec]
	if !ok {
		return 0, errors.WithHintf(
			errors.Wrapf(ErrUnknownField, "section %s has no field %q", section, spec),
			"valid fields: %s", strings.Join(table.Names(), ", "))
	}
	return idx, nil
}

// Names returns the table's field names ordered by their ordinal.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if t[names[i]] != t[names[j]] {
			return t[names[i]] < t[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
