// Package editor applies a span-preserving field substitution to every
// qualifying record of one section in a single forward pass over the file.
// The pass is split into a plan step, which classifies lines and computes the
// full set of output lines, and an apply step that writes them; a failure in
// the plan step means nothing is written.
package editor

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"catgedit/internal/fields"
	"catgedit/internal/lineio"
	"catgedit/internal/logging"
	"catgedit/internal/token"
	"catgedit/pkg/catg"
)

var (
	// ErrValueTooWide means the replacement value does not fit the span
	// allocated to the field. The editor never shifts surrounding content to
	// make room, since that would break alignment for every later field on
	// the line, so this aborts the whole run before any output is written.
	ErrValueTooWide = errors.New("value does not fit field span")

	// ErrWhitespaceInValue rejects replacement values containing spaces or
	// tabs, which would change the line's token structure.
	ErrWhitespaceInValue = errors.New("value must not contain whitespace")
)

// Options selects what to edit.
type Options struct {
	Section catg.Section
	Field   string // symbolic name or 1-based ordinal
	Value   string
	Tables  fields.Tables // zero value selects the builtin tables
}

// Edit records one planned line replacement.
type Edit struct {
	LineNo int // 1-based line number in the input
	Before string
	After  string
}

// Plan is the outcome of the classification pass: the complete set of output
// lines plus the edits that produced them. Nothing has been written yet.
type Plan struct {
	Edits []Edit

	lines []string
	doc   *lineio.Document
}

// Modified returns how many records the plan touches.
func (p *Plan) Modified() int {
	return len(p.Edits)
}

// Encode renders the planned output bytes with the input's line-ending
// convention.
func (p *Plan) Encode() []byte {
	return p.doc.Encode(p.lines)
}

// BuildPlan validates the request and runs the section scanner over every
// line of content, producing the plan or the first failure.
func BuildPlan(content []byte, opts Options) (*Plan, error) {
	if strings.ContainsAny(opts.Value, " \t") {
		return nil, errors.Wrapf(ErrWhitespaceInValue, "%q", opts.Value)
	}

	tables := opts.Tables
	if tables.Nodes == nil {
		tables = fields.Builtin()
	}
	idx, err := tables.Resolve(opts.Section, opts.Field)
	if err != nil {
		return nil, err
	}

	doc := lineio.Decode(content)
	plan := &Plan{doc: doc, lines: make([]string, len(doc.Lines))}

	sc := scanner{target: opts.Section}
	for i, line := range doc.Lines {
		out, edited, err := sc.step(line, idx, opts.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: %s", i+1, preview(line))
		}
		plan.lines[i] = out
		if edited {
			plan.Edits = append(plan.Edits, Edit{LineNo: i + 1, Before: line, After: out})
			logging.L().Debugw("planned edit", "line", i+1, "section", opts.Section)
		}
	}
	return plan, nil
}

// EditFile runs the full pipeline: read the input, build the plan, write the
// output. On any failure the output file is left unwritten. Returns the
// number of modified records.
func EditFile(inputPath, outputPath string, opts Options) (int, error) {
	content, err := os.ReadFile(inputPath)
	if err != nil {
		return 0, errors.Wrapf(err, "reading %s", inputPath)
	}

	plan, err := BuildPlan(content, opts)
	if err != nil {
		return 0, err
	}

	if err := os.WriteFile(outputPath, plan.Encode(), 0644); err != nil {
		return 0, errors.Wrapf(err, "writing %s", outputPath)
	}
	return plan.Modified(), nil
}

// ReplaceSpan overwrites span with value, left-justified and space-padded to
// the span's exact width, so the line's total length and the position of
// everything outside the span are unchanged.
func ReplaceSpan(line string, span token.Span, value string) (string, error) {
	if len(value) > span.Width() {
		return "", errors.Wrapf(ErrValueTooWide,
			"%q needs %d characters, span has %d", value, len(value), span.Width())
	}
	padded := value + strings.Repeat(" ", span.Width()-len(value))
	return line[:span.Start] + padded + line[span.End:], nil
}

// preview truncates a line for error messages.
func preview(line string) string {
	const limit = 80
	if len(line) <= limit {
		return line
	}
	return line[:limit] + "..."
}
