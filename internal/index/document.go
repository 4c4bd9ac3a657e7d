// Package index models a plain-text plan index file: a free-form header
// terminated by an "Entries" heading, followed by plan blocks, each
// introduced by a "- Plan: " line whose identifier carries a sortable
// timestamp prefix.
package index

import (
	"sort"
	"strings"
)

// Default structural markers. Both can be overridden via configuration.
const (
	DefaultHeading    = "Entries"
	DefaultPlanPrefix = "- Plan: "
)

// Block is one plan entry: the "- Plan: " line that starts it plus every
// following line up to the next block or end of file.
type Block struct {
	// Lines is the raw line sequence, first line included.
	Lines []string

	// Plan is the trimmed identifier after the plan prefix.
	Plan string

	// Stamp is the timestamp parsed out of Plan. Only meaningful when
	// Valid is true.
	Stamp Timestamp

	// Valid reports whether Plan carried a parseable timestamp.
	Valid bool

	// Index is the block's 0-based position in the original document.
	Index int
}

// Text joins the block's lines, trailing whitespace trimmed.
func (b *Block) Text() string {
	return strings.TrimRight(strings.Join(b.Lines, "\n"), " \t\n")
}

// Document is a parsed index file.
type Document struct {
	// Header holds every line from the start of the file through the
	// heading and its optional underline. Never reordered.
	Header []string

	// Blocks holds the plan blocks in their current order.
	Blocks []*Block
}

// Parse splits raw index content into header and plan blocks. The heading
// anchors the split; its absence is a structural failure and returns
// ErrMissingHeading. Lines between the heading and the first plan line are
// dropped, matching how the file is rendered with exactly one blank line
// there.
func Parse(content, heading, planPrefix string) (*Document, error) {
	lines := strings.Split(content, "\n")

	headingAt := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == heading {
			headingAt = i
			break
		}
	}
	if headingAt == -1 {
		return nil, ErrMissingHeading
	}

	bodyStart := headingAt + 1
	if bodyStart < len(lines) && isUnderline(lines[bodyStart]) {
		bodyStart++
	}

	doc := &Document{Header: lines[:bodyStart]}

	var current *Block
	for _, line := range lines[bodyStart:] {
		if strings.HasPrefix(line, planPrefix) {
			plan := strings.TrimSpace(line[len(planPrefix):])
			current = &Block{
				Lines: []string{line},
				Plan:  plan,
				Index: len(doc.Blocks),
			}
			current.Stamp, current.Valid = ParseTimestamp(plan)
			doc.Blocks = append(doc.Blocks, current)
			continue
		}
		if current != nil {
			current.Lines = append(current.Lines, line)
		}
	}

	return doc, nil
}

// isUnderline reports whether the line is a heading underline: non-empty
// and made of '=' only.
func isUnderline(line string) bool {
	s := strings.TrimSpace(line)
	if s == "" {
		return false
	}
	return strings.Count(s, "=") == len(s)
}

// Invalid returns the plan identifiers of every block whose timestamp did
// not parse, in document order.
func (d *Document) Invalid() []string {
	var plans []string
	for _, b := range d.Blocks {
		if !b.Valid {
			plans = append(plans, b.Plan)
		}
	}
	return plans
}

// Sort reorders blocks most-recent first. Blocks with equal timestamps
// keep their original relative order. Callers must have rejected invalid
// blocks first; Sort assumes every timestamp parsed.
func (d *Document) Sort() {
	sort.SliceStable(d.Blocks, func(i, j int) bool {
		return d.Blocks[i].Stamp.Compare(d.Blocks[j].Stamp) > 0
	})
}

// Render produces the canonical file text: the header joined and
// trailing-trimmed, one blank line, blocks separated by blank lines,
// exactly one trailing newline.
func (d *Document) Render() string {
	var sb strings.Builder

	sb.WriteString(strings.TrimRight(strings.Join(d.Header, "\n"), " \t\n"))

	for _, b := range d.Blocks {
		sb.WriteString("\n\n")
		sb.WriteString(b.Text())
	}
	sb.WriteString("\n")

	return sb.String()
}
