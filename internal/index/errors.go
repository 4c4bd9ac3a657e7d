package index

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingHeading indicates the index file has no "Entries" heading
	// to anchor the header/body split.
	ErrMissingHeading = errors.New("entries heading not found")
)

// InvalidPlansError reports every plan identifier whose timestamp failed
// to parse. Validation is batched: one run of the tool surfaces all
// offenders at once.
type InvalidPlansError struct {
	Plans []string
}

func (e *InvalidPlansError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d plan identifier(s) do not match YYYY-MM-DD-<h>am|pm_<name> (e.g. 2026-01-28-1pm_example.txt):\n", len(e.Plans))
	for _, plan := range e.Plans {
		fmt.Fprintf(&sb, "- %s\n", plan)
	}
	return strings.TrimRight(sb.String(), "\n")
}
