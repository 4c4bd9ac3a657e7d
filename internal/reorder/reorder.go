// Package reorder implements the index transform: read the file, sort its
// plan blocks most-recent first, rewrite the file.
package reorder

import (
	"fmt"
	"os"

	"github.com/planidx/planidx/internal/config"
	"github.com/planidx/planidx/internal/fsops"
	"github.com/planidx/planidx/internal/index"
)

// Engine runs reorder operations against a single index file.
type Engine struct {
	fs  fsops.FS
	cfg *config.Config
}

// NewEngine creates an Engine using the given filesystem and config.
func NewEngine(fs fsops.FS, cfg *config.Config) *Engine {
	return &Engine{fs: fs, cfg: cfg}
}

// Request describes one reorder run.
type Request struct {
	// Path is the index file to operate on.
	Path string

	// DryRun computes the result without writing the file.
	DryRun bool
}

// Result describes the outcome of a reorder run.
type Result struct {
	// Blocks is the number of plan blocks found.
	Blocks int

	// Moved is the number of blocks whose position changed. A block
	// counts as moved when its original index differs from its final
	// index, so two identical-content blocks swapping places still count.
	Moved int

	// Changed reports whether the rewritten text differs from the
	// original file content.
	Changed bool

	// Written reports whether the file was rewritten.
	Written bool
}

// Run performs the transform. The whole operation is all-or-nothing: a
// missing heading or any unparseable plan identifier aborts before any
// write, and validation reports every offender at once.
//
// Algorithm steps:
// 1. Read the whole file
// 2. Parse into header + blocks
// 3. Validate every plan identifier (batched failure)
// 4. Stable sort, most-recent first
// 5. Render and compare against the original
// 6. Atomically rewrite (unless DryRun)
func (e *Engine) Run(req *Request) (*Result, error) {
	raw, err := e.fs.ReadFile(req.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read index file: %w", err)
	}
	content := string(raw)

	doc, err := index.Parse(content, e.cfg.Heading, e.cfg.PlanPrefix)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.Path, err)
	}

	if invalid := doc.Invalid(); len(invalid) > 0 {
		return nil, &index.InvalidPlansError{Plans: invalid}
	}

	doc.Sort()

	result := &Result{Blocks: len(doc.Blocks)}
	for pos, b := range doc.Blocks {
		if b.Index != pos {
			result.Moved++
		}
	}

	rendered := doc.Render()
	result.Changed = rendered != content

	if req.DryRun {
		return result, nil
	}

	// The rewrite is unconditional: a byte-identical file still goes
	// through the atomic write so the on-disk text is always the
	// canonical rendering.

	perm := os.FileMode(0644)
	if info, err := os.Stat(req.Path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := e.fs.AtomicWrite(req.Path, []byte(rendered), perm); err != nil {
		return nil, fmt.Errorf("failed to rewrite index file: %w", err)
	}
	result.Written = true

	return result, nil
}

// Check validates the index file without ever writing: it confirms the
// heading is present and every plan identifier parses.
func (e *Engine) Check(path string) (*Result, error) {
	raw, err := e.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read index file: %w", err)
	}

	doc, err := index.Parse(string(raw), e.cfg.Heading, e.cfg.PlanPrefix)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if invalid := doc.Invalid(); len(invalid) > 0 {
		return nil, &index.InvalidPlansError{Plans: invalid}
	}

	return &Result{Blocks: len(doc.Blocks)}, nil
}
