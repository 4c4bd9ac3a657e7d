package cli

import (
	"fmt"
	"os"

	"github.com/planidx/planidx/internal/config"
	"github.com/planidx/planidx/internal/fsops"
	"github.com/planidx/planidx/internal/reorder"
)

// newEngine loads config for the current directory and wires an engine
// against the real filesystem.
func newEngine() (*reorder.Engine, *config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, nil, err
	}

	return reorder.NewEngine(fsops.NewRealFS(), cfg), cfg, nil
}

// indexPath picks the index file: the positional argument wins, otherwise
// the configured path (already env- and file-resolved).
func indexPath(cfg *config.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.IndexPath
}
