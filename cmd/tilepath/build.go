package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/tilepath/internal/config"
	"github.com/katalvlaran/tilepath/navigation"
	"github.com/katalvlaran/tilepath/tilemap"
)

func (a *app) buildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build MAP",
		Short: "Build a navigation graph from a tile map and save it",
		Long: `Build reads a tile map and writes the derived navigation graph to --graph.

ASCII maps use '.' for walkable cells, '#' for blocked cells and 'S'/'G'
for walkable start/goal markers. Values maps hold integers separated by
spaces or commas; cells >= --threshold are walkable. MAP "-" reads stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runBuild,
	}
	registerBuildFlags(cmd)

	return cmd
}

func (a *app) runBuild(cmd *cobra.Command, args []string) error {
	tm, err := a.readMap(cmd, args[0])
	if err != nil {
		return err
	}

	nav := navigation.New(tm,
		navigation.WithMode(a.cfg.Mode),
		navigation.WithLogger(a.logger))
	if err := nav.Rebuild(); err != nil {
		return err
	}

	if err := writeGraph(a.cfg.Graph, nav.Save); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d nodes to %s\n", nav.Len(), a.cfg.Graph)
	return nil
}

// writeGraph saves into a temporary file next to path and renames it over
// path only after save and close succeed, so a failed write never leaves a
// truncated graph behind.
func writeGraph(path string, save func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create graph directory: %w", err)
	}
	f, err := os.CreateTemp(dir, ".graph-*.yaml")
	if err != nil {
		return fmt.Errorf("create graph file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err := save(f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close graph file: %w", err)
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("move graph file into place: %w", err)
	}

	return nil
}

// readMap parses the map at name ("-" for stdin) in the configured format.
func (a *app) readMap(cmd *cobra.Command, name string) (*tilemap.Tilemap, error) {
	var r io.Reader = cmd.InOrStdin()
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open map: %w", err)
		}
		defer f.Close()
		r = f
	}

	if a.cfg.Format == config.FormatValues {
		return tilemap.ParseValues(r, a.cfg.Threshold, a.cfg.Topology)
	}

	tm, mk, err := tilemap.ParseASCII(r, a.cfg.Topology)
	if err != nil {
		return nil, err
	}
	if mk.HasStart || mk.HasGoal {
		a.logger.Debug("map markers",
			zap.Stringer("start", mk.Start), zap.Bool("has_start", mk.HasStart),
			zap.Stringer("goal", mk.Goal), zap.Bool("has_goal", mk.HasGoal))
	}

	return tm, nil
}
