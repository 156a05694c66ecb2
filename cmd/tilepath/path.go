package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/gridgraph"
)

func (a *app) pathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path START GOAL",
		Short: "Find a path on a saved graph",
		Long: `Path loads the graph at --graph and prints the cells from the node nearest
START to the node nearest GOAL, space separated. Coordinates are "x,y".
An unreachable goal prints "no path".`,
		Example: "  tilepath path 0,0 12,7 --graph level1.yaml",
		Args:    cobra.ExactArgs(2),
		RunE:    a.runPath,
	}
}

func (a *app) runPath(cmd *cobra.Command, args []string) error {
	start, err := gridgraph.ParseCoord(args[0])
	if err != nil {
		return err
	}
	goal, err := gridgraph.ParseCoord(args[1])
	if err != nil {
		return err
	}

	g, err := a.loadGraph()
	if err != nil {
		return err
	}

	res, err := astar.Search(g, start, goal)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !res.Found {
		a.logger.Info("no path",
			zap.Stringer("start", start), zap.Stringer("goal", goal),
			zap.Int("expanded", res.Expanded))
		fmt.Fprintln(out, "no path")
		return nil
	}

	a.logger.Debug("path found",
		zap.Int("length", len(res.Path)),
		zap.Float64("cost", res.Cost),
		zap.Int("expanded", res.Expanded))

	cells := make([]string, len(res.Path))
	for i, c := range res.Path {
		cells[i] = c.String()
	}
	fmt.Fprintln(out, strings.Join(cells, " "))

	return nil
}

// loadGraph reads the graph file named by the configuration.
func (a *app) loadGraph() (*gridgraph.Graph, error) {
	f, err := os.Open(a.cfg.Graph)
	if err != nil {
		return nil, fmt.Errorf("open graph: %w", err)
	}
	defer f.Close()

	g, err := gridgraph.Load(f)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("graph loaded",
		zap.String("file", a.cfg.Graph),
		zap.Int("nodes", g.Len()),
		zap.Stringer("mode", g.Mode()))

	return g, nil
}
