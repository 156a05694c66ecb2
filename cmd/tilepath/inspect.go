package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilepath/gridgraph"
)

func (a *app) inspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize a saved graph",
		Args:  cobra.NoArgs,
		RunE:  a.runInspect,
	}
	cmd.Flags().String("from", "", "Also count cells reachable from this x,y node")

	return cmd
}

func (a *app) runInspect(cmd *cobra.Command, _ []string) error {
	g, err := a.loadGraph()
	if err != nil {
		return err
	}

	links := 0
	for id := range g.Len() {
		links += len(g.Neighbours(gridgraph.NodeID(id)))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "mode:       %s\n", g.Mode())
	fmt.Fprintf(out, "topology:   %s\n", g.Topology())
	fmt.Fprintf(out, "nodes:      %d\n", g.Len())
	fmt.Fprintf(out, "links:      %d\n", links)
	if lo, hi, ok := g.Bounds(); ok {
		fmt.Fprintf(out, "bounds:     %s .. %s\n", lo, hi)
	}
	comps := g.Components()
	sizes := make([]int, len(comps))
	for i, c := range comps {
		sizes[i] = len(c)
	}
	fmt.Fprintf(out, "components: %d %v\n", len(comps), sizes)

	from, _ := cmd.Flags().GetString("from")
	if from == "" {
		return nil
	}
	c, err := gridgraph.ParseCoord(from)
	if err != nil {
		return err
	}
	reach, err := g.Reachable(c)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "reachable:  %d from %s\n", len(reach), c)

	return nil
}
