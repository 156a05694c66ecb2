package main

import (
	"github.com/spf13/cobra"
)

// GlobalFlags holds flags available to all commands.
type GlobalFlags struct {
	Verbose    bool
	ConfigFile string
}

// RegisterGlobalFlags registers persistent flags on the root command.
func RegisterGlobalFlags(cmd *cobra.Command, f *GlobalFlags) {
	cmd.PersistentFlags().BoolVarP(&f.Verbose, "verbose", "v", false, "Log at debug level in console format")
	cmd.PersistentFlags().StringVar(&f.ConfigFile, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().String("graph", "graph.yaml", "Path of the persisted graph")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().String("log-format", "json", "Log format (json|console)")
}

// registerBuildFlags registers the flags that shape graph construction.
func registerBuildFlags(cmd *cobra.Command) {
	cmd.Flags().String("mode", "omnidirectional",
		"Direction mode (omnidirectional|orthogonal|diagonal|smart-orthogonal|smart-diagonal)")
	cmd.Flags().String("topology", "rectangle", "Cell layout (rectangle|hexagon|isometric)")
	cmd.Flags().String("format", "ascii", "Map format (ascii|values)")
	cmd.Flags().Int("threshold", 1, "Minimum value of a walkable cell in values maps")
}
