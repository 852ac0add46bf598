// Package cli implements the zonepack command line interface. Each
// invocation builds a fresh in-memory session from a TOML manifest,
// runs the zone definition pipeline and packages the results into a
// zip archive.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yvynation/zonepack/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "zonepack",
	Short: "Zone definition and export packaging for land-cover analysis",
	Long: `zonepack defines analysis zones (drawn polygons, territories and
external buffer rings), collects land-cover artifacts against them and
packages everything into a deterministic zip archive.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
