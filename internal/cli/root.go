// Package cli wires the cobra command surface: the root command runs the
// plot loop, everything after the flags is forwarded verbatim to ping.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pingplot/pingplot/internal/history"
	"github.com/pingplot/pingplot/internal/render"
)

var (
	simulateFlag bool
	rendererFlag string
)

var rootCmd = &cobra.Command{
	Use:   "pingplot [ping flags] [host]",
	Short: "Ping, but with a live terminal graph",
	Long: `Plot ping round-trip times as a scrolling, color-zoned bar chart.

Everything after the pingplot flags is passed to your platform's ping
untouched, so any flags ping understands work here too. With no
arguments the default host is pinged.

Examples:
  pingplot
  pingplot 8.8.8.8
  pingplot -i 0.5 example.com
  pingplot --simulate`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlot(args)
	},
}

func init() {
	// Stop flag parsing at the first positional argument so ping's own
	// flags pass through untouched.
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.Flags().BoolVar(&simulateFlag, "simulate", false,
		"plot a simulated random walk instead of running ping")
	rootCmd.Flags().StringVar(&rendererFlag, "renderer", "",
		"rendering strategy: screen or reprint (default: auto-detect)")

	viper.SetEnvPrefix("PINGPLOT")
	viper.AutomaticEnv()
	viper.SetDefault("host", "google.com")
	viper.SetDefault("history", history.DefaultCapacity)
	viper.SetDefault("renderer", render.StrategyAuto)
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
