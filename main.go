// scroller is a side-scrolling platformer.
//
// Usage:
//
//	scroller [play]        - Play a generated level
//	scroller gen           - Write a generated level layout as JSON
//
// Global flags:
//
//	--seed <value>  - Fix the level seed (otherwise every reset draws a new one)
//	--debug         - Collider outlines, FPS/TPS overlay and debug logging
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagSeed  int64
	flagDebug bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scroller",
	Short: "A side-scrolling platformer",
	Long: `Run right across a generated level, jumping between platforms and
avoiding the patrolling hazards. Reach three quarters of the level to win.

Controls:
  A/D, Left/Right  - Move
  W, Up, Space     - Jump
  R                - Restart
  M                - Music on/off
  C                - Copy the level seed`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Level seed (random when not set)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug overlay and logging")

	bindPlayFlags(rootCmd)
	bindPlayFlags(playCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(genCmd)
}

func newLogger(debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "scroller",
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           level,
	})
}

// seedFlag returns the --seed value and whether it was given.
func seedFlag(cmd *cobra.Command) (int64, bool) {
	if cmd.Flags().Changed("seed") {
		return flagSeed, true
	}
	return time.Now().UnixNano(), false
}
