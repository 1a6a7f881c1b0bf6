// hexnav builds hex maps and runs path and move-range queries on them.
//
// Usage:
//
//	hexnav gen [--save NAME] [--out FILE]       - Generate a map and optionally store it
//	hexnav path FROM TO [--speed N] [--attack]  - Find a path between two cells
//	hexnav range FROM [--speed N]               - Show the cells reachable in one turn
//	hexnav maps                                 - List stored maps
//
// Cells are given as offset coordinates "col,row".
//
// Global flags:
//
//	--config <path>   - YAML config (default: $HEXNAV_CONFIG)
//	--log-level <lvl> - debug, info, warn, error
//	--seed <value>    - Terrain seed (overrides config)
//	--db <path>       - Snapshot database (overrides config)
//	--file <path>     - Read the map from a msgpack file instead of generating it
//	--map <name>      - Read the map from the snapshot database
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/talgya/hexnav/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagSeed     int64
	flagDBPath   string
	flagFile     string
	flagMap      string

	cfg *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexnav",
	Short: "Hex map pathfinding and move-range queries",
	Long: `hexnav generates hex maps, stores them, and answers path and
move-range queries for units with a per-turn movement budget.

Examples:
  hexnav gen --save valley
  hexnav path 0,0 12,9 --speed 4
  hexnav path 0,0 5,5 --map valley --unit 5,5 --attack
  hexnav range 6,6 --speed 2
  hexnav maps`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config (default: $"+config.EnvPath+")")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Terrain seed (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to snapshot database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagFile, "file", "", "Load the map from a msgpack file")
	rootCmd.PersistentFlags().StringVar(&flagMap, "map", "", "Load the map from the snapshot database")

	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(rangeCmd)
	rootCmd.AddCommand(mapsCmd)
}

// setup loads configuration and installs the logger before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagSeed != 0 {
		cfg.Terrain.Seed = flagSeed
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}

	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "hexnav",
		Level:           log.Level(level),
	})
	slog.SetDefault(slog.New(logger))
	return nil
}
