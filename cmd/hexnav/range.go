package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/talgya/hexnav/internal/search"
	"github.com/talgya/hexnav/internal/view"
)

var rangeCmd = &cobra.Command{
	Use:   "range FROM",
	Short: "Show the cells reachable in one turn",
	Long: `Flood the map from a cell and draw every cell the unit can reach
with one turn of movement.

Examples:
  hexnav range 6,6
  hexnav range 6,6 --speed 5 --unit 7,6`,
	Args: cobra.ExactArgs(1),
	RunE: runRange,
}

func init() {
	rangeCmd.Flags().IntVar(&flagSpeed, "speed", 0, "Movement points per turn (default from config)")
	rangeCmd.Flags().StringSliceVar(&flagUnits, "unit", nil, "Place a unit on a cell (repeatable)")
}

func runRange(cmd *cobra.Command, args []string) error {
	g, err := loadGrid()
	if err != nil {
		return err
	}
	if err := placeUnits(g, flagUnits); err != nil {
		return err
	}
	from, err := parseCell(g, args[0])
	if err != nil {
		return err
	}

	walker := cfg.Walker()
	if flagSpeed > 0 {
		walker.Speed = flagSpeed
	}

	overlay := view.NewOverlay()
	ecfg := cfg.EngineConfig()
	ecfg.Sink = overlay
	reach := search.NewSerialized(search.New(g, ecfg)).MoveRange(from, walker)

	fmt.Printf("%s of %s cells reachable from %s with speed %d\n",
		humanize.Comma(int64(reach.Size())), humanize.Comma(int64(g.Len())), args[0], walker.Speed)
	fmt.Println()
	fmt.Println(view.Render(g, overlay))
	return nil
}
