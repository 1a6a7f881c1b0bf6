package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/talgya/hexnav/internal/search"
	"github.com/talgya/hexnav/internal/view"
)

var (
	flagSpeed     int
	flagMaxLength int
	flagAttack    bool
	flagUnits     []string
)

var pathCmd = &cobra.Command{
	Use:   "path FROM TO",
	Short: "Find a path between two cells",
	Long: `Find the cheapest route between two cells for a unit with a fixed
movement budget per turn, then print and draw it.

With --attack the destination may hold a unit; the route then ends on a
free cell next to it.

Examples:
  hexnav path 0,0 12,9
  hexnav path 0,0 12,9 --speed 5 --max-length 4
  hexnav path 2,2 8,6 --unit 8,6 --attack`,
	Args: cobra.ExactArgs(2),
	RunE: runPath,
}

func init() {
	pathCmd.Flags().IntVar(&flagSpeed, "speed", 0, "Movement points per turn (default from config)")
	pathCmd.Flags().IntVar(&flagMaxLength, "max-length", -1, "Keep only the last N steps (default from config, 0 = all)")
	pathCmd.Flags().BoolVar(&flagAttack, "attack", false, "Route next to a unit standing on the destination")
	pathCmd.Flags().StringSliceVar(&flagUnits, "unit", nil, "Place a unit on a cell (repeatable)")
}

func runPath(cmd *cobra.Command, args []string) error {
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
	to, err := parseCell(g, args[1])
	if err != nil {
		return err
	}

	walker := cfg.Walker()
	if flagSpeed > 0 {
		walker.Speed = flagSpeed
	}
	maxLength := cfg.Search.MaxPathLength
	if flagMaxLength >= 0 {
		maxLength = flagMaxLength
	}

	overlay := view.NewOverlay()
	ecfg := cfg.EngineConfig()
	ecfg.Sink = overlay
	e := search.New(g, ecfg)

	var found bool
	if flagAttack {
		found = e.FindAttackPath(from, to, walker, walker.Speed)
	} else {
		found = e.FindPath(from, to, walker, walker.Speed)
	}
	if !found {
		fmt.Printf("No path from %s to %s (speed %d, %s)\n",
			args[0], args[1], walker.Speed, ecfg.Relaxation)
		return nil
	}

	cells, _ := e.Path(maxLength)
	steps := make([]string, len(cells))
	for i, c := range cells {
		col, row := c.Coord.Offset()
		steps[i] = fmt.Sprintf("%d,%d", col, row)
	}

	fmt.Printf("Path %s -> %s: %d steps, cost %d, arrives in turn %d\n",
		args[0], args[1], len(cells)-1, e.PathCost(), e.Turn(to, walker.Speed)+1)
	fmt.Printf("  %s\n", strings.Join(steps, " "))
	fmt.Printf("  searched %d cells\n", overlay.Count(search.RoleSettled)+overlay.Count(search.RolePath))
	fmt.Println()
	fmt.Println(view.Render(g, overlay))
	return nil
}
