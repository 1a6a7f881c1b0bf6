package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/talgya/hexnav/internal/persistence"
	"github.com/talgya/hexnav/internal/view"
	"github.com/talgya/hexnav/internal/world"
)

var (
	flagSaveName string
	flagOutFile  string
	flagQuiet    bool
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a map",
	Long: `Generate a map from the configured size and terrain seed, print a
summary, and optionally store it.

Examples:
  hexnav gen
  hexnav gen --seed 7 --save ridge
  hexnav gen --out maps/ridge.hexmap`,
	Args: cobra.NoArgs,
	RunE: runGen,
}

func init() {
	genCmd.Flags().StringVar(&flagSaveName, "save", "", "Store the map in the snapshot database under this name")
	genCmd.Flags().StringVar(&flagOutFile, "out", "", "Write the map to a msgpack file")
	genCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Do not draw the map")
}

func runGen(cmd *cobra.Command, args []string) error {
	g, err := world.NewGrid(cfg.Grid.Width, cfg.Grid.Height)
	if err != nil {
		return err
	}
	seed := world.Generate(g, cfg.GenConfig())
	rec := g.Save()

	fmt.Printf("Map %dx%d, %s cells, seed %d\n",
		g.CellCountX, g.CellCountZ, humanize.Comma(int64(g.Len())), seed)

	counts := world.TerrainCounts(g)
	types := make([]int, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Ints(types)
	for _, t := range types {
		fmt.Printf("  %-6s %s\n", world.TerrainName(t), humanize.Comma(int64(counts[t])))
	}

	underwater, rivers := 0, 0
	g.Each(func(c *world.Cell) {
		if c.IsUnderwater() {
			underwater++
		}
		if c.HasOutgoingRiver() {
			rivers++
		}
	})
	fmt.Printf("  water  %s cells, %s river segments\n",
		humanize.Comma(int64(underwater)), humanize.Comma(int64(rivers)))

	if flagSaveName != "" {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		info, err := db.SaveMap(flagSaveName, rec, seed)
		if err != nil {
			return err
		}
		if err := db.SaveMeta("last_map", info.Name); err != nil {
			return err
		}
		fmt.Printf("Saved as %q (%s)\n", info.Name, info.ID)
	}

	if flagOutFile != "" {
		if err := persistence.WriteFile(flagOutFile, rec); err != nil {
			return err
		}
		st, err := os.Stat(flagOutFile)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s (%s)\n", flagOutFile, humanize.Bytes(uint64(st.Size())))
	}

	if !flagQuiet {
		fmt.Println()
		fmt.Println(view.Render(g, nil))
		fmt.Println()
		fmt.Println(view.Legend())
	}
	return nil
}
