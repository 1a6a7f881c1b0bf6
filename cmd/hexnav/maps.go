package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List stored maps",
	Long: `List the maps stored in the snapshot database, newest first.

Examples:
  hexnav maps
  hexnav maps --db /tmp/hexnav.db`,
	Args: cobra.NoArgs,
	RunE: runMaps,
}

func runMaps(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	maps, err := db.ListMaps()
	if err != nil {
		return fmt.Errorf("list maps: %w", err)
	}

	if len(maps) == 0 {
		fmt.Println("No maps stored yet.")
		fmt.Println()
		fmt.Println("Run 'hexnav gen --save NAME' to store one.")
		return nil
	}

	last, _ := db.GetMeta("last_map")

	fmt.Printf("  %-16s  %-9s  %-8s  %-6s  %s\n", "Name", "Size", "Cells", "Seed", "Saved")
	fmt.Printf("  %-16s  %-9s  %-8s  %-6s  %s\n", "----", "----", "-----", "----", "-----")
	for _, m := range maps {
		marker := " "
		if m.Name == last {
			marker = "*"
		}
		fmt.Printf("%s %-16s  %-9s  %-8s  %-6d  %s\n",
			marker, m.Name, fmt.Sprintf("%dx%d", m.CellCountX, m.CellCountZ),
			humanize.Comma(int64(m.Cells())), m.Seed, humanize.Time(m.Created()))
	}
	return nil
}
