package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ontop/internal/level"
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "Map tools",
}

var mapsCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a map file and print its summary",
	Long: `Parse a map and report what the game will build from it.
Without a file, checks the built-in map.

Examples:
  ontop maps check
  ontop maps check ./maps/tower.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runMapsCheck,
}

func init() {
	mapsCmd.AddCommand(mapsCheckCmd)
}

func runMapsCheck(_ *cobra.Command, args []string) {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	lvl, err := level.Open(path)
	if err != nil {
		fatal("%v", err)
	}

	w, h := lvl.PixelSize()
	fmt.Printf("Map: %s\n", lvl.Name)
	fmt.Println()
	fmt.Printf("  Size:      %d x %d tiles (%.0f x %.0f px)\n", lvl.Cols, lvl.Rows, w, h)
	fmt.Printf("  Layers:    %d\n", len(lvl.Layers))
	fmt.Printf("  Solids:    %d\n", len(lvl.Solids))
	fmt.Printf("  Hazards:   %d\n", len(lvl.Hazards))
	fmt.Printf("  Portals:   %d\n", len(lvl.Portals))
	fmt.Printf("  Monsters:  %d\n", len(lvl.Monsters))
	if lvl.HasSpawn {
		fmt.Printf("  Spawn:     (%.0f, %.0f)\n", lvl.Spawn.X, lvl.Spawn.Y)
	}

	warnings := level.Check(lvl)
	if len(warnings) == 0 {
		fmt.Println()
		fmt.Println("OK")
		return
	}
	fmt.Println()
	for _, w := range warnings {
		fmt.Printf("  warning: %s\n", w)
	}
}
