package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/candy-match/internal/games/candy"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the campaign levels",
	Long: `Shows the level table in effect, after --config and --difficulty
are applied.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	levels := candy.CurrentSettings().Levels

	fmt.Println("Campaign levels:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, l := range levels {
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Printf("  %-3s  %-*s  %-6s  %-5s  %s\n", "#", maxNameLen, "Name", "Target", "Moves", "Colors")
	fmt.Printf("  %-3s  %-*s  %-6s  %-5s  %s\n", "-", maxNameLen, "----", "------", "-----", "------")

	for _, l := range levels {
		colors := make([]string, len(l.Colors))
		for i, c := range l.Colors {
			colors[i] = c.String()
		}
		fmt.Printf("  %-3d  %-*s  %-6d  %-5d  %s\n",
			l.Number, maxNameLen, l.Name, l.TargetScore, l.Moves, strings.Join(colors, ", "))
	}

	fmt.Println()
	fmt.Println("Run 'candymatch play <level>' to start at a level.")
}
