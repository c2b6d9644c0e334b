// candymatch is a match-3 puzzle game for the terminal.
//
// Usage:
//
//	candymatch play [level]  - Play the campaign, optionally from a level
//	candymatch menu          - Start menu with campaign, level select and scores
//	candymatch levels        - Show the level table in effect
//	candymatch scores        - Show high scores and per-level bests
//	candymatch serve         - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.candymatch/scores.db)
//	--config <path>       - Use a custom level/pacing YAML
//	--difficulty <preset> - easy, normal or hard move budgets
//	--theme <name>        - Color theme
//	--log-file <path>     - Write game events to a log file
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/candy-match/internal/config"
	"github.com/vovakirdan/candy-match/internal/games/candy"
	"github.com/vovakirdan/candy-match/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagTheme      string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "candymatch",
	Short: "Sweet Candy Match - a match-3 puzzle in your terminal",
	Long: `Sweet Candy Match is a terminal match-3 puzzle. Swap neighboring
tiles to line up three or more of a color, reach each level's target
score before you run out of moves, and chain cascades for combo points.

Available commands:
  play     - Play the campaign directly
  menu     - Interactive menu
  levels   - Show the level table
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  candymatch play
  candymatch play 3 --difficulty easy
  candymatch menu --theme neon
  candymatch serve --ssh :2222
  candymatch scores`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.candymatch/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme: "+strings.Join(tui.ThemeNames(), ", "))
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write game events to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads the configuration and theme shared by every command.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}

	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return fmt.Errorf("invalid --difficulty %q: use easy, normal or hard", flagDifficulty)
	}

	cfg, err := config.LoadCandy(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyCandyPreset(&cfg, preset)

	settings, err := candy.SettingsFromConfig(cfg)
	if err != nil {
		return err
	}
	if err := candy.Configure(settings); err != nil {
		return err
	}

	theme, err := tui.ThemeByName(flagTheme)
	if err != nil {
		return err
	}
	tui.SetTheme(theme)
	return nil
}
