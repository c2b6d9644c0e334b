package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/candy-match/internal/core"
	"github.com/vovakirdan/candy-match/internal/platform/tui"
	"github.com/vovakirdan/candy-match/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the campaign",
	Long: `Start playing, from level 1 or from the given level.

Controls:
  Arrows/WASD/HJKL  - Move cursor
  Space/Enter/Click - Select tile (select a neighbor to swap)
  N/Enter           - Next level (after a level is cleared)
  R                 - Retry (after running out of moves)
  P                 - Pause
  Esc/B             - Leave (when paused or the level is over)
  Q/Ctrl+C          - Quit

Examples:
  candymatch play
  candymatch play 2
  candymatch play --difficulty hard
  candymatch play --config ./my-levels.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	level := 0
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			fmt.Fprintf(os.Stderr, "Error: invalid level %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'candymatch levels' to see available levels.")
			os.Exit(1)
		}
		level = n
	}

	game, err := tui.CreateGame(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'candymatch levels' to see available levels.")
		os.Exit(1)
	}

	logger, closeLog, err := tui.OpenLogFile(flagLogFile, "candymatch")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, runtimeConfig(), logger)

	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
