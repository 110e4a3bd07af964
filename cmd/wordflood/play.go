package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wordflood/internal/platform/tui"
	"wordflood/internal/registry"
	"wordflood/internal/storage"
)

var flagOffline bool

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play Word Flood",
	Long: `Start a game in the given mode (grid or typed). Without an
argument, grid mode is used.

Grid mode controls:
  Arrows/WASD  - Move the cursor
  Space        - Pick / unpick the letter under the cursor
  Enter        - Submit the word
  C            - Clear the selection
  P/Esc        - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Typed mode controls:
  Letters      - Spell a word
  Backspace    - Erase the last letter
  Enter        - Submit the word
  Esc          - Clear the word
  Ctrl+C       - Quit

Examples:
  wordflood play
  wordflood play typed
  wordflood play grid --offline
  wordflood play grid --config ./my-flood.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagOffline, "offline", false, "Use the built-in word list instead of the online dictionary")
}

func runPlay(cmd *cobra.Command, args []string) {
	mode := "grid"
	if len(args) > 0 {
		mode = args[0]
	}
	gameID, err := resolveMode(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'wordflood list' to see available modes.")
		os.Exit(1)
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	_, identity := openAuth(store)
	checker := buildChecker(gameCfg, flagOffline)

	runErr := tui.Run(game, store, checker, identity, terminalConfig())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
