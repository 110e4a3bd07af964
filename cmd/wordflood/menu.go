package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"wordflood/internal/platform/tui"
	"wordflood/internal/registry"
	"wordflood/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Word Flood with a mode picker",
	Long: `Start Word Flood in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a mode.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Leaderboard
  Q            - Quit

Examples:
  wordflood menu
  wordflood menu --fps 30
  wordflood menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagOffline, "offline", false, "Use the built-in word list instead of the online dictionary")
}

func runMenu(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	_, identity := openAuth(store)
	checker := buildChecker(gameCfg, flagOffline)

	playerName := ""
	if identity != nil {
		playerName = identity.Username
	}

	cfg := terminalConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg, playerName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, identity, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		if menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed per game
		cfg.Seed = time.Now().UnixNano()

		if err := tui.Run(game, store, checker, identity, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
