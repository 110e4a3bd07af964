// wordflood is a word game for the terminal: letters flood a 6x6 board
// over time, and you clear them by forming real words before it fills up.
//
// Usage:
//
//	wordflood menu           - Interactive mode picker
//	wordflood play [mode]    - Play directly (grid or typed)
//	wordflood scores [mode]  - Show the leaderboard
//	wordflood serve          - Start SSH server for remote play
//	wordflood check <word>   - Ask the dictionary about a word
//	wordflood signup/login   - Manage your account
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible letter spawns
//	--db <path>     - Set database path (default: ~/.wordflood/scores.db)
//	--config <path> - Path to custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "wordflood/internal/games/flood"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	// Optional .env for WORDFLOOD_SECRET and friends
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordflood",
	Short: "Word Flood - beat the rising tide of letters",
	Long: `Word Flood is a terminal word game. Letters spawn onto a 6x6 board
over time; form dictionary words to clear them. When the board fills
completely, the game is over.

Two ways to play:
  grid   - Move a cursor and pick board letters in order
  typed  - Type any word whose letters are on the board (faster spawns)

Available commands:
  list     - Show the play modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  scores   - View the leaderboard
  serve    - Start SSH server for remote play
  check    - Look a word up in the dictionary
  signup   - Create an account
  login    - Sign in so your scores are saved
  logout   - Sign out
  whoami   - Show who is signed in

Examples:
  wordflood menu
  wordflood play grid
  wordflood play typed --offline
  wordflood scores --daily
  wordflood serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wordflood/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
