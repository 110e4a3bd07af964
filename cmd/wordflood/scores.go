package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"wordflood/internal/registry"
	"wordflood/internal/storage"
)

var (
	flagScoresDaily bool
	flagScoresMine  bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the leaderboard",
	Long: `Display the top scores for a mode (grid by default).

Examples:
  wordflood scores
  wordflood scores typed
  wordflood scores --daily
  wordflood scores --mine --limit 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresDaily, "daily", false, "Only scores set today")
	scoresCmd.Flags().BoolVar(&flagScoresMine, "mine", false, "Only your own scores (requires login)")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
}

func runScores(cmd *cobra.Command, args []string) {
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

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var scores []storage.ScoreEntry
	heading := "High Scores"
	switch {
	case flagScoresMine:
		_, identity := openAuth(store)
		if identity == nil {
			fmt.Fprintln(os.Stderr, "Error: not signed in. Run 'wordflood login' first.")
			os.Exit(1)
		}
		heading = fmt.Sprintf("Scores for %s", identity.Username)
		scores, err = store.PersonalScores(identity.UserID, gameID, flagScoresLimit)
	case flagScoresDaily:
		heading = "Today's High Scores"
		midnight := time.Now().Truncate(24 * time.Hour)
		scores, err = store.TopScoresSince(gameID, midnight, flagScoresLimit)
	default:
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s - %s\n", heading, title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'wordflood play %s' to set the first high score!\n", mode)
		return
	}

	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "----", "------", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-10d  %s\n", i+1, entry.Username, entry.Score, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
