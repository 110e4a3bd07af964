package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <word>",
	Short: "Look a word up in the dictionary",
	Long: `Ask the same dictionary the game uses whether a word is valid.

Examples:
  wordflood check flood
  wordflood check zyzzyva --offline`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&flagOffline, "offline", false, "Use the built-in word list instead of the online dictionary")
}

func runCheck(cmd *cobra.Command, args []string) {
	word := args[0]

	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	checker := buildChecker(gameCfg, flagOffline)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	valid, err := checker.Check(ctx, word)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if valid {
		fmt.Printf("%q is a word.\n", word)
	} else {
		fmt.Printf("%q is not a word.\n", word)
		os.Exit(1)
	}
}
