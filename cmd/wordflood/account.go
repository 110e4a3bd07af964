package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"wordflood/internal/auth"
	"wordflood/internal/registry"
	"wordflood/internal/storage"
)

var signupCmd = &cobra.Command{
	Use:   "signup <username>",
	Short: "Create an account",
	Long: `Create a local account so your scores go on the leaderboard.

You are signed in automatically after signup.

Example:
  wordflood signup alice`,
	Args: cobra.ExactArgs(1),
	Run:  runSignup,
}

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Sign in so your scores are saved",
	Args:  cobra.ExactArgs(1),
	Run:   runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	Args:  cobra.NoArgs,
	Run:   runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show who is signed in",
	Args:  cobra.NoArgs,
	Run:   runWhoami,
}

// promptPassword reads a password without echoing it.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("cannot read password: %w", err)
	}
	return string(pw), nil
}

// openAuthService opens the store and auth service, or exits.
func openAuthService() (*storage.Store, *auth.Service) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	secret, err := auth.LoadSecret()
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return store, auth.NewService(store, secret)
}

func runSignup(cmd *cobra.Command, args []string) {
	username := args[0]

	password, err := promptPassword("Password (8+ chars): ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	confirm, err := promptPassword("Confirm password: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if password != confirm {
		fmt.Fprintln(os.Stderr, "Error: passwords do not match")
		os.Exit(1)
	}

	store, svc := openAuthService()
	defer store.Close()

	if _, err := svc.Signup(username, password); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	token, err := svc.Login(username, password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := auth.SaveSession(token); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Account created. Signed in as %s.\n", username)
}

func runLogin(cmd *cobra.Command, args []string) {
	username := args[0]

	password, err := promptPassword("Password: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, svc := openAuthService()
	defer store.Close()

	token, err := svc.Login(username, password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := auth.SaveSession(token); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Signed in as %s. Your scores will be saved.\n", username)
}

func runLogout(_ *cobra.Command, _ []string) {
	if err := auth.ClearSession(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Signed out.")
}

func runWhoami(_ *cobra.Command, _ []string) {
	store, svc := openAuthService()
	defer store.Close()

	identity, err := auth.CurrentIdentity(svc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if identity == nil {
		fmt.Println("Not signed in. Scores will not be saved.")
		return
	}
	fmt.Printf("Signed in as %s.\n", identity.Username)

	for _, info := range registry.List() {
		stats, err := store.GetPlayerStats(identity.UserID, info.ID)
		if err != nil || stats.GamesCount == 0 {
			continue
		}
		fmt.Printf("  %s: %d games, best %d, average %.0f\n",
			info.Title, stats.GamesCount, stats.HighScore, stats.AvgScore)
	}
}
