package main

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"wordflood/internal/auth"
	"wordflood/internal/config"
	"wordflood/internal/core"
	"wordflood/internal/dict"
	"wordflood/internal/games/flood"
	"wordflood/internal/storage"
)

// modeToGameID maps CLI-friendly mode names to registered game IDs.
var modeToGameID = map[string]string{
	"grid":        "flood",
	"flood":       "flood",
	"typed":       "flood_typed",
	"flood_typed": "flood_typed",
}

// resolveMode turns a user-supplied mode name into a game ID.
func resolveMode(arg string) (string, error) {
	id, ok := modeToGameID[arg]
	if !ok {
		return "", fmt.Errorf("unknown mode %q (want grid or typed)", arg)
	}
	return id, nil
}

// terminalConfig builds a runtime config from the current terminal size
// and the global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// loadGameConfig reads the flood config and installs it for new games.
func loadGameConfig() (config.FloodConfig, error) {
	cfg, err := config.LoadFlood(flagConfig)
	if err != nil {
		return cfg, err
	}
	flood.SetConfig(cfg)
	return cfg, nil
}

// buildChecker constructs the dictionary checker from config and flags.
func buildChecker(cfg config.FloodConfig, offline bool) dict.Checker {
	return dict.NewChecker(
		cfg.Dictionary.Endpoint,
		time.Duration(cfg.Dictionary.TimeoutMS)*time.Millisecond,
		offline || cfg.Dictionary.Offline,
	)
}

// openAuth opens the store's auth service and resolves the current
// session, if any. Either return value may be nil on a degraded setup.
func openAuth(store *storage.Store) (*auth.Service, *auth.Identity) {
	if store == nil {
		return nil, nil
	}
	secret, err := auth.LoadSecret()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return nil, nil
	}
	svc := auth.NewService(store, secret)
	identity, err := auth.CurrentIdentity(svc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return svc, identity
}
