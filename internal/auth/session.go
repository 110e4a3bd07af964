package auth

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	sessionFile = "session"
	secretFile  = "secret"
	secretEnv   = "WORDFLOOD_SECRET"
)

// dataDir returns ~/.wordflood, creating it on first use.
func dataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("auth: cannot locate home directory: %w", err)
	}
	dir := filepath.Join(home, ".wordflood")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("auth: cannot create %s: %w", dir, err)
	}
	return dir, nil
}

// LoadSecret returns the token signing secret. WORDFLOOD_SECRET wins
// when set; otherwise a random secret is generated once and kept in
// ~/.wordflood/secret so tokens survive restarts.
func LoadSecret() ([]byte, error) {
	if env := os.Getenv(secretEnv); env != "" {
		return []byte(env), nil
	}

	dir, err := dataDir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, secretFile)

	if data, err := os.ReadFile(path); err == nil && len(data) > 0 {
		return []byte(strings.TrimSpace(string(data))), nil
	}

	secret, err := randomToken(32)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, []byte(secret), 0o600); err != nil {
		return nil, fmt.Errorf("auth: cannot persist secret: %w", err)
	}
	return []byte(secret), nil
}

func randomToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("auth: cannot read random bytes: %w", err)
	}
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(buf), nil
}

// SaveSession stores the login token for later commands.
func SaveSession(token string) error {
	dir, err := dataDir()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, sessionFile)
	if err := os.WriteFile(path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("auth: cannot save session: %w", err)
	}
	return nil
}

// LoadSession returns the stored login token, or "" when logged out.
func LoadSession() (string, error) {
	dir, err := dataDir()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(dir, sessionFile))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("auth: cannot read session: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// ClearSession logs the player out by removing the stored token.
func ClearSession() error {
	dir, err := dataDir()
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(dir, sessionFile))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("auth: cannot clear session: %w", err)
	}
	return nil
}

// CurrentIdentity resolves the stored session against the service.
// Returns nil without error when nobody is logged in or the token
// has gone stale.
func CurrentIdentity(svc *Service) (*Identity, error) {
	token, err := LoadSession()
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}
	identity, err := svc.Verify(token)
	if err != nil {
		// Expired or orphaned token is the same as logged out.
		return nil, nil
	}
	return identity, nil
}
