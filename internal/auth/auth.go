// Package auth handles player accounts: signup, login, and the signed
// tokens that let the score board attribute results to a player.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"wordflood/internal/storage"
)

var (
	// ErrInvalidCredentials covers both unknown users and wrong
	// passwords, so login failures don't reveal which one it was.
	ErrInvalidCredentials = errors.New("auth: invalid username or password")

	// ErrUsernameTaken is returned by Signup for duplicate names.
	ErrUsernameTaken = errors.New("auth: username taken")
)

const tokenLifetime = 14 * 24 * time.Hour

// Identity is the verified content of a login token.
type Identity struct {
	UserID   int64
	Username string
}

// Service verifies credentials against the store and issues tokens.
type Service struct {
	store  *storage.Store
	secret []byte
}

// NewService builds an auth service on the given store and signing secret.
func NewService(store *storage.Store, secret []byte) *Service {
	return &Service{store: store, secret: secret}
}

func normalizeUsername(u string) string {
	return strings.TrimSpace(u)
}

func validateSignup(username, password string) error {
	if len(username) < 3 || len(username) > 24 {
		return errors.New("auth: username must be 3-24 chars")
	}
	for _, r := range username {
		if !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return errors.New("auth: username: letters, numbers, underscore only")
		}
	}
	if len(password) < 8 || len(password) > 100 {
		return errors.New("auth: password must be 8-100 chars")
	}
	return nil
}

// Signup registers a new account and returns its ID.
func (s *Service) Signup(username, password string) (int64, error) {
	username = normalizeUsername(username)
	if err := validateSignup(username, password); err != nil {
		return 0, err
	}

	existing, err := s.store.UserByUsername(username)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("auth: cannot hash password: %w", err)
	}

	return s.store.CreateUser(username, string(hash))
}

// Login checks the credentials and returns a signed token.
func (s *Service) Login(username, password string) (string, error) {
	user, err := s.store.UserByUsername(normalizeUsername(username))
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"exp":      now.Add(tokenLifetime).Unix(),
		"iat":      now.Unix(),
	})
	return token.SignedString(s.secret)
}

// Verify parses a token and confirms the account still exists.
func (s *Service) Verify(tokenStr string) (*Identity, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("auth: unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}

	id, _ := claims["id"].(float64)
	username, _ := claims["username"].(string)
	if id == 0 || username == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.store.UserByID(int64(id))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	return &Identity{UserID: user.ID, Username: user.Username}, nil
}
