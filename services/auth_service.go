package services

import (
	"fmt"
	"time"

	"chat-bootstrap/auth"
	"chat-bootstrap/errors"
	"chat-bootstrap/store"
)

type IAuthService interface {
	Register(name, password string) (Token, error)
	Login(name, password string) (Token, error)
}

type Token string

type AuthService struct {
	store    *store.Store
	tokenTTL time.Duration
}

func NewAuthService(s *store.Store, tokenTTL time.Duration) IAuthService {
	return &AuthService{store: s, tokenTTL: tokenTTL}
}

// Register creates a real account through the store's write-through
// create path and returns a session token for it.
func (a *AuthService) Register(name, password string) (Token, error) {
	req := auth.RegisterRequest{Name: name, Password: password}

	// Business rules first, before any expensive cryptographic work.
	if err := auth.ValidateRegister(req); err != nil {
		return "", fmt.Errorf("invalid registration: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	// CreateUser enforces name uniqueness against the seeded dataset
	// and persists before indexing.
	user, err := a.store.CreateUser(name, hash, "")
	if err != nil {
		return "", err
	}

	token, err := auth.GenerateToken(user.ID.String(), user.Name, a.tokenTTL)
	return Token(token), err
}

// Login resolves the account by display name and compares the secret
// against the stored one-way hash. Seeded accounts authenticate with
// the placeholder secret they were provisioned with.
func (a *AuthService) Login(name, password string) (Token, error) {
	user, ok := a.store.UserByName(name)
	if !ok {
		return "", errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("comparing credentials: %w", err)
	}
	if !match {
		return "", errors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID.String(), user.Name, a.tokenTTL)
	return Token(token), err
}
