package service

import (
	"context"
	"errors"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

// AuthService handles registration and login against the user store.
type AuthService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register hashes the password and stores a new user. No token is issued;
// the caller logs in separately.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &domain.User{Username: username, PasswordHash: hash}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login checks credentials and issues a bearer token. An unknown username
// and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}
	if !CheckPassword(password, u.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}
	return GenerateToken(u.ID, u.Username)
}
