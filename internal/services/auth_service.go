package services

import (
	"context"
	"errors"
	"strings"

	"github.com/baharkarakas/church-backend/internal/auth"
	"github.com/baharkarakas/church-backend/internal/models"
	repo "github.com/baharkarakas/church-backend/internal/repository"
)

type AuthService struct {
	profiles repo.Profiles
	tm       *auth.TokenManager
}

func NewAuthService(p repo.Profiles, tm *auth.TokenManager) *AuthService {
	return &AuthService{profiles: p, tm: tm}
}

// Login checks the password of a staff profile and issues a token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (auth.Pair, models.Profile, error) {
	p, err := s.profiles.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, repo.ErrNotFound) {
		return auth.Pair{}, models.Profile{}, ErrInvalidCredentials
	}
	if err != nil {
		return auth.Pair{}, models.Profile{}, err
	}
	if p.PasswordHash == nil || auth.VerifyPassword(password, *p.PasswordHash) != nil {
		return auth.Pair{}, models.Profile{}, ErrInvalidCredentials
	}
	pair, err := s.tm.GeneratePair(p.ID, string(p.Role), p.ChurchID)
	if err != nil {
		return auth.Pair{}, models.Profile{}, err
	}
	return pair, p, nil
}

// Refresh reissues a pair from a refresh token, picking up the profile's current role.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (auth.Pair, error) {
	claims, err := s.tm.ParseRefresh(refreshToken)
	if err != nil {
		return auth.Pair{}, ErrInvalidCredentials
	}
	p, err := s.profiles.GetByID(ctx, claims.ChurchID, claims.UserID)
	if errors.Is(err, repo.ErrNotFound) {
		return auth.Pair{}, ErrInvalidCredentials
	}
	if err != nil {
		return auth.Pair{}, err
	}
	if p.PasswordHash == nil {
		return auth.Pair{}, ErrInvalidCredentials
	}
	return s.tm.GeneratePair(p.ID, string(p.Role), p.ChurchID)
}
