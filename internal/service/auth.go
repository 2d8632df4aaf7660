package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/crickmart/backend/internal/hash"
	"github.com/crickmart/backend/internal/logging"
	"github.com/crickmart/backend/internal/models"
	"github.com/crickmart/backend/internal/repo"
	"github.com/crickmart/backend/internal/teams"
	"github.com/crickmart/backend/internal/tokens"
)

type AuthService struct {
	Repo      *repo.GormRepo
	Teams     *teams.Picker
	JWTSecret []byte
}

type AuthResult struct {
	User  *models.User
	Token string
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("name, email and password are required: %w", ErrValidation)
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: pwHash,
		AssignedTeam: s.Teams.Pick(),
	}

	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrEmailExists) {
			return nil, fmt.Errorf("%s: %w", email, ErrEmailTaken)
		}
		l.Error("register_error", "reason", "cannot persist user", "error", err)
		return nil, err
	}

	token, err := tokens.NewSessionToken(user.ID, user.Email, s.JWTSecret)
	if err != nil {
		l.Error("register_error", "reason", "cannot sign session token", "error", err)
		return nil, err
	}

	return &AuthResult{User: &user, Token: token}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required: %w", ErrValidation)
	}

	user, err := s.Repo.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same error as a bad password; callers learn nothing about
			// which field was wrong.
			return nil, ErrInvalidCredentials
		}
		l.Error("login_error", "reason", "cannot look up user", "error", err)
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := tokens.NewSessionToken(user.ID, user.Email, s.JWTSecret)
	if err != nil {
		l.Error("login_error", "reason", "cannot sign session token", "error", err)
		return nil, err
	}

	return &AuthResult{User: user, Token: token}, nil
}
