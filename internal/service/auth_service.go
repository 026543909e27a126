package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"recipebox/internal/auth"
	"recipebox/internal/clock"
	apperrors "recipebox/internal/errors"
	"recipebox/internal/model"
	"recipebox/internal/repository"
)

const bcryptCost = 10

// AuthService handles signup, login and token lifecycle.
type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (accessToken, refreshToken string, user *model.User, err error)
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, user *model.User, err error)
	Refresh(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
	WhoAmI(ctx context.Context, email string) (*model.User, error)
}

type authService struct {
	users      repository.UserRepository
	tx         repository.TxManager
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	clock      clock.Clock
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	users repository.UserRepository,
	tx repository.TxManager,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	clk clock.Clock,
) AuthService {
	return &authService{
		users:      users,
		tx:         tx,
		jwtService: jwtService,
		tokenStore: tokenStore,
		clock:      clk,
	}
}

// Signup creates a user with a bcrypt password digest, records a "signup"
// activity in the same transaction, and issues tokens bound to the email.
func (s *authService) Signup(ctx context.Context, name, email, password string) (string, string, *model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", "", nil, apperrors.ErrMissingCredentials
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return "", "", nil, apperrors.ErrAccountExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", "", nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", "", nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hashed),
	}

	now := s.clock.Now().UnixMilli()
	err = s.tx.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if err := repos.Users.Create(ctx, user); err != nil {
			return err
		}
		_, err := appendActivity(ctx, repos.Activities, email, "signup", now)
		return err
	})
	if err != nil {
		return "", "", nil, fmt.Errorf("create user: %w", err)
	}

	return s.issueTokens(ctx, user)
}

// Login verifies credentials, records a "login" activity and issues tokens.
func (s *authService) Login(ctx context.Context, email, password string) (string, string, *model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", "", nil, apperrors.ErrMissingCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", "", nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", nil, apperrors.ErrInvalidCredentials
	}

	now := s.clock.Now().UnixMilli()
	err = s.tx.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		_, err := appendActivity(ctx, repos.Activities, email, "login", now)
		return err
	})
	if err != nil {
		return "", "", nil, fmt.Errorf("record login: %w", err)
	}

	return s.issueTokens(ctx, user)
}

func (s *authService) issueTokens(ctx context.Context, user *model.User) (string, string, *model.User, error) {
	accessToken, err := s.jwtService.GenerateAccessToken(user.Email)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(user.Email)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, user.Email, auth.RefreshTokenExpiry); err != nil {
		return "", "", nil, fmt.Errorf("store refresh token: %w", err)
	}

	return accessToken, refreshToken, user, nil
}

// Refresh exchanges a valid, unrevoked refresh token for a new access token.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return "", apperrors.ErrInvalidToken
	}

	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return "", apperrors.ErrInvalidToken
	}

	storedEmail, err := s.tokenStore.GetRefreshToken(ctx, tokenID)
	if err != nil || storedEmail != claims.Email {
		return "", apperrors.ErrInvalidToken
	}

	accessToken, err := s.jwtService.GenerateAccessToken(claims.Email)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout revokes a refresh token.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return apperrors.ErrInvalidToken
	}
	return s.tokenStore.DeleteRefreshToken(ctx, tokenID)
}

// WhoAmI resolves the token identity to a user record. The record can be
// gone even for a valid token, e.g. a user deleted between issue and use.
func (s *authService) WhoAmI(ctx context.Context, email string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
