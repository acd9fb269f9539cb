package services

import (
	"context"
	"errors"
	"strings"

	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/dto"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/models"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/validation"
	"github.com/google/uuid"
)

const tokenType = "bearer"

type AuthService struct {
	users UserRepository
	creds *CredentialService
}

func NewAuthService(users UserRepository, creds *CredentialService) *AuthService {
	return &AuthService{users: users, creds: creds}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperr.Conflict("Email already registered")
	} else if !errors.Is(err, apperr.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := s.creds.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := models.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		Password: hash,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		if apperr.HasCode(err, apperr.CodeConflict) {
			return nil, apperr.Conflict("Email already registered")
		}
		return nil, err
	}

	return s.issue(user.Email)
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperr.ErrRecordNotFound) {
			return nil, apperr.Authentication("Incorrect email or password")
		}
		return nil, err
	}
	if !s.creds.VerifyPassword(req.Password, user.Password) {
		return nil, apperr.Authentication("Incorrect email or password")
	}

	return s.issue(user.Email)
}

// ResolveIdentity maps a bearer token to the stored user it names.
func (s *AuthService) ResolveIdentity(ctx context.Context, token string) (*models.User, error) {
	email, err := s.creds.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrRecordNotFound) {
			return nil, apperr.Authentication("Could not validate credentials")
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) issue(email string) (*dto.TokenResponse, error) {
	token, err := s.creds.IssueToken(email, s.creds.TTL())
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &dto.TokenResponse{AccessToken: token, TokenType: tokenType}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
