package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-sales-rest/internal/model"
	"go-sales-rest/internal/repository"
	"go-sales-rest/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrOperatorInactive   = errors.New("operator account is inactive")
	ErrSessionReplaced    = errors.New("session expired (logged in on another device)")
)

// IsAuthError reports whether err means the caller is not (or no longer)
// authenticated, as opposed to a storage failure.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrOperatorInactive) ||
		errors.Is(err, ErrSessionReplaced) ||
		errors.Is(err, ErrOperatorNotFound) ||
		errors.Is(err, jwt.ErrInvalidToken)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	ResetPassword(ctx context.Context, email, oldPassword, newPassword string) error
	ValidateToken(ctx context.Context, tokenString string) (*TokenValidationResponse, error)
	SeedAdmin(ctx context.Context, email, password string) error
}

type LoginResponse struct {
	Token      string                 `json:"token"`
	Operator   model.OperatorResponse `json:"operator"`
	Privileges []string               `json:"privileges"`
}

type TokenValidationResponse struct {
	Operator   model.OperatorResponse `json:"operator"`
	Privileges []string               `json:"privileges"`
}

type authService struct {
	operatorRepo repository.OperatorRepository
	tokens       *jwt.Manager
}

func NewAuthService(operatorRepo repository.OperatorRepository, tokens *jwt.Manager) AuthService {
	return &authService{
		operatorRepo: operatorRepo,
		tokens:       tokens,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	operator, err := s.operatorRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !operator.IsActive {
		return nil, ErrOperatorInactive
	}
	if !operator.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	// A fresh token version invalidates every token issued before this login.
	tokenVersion := uuid.New().String()
	now := time.Now()
	if err := s.operatorRepo.StartSession(ctx, operator.ID, tokenVersion, now); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	operator.TokenVersion = tokenVersion
	operator.LastLoginAt = &now

	token, err := s.tokens.GenerateToken(operator.ID, operator.Email, operator.FullName, operator.RoleCode, operator.Privileges(), tokenVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{
		Token:      token,
		Operator:   operator.ToResponse(),
		Privileges: operator.Privileges(),
	}, nil
}

func (s *authService) ResetPassword(ctx context.Context, email, oldPassword, newPassword string) error {
	// Unknown email and wrong password fail the same way.
	operator, err := s.operatorRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	if !operator.CheckPassword(oldPassword) {
		return ErrInvalidCredentials
	}
	if len(newPassword) < 6 {
		return validationError("password", "must be at least 6 characters")
	}

	if err := operator.SetPassword(newPassword); err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}
	if err := s.operatorRepo.UpdatePassword(ctx, operator.ID, operator.Password); err != nil {
		return err
	}
	// Old tokens stop working once the password changes.
	return s.operatorRepo.RotateTokenVersion(ctx, operator.ID, uuid.New().String())
}

func (s *authService) ValidateToken(ctx context.Context, tokenString string) (*TokenValidationResponse, error) {
	claims, err := s.tokens.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	operator, err := s.operatorRepo.FindByID(ctx, claims.OperatorID)
	if err != nil {
		return nil, notFound(err, ErrOperatorNotFound)
	}
	if !operator.IsActive {
		return nil, ErrOperatorInactive
	}
	if operator.TokenVersion != claims.TokenVersion {
		return nil, ErrSessionReplaced
	}

	return &TokenValidationResponse{
		Operator:   operator.ToResponse(),
		Privileges: operator.Privileges(),
	}, nil
}

// SeedAdmin creates the initial ADMIN operator unless one with that email exists.
func (s *authService) SeedAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	_, err := s.operatorRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	admin := &model.Operator{
		Email:    email,
		FullName: "Administrator",
		RoleCode: model.RoleAdmin,
		IsActive: true,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"
	if err := admin.SetPassword(password); err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	if err := s.operatorRepo.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("Seeded admin operator %s", email)
	return nil
}
