package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/craftops/atelier/internal/common"
	"github.com/craftops/atelier/internal/server/auth"
	"github.com/craftops/atelier/internal/server/config"
)

// AuthResult carries the signed access token together with the account it
// belongs to.
type AuthResult struct {
	AccessToken string
	User        *User
}

type Service struct {
	repo          Repository
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:          repo,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidity,
	}
}

// Register creates an account and signs its first access token. A duplicate
// email surfaces as common.ErrAlreadyExists; missing fields as
// common.ErrInvalidInput.
func (s *Service) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, common.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrInternal
	}

	user := &User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %v", err)
	}

	return s.issueToken(user)
}

// Login verifies the password for the account registered under email.
// Unknown accounts and wrong passwords yield the same
// common.ErrInvalidCredentials, so a caller cannot probe which emails exist.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// GetByID resolves the account behind a verified token's user id.
func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}
	return user, nil
}

func (s *Service) issueToken(user *User) (*AuthResult, error) {
	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, common.ErrInternal
	}
	return &AuthResult{AccessToken: token, User: user}, nil
}
