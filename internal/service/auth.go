package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/coletaops/coleta/api/internal/model"
)

// bcrypt cost factor; the default is a sane middle ground for an API that
// hashes only at registration and login.
const bcryptCost = bcrypt.DefaultCost

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
}

// TokenIssuer signs bearer tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID int64) (string, error)
}

// AuthService handles registration, login and user listing.
type AuthService struct {
	userRepo UserRepository
	tokens   TokenIssuer
}

// AuthServiceConfig holds configuration for the auth service
type AuthServiceConfig struct {
	UserRepo UserRepository
	Tokens   TokenIssuer
}

// NewAuthService creates a new auth service
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		userRepo: cfg.UserRepo,
		tokens:   cfg.Tokens,
	}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Nome  string
	Email string
	Senha string
}

// Register creates a new user account. The duplicate-email defense is a
// pre-read, not a storage constraint: two concurrent registrations with
// the same email can both pass it.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	nome := strings.TrimSpace(req.Nome)
	if nome == "" {
		return nil, ErrNomeRequired
	}
	if req.Email == "" {
		return nil, ErrEmailRequired
	}
	if req.Senha == "" {
		return nil, ErrSenhaRequired
	}

	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := hashPassword(req.Senha)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Nome:  nome,
		Email: req.Email,
		Senha: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// LoginResult represents a successful login
type LoginResult struct {
	User  *model.User
	Token string
}

// Login authenticates a user by email and password and issues a token.
func (s *AuthService) Login(ctx context.Context, email, senha string) (*LoginResult, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}
	if senha == "" {
		return nil, ErrSenhaRequired
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if !checkPassword(senha, user.Senha) {
		return nil, ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, Token: tok}, nil
}

// ListUsers returns every user in insertion order.
func (s *AuthService) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.List(ctx)
}

// Helper functions

func hashPassword(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// checkPassword returns false for any mismatch, including a malformed
// stored digest.
func checkPassword(senha, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)) == nil
}
