package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"blog-backend/internal/domains/user"
	"blog-backend/pkg/token"
)

// bcrypt cost 12: balance between security and login latency.
const bcryptCost = 12

// userService implements user.Service.
type userService struct {
	repo        user.Repository
	tokens      *token.Manager
	tokenExpiry time.Duration
}

// NewUserService creates the user service. tokenExpiry is the configured
// access token lifetime used at the login call site.
func NewUserService(repo user.Repository, tokens *token.Manager, tokenExpiry time.Duration) user.Service {
	return &userService{
		repo:        repo,
		tokens:      tokens,
		tokenExpiry: tokenExpiry,
	}
}

// HashPassword produces a salted one-way bcrypt hash.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches hash. It never fails:
// malformed hashes count as a mismatch.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// Register creates a new user account.
func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.UserDTO, error) {
	// 1. NORMALIZE + VALIDATE
	// Handlers validate too; revalidating here keeps the service safe
	// when called from other entry points (seed CLI, tests).
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. DUPLICATE CHECK - one query with an OR condition.
	// When both email and username collide, the email message wins.
	existing, err := s.repo.FindByEmailOrUsername(ctx, req.Email, req.Username)
	if err == nil {
		if existing.Email == req.Email {
			return nil, user.ErrEmailTaken
		}
		return nil, user.ErrUsernameTaken
	}
	if err != user.ErrUserNotFound {
		return nil, fmt.Errorf("check duplicates: %w", err)
	}

	// 3. HASH PASSWORD
	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	// 4. BUILD + PERSIST ENTITY
	newUser := &user.User{
		Email:          req.Email,
		Username:       req.Username,
		HashedPassword: hashed,
	}
	if req.FullName != "" {
		fullName := req.FullName
		newUser.FullName = &fullName
	}
	newUser.Touch()

	id, err := s.repo.Create(ctx, newUser)
	if err != nil {
		return nil, err
	}
	newUser.ID = id

	dto := newUser.ToDTO()
	return &dto, nil
}

// Login authenticates and issues a bearer token.
func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Absent user and wrong password are indistinguishable to the caller.
	u, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}

	if !CheckPassword(req.Password, u.HashedPassword) {
		return nil, user.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Generate(u.Username, s.tokenExpiry)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &user.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

// GetByID returns the public user shape.
func (s *userService) GetByID(ctx context.Context, id int64) (*user.UserDTO, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := u.ToDTO()
	return &dto, nil
}
