package services

import (
	"context"
	"strings"

	"github.com/k12345663/Shop-Mauli/internal/apperrors"
	"github.com/k12345663/Shop-Mauli/internal/auth"
	"github.com/k12345663/Shop-Mauli/internal/models"
	"github.com/k12345663/Shop-Mauli/internal/repositories"
)

type UserService struct {
	Repo *repositories.UserRepository
	JWT  *auth.JWTManager
}

func NewUserService(repo *repositories.UserRepository, jwt *auth.JWTManager) *UserService {
	return &UserService{Repo: repo, JWT: jwt}
}

// Signup registers a collector account pending owner approval. Admin and
// owner accounts are provisioned directly and cannot be self-registered.
func (s *UserService) Signup(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" || req.FullName == "" {
		return nil, apperrors.Validation("email, password and full name are required")
	}
	if len(req.Password) < 8 {
		return nil, apperrors.Validation("password must be at least 8 characters")
	}

	role := req.Role
	if role == "" {
		role = models.RoleCollector
	}
	if role != models.RoleCollector {
		return nil, apperrors.Validation("only collector accounts can self-register")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         role,
		IsApproved:   false,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		return nil, apperrors.Validation("email and password are required")
	}

	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Validation("invalid email or password")
	}
	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.Validation("invalid email or password")
	}
	if !user.IsApproved {
		return nil, apperrors.Validation("account pending approval")
	}

	token, err := s.JWT.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: user}, nil
}

func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.Repo.List(ctx)
}

func (s *UserService) Approve(ctx context.Context, id string, approved bool) error {
	return s.Repo.SetApproved(ctx, id, approved)
}
