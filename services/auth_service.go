package services

import (
	"context"
	"errors"

	"github.com/shopease/shopease/apperrors"
	"github.com/shopease/shopease/models"
	"github.com/shopease/shopease/repository"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// LoginResult carries the issued token plus the user it belongs to.
type LoginResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type AuthService struct {
	userRepo repository.UserRepository
	tokens   *TokenService
}

func NewAuthService(userRepo repository.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates a user with a bcrypt-hashed password and the "user" role.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, *apperrors.Error) {
	if name == "" || email == "" || password == "" {
		return nil, apperrors.BadRequest("Name, email and password are required")
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrEmailTaken
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		zap.L().Error("Failed to look up user", zap.Error(err))
		return nil, apperrors.Internal("Failed to register", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, apperrors.Internal("Failed to register", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     models.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		zap.L().Error("Failed to create user", zap.Error(err))
		return nil, apperrors.Internal("Failed to register", err)
	}
	return user, nil
}

// Login verifies the credentials and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, *apperrors.Error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrInvalidCredentials
		}
		zap.L().Error("Failed to look up user", zap.Error(err))
		return nil, apperrors.Internal("Failed to log in", err)
	}

	if !CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		zap.L().Error("Failed to sign token", zap.Error(err))
		return nil, apperrors.Internal("Failed to log in", err)
	}

	return &LoginResult{Token: token, User: user}, nil
}
