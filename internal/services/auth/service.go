package auth

import (
	"errors"
	"log"
	"time"

	"vigil/internal/models"
	"vigil/internal/repositories"
	"vigil/internal/utils"
	"vigil/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Register(username, email, password string) (*models.User, error)
	Login(username, password, ip string) (*models.User, string, string, error)
	RefreshTokens(refreshToken string) (string, string, error)
	Logout(userID uint) error
	GetUserTokenVersion(userID uint) (int, error)
}

type service struct {
	userRepo repositories.UserRepository
}

func NewService(userRepo repositories.UserRepository) Service {
	return &service{
		userRepo: userRepo,
	}
}

func (s *service) Register(username, email, password string) (*models.User, error) {
	if len(password) < validation.MinPasswordLength || !validation.HasSpecialChar(password) {
		return nil, ErrWeakPassword
	}

	if _, err := s.userRepo.GetByUsername(username); err == nil {
		return nil, repositories.ErrUsernameTaken
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, err
	}
	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, repositories.ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		Password:     string(hashedPassword),
		Role:         "user",
		TokenVersion: 1,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *service) Login(username, password, ip string) (*models.User, string, string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		log.Printf("Login failed: user not found for username: %s", username)
		return nil, "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Printf("Login failed: incorrect password for user ID: %d", user.ID)
		return nil, "", "", ErrInvalidCredentials
	}

	// Best effort; a failed audit update must not block the login.
	user.LastLoginAt = time.Now()
	user.LastLoginIP = ip
	if err := s.userRepo.Update(user); err != nil {
		log.Printf("Failed to record last login for user %d: %v", user.ID, err)
	}

	accessToken, refreshToken, err := utils.GenerateTokens(&models.UserClaims{
		UserID:       user.ID,
		Username:     user.Username,
		Role:         user.Role,
		TokenVersion: user.TokenVersion,
	})
	if err != nil {
		log.Println("Error generating tokens:", err)
		return nil, "", "", errors.New("error generating tokens")
	}

	return user, accessToken, refreshToken, nil
}

func (s *service) RefreshTokens(refreshToken string) (string, string, error) {
	_, claims, err := utils.ParseToken(refreshToken)
	if err != nil {
		return "", "", ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		return "", "", ErrInvalidToken
	}

	if user.TokenVersion != claims.TokenVersion {
		return "", "", ErrInvalidToken
	}

	return utils.GenerateTokens(&models.UserClaims{
		UserID:       user.ID,
		Username:     user.Username,
		Role:         user.Role,
		TokenVersion: user.TokenVersion,
	})
}

func (s *service) Logout(userID uint) error {
	return s.userRepo.IncrementTokenVersion(userID)
}

func (s *service) GetUserTokenVersion(userID uint) (int, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return 0, err
	}
	return user.TokenVersion, nil
}
