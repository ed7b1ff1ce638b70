package auth

import (
	"testing"

	"vigil/internal/models"
	"vigil/internal/repositories"
	"vigil/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestRegister(t *testing.T) {
	t.Run("creates user with hashed password", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetByUsername", "alice").Return(nil, repositories.ErrUserNotFound)
		repo.On("GetByEmail", "alice@example.com").Return(nil, repositories.ErrUserNotFound)
		repo.On("Create", mock.MatchedBy(func(u *models.User) bool {
			return u.Username == "alice" &&
				u.Email == "alice@example.com" &&
				bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("Str0ng!pass")) == nil
		})).Return(nil)

		svc := NewService(repo)

		user, err := svc.Register("alice", "alice@example.com", "Str0ng!pass")

		assert.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "user", user.Role)
		assert.Equal(t, 1, user.TokenVersion)
		assert.NotEqual(t, "Str0ng!pass", user.Password)
		repo.AssertExpectations(t)
	})

	t.Run("rejects weak password", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewService(repo)

		_, err := svc.Register("alice", "alice@example.com", "short")

		assert.ErrorIs(t, err, ErrWeakPassword)
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("rejects password without special characters", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewService(repo)

		_, err := svc.Register("alice", "alice@example.com", "LongButPlain1")

		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("rejects taken username", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetByUsername", "alice").Return(&models.User{Username: "alice"}, nil)

		svc := NewService(repo)

		_, err := svc.Register("alice", "alice@example.com", "Str0ng!pass")

		assert.ErrorIs(t, err, repositories.ErrUsernameTaken)
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("rejects taken email", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetByUsername", "alice").Return(nil, repositories.ErrUserNotFound)
		repo.On("GetByEmail", "alice@example.com").Return(&models.User{Email: "alice@example.com"}, nil)

		svc := NewService(repo)

		_, err := svc.Register("alice", "alice@example.com", "Str0ng!pass")

		assert.ErrorIs(t, err, repositories.ErrEmailTaken)
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("returns tokens for valid credentials", func(t *testing.T) {
		stored := &models.User{
			Username:     "alice",
			Password:     hashPassword(t, "CorrectHorse!1"),
			Role:         "user",
			TokenVersion: 1,
		}
		stored.ID = 7

		repo := new(MockUserRepository)
		repo.On("GetByUsername", "alice").Return(stored, nil)
		repo.On("Update", mock.MatchedBy(func(u *models.User) bool {
			return u.ID == 7 && u.LastLoginIP == "203.0.113.9" && !u.LastLoginAt.IsZero()
		})).Return(nil)

		svc := NewService(repo)

		user, access, refresh, err := svc.Login("alice", "CorrectHorse!1", "203.0.113.9")

		assert.NoError(t, err)
		assert.Equal(t, uint(7), user.ID)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		repo.AssertExpectations(t)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		stored := &models.User{
			Username: "alice",
			Password: hashPassword(t, "CorrectHorse!1"),
		}

		repo := new(MockUserRepository)
		repo.On("GetByUsername", "alice").Return(stored, nil)

		svc := NewService(repo)

		_, _, _, err := svc.Login("alice", "wrong-password", "203.0.113.9")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rejects unknown username", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetByUsername", "mallory").Return(nil, repositories.ErrUserNotFound)

		svc := NewService(repo)

		_, _, _, err := svc.Login("mallory", "whatever", "203.0.113.9")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestRefreshTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	issue := func(t *testing.T, tokenVersion int) string {
		t.Helper()
		_, refresh, err := utils.GenerateTokens(&models.UserClaims{
			UserID:       7,
			Username:     "alice",
			Role:         "user",
			TokenVersion: tokenVersion,
		})
		assert.NoError(t, err)
		return refresh
	}

	t.Run("rotates a valid pair", func(t *testing.T) {
		stored := &models.User{Username: "alice", Role: "user", TokenVersion: 1}
		stored.ID = 7

		repo := new(MockUserRepository)
		repo.On("GetByID", uint(7)).Return(stored, nil)

		svc := NewService(repo)

		access, refresh, err := svc.RefreshTokens(issue(t, 1))

		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("rejects stale token version", func(t *testing.T) {
		stored := &models.User{Username: "alice", Role: "user", TokenVersion: 2}
		stored.ID = 7

		repo := new(MockUserRepository)
		repo.On("GetByID", uint(7)).Return(stored, nil)

		svc := NewService(repo)

		_, _, err := svc.RefreshTokens(issue(t, 1))

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewService(repo)

		_, _, err := svc.RefreshTokens("not.a.jwt")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestLogout(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("IncrementTokenVersion", uint(7)).Return(nil)

	svc := NewService(repo)

	assert.NoError(t, svc.Logout(7))
	repo.AssertExpectations(t)
}

func TestGetUserTokenVersion(t *testing.T) {
	stored := &models.User{TokenVersion: 3}
	stored.ID = 7

	repo := new(MockUserRepository)
	repo.On("GetByID", uint(7)).Return(stored, nil)

	svc := NewService(repo)

	version, err := svc.GetUserTokenVersion(7)

	assert.NoError(t, err)
	assert.Equal(t, 3, version)
}

// Implement required mock methods
func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) IncrementTokenVersion(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}
