package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"novelhub/internal/config"
	"novelhub/internal/microservices/http-api/models"
	"novelhub/internal/microservices/http-api/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-that-is-long-enough-for-hs256"

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:      testSecret,
		AccessTokenTTL: time.Hour,
		DefaultTickets: 5,
	}
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func newTestAuthService() (AuthService, *MockUserRepository, *MockAdminRepository) {
	users := new(MockUserRepository)
	admins := new(MockAdminRepository)
	return NewAuthService(users, admins, testConfig()), users, admins
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, users, _ := newTestAuthService()
		users.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.Username == "alice" && u.Email == "alice@example.com" &&
				u.MonthlyTickets == 5 &&
				bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret")) == nil
		})).Return(nil).Once()

		u, err := svc.Register(ctx, " alice ", "secret", "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, "alice", u.Username)
		users.AssertExpectations(t)
	})

	t.Run("MissingFields", func(t *testing.T) {
		svc, users, _ := newTestAuthService()
		for _, in := range [][3]string{{"", "p", "e"}, {"u", "", "e"}, {"u", "p", "  "}} {
			_, err := svc.Register(ctx, in[0], in[1], in[2])
			assert.ErrorIs(t, err, ErrMissingRegisterFields)
		}
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Conflicts", func(t *testing.T) {
		svc, users, _ := newTestAuthService()
		users.On("Create", ctx, mock.Anything).Return(repository.ErrDuplicateUsername).Once()
		users.On("Create", ctx, mock.Anything).Return(repository.ErrDuplicateEmail).Once()

		_, err := svc.Register(ctx, "alice", "p", "a@example.com")
		assert.ErrorIs(t, err, ErrNameInUse)
		assert.ErrorIs(t, err, ErrConflict)

		_, err = svc.Register(ctx, "bob", "p", "a@example.com")
		assert.ErrorIs(t, err, ErrEmailInUse)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: 42, Username: "alice", Password: mustHash(t, "secret")}

	t.Run("Success", func(t *testing.T) {
		svc, users, _ := newTestAuthService()
		users.On("FindByUsername", ctx, "alice").Return(user, nil).Once()

		res, err := svc.Login(ctx, "alice", "secret")
		require.NoError(t, err)
		assert.Equal(t, int64(42), res.UserID)
		assert.Equal(t, "/user-dashboard", res.RedirectTo)
		assert.Equal(t, int64(3600), res.ExpiresIn)

		claims, err := svc.ValidateToken(res.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
		assert.Equal(t, RoleUser, claims.Role)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		svc, users, _ := newTestAuthService()
		users.On("FindByUsername", ctx, "alice").Return(user, nil).Once()

		_, err := svc.Login(ctx, "alice", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		svc, users, _ := newTestAuthService()
		users.On("FindByUsername", ctx, "ghost").Return(nil, repository.ErrNotFound).Once()

		_, err := svc.Login(ctx, "ghost", "secret")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("MissingCredentials", func(t *testing.T) {
		svc, _, _ := newTestAuthService()
		_, err := svc.Login(ctx, "", "secret")
		assert.ErrorIs(t, err, ErrMissingCredentials)

		_, err = svc.Login(ctx, "  ", "secret")
		assert.ErrorIs(t, err, ErrMissingCredentials)
	})

	t.Run("PaddedUsernameMatchesRegistration", func(t *testing.T) {
		svc, users, _ := newTestAuthService()
		users.On("FindByUsername", ctx, "alice").Return(user, nil).Once()

		res, err := svc.Login(ctx, " alice ", "secret")
		require.NoError(t, err)
		assert.Equal(t, "alice", res.Username)
		users.AssertExpectations(t)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		svc, users, _ := newTestAuthService()
		boom := errors.New("connection reset")
		users.On("FindByUsername", ctx, "alice").Return(nil, boom).Once()

		_, err := svc.Login(ctx, "alice", "secret")
		assert.ErrorIs(t, err, boom)
		var se *Error
		assert.False(t, errors.As(err, &se), "store failures are not client errors")
	})
}

func TestAuthService_AdminLogin(t *testing.T) {
	ctx := context.Background()
	admin := &models.Admin{ID: 1, Username: "root", Password: mustHash(t, "secret")}

	t.Run("Success", func(t *testing.T) {
		svc, _, admins := newTestAuthService()
		admins.On("FindByUsername", ctx, "root").Return(admin, nil).Once()

		res, err := svc.AdminLogin(ctx, "root", "secret")
		require.NoError(t, err)
		assert.Equal(t, "/admin-dashboard", res.RedirectTo)

		claims, err := svc.ValidateToken(res.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, RoleAdmin, claims.Role)
	})

	t.Run("PaddedUsername", func(t *testing.T) {
		svc, _, admins := newTestAuthService()
		admins.On("FindByUsername", ctx, "root").Return(admin, nil).Once()

		_, err := svc.AdminLogin(ctx, "root\t", "secret")
		require.NoError(t, err)
		admins.AssertExpectations(t)
	})

	t.Run("UnknownAdmin", func(t *testing.T) {
		svc, users, admins := newTestAuthService()
		admins.On("FindByUsername", ctx, "alice").Return(nil, repository.ErrNotFound).Once()

		_, err := svc.AdminLogin(ctx, "alice", "secret")
		assert.ErrorIs(t, err, ErrAdminNotFound)
		users.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	svc, _, _ := newTestAuthService()

	sign := func(method jwt.SigningMethod, key any, exp time.Time) string {
		tok, err := jwt.NewWithClaims(method, Claims{
			UserID: 1,
			Role:   RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(exp),
			},
		}).SignedString(key)
		require.NoError(t, err)
		return tok
	}

	t.Run("Expired", func(t *testing.T) {
		_, err := svc.ValidateToken(sign(jwt.SigningMethodHS256, []byte(testSecret), time.Now().Add(-time.Minute)))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("WrongKey", func(t *testing.T) {
		_, err := svc.ValidateToken(sign(jwt.SigningMethodHS256, []byte("another-secret"), time.Now().Add(time.Hour)))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("NoneAlgorithm", func(t *testing.T) {
		_, err := svc.ValidateToken(sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, time.Now().Add(time.Hour)))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestAuthService_UserInfo(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newTestAuthService()
	users.On("FindByUsername", ctx, "alice").Return(&models.User{ID: 1, Username: "alice", MonthlyTickets: 3}, nil).Once()
	users.On("FindByUsername", ctx, "ghost").Return(nil, repository.ErrNotFound).Once()

	u, err := svc.UserInfo(ctx, " alice ")
	require.NoError(t, err)
	assert.Equal(t, int64(3), u.MonthlyTickets)

	_, err = svc.UserInfo(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.UserInfo(ctx, "")
	assert.ErrorIs(t, err, ErrUsernameRequired)
}
