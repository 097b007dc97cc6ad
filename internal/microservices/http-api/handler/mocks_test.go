package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"novelhub/internal/microservices/http-api/models"
	"novelhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, password, email string) (*models.User, error) {
	args := m.Called(ctx, username, password, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*service.LoginResult, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LoginResult), args.Error(1)
}

func (m *MockAuthService) AdminLogin(ctx context.Context, username, password string) (*service.LoginResult, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LoginResult), args.Error(1)
}

func (m *MockAuthService) UserInfo(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) novels(args mock.Arguments) ([]models.Novel, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Novel), args.Error(1)
}

func (m *MockCatalogService) ListNovels(ctx context.Context) ([]models.Novel, error) {
	return m.novels(m.Called(ctx))
}

func (m *MockCatalogService) GetNovel(ctx context.Context, id int64) (*models.Novel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Novel), args.Error(1)
}

func (m *MockCatalogService) SearchNovels(ctx context.Context, filter models.NovelFilter) ([]models.Novel, error) {
	return m.novels(m.Called(ctx, filter))
}

func (m *MockCatalogService) FeaturedNovels(ctx context.Context) ([]models.Novel, error) {
	return m.novels(m.Called(ctx))
}

func (m *MockCatalogService) Rankings(ctx context.Context) ([]models.Novel, error) {
	return m.novels(m.Called(ctx))
}

func (m *MockCatalogService) ListChapters(ctx context.Context, novelID int64) ([]models.Chapter, error) {
	args := m.Called(ctx, novelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Chapter), args.Error(1)
}

func (m *MockCatalogService) GetChapter(ctx context.Context, id int64) (*models.Chapter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Chapter), args.Error(1)
}

func (m *MockCatalogService) CreateChapter(ctx context.Context, novelID int64, title, content string) (*models.Chapter, error) {
	args := m.Called(ctx, novelID, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Chapter), args.Error(1)
}

func (m *MockCatalogService) UpdateChapter(ctx context.Context, id int64, title, content string) error {
	return m.Called(ctx, id, title, content).Error(0)
}

func (m *MockCatalogService) DeleteChapter(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockBookshelfService struct {
	mock.Mock
}

func (m *MockBookshelfService) Add(ctx context.Context, userID, novelID int64) error {
	return m.Called(ctx, userID, novelID).Error(0)
}

func (m *MockBookshelfService) Remove(ctx context.Context, userID int64, novelIDs []int64) error {
	return m.Called(ctx, userID, novelIDs).Error(0)
}

func (m *MockBookshelfService) List(ctx context.Context, userID int64) ([]models.ShelvedNovel, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ShelvedNovel), args.Error(1)
}

func (m *MockBookshelfService) Reward(ctx context.Context, userID, novelID, tickets int64) (*models.RewardResult, error) {
	args := m.Called(ctx, userID, novelID, tickets)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RewardResult), args.Error(1)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, username string, email, password *string) error {
	return m.Called(ctx, username, email, password).Error(0)
}

func (m *MockProfileService) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	return m.Called(ctx, username, currentPassword, newPassword).Error(0)
}

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockAdminService) SearchUsers(ctx context.Context, username string) ([]models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockAdminService) DeleteUser(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAdminService) CreateNovel(ctx context.Context, n *models.Novel) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockAdminService) UpdateNovel(ctx context.Context, id int64, u models.NovelUpdate) error {
	return m.Called(ctx, id, u).Error(0)
}

func (m *MockAdminService) DeleteNovel(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAdminService) SearchNovels(ctx context.Context, filter models.NovelFilter) ([]models.Novel, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Novel), args.Error(1)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// perform sends body (raw string or any JSON-encodable value) to the router.
func perform(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
