package service

import (
	"context"

	"novelhub/internal/microservices/http-api/models"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) SearchByUsername(ctx context.Context, fragment string) ([]models.User, error) {
	args := m.Called(ctx, fragment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, username string, email, passwordHash *string) error {
	return m.Called(ctx, username, email, passwordHash).Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	return m.Called(ctx, username, passwordHash).Error(0)
}

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	return m.Called(ctx, admin).Error(0)
}

func (m *MockAdminRepository) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

type MockNovelRepository struct {
	mock.Mock
}

func (m *MockNovelRepository) novels(args mock.Arguments) ([]models.Novel, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Novel), args.Error(1)
}

func (m *MockNovelRepository) List(ctx context.Context) ([]models.Novel, error) {
	return m.novels(m.Called(ctx))
}

func (m *MockNovelRepository) GetByID(ctx context.Context, id int64) (*models.Novel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Novel), args.Error(1)
}

func (m *MockNovelRepository) Search(ctx context.Context, filter models.NovelFilter) ([]models.Novel, error) {
	return m.novels(m.Called(ctx, filter))
}

func (m *MockNovelRepository) Featured(ctx context.Context) ([]models.Novel, error) {
	return m.novels(m.Called(ctx))
}

func (m *MockNovelRepository) Rankings(ctx context.Context) ([]models.Novel, error) {
	return m.novels(m.Called(ctx))
}

func (m *MockNovelRepository) Create(ctx context.Context, n *models.Novel) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNovelRepository) Update(ctx context.Context, id int64, u models.NovelUpdate) error {
	return m.Called(ctx, id, u).Error(0)
}

func (m *MockNovelRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockChapterRepository struct {
	mock.Mock
}

func (m *MockChapterRepository) ListByNovel(ctx context.Context, novelID int64) ([]models.Chapter, error) {
	args := m.Called(ctx, novelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Chapter), args.Error(1)
}

func (m *MockChapterRepository) GetByID(ctx context.Context, id int64) (*models.Chapter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Chapter), args.Error(1)
}

func (m *MockChapterRepository) Create(ctx context.Context, ch *models.Chapter) error {
	return m.Called(ctx, ch).Error(0)
}

func (m *MockChapterRepository) Update(ctx context.Context, id int64, title, content string) error {
	return m.Called(ctx, id, title, content).Error(0)
}

func (m *MockChapterRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockBookshelfRepository struct {
	mock.Mock
}

func (m *MockBookshelfRepository) Add(ctx context.Context, userID, novelID int64) error {
	return m.Called(ctx, userID, novelID).Error(0)
}

func (m *MockBookshelfRepository) Remove(ctx context.Context, userID int64, novelIDs []int64) (int64, error) {
	args := m.Called(ctx, userID, novelIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookshelfRepository) List(ctx context.Context, userID int64) ([]models.ShelvedNovel, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ShelvedNovel), args.Error(1)
}

type MockRewardRepository struct {
	mock.Mock
}

func (m *MockRewardRepository) Reward(ctx context.Context, userID, novelID, tickets int64) (*models.RewardResult, error) {
	args := m.Called(ctx, userID, novelID, tickets)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RewardResult), args.Error(1)
}

// MockNovelCache records invalidations; reads always miss unless primed.
type MockNovelCache struct {
	mock.Mock
}

func (m *MockNovelCache) GetRankings(ctx context.Context) ([]models.Novel, int64, bool) {
	return m.list(m.Called(ctx))
}

func (m *MockNovelCache) SetRankings(ctx context.Context, gen int64, list []models.Novel) {
	m.Called(ctx, gen, list)
}

func (m *MockNovelCache) GetFeatured(ctx context.Context) ([]models.Novel, int64, bool) {
	return m.list(m.Called(ctx))
}

func (m *MockNovelCache) SetFeatured(ctx context.Context, gen int64, list []models.Novel) {
	m.Called(ctx, gen, list)
}

func (m *MockNovelCache) list(args mock.Arguments) ([]models.Novel, int64, bool) {
	gen := args.Get(1).(int64)
	if args.Get(0) == nil {
		return nil, gen, args.Bool(2)
	}
	return args.Get(0).([]models.Novel), gen, args.Bool(2)
}

func (m *MockNovelCache) Invalidate(ctx context.Context) {
	m.Called(ctx)
}
