package service

import (
	"context"
	"errors"

	"novelhub/internal/microservices/http-api/models"
	"novelhub/internal/microservices/http-api/repository"
)

type BookshelfService interface {
	Add(ctx context.Context, userID, novelID int64) error
	Remove(ctx context.Context, userID int64, novelIDs []int64) error
	List(ctx context.Context, userID int64) ([]models.ShelvedNovel, error)
	Reward(ctx context.Context, userID, novelID, tickets int64) (*models.RewardResult, error)
}

type bookshelfService struct {
	repo    repository.BookshelfRepository
	rewards repository.RewardRepository
	cache   repository.NovelCache
}

func NewBookshelfService(repo repository.BookshelfRepository, rewards repository.RewardRepository, cache repository.NovelCache) BookshelfService {
	return &bookshelfService{
		repo:    repo,
		rewards: rewards,
		cache:   cache,
	}
}

func (s *bookshelfService) Add(ctx context.Context, userID, novelID int64) error {
	if userID <= 0 || novelID <= 0 {
		return ErrMissingParams
	}

	err := s.repo.Add(ctx, userID, novelID)
	switch {
	case errors.Is(err, repository.ErrAlreadyShelved):
		return ErrAlreadyOnShelf
	case errors.Is(err, repository.ErrNotFound):
		return ErrShelfTargetNotFound
	}
	return err
}

// Remove is idempotent: ids that are not on the shelf are skipped silently.
func (s *bookshelfService) Remove(ctx context.Context, userID int64, novelIDs []int64) error {
	if userID <= 0 || len(novelIDs) == 0 {
		return ErrMissingParams
	}
	_, err := s.repo.Remove(ctx, userID, novelIDs)
	return err
}

func (s *bookshelfService) List(ctx context.Context, userID int64) ([]models.ShelvedNovel, error) {
	list, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrShelfEmpty
	}
	return list, nil
}

// Reward validates the request before touching the store, then runs the
// debit-and-shelve transaction.
func (s *bookshelfService) Reward(ctx context.Context, userID, novelID, tickets int64) (*models.RewardResult, error) {
	if tickets <= 0 {
		return nil, ErrInvalidTickets
	}
	if userID <= 0 || novelID <= 0 {
		return nil, ErrMissingParams
	}

	result, err := s.rewards.Reward(ctx, userID, novelID, tickets)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return nil, ErrUserNotFound
	case errors.Is(err, repository.ErrNovelNotFound):
		return nil, ErrNovelNotFound
	case errors.Is(err, repository.ErrInsufficientTickets):
		return nil, ErrNotEnoughTickets
	case err != nil:
		return nil, err
	}

	// rankings changed
	s.cache.Invalidate(ctx)
	return result, nil
}
