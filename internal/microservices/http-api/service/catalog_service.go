package service

import (
	"context"
	"errors"
	"strings"

	"novelhub/internal/microservices/http-api/models"
	"novelhub/internal/microservices/http-api/repository"
)

type CatalogService interface {
	ListNovels(ctx context.Context) ([]models.Novel, error)
	GetNovel(ctx context.Context, id int64) (*models.Novel, error)
	SearchNovels(ctx context.Context, filter models.NovelFilter) ([]models.Novel, error)
	FeaturedNovels(ctx context.Context) ([]models.Novel, error)
	Rankings(ctx context.Context) ([]models.Novel, error)

	ListChapters(ctx context.Context, novelID int64) ([]models.Chapter, error)
	GetChapter(ctx context.Context, id int64) (*models.Chapter, error)
	CreateChapter(ctx context.Context, novelID int64, title, content string) (*models.Chapter, error)
	UpdateChapter(ctx context.Context, id int64, title, content string) error
	DeleteChapter(ctx context.Context, id int64) error
}

type catalogService struct {
	novels   repository.NovelRepository
	chapters repository.ChapterRepository
	cache    repository.NovelCache
}

func NewCatalogService(novels repository.NovelRepository, chapters repository.ChapterRepository, cache repository.NovelCache) CatalogService {
	return &catalogService{novels: novels, chapters: chapters, cache: cache}
}

// ListNovels returns every novel; an empty catalog is not an error.
func (s *catalogService) ListNovels(ctx context.Context) ([]models.Novel, error) {
	return s.novels.List(ctx)
}

func (s *catalogService) GetNovel(ctx context.Context, id int64) (*models.Novel, error) {
	n, err := s.novels.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNovelNotFound
	}
	return n, err
}

func (s *catalogService) SearchNovels(ctx context.Context, filter models.NovelFilter) ([]models.Novel, error) {
	filter.Title = strings.TrimSpace(filter.Title)
	filter.Author = strings.TrimSpace(filter.Author)

	list, err := s.novels.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrNoSearchResults
	}
	return list, nil
}

func (s *catalogService) FeaturedNovels(ctx context.Context) ([]models.Novel, error) {
	list, gen, ok := s.cache.GetFeatured(ctx)
	if !ok {
		var err error
		if list, err = s.novels.Featured(ctx); err != nil {
			return nil, err
		}
		s.cache.SetFeatured(ctx, gen, list)
	}
	if len(list) == 0 {
		return nil, ErrNoFeaturedNovels
	}
	return list, nil
}

// Rankings orders novels by received monthly tickets, most first.
func (s *catalogService) Rankings(ctx context.Context) ([]models.Novel, error) {
	cached, gen, ok := s.cache.GetRankings(ctx)
	if ok {
		return cached, nil
	}
	list, err := s.novels.Rankings(ctx)
	if err != nil {
		return nil, err
	}
	// dropped by the cache if a reward invalidated it after gen was read
	s.cache.SetRankings(ctx, gen, list)
	return list, nil
}

func (s *catalogService) ListChapters(ctx context.Context, novelID int64) ([]models.Chapter, error) {
	list, err := s.chapters.ListByNovel(ctx, novelID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrChaptersNotFound
	}
	return list, nil
}

func (s *catalogService) GetChapter(ctx context.Context, id int64) (*models.Chapter, error) {
	ch, err := s.chapters.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrChapterNotFound
	}
	return ch, err
}

func (s *catalogService) CreateChapter(ctx context.Context, novelID int64, title, content string) (*models.Chapter, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, ErrChapterFieldsRequired
	}

	// Check if novel exists
	if _, err := s.novels.GetByID(ctx, novelID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNovelNotFound
		}
		return nil, err
	}

	ch := &models.Chapter{NovelID: novelID, Title: title, Content: content}
	if err := s.chapters.Create(ctx, ch); err != nil {
		// novel deleted between the check and the insert
		if errors.Is(err, repository.ErrNovelNotFound) {
			return nil, ErrNovelNotFound
		}
		return nil, err
	}
	return ch, nil
}

func (s *catalogService) UpdateChapter(ctx context.Context, id int64, title, content string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return ErrChapterFieldsRequired
	}
	if err := s.chapters.Update(ctx, id, title, content); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrChapterNotFound
		}
		return err
	}
	return nil
}

func (s *catalogService) DeleteChapter(ctx context.Context, id int64) error {
	if err := s.chapters.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrChapterNotFound
		}
		return err
	}
	return nil
}
