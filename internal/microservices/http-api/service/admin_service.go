package service

import (
	"context"
	"errors"
	"strings"

	"novelhub/internal/microservices/http-api/models"
	"novelhub/internal/microservices/http-api/repository"
)

type AdminService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	SearchUsers(ctx context.Context, username string) ([]models.User, error)
	DeleteUser(ctx context.Context, id int64) error

	CreateNovel(ctx context.Context, n *models.Novel) error
	UpdateNovel(ctx context.Context, id int64, u models.NovelUpdate) error
	DeleteNovel(ctx context.Context, id int64) error
	SearchNovels(ctx context.Context, filter models.NovelFilter) ([]models.Novel, error)
}

type adminService struct {
	users  repository.UserRepository
	novels repository.NovelRepository
	cache  repository.NovelCache
}

func NewAdminService(users repository.UserRepository, novels repository.NovelRepository, cache repository.NovelCache) AdminService {
	return &adminService{users: users, novels: novels, cache: cache}
}

func (s *adminService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrNoUsers
	}
	return users, nil
}

func (s *adminService) SearchUsers(ctx context.Context, username string) ([]models.User, error) {
	users, err := s.users.SearchByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrNoMatchingUsers
	}
	return users, nil
}

func (s *adminService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNoMatchingUsers
		}
		return err
	}
	return nil
}

func (s *adminService) CreateNovel(ctx context.Context, n *models.Novel) error {
	n.Title = strings.TrimSpace(n.Title)
	if n.Title == "" {
		return ErrNovelTitleRequired
	}
	// reward counters start at zero whatever the client sent
	n.ID = 0
	n.MonthlyTickets = 0

	if err := s.novels.Create(ctx, n); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}

func (s *adminService) UpdateNovel(ctx context.Context, id int64, u models.NovelUpdate) error {
	u.Title = strings.TrimSpace(u.Title)
	if u.Title == "" {
		return ErrNovelTitleRequired
	}
	if err := s.novels.Update(ctx, id, u); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAdminNovelNotFound
		}
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}

func (s *adminService) DeleteNovel(ctx context.Context, id int64) error {
	if err := s.novels.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAdminNovelNotFound
		}
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}

func (s *adminService) SearchNovels(ctx context.Context, filter models.NovelFilter) ([]models.Novel, error) {
	list, err := s.novels.Search(ctx, models.NovelFilter{
		Title:  strings.TrimSpace(filter.Title),
		Author: strings.TrimSpace(filter.Author),
	})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrNoSearchResults
	}
	return list, nil
}
