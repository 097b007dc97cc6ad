package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"novelhub/internal/microservices/http-api/models"
	"novelhub/internal/microservices/http-api/repository"
	"novelhub/internal/middleware/auth"

	"gorm.io/gorm"
)

var demoNovels = []struct {
	title    string
	author   string
	summary  string
	featured bool
	chapters []string
}{
	{"山海行记", "青衫客", "少年背剑出山，一路向东。", true, []string{"第一章 出山", "第二章 渡口", "第三章 夜雨"}},
	{"星港往事", "林间", "边境星港上的最后一支维修队。", true, []string{"第一章 停泊", "第二章 故障"}},
	{"长安十二时辰外传", "佚名", "坊市之间的小人物。", false, []string{"第一章 子时"}},
	{"雾都侦探社", "K", "雾里总有人说谎。", false, []string{"第一章 委托", "第二章 线索", "第三章 真相", "第四章 余波"}},
}

const (
	demoUser     = "reader"
	demoEmail    = "reader@example.com"
	demoPassword = "reader123"
)

type seeder struct {
	admins   repository.AdminRepository
	users    repository.UserRepository
	novels   repository.NovelRepository
	chapters repository.ChapterRepository
	logger   *slog.Logger
}

func newSeeder(db *gorm.DB, logger *slog.Logger) *seeder {
	return &seeder{
		admins:   repository.NewAdminRepository(db),
		users:    repository.NewUserRepository(db),
		novels:   repository.NewNovelRepository(db),
		chapters: repository.NewChapterRepository(db),
		logger:   logger,
	}
}

// ensureAdmin creates the administrator unless one with that name exists.
func (s *seeder) ensureAdmin(ctx context.Context, username, password string) error {
	_, err := s.admins.FindByUsername(ctx, username)
	if err == nil {
		s.logger.Info("admin_exists", "username", username)
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	if err := s.admins.Create(ctx, &models.Admin{Username: username, Password: hash}); err != nil {
		return err
	}
	s.logger.Info("admin_created", "username", username)
	return nil
}

// demoData fills an empty catalog. A catalog that already has novels is left alone.
func (s *seeder) demoData(ctx context.Context, tickets int64) error {
	existing, err := s.novels.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		s.logger.Info("catalog_not_empty_skipping_demo", "novels", len(existing))
		return nil
	}

	for _, dn := range demoNovels {
		author, summary := dn.author, dn.summary
		n := &models.Novel{Title: dn.title, Author: &author, Summary: &summary, IsFeatured: dn.featured}
		if err := s.novels.Create(ctx, n); err != nil {
			return fmt.Errorf("create novel %q: %w", dn.title, err)
		}
		for _, title := range dn.chapters {
			ch := &models.Chapter{NovelID: n.ID, Title: title, Content: title + "\n\n（示例内容）"}
			if err := s.chapters.Create(ctx, ch); err != nil {
				return fmt.Errorf("create chapter %q: %w", title, err)
			}
		}
		s.logger.Info("novel_created", "id", n.ID, "title", n.Title, "chapters", len(dn.chapters))
	}

	hash, err := auth.HashPassword(demoPassword)
	if err != nil {
		return err
	}
	reader := &models.User{Username: demoUser, Email: demoEmail, Password: hash, MonthlyTickets: tickets}
	switch err := s.users.Create(ctx, reader); {
	case errors.Is(err, repository.ErrDuplicateUsername), errors.Is(err, repository.ErrDuplicateEmail):
		s.logger.Info("demo_reader_exists", "username", demoUser)
	case err != nil:
		return err
	default:
		s.logger.Info("demo_reader_created", "username", demoUser, "tickets", tickets)
	}
	return nil
}
