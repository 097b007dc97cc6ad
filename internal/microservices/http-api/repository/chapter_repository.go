package repository

import (
	"context"
	"fmt"

	"novelhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type ChapterRepository interface {
	ListByNovel(ctx context.Context, novelID int64) ([]models.Chapter, error)
	GetByID(ctx context.Context, id int64) (*models.Chapter, error)
	Create(ctx context.Context, ch *models.Chapter) error
	Update(ctx context.Context, id int64, title, content string) error
	Delete(ctx context.Context, id int64) error
}

type chapterRepository struct {
	db *gorm.DB
}

func NewChapterRepository(db *gorm.DB) ChapterRepository {
	return &chapterRepository{db: db}
}

// ListByNovel returns the chapter index of a novel (no content), oldest first.
func (r *chapterRepository) ListByNovel(ctx context.Context, novelID int64) ([]models.Chapter, error) {
	var list []models.Chapter
	if err := r.db.WithContext(ctx).
		Select("id", "novel_id", "title").
		Where("novel_id = ?", novelID).
		Order("id").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list chapters: %w", err)
	}
	return list, nil
}

func (r *chapterRepository) GetByID(ctx context.Context, id int64) (*models.Chapter, error) {
	var ch models.Chapter
	if err := r.db.WithContext(ctx).First(&ch, id).Error; err != nil {
		return nil, notFoundOr(err, "get chapter")
	}
	return &ch, nil
}

func (r *chapterRepository) Create(ctx context.Context, ch *models.Chapter) error {
	if err := r.db.WithContext(ctx).Create(ch).Error; err != nil {
		if isForeignKeyViolation(err) {
			return ErrNovelNotFound
		}
		return fmt.Errorf("create chapter: %w", err)
	}
	return nil
}

func (r *chapterRepository) Update(ctx context.Context, id int64, title, content string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Chapter{}).
		Where("id = ?", id).
		Updates(map[string]any{"title": title, "content": content})
	if result.Error != nil {
		return fmt.Errorf("update chapter: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *chapterRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Chapter{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete chapter: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
