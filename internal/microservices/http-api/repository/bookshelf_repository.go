package repository

import (
	"context"
	"fmt"

	"novelhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type BookshelfRepository interface {
	Add(ctx context.Context, userID, novelID int64) error
	Remove(ctx context.Context, userID int64, novelIDs []int64) (int64, error)
	List(ctx context.Context, userID int64) ([]models.ShelvedNovel, error)
}

type bookshelfRepository struct {
	db *gorm.DB
}

func NewBookshelfRepository(db *gorm.DB) BookshelfRepository {
	return &bookshelfRepository{db: db}
}

// Add shelves a novel. A second add of the same pair hits the
// idx_bookshelf_user_novel constraint and reports ErrAlreadyShelved.
func (r *bookshelfRepository) Add(ctx context.Context, userID, novelID int64) error {
	entry := &models.BookshelfEntry{
		UserID:  userID,
		NovelID: novelID,
	}

	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		switch {
		case isUniqueViolation(err):
			return ErrAlreadyShelved
		case isForeignKeyViolation(err):
			return ErrNotFound
		}
		return fmt.Errorf("add to bookshelf: %w", err)
	}
	return nil
}

// Remove deletes the listed novels from the shelf. Novels that are not on it
// are ignored, so removing twice is not an error.
func (r *bookshelfRepository) Remove(ctx context.Context, userID int64, novelIDs []int64) (int64, error) {
	if len(novelIDs) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND novel_id IN ?", userID, novelIDs).
		Delete(&models.BookshelfEntry{})
	if result.Error != nil {
		return 0, fmt.Errorf("remove from bookshelf: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *bookshelfRepository) List(ctx context.Context, userID int64) ([]models.ShelvedNovel, error) {
	var list []models.ShelvedNovel
	if err := r.db.WithContext(ctx).
		Table("bookshelf").
		Select("novels.id, novels.title, novels.cover_image_url").
		Joins("JOIN novels ON bookshelf.novel_id = novels.id").
		Where("bookshelf.user_id = ?", userID).
		Order("bookshelf.id DESC").
		Scan(&list).Error; err != nil {
		return nil, fmt.Errorf("list bookshelf: %w", err)
	}
	return list, nil
}
