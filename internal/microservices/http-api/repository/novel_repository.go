package repository

import (
	"context"
	"fmt"

	"novelhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type NovelRepository interface {
	List(ctx context.Context) ([]models.Novel, error)
	GetByID(ctx context.Context, id int64) (*models.Novel, error)
	Search(ctx context.Context, filter models.NovelFilter) ([]models.Novel, error)
	Featured(ctx context.Context) ([]models.Novel, error)
	Rankings(ctx context.Context) ([]models.Novel, error)
	Create(ctx context.Context, n *models.Novel) error
	Update(ctx context.Context, id int64, u models.NovelUpdate) error
	Delete(ctx context.Context, id int64) error
}

type novelRepository struct {
	db *gorm.DB
}

func NewNovelRepository(db *gorm.DB) NovelRepository {
	return &novelRepository{db: db}
}

func (r *novelRepository) List(ctx context.Context) ([]models.Novel, error) {
	var list []models.Novel
	if err := r.db.WithContext(ctx).Order("id").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list novels: %w", err)
	}
	return list, nil
}

func (r *novelRepository) GetByID(ctx context.Context, id int64) (*models.Novel, error) {
	var n models.Novel
	if err := r.db.WithContext(ctx).First(&n, id).Error; err != nil {
		return nil, notFoundOr(err, "get novel")
	}
	return &n, nil
}

// Search matches title and author as case-insensitive substrings.
// Present filters are ANDed; with no filters every novel matches.
func (r *novelRepository) Search(ctx context.Context, filter models.NovelFilter) ([]models.Novel, error) {
	var list []models.Novel
	q := r.db.WithContext(ctx)
	if filter.Title != "" {
		q = q.Where("LOWER(title) LIKE ?", likePattern(filter.Title))
	}
	if filter.Author != "" {
		// COALESCE so a NULL author never matches by accident
		q = q.Where("LOWER(COALESCE(author, '')) LIKE ?", likePattern(filter.Author))
	}
	if err := q.Order("id").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("search novels: %w", err)
	}
	return list, nil
}

func (r *novelRepository) Featured(ctx context.Context) ([]models.Novel, error) {
	var list []models.Novel
	if err := r.db.WithContext(ctx).
		Select("id", "title", "cover_image_url", "summary").
		Where("is_featured = ?", true).
		Order("id").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list featured novels: %w", err)
	}
	return list, nil
}

func (r *novelRepository) Rankings(ctx context.Context) ([]models.Novel, error) {
	var list []models.Novel
	if err := r.db.WithContext(ctx).
		Order("monthly_tickets DESC").
		Order("id").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list novel rankings: %w", err)
	}
	return list, nil
}

func (r *novelRepository) Create(ctx context.Context, n *models.Novel) error {
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return fmt.Errorf("create novel: %w", err)
	}
	// GORM will populate n.ID and n.CreatedAt
	return nil
}

// Update writes the editable columns of novel id. The reward counter is
// owned by the reward transaction and never written here.
func (r *novelRepository) Update(ctx context.Context, id int64, u models.NovelUpdate) error {
	cols := map[string]any{
		"title":           u.Title,
		"author":          u.Author,
		"description":     u.Description,
		"cover_image_url": u.CoverImageURL,
	}
	if u.Summary != nil {
		cols["summary"] = *u.Summary
	}
	if u.IsFeatured != nil {
		cols["is_featured"] = *u.IsFeatured
	}

	result := r.db.WithContext(ctx).
		Model(&models.Novel{}).
		Where("id = ?", id).
		Updates(cols)
	if result.Error != nil {
		return fmt.Errorf("update novel: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *novelRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Novel{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete novel: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
