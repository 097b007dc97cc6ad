package dto

import (
	"time"

	"novelhub/internal/microservices/http-api/models"
)

// NovelRequest used for POST and PUT on /api/admin/novels
type NovelRequest struct {
	Title         string  `json:"title"`
	Author        *string `json:"author,omitempty"`
	Description   *string `json:"description,omitempty"`
	CoverImageURL *string `json:"cover_image_url,omitempty"`
	Summary       *string `json:"summary,omitempty"`
	IsFeatured    *bool   `json:"is_featured,omitempty"`
}

func (d NovelRequest) ToModel() models.Novel {
	return models.Novel{
		Title:         d.Title,
		Author:        d.Author,
		Description:   d.Description,
		CoverImageURL: d.CoverImageURL,
		Summary:       d.Summary,
		IsFeatured:    d.IsFeatured != nil && *d.IsFeatured,
	}
}

// ToUpdate keeps summary and is_featured unset when the body omits them,
// so an edit that only sends the basic fields does not clear them.
func (d NovelRequest) ToUpdate() models.NovelUpdate {
	return models.NovelUpdate{
		Title:         d.Title,
		Author:        d.Author,
		Description:   d.Description,
		CoverImageURL: d.CoverImageURL,
		Summary:       d.Summary,
		IsFeatured:    d.IsFeatured,
	}
}

// NovelResponse DTO for responses
type NovelResponse struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Author         *string    `json:"author"`
	Description    *string    `json:"description"`
	CoverImageURL  *string    `json:"cover_image_url"`
	Summary        *string    `json:"summary"`
	IsFeatured     bool       `json:"is_featured"`
	MonthlyTickets int64      `json:"monthly_tickets"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

func FromModelToResponse(m models.Novel) NovelResponse {
	return NovelResponse{
		ID:             m.ID,
		Title:          m.Title,
		Author:         m.Author,
		Description:    m.Description,
		CoverImageURL:  m.CoverImageURL,
		Summary:        m.Summary,
		IsFeatured:     m.IsFeatured,
		MonthlyTickets: m.MonthlyTickets,
		CreatedAt:      m.CreatedAt,
	}
}

func FromModelsToResponses(list []models.Novel) []NovelResponse {
	out := make([]NovelResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModelToResponse(m))
	}
	return out
}

// FeaturedNovelResponse: carousel card on the home page
type FeaturedNovelResponse struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	CoverImageURL *string `json:"cover_image_url"`
	Summary       *string `json:"summary"`
}

func FromModelsToFeatured(list []models.Novel) []FeaturedNovelResponse {
	out := make([]FeaturedNovelResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FeaturedNovelResponse{
			ID:            m.ID,
			Title:         m.Title,
			CoverImageURL: m.CoverImageURL,
			Summary:       m.Summary,
		})
	}
	return out
}

// ChapterRequest used for creating and editing chapters
type ChapterRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ChapterSummary: entry of a novel's table of contents
type ChapterSummary struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func FromChaptersToSummaries(list []models.Chapter) []ChapterSummary {
	out := make([]ChapterSummary, 0, len(list))
	for _, ch := range list {
		out = append(out, ChapterSummary{ID: ch.ID, Title: ch.Title})
	}
	return out
}

// ChapterResponse: a full chapter for reading
type ChapterResponse struct {
	ID      int64  `json:"id"`
	NovelID int64  `json:"novel_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func FromChapterToResponse(ch models.Chapter) ChapterResponse {
	return ChapterResponse{ID: ch.ID, NovelID: ch.NovelID, Title: ch.Title, Content: ch.Content}
}
