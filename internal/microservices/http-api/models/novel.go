package models

import "time"

type Novel struct {
	ID             int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title          string     `json:"title" gorm:"size:255;not null;index"`
	Author         *string    `json:"author" gorm:"size:100;index"`
	Description    *string    `json:"description"`
	CoverImageURL  *string    `json:"cover_image_url"`
	Summary        *string    `json:"summary"`
	IsFeatured     bool       `json:"is_featured" gorm:"not null;default:false;index"`
	MonthlyTickets int64      `json:"monthly_tickets" gorm:"not null;default:0;index"`
	CreatedAt      *time.Time `json:"created_at,omitempty" gorm:"autoCreateTime"`

	Chapters []Chapter `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
}

func (Novel) TableName() string {
	return "novels"
}

type Chapter struct {
	ID        int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	NovelID   int64      `json:"novel_id" gorm:"not null;index"`
	Title     string     `json:"title" gorm:"size:255;not null"`
	Content   string     `json:"content" gorm:"type:text;not null"`
	CreatedAt *time.Time `json:"created_at,omitempty" gorm:"autoCreateTime"`
}

func (Chapter) TableName() string {
	return "chapters"
}

// NovelUpdate is an admin edit of a novel. Title, Author, Description and
// CoverImageURL are always written. Summary and IsFeatured are left alone
// when nil.
type NovelUpdate struct {
	Title         string
	Author        *string
	Description   *string
	CoverImageURL *string
	Summary       *string
	IsFeatured    *bool
}

// NovelFilter holds the optional substring filters of a novel search.
// Empty fields are ignored; present ones are combined with AND.
type NovelFilter struct {
	Title  string
	Author string
}
