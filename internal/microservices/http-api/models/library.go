package models

import "time"

// BookshelfEntry is one saved novel on a user's bookshelf.
type BookshelfEntry struct {
	ID      int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  int64     `gorm:"not null;uniqueIndex:idx_bookshelf_user_novel,priority:1" json:"user_id"`
	NovelID int64     `gorm:"not null;uniqueIndex:idx_bookshelf_user_novel,priority:2;index" json:"novel_id"`
	AddedAt time.Time `gorm:"autoCreateTime" json:"added_at"`

	// Associations
	User  *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Novel *Novel `gorm:"foreignKey:NovelID;constraint:OnDelete:CASCADE" json:"-"`
}

func (BookshelfEntry) TableName() string {
	return "bookshelf"
}

// ShelvedNovel is the joined row shown on a bookshelf.
type ShelvedNovel struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	CoverImageURL *string `json:"cover_image_url"`
}

// RewardResult reports the outcome of a committed reward.
type RewardResult struct {
	RemainingTickets int64
	Shelved          bool // false when the novel was already on the shelf
}
