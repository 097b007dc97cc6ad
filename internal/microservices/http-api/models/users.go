package models

import "time"

type User struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username       string    `gorm:"uniqueIndex:idx_users_username;size:50;not null" json:"username"`
	Email          string    `gorm:"uniqueIndex:idx_users_email;size:255;not null" json:"email"`
	Password       string    `gorm:"column:password_hash;not null" json:"-"` // Not show in JSON
	AvatarURL      *string   `json:"avatar_url"`
	MonthlyTickets int64     `gorm:"not null;default:0;check:chk_users_monthly_tickets,monthly_tickets >= 0" json:"monthly_tickets"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Admin accounts live in their own table and never share identity with users.
type Admin struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"uniqueIndex:idx_admins_username;size:50;not null" json:"username"`
	Password  string    `gorm:"column:password_hash;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (Admin) TableName() string {
	return "admins"
}
