package dto

import "novelhub/internal/microservices/http-api/models"

// Data Transfer Objects for authentication and profile requests and responses

// RegisterRequest: payload for user registration
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// LoginRequest: payload for user and admin login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse: tells the client where to go next, plus a bearer token
type LoginResponse struct {
	Message     string `json:"message"`
	RedirectTo  string `json:"redirectTo"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
	UserID      int64  `json:"user_id"`
	Username    string `json:"username"`
}

// UserInfoResponse: public profile of a user
type UserInfoResponse struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	AvatarURL      *string `json:"avatar_url"`
	MonthlyTickets int64   `json:"monthly_tickets"`
}

func FromUserToInfo(u models.User) UserInfoResponse {
	return UserInfoResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		AvatarURL:      u.AvatarURL,
		MonthlyTickets: u.MonthlyTickets,
	}
}

// UserSummary: row of the admin user list
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func FromUsersToSummaries(users []models.User) []UserSummary {
	out := make([]UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, UserSummary{ID: u.ID, Username: u.Username, Email: u.Email})
	}
	return out
}

// UpdateProfileRequest: absent fields are left unchanged
type UpdateProfileRequest struct {
	Username string  `json:"username"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// UpdatePasswordRequest: field names follow the web client
type UpdatePasswordRequest struct {
	Username        string `json:"username"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
