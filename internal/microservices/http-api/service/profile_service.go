package service

import (
	"context"
	"errors"
	"strings"

	"novelhub/internal/microservices/http-api/repository"
	"novelhub/internal/middleware/auth"
)

type ProfileService interface {
	UpdateProfile(ctx context.Context, username string, email, password *string) error
	ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error
}

type profileService struct {
	userRepo repository.UserRepository
}

func NewProfileService(userRepo repository.UserRepository) ProfileService {
	return &profileService{userRepo: userRepo}
}

// UpdateProfile changes the email and/or password of username. Nil or blank
// fields are left as they are.
func (s *profileService) UpdateProfile(ctx context.Context, username string, email, password *string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrUsernameRequired
	}

	var newEmail, newHash *string
	if email != nil && strings.TrimSpace(*email) != "" {
		e := strings.TrimSpace(*email)
		newEmail = &e
	}
	if password != nil && *password != "" {
		h, err := auth.HashPassword(*password)
		if err != nil {
			return err
		}
		newHash = &h
	}

	err := s.userRepo.UpdateProfile(ctx, username, newEmail, newHash)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrUserNotFound
	case errors.Is(err, repository.ErrDuplicateEmail):
		return ErrEmailInUse
	}
	return err
}

func (s *profileService) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrUsernameRequired
	}
	if currentPassword == "" || newPassword == "" {
		return ErrPasswordFieldsRequired
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	if err := auth.VerifyPassword(user.Password, currentPassword); err != nil {
		return ErrWrongCurrentPassword
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, username, hash); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
