package repository

import (
	"context"
	"errors"
	"fmt"

	"novelhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	SearchByUsername(ctx context.Context, fragment string) ([]models.User, error)
	Delete(ctx context.Context, id int64) error
	UpdateProfile(ctx context.Context, username string, email, passwordHash *string) error
	UpdatePassword(ctx context.Context, username, passwordHash string) error
}

// userRepository is the GORM implementation of UserRepository.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository in a GORM implementation
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts the user. Uniqueness is left to the database so concurrent
// registrations cannot both pass a pre-check.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return translateUserConflict(err, "create user")
	}
	return nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		// never hand back a zero-value user, callers would treat it as found
		return nil, notFoundOr(err, "find user by username")
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFoundOr(err, "find user by id")
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Select("id", "username", "email").
		Order("id").
		Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// SearchByUsername lists users whose username contains fragment, case-insensitively.
// An empty fragment lists everyone.
func (r *userRepository) SearchByUsername(ctx context.Context, fragment string) ([]models.User, error) {
	if fragment == "" {
		return r.List(ctx)
	}
	var users []models.User
	if err := r.db.WithContext(ctx).
		Select("id", "username", "email").
		Where("LOWER(username) LIKE ?", likePattern(fragment)).
		Order("id").
		Find(&users).Error; err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return users, nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateProfile sets the non-nil fields on the user identified by username.
func (r *userRepository) UpdateProfile(ctx context.Context, username string, email, passwordHash *string) error {
	fields := map[string]any{}
	if email != nil {
		fields["email"] = *email
	}
	if passwordHash != nil {
		fields["password_hash"] = *passwordHash
	}

	// nothing to change, but the user must still exist
	if len(fields) == 0 {
		_, err := r.FindByUsername(ctx, username)
		return err
	}

	result := r.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Updates(fields)
	if result.Error != nil {
		return translateUserConflict(result.Error, "update user")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", username).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return fmt.Errorf("update password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func translateUserConflict(err error, op string) error {
	if isUniqueViolation(err) {
		if violates(err, "email") {
			return ErrDuplicateEmail
		}
		return ErrDuplicateUsername
	}
	return fmt.Errorf("%s: %w", op, err)
}

func notFoundOr(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
