package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"novelhub/internal/config"
	"novelhub/internal/microservices/http-api/models"
	"novelhub/internal/microservices/http-api/repository"
	"novelhub/internal/middleware/auth"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	userDashboard  = "/user-dashboard"
	adminDashboard = "/admin-dashboard"
)

// Claims are the JWT claims of an access token.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// LoginResult is what a successful user or admin login hands back.
type LoginResult struct {
	AccessToken string
	ExpiresIn   int64 // seconds
	UserID      int64
	Username    string
	Role        string
	RedirectTo  string
}

type AuthService interface {
	Register(ctx context.Context, username, password, email string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	AdminLogin(ctx context.Context, username, password string) (*LoginResult, error)
	UserInfo(ctx context.Context, username string) (*models.User, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	userRepo       repository.UserRepository
	adminRepo      repository.AdminRepository
	jwtSecret      string
	accessTokenTTL time.Duration
	defaultTickets int64
}

func NewAuthService(
	userRepo repository.UserRepository,
	adminRepo repository.AdminRepository,
	cfg *config.Config,
) AuthService {
	return &authService{
		userRepo:       userRepo,
		adminRepo:      adminRepo,
		jwtSecret:      cfg.JWTSecret,
		accessTokenTTL: cfg.AccessTokenTTL,
		defaultTickets: cfg.DefaultTickets,
	}
}

// Register creates a user with a bcrypt-hashed password. Username and email
// uniqueness come from the database constraints, not from a pre-check.
func (s *authService) Register(ctx context.Context, username, password, email string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || password == "" || email == "" {
		return nil, ErrMissingRegisterFields
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:       username,
		Email:          email,
		Password:       hashedPassword,
		MonthlyTickets: s.defaultTickets,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, ErrNameInUse
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, ErrEmailInUse
		}
		return nil, err
	}

	return user, nil
}

// Login authenticates a reader.
func (s *authService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		auth.BurnCompare(password)
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(user.ID, user.Username, RoleUser, userDashboard)
}

// AdminLogin authenticates against the separate admin credential space.
func (s *authService) AdminLogin(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	admin, err := s.adminRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		auth.BurnCompare(password)
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := auth.VerifyPassword(admin.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(admin.ID, admin.Username, RoleAdmin, adminDashboard)
}

func (s *authService) UserInfo(ctx context.Context, username string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	user, err := s.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

func (s *authService) issue(id int64, username, role, redirect string) (*LoginResult, error) {
	now := time.Now()
	claims := Claims{
		UserID:   id,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken: token,
		ExpiresIn:   int64(s.accessTokenTTL.Seconds()),
		UserID:      id,
		Username:    username,
		Role:        role,
		RedirectTo:  redirect,
	}, nil
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
