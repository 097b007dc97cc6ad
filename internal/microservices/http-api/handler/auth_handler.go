package handler

import (
	"context"
	"net/http"

	"novelhub/internal/microservices/http-api/dto"
	"novelhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes mounts the auth routes; throttle guards the credential endpoints.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup, throttle gin.HandlerFunc) {
	rg.GET("/userinfo", h.UserInfo)
	rg.POST("/register", throttle, h.Register)
	rg.POST("/login/user", throttle, h.Login)
	rg.POST("/login/admin", throttle, h.AdminLogin)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "用户注册成功",
		"user_id":  user.ID,
		"username": user.Username,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	h.login(c, h.authService.Login)
}

func (h *AuthHandler) AdminLogin(c *gin.Context) {
	h.login(c, h.authService.AdminLogin)
}

type loginFunc func(ctx context.Context, username, password string) (*service.LoginResult, error)

func (h *AuthHandler) login(c *gin.Context, authenticate loginFunc) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message:     "登录成功",
		RedirectTo:  res.RedirectTo,
		AccessToken: res.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   res.ExpiresIn,
		UserID:      res.UserID,
		Username:    res.Username,
	})
}

func (h *AuthHandler) UserInfo(c *gin.Context) {
	user, err := h.authService.UserInfo(c.Request.Context(), c.Query("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromUserToInfo(*user))
}
