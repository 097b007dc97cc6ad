package handler

import (
	"net/http"

	"novelhub/internal/microservices/http-api/dto"
	"novelhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the back office. The group it is mounted on must
// already require an admin token.
type AdminHandler struct {
	svc service.AdminService
}

func NewAdminHandler(svc service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/all-users", h.ListUsers)
	rg.GET("/users", h.SearchUsers)
	rg.DELETE("/users/:id", h.DeleteUser)

	rg.POST("/novels", h.CreateNovel)
	rg.GET("/novels/search", h.SearchNovels)
	rg.PUT("/novels/:id", h.UpdateNovel)
	rg.DELETE("/novels/:id", h.DeleteNovel)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromUsersToSummaries(users))
}

func (h *AdminHandler) SearchUsers(c *gin.Context) {
	users, err := h.svc.SearchUsers(c.Request.Context(), c.Query("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromUsersToSummaries(users))
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "用户删除成功")
}

func (h *AdminHandler) CreateNovel(c *gin.Context) {
	var req dto.NovelRequest
	if !bindJSON(c, &req) {
		return
	}
	novel := req.ToModel()

	if err := h.svc.CreateNovel(c.Request.Context(), &novel); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "小说添加成功", "id": novel.ID})
}

func (h *AdminHandler) UpdateNovel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.NovelRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.svc.UpdateNovel(c.Request.Context(), id, req.ToUpdate()); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "小说信息更新成功")
}

func (h *AdminHandler) DeleteNovel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteNovel(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "小说删除成功")
}

func (h *AdminHandler) SearchNovels(c *gin.Context) {
	list, err := h.svc.SearchNovels(c.Request.Context(), searchFilter(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelsToResponses(list))
}
