package handler

import (
	"net/http"
	"strings"

	"novelhub/internal/microservices/http-api/dto"
	"novelhub/internal/microservices/http-api/models"
	"novelhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type NovelHandler struct {
	svc service.CatalogService
}

func NewNovelHandler(svc service.CatalogService) *NovelHandler {
	return &NovelHandler{svc: svc}
}

func (h *NovelHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/novels", h.List)
	rg.GET("/novels/rankings", h.Rankings)
	rg.GET("/novels/:id", h.Get)
	rg.GET("/novels/:id/chapters", h.ListChapters)
	rg.POST("/novels/:id/chapters", h.CreateChapter)
	rg.GET("/search", h.Search)
	rg.GET("/featured-novels", h.Featured)
}

func (h *NovelHandler) List(c *gin.Context) {
	list, err := h.svc.ListNovels(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelsToResponses(list))
}

func (h *NovelHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	n, err := h.svc.GetNovel(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToResponse(*n))
}

func (h *NovelHandler) Search(c *gin.Context) {
	list, err := h.svc.SearchNovels(c.Request.Context(), searchFilter(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelsToResponses(list))
}

func (h *NovelHandler) Featured(c *gin.Context) {
	list, err := h.svc.FeaturedNovels(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelsToFeatured(list))
}

func (h *NovelHandler) Rankings(c *gin.Context) {
	list, err := h.svc.Rankings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelsToResponses(list))
}

func (h *NovelHandler) ListChapters(c *gin.Context) {
	novelID, ok := parseID(c, "id")
	if !ok {
		return
	}

	list, err := h.svc.ListChapters(c.Request.Context(), novelID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromChaptersToSummaries(list))
}

func (h *NovelHandler) CreateChapter(c *gin.Context) {
	novelID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ChapterRequest
	if !bindJSON(c, &req) {
		return
	}

	ch, err := h.svc.CreateChapter(c.Request.Context(), novelID, req.Title, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "章节添加成功", "chapterId": ch.ID})
}

// searchFilter reads ?title= and ?author=; blank values do not filter.
func searchFilter(c *gin.Context) models.NovelFilter {
	return models.NovelFilter{
		Title:  strings.TrimSpace(c.Query("title")),
		Author: strings.TrimSpace(c.Query("author")),
	}
}
