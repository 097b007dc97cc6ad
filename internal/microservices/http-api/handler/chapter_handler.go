package handler

import (
	"net/http"

	"novelhub/internal/microservices/http-api/dto"
	"novelhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type ChapterHandler struct {
	svc service.CatalogService
}

func NewChapterHandler(svc service.CatalogService) *ChapterHandler {
	return &ChapterHandler{svc: svc}
}

func (h *ChapterHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/chapters/:chapter_id", h.Get)
	rg.PUT("/chapters/:chapter_id", h.Update)
	rg.DELETE("/chapters/:chapter_id", h.Delete)
}

func (h *ChapterHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "chapter_id")
	if !ok {
		return
	}

	ch, err := h.svc.GetChapter(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromChapterToResponse(*ch))
}

func (h *ChapterHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "chapter_id")
	if !ok {
		return
	}
	var req dto.ChapterRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.svc.UpdateChapter(c.Request.Context(), id, req.Title, req.Content); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "章节更新成功")
}

func (h *ChapterHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "chapter_id")
	if !ok {
		return
	}

	if err := h.svc.DeleteChapter(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "章节删除成功")
}
