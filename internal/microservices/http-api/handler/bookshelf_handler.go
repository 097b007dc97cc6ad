package handler

import (
	"net/http"

	"novelhub/internal/microservices/http-api/dto"
	"novelhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type BookshelfHandler struct {
	svc service.BookshelfService
}

func NewBookshelfHandler(svc service.BookshelfService) *BookshelfHandler {
	return &BookshelfHandler{svc: svc}
}

func (h *BookshelfHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookshelf", h.Add)
	rg.DELETE("/bookshelf/delete", h.Remove)
	rg.GET("/bookshelf/:user_id", h.List)
	rg.POST("/reward", h.Reward)
}

func (h *BookshelfHandler) Add(c *gin.Context) {
	var req dto.AddToBookshelfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.ErrMissingParams)
		return
	}

	if err := h.svc.Add(c.Request.Context(), req.UserID, req.NovelID); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusCreated, "小说已成功加入书架")
}

// Remove deletes the listed novels from the user's shelf. Ids that are not
// on the shelf are ignored.
func (h *BookshelfHandler) Remove(c *gin.Context) {
	var req dto.RemoveFromBookshelfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// also covers novel_ids that is not an array
		respondError(c, service.ErrMissingParams)
		return
	}

	if err := h.svc.Remove(c.Request.Context(), req.UserID, req.NovelIDs); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "成功删除书架中的小说")
}

func (h *BookshelfHandler) List(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}

	list, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *BookshelfHandler) Reward(c *gin.Context) {
	var req dto.RewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.ErrMissingParams)
		return
	}

	res, err := h.svc.Reward(c.Request.Context(), req.UserID, req.NovelID, req.Tickets)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RewardResponse{
		Message:          "打赏成功，小说已加入书架",
		RemainingTickets: res.RemainingTickets,
		Shelved:          res.Shelved,
	})
}
