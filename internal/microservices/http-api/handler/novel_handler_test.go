package handler

import (
	"errors"
	"net/http"
	"testing"

	"novelhub/internal/microservices/http-api/dto"
	"novelhub/internal/microservices/http-api/models"
	"novelhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCatalogRouter(svc *MockCatalogService) *gin.Engine {
	r := setupRouter()
	api := r.Group("/api")
	NewNovelHandler(svc).RegisterRoutes(api)
	NewChapterHandler(svc).RegisterRoutes(api)
	return r
}

func TestGetNovel(t *testing.T) {
	svc := new(MockCatalogService)
	r := newCatalogRouter(svc)
	author := "Lin"
	svc.On("GetNovel", mock.Anything, int64(1)).Return(&models.Novel{ID: 1, Title: "Sword", Author: &author}, nil)
	svc.On("GetNovel", mock.Anything, int64(999)).Return(nil, service.ErrNovelNotFound)

	w := perform(t, r, http.MethodGet, "/api/novels/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Sword", decode(t, w)["title"])

	w = perform(t, r, http.MethodGet, "/api/novels/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "没有找到该小说", decode(t, w)["error"])

	for _, bad := range []string{"abc", "0", "-3"} {
		w = perform(t, r, http.MethodGet, "/api/novels/"+bad, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, bad)
		assert.Equal(t, "无效的ID", decode(t, w)["error"])
	}
}

func TestListNovels_EmptyIsOK(t *testing.T) {
	svc := new(MockCatalogService)
	r := newCatalogRouter(svc)
	svc.On("ListNovels", mock.Anything).Return([]models.Novel{}, nil)

	w := perform(t, r, http.MethodGet, "/api/novels", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestRankingsRouteIsNotAnID(t *testing.T) {
	svc := new(MockCatalogService)
	r := newCatalogRouter(svc)
	svc.On("Rankings", mock.Anything).Return([]models.Novel{{ID: 2, MonthlyTickets: 9}, {ID: 1}}, nil)

	w := perform(t, r, http.MethodGet, "/api/novels/rankings", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertNotCalled(t, "GetNovel", mock.Anything, mock.Anything)
}

func TestSearch(t *testing.T) {
	svc := new(MockCatalogService)
	r := newCatalogRouter(svc)
	svc.On("SearchNovels", mock.Anything, models.NovelFilter{Title: "sword", Author: "lin"}).
		Return([]models.Novel{{ID: 1, Title: "Sword"}}, nil)
	svc.On("SearchNovels", mock.Anything, models.NovelFilter{Title: "zzz"}).
		Return(nil, service.ErrNoSearchResults)

	w := perform(t, r, http.MethodGet, "/api/search?title=sword&author=lin", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(t, r, http.MethodGet, "/api/search?title=zzz", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "没有找到符合条件的小说", decode(t, w)["error"])
}

func TestFeatured(t *testing.T) {
	svc := new(MockCatalogService)
	r := newCatalogRouter(svc)
	cover := "/images/a.png"
	svc.On("FeaturedNovels", mock.Anything).Return([]models.Novel{{ID: 1, Title: "A", CoverImageURL: &cover, IsFeatured: true}}, nil)

	w := perform(t, r, http.MethodGet, "/api/featured-novels", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"cover_image_url":"/images/a.png"`)
}

func TestChapters(t *testing.T) {
	svc := new(MockCatalogService)
	r := newCatalogRouter(svc)
	svc.On("ListChapters", mock.Anything, int64(1)).Return([]models.Chapter{{ID: 1, Title: "One"}, {ID: 2, Title: "Two"}}, nil)
	svc.On("ListChapters", mock.Anything, int64(2)).Return(nil, service.ErrChaptersNotFound)
	svc.On("GetChapter", mock.Anything, int64(5)).Return(&models.Chapter{ID: 5, Title: "Five", Content: "text"}, nil)
	svc.On("GetChapter", mock.Anything, int64(6)).Return(nil, service.ErrChapterNotFound)

	w := perform(t, r, http.MethodGet, "/api/novels/1/chapters", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"title":"One"},{"id":2,"title":"Two"}]`, w.Body.String())

	w = perform(t, r, http.MethodGet, "/api/novels/2/chapters", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "没有找到该小说的章节", decode(t, w)["error"])

	w = perform(t, r, http.MethodGet, "/api/chapters/5", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text", decode(t, w)["content"])

	w = perform(t, r, http.MethodGet, "/api/chapters/6", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "没有找到该章节", decode(t, w)["error"])
}

func TestChapterMutations(t *testing.T) {
	svc := new(MockCatalogService)
	r := newCatalogRouter(svc)
	svc.On("CreateChapter", mock.Anything, int64(1), "New", "body").Return(&models.Chapter{ID: 31, NovelID: 1}, nil)
	svc.On("CreateChapter", mock.Anything, int64(1), "", "body").Return(nil, service.ErrChapterFieldsRequired)
	svc.On("CreateChapter", mock.Anything, int64(404), "New", "body").Return(nil, service.ErrNovelNotFound)
	svc.On("UpdateChapter", mock.Anything, int64(31), "Edit", "body").Return(nil)
	svc.On("UpdateChapter", mock.Anything, int64(32), "Edit", "body").Return(service.ErrChapterNotFound)
	svc.On("DeleteChapter", mock.Anything, int64(31)).Return(nil)
	svc.On("DeleteChapter", mock.Anything, int64(32)).Return(errors.New("deadlock"))

	w := perform(t, r, http.MethodPost, "/api/novels/1/chapters", dto.ChapterRequest{Title: "New", Content: "body"})
	assert.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "章节添加成功", body["message"])
	assert.EqualValues(t, 31, body["chapterId"])

	w = perform(t, r, http.MethodPost, "/api/novels/1/chapters", dto.ChapterRequest{Content: "body"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "章节标题和内容不能为空", decode(t, w)["error"])

	w = perform(t, r, http.MethodPost, "/api/novels/404/chapters", dto.ChapterRequest{Title: "New", Content: "body"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = perform(t, r, http.MethodPut, "/api/chapters/31", dto.ChapterRequest{Title: "Edit", Content: "body"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "章节更新成功", decode(t, w)["message"])

	w = perform(t, r, http.MethodPut, "/api/chapters/32", dto.ChapterRequest{Title: "Edit", Content: "body"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = perform(t, r, http.MethodDelete, "/api/chapters/31", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "章节删除成功", decode(t, w)["message"])

	w = perform(t, r, http.MethodDelete, "/api/chapters/32", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "服务器错误", decode(t, w)["error"])
}
