package client

// http_client.go talks JSON to the novelhub HTTP API.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// APIError is a non-2xx answer; Message is the server's {"error": ...} text.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message     string `json:"message"`
	RedirectTo  string `json:"redirectTo"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	UserID      int64  `json:"user_id"`
	Username    string `json:"username"`
}

type UserInfo struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	AvatarURL      *string `json:"avatar_url"`
	MonthlyTickets int64   `json:"monthly_tickets"`
}

type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Novel struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	Author         *string `json:"author"`
	Description    *string `json:"description"`
	CoverImageURL  *string `json:"cover_image_url"`
	Summary        *string `json:"summary"`
	IsFeatured     bool    `json:"is_featured"`
	MonthlyTickets int64   `json:"monthly_tickets"`
}

type NovelRequest struct {
	Title       string  `json:"title"`
	Author      *string `json:"author,omitempty"`
	Description *string `json:"description,omitempty"`
	Summary     *string `json:"summary,omitempty"`
	IsFeatured  bool    `json:"is_featured"`
}

type ChapterSummary struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type Chapter struct {
	ID      int64  `json:"id"`
	NovelID int64  `json:"novel_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ShelvedNovel struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	CoverImageURL *string `json:"cover_image_url"`
}

type RewardResponse struct {
	Message          string `json:"message"`
	RemainingTickets int64  `json:"remaining_tickets"`
	Shelved          bool   `json:"shelved"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func NewHTTPClient(apiURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: apiURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

func (c *HTTPClient) Register(ctx context.Context, req *RegisterRequest) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.do(ctx, http.MethodPost, "/api/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login signs in a reader, or an administrator when admin is set.
func (c *HTTPClient) Login(ctx context.Context, req *LoginRequest, admin bool) (*LoginResponse, error) {
	path := "/api/login/user"
	if admin {
		path = "/api/login/admin"
	}
	var out LoginResponse
	if err := c.do(ctx, http.MethodPost, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UserInfo(ctx context.Context, username string) (*UserInfo, error) {
	var out UserInfo
	q := url.Values{"username": {username}}
	if err := c.do(ctx, http.MethodGet, "/api/userinfo?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListNovels(ctx context.Context) ([]Novel, error) {
	var out []Novel
	return out, c.do(ctx, http.MethodGet, "/api/novels", nil, &out)
}

func (c *HTTPClient) GetNovel(ctx context.Context, id int64) (*Novel, error) {
	var out Novel
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/novels/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) SearchNovels(ctx context.Context, title, author string) ([]Novel, error) {
	q := url.Values{}
	if title != "" {
		q.Set("title", title)
	}
	if author != "" {
		q.Set("author", author)
	}
	var out []Novel
	return out, c.do(ctx, http.MethodGet, "/api/search?"+q.Encode(), nil, &out)
}

func (c *HTTPClient) Rankings(ctx context.Context) ([]Novel, error) {
	var out []Novel
	return out, c.do(ctx, http.MethodGet, "/api/novels/rankings", nil, &out)
}

func (c *HTTPClient) Featured(ctx context.Context) ([]Novel, error) {
	var out []Novel
	return out, c.do(ctx, http.MethodGet, "/api/featured-novels", nil, &out)
}

func (c *HTTPClient) ListChapters(ctx context.Context, novelID int64) ([]ChapterSummary, error) {
	var out []ChapterSummary
	return out, c.do(ctx, http.MethodGet, fmt.Sprintf("/api/novels/%d/chapters", novelID), nil, &out)
}

func (c *HTTPClient) GetChapter(ctx context.Context, id int64) (*Chapter, error) {
	var out Chapter
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/chapters/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) AddToBookshelf(ctx context.Context, userID, novelID int64) error {
	body := map[string]int64{"user_id": userID, "novel_id": novelID}
	return c.do(ctx, http.MethodPost, "/api/bookshelf", body, nil)
}

func (c *HTTPClient) ListBookshelf(ctx context.Context, userID int64) ([]ShelvedNovel, error) {
	var out []ShelvedNovel
	return out, c.do(ctx, http.MethodGet, fmt.Sprintf("/api/bookshelf/%d", userID), nil, &out)
}

func (c *HTTPClient) RemoveFromBookshelf(ctx context.Context, userID int64, novelIDs []int64) error {
	body := map[string]any{"user_id": userID, "novel_ids": novelIDs}
	return c.do(ctx, http.MethodDelete, "/api/bookshelf/delete", body, nil)
}

func (c *HTTPClient) Reward(ctx context.Context, userID, novelID, tickets int64) (*RewardResponse, error) {
	body := map[string]int64{"user_id": userID, "novel_id": novelID, "tickets": tickets}
	var out RewardResponse
	if err := c.do(ctx, http.MethodPost, "/api/reward", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) AdminListUsers(ctx context.Context) ([]UserSummary, error) {
	var out []UserSummary
	return out, c.do(ctx, http.MethodGet, "/api/admin/all-users", nil, &out)
}

func (c *HTTPClient) AdminDeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", id), nil, nil)
}

func (c *HTTPClient) AdminCreateNovel(ctx context.Context, req *NovelRequest) (int64, error) {
	var out struct {
		ID int64 `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/admin/novels", req, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

func (c *HTTPClient) AdminDeleteNovel(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/novels/%d", id), nil, nil)
}

// do sends body as JSON and decodes a 2xx answer into out when out is not nil.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		if e.Error == "" {
			e.Error = resp.Status
		}
		return &APIError{StatusCode: resp.StatusCode, Message: e.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
