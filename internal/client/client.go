// Package client は学習CLIから使うAPIクライアントです
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go_5_quiz_keep/internal/config"
	"go_5_quiz_keep/internal/model"
	"go_5_quiz_keep/internal/study"
)

// APIError はサーバーが返したエラーレスポンス
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// Temporary は再試行で成功しうるエラーかどうか (5xx と 429)
func (e *APIError) Temporary() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

// transportError は接続できなかったなど、サーバーの応答がなかったエラー。常に再試行可
type transportError struct {
	err error
}

func (e *transportError) Error() string { return e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }
func (e *transportError) Temporary() bool { return true }

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(cfg config.ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("client: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &transportError{err: fmt.Errorf("client: %s %s: %w", method, path, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var errResp model.APIErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
			apiErr.Code = errResp.Code
			apiErr.Message = errResp.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}
	return nil
}

func (c *Client) RequestMagicLink(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/magic-link", model.MagicLinkRequest{Email: email}, nil)
}

// VerifyMagicLink はメールのトークンをアクセストークンに交換します
func (c *Client) VerifyMagicLink(ctx context.Context, token string) (string, error) {
	var res model.LoginResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/callback?token="+url.QueryEscape(token), nil, &res); err != nil {
		return "", err
	}
	return res.AccessToken, nil
}

func (c *Client) FetchQuestions(ctx context.Context, mode study.Mode, chapter *int, count int) ([]model.QuestionResponse, error) {
	var path string
	switch mode {
	case study.ModeRandom:
		path = "/api/questions/random"
	case study.ModeCategory:
		if chapter == nil {
			return nil, study.ErrChapterRequired
		}
		path = "/api/questions/category/" + strconv.Itoa(*chapter)
	case study.ModeWeak:
		path = "/api/questions/weak"
	case study.ModeBookmark:
		path = "/api/questions/bookmarks"
	default:
		return nil, study.ErrInvalidMode
	}
	if count > 0 {
		path += "?count=" + strconv.Itoa(count)
	}

	var res model.QuestionsResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return res.Questions, nil
}

func (c *Client) Chapters(ctx context.Context) ([]model.ChapterResponse, error) {
	var res model.ChaptersResponse
	if err := c.do(ctx, http.MethodGet, "/api/questions/chapters", nil, &res); err != nil {
		return nil, err
	}
	return res.Chapters, nil
}

func (c *Client) RecordAnswer(ctx context.Context, questionID int, isCorrect bool) error {
	return c.do(ctx, http.MethodPost, "/api/answers", model.RecordAnswerRequest{QuestionID: questionID, IsCorrect: &isCorrect}, nil)
}

func (c *Client) ListBookmarks(ctx context.Context) ([]model.BookmarkResponse, error) {
	var res model.BookmarksResponse
	if err := c.do(ctx, http.MethodGet, "/api/bookmarks", nil, &res); err != nil {
		return nil, err
	}
	return res.Bookmarks, nil
}

func (c *Client) AddBookmark(ctx context.Context, questionID int) error {
	return c.do(ctx, http.MethodPost, "/api/bookmarks", model.AddBookmarkRequest{QuestionID: questionID}, nil)
}

func (c *Client) RemoveBookmark(ctx context.Context, questionID int) error {
	return c.do(ctx, http.MethodDelete, "/api/bookmarks/"+strconv.Itoa(questionID), nil, nil)
}

func (c *Client) TodayStats(ctx context.Context) (model.Summary, error) {
	var res model.Summary
	err := c.do(ctx, http.MethodGet, "/api/stats/today", nil, &res)
	return res, err
}

func (c *Client) DailyStats(ctx context.Context, days int) ([]model.DailyStat, error) {
	var res model.DailyStatsResponse
	if err := c.do(ctx, http.MethodGet, "/api/stats/daily?days="+strconv.Itoa(days), nil, &res); err != nil {
		return nil, err
	}
	return res.Daily, nil
}

func (c *Client) CategoryStats(ctx context.Context) ([]model.CategoryStat, error) {
	var res model.CategoryStatsResponse
	if err := c.do(ctx, http.MethodGet, "/api/stats/categories", nil, &res); err != nil {
		return nil, err
	}
	return res.Categories, nil
}

var (
	_ study.QuestionSource = (*Client)(nil)
	_ study.AnswerStore    = (*Client)(nil)
	_ study.BookmarkStore  = (*Client)(nil)
	_ study.StatsSource    = (*Client)(nil)
)
