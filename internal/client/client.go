// Package client provides the HTTP client and polling sync layer used
// by the terminal front ends.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/wzbwan/ADHD-homeworks/internal/models"
)

const defaultTimeout = 10 * time.Second

// APIError is a non-2xx response decoded from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error %d", e.Status)
}

// Client calls the household tracker HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// TaskResponse is the server reply for single-task writes.
type TaskResponse struct {
	Task         models.Task `json:"task"`
	CurrentScore int         `json:"currentScore"`
}

// TasksResponse is the server reply for bulk task creation.
type TasksResponse struct {
	Tasks        []models.Task `json:"tasks"`
	CurrentScore int           `json:"currentScore"`
}

// ScoreResponse is the server reply carrying only the derived score.
type ScoreResponse struct {
	CurrentScore int `json:"currentScore"`
}

// AckResponse is the server reply for toggle and redeem writes.
type AckResponse struct {
	OK           bool `json:"ok"`
	CurrentScore int  `json:"currentScore"`
}

type habitsResponse struct {
	Habits []models.HabitWithState `json:"habits"`
}

type habitResponse struct {
	Habit models.Habit `json:"habit"`
}

type commonTasksResponse struct {
	Tasks []string `json:"tasks"`
}

type healthResponse struct {
	OK bool `json:"ok"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Dashboard fetches the composed snapshot for a date. An empty date
// means today.
func (c *Client) Dashboard(ctx context.Context, date string) (*models.Dashboard, error) {
	path := "/api/dashboard"
	if date != "" {
		path += "?date=" + url.QueryEscape(date)
	}

	var dash models.Dashboard
	if err := c.do(ctx, http.MethodGet, path, nil, &dash); err != nil {
		return nil, err
	}
	return &dash, nil
}

// CreateTask creates a task, optionally adding the title to the
// common templates.
func (c *Client) CreateTask(ctx context.Context, title, taskType, date string, addToCommon bool) (*TaskResponse, error) {
	body := map[string]interface{}{
		"title":       title,
		"type":        taskType,
		"date":        date,
		"addToCommon": addToCommon,
	}

	var resp TaskResponse
	if err := c.do(ctx, http.MethodPost, "/api/tasks", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddTasksFromCommon bulk-creates one mandatory task per title.
func (c *Client) AddTasksFromCommon(ctx context.Context, titles []string, date string) (*TasksResponse, error) {
	body := map[string]interface{}{"titles": titles, "date": date}

	var resp TasksResponse
	if err := c.do(ctx, http.MethodPost, "/api/tasks/common", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CompleteTask marks a task completed with a star rating.
func (c *Client) CompleteTask(ctx context.Context, taskID string, stars int) (*TaskResponse, error) {
	body := map[string]interface{}{"stars": stars}

	var resp TaskResponse
	if err := c.do(ctx, http.MethodPost, "/api/tasks/"+url.PathEscape(taskID)+"/complete", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteTask removes a task. Unknown ids are a server-side no-op.
func (c *Client) DeleteTask(ctx context.Context, taskID string) (*ScoreResponse, error) {
	var resp ScoreResponse
	if err := c.do(ctx, http.MethodDelete, "/api/tasks/"+url.PathEscape(taskID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CommonTasks lists the template titles, newest first.
func (c *Client) CommonTasks(ctx context.Context) ([]string, error) {
	var resp commonTasksResponse
	if err := c.do(ctx, http.MethodGet, "/api/tasks/common", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// DeleteCommonTask removes a template by title.
func (c *Client) DeleteCommonTask(ctx context.Context, title string) error {
	return c.do(ctx, http.MethodDelete, "/api/tasks/common/"+url.PathEscape(title), nil, nil)
}

// Habits lists all habits with their completion flag for a date.
func (c *Client) Habits(ctx context.Context, date string) ([]models.HabitWithState, error) {
	path := "/api/habits"
	if date != "" {
		path += "?date=" + url.QueryEscape(date)
	}

	var resp habitsResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Habits, nil
}

// AddHabit creates a habit.
func (c *Client) AddHabit(ctx context.Context, name, iconKey string) (*models.Habit, error) {
	body := map[string]interface{}{"name": name, "iconKey": iconKey}

	var resp habitResponse
	if err := c.do(ctx, http.MethodPost, "/api/habits", body, &resp); err != nil {
		return nil, err
	}
	return &resp.Habit, nil
}

// DeleteHabit removes a habit and its logs.
func (c *Client) DeleteHabit(ctx context.Context, habitID string) error {
	return c.do(ctx, http.MethodDelete, "/api/habits/"+url.PathEscape(habitID), nil, nil)
}

// ToggleHabit sets the completion flag for a habit on a date.
func (c *Client) ToggleHabit(ctx context.Context, habitID string, completed bool, date string) (*AckResponse, error) {
	body := map[string]interface{}{"completed": completed, "date": date}

	var resp AckResponse
	if err := c.do(ctx, http.MethodPost, "/api/habits/"+url.PathEscape(habitID)+"/toggle", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Redeem spends points for a reward.
func (c *Client) Redeem(ctx context.Context, reason string, points int) (*AckResponse, error) {
	body := map[string]interface{}{"reason": reason, "points": points}

	var resp AckResponse
	if err := c.do(ctx, http.MethodPost, "/api/redeem", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health checks that the server is reachable.
func (c *Client) Health(ctx context.Context) error {
	var resp healthResponse
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, &resp); err != nil {
		return err
	}
	if !resp.OK {
		return fmt.Errorf("server reported not ok")
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
