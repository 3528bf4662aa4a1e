package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"taskmanager/internal/domain"
)

// Client talks to the task API and keeps a local copy of the collection.
// The cache is reconciled from server responses after each mutation and is
// never authoritative; FetchTasks replaces it wholesale.
type Client struct {
	baseURL string
	http    *http.Client

	mu      sync.RWMutex
	tasks   []domain.Task
	loading bool
	lastErr error
}

// APIError is a non-2xx response decoded from the {"error": msg} body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error (%d)", e.Status)
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Tasks returns a copy of the cached collection.
func (c *Client) Tasks() []domain.Task {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Loading reports whether a full fetch is in flight.
func (c *Client) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Err returns the most recent operation error. It clears on the next
// successful operation.
func (c *Client) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

// FetchTasks replaces the cache with the server's full list. On failure the
// prior cache stays in place.
func (c *Client) FetchTasks(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	var tasks []domain.Task
	err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks)

	c.mu.Lock()
	c.loading = false
	c.lastErr = err
	if err == nil {
		c.tasks = tasks
	}
	c.mu.Unlock()
	return err
}

// AddTask creates a task and appends the server's copy to the cache.
func (c *Client) AddTask(ctx context.Context, title string, dueDate *string) (domain.Task, error) {
	body := map[string]any{"title": title}
	if dueDate != nil {
		body["dueDate"] = *dueDate
	}

	var task domain.Task
	err := c.do(ctx, http.MethodPost, "/tasks", body, &task)

	c.mu.Lock()
	c.lastErr = err
	if err == nil {
		c.tasks = append(c.tasks, task)
	}
	c.mu.Unlock()
	return task, err
}

// UpdateTask patches a task and replaces it in the cache by id.
func (c *Client) UpdateTask(ctx context.Context, id int64, patch domain.TaskPatch) (domain.Task, error) {
	var task domain.Task
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", id), patch, &task)

	c.mu.Lock()
	c.lastErr = err
	if err == nil {
		for i := range c.tasks {
			if c.tasks[i].ID == id {
				c.tasks[i] = task
				break
			}
		}
	}
	c.mu.Unlock()
	return task, err
}

// DeleteTask removes a task and filters it out of the cache.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, nil)

	c.mu.Lock()
	c.lastErr = err
	if err == nil {
		kept := c.tasks[:0]
		for _, t := range c.tasks {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		c.tasks = kept
	}
	c.mu.Unlock()
	return err
}

// ToggleTask flips the completed flag of a cached task. Unknown ids are a
// no-op: no network call is issued.
func (c *Client) ToggleTask(ctx context.Context, id int64) (*domain.Task, error) {
	c.mu.RLock()
	var current *domain.Task
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			t := c.tasks[i]
			current = &t
			break
		}
	}
	c.mu.RUnlock()

	if current == nil {
		return nil, nil
	}

	completed := !current.Completed
	task, err := c.UpdateTask(ctx, id, domain.TaskPatch{Completed: &completed})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ImportedTask is one entry of an exported task file. Server-assigned fields
// (id, timestamps, due date) are ignored on import.
type ImportedTask struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// ImportTasks creates one task per imported entry, then refreshes the whole
// list. It fails fast: the first failed create stops the import, the cache
// is resynced from the server and the error reports how far it got.
func (c *Client) ImportTasks(ctx context.Context, items []ImportedTask) error {
	for i, item := range items {
		body := map[string]any{
			"title":     item.Title,
			"completed": item.Completed,
		}
		if err := c.do(ctx, http.MethodPost, "/tasks", body, nil); err != nil {
			_ = c.FetchTasks(ctx)
			err = fmt.Errorf("imported %d of %d tasks: %w", i, len(items), err)
			c.setErr(err)
			return err
		}
	}
	return c.FetchTasks(ctx)
}

// ClearAllTasks deletes every cached task, one call per task. On the first
// failure it stops, resyncs the cache and reports partial progress.
func (c *Client) ClearAllTasks(ctx context.Context) error {
	tasks := c.Tasks()
	for i, t := range tasks {
		if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", t.ID), nil, nil); err != nil {
			_ = c.FetchTasks(ctx)
			err = fmt.Errorf("cleared %d of %d tasks: %w", i, len(tasks), err)
			c.setErr(err)
			return err
		}
	}

	c.mu.Lock()
	c.tasks = c.tasks[:0]
	c.lastErr = nil
	c.mu.Unlock()
	return nil
}

// Export returns the cached collection as pretty-printed JSON, the same
// shape the server persists.
func (c *Client) Export() ([]byte, error) {
	return json.MarshalIndent(c.Tasks(), "", "  ")
}

func (c *Client) setErr(err error) {
	c.mu.Lock()
	c.lastErr = err
	c.mu.Unlock()
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
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

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var errBody struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil {
			apiErr.Message = errBody.Error
		}
		return apiErr
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
