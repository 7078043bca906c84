// Package client is the dashboard's data layer: a typed HTTP client over the
// LMS API with a keyed read cache that mutations and change events invalidate.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/yigit/lmsdash/internal/app/models"
	"github.com/yigit/lmsdash/internal/app/models/dto"
)

// DefaultCacheSize is the number of GET responses kept when no size is given
const DefaultCacheSize = 256

// Cache keys
const (
	KeyCourses = "/api/courses"
	KeyTasks   = "/api/tasks"
	KeyUser    = "/api/user"
)

// CourseKey is the cache key of a single course
func CourseKey(id string) string {
	return KeyCourses + "/" + url.PathEscape(id)
}

// AssignmentsKey is the cache key of a course's assignment list
func AssignmentsKey(courseID string) string {
	return CourseKey(courseID) + "/assignments"
}

// ErrNotFound matches any APIError carrying a 404 status
var ErrNotFound = errors.New("not found")

// APIError is returned for every non-2xx response
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Is reports whether target is ErrNotFound and the status is 404
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCacheSize bounds the read cache. Non-positive sizes keep the default.
func WithCacheSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.cacheSize = n
		}
	}
}

// WithLogger sets the logger used for cache and watch diagnostics
func WithLogger(lgr zerolog.Logger) Option {
	return func(c *Client) { c.logger = lgr }
}

// Client reads and mutates dashboard data. It is safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	cacheSize  int
	cache      *lru.Cache[string, []byte]
	group      singleflight.Group

	// generations counts invalidations per key; a fetch only populates the
	// cache if its key was not invalidated while it was in flight
	mu          sync.Mutex
	generations map[string]uint64

	logger zerolog.Logger
}

// New creates a Client for the API rooted at baseURL (e.g. http://localhost:8080)
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cacheSize:   DefaultCacheSize,
		generations: make(map[string]uint64),
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.cache, err = lru.New[string, []byte](c.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}
	return c, nil
}

// Courses lists every course
func (c *Client) Courses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := c.get(ctx, KeyCourses, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Course fetches one course
func (c *Client) Course(ctx context.Context, id string) (*models.Course, error) {
	var course models.Course
	if err := c.get(ctx, CourseKey(id), &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// Assignments lists the assignments of a course
func (c *Client) Assignments(ctx context.Context, courseID string) ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := c.get(ctx, AssignmentsKey(courseID), &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// Tasks lists the current user's tasks
func (c *Client) Tasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := c.get(ctx, KeyTasks, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// User fetches the current user
func (c *Client) User(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, KeyUser, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateTask shallow-merges partial into the task and drops the cached task list
func (c *Client) UpdateTask(ctx context.Context, id string, partial map[string]any) (*models.Task, error) {
	var task models.Task
	if err := c.send(ctx, http.MethodPatch, KeyTasks+"/"+url.PathEscape(id), partial, &task); err != nil {
		return nil, err
	}
	c.Invalidate(KeyTasks)
	return &task, nil
}

// SetTaskCompleted toggles a task's completion flag
func (c *Client) SetTaskCompleted(ctx context.Context, id string, completed bool) (*models.Task, error) {
	return c.UpdateTask(ctx, id, map[string]any{"completed": completed})
}

// CreateTask adds a task for the current user
func (c *Client) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*models.Task, error) {
	var task models.Task
	if err := c.send(ctx, http.MethodPost, KeyTasks, req, &task); err != nil {
		return nil, err
	}
	c.Invalidate(KeyTasks)
	return &task, nil
}

// Invalidate drops the given keys; the next read refetches them
func (c *Client) Invalidate(keys ...string) {
	c.mu.Lock()
	for _, key := range keys {
		c.generations[key]++
		c.cache.Remove(key)
	}
	c.mu.Unlock()
	c.logger.Debug().Strs("keys", keys).Msg("cache invalidated")
}

// Cached reports whether key currently has a cached response
func (c *Client) Cached(key string) bool {
	return c.cache.Contains(key)
}

func (c *Client) get(ctx context.Context, key string, out any) error {
	if body, ok := c.cache.Get(key); ok {
		return decode(body, out)
	}

	ch := c.group.DoChan(key, func() (any, error) {
		gen := c.generation(key)
		// Shared by every waiter, so one caller cancelling must not fail the rest
		body, err := c.do(context.WithoutCancel(ctx), http.MethodGet, key, nil)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		if c.generations[key] == gen {
			c.cache.Add(key, body)
		}
		c.mu.Unlock()
		return body, nil
	})

	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return res.Err
		}
		return decode(res.Val.([]byte), out)
	}
}

func (c *Client) generation(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[key]
}

func (c *Client) send(ctx context.Context, method, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	body, err := c.do(ctx, method, path, payload)
	if err != nil {
		return err
	}
	return decode(body, out)
}

// do performs one request and returns the body of a 2xx response
func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var errBody dto.ErrorResponse
		if json.Unmarshal(body, &errBody) == nil && errBody.Message != "" {
			apiErr.Message = errBody.Message
		}
		return nil, apiErr
	}

	return body, nil
}

func decode(body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
