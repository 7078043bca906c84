package bootstrap

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yigit/lmsdash/internal/app/models"
	"github.com/yigit/lmsdash/internal/app/models/dto"
	"github.com/yigit/lmsdash/internal/config"
	"github.com/yigit/lmsdash/internal/pkg/auth"
	"github.com/yigit/lmsdash/internal/pkg/idgen"
	"github.com/yigit/lmsdash/internal/seed"
)

func init() {
	auth.BcryptCost = bcrypt.MinCost
}

func setupRouter(t *testing.T, mutate ...func(*config.Config)) (*gin.Engine, *Dependencies) {
	t.Helper()

	cfg := config.Default()
	cfg.Server.Mode = "test"
	for _, m := range mutate {
		m(cfg)
	}

	deps, err := BuildDependencies(context.Background(), cfg, idgen.NewSequence("new"), zerolog.Nop())
	require.NoError(t, err)
	return SetupRouter(cfg, deps, zerolog.Nop()), deps
}

func request(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestGetCourses(t *testing.T) {
	router, _ := setupRouter(t)

	rec := request(t, router, http.MethodGet, "/api/courses", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, seed.Courses(), decode[[]models.Course](t, rec))

	for _, want := range seed.Courses() {
		rec := request(t, router, http.MethodGet, "/api/courses/"+want.ID, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, want, decode[models.Course](t, rec))
	}
}

func TestGetUnknownCourse(t *testing.T) {
	router, _ := setupRouter(t)

	rec := request(t, router, http.MethodGet, "/api/courses/course99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Course not found"}`, rec.Body.String())
}

func TestGetCourseAssignments(t *testing.T) {
	router, _ := setupRouter(t)

	rec := request(t, router, http.MethodGet, "/api/courses/course1/assignments", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, seed.Assignments(), decode[[]models.Assignment](t, rec))

	rec = request(t, router, http.MethodGet, "/api/courses/course2/assignments", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	// Unknown course ids are not an error for the list
	rec = request(t, router, http.MethodGet, "/api/courses/course99/assignments", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestReadsAreIdempotent(t *testing.T) {
	router, _ := setupRouter(t)

	for _, path := range []string{"/api/courses", "/api/tasks", "/api/user", "/api/courses/course3"} {
		first := request(t, router, http.MethodGet, path, "")
		second := request(t, router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, first.Code, path)
		assert.Equal(t, first.Body.String(), second.Body.String(), path)
	}
}

func TestGetCurrentUser(t *testing.T) {
	router, _ := setupRouter(t)

	rec := request(t, router, http.MethodGet, "/api/user", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"user1","username":"john.student","displayName":"John Student","role":"student"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestGetCurrentUserFollowsConfig(t *testing.T) {
	router, _ := setupRouter(t, func(cfg *config.Config) { cfg.App.DemoUserID = "ghost" })

	rec := request(t, router, http.MethodGet, "/api/user", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"User not found"}`, rec.Body.String())
}

func TestGetTasks(t *testing.T) {
	router, _ := setupRouter(t)

	rec := request(t, router, http.MethodGet, "/api/tasks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, seed.Tasks(), decode[[]models.Task](t, rec))
}

func TestPatchTaskCompleted(t *testing.T) {
	router, deps := setupRouter(t)

	rec := request(t, router, http.MethodPatch, "/api/tasks/task1", `{"completed":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[models.Task](t, rec)
	assert.True(t, updated.Completed)

	rec = request(t, router, http.MethodGet, "/api/tasks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	tasks := decode[[]models.Task](t, rec)
	assert.Len(t, tasks, deps.Repos.TaskRepository.Count())

	want := seed.Tasks()[0]
	want.Completed = true

	var matches []models.Task
	for _, task := range tasks {
		if task.ID == "task1" {
			matches = append(matches, task)
		}
	}
	require.Len(t, matches, 1)
	assert.Equal(t, want, matches[0])
	assert.Equal(t, seed.Tasks()[1:], tasks[1:])
}

func TestPatchTaskIgnoresID(t *testing.T) {
	router, _ := setupRouter(t)

	rec := request(t, router, http.MethodPatch, "/api/tasks/task2", `{"id":"task9","title":"Renamed"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[models.Task](t, rec)
	assert.Equal(t, "task2", updated.ID)
	assert.Equal(t, "Renamed", updated.Title)

	rec = request(t, router, http.MethodPatch, "/api/tasks/task9", `{"completed":true}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPatchUnknownTask(t *testing.T) {
	router, deps := setupRouter(t)
	before := deps.Repos.TaskRepository.Count()

	rec := request(t, router, http.MethodPatch, "/api/tasks/nope", `{"completed":true}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Task not found"}`, rec.Body.String())
	assert.Equal(t, before, deps.Repos.TaskRepository.Count())
}

func TestPatchEmptyBody(t *testing.T) {
	router, _ := setupRouter(t)

	rec := request(t, router, http.MethodPatch, "/api/tasks/unknown-id", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Task not found"}`, rec.Body.String())

	rec = request(t, router, http.MethodPatch, "/api/tasks/task1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, seed.Tasks()[0], decode[models.Task](t, rec))
}

func TestPatchIgnoresCaseVariantKeys(t *testing.T) {
	router, _ := setupRouter(t)

	rec := request(t, router, http.MethodPatch, "/api/tasks/task1", `{"userid":"user2","Completed":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, seed.Tasks()[0], decode[models.Task](t, rec))

	rec = request(t, router, http.MethodGet, "/api/tasks", "")
	assert.Len(t, decode[[]models.Task](t, rec), 5)
}

func TestPatchMalformedBody(t *testing.T) {
	router, _ := setupRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"not json", `completed=true`},
		{"array", `[true]`},
		{"wrong type", `{"completed":"yes"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := request(t, router, http.MethodPatch, "/api/tasks/task1", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, decode[dto.ErrorResponse](t, rec).Message)
		})
	}

	rec := request(t, router, http.MethodGet, "/api/tasks", "")
	assert.Equal(t, seed.Tasks(), decode[[]models.Task](t, rec))
}

func TestCreateTask(t *testing.T) {
	router, deps := setupRouter(t)

	rec := request(t, router, http.MethodPost, "/api/tasks",
		`{"title":"Read Chapter 6","dueDate":"2024-03-27T00:00:00Z","courseId":"course2"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[models.Task](t, rec)
	assert.Equal(t, "new1", created.ID)
	assert.Equal(t, "user1", created.UserID)
	assert.Equal(t, models.PriorityMedium, created.Priority)
	assert.Equal(t, 6, deps.Repos.TaskRepository.Count())

	rec = request(t, router, http.MethodPost, "/api/tasks", `{"dueDate":"2024-03-27T00:00:00Z","priority":"urgent"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[dto.ErrorResponse](t, rec)
	assert.Equal(t, "Validation failed", body.Message)
	assert.Len(t, body.Errors, 2)

	rec = request(t, router, http.MethodPost, "/api/tasks", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 6, deps.Repos.TaskRepository.Count())
}

func TestAncillaryRoutes(t *testing.T) {
	router, _ := setupRouter(t)

	rec := request(t, router, http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"pong","status":"success"}`, rec.Body.String())

	// Prime a counter so the exposition is not empty
	request(t, router, http.MethodGet, "/api/courses", "")
	rec = request(t, router, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "lmsdash_http_requests_total")

	rec = request(t, router, http.MethodGet, "/swagger/doc.json", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "LMS Dashboard API")

	rec = request(t, router, http.MethodGet, "/api/nothing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEventsDisabled(t *testing.T) {
	router, deps := setupRouter(t, func(cfg *config.Config) { cfg.Events.Enabled = false })
	assert.Nil(t, deps.Hub)

	rec := request(t, router, http.MethodGet, "/api/events", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Services still work with no subscriber attached
	rec = request(t, router, http.MethodPatch, "/api/tasks/task1", `{"completed":true}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEmptyStoreWithoutFixtures(t *testing.T) {
	router, _ := setupRouter(t, func(cfg *config.Config) { cfg.Store.SeedFixtures = false })

	rec := request(t, router, http.MethodGet, "/api/courses", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
