package services

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/yigit/lmsdash/internal/app/models"
	"github.com/yigit/lmsdash/internal/app/repositories"
	"github.com/yigit/lmsdash/internal/pkg/auth"
	"github.com/yigit/lmsdash/internal/pkg/idgen"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	auth.BcryptCost = bcrypt.MinCost
	os.Exit(m.Run())
}

// recorder collects change events
type recorder struct {
	mu     sync.Mutex
	events []models.ChangeEvent
}

func (r *recorder) record(e models.ChangeEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) all() []models.ChangeEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.ChangeEvent(nil), r.events...)
}

type fixture struct {
	repos    *repositories.Repositories
	services *Services
	events   *recorder
}

func setup(t *testing.T) fixture {
	t.Helper()
	repos := repositories.NewRepositories(idgen.NewSequence("gen"))
	events := &recorder{}
	return fixture{
		repos:    repos,
		services: NewServices(repos, NotifierFunc(events.record), zerolog.Nop()),
		events:   events,
	}
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func partial(t *testing.T, body string) models.Partial {
	t.Helper()
	var p models.Partial
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	return p
}

func insertTask(t *testing.T, f fixture, task models.Task) {
	t.Helper()
	require.NoError(t, f.repos.TaskRepository.Insert(context.Background(), task))
}
