package services

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/lmsdash/internal/app/models"
	"github.com/yigit/lmsdash/internal/app/repositories"
)

// Notifier receives a ChangeEvent after every successful create or update.
// Implementations must not block.
type Notifier interface {
	Notify(event models.ChangeEvent)
}

// NotifierFunc adapts a function to the Notifier interface
type NotifierFunc func(event models.ChangeEvent)

// Notify calls f
func (f NotifierFunc) Notify(event models.ChangeEvent) { f(event) }

type noopNotifier struct{}

func (noopNotifier) Notify(models.ChangeEvent) {}

func orNoop(n Notifier) Notifier {
	if n == nil {
		return noopNotifier{}
	}
	return n
}

func changed(kind models.ChangeType, entity, id string) models.ChangeEvent {
	return models.ChangeEvent{
		Type:      kind,
		Entity:    entity,
		ID:        id,
		Timestamp: time.Now().UTC(),
	}
}

// Services groups the query facade used by the HTTP layer
type Services struct {
	UserService       UserService
	CourseService     CourseService
	TaskService       TaskService
	AssignmentService AssignmentService
}

// NewServices wires every service to its repository. A nil notifier
// discards change events.
func NewServices(repos *repositories.Repositories, notifier Notifier, lgr zerolog.Logger) *Services {
	return &Services{
		UserService:       NewUserService(repos.UserRepository, notifier),
		CourseService:     NewCourseService(repos.CourseRepository, notifier),
		TaskService:       NewTaskService(repos.TaskRepository, notifier, lgr),
		AssignmentService: NewAssignmentService(repos.AssignmentRepository, notifier),
	}
}
