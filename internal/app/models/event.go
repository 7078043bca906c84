package models

import "time"

// ChangeType describes what happened to a record
type ChangeType string

const (
	ChangeCreated ChangeType = "created"
	ChangeUpdated ChangeType = "updated"
)

// Entity names used in change events
const (
	EntityUser       = "user"
	EntityCourse     = "course"
	EntityTask       = "task"
	EntityAssignment = "assignment"
)

// ChangeEvent is pushed to subscribers after a record is created or updated
type ChangeEvent struct {
	Type   ChangeType `json:"type"`
	Entity string     `json:"entity"`
	ID     string     `json:"id"`
	// CourseID is set for assignment events so readers can locate the list
	CourseID  string    `json:"courseId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
