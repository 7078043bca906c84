package models

import "encoding/json"

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent    RoleType = "student"
	RoleInstructor RoleType = "instructor"
)

// TaskPriority orders to-do items on the dashboard
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// AssignmentStatus tracks an assignment through submission and grading
type AssignmentStatus string

const (
	StatusPending   AssignmentStatus = "pending"
	StatusSubmitted AssignmentStatus = "submitted"
	StatusGraded    AssignmentStatus = "graded"
)

// DefaultMaxGrade is applied to assignments created without a maxGrade
const DefaultMaxGrade = 100

// Partial holds the top-level fields of a partial update, keyed by their
// JSON name. Values stay raw until they are merged into a record.
type Partial map[string]json.RawMessage

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
