package models

// Course represents a course the student is enrolled in.
type Course struct {
	ID           string  `json:"id" example:"course1"`
	Title        string  `json:"title" validate:"required" example:"Introduction to Data Science"`
	Instructor   string  `json:"instructor" validate:"required" example:"Dr. Sarah Johnson"`
	Description  *string `json:"description"` // Nullable
	Term         string  `json:"term" validate:"required" example:"Spring 2024"`
	Credits      int     `json:"credits" validate:"gte=0" example:"3"`
	MeetingTimes *string `json:"meetingTimes"` // Nullable
	Location     *string `json:"location"`     // Nullable
	Progress     int     `json:"progress" validate:"gte=0,lte=100" example:"75"`
}

// Key returns the course id
func (c Course) Key() string { return c.ID }

// WithKey returns a copy of c carrying id
func (c Course) WithKey(id string) Course {
	c.ID = id
	return c
}

// Clone returns a deep copy of c
func (c Course) Clone() Course {
	c.Description = clonePtr(c.Description)
	c.MeetingTimes = clonePtr(c.MeetingTimes)
	c.Location = clonePtr(c.Location)
	return c
}
