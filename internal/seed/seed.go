package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/lmsdash/internal/app/models"
	appRepos "github.com/yigit/lmsdash/internal/app/repositories"
	"github.com/yigit/lmsdash/internal/pkg/auth"
	"github.com/yigit/lmsdash/internal/pkg/helpers"
)

// DemoPassword is the plain-text password of the fixture user
const DemoPassword = "password"

func ptr[T any](v T) *T { return &v }

// Users returns the fixture users. Passwords are plain text here and hashed on load.
func Users() []appModels.User {
	return []appModels.User{
		{ID: "user1", Username: "john.student", Password: DemoPassword, DisplayName: "John Student", Role: appModels.RoleStudent},
	}
}

// Courses returns the fixture course catalogue
func Courses() []appModels.Course {
	return []appModels.Course{
		{
			ID:           "course1",
			Title:        "Introduction to Data Science",
			Instructor:   "Dr. Sarah Johnson",
			Description:  ptr("This course provides a comprehensive introduction to data science, covering fundamental concepts, tools, and techniques used in data analysis."),
			Term:         "Spring 2024",
			Credits:      3,
			MeetingTimes: ptr("MWF 10:00-11:30 AM"),
			Location:     ptr("Science Building Room 204"),
			Progress:     75,
		},
		{
			ID:           "course2",
			Title:        "Advanced Mathematics",
			Instructor:   "Prof. Michael Chen",
			Description:  ptr("Advanced mathematical concepts and applications."),
			Term:         "Spring 2024",
			Credits:      4,
			MeetingTimes: ptr("TTh 2:00-3:30 PM"),
			Location:     ptr("Math Building Room 101"),
			Progress:     60,
		},
		{
			ID:           "course3",
			Title:        "Web Development Fundamentals",
			Instructor:   "Ms. Emily Rodriguez",
			Description:  ptr("Learn the fundamentals of web development including HTML, CSS, and JavaScript."),
			Term:         "Spring 2024",
			Credits:      3,
			MeetingTimes: ptr("MWF 1:00-2:30 PM"),
			Location:     ptr("Computer Lab A"),
			Progress:     90,
		},
		{
			ID:           "course4",
			Title:        "Digital Marketing Strategy",
			Instructor:   "Dr. James Wilson",
			Description:  ptr("Comprehensive course on digital marketing strategies and techniques."),
			Term:         "Spring 2024",
			Credits:      3,
			MeetingTimes: ptr("TTh 10:00-11:30 AM"),
			Location:     ptr("Business Building Room 205"),
			Progress:     45,
		},
		{
			ID:           "course5",
			Title:        "Psychology 101",
			Instructor:   "Dr. Lisa Thompson",
			Description:  ptr("Introduction to psychological principles and theories."),
			Term:         "Spring 2024",
			Credits:      3,
			MeetingTimes: ptr("MWF 9:00-10:30 AM"),
			Location:     ptr("Psychology Building Room 301"),
			Progress:     30,
		},
		{
			ID:           "course6",
			Title:        "Business Analytics",
			Instructor:   "Prof. Robert Davis",
			Description:  ptr("Learn business analytics techniques and data-driven decision making."),
			Term:         "Spring 2024",
			Credits:      3,
			MeetingTimes: ptr("TTh 3:00-4:30 PM"),
			Location:     ptr("Business Building Room 310"),
			Progress:     80,
		},
	}
}

// Tasks returns the fixture to-do items of user1
func Tasks() []appModels.Task {
	return []appModels.Task{
		{ID: "task1", UserID: "user1", Title: "Complete Data Science Assignment 3", Description: ptr("Create interactive charts using Python"), DueDate: helpers.Date("2024-03-18"), Priority: appModels.PriorityHigh, Completed: false, CourseID: ptr("course1")},
		{ID: "task2", UserID: "user1", Title: "Submit Web Development Project", Description: ptr("Final project submission"), DueDate: helpers.Date("2024-03-15"), Priority: appModels.PriorityHigh, Completed: true, CourseID: ptr("course3")},
		{ID: "task3", UserID: "user1", Title: "Read Chapter 5: Advanced Mathematics", Description: ptr("Study chapter 5 materials"), DueDate: helpers.Date("2024-03-20"), Priority: appModels.PriorityMedium, Completed: false, CourseID: ptr("course2")},
		{ID: "task4", UserID: "user1", Title: "Attend Marketing Strategy Discussion", Description: ptr("Class discussion on marketing strategies"), DueDate: helpers.Date("2024-03-22"), Priority: appModels.PriorityMedium, Completed: false, CourseID: ptr("course4")},
		{ID: "task5", UserID: "user1", Title: "Psychology Essay Draft", Description: ptr("First draft of psychology essay"), DueDate: helpers.Date("2024-03-25"), Priority: appModels.PriorityLow, Completed: false, CourseID: ptr("course5")},
	}
}

// Assignments returns the fixture assignments, all on course1
func Assignments() []appModels.Assignment {
	return []appModels.Assignment{
		{ID: "assign1", CourseID: "course1", Title: "Assignment 3: Data Visualization", Description: ptr("Create interactive charts using Python"), DueDate: helpers.Date("2024-03-18"), Status: appModels.StatusPending, Grade: nil, MaxGrade: 100},
		{ID: "assign2", CourseID: "course1", Title: "Assignment 2: Statistical Analysis", Description: ptr("Analyze dataset using statistical methods"), DueDate: helpers.Date("2024-03-04"), Status: appModels.StatusGraded, Grade: ptr(95), MaxGrade: 100},
		{ID: "assign3", CourseID: "course1", Title: "Quiz 2", Description: ptr("Statistical concepts quiz"), DueDate: helpers.Date("2024-02-28"), Status: appModels.StatusGraded, Grade: ptr(92), MaxGrade: 100},
		{ID: "assign4", CourseID: "course1", Title: "Assignment 1", Description: ptr("Introduction to data science concepts"), DueDate: helpers.Date("2024-02-20"), Status: appModels.StatusGraded, Grade: ptr(88), MaxGrade: 100},
	}
}

// LoadFixtures inserts every fixture record with its fixed id. It keeps going
// after a failure and returns all errors joined.
func LoadFixtures(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	lgr.Info().Msg("Loading fixture data...")
	var finalErr error

	for _, user := range Users() {
		hash, err := auth.HashPassword(user.Password)
		if err != nil {
			lgr.Error().Err(err).Str("userID", user.ID).Msg("Error hashing fixture password")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		user.Password = hash
		if err := repos.UserRepository.Insert(ctx, user); err != nil {
			lgr.Error().Err(err).Str("userID", user.ID).Msg("Error inserting fixture user")
			finalErr = errors.Join(finalErr, fmt.Errorf("user %s: %w", user.ID, err))
		}
	}

	for _, course := range Courses() {
		if err := repos.CourseRepository.Insert(ctx, course); err != nil {
			lgr.Error().Err(err).Str("courseID", course.ID).Msg("Error inserting fixture course")
			finalErr = errors.Join(finalErr, fmt.Errorf("course %s: %w", course.ID, err))
		}
	}

	for _, task := range Tasks() {
		if err := repos.TaskRepository.Insert(ctx, task); err != nil {
			lgr.Error().Err(err).Str("taskID", task.ID).Msg("Error inserting fixture task")
			finalErr = errors.Join(finalErr, fmt.Errorf("task %s: %w", task.ID, err))
		}
	}

	for _, assignment := range Assignments() {
		if err := repos.AssignmentRepository.Insert(ctx, assignment); err != nil {
			lgr.Error().Err(err).Str("assignmentID", assignment.ID).Msg("Error inserting fixture assignment")
			finalErr = errors.Join(finalErr, fmt.Errorf("assignment %s: %w", assignment.ID, err))
		}
	}

	lgr.Info().
		Int("users", repos.UserRepository.Count()).
		Int("courses", repos.CourseRepository.Count()).
		Int("tasks", repos.TaskRepository.Count()).
		Int("assignments", repos.AssignmentRepository.Count()).
		Msg("Fixture data loaded")
	return finalErr
}
