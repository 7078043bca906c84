package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/lmsdash/internal/app/services"
	"github.com/yigit/lmsdash/internal/middleware"
)

// CourseController handles course and course assignment endpoints
type CourseController struct {
	courseService     services.CourseService
	assignmentService services.AssignmentService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService, assignmentService services.AssignmentService) *CourseController {
	return &CourseController{
		courseService:     courseService,
		assignmentService: assignmentService,
	}
}

// GetAllCourses retrieves all courses
// @Summary List courses
// @Description Returns every course in catalogue order
// @Tags courses
// @Produce json
// @Success 200 {array} models.Course
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch courses"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch courses")
		return
	}

	ctx.JSON(http.StatusOK, courses)
}

// GetCourseByID retrieves a course by ID
// @Summary Get course details
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} models.Course
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch course"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	course, err := c.courseService.GetCourseByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch course")
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// GetCourseAssignments lists the assignments of a course
// @Summary List course assignments
// @Description Returns the assignments of a course; an empty array when it has none
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {array} models.Assignment
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch assignments"
// @Router /courses/{id}/assignments [get]
func (c *CourseController) GetCourseAssignments(ctx *gin.Context) {
	assignments, err := c.assignmentService.GetAssignmentsByCourse(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch assignments")
		return
	}

	ctx.JSON(http.StatusOK, assignments)
}
