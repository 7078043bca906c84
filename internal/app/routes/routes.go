package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yigit/lmsdash/internal/app/controllers"
	"github.com/yigit/lmsdash/internal/pkg/websocket"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	taskController *controllers.TaskController,
	userController *controllers.UserController,
	eventsHandler *websocket.Handler,
) {
	api := router.Group("/api")

	courses := api.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.GET("/:id/assignments", courseController.GetCourseAssignments)
	}

	tasks := api.Group("/tasks")
	{
		tasks.GET("", taskController.GetTasks)
		tasks.POST("", taskController.CreateTask)
		tasks.PATCH("/:id", taskController.UpdateTask)
	}

	api.GET("/user", userController.GetCurrentUser)

	// Change feed is optional
	if eventsHandler != nil {
		api.GET("/events", eventsHandler.HandleConnection)
	}

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
