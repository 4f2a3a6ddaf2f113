package task

import (
	"github.com/gin-gonic/gin"

	"taskflow/middleware"
	"taskflow/realtime"
	"taskflow/services"
	"taskflow/store"
)

func TaskController(router *gin.Engine, tasks *store.TaskStore, directory *services.Directory, sync *realtime.Sync) {
	routes := router.Group("/tasks", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			ListTasks(c, tasks)
		})
		routes.GET("/stream", func(c *gin.Context) {
			StreamTasks(c, sync)
		})
		routes.POST("", middleware.AdminMiddleware(), func(c *gin.Context) {
			CreateTask(c, tasks, directory)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateTask(c, tasks, directory)
		})
		routes.DELETE("/:id", middleware.AdminMiddleware(), func(c *gin.Context) {
			DeleteTask(c, tasks)
		})
		routes.POST("/:id/complete", func(c *gin.Context) {
			CompleteTask(c, tasks)
		})
	}
}
