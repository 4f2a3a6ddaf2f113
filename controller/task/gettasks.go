package task

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow/model"
	"taskflow/store"
)

// ListTasks returns the viewer's task list, newest first. Admins see every
// task; employees only their own.
func ListTasks(c *gin.Context, tasks *store.TaskStore) {
	userID := c.MustGet("userId").(string)
	role := c.MustGet("role").(string)

	ctx := context.Background()
	var (
		list []model.Task
		err  error
	)
	if role == model.RoleAdmin {
		list, err = tasks.GetAll(ctx)
	} else {
		list, err = tasks.GetByAssignee(ctx, userID)
	}
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to load tasks"})
		return
	}
	if list == nil {
		list = []model.Task{}
	}

	c.JSON(http.StatusOK, gin.H{"tasks": list})
}
