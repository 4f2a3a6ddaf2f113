package task

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow/model"
	"taskflow/store"
)

// CompleteTask marks a task completed on behalf of its assignee. Admins may
// complete any task.
func CompleteTask(c *gin.Context, tasks *store.TaskStore) {
	taskID := c.Param("id")
	userID := c.MustGet("userId").(string)
	role := c.MustGet("role").(string)

	ctx := context.Background()
	current, err := tasks.Get(ctx, taskID)
	if err != nil {
		c.JSON(404, gin.H{"error": "Task not found"})
		return
	}

	if role != model.RoleAdmin && current.AssignedTo != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}
	if current.Status == model.StatusCompleted {
		c.JSON(http.StatusOK, gin.H{"message": "Task is already completed"})
		return
	}

	if err := tasks.Complete(ctx, taskID); err != nil {
		c.JSON(500, gin.H{"error": "Failed to complete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task completed successfully"})
}
