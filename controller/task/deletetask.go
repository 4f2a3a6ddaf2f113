package task

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow/store"
)

func DeleteTask(c *gin.Context, tasks *store.TaskStore) {
	taskID := c.Param("id")

	ctx := context.Background()
	if _, err := tasks.Get(ctx, taskID); err != nil {
		c.JSON(404, gin.H{"error": "Task not found"})
		return
	}

	if err := tasks.Delete(ctx, taskID); err != nil {
		c.JSON(500, gin.H{"error": "Failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
