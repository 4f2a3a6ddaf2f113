package task

import (
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"taskflow/dto"
	"taskflow/model"
	"taskflow/services"
	"taskflow/store"
)

var statusRank = map[string]int{
	model.StatusPending:    0,
	model.StatusInProgress: 1,
	model.StatusCompleted:  2,
}

func UpdateTask(c *gin.Context, tasks *store.TaskStore, directory *services.Directory) {
	taskID := c.Param("id")
	userID := c.MustGet("userId").(string)
	role := c.MustGet("role").(string)

	var request dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ctx := context.Background()
	current, err := tasks.Get(ctx, taskID)
	if err != nil {
		c.JSON(404, gin.H{"error": "Task not found"})
		return
	}

	var updates []firestore.Update

	if role != model.RoleAdmin {
		// Assignees may only move their own task's status forward.
		if current.AssignedTo != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		if request.Status == nil ||
			request.Title != nil || request.Description != nil ||
			request.AssignedTo != nil || request.AssignedToName != nil ||
			request.Priority != nil || request.DueDate != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only status updates are allowed"})
			return
		}
		if statusRank[*request.Status] <= statusRank[current.Status] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status can only move toward completed"})
			return
		}
	}

	if request.Title != nil {
		updates = append(updates, firestore.Update{Path: "title", Value: *request.Title})
	}
	if request.Description != nil {
		updates = append(updates, firestore.Update{Path: "description", Value: *request.Description})
	}
	if request.AssignedTo != nil {
		assignee, err := directory.GetByID(ctx, *request.AssignedTo)
		if err != nil {
			c.JSON(404, gin.H{"error": "Assignee not found"})
			return
		}
		updates = append(updates,
			firestore.Update{Path: "assignedTo", Value: assignee.UID},
			firestore.Update{Path: "assignedToName", Value: assignee.Name})
	}
	if request.Priority != nil {
		updates = append(updates, firestore.Update{Path: "priority", Value: *request.Priority})
	}
	if request.DueDate != nil {
		if *request.DueDate == "" {
			updates = append(updates, firestore.Update{Path: "dueDate", Value: firestore.Delete})
		} else {
			parsed, err := time.Parse(dueDateLayout, *request.DueDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dueDate format, expected YYYY-MM-DD"})
				return
			}
			updates = append(updates, firestore.Update{Path: "dueDate", Value: parsed})
		}
	}
	if request.Status != nil {
		updates = append(updates, firestore.Update{Path: "status", Value: *request.Status})
		if *request.Status == model.StatusCompleted && current.Status != model.StatusCompleted {
			updates = append(updates, firestore.Update{Path: "completedAt", Value: firestore.ServerTimestamp})
		}
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	if err := tasks.Update(ctx, taskID, updates); err != nil {
		c.JSON(500, gin.H{"error": "Failed to update task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task updated successfully"})
}
