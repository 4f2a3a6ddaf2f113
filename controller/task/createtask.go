package task

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskflow/dto"
	"taskflow/model"
	"taskflow/services"
	"taskflow/store"
)

const dueDateLayout = "2006-01-02"

func CreateTask(c *gin.Context, tasks *store.TaskStore, directory *services.Directory) {
	var request dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ctx := context.Background()

	// The assignee must exist before the task does; assignedToName is only a
	// display cache of the directory record.
	assignee, err := directory.GetByID(ctx, request.AssignedTo)
	if err != nil {
		c.JSON(404, gin.H{"error": "Assignee not found"})
		return
	}

	var dueDate *time.Time
	if request.DueDate != "" {
		parsed, err := time.Parse(dueDateLayout, request.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dueDate format, expected YYYY-MM-DD"})
			return
		}
		dueDate = &parsed
	}

	newTask := model.Task{
		Title:          request.Title,
		Description:    request.Description,
		AssignedTo:     request.AssignedTo,
		AssignedToName: assignee.Name,
		Priority:       request.Priority,
		Status:         request.Status,
		DueDate:        dueDate,
	}
	if newTask.Priority == "" {
		newTask.Priority = model.PriorityMedium
	}
	if newTask.Status == "" {
		newTask.Status = model.StatusPending
	}

	taskID, err := tasks.Create(ctx, newTask)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"taskID":  taskID,
	})
}
