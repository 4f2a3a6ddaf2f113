package user

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow/dto"
	"taskflow/middleware"
	"taskflow/model"
	"taskflow/services"
)

func UserController(router *gin.Engine, directory *services.Directory) {
	routes := router.Group("/users", middleware.AccessTokenMiddleware())
	{
		routes.GET("/employees", middleware.AdminMiddleware(), func(c *gin.Context) {
			ListEmployees(c, directory)
		})
	}
}

// ListEmployees returns the employee roster used to populate assignment
// forms.
func ListEmployees(c *gin.Context, directory *services.Directory) {
	ctx := context.Background()
	employees, err := directory.QueryByRole(ctx, model.RoleEmployee)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to load employees"})
		return
	}

	responses := make([]dto.UserResponse, 0, len(employees))
	for _, u := range employees {
		responses = append(responses, dto.UserResponse{
			UID:   u.UID,
			Name:  u.Name,
			Email: u.Email,
			Role:  u.Role,
		})
	}

	c.JSON(http.StatusOK, gin.H{"employees": responses})
}
