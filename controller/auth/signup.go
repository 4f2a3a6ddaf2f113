package auth

import (
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"taskflow/dto"
	"taskflow/model"
	"taskflow/services"
)

func SignUpController(router *gin.Engine, firestoreClient *firestore.Client) {
	router.POST("/auth/signup", func(c *gin.Context) {
		Signup(c, firestoreClient)
	})
}

func Signup(c *gin.Context, firestoreClient *firestore.Client) {
	var request dto.SignupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := context.Background()
	directory := &services.Directory{Client: firestoreClient}
	exists, err := directory.EmailExists(ctx, request.Email)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to check existing email"})
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is already registered"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to hash password"})
		return
	}

	role := request.Role
	if role == "" {
		role = model.RoleEmployee
	}

	uid := uuid.New().String()
	newUser := model.User{
		UID:       uid,
		Name:      request.Name,
		Email:     request.Email,
		Password:  string(hashedPassword),
		Role:      role,
		CreatedAt: time.Now(),
	}

	if _, err := firestoreClient.Collection("users").Doc(uid).Set(ctx, newUser); err != nil {
		c.JSON(500, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"uid":     uid,
	})
}
