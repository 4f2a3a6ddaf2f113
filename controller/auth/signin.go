package auth

import (
	"context"
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"taskflow/dto"
	"taskflow/services"
)

func SignInController(router *gin.Engine, firestoreClient *firestore.Client) {
	router.POST("/auth/signin", func(c *gin.Context) {
		Signin(c, firestoreClient)
	})
}

func Signin(c *gin.Context, firestoreClient *firestore.Client) {
	var request dto.SigninRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := context.Background()
	directory := &services.Directory{Client: firestoreClient}
	user, err := directory.GetByEmail(ctx, request.Email)
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	accessToken, err := services.CreateAccessToken(user.UID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create access token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken": accessToken,
		"uid":         user.UID,
		"name":        user.Name,
		"role":        user.Role,
	})
}
