package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdullah-housing/housing-backend/models"
	"github.com/abdullah-housing/housing-backend/utils"
)

const usersCollection = "user"

// AuthController handles registration and login.
type AuthController struct {
	Store DocumentStore
}

// RegisterInput request body for registration
type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginInput request body for login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new user. Registering an email that already exists
// fails; the check is a read-then-write, not a store-level constraint.
func (a *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	existing, err := a.Store.GetDocuments(ctx, usersCollection, map[string]any{"email": input.Email}, 1)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if len(existing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return
	}

	user := models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: utils.Hash(input.Password),
		IsActive:     true,
	}

	id, err := a.Store.CreateDocument(ctx, usersCollection, user)
	if err != nil {
		log.Printf("Register: insert failed email=%s err=%v", input.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registered successfully",
		"token":   utils.Token(input.Email, id),
		"user": gin.H{
			"_id":   id,
			"name":  input.Name,
			"email": input.Email,
		},
	})
}

// Login authenticates by email and password hash. A missing user and a
// wrong password produce the same response.
func (a *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	users, err := a.Store.GetDocuments(ctx, usersCollection, map[string]any{"email": input.Email}, 1)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if len(users) == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	user := users[0]
	hash, _ := user["password_hash"].(string)
	if hash != utils.Hash(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	id, _ := user["_id"].(string)
	name, _ := user["name"].(string)
	email, _ := user["email"].(string)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   utils.Token(email, id),
		"user": gin.H{
			"_id":   id,
			"name":  name,
			"email": email,
		},
	})
}
