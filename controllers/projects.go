package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abdullah-housing/housing-backend/models"
)

const projectsCollection = "project"

// ContentController handles project and plot listings plus the static
// informational endpoints.
type ContentController struct {
	Store DocumentStore
}

// ProjectInput is the request body for creating a project.
type ProjectInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,oneof=upcoming ongoing completed"`
	CoverImage  string `json:"cover_image"`
}

// CreateProject persists a new project record.
func (h *ContentController) CreateProject(c *gin.Context) {
	var input ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Status == "" {
		input.Status = "upcoming"
	}

	ctx, cancel := requestContext()
	defer cancel()

	project := models.Project{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		CoverImage:  input.CoverImage,
	}

	id, err := h.Store.CreateDocument(ctx, projectsCollection, project)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create project"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"_id": id, "message": "Project created"})
}

// ListProjects returns up to ?limit= project records (default 20), ids
// rendered as plain strings.
func (h *ContentController) ListProjects(c *gin.Context) {
	limit := int64(20)
	if val := c.Query("limit"); val != "" {
		if n, err := strconv.ParseInt(val, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	ctx, cancel := requestContext()
	defer cancel()

	docs, err := h.Store.GetDocuments(ctx, projectsCollection, map[string]any{}, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch projects"})
		return
	}

	c.JSON(http.StatusOK, docs)
}
