package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abdullah-housing/housing-backend/models"
)

const plotsCollection = "plot"

// PlotInput is the request body for creating a plot listing.
type PlotInput struct {
	PlotNo string   `json:"plot_no" binding:"required"`
	Size   string   `json:"size" binding:"required"`
	Sector string   `json:"sector"`
	Price  *float64 `json:"price" binding:"omitempty,gte=0"`
	Status string   `json:"status" binding:"omitempty,oneof=available booked sold"`
}

// CreatePlot persists a new plot record. A negative price is rejected by
// binding before anything is written.
func (h *ContentController) CreatePlot(c *gin.Context) {
	var input PlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Status == "" {
		input.Status = "available"
	}

	ctx, cancel := requestContext()
	defer cancel()

	plot := models.Plot{
		PlotNo: input.PlotNo,
		Size:   input.Size,
		Sector: input.Sector,
		Price:  input.Price,
		Status: input.Status,
	}

	id, err := h.Store.CreateDocument(ctx, plotsCollection, plot)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create plot"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"_id": id, "message": "Plot created"})
}

// ListPlots returns up to ?limit= plot records (default 50), optionally
// filtered by exact ?status= match.
func (h *ContentController) ListPlots(c *gin.Context) {
	limit := int64(50)
	if val := c.Query("limit"); val != "" {
		if n, err := strconv.ParseInt(val, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	filter := map[string]any{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	ctx, cancel := requestContext()
	defer cancel()

	docs, err := h.Store.GetDocuments(ctx, plotsCollection, filter, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch plots"})
		return
	}

	c.JSON(http.StatusOK, docs)
}
