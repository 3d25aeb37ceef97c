package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NOCInfo returns the static NOC and licensing payload. No store access;
// the response is identical on every call.
func (h *ContentController) NOCInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title":    "NOC & Licenses",
		"overview": "Official No Objection Certificates and licensing details for Abdullah Housing.",
		"documents": []gin.H{
			{"name": "Town Planning Approval", "status": "Approved", "ref": "TP-2024-0192"},
			{"name": "Environmental Clearance", "status": "Approved", "ref": "ENV-2024-0045"},
			{"name": "Water & Sewerage NOC", "status": "In Progress", "ref": "WS-2025-0109"},
		},
	})
}

// MapInfo returns the static master-plan payload.
func (h *ContentController) MapInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title":       "Abdullah Housing Master Plan",
		"map_image":   "https://images.unsplash.com/photo-1502920917128-1aa500764cbd?q=80&w=1400&auto=format&fit=crop",
		"description": "Zoomable high-level map of the entire society with sectors, roads and amenities.",
	})
}
