package controllers

import (
	"net/http"

	"project-review-api/config"
	"project-review-api/services"

	"github.com/gin-gonic/gin"
)

// GetAccessToggles lists the review submission toggles.
func GetAccessToggles(c *gin.Context) {
	toggles, err := services.NewAccessService(config.DB).ListToggles()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": toggles})
}

// SetAccessToggle enables or disables submission for a (mode, review type).
func SetAccessToggle(c *gin.Context) {
	var req struct {
		Mode       string `json:"mode" binding:"required"`
		ReviewType string `json:"review_type" binding:"required"`
		Enabled    *bool  `json:"enabled" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := services.NewAccessService(config.DB).
		SetToggle(req.Mode, req.ReviewType, *req.Enabled, callerRegNo(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Access toggle updated"})
}
