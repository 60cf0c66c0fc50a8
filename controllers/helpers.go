package controllers

import (
	"errors"
	"log"
	"net/http"

	"project-review-api/services"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service sentinel errors to the JSON envelope.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, services.ErrFeatureDisabled):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, services.ErrDuplicateRequest):
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, services.ErrInsufficientStaff):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, services.ErrNoEnabledReviewType):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	default:
		log.Printf("unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
	}
}

// callerRegNo returns the authenticated caller's registration number.
func callerRegNo(c *gin.Context) string {
	if v, ok := c.Get("regNo"); ok {
		if regNo, ok := v.(string); ok {
			return regNo
		}
	}
	return ""
}
