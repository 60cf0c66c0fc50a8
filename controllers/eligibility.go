package controllers

import (
	"net/http"
	"strconv"

	"project-review-api/config"
	"project-review-api/models"
	"project-review-api/services"
	"project-review-api/utils"

	"github.com/gin-gonic/gin"
)

// GetEligibility answers whether a student may submit an optional or
// challenge review request. The check is read-only; submission re-runs
// it inside its own transaction.
func GetEligibility(c *gin.Context) {
	studentRegNo := c.Param("studentId")
	semester, err := strconv.Atoi(c.Param("semester"))
	if err != nil || !utils.ValidateSemester(semester) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid semester"})
		return
	}
	reviewType := c.Param("reviewType")

	mode := c.DefaultQuery("mode", models.ModeOptional)

	result, err := services.NewEligibilityService(config.DB).
		CheckEligibility(studentRegNo, semester, reviewType, mode)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}
