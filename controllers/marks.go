package controllers

import (
	"net/http"
	"strconv"

	"project-review-api/config"
	"project-review-api/models"
	"project-review-api/services"

	"github.com/gin-gonic/gin"
)

// GetAverageMarks returns the guide/sub-expert average for one student
// and review, or null when either evaluator's row is missing.
func GetAverageMarks(c *gin.Context) {
	studentRegNo := c.Param("studentId")
	teamID, err := strconv.Atoi(c.Param("teamId"))
	if err != nil || teamID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid team ID"})
		return
	}
	semester, err := strconv.Atoi(c.Query("semester"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid semester"})
		return
	}
	reviewType := c.Query("review_type")

	result, err := services.NewMarksService(config.DB).
		AverageMarks(studentRegNo, teamID, semester, reviewType)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

// SubmitMarks records one evaluator's rubric. The insert is terminal;
// a second submission for the same review is rejected with 409.
func SubmitMarks(c *gin.Context) {
	var sub services.MarksSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	regNo := callerRegNo(c)
	if regNo == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "User context missing"})
		return
	}

	record, err := services.NewMarksService(config.DB).SubmitMarks(&sub, regNo)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": record})
}

// GetStudentMarks returns the stored marks rows for a student/review
// across both evaluator roles.
func GetStudentMarks(c *gin.Context) {
	studentRegNo := c.Param("studentId")
	teamID, err := strconv.Atoi(c.Query("team_id"))
	if err != nil || teamID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid team ID"})
		return
	}
	semester, err := strconv.Atoi(c.Query("semester"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid semester"})
		return
	}
	reviewType := c.Query("review_type")
	mode := c.DefaultQuery("mode", services.ReviewModeRegular)
	if mode != services.ReviewModeRegular && mode != models.ModeOptional && mode != models.ModeChallenge {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid mode"})
		return
	}

	records, err := services.NewMarksService(config.DB).
		MarksForStudent(studentRegNo, teamID, semester, reviewType, mode)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": records})
}
