package controllers

import (
	"net/http"
	"strconv"

	"project-review-api/config"
	"project-review-api/models"
	"project-review-api/utils"

	"github.com/gin-gonic/gin"
)

// GetTeam returns a team with members and project.
func GetTeam(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil || teamID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid team ID"})
		return
	}

	var team models.Team
	if err := config.DB.Preload("Members").Preload("Project").
		Where("team_id = ?", teamID).
		First(&team).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Team not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": team})
}

// GetStudent returns a student by registration number.
func GetStudent(c *gin.Context) {
	regNo := c.Param("regNo")
	if !utils.ValidateRegNo(regNo) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid registration number"})
		return
	}

	var student models.Student
	if err := config.DB.Preload("Team").
		Where("reg_no = ?", regNo).
		First(&student).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Student not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": student})
}
