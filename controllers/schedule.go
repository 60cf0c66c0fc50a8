package controllers

import (
	"net/http"
	"strconv"

	"project-review-api/config"
	"project-review-api/services"

	"github.com/gin-gonic/gin"
)

// CreateSchedule books a review slot. Optional/challenge slots carry a
// request_id pointing at an approved request.
func CreateSchedule(c *gin.Context) {
	var in services.ScheduleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	schedule, err := services.NewScheduleService(config.DB).Create(&in)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	services.NotifySchedule(config.DB, schedule)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": schedule})
}

// GetSchedule returns one schedule with its derived overall status.
func GetSchedule(c *gin.Context) {
	scheduleID, err := strconv.Atoi(c.Param("id"))
	if err != nil || scheduleID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid schedule ID"})
		return
	}

	schedule, overall, err := services.NewScheduleService(config.DB).Get(scheduleID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": schedule, "overall_status": overall})
}

// ListSchedules lists schedules, optionally filtered by cluster and mode.
func ListSchedules(c *gin.Context) {
	schedules, err := services.NewScheduleService(config.DB).
		List(c.Query("cluster"), c.Query("review_mode"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": schedules, "total": len(schedules)})
}

// UpdateReviewStatus sets one evaluator role's completion status on a
// schedule and reports the recomputed overall status.
func UpdateReviewStatus(c *gin.Context) {
	scheduleID, err := strconv.Atoi(c.Param("id"))
	if err != nil || scheduleID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid schedule ID"})
		return
	}

	var req struct {
		Role   string `json:"role" binding:"required"`
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	schedule, overall, err := services.NewScheduleService(config.DB).
		UpdateRoleStatus(scheduleID, req.Role, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": schedule, "overall_status": overall})
}
