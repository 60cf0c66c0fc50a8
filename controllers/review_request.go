package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"project-review-api/config"
	"project-review-api/services"
	"project-review-api/utils"

	"github.com/gin-gonic/gin"
)

// CreateReviewRequest lets the authenticated student submit an optional
// or challenge review request.
func CreateReviewRequest(c *gin.Context) {
	var req struct {
		Semester   int    `json:"semester" binding:"required"`
		ReviewType string `json:"review_type" binding:"required"`
		Mode       string `json:"mode" binding:"required"`
		Reason     string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if !utils.ValidateSemester(req.Semester) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid semester"})
		return
	}

	regNo := callerRegNo(c)
	if regNo == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "User context missing"})
		return
	}

	request, err := services.NewRequestService(config.DB).Submit(&services.SubmitInput{
		StudentRegNo: regNo,
		Semester:     req.Semester,
		ReviewType:   req.ReviewType,
		Mode:         req.Mode,
		Reason:       utils.SanitizeInput(req.Reason),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": request})
}

// GetMyReviewRequests lists the caller's own requests.
func GetMyReviewRequests(c *gin.Context) {
	regNo := callerRegNo(c)
	if regNo == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "User context missing"})
		return
	}

	requests, err := services.NewRequestService(config.DB).ListForStudent(regNo)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": requests, "total": len(requests)})
}

// ListReviewRequests is the admin listing with cluster/status/mode filters.
func ListReviewRequests(c *gin.Context) {
	requests, err := services.NewRequestService(config.DB).
		List(c.Query("cluster"), c.Query("status"), c.Query("mode"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": requests, "total": len(requests)})
}

// DecideReviewRequest approves or rejects a pending request.
func DecideReviewRequest(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Param("id"))
	if err != nil || requestID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request ID"})
		return
	}

	var req struct {
		Decision string `json:"decision" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	decision := strings.ToLower(strings.TrimSpace(req.Decision))
	if decision != "approve" && decision != "reject" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Decision must be either 'approve' or 'reject'"})
		return
	}

	request, err := services.NewRequestService(config.DB).
		Decide(requestID, decision == "approve", callerRegNo(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": request})
}
