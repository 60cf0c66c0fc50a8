package controllers

import (
	"net/http"

	"project-review-api/config"
	"project-review-api/services"

	"github.com/gin-gonic/gin"
)

// GetPendingRequests lists the challenge-review retry queue for a cluster.
func GetPendingRequests(c *gin.Context) {
	cluster := c.Query("cluster")
	if cluster == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "cluster is required"})
		return
	}

	requests, err := services.NewAssignmentService(config.DB).PendingRequests(cluster)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": requests, "total": len(requests)})
}

// GetReviewerPool lists the staff available for a PMC seat in a cluster.
func GetReviewerPool(c *gin.Context) {
	cluster := c.Query("cluster")
	if cluster == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "cluster is required"})
		return
	}

	pool, err := services.NewReviewerPoolService(config.DB).AvailablePool(cluster)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": pool, "total": len(pool)})
}

// AssignBatch assigns a PMC1/PMC2 pair to a batch of pending challenge
// requests in one transaction, then notifies the students best-effort.
func AssignBatch(c *gin.Context) {
	var req struct {
		Cluster   string `json:"cluster" binding:"required"`
		BatchSize int    `json:"batch_size" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	result, err := services.NewAssignmentService(config.DB).AssignBatch(req.Cluster, req.BatchSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	services.NotifyAssignment(config.DB, result)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}
