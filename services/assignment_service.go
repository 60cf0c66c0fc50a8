package services

import (
	"fmt"
	"time"

	"project-review-api/models"

	"gorm.io/gorm"
)

// ReviewerPair is the PMC1/PMC2 pair chosen for a batch. One pair
// serves every request in the batch.
type ReviewerPair struct {
	PMC1 models.Staff `json:"pmc1"`
	PMC2 models.Staff `json:"pmc2"`
}

// BatchResult reports the outcome of one AssignBatch call.
type BatchResult struct {
	AssignedCount    int           `json:"assigned_count"`
	Remaining        int           `json:"remaining"`
	Pair             *ReviewerPair `json:"pair,omitempty"`
	AssignedStudents []string      `json:"assigned_students,omitempty"`
	Message          string        `json:"message,omitempty"`
}

// AssignmentService runs the challenge-review batch assignment: pick a
// reviewer pair for a cluster and work through the retry queue of
// pending requests inside a single transaction.
//
// Concurrent calls for the same cluster are not mutually excluded;
// requests are re-selected inside the transaction, which narrows but
// does not close the race (see DESIGN.md).
type AssignmentService struct {
	db     *gorm.DB
	access *AccessService
	pool   *ReviewerPoolService
}

func NewAssignmentService(db *gorm.DB) *AssignmentService {
	return &AssignmentService{
		db:     db,
		access: NewAccessService(db),
		pool:   NewReviewerPoolService(db),
	}
}

// pendingScope filters review_requests to the challenge retry queue for
// cluster: rejected in a prior round and still not reviewed.
func pendingScope(db *gorm.DB, cluster, reviewType string) *gorm.DB {
	return db.Model(&models.ReviewRequest{}).
		Where("cluster = ? AND mode = ? AND review_type = ?", cluster, models.ModeChallenge, reviewType).
		Where("request_status = ? AND review_status = ?", models.RequestStatusRejected, models.ReviewNotCompleted)
}

// PendingRequests lists the current retry queue for cluster.
func (s *AssignmentService) PendingRequests(cluster string) ([]models.ReviewRequest, error) {
	if cluster == "" {
		return nil, ErrValidation
	}
	reviewType, err := s.access.EnabledReviewType(models.ModeChallenge)
	if err != nil {
		return nil, err
	}

	var requests []models.ReviewRequest
	if err := pendingScope(s.db, cluster, reviewType).
		Order("request_id ASC").
		Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed to load pending requests: %w", err)
	}
	return requests, nil
}

// AssignBatch assigns one PMC1/PMC2 pair to up to batchSize pending
// requests in cluster. All writes happen in one transaction; any
// failure rolls the whole batch back.
func (s *AssignmentService) AssignBatch(cluster string, batchSize int) (*BatchResult, error) {
	if cluster == "" || batchSize <= 0 {
		return nil, ErrValidation
	}

	reviewType, err := s.access.EnabledReviewType(models.ModeChallenge)
	if err != nil {
		return nil, err
	}

	var pendingCount int64
	if err := pendingScope(s.db, cluster, reviewType).Count(&pendingCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count pending requests: %w", err)
	}
	if pendingCount == 0 {
		// Nothing to do; the reviewer pool is not consulted.
		return &BatchResult{Message: "no pending requests for cluster"}, nil
	}

	pool, err := s.pool.AvailablePool(cluster)
	if err != nil {
		return nil, err
	}
	if len(pool) < 2 {
		return nil, ErrInsufficientStaff
	}

	// Most senior from the front, most junior from the back. The pool
	// has at least two members, so the picks cannot collide; the guard
	// stays for pools mutated between resolve and pick.
	pmc1 := pool[0]
	pmc2 := pool[len(pool)-1]
	if pmc2.RegNo == pmc1.RegNo {
		pmc2 = pool[1]
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	// Re-select inside the transaction so requests approved by a
	// concurrent batch are not assigned twice.
	var requests []models.ReviewRequest
	if err := pendingScope(tx, cluster, reviewType).
		Order("request_id ASC").
		Limit(batchSize).
		Find(&requests).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to load pending requests: %w", err)
	}

	now := time.Now()
	assigned := make([]string, 0, len(requests))
	for _, req := range requests {
		assignment := models.ReviewerAssignment{
			RequestID:    req.RequestID,
			StudentRegNo: req.StudentRegNo,
			TeamID:       req.TeamID,
			ProjectID:    req.ProjectID,
			Semester:     req.Semester,
			ReviewType:   req.ReviewType,
			Cluster:      req.Cluster,
			PMC1RegNo:    pmc1.RegNo,
			PMC2RegNo:    pmc2.RegNo,
			CreateAt:     &now,
		}
		if err := tx.Create(&assignment).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to create assignment for request %d: %w", req.RequestID, err)
		}

		if err := tx.Model(&models.ReviewRequest{}).
			Where("request_id = ?", req.RequestID).
			Updates(map[string]interface{}{
				"request_status": models.RequestStatusApproved,
				"update_at":      now,
			}).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to update request %d: %w", req.RequestID, err)
		}

		assigned = append(assigned, req.StudentRegNo)
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to commit batch: %w", err)
	}

	return &BatchResult{
		AssignedCount:    len(requests),
		Remaining:        int(pendingCount) - len(requests),
		Pair:             &ReviewerPair{PMC1: pmc1, PMC2: pmc2},
		AssignedStudents: assigned,
	}, nil
}
