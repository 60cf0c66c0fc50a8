package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"project-review-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestService handles optional/challenge review request submission
// and the guide/sub-expert/admin decision on it.
type RequestService struct {
	db          *gorm.DB
	eligibility *EligibilityService
}

func NewRequestService(db *gorm.DB) *RequestService {
	return &RequestService{db: db, eligibility: NewEligibilityService(db)}
}

// SubmitInput is a student's review request submission.
type SubmitInput struct {
	StudentRegNo string
	Semester     int
	ReviewType   string
	Mode         string
	Reason       string
}

// Submit creates a review request. The eligibility checks run inside
// the same transaction as the insert, so a request slipping in between
// check and write is caught; the unique index on
// (student, semester, mode) backstops the race across instances.
func (s *RequestService) Submit(in *SubmitInput) (*models.ReviewRequest, error) {
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return nil, ErrValidation
	}

	var student models.Student
	if err := s.db.Where("reg_no = ?", in.StudentRegNo).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load student: %w", err)
	}
	if student.TeamID == nil {
		return nil, fmt.Errorf("%w: student has no team", ErrValidation)
	}

	var project models.Project
	if err := s.db.Where("team_id = ?", *student.TeamID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: team has no project", ErrValidation)
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	var request models.ReviewRequest
	err := s.db.Transaction(func(tx *gorm.DB) error {
		check, err := s.eligibility.checkWithin(tx, in.StudentRegNo, in.Semester, in.ReviewType, in.Mode)
		if err != nil {
			return err
		}
		if !check.Eligible {
			switch check.Reason {
			case ReasonFeatureDisabled:
				return ErrFeatureDisabled
			case ReasonDuplicateRequest:
				return ErrDuplicateRequest
			default:
				return fmt.Errorf("%w: %s", ErrValidation, check.Reason)
			}
		}

		now := time.Now()
		request = models.ReviewRequest{
			Reference:     uuid.NewString(),
			StudentRegNo:  in.StudentRegNo,
			Semester:      in.Semester,
			Mode:          in.Mode,
			TeamID:        *student.TeamID,
			ProjectID:     project.ProjectID,
			Cluster:       student.Cluster,
			ReviewType:    in.ReviewType,
			Reason:        reason,
			RequestStatus: models.RequestStatusPending,
			ReviewStatus:  models.ReviewNotCompleted,
			CreateAt:      &now,
			UpdateAt:      &now,
		}
		if err := tx.Create(&request).Error; err != nil {
			if isDuplicateKeyError(err) {
				return ErrDuplicateRequest
			}
			return fmt.Errorf("failed to create request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// Decide moves a pending request to approved or rejected.
func (s *RequestService) Decide(requestID int, approve bool, decidedBy string) (*models.ReviewRequest, error) {
	var request models.ReviewRequest
	if err := s.db.Where("request_id = ?", requestID).First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load request: %w", err)
	}
	if request.RequestStatus != models.RequestStatusPending {
		return nil, fmt.Errorf("%w: request already decided", ErrValidation)
	}

	status := models.RequestStatusRejected
	if approve {
		status = models.RequestStatusApproved
	}
	now := time.Now()
	if err := s.db.Model(&models.ReviewRequest{}).
		Where("request_id = ?", requestID).
		Updates(map[string]interface{}{
			"request_status": status,
			"update_at":      now,
		}).Error; err != nil {
		return nil, fmt.Errorf("failed to update request: %w", err)
	}

	request.RequestStatus = status
	request.UpdateAt = &now
	return &request, nil
}

// ListForStudent returns the student's own requests, newest first.
func (s *RequestService) ListForStudent(studentRegNo string) ([]models.ReviewRequest, error) {
	var requests []models.ReviewRequest
	if err := s.db.Where("student_reg_no = ?", studentRegNo).
		Order("request_id DESC").
		Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return requests, nil
}

// List returns requests matching the optional cluster/status/mode filters.
func (s *RequestService) List(cluster, status, mode string) ([]models.ReviewRequest, error) {
	query := s.db.Model(&models.ReviewRequest{})
	if cluster != "" {
		query = query.Where("cluster = ?", cluster)
	}
	if status != "" {
		query = query.Where("request_status = ?", status)
	}
	if mode != "" {
		query = query.Where("mode = ?", mode)
	}

	var requests []models.ReviewRequest
	if err := query.Order("request_id DESC").Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return requests, nil
}

// isDuplicateKeyError matches MySQL duplicate-entry errors without
// importing the driver error types everywhere.
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}
