package services

import (
	"fmt"
	"sort"

	"project-review-api/models"

	"gorm.io/gorm"
)

// ReviewerPoolService finds staff who can still take a PMC1/PMC2 seat.
type ReviewerPoolService struct {
	db *gorm.DB
}

func NewReviewerPoolService(db *gorm.DB) *ReviewerPoolService {
	return &ReviewerPoolService{db: db}
}

// AvailablePool returns the staff of cluster who do not already hold a
// PMC1 or PMC2 seat in any reviewer assignment, most senior first.
// Ties within a rank keep the database order (stable sort).
func (s *ReviewerPoolService) AvailablePool(cluster string) ([]models.Staff, error) {
	if cluster == "" {
		return nil, ErrValidation
	}
	return s.availablePool(s.db, cluster)
}

func (s *ReviewerPoolService) availablePool(db *gorm.DB, cluster string) ([]models.Staff, error) {
	var pool []models.Staff
	err := db.Model(&models.Staff{}).
		Joins("LEFT JOIN reviewer_assignments ra ON ra.pmc1_reg_no = staff.reg_no OR ra.pmc2_reg_no = staff.reg_no").
		Where("staff.cluster = ? AND staff.delete_at IS NULL AND ra.assignment_id IS NULL", cluster).
		Order("staff.staff_id ASC").
		Find(&pool).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load reviewer pool: %w", err)
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return SeniorityRank(pool[i].Designation) < SeniorityRank(pool[j].Designation)
	})
	return pool, nil
}
