package services

import (
	"errors"
	"fmt"

	"project-review-api/models"

	"gorm.io/gorm"
)

// AccessService reads and updates the admin access toggles. Toggles are
// always read from the database, never cached, so a flag flipped by
// another instance takes effect on the next call.
type AccessService struct {
	db *gorm.DB
}

func NewAccessService(db *gorm.DB) *AccessService {
	return &AccessService{db: db}
}

// IsEnabled reports whether submission for (mode, reviewType) is open.
// A missing toggle row counts as disabled.
func (s *AccessService) IsEnabled(mode, reviewType string) (bool, error) {
	var toggle models.AdminAccessToggle
	err := s.db.Where("mode = ? AND review_type = ?", mode, reviewType).
		First(&toggle).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load access toggle: %w", err)
	}
	return toggle.Enabled, nil
}

// EnabledReviewType returns the review type currently enabled for mode.
// When several rows are enabled at once the lowest toggle id wins; the
// pick is deterministic but the ambiguity is a known product gap.
func (s *AccessService) EnabledReviewType(mode string) (string, error) {
	var toggle models.AdminAccessToggle
	err := s.db.Where("mode = ? AND enabled = ?", mode, true).
		Order("toggle_id ASC").
		First(&toggle).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNoEnabledReviewType
	}
	if err != nil {
		return "", fmt.Errorf("failed to load access toggle: %w", err)
	}
	return toggle.ReviewType, nil
}

// ListToggles returns all toggle rows for the admin screen.
func (s *AccessService) ListToggles() ([]models.AdminAccessToggle, error) {
	var toggles []models.AdminAccessToggle
	if err := s.db.Order("toggle_id ASC").Find(&toggles).Error; err != nil {
		return nil, fmt.Errorf("failed to list access toggles: %w", err)
	}
	return toggles, nil
}

// SetToggle upserts the toggle for (mode, reviewType).
func (s *AccessService) SetToggle(mode, reviewType string, enabled bool, updatedBy string) error {
	if !validMode(mode) || !validReviewType(reviewType) {
		return ErrValidation
	}

	var toggle models.AdminAccessToggle
	err := s.db.Where("mode = ? AND review_type = ?", mode, reviewType).
		First(&toggle).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		toggle = models.AdminAccessToggle{
			Mode:       mode,
			ReviewType: reviewType,
			Enabled:    enabled,
			UpdatedBy:  &updatedBy,
		}
		if err := s.db.Create(&toggle).Error; err != nil {
			return fmt.Errorf("failed to create access toggle: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load access toggle: %w", err)
	}

	if err := s.db.Model(&models.AdminAccessToggle{}).
		Where("toggle_id = ?", toggle.ToggleID).
		Updates(map[string]interface{}{
			"enabled":    enabled,
			"updated_by": updatedBy,
		}).Error; err != nil {
		return fmt.Errorf("failed to update access toggle: %w", err)
	}
	return nil
}

func validMode(mode string) bool {
	return mode == models.ModeOptional || mode == models.ModeChallenge
}

func validReviewType(reviewType string) bool {
	return reviewType == models.ReviewTypeFirst || reviewType == models.ReviewTypeSecond
}
