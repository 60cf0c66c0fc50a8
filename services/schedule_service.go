package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"project-review-api/models"

	"gorm.io/gorm"
)

// ScheduleService creates scheduled review slots and tracks the
// per-role completion status on them.
type ScheduleService struct {
	db *gorm.DB
}

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{db: db}
}

// ScheduleInput describes a new review slot.
type ScheduleInput struct {
	RequestID   int    `json:"request_id"`
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	Venue       string `json:"venue"`
	MeetingLink string `json:"meeting_link"`
	Mode        string `json:"mode" binding:"required"`

	// For regular reviews, which have no originating request.
	TeamID     int    `json:"team_id"`
	Semester   int    `json:"semester"`
	ReviewType string `json:"review_type"`
	ReviewMode string `json:"review_mode"`
}

// Create schedules a review. Optional/challenge slots require an
// approved request; after the insert the request's review bookkeeping
// is updated best-effort (a failure there is logged, not fatal).
func (s *ScheduleService) Create(in *ScheduleInput) (*models.ReviewSchedule, error) {
	if in.Mode != models.ScheduleModeOnline && in.Mode != models.ScheduleModeOffline {
		return nil, ErrValidation
	}
	if in.Mode == models.ScheduleModeOffline && in.Venue == "" {
		return nil, fmt.Errorf("%w: offline review needs a venue", ErrValidation)
	}
	if in.Mode == models.ScheduleModeOnline && in.MeetingLink == "" {
		return nil, fmt.Errorf("%w: online review needs a meeting link", ErrValidation)
	}
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date", ErrValidation)
	}

	schedule := models.ReviewSchedule{
		TeamID:           in.TeamID,
		Semester:         in.Semester,
		ReviewType:       in.ReviewType,
		ReviewMode:       in.ReviewMode,
		Date:             date,
		StartTime:        in.StartTime,
		EndTime:          in.EndTime,
		Mode:             in.Mode,
		FirstRoleStatus:  string(RoleStatusNotCompleted),
		SecondRoleStatus: string(RoleStatusNotCompleted),
	}
	if in.Venue != "" {
		schedule.Venue = &in.Venue
	}
	if in.MeetingLink != "" {
		schedule.MeetingLink = &in.MeetingLink
	}

	var request *models.ReviewRequest
	if in.RequestID != 0 {
		var req models.ReviewRequest
		if err := s.db.Where("request_id = ?", in.RequestID).First(&req).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to load request: %w", err)
		}
		if req.RequestStatus != models.RequestStatusApproved {
			return nil, fmt.Errorf("%w: request is not approved", ErrValidation)
		}
		request = &req
		schedule.TeamID = req.TeamID
		schedule.StudentRegNo = &req.StudentRegNo
		schedule.Semester = req.Semester
		schedule.ReviewType = req.ReviewType
		schedule.ReviewMode = req.Mode
	}
	if schedule.ReviewMode == "" {
		schedule.ReviewMode = ReviewModeRegular
	}
	if !validReviewType(schedule.ReviewType) || schedule.TeamID == 0 {
		return nil, ErrValidation
	}
	if _, ok := BandForSemester(schedule.Semester); !ok {
		return nil, ErrValidation
	}

	now := time.Now()
	schedule.CreateAt = &now
	schedule.UpdateAt = &now
	if err := s.db.Create(&schedule).Error; err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}

	// Best-effort: note on the request that its review is now booked.
	// The schedule stands even if this update fails.
	if request != nil {
		if err := s.db.Model(&models.ReviewRequest{}).
			Where("request_id = ?", request.RequestID).
			Update("update_at", now).Error; err != nil {
			log.Printf("Warning: failed to touch request %d after scheduling: %v", request.RequestID, err)
		}
	}

	return &schedule, nil
}

// UpdateRoleStatus sets one evaluator role's status on a schedule and
// returns the schedule with its recomputed overall status. Transitions
// are unconstrained: any role may move to any of the three states.
func (s *ScheduleService) UpdateRoleStatus(scheduleID int, role, status string) (*models.ReviewSchedule, OverallStatus, error) {
	if !ValidRoleStatus(status) {
		return nil, "", ErrValidation
	}

	var column string
	switch EvalRole(role) {
	case RoleGuide, RolePMC1:
		column = "first_role_status"
	case RoleSubExpert, RolePMC2:
		column = "second_role_status"
	default:
		return nil, "", ErrValidation
	}

	var schedule models.ReviewSchedule
	if err := s.db.Where("schedule_id = ?", scheduleID).First(&schedule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("failed to load schedule: %w", err)
	}

	now := time.Now()
	if err := s.db.Model(&models.ReviewSchedule{}).
		Where("schedule_id = ?", scheduleID).
		Updates(map[string]interface{}{
			column:      status,
			"update_at": now,
		}).Error; err != nil {
		return nil, "", fmt.Errorf("failed to update schedule: %w", err)
	}

	if column == "first_role_status" {
		schedule.FirstRoleStatus = status
	} else {
		schedule.SecondRoleStatus = status
	}
	schedule.UpdateAt = &now

	overall := NextOverallStatus(RoleStatus(schedule.FirstRoleStatus), RoleStatus(schedule.SecondRoleStatus))

	// A fully completed challenge review closes out the originating
	// request's review_status. Best-effort, same policy as Create.
	if overall == OverallCompleted && schedule.ReviewMode == models.ModeChallenge && schedule.StudentRegNo != nil {
		if err := s.db.Model(&models.ReviewRequest{}).
			Where("student_reg_no = ? AND semester = ? AND mode = ?",
				*schedule.StudentRegNo, schedule.Semester, models.ModeChallenge).
			Update("review_status", models.ReviewCompleted).Error; err != nil {
			log.Printf("Warning: failed to mark request completed for schedule %d: %v", scheduleID, err)
		}
	}

	return &schedule, overall, nil
}

// Get returns one schedule by id.
func (s *ScheduleService) Get(scheduleID int) (*models.ReviewSchedule, OverallStatus, error) {
	var schedule models.ReviewSchedule
	if err := s.db.Preload("Team").Where("schedule_id = ?", scheduleID).First(&schedule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("failed to load schedule: %w", err)
	}
	overall := NextOverallStatus(RoleStatus(schedule.FirstRoleStatus), RoleStatus(schedule.SecondRoleStatus))
	return &schedule, overall, nil
}

// List returns schedules filtered by cluster (via team) and mode.
func (s *ScheduleService) List(cluster, reviewMode string) ([]models.ReviewSchedule, error) {
	query := s.db.Model(&models.ReviewSchedule{}).Preload("Team")
	if cluster != "" {
		query = query.Joins("JOIN teams ON teams.team_id = review_schedules.team_id").
			Where("teams.cluster = ?", cluster)
	}
	if reviewMode != "" {
		query = query.Where("review_schedules.review_mode = ?", reviewMode)
	}

	var schedules []models.ReviewSchedule
	if err := query.Order("review_schedules.date ASC, review_schedules.start_time ASC").
		Find(&schedules).Error; err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	return schedules, nil
}
