package services

import (
	"fmt"
	"log"

	"project-review-api/config"
	"project-review-api/models"

	"gorm.io/gorm"
)

// NotifyAssignment emails the students whose challenge requests just
// got a reviewer pair. Failures are logged and never propagate; mail
// is a side channel, not part of the assignment transaction.
func NotifyAssignment(db *gorm.DB, result *BatchResult) {
	if result == nil || result.Pair == nil || len(result.AssignedStudents) == 0 {
		return
	}

	var students []models.Student
	if err := db.Where("reg_no IN ?", result.AssignedStudents).Find(&students).Error; err != nil {
		log.Printf("Warning: failed to load students for assignment mail: %v", err)
		return
	}

	for _, student := range students {
		if student.Email == "" {
			continue
		}
		body := fmt.Sprintf(
			"<p>Dear %s,</p><p>Reviewers have been assigned for your challenge review:</p>"+
				"<ul><li>PMC1: %s</li><li>PMC2: %s</li></ul>"+
				"<p>You will receive the schedule separately.</p>",
			student.Name, result.Pair.PMC1.Name, result.Pair.PMC2.Name,
		)
		if err := config.SendMail([]string{student.Email}, "Challenge review: reviewers assigned", body); err != nil {
			log.Printf("Warning: failed to send assignment mail to %s: %v", student.RegNo, err)
		}
	}
}

// NotifySchedule emails the team members about a newly created slot.
// Same best-effort policy as NotifyAssignment.
func NotifySchedule(db *gorm.DB, schedule *models.ReviewSchedule) {
	if schedule == nil {
		return
	}

	var members []models.Student
	if err := db.Where("team_id = ?", schedule.TeamID).Find(&members).Error; err != nil {
		log.Printf("Warning: failed to load team members for schedule mail: %v", err)
		return
	}

	where := "venue TBA"
	if schedule.Venue != nil {
		where = *schedule.Venue
	} else if schedule.MeetingLink != nil {
		where = *schedule.MeetingLink
	}

	for _, member := range members {
		if member.Email == "" {
			continue
		}
		body := fmt.Sprintf(
			"<p>Dear %s,</p><p>Your %s review is scheduled on %s, %s&ndash;%s (%s).</p>",
			member.Name, schedule.ReviewMode,
			schedule.Date.Format("2006-01-02"), schedule.StartTime, schedule.EndTime, where,
		)
		if err := config.SendMail([]string{member.Email}, "Review scheduled", body); err != nil {
			log.Printf("Warning: failed to send schedule mail to %s: %v", member.RegNo, err)
		}
	}
}
