package services

// RoleStatus is the per-evaluator completion state on a schedule.
// Transitions are unconstrained: an evaluator may set their role to any
// value at any time, including moving Completed back to Not completed.
type RoleStatus string

const (
	RoleStatusNotCompleted RoleStatus = "Not completed"
	RoleStatusCompleted    RoleStatus = "Completed"
	RoleStatusRescheduled  RoleStatus = "Rescheduled"
)

// OverallStatus is the derived status of a whole scheduled review.
type OverallStatus string

const (
	OverallCompleted OverallStatus = "Completed"
	OverallPending   OverallStatus = "Pending"
)

// ValidRoleStatus reports whether s is one of the three role states.
func ValidRoleStatus(s string) bool {
	switch RoleStatus(s) {
	case RoleStatusNotCompleted, RoleStatusCompleted, RoleStatusRescheduled:
		return true
	}
	return false
}

// NextOverallStatus reduces the per-role statuses to the schedule's
// overall status: Completed iff every participating role is Completed.
func NextOverallStatus(roles ...RoleStatus) OverallStatus {
	if len(roles) == 0 {
		return OverallPending
	}
	for _, r := range roles {
		if r != RoleStatusCompleted {
			return OverallPending
		}
	}
	return OverallCompleted
}
