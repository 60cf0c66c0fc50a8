package services

import "errors"

// Sentinel errors returned by the review services. Controllers map
// these to HTTP status codes at the boundary.
var (
	ErrValidation          = errors.New("invalid input")
	ErrFeatureDisabled     = errors.New("review submission is currently disabled")
	ErrDuplicateRequest    = errors.New("a request already exists for this student and semester")
	ErrNotFound            = errors.New("record not found")
	ErrInsufficientStaff   = errors.New("not enough available staff in cluster")
	ErrNoEnabledReviewType = errors.New("no review type is currently enabled")
)
