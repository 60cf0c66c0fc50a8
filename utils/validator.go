// utils/validator.go - Input validation
package utils

import (
	"regexp"
	"strings"
)

var regNoPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{2,4}[0-9]{3,5}$`)

// ValidateRegNo checks the registration number format.
func ValidateRegNo(regNo string) bool {
	return regNoPattern.MatchString(strings.ToUpper(strings.TrimSpace(regNo)))
}

// ValidateSemester checks the project-course semester range.
func ValidateSemester(semester int) bool {
	return semester >= 5 && semester <= 8
}

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	// Remove leading/trailing spaces
	input = strings.TrimSpace(input)

	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	return input
}
