// Package validation holds the single ordered rule set a candidate student
// record must satisfy. Both the HTTP service and the dashboard client run
// these rules, so the two sides cannot drift apart.
package validation

import (
	"regexp"
	"strings"

	"github.com/mujahidhofficial-oss/gamage-student-entrollment-system/internal/model"
)

var (
	emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phoneRe = regexp.MustCompile(`^\d{10}$`)
)

// Fields is a candidate record's user-supplied field set.
type Fields struct {
	Name   string
	Email  string
	Phone  string
	Course string
	Status string
}

// Check runs the shared rules in fixed order and returns the first violated
// rule's message, or "" when the field set is valid. The order matters: the
// caller surfaces only the first failure.
func Check(f Fields) string {
	if strings.TrimSpace(f.Name) == "" {
		return "Name is required"
	}
	if !emailRe.MatchString(strings.TrimSpace(f.Email)) {
		return "Please enter a valid email"
	}
	if !phoneRe.MatchString(strings.TrimSpace(f.Phone)) {
		return "Phone must be exactly 10 digits"
	}
	if strings.TrimSpace(f.Course) == "" {
		return "Course is required"
	}
	if strings.TrimSpace(f.Status) == "" {
		return "Status is required"
	}
	return ""
}

// CheckStrict runs Check plus the store-only constraints: minimum name
// length and the status enumeration.
func CheckStrict(f Fields) string {
	if msg := Check(f); msg != "" {
		return msg
	}
	if len(strings.TrimSpace(f.Name)) < 2 {
		return "Name must be at least 2 characters"
	}
	if !model.ValidStatus(strings.TrimSpace(f.Status)) {
		return "Status must be one of Pending, Enrolled, Completed"
	}
	return ""
}

// Normalize trims every field, lowercases the email, and defaults a blank
// status to Pending. The store applies it before validating and persisting.
func Normalize(f Fields) Fields {
	out := Fields{
		Name:   strings.TrimSpace(f.Name),
		Email:  strings.ToLower(strings.TrimSpace(f.Email)),
		Phone:  strings.TrimSpace(f.Phone),
		Course: strings.TrimSpace(f.Course),
		Status: strings.TrimSpace(f.Status),
	}
	if out.Status == "" {
		out.Status = model.StatusPending
	}
	return out
}
