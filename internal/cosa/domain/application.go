package domain

import "time"

// ApplicationStatus is the review state of a co-op application.
type ApplicationStatus string

const (
	ApplicationUnderReview ApplicationStatus = "Under Review"
	ApplicationAccepted    ApplicationStatus = "Accepted"
	ApplicationRejected    ApplicationStatus = "Rejected"
)

// ParseApplicationStatus validates a raw status string.
func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	switch ApplicationStatus(s) {
	case ApplicationUnderReview, ApplicationAccepted, ApplicationRejected:
		return ApplicationStatus(s), true
	}
	return "", false
}

type CoopApplication struct {
	ID            string
	StudentID     string // owning user, one application per student
	FullName      string
	Address       string
	DateOfBirth   time.Time
	StudentNumber string // globally unique
	StudentYear   int
	LinkedIn      string
	Status        ApplicationStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
