package domain

import "time"

type JobPosting struct {
	ID          string
	EmployerID  string
	Title       string
	Description string
	Location    string
	JobType     string
	Deadline    time.Time
	CreatedAt   time.Time
}
