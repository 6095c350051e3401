package domain

import "time"

// Report is a work-term report submission. Only metadata lives here; file
// storage belongs to an external collaborator.
type Report struct {
	ID          string
	StudentID   string
	Filename    string
	ReportType  string
	SubmittedAt time.Time
}
