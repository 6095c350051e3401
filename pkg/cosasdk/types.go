package cosasdk

import "time"

// ErrorResponse is the JSON error envelope every failing endpoint returns.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Role      string `json:"role"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	StudentID string `json:"student_id,omitempty"`
	Password  string `json:"password"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID                 string    `json:"id"`
	Role               string    `json:"role"`
	Username           string    `json:"username"`
	Email              string    `json:"email"`
	Name               string    `json:"name,omitempty"`
	StudentID          string    `json:"student_id,omitempty"`
	Active             bool      `json:"active"`
	TwoFactorEnabled   bool      `json:"two_factor_enabled"`
	TwoFactorSetupDone bool      `json:"two_factor_setup_done"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// LoginRequest starts a session with a username-or-email plus password.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// ChallengeResponse carries the second-factor step material. Setup-mode
// challenges include the shared secret, a provisioning URI and a rendered
// QR code (PNG data URI); steady-state challenges carry none of those.
type ChallengeResponse struct {
	SetupMode       bool   `json:"setup_mode"`
	Secret          string `json:"secret,omitempty"`
	ProvisioningURI string `json:"provisioning_uri,omitempty"`
	QRCode          string `json:"qr_code,omitempty"`
}

// LoginResponse is the outcome of the first authentication step.
type LoginResponse struct {
	Token                string             `json:"token"`
	Phase                string             `json:"phase"`
	ExpiresAt            time.Time          `json:"expires_at"`
	SecondFactorRequired bool               `json:"second_factor_required"`
	Challenge            *ChallengeResponse `json:"challenge,omitempty"`
}

// VerifyRequest submits a second-factor code for a pending session.
type VerifyRequest struct {
	Code string `json:"code"`
}

// SessionResponse describes the caller's session after promotion.
type SessionResponse struct {
	Phase     string    `json:"phase"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SetActiveRequest flips an account's active flag (admin only).
type SetActiveRequest struct {
	Active bool `json:"active"`
}

// SetRoleRequest replaces an account's role (admin only).
type SetRoleRequest struct {
	Role string `json:"role"`
}

// JobCreateRequest posts a new job (employer only).
type JobCreateRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	JobType     string    `json:"job_type,omitempty"`
	Deadline    time.Time `json:"deadline,omitempty"`
}

// JobResponse is one job posting.
type JobResponse struct {
	ID          string    `json:"id"`
	EmployerID  string    `json:"employer_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	JobType     string    `json:"job_type,omitempty"`
	Deadline    time.Time `json:"deadline,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReportCreateRequest records a work-term report submission (student only).
type ReportCreateRequest struct {
	Filename   string `json:"filename"`
	ReportType string `json:"report_type,omitempty"`
}

// ReportResponse is one submitted report's metadata.
type ReportResponse struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"student_id"`
	Filename    string    `json:"filename"`
	ReportType  string    `json:"report_type,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ApplicationCreateRequest files a co-op application (student only).
type ApplicationCreateRequest struct {
	FullName      string    `json:"full_name"`
	Address       string    `json:"address,omitempty"`
	DateOfBirth   time.Time `json:"date_of_birth,omitempty"`
	StudentNumber string    `json:"student_number"`
	StudentYear   int       `json:"student_year,omitempty"`
	LinkedIn      string    `json:"linkedin,omitempty"`
}

// ApplicationResponse is one co-op application.
type ApplicationResponse struct {
	ID            string    `json:"id"`
	StudentID     string    `json:"student_id"`
	FullName      string    `json:"full_name"`
	Address       string    `json:"address,omitempty"`
	DateOfBirth   time.Time `json:"date_of_birth,omitempty"`
	StudentNumber string    `json:"student_number"`
	StudentYear   int       `json:"student_year,omitempty"`
	LinkedIn      string    `json:"linkedin,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ApplicationStatusRequest sets the review outcome (coordinator only).
type ApplicationStatusRequest struct {
	Status string `json:"status"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Uptime  string `json:"uptime,omitempty"`
}
