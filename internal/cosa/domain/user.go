package domain

import "time"

type User struct {
	ID                  string
	Role                Role
	Username            string // globally unique
	Email               string // globally unique
	Name                string
	StudentID           string     // student-number field, students only
	PasswordHash        string     // argon2id encoded
	Active              bool
	TwoFactorEnabled    bool
	TwoFactorSecret     *string // TOTP secret (nullable, base32 encoded)
	TwoFactorSetupDone  bool    // first successful verification flips this forever
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
