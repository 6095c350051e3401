package domain

// TwoFactorChallenge is the material presented to a user during the second
// verification step. Setup material (secret + provisioning URI) is only
// populated until the user completes enrolment; steady-state challenges
// carry neither.
type TwoFactorChallenge struct {
	SetupMode       bool   `json:"setup_mode"`
	Secret          string `json:"secret,omitempty"`           // base32 TOTP secret, setup mode only
	ProvisioningURI string `json:"provisioning_uri,omitempty"` // otpauth:// URL, setup mode only
}
