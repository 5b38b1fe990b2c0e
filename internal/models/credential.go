package models

import "time"

// Credential is a platform authenticator credential enrolled for a profile.
type Credential struct {
	ID           string     `json:"id"`
	ProfileID    string     `json:"profile_id"`
	CredentialID string     `json:"credential_id"`
	DeviceName   string     `json:"device_name,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	LastUsedAt   *time.Time `json:"last_used_at,omitempty"`
}
