package services

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/baharkarakas/church-backend/internal/api/validate"
	"github.com/baharkarakas/church-backend/internal/models"
	repo "github.com/baharkarakas/church-backend/internal/repository"
)

// Platform authenticators hand out credential ids of at least 16 bytes.
const (
	minCredentialBytes = 16
	maxCredentialBytes = 1023
)

// BiometricService keeps the credential ids a user enrolled on their devices.
// Assertions are verified by the platform authenticator, not here.
type BiometricService struct {
	creds repo.Credentials
}

func NewBiometricService(c repo.Credentials) *BiometricService {
	return &BiometricService{creds: c}
}

type EnrollInput struct {
	CredentialID string `json:"credential_id"`
	DeviceName   string `json:"device_name"`
}

// Enroll stores a credential id for profileID. Re-enrolling the same id is a conflict.
func (s *BiometricService) Enroll(ctx context.Context, profileID string, in EnrollInput) (models.Credential, error) {
	id := strings.TrimRight(strings.TrimSpace(in.CredentialID), "=")
	in.DeviceName = strings.TrimSpace(in.DeviceName)
	if err := validate.Collect(
		credentialIDCheck(id),
		validate.MaxLen("device_name", in.DeviceName, 100),
	); err != nil {
		return models.Credential{}, err
	}
	return s.creds.Create(ctx, models.Credential{
		ProfileID:    profileID,
		CredentialID: id,
		DeviceName:   in.DeviceName,
	})
}

func credentialIDCheck(id string) *validate.ErrField {
	if id == "" {
		return &validate.ErrField{Field: "credential_id", Msg: "required"}
	}
	raw, err := base64.RawURLEncoding.DecodeString(id)
	if err != nil {
		return &validate.ErrField{Field: "credential_id", Msg: "must be base64url"}
	}
	if len(raw) < minCredentialBytes || len(raw) > maxCredentialBytes {
		return &validate.ErrField{Field: "credential_id", Msg: "unexpected length"}
	}
	return nil
}

func (s *BiometricService) List(ctx context.Context, profileID string) ([]models.Credential, error) {
	return s.creds.ListByProfile(ctx, profileID)
}

func (s *BiometricService) Remove(ctx context.Context, profileID, id string) error {
	return s.creds.Delete(ctx, profileID, id)
}
