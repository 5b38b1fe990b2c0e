package services

import (
	"context"
	"errors"
	"strings"

	"github.com/baharkarakas/church-backend/internal/api/validate"
	"github.com/baharkarakas/church-backend/internal/models"
	repo "github.com/baharkarakas/church-backend/internal/repository"
)

type VolunteerService struct {
	profiles   repo.Profiles
	volunteers repo.Volunteers
	audit      *Auditor
}

func NewVolunteerService(p repo.Profiles, v repo.Volunteers, a *Auditor) *VolunteerService {
	return &VolunteerService{profiles: p, volunteers: v, audit: a}
}

type VolunteerApplication struct {
	ChurchID     string `json:"church_id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Ministry     string `json:"ministry"`
	Availability string `json:"availability"`
}

// Apply files a volunteer application, creating a visitor profile when the
// phone is not known to the church yet.
func (s *VolunteerService) Apply(ctx context.Context, in VolunteerApplication) (models.Volunteer, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Ministry = strings.TrimSpace(in.Ministry)
	if err := validate.Collect(
		validate.UUID("church_id", in.ChurchID),
		validate.Required("name", in.Name),
		validate.MaxLen("name", in.Name, 200),
		validate.Phone("phone", in.Phone),
		validate.Email("email", in.Email),
		validate.Required("ministry", in.Ministry),
		validate.MaxLen("ministry", in.Ministry, 120),
		validate.MaxLen("availability", in.Availability, 500),
	); err != nil {
		return models.Volunteer{}, err
	}

	phone := validate.NormalizePhone(in.Phone)
	p, err := s.profiles.GetByPhone(ctx, in.ChurchID, phone)
	if errors.Is(err, repo.ErrNotFound) {
		p, err = s.profiles.Create(ctx, models.Profile{
			ChurchID: in.ChurchID,
			Name:     in.Name,
			Email:    validate.OptionalString(in.Email),
			Phone:    phone,
			Role:     models.RoleMember,
			Status:   models.StatusVisitor,
		})
	}
	if err != nil {
		return models.Volunteer{}, err
	}

	v, err := s.volunteers.Create(ctx, models.Volunteer{
		ChurchID:     in.ChurchID,
		ProfileID:    p.ID,
		Ministry:     in.Ministry,
		Availability: strings.TrimSpace(in.Availability),
		Status:       models.VolunteerApplied,
	})
	if err != nil {
		return models.Volunteer{}, err
	}
	v.ProfileName = p.Name
	return v, nil
}

func (s *VolunteerService) List(ctx context.Context, churchID string, status models.VolunteerStatus, ministry string) ([]models.Volunteer, error) {
	return s.volunteers.List(ctx, churchID, status, strings.TrimSpace(ministry))
}

func (s *VolunteerService) Move(ctx context.Context, churchID, actorID, id string, next models.VolunteerStatus) (models.Volunteer, error) {
	v, err := s.volunteers.GetByID(ctx, churchID, id)
	if err != nil {
		return models.Volunteer{}, err
	}
	if !v.Status.CanMoveTo(next) {
		return models.Volunteer{}, ErrInvalidTransition
	}
	if err := s.volunteers.UpdateStatus(ctx, churchID, id, next); err != nil {
		return models.Volunteer{}, err
	}
	s.audit.Record(churchID, actorID, "volunteer", id, "status_change", map[string]any{
		"from": string(v.Status),
		"to":   string(next),
	})
	v.Status = next
	return v, nil
}
