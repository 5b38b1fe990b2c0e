package models

import "time"

type VolunteerStatus string

const (
	VolunteerApplied  VolunteerStatus = "inscrito"
	VolunteerTraining VolunteerStatus = "em_treinamento"
	VolunteerActive   VolunteerStatus = "ativo"
	VolunteerInactive VolunteerStatus = "inativo"
)

func (s VolunteerStatus) CanMoveTo(next VolunteerStatus) bool {
	if s == next {
		return false
	}
	switch next {
	case VolunteerInactive:
		return true
	case VolunteerApplied:
		return s == VolunteerInactive
	case VolunteerTraining:
		return s == VolunteerApplied
	case VolunteerActive:
		return s == VolunteerTraining
	}
	return false
}

// Volunteer is an onboarding application linking a profile to a ministry.
type Volunteer struct {
	ID           string          `json:"id"`
	ChurchID     string          `json:"church_id"`
	ProfileID    string          `json:"profile_id"`
	ProfileName  string          `json:"profile_name,omitempty"`
	Ministry     string          `json:"ministry"`
	Availability string          `json:"availability,omitempty"`
	Status       VolunteerStatus `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
