package models

import "time"

type Event struct {
	ID          string     `json:"id"`
	ChurchID    string     `json:"church_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Location    string     `json:"location,omitempty"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	Capacity    *int       `json:"capacity,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Tier is a priced registration tier ("lote") of an event.
// Seats nil means unlimited; a nil window bound is open.
type Tier struct {
	ID       string     `json:"id"`
	EventID  string     `json:"event_id"`
	Name     string     `json:"name"`
	Price    int64      `json:"price"`
	Seats    *int       `json:"seats,omitempty"`
	StartsAt *time.Time `json:"starts_at,omitempty"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
}

// ActiveAt reports whether t falls inside the tier's sale window.
func (t Tier) ActiveAt(at time.Time) bool {
	if t.StartsAt != nil && at.Before(*t.StartsAt) {
		return false
	}
	if t.EndsAt != nil && at.After(*t.EndsAt) {
		return false
	}
	return true
}

type RegistrationStatus string

const (
	RegistrationConfirmed RegistrationStatus = "confirmada"
	RegistrationCancelled RegistrationStatus = "cancelada"
)

type Registration struct {
	ID          string             `json:"id"`
	ChurchID    string             `json:"church_id"`
	EventID     string             `json:"event_id"`
	TierID      *string            `json:"tier_id,omitempty"`
	Name        string             `json:"name"`
	Phone       string             `json:"phone"`
	Email       *string            `json:"email,omitempty"`
	Amount      int64              `json:"amount"`
	Status      RegistrationStatus `json:"status"`
	QRToken     string             `json:"qr_token"`
	CheckedInAt *time.Time         `json:"checked_in_at,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

type Checkin struct {
	ID             string    `json:"id"`
	ChurchID       string    `json:"church_id"`
	EventID        string    `json:"event_id"`
	RegistrationID string    `json:"registration_id"`
	Source         string    `json:"source"`
	CreatedAt      time.Time `json:"created_at"`
}
