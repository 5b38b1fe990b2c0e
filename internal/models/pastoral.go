package models

import "time"

type PrayerStatus string

const (
	PrayerNew      PrayerStatus = "novo"
	PrayerPraying  PrayerStatus = "em_oracao"
	PrayerAnswered PrayerStatus = "respondido"
	PrayerArchived PrayerStatus = "arquivado"
)

// CanMoveTo encodes the prayer request workflow.
func (s PrayerStatus) CanMoveTo(next PrayerStatus) bool {
	switch {
	case s == PrayerArchived:
		return false
	case next == PrayerArchived:
		return true
	case s == PrayerNew:
		return next == PrayerPraying
	case s == PrayerPraying:
		return next == PrayerAnswered
	}
	return false
}

type PrayerRequest struct {
	ID        string       `json:"id"`
	ChurchID  string       `json:"church_id"`
	Name      string       `json:"name"`
	Phone     *string      `json:"phone,omitempty"`
	Email     *string      `json:"email,omitempty"`
	Request   string       `json:"request"`
	Private   bool         `json:"private"`
	Status    PrayerStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type TestimonyStatus string

const (
	TestimonyPending  TestimonyStatus = "pendente"
	TestimonyApproved TestimonyStatus = "aprovado"
	TestimonyRejected TestimonyStatus = "rejeitado"
)

func (s TestimonyStatus) CanMoveTo(next TestimonyStatus) bool {
	return s == TestimonyPending && (next == TestimonyApproved || next == TestimonyRejected)
}

type Testimony struct {
	ID           string          `json:"id"`
	ChurchID     string          `json:"church_id"`
	Name         string          `json:"name"`
	Phone        *string         `json:"phone,omitempty"`
	Content      string          `json:"content"`
	AllowPublish bool            `json:"allow_publish"`
	Status       TestimonyStatus `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
