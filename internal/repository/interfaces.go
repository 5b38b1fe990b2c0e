package repository

import (
	"context"
	"errors"
	"time"

	"github.com/baharkarakas/church-backend/internal/models"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// Every tenant-owned lookup takes the church id so rows of another church read as ErrNotFound.

type Churches interface {
	Create(ctx context.Context, c models.Church) (models.Church, error)
	GetByID(ctx context.Context, id string) (models.Church, error)
}

type Profiles interface {
	Create(ctx context.Context, p models.Profile) (models.Profile, error)
	GetByID(ctx context.Context, churchID, id string) (models.Profile, error)
	GetByEmail(ctx context.Context, email string) (models.Profile, error)
	GetByPhone(ctx context.Context, churchID, phone string) (models.Profile, error)
	List(ctx context.Context, churchID string, f models.ProfileFilter) ([]models.Profile, error)
	Update(ctx context.Context, p models.Profile) error
	SetAvatar(ctx context.Context, churchID, id, url string) error
	Delete(ctx context.Context, churchID, id string) error
	CountByStatus(ctx context.Context, churchID string, status models.MemberStatus) (int, error)
}

type Events interface {
	Create(ctx context.Context, e models.Event) (models.Event, error)
	GetByID(ctx context.Context, churchID, id string) (models.Event, error)
	// GetPublic looks an event up without a tenant, for public sign-up pages.
	GetPublic(ctx context.Context, id string) (models.Event, error)
	List(ctx context.Context, churchID string, from time.Time, limit int) ([]models.Event, error)

	CreateTier(ctx context.Context, t models.Tier) (models.Tier, error)
	ListTiers(ctx context.Context, eventID string) ([]models.Tier, error)
}

type Registrations interface {
	Create(ctx context.Context, r models.Registration) (models.Registration, error)
	GetByID(ctx context.Context, churchID, id string) (models.Registration, error)
	GetByQRToken(ctx context.Context, churchID, token string) (models.Registration, error)
	GetByPhone(ctx context.Context, churchID, eventID, phone string) (models.Registration, error)
	ListByEvent(ctx context.Context, churchID, eventID string, limit, offset int) ([]models.Registration, error)
	// CountConfirmed returns confirmed registrations per tier id; "" keys registrations without a tier.
	CountConfirmed(ctx context.Context, eventID string) (map[string]int, error)
	UpdateStatus(ctx context.Context, churchID, id string, status models.RegistrationStatus) error
	// CheckIn stamps the registration and writes the checkins row in one transaction.
	CheckIn(ctx context.Context, c models.Checkin, at time.Time) error
}

type Accounts interface {
	Create(ctx context.Context, a models.Account) (models.Account, error)
	GetByID(ctx context.Context, churchID, id string) (models.Account, error)
	List(ctx context.Context, churchID string) ([]models.Account, error)
}

type Transactions interface {
	// CreateAndApply inserts the transaction and moves the account balance by its signed amount atomically.
	CreateAndApply(ctx context.Context, t models.Transaction) (models.Transaction, error)
	List(ctx context.Context, churchID string, f models.TransactionFilter) ([]models.Transaction, error)
	// SumSigned returns the signed total and row count for an account.
	SumSigned(ctx context.Context, churchID, accountID string) (int64, int, error)
	Totals(ctx context.Context, churchID string, from, to time.Time) (income, expense int64, err error)
}

type PrayerRequests interface {
	Create(ctx context.Context, p models.PrayerRequest) (models.PrayerRequest, error)
	GetByID(ctx context.Context, churchID, id string) (models.PrayerRequest, error)
	List(ctx context.Context, churchID string, status models.PrayerStatus, limit, offset int) ([]models.PrayerRequest, error)
	UpdateStatus(ctx context.Context, churchID, id string, status models.PrayerStatus) error
	CountOpen(ctx context.Context, churchID string) (int, error)
}

type Testimonies interface {
	Create(ctx context.Context, t models.Testimony) (models.Testimony, error)
	GetByID(ctx context.Context, churchID, id string) (models.Testimony, error)
	List(ctx context.Context, churchID string, status models.TestimonyStatus, limit, offset int) ([]models.Testimony, error)
	ListPublished(ctx context.Context, churchID string, limit int) ([]models.Testimony, error)
	UpdateStatus(ctx context.Context, churchID, id string, status models.TestimonyStatus) error
	CountByStatus(ctx context.Context, churchID string, status models.TestimonyStatus) (int, error)
}

type Volunteers interface {
	Create(ctx context.Context, v models.Volunteer) (models.Volunteer, error)
	GetByID(ctx context.Context, churchID, id string) (models.Volunteer, error)
	List(ctx context.Context, churchID string, status models.VolunteerStatus, ministry string) ([]models.Volunteer, error)
	UpdateStatus(ctx context.Context, churchID, id string, status models.VolunteerStatus) error
	CountByStatus(ctx context.Context, churchID string, status models.VolunteerStatus) (int, error)
}

type Liturgies interface {
	Create(ctx context.Context, l models.Liturgy) (models.Liturgy, error)
	GetByID(ctx context.Context, churchID, id string) (models.Liturgy, error)
	List(ctx context.Context, churchID string, limit, offset int) ([]models.Liturgy, error)
	AddItem(ctx context.Context, it models.LiturgyItem) (models.LiturgyItem, error)
	// Items are returned in position order.
	Items(ctx context.Context, liturgyID string) ([]models.LiturgyItem, error)

	CreateSong(ctx context.Context, s models.Song) (models.Song, error)
	GetSong(ctx context.Context, churchID, id string) (models.Song, error)
	ListSongs(ctx context.Context, churchID string) ([]models.Song, error)

	CreateAnnouncement(ctx context.Context, a models.Announcement) (models.Announcement, error)
	GetAnnouncement(ctx context.Context, churchID, id string) (models.Announcement, error)
	ListAnnouncements(ctx context.Context, churchID string, limit int) ([]models.Announcement, error)
}

type Credentials interface {
	Create(ctx context.Context, c models.Credential) (models.Credential, error)
	ListByProfile(ctx context.Context, profileID string) ([]models.Credential, error)
	Delete(ctx context.Context, profileID, id string) error
}

type AuditLogs interface {
	Create(ctx context.Context, l models.AuditLog) error
}
