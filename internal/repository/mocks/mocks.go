// Package mocks holds testify mocks of the repository interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/baharkarakas/church-backend/internal/models"
	"github.com/baharkarakas/church-backend/internal/repository"
)

var (
	_ repository.Churches       = (*Churches)(nil)
	_ repository.Profiles       = (*Profiles)(nil)
	_ repository.Events         = (*Events)(nil)
	_ repository.Registrations  = (*Registrations)(nil)
	_ repository.Accounts       = (*Accounts)(nil)
	_ repository.Transactions   = (*Transactions)(nil)
	_ repository.PrayerRequests = (*PrayerRequests)(nil)
	_ repository.Testimonies    = (*Testimonies)(nil)
	_ repository.Volunteers     = (*Volunteers)(nil)
	_ repository.Liturgies      = (*Liturgies)(nil)
	_ repository.Credentials    = (*Credentials)(nil)
	_ repository.AuditLogs      = (*AuditLogs)(nil)
)

// ----------------- Churches -----------------

type Churches struct{ mock.Mock }

func (m *Churches) Create(ctx context.Context, c models.Church) (models.Church, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(models.Church), args.Error(1)
}

func (m *Churches) GetByID(ctx context.Context, id string) (models.Church, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Church), args.Error(1)
}

// ----------------- Profiles -----------------

type Profiles struct{ mock.Mock }

func (m *Profiles) Create(ctx context.Context, p models.Profile) (models.Profile, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(models.Profile), args.Error(1)
}

func (m *Profiles) GetByID(ctx context.Context, churchID, id string) (models.Profile, error) {
	args := m.Called(ctx, churchID, id)
	return args.Get(0).(models.Profile), args.Error(1)
}

func (m *Profiles) GetByEmail(ctx context.Context, email string) (models.Profile, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.Profile), args.Error(1)
}

func (m *Profiles) GetByPhone(ctx context.Context, churchID, phone string) (models.Profile, error) {
	args := m.Called(ctx, churchID, phone)
	return args.Get(0).(models.Profile), args.Error(1)
}

func (m *Profiles) List(ctx context.Context, churchID string, f models.ProfileFilter) ([]models.Profile, error) {
	args := m.Called(ctx, churchID, f)
	return args.Get(0).([]models.Profile), args.Error(1)
}

func (m *Profiles) Update(ctx context.Context, p models.Profile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *Profiles) SetAvatar(ctx context.Context, churchID, id, url string) error {
	return m.Called(ctx, churchID, id, url).Error(0)
}

func (m *Profiles) Delete(ctx context.Context, churchID, id string) error {
	return m.Called(ctx, churchID, id).Error(0)
}

func (m *Profiles) CountByStatus(ctx context.Context, churchID string, status models.MemberStatus) (int, error) {
	args := m.Called(ctx, churchID, status)
	return args.Int(0), args.Error(1)
}

// ----------------- Events -----------------

type Events struct{ mock.Mock }

func (m *Events) Create(ctx context.Context, e models.Event) (models.Event, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(models.Event), args.Error(1)
}

func (m *Events) GetByID(ctx context.Context, churchID, id string) (models.Event, error) {
	args := m.Called(ctx, churchID, id)
	return args.Get(0).(models.Event), args.Error(1)
}

func (m *Events) GetPublic(ctx context.Context, id string) (models.Event, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Event), args.Error(1)
}

func (m *Events) List(ctx context.Context, churchID string, from time.Time, limit int) ([]models.Event, error) {
	args := m.Called(ctx, churchID, from, limit)
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *Events) CreateTier(ctx context.Context, t models.Tier) (models.Tier, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(models.Tier), args.Error(1)
}

func (m *Events) ListTiers(ctx context.Context, eventID string) ([]models.Tier, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]models.Tier), args.Error(1)
}

// ----------------- Registrations -----------------

type Registrations struct{ mock.Mock }

func (m *Registrations) Create(ctx context.Context, r models.Registration) (models.Registration, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(models.Registration), args.Error(1)
}

func (m *Registrations) GetByID(ctx context.Context, churchID, id string) (models.Registration, error) {
	args := m.Called(ctx, churchID, id)
	return args.Get(0).(models.Registration), args.Error(1)
}

func (m *Registrations) GetByQRToken(ctx context.Context, churchID, token string) (models.Registration, error) {
	args := m.Called(ctx, churchID, token)
	return args.Get(0).(models.Registration), args.Error(1)
}

func (m *Registrations) GetByPhone(ctx context.Context, churchID, eventID, phone string) (models.Registration, error) {
	args := m.Called(ctx, churchID, eventID, phone)
	return args.Get(0).(models.Registration), args.Error(1)
}

func (m *Registrations) ListByEvent(ctx context.Context, churchID, eventID string, limit, offset int) ([]models.Registration, error) {
	args := m.Called(ctx, churchID, eventID, limit, offset)
	return args.Get(0).([]models.Registration), args.Error(1)
}

func (m *Registrations) CountConfirmed(ctx context.Context, eventID string) (map[string]int, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *Registrations) UpdateStatus(ctx context.Context, churchID, id string, status models.RegistrationStatus) error {
	return m.Called(ctx, churchID, id, status).Error(0)
}

func (m *Registrations) CheckIn(ctx context.Context, c models.Checkin, at time.Time) error {
	return m.Called(ctx, c, at).Error(0)
}

// ----------------- Finance -----------------

type Accounts struct{ mock.Mock }

func (m *Accounts) Create(ctx context.Context, a models.Account) (models.Account, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(models.Account), args.Error(1)
}

func (m *Accounts) GetByID(ctx context.Context, churchID, id string) (models.Account, error) {
	args := m.Called(ctx, churchID, id)
	return args.Get(0).(models.Account), args.Error(1)
}

func (m *Accounts) List(ctx context.Context, churchID string) ([]models.Account, error) {
	args := m.Called(ctx, churchID)
	return args.Get(0).([]models.Account), args.Error(1)
}

type Transactions struct{ mock.Mock }

func (m *Transactions) CreateAndApply(ctx context.Context, t models.Transaction) (models.Transaction, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(models.Transaction), args.Error(1)
}

func (m *Transactions) List(ctx context.Context, churchID string, f models.TransactionFilter) ([]models.Transaction, error) {
	args := m.Called(ctx, churchID, f)
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *Transactions) SumSigned(ctx context.Context, churchID, accountID string) (int64, int, error) {
	args := m.Called(ctx, churchID, accountID)
	return args.Get(0).(int64), args.Int(1), args.Error(2)
}

func (m *Transactions) Totals(ctx context.Context, churchID string, from, to time.Time) (int64, int64, error) {
	args := m.Called(ctx, churchID, from, to)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

// ----------------- Pastoral -----------------

type PrayerRequests struct{ mock.Mock }

func (m *PrayerRequests) Create(ctx context.Context, p models.PrayerRequest) (models.PrayerRequest, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(models.PrayerRequest), args.Error(1)
}

func (m *PrayerRequests) GetByID(ctx context.Context, churchID, id string) (models.PrayerRequest, error) {
	args := m.Called(ctx, churchID, id)
	return args.Get(0).(models.PrayerRequest), args.Error(1)
}

func (m *PrayerRequests) List(ctx context.Context, churchID string, status models.PrayerStatus, limit, offset int) ([]models.PrayerRequest, error) {
	args := m.Called(ctx, churchID, status, limit, offset)
	return args.Get(0).([]models.PrayerRequest), args.Error(1)
}

func (m *PrayerRequests) UpdateStatus(ctx context.Context, churchID, id string, status models.PrayerStatus) error {
	return m.Called(ctx, churchID, id, status).Error(0)
}

func (m *PrayerRequests) CountOpen(ctx context.Context, churchID string) (int, error) {
	args := m.Called(ctx, churchID)
	return args.Int(0), args.Error(1)
}

type Testimonies struct{ mock.Mock }

func (m *Testimonies) Create(ctx context.Context, t models.Testimony) (models.Testimony, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(models.Testimony), args.Error(1)
}

func (m *Testimonies) GetByID(ctx context.Context, churchID, id string) (models.Testimony, error) {
	args := m.Called(ctx, churchID, id)
	return args.Get(0).(models.Testimony), args.Error(1)
}

func (m *Testimonies) List(ctx context.Context, churchID string, status models.TestimonyStatus, limit, offset int) ([]models.Testimony, error) {
	args := m.Called(ctx, churchID, status, limit, offset)
	return args.Get(0).([]models.Testimony), args.Error(1)
}

func (m *Testimonies) ListPublished(ctx context.Context, churchID string, limit int) ([]models.Testimony, error) {
	args := m.Called(ctx, churchID, limit)
	return args.Get(0).([]models.Testimony), args.Error(1)
}

func (m *Testimonies) UpdateStatus(ctx context.Context, churchID, id string, status models.TestimonyStatus) error {
	return m.Called(ctx, churchID, id, status).Error(0)
}

func (m *Testimonies) CountByStatus(ctx context.Context, churchID string, status models.TestimonyStatus) (int, error) {
	args := m.Called(ctx, churchID, status)
	return args.Int(0), args.Error(1)
}

// ----------------- Volunteers -----------------

type Volunteers struct{ mock.Mock }

func (m *Volunteers) Create(ctx context.Context, v models.Volunteer) (models.Volunteer, error) {
	args := m.Called(ctx, v)
	return args.Get(0).(models.Volunteer), args.Error(1)
}

func (m *Volunteers) GetByID(ctx context.Context, churchID, id string) (models.Volunteer, error) {
	args := m.Called(ctx, churchID, id)
	return args.Get(0).(models.Volunteer), args.Error(1)
}

func (m *Volunteers) List(ctx context.Context, churchID string, status models.VolunteerStatus, ministry string) ([]models.Volunteer, error) {
	args := m.Called(ctx, churchID, status, ministry)
	return args.Get(0).([]models.Volunteer), args.Error(1)
}

func (m *Volunteers) UpdateStatus(ctx context.Context, churchID, id string, status models.VolunteerStatus) error {
	return m.Called(ctx, churchID, id, status).Error(0)
}

func (m *Volunteers) CountByStatus(ctx context.Context, churchID string, status models.VolunteerStatus) (int, error) {
	args := m.Called(ctx, churchID, status)
	return args.Int(0), args.Error(1)
}

// ----------------- Liturgies -----------------

type Liturgies struct{ mock.Mock }

func (m *Liturgies) Create(ctx context.Context, l models.Liturgy) (models.Liturgy, error) {
	args := m.Called(ctx, l)
	return args.Get(0).(models.Liturgy), args.Error(1)
}

func (m *Liturgies) GetByID(ctx context.Context, churchID, id string) (models.Liturgy, error) {
	args := m.Called(ctx, churchID, id)
	return args.Get(0).(models.Liturgy), args.Error(1)
}

func (m *Liturgies) List(ctx context.Context, churchID string, limit, offset int) ([]models.Liturgy, error) {
	args := m.Called(ctx, churchID, limit, offset)
	return args.Get(0).([]models.Liturgy), args.Error(1)
}

func (m *Liturgies) AddItem(ctx context.Context, it models.LiturgyItem) (models.LiturgyItem, error) {
	args := m.Called(ctx, it)
	return args.Get(0).(models.LiturgyItem), args.Error(1)
}

func (m *Liturgies) Items(ctx context.Context, liturgyID string) ([]models.LiturgyItem, error) {
	args := m.Called(ctx, liturgyID)
	return args.Get(0).([]models.LiturgyItem), args.Error(1)
}

func (m *Liturgies) CreateSong(ctx context.Context, s models.Song) (models.Song, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(models.Song), args.Error(1)
}

func (m *Liturgies) GetSong(ctx context.Context, churchID, id string) (models.Song, error) {
	args := m.Called(ctx, churchID, id)
	return args.Get(0).(models.Song), args.Error(1)
}

func (m *Liturgies) ListSongs(ctx context.Context, churchID string) ([]models.Song, error) {
	args := m.Called(ctx, churchID)
	return args.Get(0).([]models.Song), args.Error(1)
}

func (m *Liturgies) CreateAnnouncement(ctx context.Context, a models.Announcement) (models.Announcement, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(models.Announcement), args.Error(1)
}

func (m *Liturgies) GetAnnouncement(ctx context.Context, churchID, id string) (models.Announcement, error) {
	args := m.Called(ctx, churchID, id)
	return args.Get(0).(models.Announcement), args.Error(1)
}

func (m *Liturgies) ListAnnouncements(ctx context.Context, churchID string, limit int) ([]models.Announcement, error) {
	args := m.Called(ctx, churchID, limit)
	return args.Get(0).([]models.Announcement), args.Error(1)
}

// ----------------- Credentials & audit -----------------

type Credentials struct{ mock.Mock }

func (m *Credentials) Create(ctx context.Context, c models.Credential) (models.Credential, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(models.Credential), args.Error(1)
}

func (m *Credentials) ListByProfile(ctx context.Context, profileID string) ([]models.Credential, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).([]models.Credential), args.Error(1)
}

func (m *Credentials) Delete(ctx context.Context, profileID, id string) error {
	return m.Called(ctx, profileID, id).Error(0)
}

type AuditLogs struct{ mock.Mock }

func (m *AuditLogs) Create(ctx context.Context, l models.AuditLog) error {
	return m.Called(ctx, l).Error(0)
}
