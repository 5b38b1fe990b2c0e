package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/baharkarakas/church-backend/internal/api/validate"
	"github.com/baharkarakas/church-backend/internal/links"
	"github.com/baharkarakas/church-backend/internal/metrics"
	"github.com/baharkarakas/church-backend/internal/models"
	repo "github.com/baharkarakas/church-backend/internal/repository"
)

type EventService struct {
	events repo.Events
	regs   repo.Registrations
	audit  *Auditor
	now    func() time.Time
}

func NewEventService(e repo.Events, r repo.Registrations, a *Auditor) *EventService {
	return &EventService{events: e, regs: r, audit: a, now: time.Now}
}

// ----------------- Events & tiers -----------------

type EventInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	Capacity    *int       `json:"capacity"`
}

func (s *EventService) CreateEvent(ctx context.Context, churchID string, in EventInput) (models.Event, error) {
	in.Title = strings.TrimSpace(in.Title)
	var startErr, endErr, capErr *validate.ErrField
	if in.StartsAt.IsZero() {
		startErr = &validate.ErrField{Field: "starts_at", Msg: "required"}
	}
	if in.EndsAt != nil && in.EndsAt.Before(in.StartsAt) {
		endErr = &validate.ErrField{Field: "ends_at", Msg: "must not be before starts_at"}
	}
	if in.Capacity != nil {
		capErr = validate.MinInt("capacity", int64(*in.Capacity), 1)
	}
	if err := validate.Collect(
		validate.Required("title", in.Title),
		validate.MaxLen("title", in.Title, 200),
		startErr, endErr, capErr,
	); err != nil {
		return models.Event{}, err
	}
	return s.events.Create(ctx, models.Event{
		ChurchID:    churchID,
		Title:       in.Title,
		Description: strings.TrimSpace(in.Description),
		Location:    strings.TrimSpace(in.Location),
		StartsAt:    in.StartsAt,
		EndsAt:      in.EndsAt,
		Capacity:    in.Capacity,
	})
}

// ListEvents returns events starting at or after from; a zero from means now.
func (s *EventService) ListEvents(ctx context.Context, churchID string, from time.Time, limit int) ([]models.Event, error) {
	if from.IsZero() {
		from = s.now()
	}
	return s.events.List(ctx, churchID, from, limit)
}

func (s *EventService) GetEvent(ctx context.Context, churchID, id string) (models.Event, error) {
	return s.events.GetByID(ctx, churchID, id)
}

type TierInput struct {
	Name     string     `json:"name"`
	Price    int64      `json:"price"`
	Seats    *int       `json:"seats"`
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
}

func (s *EventService) CreateTier(ctx context.Context, churchID, eventID string, in TierInput) (models.Tier, error) {
	in.Name = strings.TrimSpace(in.Name)
	var seatsErr, windowErr *validate.ErrField
	if in.Seats != nil {
		seatsErr = validate.MinInt("seats", int64(*in.Seats), 1)
	}
	if in.StartsAt != nil && in.EndsAt != nil && in.EndsAt.Before(*in.StartsAt) {
		windowErr = &validate.ErrField{Field: "ends_at", Msg: "must not be before starts_at"}
	}
	if err := validate.Collect(
		validate.Required("name", in.Name),
		validate.MinInt("price", in.Price, 0),
		seatsErr, windowErr,
	); err != nil {
		return models.Tier{}, err
	}
	if _, err := s.events.GetByID(ctx, churchID, eventID); err != nil {
		return models.Tier{}, err
	}
	return s.events.CreateTier(ctx, models.Tier{
		EventID:  eventID,
		Name:     in.Name,
		Price:    in.Price,
		Seats:    in.Seats,
		StartsAt: in.StartsAt,
		EndsAt:   in.EndsAt,
	})
}

func (s *EventService) ListTiers(ctx context.Context, churchID, eventID string) ([]models.Tier, error) {
	if _, err := s.events.GetByID(ctx, churchID, eventID); err != nil {
		return nil, err
	}
	return s.events.ListTiers(ctx, eventID)
}

// SelectTier picks the tier on sale at now: inside its window, seats left
// according to sold, lowest price. Equal prices go to the earliest start,
// then to the order of tiers. It returns nil when no tier qualifies.
func SelectTier(tiers []models.Tier, sold map[string]int, now time.Time) *models.Tier {
	var best *models.Tier
	for i := range tiers {
		t := &tiers[i]
		if !t.ActiveAt(now) {
			continue
		}
		if t.Seats != nil && sold[t.ID] >= *t.Seats {
			continue
		}
		if best == nil || t.Price < best.Price || (t.Price == best.Price && startsBefore(t.StartsAt, best.StartsAt)) {
			best = t
		}
	}
	if best == nil {
		return nil
	}
	out := *best
	return &out
}

// startsBefore orders an open start before any concrete one.
func startsBefore(a, b *time.Time) bool {
	switch {
	case a == nil:
		return b != nil
	case b == nil:
		return false
	}
	return a.Before(*b)
}

// ResolveTier returns the tier currently on sale for the event, or nil.
func (s *EventService) ResolveTier(ctx context.Context, eventID string) (*models.Tier, error) {
	tier, _, _, err := s.resolve(ctx, eventID)
	return tier, err
}

// resolve also reports whether the event has tiers at all and its confirmed total.
func (s *EventService) resolve(ctx context.Context, eventID string) (*models.Tier, bool, int, error) {
	tiers, err := s.events.ListTiers(ctx, eventID)
	if err != nil {
		return nil, false, 0, err
	}
	sold, err := s.regs.CountConfirmed(ctx, eventID)
	if err != nil {
		return nil, false, 0, err
	}
	total := 0
	for _, n := range sold {
		total += n
	}
	return SelectTier(tiers, sold, s.now()), len(tiers) > 0, total, nil
}

// ----------------- Public sign-up -----------------

type PublicEvent struct {
	Event       models.Event `json:"event"`
	CurrentTier *models.Tier `json:"current_tier"`
	SoldOut     bool         `json:"sold_out"`
	MapsURL     string       `json:"maps_url,omitempty"`
}

func (s *EventService) PublicEvent(ctx context.Context, id string) (PublicEvent, error) {
	e, err := s.events.GetPublic(ctx, id)
	if err != nil {
		return PublicEvent{}, err
	}
	tier, hasTiers, total, err := s.resolve(ctx, id)
	if err != nil {
		return PublicEvent{}, err
	}
	full := e.Capacity != nil && total >= *e.Capacity
	return PublicEvent{
		Event:       e,
		CurrentTier: tier,
		SoldOut:     full || (hasTiers && tier == nil),
		MapsURL:     links.Maps(e.Location),
	}, nil
}

type RegistrationInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type RegistrationReceipt struct {
	Registration models.Registration `json:"registration"`
	Tier         *models.Tier        `json:"tier,omitempty"`
	QRCodeURL    string              `json:"qr_code_url"`
	WhatsAppURL  string              `json:"whatsapp_url,omitempty"`
}

// Register signs someone up for an event through the public page.
// Capacity is checked before the insert without a reservation, so a burst of
// concurrent sign-ups can overshoot a tier or the event by a few seats.
func (s *EventService) Register(ctx context.Context, eventID string, in RegistrationInput) (RegistrationReceipt, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validate.Collect(
		validate.Required("name", in.Name),
		validate.MaxLen("name", in.Name, 200),
		validate.Phone("phone", in.Phone),
		validate.Email("email", in.Email),
	); err != nil {
		return RegistrationReceipt{}, err
	}

	e, err := s.events.GetPublic(ctx, eventID)
	if err != nil {
		return RegistrationReceipt{}, err
	}
	now := s.now()
	if closesAt := eventClose(e); now.After(closesAt) {
		metrics.RegistrationsTotal.WithLabelValues("closed").Inc()
		return RegistrationReceipt{}, ErrEventClosed
	}

	tier, hasTiers, total, err := s.resolve(ctx, eventID)
	if err != nil {
		return RegistrationReceipt{}, err
	}
	if hasTiers && tier == nil {
		metrics.RegistrationsTotal.WithLabelValues("sold_out").Inc()
		return RegistrationReceipt{}, ErrSoldOut
	}
	if e.Capacity != nil && total >= *e.Capacity {
		metrics.RegistrationsTotal.WithLabelValues("full").Inc()
		return RegistrationReceipt{}, ErrEventFull
	}

	reg := models.Registration{
		ChurchID: e.ChurchID,
		EventID:  e.ID,
		Name:     in.Name,
		Phone:    validate.NormalizePhone(in.Phone),
		Email:    validate.OptionalString(in.Email),
		Status:   models.RegistrationConfirmed,
		QRToken:  uuid.NewString(),
	}
	if tier != nil {
		reg.TierID = &tier.ID
		reg.Amount = tier.Price
	}
	reg, err = s.regs.Create(ctx, reg)
	if err != nil {
		return RegistrationReceipt{}, err
	}
	metrics.RegistrationsTotal.WithLabelValues("confirmed").Inc()
	s.audit.Record(e.ChurchID, "", "registration", reg.ID, "created", map[string]any{
		"event_id": e.ID,
		"amount":   reg.Amount,
	})

	return RegistrationReceipt{
		Registration: reg,
		Tier:         tier,
		QRCodeURL:    links.QRCode(reg.QRToken, 0),
		WhatsAppURL:  links.WhatsApp(reg.Phone, "Inscrição confirmada: "+e.Title),
	}, nil
}

// eventClose is the end of the event, or its start when no end is set.
func eventClose(e models.Event) time.Time {
	if e.EndsAt != nil {
		return *e.EndsAt
	}
	return e.StartsAt
}

// ----------------- Registrations -----------------

func (s *EventService) ListRegistrations(ctx context.Context, churchID, eventID string, limit, offset int) ([]models.Registration, error) {
	if _, err := s.events.GetByID(ctx, churchID, eventID); err != nil {
		return nil, err
	}
	return s.regs.ListByEvent(ctx, churchID, eventID, limit, offset)
}

func (s *EventService) Cancel(ctx context.Context, churchID, actorID, eventID, regID string) (models.Registration, error) {
	reg, err := s.regs.GetByID(ctx, churchID, regID)
	if err != nil {
		return models.Registration{}, err
	}
	if reg.EventID != eventID {
		return models.Registration{}, repo.ErrNotFound
	}
	if reg.Status == models.RegistrationCancelled {
		return models.Registration{}, ErrInvalidTransition
	}
	if err := s.regs.UpdateStatus(ctx, churchID, regID, models.RegistrationCancelled); err != nil {
		return models.Registration{}, err
	}
	reg.Status = models.RegistrationCancelled
	s.audit.Record(churchID, actorID, "registration", regID, "cancelled", nil)
	return reg, nil
}

// CheckInInput identifies a registration by id, QR token or phone, in that order.
type CheckInInput struct {
	ChurchID       string `json:"church_id"`
	EventID        string `json:"event_id"`
	RegistrationID string `json:"registration_id"`
	QRToken        string `json:"qr_token"`
	Phone          string `json:"phone"`
	Source         string `json:"source"`
}

type CheckInResult struct {
	Registration     models.Registration `json:"registration"`
	AlreadyCheckedIn bool                `json:"already_checked_in"`
}

func (in CheckInInput) validate() error {
	var keyErr, idErr, phoneErr *validate.ErrField
	switch {
	case in.RegistrationID != "":
		idErr = validate.UUID("registration_id", in.RegistrationID)
	case in.QRToken != "":
	case in.Phone != "":
		phoneErr = validate.Phone("phone", in.Phone)
	default:
		keyErr = &validate.ErrField{Field: "registration_id", Msg: "one of registration_id, qr_token or phone is required"}
	}
	return validate.Collect(
		validate.UUID("church_id", in.ChurchID),
		validate.UUID("event_id", in.EventID),
		keyErr, idErr, phoneErr,
	)
}

// CheckIn marks a confirmed registration as present. Repeating it is harmless.
func (s *EventService) CheckIn(ctx context.Context, in CheckInInput) (CheckInResult, error) {
	if err := in.validate(); err != nil {
		return CheckInResult{}, err
	}

	var (
		reg models.Registration
		err error
	)
	switch {
	case in.RegistrationID != "":
		reg, err = s.regs.GetByID(ctx, in.ChurchID, in.RegistrationID)
	case in.QRToken != "":
		reg, err = s.regs.GetByQRToken(ctx, in.ChurchID, in.QRToken)
	default:
		reg, err = s.regs.GetByPhone(ctx, in.ChurchID, in.EventID, validate.NormalizePhone(in.Phone))
	}
	if err != nil {
		return CheckInResult{}, err
	}
	if reg.EventID != in.EventID {
		return CheckInResult{}, repo.ErrNotFound
	}
	if reg.Status == models.RegistrationCancelled {
		return CheckInResult{}, ErrRegistrationGone
	}
	if reg.CheckedInAt != nil {
		return CheckInResult{Registration: reg, AlreadyCheckedIn: true}, nil
	}

	source := strings.TrimSpace(in.Source)
	if source == "" {
		source = "webhook"
	}
	now := s.now()
	err = s.regs.CheckIn(ctx, models.Checkin{
		ChurchID:       reg.ChurchID,
		EventID:        reg.EventID,
		RegistrationID: reg.ID,
		Source:         source,
	}, now)
	if errors.Is(err, repo.ErrConflict) {
		// lost a race with another scanner
		if again, gerr := s.regs.GetByID(ctx, reg.ChurchID, reg.ID); gerr == nil {
			reg = again
		}
		return CheckInResult{Registration: reg, AlreadyCheckedIn: true}, nil
	}
	if err != nil {
		return CheckInResult{}, err
	}
	reg.CheckedInAt = &now
	s.audit.Record(reg.ChurchID, "", "registration", reg.ID, "checked_in", map[string]any{"source": source})
	return CheckInResult{Registration: reg}, nil
}
