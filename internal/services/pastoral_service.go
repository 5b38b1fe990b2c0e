package services

import (
	"context"
	"strings"

	"github.com/baharkarakas/church-backend/internal/api/validate"
	"github.com/baharkarakas/church-backend/internal/models"
	repo "github.com/baharkarakas/church-backend/internal/repository"
)

// PastoralService covers prayer requests and testimonies.
type PastoralService struct {
	churches    repo.Churches
	prayers     repo.PrayerRequests
	testimonies repo.Testimonies
	audit       *Auditor
}

func NewPastoralService(c repo.Churches, p repo.PrayerRequests, t repo.Testimonies, a *Auditor) *PastoralService {
	return &PastoralService{churches: c, prayers: p, testimonies: t, audit: a}
}

// ----------------- Prayer requests -----------------

type PrayerInput struct {
	ChurchID string `json:"church_id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Request  string `json:"request"`
	Private  bool   `json:"private"`
}

// SubmitPrayer stores a request coming from an outside form. An unknown church reads as not found.
func (s *PastoralService) SubmitPrayer(ctx context.Context, in PrayerInput) (models.PrayerRequest, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Request = strings.TrimSpace(in.Request)
	if err := validate.Collect(
		validate.UUID("church_id", in.ChurchID),
		validate.Required("name", in.Name),
		validate.MaxLen("name", in.Name, 200),
		validate.OptionalPhone("phone", in.Phone),
		validate.Email("email", in.Email),
		validate.Required("request", in.Request),
		validate.MaxLen("request", in.Request, 5000),
	); err != nil {
		return models.PrayerRequest{}, err
	}
	var phone *string
	if p := validate.NormalizePhone(in.Phone); p != "" {
		phone = &p
	}
	return s.prayers.Create(ctx, models.PrayerRequest{
		ChurchID: in.ChurchID,
		Name:     in.Name,
		Phone:    phone,
		Email:    validate.OptionalString(in.Email),
		Request:  in.Request,
		Private:  in.Private,
		Status:   models.PrayerNew,
	})
}

func (s *PastoralService) ListPrayers(ctx context.Context, churchID string, status models.PrayerStatus, limit, offset int) ([]models.PrayerRequest, error) {
	return s.prayers.List(ctx, churchID, status, limit, offset)
}

func (s *PastoralService) GetPrayer(ctx context.Context, churchID, id string) (models.PrayerRequest, error) {
	return s.prayers.GetByID(ctx, churchID, id)
}

func (s *PastoralService) MovePrayer(ctx context.Context, churchID, actorID, id string, next models.PrayerStatus) (models.PrayerRequest, error) {
	p, err := s.prayers.GetByID(ctx, churchID, id)
	if err != nil {
		return models.PrayerRequest{}, err
	}
	if !p.Status.CanMoveTo(next) {
		return models.PrayerRequest{}, ErrInvalidTransition
	}
	if err := s.prayers.UpdateStatus(ctx, churchID, id, next); err != nil {
		return models.PrayerRequest{}, err
	}
	s.audit.Record(churchID, actorID, "prayer_request", id, "status_change", map[string]any{
		"from": string(p.Status),
		"to":   string(next),
	})
	p.Status = next
	return p, nil
}

// ----------------- Testimonies -----------------

type TestimonyInput struct {
	ChurchID     string `json:"church_id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Content      string `json:"content"`
	AllowPublish bool   `json:"allow_publish"`
}

func (s *PastoralService) SubmitTestimony(ctx context.Context, in TestimonyInput) (models.Testimony, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Content = strings.TrimSpace(in.Content)
	if err := validate.Collect(
		validate.UUID("church_id", in.ChurchID),
		validate.Required("name", in.Name),
		validate.MaxLen("name", in.Name, 200),
		validate.OptionalPhone("phone", in.Phone),
		validate.Required("content", in.Content),
		validate.MaxLen("content", in.Content, 10000),
	); err != nil {
		return models.Testimony{}, err
	}
	var phone *string
	if p := validate.NormalizePhone(in.Phone); p != "" {
		phone = &p
	}
	return s.testimonies.Create(ctx, models.Testimony{
		ChurchID:     in.ChurchID,
		Name:         in.Name,
		Phone:        phone,
		Content:      in.Content,
		AllowPublish: in.AllowPublish,
		Status:       models.TestimonyPending,
	})
}

func (s *PastoralService) ListTestimonies(ctx context.Context, churchID string, status models.TestimonyStatus, limit, offset int) ([]models.Testimony, error) {
	return s.testimonies.List(ctx, churchID, status, limit, offset)
}

func (s *PastoralService) ModerateTestimony(ctx context.Context, churchID, actorID, id string, next models.TestimonyStatus) (models.Testimony, error) {
	t, err := s.testimonies.GetByID(ctx, churchID, id)
	if err != nil {
		return models.Testimony{}, err
	}
	if !t.Status.CanMoveTo(next) {
		return models.Testimony{}, ErrInvalidTransition
	}
	if err := s.testimonies.UpdateStatus(ctx, churchID, id, next); err != nil {
		return models.Testimony{}, err
	}
	s.audit.Record(churchID, actorID, "testimony", id, "moderated", map[string]any{"status": string(next)})
	t.Status = next
	return t, nil
}

// PublicTestimonies lists approved testimonies whose author agreed to publication.
func (s *PastoralService) PublicTestimonies(ctx context.Context, churchID string, limit int) ([]models.Testimony, error) {
	if _, err := s.churches.GetByID(ctx, churchID); err != nil {
		return nil, err
	}
	list, err := s.testimonies.ListPublished(ctx, churchID, limit)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Phone = nil
	}
	return list, nil
}
