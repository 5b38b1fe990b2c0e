package services

import (
	"context"
	"regexp"
	"strings"

	"github.com/baharkarakas/church-backend/internal/api/validate"
	"github.com/baharkarakas/church-backend/internal/auth"
	"github.com/baharkarakas/church-backend/internal/models"
	repo "github.com/baharkarakas/church-backend/internal/repository"
)

var slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ChurchService onboards tenants and their first administrator.
type ChurchService struct {
	churches repo.Churches
	profiles repo.Profiles
}

func NewChurchService(c repo.Churches, p repo.Profiles) *ChurchService {
	return &ChurchService{churches: c, profiles: p}
}

func (s *ChurchService) Create(ctx context.Context, name, slug string) (models.Church, error) {
	name = strings.TrimSpace(name)
	slug = strings.ToLower(strings.TrimSpace(slug))
	var slugErr *validate.ErrField
	if slug != "" && !slugRe.MatchString(slug) {
		slugErr = &validate.ErrField{Field: "slug", Msg: "lowercase letters, digits and dashes only"}
	}
	if err := validate.Collect(
		validate.Required("name", name),
		validate.MaxLen("name", name, 200),
		validate.Required("slug", slug),
		slugErr,
	); err != nil {
		return models.Church{}, err
	}
	return s.churches.Create(ctx, models.Church{Name: name, Slug: slug})
}

func (s *ChurchService) Get(ctx context.Context, id string) (models.Church, error) {
	return s.churches.GetByID(ctx, id)
}

type AdminInput struct {
	ChurchID string
	Name     string
	Email    string
	Phone    string
	Password string
}

// CreateAdmin adds a profile with the admin role and a login password.
func (s *ChurchService) CreateAdmin(ctx context.Context, in AdminInput) (models.Profile, error) {
	if err := validate.Collect(
		validate.UUID("church", in.ChurchID),
		validate.Required("name", in.Name),
		validate.Required("email", in.Email),
		validate.Email("email", in.Email),
		validate.Phone("phone", in.Phone),
	); err != nil {
		return models.Profile{}, err
	}
	if _, err := s.churches.GetByID(ctx, in.ChurchID); err != nil {
		return models.Profile{}, err
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.Profile{}, err
	}
	email := strings.TrimSpace(in.Email)
	return s.profiles.Create(ctx, models.Profile{
		ChurchID:     in.ChurchID,
		Name:         strings.TrimSpace(in.Name),
		Email:        &email,
		Phone:        validate.NormalizePhone(in.Phone),
		Role:         models.RoleAdmin,
		Status:       models.StatusMember,
		PasswordHash: &hash,
	})
}
