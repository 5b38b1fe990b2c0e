package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/baharkarakas/church-backend/internal/api/validate"
	"github.com/baharkarakas/church-backend/internal/links"
	"github.com/baharkarakas/church-backend/internal/models"
	repo "github.com/baharkarakas/church-backend/internal/repository"
)

const MaxAvatarBytes = 5 << 20

var avatarExt = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// ObjectStore is the subset of the storage client used for uploads.
type ObjectStore interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) error
	PublicURL(path string) string
}

type PeopleService struct {
	profiles repo.Profiles
	store    ObjectStore
	now      func() time.Time
}

// NewPeopleService accepts a nil store; avatar uploads then fail with ErrStorageDisabled.
func NewPeopleService(p repo.Profiles, store ObjectStore) *PeopleService {
	return &PeopleService{profiles: p, store: store, now: time.Now}
}

type PersonInput struct {
	Name      string              `json:"name"`
	Phone     string              `json:"phone"`
	Email     string              `json:"email"`
	Address   string              `json:"address"`
	BirthDate string              `json:"birth_date"` // YYYY-MM-DD
	Status    models.MemberStatus `json:"status"`
	Role      models.Role         `json:"role"`

	birth *time.Time
}

func (in *PersonInput) normalize() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Address = strings.TrimSpace(in.Address)
	if in.Status == "" {
		in.Status = models.StatusVisitor
	}
	if in.Role == "" {
		in.Role = models.RoleMember
	}
	var statusErr, roleErr, birthErr *validate.ErrField
	in.birth = nil
	if v := strings.TrimSpace(in.BirthDate); v != "" {
		d, err := time.Parse(time.DateOnly, v)
		if err != nil {
			birthErr = &validate.ErrField{Field: "birth_date", Msg: "must be YYYY-MM-DD"}
		} else {
			in.birth = &d
		}
	}
	if !in.Status.Valid() {
		statusErr = validate.OneOf("status", string(in.Status),
			string(models.StatusMember), string(models.StatusVisitor), string(models.StatusInactive))
	}
	if !in.Role.Valid() {
		roleErr = validate.OneOf("role", string(in.Role),
			string(models.RoleAdmin), string(models.RolePastor), string(models.RoleTreasurer),
			string(models.RoleLeader), string(models.RoleMember))
	}
	return validate.Collect(
		validate.Required("name", in.Name),
		validate.MaxLen("name", in.Name, 200),
		validate.Phone("phone", in.Phone),
		validate.Email("email", in.Email),
		validate.MaxLen("address", in.Address, 500),
		birthErr,
		statusErr,
		roleErr,
	)
}

// Register creates a member or visitor record. Email is optional.
// Only an admin may create a profile with a staff role.
func (s *PeopleService) Register(ctx context.Context, churchID string, actor models.Role, in PersonInput) (models.Profile, error) {
	if err := in.normalize(); err != nil {
		return models.Profile{}, err
	}
	if actor != models.RoleAdmin && in.Role != models.RoleMember {
		return models.Profile{}, ErrForbidden
	}
	return s.profiles.Create(ctx, models.Profile{
		ChurchID:  churchID,
		Name:      in.Name,
		Email:     validate.OptionalString(in.Email),
		Phone:     validate.NormalizePhone(in.Phone),
		BirthDate: in.birth,
		Address:   in.Address,
		Role:      in.Role,
		Status:    in.Status,
	})
}

func (s *PeopleService) List(ctx context.Context, churchID string, f models.ProfileFilter) ([]models.Profile, error) {
	f.Query = strings.TrimSpace(f.Query)
	if f.Status != "" && !f.Status.Valid() {
		return nil, validate.Errs{{Field: "status", Msg: "invalid status"}}
	}
	return s.profiles.List(ctx, churchID, f)
}

func (s *PeopleService) Get(ctx context.Context, churchID, id string) (models.Profile, error) {
	return s.profiles.GetByID(ctx, churchID, id)
}

// Update replaces the editable fields; password and avatar are untouched.
// An empty role keeps the current one. Non-admins can neither change roles
// nor edit an admin.
func (s *PeopleService) Update(ctx context.Context, churchID, id string, actor models.Role, in PersonInput) (models.Profile, error) {
	keepRole := in.Role == ""
	if err := in.normalize(); err != nil {
		return models.Profile{}, err
	}
	p, err := s.profiles.GetByID(ctx, churchID, id)
	if err != nil {
		return models.Profile{}, err
	}
	if keepRole {
		in.Role = p.Role
	}
	if actor != models.RoleAdmin && (p.Role == models.RoleAdmin || in.Role != p.Role) {
		return models.Profile{}, ErrForbidden
	}
	p.Name = in.Name
	p.Email = validate.OptionalString(in.Email)
	p.Phone = validate.NormalizePhone(in.Phone)
	p.BirthDate = in.birth
	p.Address = in.Address
	p.Role = in.Role
	p.Status = in.Status
	if err := s.profiles.Update(ctx, p); err != nil {
		return models.Profile{}, err
	}
	return s.profiles.GetByID(ctx, churchID, id)
}

// Delete removes a profile. Non-admins may only remove plain members.
func (s *PeopleService) Delete(ctx context.Context, churchID, id string, actor models.Role) error {
	if actor != models.RoleAdmin {
		p, err := s.profiles.GetByID(ctx, churchID, id)
		if err != nil {
			return err
		}
		if p.Role != models.RoleMember {
			return ErrForbidden
		}
	}
	return s.profiles.Delete(ctx, churchID, id)
}

// UploadAvatar stores an image and points the profile's avatar_url at it.
func (s *PeopleService) UploadAvatar(ctx context.Context, churchID, id string, data []byte, contentType string) (models.Profile, error) {
	if s.store == nil {
		return models.Profile{}, ErrStorageDisabled
	}
	ext, ok := avatarExt[contentType]
	if !ok {
		return models.Profile{}, fmt.Errorf("%w: content type %q", ErrUnsupportedUpload, contentType)
	}
	if len(data) == 0 || len(data) > MaxAvatarBytes {
		return models.Profile{}, fmt.Errorf("%w: size must be between 1 byte and 5 MiB", ErrUnsupportedUpload)
	}
	if _, err := s.profiles.GetByID(ctx, churchID, id); err != nil {
		return models.Profile{}, err
	}

	path := fmt.Sprintf("avatars/%s/%s-%d.%s", churchID, id, s.now().Unix(), ext)
	if err := s.store.Upload(ctx, path, data, contentType); err != nil {
		return models.Profile{}, fmt.Errorf("upload avatar: %w", err)
	}
	if err := s.profiles.SetAvatar(ctx, churchID, id, s.store.PublicURL(path)); err != nil {
		return models.Profile{}, err
	}
	return s.profiles.GetByID(ctx, churchID, id)
}

type ProfileLinks struct {
	WhatsApp string `json:"whatsapp,omitempty"`
	Maps     string `json:"maps,omitempty"`
}

func (s *PeopleService) Links(ctx context.Context, churchID, id string) (ProfileLinks, error) {
	p, err := s.profiles.GetByID(ctx, churchID, id)
	if err != nil {
		return ProfileLinks{}, err
	}
	return ProfileLinks{
		WhatsApp: links.WhatsApp(p.Phone, ""),
		Maps:     links.Maps(p.Address),
	}, nil
}
