package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/baharkarakas/church-backend/internal/api/validate"
	"github.com/baharkarakas/church-backend/internal/models"
	repo "github.com/baharkarakas/church-backend/internal/repository"
)

// playlistFanout bounds concurrent lookups while hydrating a playlist.
const playlistFanout = 4

type LiturgyService struct {
	liturgies repo.Liturgies
}

func NewLiturgyService(l repo.Liturgies) *LiturgyService {
	return &LiturgyService{liturgies: l}
}

type LiturgyInput struct {
	Title string `json:"title"`
	Date  string `json:"date"` // YYYY-MM-DD
}

func (s *LiturgyService) Create(ctx context.Context, churchID string, in LiturgyInput) (models.Liturgy, error) {
	in.Title = strings.TrimSpace(in.Title)
	var dateErr *validate.ErrField
	date, err := time.Parse(time.DateOnly, strings.TrimSpace(in.Date))
	if err != nil {
		dateErr = &validate.ErrField{Field: "date", Msg: "must be YYYY-MM-DD"}
	}
	if err := validate.Collect(
		validate.Required("title", in.Title),
		validate.MaxLen("title", in.Title, 200),
		dateErr,
	); err != nil {
		return models.Liturgy{}, err
	}
	return s.liturgies.Create(ctx, models.Liturgy{ChurchID: churchID, Title: in.Title, Date: date})
}

func (s *LiturgyService) List(ctx context.Context, churchID string, limit, offset int) ([]models.Liturgy, error) {
	return s.liturgies.List(ctx, churchID, limit, offset)
}

type ItemInput struct {
	Position    int             `json:"position"`
	Type        models.ItemType `json:"type"`
	ReferenceID string          `json:"reference_id"`
	Title       string          `json:"title"`
	Minutes     int             `json:"minutes"`
	Notes       string          `json:"notes"`
}

// AddItem appends an item; a zero position puts it last. Songs and
// announcements must reference an existing row of the same church.
func (s *LiturgyService) AddItem(ctx context.Context, churchID, liturgyID string, in ItemInput) (models.LiturgyItem, error) {
	in.Title = strings.TrimSpace(in.Title)
	var refErr, titleErr *validate.ErrField
	if in.Type.NeedsReference() {
		refErr = validate.UUID("reference_id", in.ReferenceID)
	} else if in.Title == "" {
		titleErr = validate.Required("title", in.Title)
	}
	if err := validate.Collect(
		validate.OneOf("type", string(in.Type),
			string(models.ItemSong), string(models.ItemAnnouncement), string(models.ItemReading), string(models.ItemFree)),
		validate.MinInt("position", int64(in.Position), 0),
		validate.MinInt("minutes", int64(in.Minutes), 0),
		validate.MaxLen("title", in.Title, 200),
		refErr, titleErr,
	); err != nil {
		return models.LiturgyItem{}, err
	}
	if _, err := s.liturgies.GetByID(ctx, churchID, liturgyID); err != nil {
		return models.LiturgyItem{}, err
	}

	item := models.LiturgyItem{
		LiturgyID: liturgyID,
		Position:  in.Position,
		Type:      in.Type,
		Title:     in.Title,
		Minutes:   in.Minutes,
		Notes:     strings.TrimSpace(in.Notes),
	}
	if in.Type.NeedsReference() {
		title, err := s.referenceTitle(ctx, churchID, in.Type, in.ReferenceID)
		if errors.Is(err, repo.ErrNotFound) {
			return models.LiturgyItem{}, validate.Errs{{Field: "reference_id", Msg: "not found"}}
		}
		if err != nil {
			return models.LiturgyItem{}, err
		}
		if item.Title == "" {
			item.Title = title
		}
		ref := in.ReferenceID
		item.ReferenceID = &ref
	}
	return s.liturgies.AddItem(ctx, item)
}

func (s *LiturgyService) referenceTitle(ctx context.Context, churchID string, t models.ItemType, id string) (string, error) {
	if t == models.ItemSong {
		song, err := s.liturgies.GetSong(ctx, churchID, id)
		return song.Title, err
	}
	a, err := s.liturgies.GetAnnouncement(ctx, churchID, id)
	return a.Title, err
}

// Playlist returns the liturgy with each item joined to the song or
// announcement it references. Entries keep item order. A reference that no
// longer exists leaves the entry without detail.
func (s *LiturgyService) Playlist(ctx context.Context, churchID, liturgyID string) (models.Playlist, error) {
	l, err := s.liturgies.GetByID(ctx, churchID, liturgyID)
	if err != nil {
		return models.Playlist{}, err
	}
	items, err := s.liturgies.Items(ctx, liturgyID)
	if err != nil {
		return models.Playlist{}, err
	}

	entries := make([]models.PlaylistEntry, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(playlistFanout)
	for i, it := range items {
		entries[i].LiturgyItem = it
		if !it.Type.NeedsReference() || it.ReferenceID == nil {
			continue
		}
		i, it := i, it
		g.Go(func() error {
			switch it.Type {
			case models.ItemSong:
				song, err := s.liturgies.GetSong(gctx, churchID, *it.ReferenceID)
				if err == nil {
					entries[i].Song = &song
				}
				return ignoreNotFound(err)
			case models.ItemAnnouncement:
				a, err := s.liturgies.GetAnnouncement(gctx, churchID, *it.ReferenceID)
				if err == nil {
					entries[i].Announcement = &a
				}
				return ignoreNotFound(err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.Playlist{}, err
	}

	total := 0
	for _, e := range entries {
		total += e.Minutes
	}
	return models.Playlist{Liturgy: l, Items: entries, TotalMinutes: total}, nil
}

func ignoreNotFound(err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	return err
}

// ----------------- Songs & announcements -----------------

type SongInput struct {
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Key      string `json:"key"`
	BPM      *int   `json:"bpm"`
	ChordURL string `json:"chord_url"`
	VideoURL string `json:"video_url"`
}

func (s *LiturgyService) CreateSong(ctx context.Context, churchID string, in SongInput) (models.Song, error) {
	in.Title = strings.TrimSpace(in.Title)
	var bpmErr *validate.ErrField
	if in.BPM != nil {
		bpmErr = validate.MinInt("bpm", int64(*in.BPM), 1)
	}
	if err := validate.Collect(
		validate.Required("title", in.Title),
		validate.MaxLen("title", in.Title, 200),
		validate.MaxLen("key", in.Key, 8),
		bpmErr,
	); err != nil {
		return models.Song{}, err
	}
	return s.liturgies.CreateSong(ctx, models.Song{
		ChurchID: churchID,
		Title:    in.Title,
		Artist:   strings.TrimSpace(in.Artist),
		Key:      strings.TrimSpace(in.Key),
		BPM:      in.BPM,
		ChordURL: strings.TrimSpace(in.ChordURL),
		VideoURL: strings.TrimSpace(in.VideoURL),
	})
}

func (s *LiturgyService) ListSongs(ctx context.Context, churchID string) ([]models.Song, error) {
	return s.liturgies.ListSongs(ctx, churchID)
}

type AnnouncementInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (s *LiturgyService) CreateAnnouncement(ctx context.Context, churchID string, in AnnouncementInput) (models.Announcement, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	if err := validate.Collect(
		validate.Required("title", in.Title),
		validate.MaxLen("title", in.Title, 200),
		validate.Required("content", in.Content),
	); err != nil {
		return models.Announcement{}, err
	}
	return s.liturgies.CreateAnnouncement(ctx, models.Announcement{ChurchID: churchID, Title: in.Title, Content: in.Content})
}

func (s *LiturgyService) ListAnnouncements(ctx context.Context, churchID string, limit int) ([]models.Announcement, error) {
	return s.liturgies.ListAnnouncements(ctx, churchID, limit)
}
