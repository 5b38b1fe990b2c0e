package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/baharkarakas/church-backend/internal/models"
	repo "github.com/baharkarakas/church-backend/internal/repository"
)

const upcomingEvents = 5

type DashboardService struct {
	profiles    repo.Profiles
	events      repo.Events
	prayers     repo.PrayerRequests
	testimonies repo.Testimonies
	volunteers  repo.Volunteers
	finance     *FinanceService
	now         func() time.Time
}

func NewDashboardService(p repo.Profiles, e repo.Events, pr repo.PrayerRequests, t repo.Testimonies, v repo.Volunteers, f *FinanceService) *DashboardService {
	return &DashboardService{profiles: p, events: e, prayers: pr, testimonies: t, volunteers: v, finance: f, now: time.Now}
}

// Get runs the independent dashboard queries concurrently; the first failure cancels the rest.
func (s *DashboardService) Get(ctx context.Context, churchID string) (models.Dashboard, error) {
	var d models.Dashboard
	now := s.now()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		d.Members, err = s.profiles.CountByStatus(ctx, churchID, models.StatusMember)
		return err
	})
	g.Go(func() (err error) {
		d.Visitors, err = s.profiles.CountByStatus(ctx, churchID, models.StatusVisitor)
		return err
	})
	g.Go(func() (err error) {
		d.UpcomingEvents, err = s.events.List(ctx, churchID, now, upcomingEvents)
		return err
	})
	g.Go(func() (err error) {
		d.OpenPrayers, err = s.prayers.CountOpen(ctx, churchID)
		return err
	})
	g.Go(func() (err error) {
		d.PendingTestimony, err = s.testimonies.CountByStatus(ctx, churchID, models.TestimonyPending)
		return err
	})
	g.Go(func() (err error) {
		d.ActiveVolunteers, err = s.volunteers.CountByStatus(ctx, churchID, models.VolunteerActive)
		return err
	})
	g.Go(func() (err error) {
		d.Finance, err = s.finance.MonthSummary(ctx, churchID, now)
		return err
	})

	if err := g.Wait(); err != nil {
		return models.Dashboard{}, err
	}
	if d.UpcomingEvents == nil {
		d.UpcomingEvents = []models.Event{}
	}
	return d, nil
}
