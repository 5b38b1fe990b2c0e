package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/church-backend/internal/api/validate"
	"github.com/baharkarakas/church-backend/internal/models"
	repo "github.com/baharkarakas/church-backend/internal/repository"
	"github.com/baharkarakas/church-backend/internal/repository/mocks"
)

type pastoralFixture struct {
	churches *mocks.Churches
	prayers  *mocks.PrayerRequests
	tests    *mocks.Testimonies
	svc      *PastoralService
}

func newPastoral() pastoralFixture {
	f := pastoralFixture{churches: &mocks.Churches{}, prayers: &mocks.PrayerRequests{}, tests: &mocks.Testimonies{}}
	f.svc = NewPastoralService(f.churches, f.prayers, f.tests, nil)
	return f
}

func TestSubmitPrayer(t *testing.T) {
	f := newPastoral()
	f.prayers.On("Create", mock.Anything, mock.MatchedBy(func(p models.PrayerRequest) bool {
		return p.Status == models.PrayerNew && p.Phone == nil && p.Email == nil && p.Private
	})).Return(models.PrayerRequest{ID: "p1", Status: models.PrayerNew}, nil)

	got, err := f.svc.SubmitPrayer(context.Background(), PrayerInput{
		ChurchID: churchID, Name: "João", Request: "Pela família", Private: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)

	_, err = f.svc.SubmitPrayer(context.Background(), PrayerInput{ChurchID: "nope", Phone: "12"})
	var errs validate.Errs
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 4)
}

func TestMovePrayer(t *testing.T) {
	tests := []struct {
		from, to models.PrayerStatus
		wantErr  error
	}{
		{models.PrayerNew, models.PrayerPraying, nil},
		{models.PrayerPraying, models.PrayerAnswered, nil},
		{models.PrayerNew, models.PrayerArchived, nil},
		{models.PrayerNew, models.PrayerAnswered, ErrInvalidTransition},
		{models.PrayerArchived, models.PrayerNew, ErrInvalidTransition},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			f := newPastoral()
			f.prayers.On("GetByID", mock.Anything, "c1", "p1").Return(models.PrayerRequest{ID: "p1", Status: tt.from}, nil)
			f.prayers.On("UpdateStatus", mock.Anything, "c1", "p1", tt.to).Return(nil)

			got, err := f.svc.MovePrayer(context.Background(), "c1", "u1", "p1", tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				f.prayers.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, got.Status)
		})
	}
}

func TestModerateTestimony(t *testing.T) {
	f := newPastoral()
	f.tests.On("GetByID", mock.Anything, "c1", "t1").Return(models.Testimony{ID: "t1", Status: models.TestimonyPending}, nil).Once()
	f.tests.On("UpdateStatus", mock.Anything, "c1", "t1", models.TestimonyApproved).Return(nil)

	got, err := f.svc.ModerateTestimony(context.Background(), "c1", "u1", "t1", models.TestimonyApproved)
	require.NoError(t, err)
	assert.Equal(t, models.TestimonyApproved, got.Status)

	f.tests.On("GetByID", mock.Anything, "c1", "t1").Return(models.Testimony{ID: "t1", Status: models.TestimonyApproved}, nil)
	_, err = f.svc.ModerateTestimony(context.Background(), "c1", "u1", "t1", models.TestimonyRejected)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestPublicTestimoniesHidePhone(t *testing.T) {
	f := newPastoral()
	phone := "11987654321"
	f.churches.On("GetByID", mock.Anything, "c1").Return(models.Church{ID: "c1"}, nil)
	f.tests.On("ListPublished", mock.Anything, "c1", 20).Return([]models.Testimony{{ID: "t1", Phone: &phone}}, nil)

	list, err := f.svc.PublicTestimonies(context.Background(), "c1", 20)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].Phone)

	f.churches.On("GetByID", mock.Anything, "c2").Return(models.Church{}, repo.ErrNotFound)
	_, err = f.svc.PublicTestimonies(context.Background(), "c2", 20)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
