package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgrid/turf-booking-service/internal/domain"
	scheduleRepo "github.com/playgrid/turf-booking-service/internal/infra/storage/schedule"
	"github.com/playgrid/turf-booking-service/internal/integrations/turfservice"
	"github.com/playgrid/turf-booking-service/internal/service/schedule/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubScheduleRepo struct {
	byTurf   *domain.TurfSchedule
	fallback *domain.TurfSchedule

	updated *domain.TurfSchedule
	created *domain.TurfSchedule
}

func (s *stubScheduleRepo) Create(ctx context.Context, sched *domain.TurfSchedule) (*domain.TurfSchedule, error) {
	sched.ID = 77
	s.created = sched
	return sched, nil
}

func (s *stubScheduleRepo) Update(ctx context.Context, sched *domain.TurfSchedule) error {
	s.updated = sched
	return nil
}

func (s *stubScheduleRepo) GetByTurfID(ctx context.Context, turfID int64) (*domain.TurfSchedule, error) {
	if s.byTurf == nil {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	return s.byTurf, nil
}

func (s *stubScheduleRepo) GetWithFallback(ctx context.Context, turfID, ownerID int64) (*domain.TurfSchedule, error) {
	if s.fallback == nil {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	return s.fallback, nil
}

type stubTurfClient struct {
	turf *turfservice.Turf
	err  error
}

func (s *stubTurfClient) GetTurf(ctx context.Context, turfID int64) (*turfservice.Turf, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.turf, nil
}

func managedTurf() *turfservice.Turf {
	return &turfservice.Turf{ID: 42, OwnerID: 7, IsActive: true}
}

func TestGetForTurf_DefaultWhenNothingConfigured(t *testing.T) {
	svc := NewService(&stubScheduleRepo{}, &stubTurfClient{turf: managedTurf()}, nopLogger{})

	resp, err := svc.GetForTurf(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, "default", resp.Source)
	assert.Equal(t, domain.DefaultOpenHour, resp.OpenHour)
	assert.Equal(t, domain.DefaultCloseHour, resp.CloseHour)
	assert.Equal(t, 17, resp.SlotsPerDay)
}

func TestGetForTurf_TurfLevelSchedule(t *testing.T) {
	turfID := int64(42)
	svc := NewService(
		&stubScheduleRepo{fallback: &domain.TurfSchedule{
			TurfID: &turfID, OwnerID: 7, OpenHour: 9, CloseHour: 18, SlotDurationMinutes: 60,
		}},
		&stubTurfClient{turf: managedTurf()},
		nopLogger{},
	)

	resp, err := svc.GetForTurf(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, "turf", resp.Source)
	assert.Equal(t, 9, resp.OpenHour)
	assert.Equal(t, 9, resp.SlotsPerDay)
}

func TestGetForTurf_OwnerWideSchedule(t *testing.T) {
	svc := NewService(
		&stubScheduleRepo{fallback: &domain.TurfSchedule{
			OwnerID: 7, OpenHour: 8, CloseHour: 20, SlotDurationMinutes: 90,
		}},
		&stubTurfClient{turf: managedTurf()},
		nopLogger{},
	)

	resp, err := svc.GetForTurf(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "owner", resp.Source)
}

func TestGetForTurf_TurfNotFound(t *testing.T) {
	svc := NewService(&stubScheduleRepo{}, &stubTurfClient{err: turfservice.ErrTurfNotFound}, nopLogger{})

	_, err := svc.GetForTurf(context.Background(), 42)
	assert.ErrorIs(t, err, ErrTurfNotFound)
}

func upsertRequest(userID int64) *models.UpsertScheduleRequest {
	return &models.UpsertScheduleRequest{
		UserID:              userID,
		TurfID:              42,
		OpenHour:            8,
		CloseHour:           20,
		SlotDurationMinutes: 60,
	}
}

func TestUpsert_CreatesScheduleForManager(t *testing.T) {
	repo := &stubScheduleRepo{}
	svc := NewService(repo, &stubTurfClient{turf: managedTurf()}, nopLogger{})

	resp, err := svc.Upsert(context.Background(), upsertRequest(7))
	require.NoError(t, err)

	require.NotNil(t, repo.created)
	require.NotNil(t, repo.created.TurfID)
	assert.Equal(t, int64(42), *repo.created.TurfID)
	assert.Equal(t, int64(7), repo.created.OwnerID)
	assert.Equal(t, "turf", resp.Source)
	assert.Equal(t, 12, resp.SlotsPerDay)
}

func TestUpsert_UpdatesExistingSchedule(t *testing.T) {
	turfID := int64(42)
	repo := &stubScheduleRepo{byTurf: &domain.TurfSchedule{
		ID: 3, TurfID: &turfID, OwnerID: 7, OpenHour: 6, CloseHour: 23, SlotDurationMinutes: 60,
	}}
	svc := NewService(repo, &stubTurfClient{turf: managedTurf()}, nopLogger{})

	_, err := svc.Upsert(context.Background(), upsertRequest(7))
	require.NoError(t, err)

	require.NotNil(t, repo.updated)
	assert.Equal(t, 8, repo.updated.OpenHour)
	assert.Equal(t, 20, repo.updated.CloseHour)
	assert.Nil(t, repo.created)
}

func TestUpsert_NonManagerDenied(t *testing.T) {
	svc := NewService(&stubScheduleRepo{}, &stubTurfClient{turf: managedTurf()}, nopLogger{})

	_, err := svc.Upsert(context.Background(), upsertRequest(99))
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpsert_ValidationRejectsBadWindows(t *testing.T) {
	svc := NewService(&stubScheduleRepo{}, &stubTurfClient{turf: managedTurf()}, nopLogger{})

	tests := []struct {
		name                  string
		open, close, duration int
	}{
		{"open after close", 20, 8, 60},
		{"open equals close", 10, 10, 60},
		{"close past 23", 8, 24, 60},
		{"duration too short", 8, 20, 10},
		{"duration too long", 8, 20, 300},
		{"duration does not divide window", 8, 20, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := upsertRequest(7)
			req.OpenHour = tt.open
			req.CloseHour = tt.close
			req.SlotDurationMinutes = tt.duration

			_, err := svc.Upsert(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
