package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgrid/turf-booking-service/internal/domain"
	reservationRepo "github.com/playgrid/turf-booking-service/internal/infra/storage/reservation"
	"github.com/playgrid/turf-booking-service/internal/integrations/turfservice"
	"github.com/playgrid/turf-booking-service/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubReservationRepo struct {
	reservation *domain.Reservation
	list        []*domain.Reservation
	getErr      error

	cancelledID     int64
	cancelledStatus domain.ReservationStatus
	cancelledReason string
}

func (s *stubReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.reservation, nil
}

func (s *stubReservationRepo) GetByUserID(ctx context.Context, userID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	return s.list, nil
}

func (s *stubReservationRepo) GetByTurfWithFilter(ctx context.Context, filter domain.TurfReservationsFilter) ([]*domain.Reservation, error) {
	return s.list, nil
}

func (s *stubReservationRepo) Cancel(ctx context.Context, id int64, status domain.ReservationStatus, reason string) error {
	s.cancelledID = id
	s.cancelledStatus = status
	s.cancelledReason = reason
	return nil
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

type stubCache struct {
	invalidatedTurf  int64
	invalidatedDates []time.Time
}

func (c *stubCache) Invalidate(ctx context.Context, turfID int64, dates ...time.Time) {
	c.invalidatedTurf = turfID
	c.invalidatedDates = dates
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func confirmedReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:            5,
		UserID:        1,
		TurfID:        42,
		Plan:          domain.PlanSingle,
		PlanStartDate: date(2024, 3, 6),
		PlanEndDate:   date(2024, 3, 6),
		StartTime:     "10:00",
		EndTime:       "11:00",
		Status:        domain.StatusConfirmed,
	}
}

func managedTurf() *turfservice.Turf {
	return &turfservice.Turf{ID: 42, OwnerID: 7, StaffIDs: []int64{8}, IsActive: true}
}

func newTestService(repo *stubReservationRepo, turfs *stubTurfClient, cache *stubCache) *Service {
	return NewService(repo, turfs, cache, nopLogger{})
}

func TestGetByID_OwnerSeesOwnReservation(t *testing.T) {
	svc := newTestService(
		&stubReservationRepo{reservation: confirmedReservation()},
		&stubTurfClient{err: turfservice.ErrTurfNotFound},
		&stubCache{},
	)

	resp, err := svc.GetByID(context.Background(), 5, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "2024-03-06", resp.PlanStartDate)
}

func TestGetByID_ManagerSeesForeignReservation(t *testing.T) {
	svc := newTestService(
		&stubReservationRepo{reservation: confirmedReservation()},
		&stubTurfClient{turf: managedTurf()},
		&stubCache{},
	)

	// user=7 владелец площадки, user=8 сотрудник
	_, err := svc.GetByID(context.Background(), 5, 7)
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), 5, 8)
	assert.NoError(t, err)
}

func TestGetByID_StrangerDenied(t *testing.T) {
	svc := newTestService(
		&stubReservationRepo{reservation: confirmedReservation()},
		&stubTurfClient{turf: managedTurf()},
		&stubCache{},
	)

	_, err := svc.GetByID(context.Background(), 5, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(
		&stubReservationRepo{getErr: reservationRepo.ErrReservationNotFound},
		&stubTurfClient{turf: managedTurf()},
		&stubCache{},
	)

	_, err := svc.GetByID(context.Background(), 5, 1)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetUserReservations_InvalidStatusRejected(t *testing.T) {
	svc := newTestService(&stubReservationRepo{}, &stubTurfClient{}, &stubCache{})

	bad := "paused"
	_, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserID: 1,
		Status: &bad,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetTurfReservations_ManagerOnly(t *testing.T) {
	svc := newTestService(
		&stubReservationRepo{list: []*domain.Reservation{confirmedReservation()}},
		&stubTurfClient{turf: managedTurf()},
		&stubCache{},
	)

	resp, err := svc.GetTurfReservations(context.Background(), &models.GetTurfReservationsRequest{
		TurfID: 42,
		UserID: 7,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 1)

	_, err = svc.GetTurfReservations(context.Background(), &models.GetTurfReservationsRequest{
		TurfID: 42,
		UserID: 99,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_OwnerCancelsOwnReservation(t *testing.T) {
	repo := &stubReservationRepo{reservation: confirmedReservation()}
	cache := &stubCache{}
	svc := newTestService(repo, &stubTurfClient{turf: managedTurf()}, cache)

	err := svc.Cancel(context.Background(), 5, &models.CancelReservationRequest{
		UserID:             1,
		CancellationReason: "не смогу прийти",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), repo.cancelledID)
	assert.Equal(t, domain.StatusCancelledByUser, repo.cancelledStatus)
	assert.Equal(t, "не смогу прийти", repo.cancelledReason)

	// Освободившиеся даты выброшены из кэша
	assert.Equal(t, int64(42), cache.invalidatedTurf)
	require.Len(t, cache.invalidatedDates, 1)
	assert.Equal(t, date(2024, 3, 6), cache.invalidatedDates[0])
}

func TestCancel_ManagerCancelsWithTurfStatus(t *testing.T) {
	repo := &stubReservationRepo{reservation: confirmedReservation()}
	svc := newTestService(repo, &stubTurfClient{turf: managedTurf()}, &stubCache{})

	err := svc.Cancel(context.Background(), 5, &models.CancelReservationRequest{
		UserID:             7,
		CancellationReason: "ремонт покрытия",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByTurf, repo.cancelledStatus)
}

func TestCancel_StrangerDenied(t *testing.T) {
	repo := &stubReservationRepo{reservation: confirmedReservation()}
	svc := newTestService(repo, &stubTurfClient{turf: managedTurf()}, &stubCache{})

	err := svc.Cancel(context.Background(), 5, &models.CancelReservationRequest{UserID: 99})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, repo.cancelledID)
}

func TestCancel_CompletedCannotBeCancelled(t *testing.T) {
	res := confirmedReservation()
	res.Status = domain.StatusCompleted
	repo := &stubReservationRepo{reservation: res}
	svc := newTestService(repo, &stubTurfClient{turf: managedTurf()}, &stubCache{})

	err := svc.Cancel(context.Background(), 5, &models.CancelReservationRequest{UserID: 1})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_WeeklyInvalidatesOnlyRecurringDates(t *testing.T) {
	res := confirmedReservation()
	res.Plan = domain.PlanWeekly
	res.PlanStartDate = date(2024, 3, 4)
	res.PlanEndDate = date(2024, 3, 17)
	res.RecurringDays = []int{1}

	repo := &stubReservationRepo{reservation: res}
	cache := &stubCache{}
	svc := newTestService(repo, &stubTurfClient{turf: managedTurf()}, cache)

	err := svc.Cancel(context.Background(), 5, &models.CancelReservationRequest{UserID: 1})
	require.NoError(t, err)

	// Понедельники 4 и 11 марта
	require.Len(t, cache.invalidatedDates, 2)
	assert.Equal(t, date(2024, 3, 4), cache.invalidatedDates[0])
	assert.Equal(t, date(2024, 3, 11), cache.invalidatedDates[1])
}
