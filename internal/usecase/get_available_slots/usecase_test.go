package get_available_slots

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgrid/turf-booking-service/internal/domain"
	scheduleRepo "github.com/playgrid/turf-booking-service/internal/infra/storage/schedule"
	"github.com/playgrid/turf-booking-service/internal/integrations/turfservice"
)

type stubReservationRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (s *stubReservationRepo) GetCoveringDate(ctx context.Context, turfID int64, date time.Time) ([]*domain.Reservation, error) {
	return s.reservations, s.err
}

type stubScheduleRepo struct {
	schedule *domain.TurfSchedule
	err      error
}

func (s *stubScheduleRepo) GetWithFallback(ctx context.Context, turfID, ownerID int64) (*domain.TurfSchedule, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.schedule, nil
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

type memoryCache struct {
	payload []byte
	hit     bool
	stored  []byte
}

func (c *memoryCache) Get(ctx context.Context, turfID int64, date time.Time) ([]byte, bool) {
	return c.payload, c.hit
}

func (c *memoryCache) Set(ctx context.Context, turfID int64, date time.Time, payload []byte) {
	c.stored = payload
}

func activeTurf() *turfservice.Turf {
	return &turfservice.Turf{
		ID:       42,
		OwnerID:  7,
		Name:     "Центральный манеж",
		IsActive: true,
	}
}

func newTestUseCase(
	reservations *stubReservationRepo,
	schedules *stubScheduleRepo,
	turfs *stubTurfClient,
	cache *memoryCache,
) *UseCase {
	return NewUseCase(reservations, schedules, turfs, cache,
		domain.EmptyRecurrenceBlocksNothing, nopLogger{})
}

func TestExecute_ZeroDateRejected(t *testing.T) {
	uc := newTestUseCase(
		&stubReservationRepo{},
		&stubScheduleRepo{err: scheduleRepo.ErrScheduleNotFound},
		&stubTurfClient{turf: activeTurf()},
		&memoryCache{},
	)

	_, err := uc.Execute(context.Background(), &Request{TurfID: 42})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_InvalidTurfIDRejected(t *testing.T) {
	uc := newTestUseCase(
		&stubReservationRepo{},
		&stubScheduleRepo{err: scheduleRepo.ErrScheduleNotFound},
		&stubTurfClient{turf: activeTurf()},
		&memoryCache{},
	)

	_, err := uc.Execute(context.Background(), &Request{TurfID: 0, Date: date(2024, 3, 6)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_TurfNotFound(t *testing.T) {
	uc := newTestUseCase(
		&stubReservationRepo{},
		&stubScheduleRepo{err: scheduleRepo.ErrScheduleNotFound},
		&stubTurfClient{err: turfservice.ErrTurfNotFound},
		&memoryCache{},
	)

	_, err := uc.Execute(context.Background(), &Request{TurfID: 42, Date: date(2024, 3, 6)})
	assert.ErrorIs(t, err, ErrTurfNotFound)
}

func TestExecute_InactiveTurfRejected(t *testing.T) {
	turf := activeTurf()
	turf.IsActive = false

	uc := newTestUseCase(
		&stubReservationRepo{},
		&stubScheduleRepo{err: scheduleRepo.ErrScheduleNotFound},
		&stubTurfClient{turf: turf},
		&memoryCache{},
	)

	_, err := uc.Execute(context.Background(), &Request{TurfID: 42, Date: date(2024, 3, 6)})
	assert.ErrorIs(t, err, ErrTurfInactive)
}

func TestExecute_DefaultScheduleFallback(t *testing.T) {
	uc := newTestUseCase(
		&stubReservationRepo{},
		&stubScheduleRepo{err: scheduleRepo.ErrScheduleNotFound},
		&stubTurfClient{turf: activeTurf()},
		&memoryCache{},
	)

	resp, err := uc.Execute(context.Background(), &Request{TurfID: 42, Date: date(2024, 3, 6)})
	require.NoError(t, err)

	assert.Equal(t, "2024-03-06", resp.Date)
	assert.Equal(t, int64(42), resp.TurfID)
	assert.Len(t, resp.Slots, 17)
	assert.Equal(t, 0, resp.BookedCount)
}

func TestExecute_BookedCountCountsReservationsNotSlots(t *testing.T) {
	// Среда 2024-03-06: действуют single-бронирование на три слота
	// и weekly-бронирование на среду
	single := reservation(domain.PlanSingle, "09:00", "12:00", nil)
	weekly := reservation(domain.PlanWeekly, "18:00", "19:00", []int{3})
	weekly.ID = 2
	// Weekly на вторник в среду не действует
	offDay := reservation(domain.PlanWeekly, "20:00", "21:00", []int{2})
	offDay.ID = 3

	uc := newTestUseCase(
		&stubReservationRepo{reservations: []*domain.Reservation{single, weekly, offDay}},
		&stubScheduleRepo{err: scheduleRepo.ErrScheduleNotFound},
		&stubTurfClient{turf: activeTurf()},
		&memoryCache{},
	)

	resp, err := uc.Execute(context.Background(), &Request{TurfID: 42, Date: date(2024, 3, 6)})
	require.NoError(t, err)

	// Два действующих бронирования, хотя занято четыре слота
	assert.Equal(t, 2, resp.BookedCount)

	unavailable := 0
	for _, slot := range resp.Slots {
		if !slot.Available {
			unavailable++
		}
	}
	assert.Equal(t, 4, unavailable)
	assert.Len(t, resp.Slots, 17)
}

func TestExecute_CacheHitSkipsComputation(t *testing.T) {
	cached := &Response{
		Date:        "2024-03-06",
		TurfID:      42,
		Slots:       []Slot{},
		BookedCount: 5,
	}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	uc := newTestUseCase(
		&stubReservationRepo{reservations: []*domain.Reservation{
			reservation(domain.PlanSingle, "10:00", "11:00", nil),
		}},
		&stubScheduleRepo{err: scheduleRepo.ErrScheduleNotFound},
		&stubTurfClient{turf: activeTurf()},
		&memoryCache{payload: payload, hit: true},
	)

	resp, err := uc.Execute(context.Background(), &Request{TurfID: 42, Date: date(2024, 3, 6)})
	require.NoError(t, err)

	// Ответ взят из кэша, пересчет не выполнялся
	assert.Equal(t, 5, resp.BookedCount)
	assert.Empty(t, resp.Slots)
}

func TestExecute_StoresComputedGridInCache(t *testing.T) {
	cache := &memoryCache{}
	uc := newTestUseCase(
		&stubReservationRepo{},
		&stubScheduleRepo{err: scheduleRepo.ErrScheduleNotFound},
		&stubTurfClient{turf: activeTurf()},
		cache,
	)

	_, err := uc.Execute(context.Background(), &Request{TurfID: 42, Date: date(2024, 3, 6)})
	require.NoError(t, err)

	require.NotNil(t, cache.stored)
	var stored Response
	require.NoError(t, json.Unmarshal(cache.stored, &stored))
	assert.Equal(t, "2024-03-06", stored.Date)
	assert.Len(t, stored.Slots, 17)
}

func TestExecute_TurfSpecificScheduleUsed(t *testing.T) {
	turfID := int64(42)
	uc := newTestUseCase(
		&stubReservationRepo{},
		&stubScheduleRepo{schedule: &domain.TurfSchedule{
			ID:                  1,
			TurfID:              &turfID,
			OwnerID:             7,
			OpenHour:            9,
			CloseHour:           18,
			SlotDurationMinutes: 60,
		}},
		&stubTurfClient{turf: activeTurf()},
		&memoryCache{},
	)

	resp, err := uc.Execute(context.Background(), &Request{TurfID: 42, Date: date(2024, 3, 6)})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 9)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "18:00", resp.Slots[8].EndTime.String())
}
