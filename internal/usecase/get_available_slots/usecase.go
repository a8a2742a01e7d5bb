package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/playgrid/turf-booking-service/internal/domain"
	scheduleRepo "github.com/playgrid/turf-booking-service/internal/infra/storage/schedule"
	turfClient "github.com/playgrid/turf-booking-service/internal/integrations/turfservice"
)

// UseCase use case для получения сетки доступных слотов площадки
type UseCase struct {
	reservationRepo ReservationRepository
	scheduleRepo    ScheduleRepository
	turfClient      TurfServiceClient
	cache           SlotCache
	policy          domain.EmptyRecurrencePolicy
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	scheduleRepo ScheduleRepository,
	turfClient TurfServiceClient,
	cache SlotCache,
	policy domain.EmptyRecurrencePolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		scheduleRepo:    scheduleRepo,
		turfClient:      turfClient,
		cache:           cache,
		policy:          policy,
		logger:          logger,
	}
}

// Execute выполняет use case получения сетки слотов
// Расчет чистый и детерминированный: при одинаковых бронированиях и дате ответ
// всегда одинаковый, текущее время не участвует
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, turf=%d, date=%s",
		req.UserID, req.TurfID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем площадку
	turf, err := uc.turfClient.GetTurf(ctx, req.TurfID)
	if err != nil {
		if errors.Is(err, turfClient.ErrTurfNotFound) {
			uc.logger.Warn("GetAvailableSlots: turf id=%d not found", req.TurfID)
			return nil, ErrTurfNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get turf id=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: failed to get turf: %v", ErrInternal, err)
	}

	if !turf.IsActive {
		uc.logger.Warn("GetAvailableSlots: turf id=%d is not active", req.TurfID)
		return nil, ErrTurfInactive
	}

	// 3. Проверяем кэш
	if payload, ok := uc.cache.Get(ctx, req.TurfID, req.Date); ok {
		var cached Response
		if err := json.Unmarshal(payload, &cached); err == nil {
			uc.logger.Info("GetAvailableSlots: cache hit for turf=%d, date=%s",
				req.TurfID, req.Date.Format(domain.DateFormat))
			return &cached, nil
		} else {
			uc.logger.Warn("GetAvailableSlots: failed to decode cached grid, recomputing: %v", err)
		}
	}

	// 4. Получаем расписание площадки (площадка -> владелец -> встроенные значения)
	schedule, err := uc.scheduleRepo.GetWithFallback(ctx, req.TurfID, turf.OwnerID)
	if err != nil {
		if !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Error("GetAvailableSlots: failed to get schedule for turf=%d: %v", req.TurfID, err)
			return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}
		schedule = domain.DefaultSchedule(turf.OwnerID)
		uc.logger.Info("GetAvailableSlots: using default schedule for turf=%d", req.TurfID)
	}

	// 5. Получаем бронирования, чей план покрывает дату
	// Хранилище уже отфильтровало отменённые и чужие площадки
	reservations, err := uc.reservationRepo.GetCoveringDate(ctx, req.TurfID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 6. Фильтр повторений: weekly-планы действуют только в свои дни недели
	applicable := applicableReservations(reservations, req.Date, uc.policy, uc.logger)

	// 7. Генерируем сетку и помечаем занятость
	slots, err := buildSlotGrid(schedule, applicable)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to build slot grid: %v", err)
		return nil, fmt.Errorf("%w: failed to build slot grid: %v", ErrInternal, err)
	}

	resp := &Response{
		Date:   req.Date.Format(domain.DateFormat),
		TurfID: req.TurfID,
		Slots:  slots,
		// Число действующих бронирований, не число занятых слотов:
		// одно бронирование может занимать несколько слотов, но считается один раз
		BookedCount: len(applicable),
	}

	// 8. Кэшируем результат (best-effort)
	if payload, err := json.Marshal(resp); err == nil {
		uc.cache.Set(ctx, req.TurfID, req.Date, payload)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for turf=%d, date=%s, booked=%d",
		len(slots), req.TurfID, req.Date.Format(domain.DateFormat), resp.BookedCount)

	return resp, nil
}
