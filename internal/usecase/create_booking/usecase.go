package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/playgrid/turf-booking-service/internal/domain"
	scheduleRepo "github.com/playgrid/turf-booking-service/internal/infra/storage/schedule"
	playerClient "github.com/playgrid/turf-booking-service/internal/integrations/playerservice"
	turfClient "github.com/playgrid/turf-booking-service/internal/integrations/turfservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	scheduleRepo    ScheduleRepository
	turfClient      TurfServiceClient
	playerClient    PlayerServiceClient
	txManager       TransactionManager
	cache           SlotCacheInvalidator
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	scheduleRepo ScheduleRepository,
	turfClient TurfServiceClient,
	playerClient PlayerServiceClient,
	txManager TransactionManager,
	cache SlotCacheInvalidator,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		scheduleRepo:    scheduleRepo,
		turfClient:      turfClient,
		playerClient:    playerClient,
		txManager:       txManager,
		cache:           cache,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка конфликтов и запись выполняются в сериализуемой транзакции
// с блокировкой существующих бронирований (FOR UPDATE), чтобы исключить гонку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, turf=%d, plan=%s, dates=%s..%s, time=%s-%s",
		req.UserID, req.TurfID, req.Plan,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat),
		req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// single занимает ровно одну дату
	if req.Plan == domain.PlanSingle {
		req.EndDate = req.StartDate
	}

	// 2. Проверяем, что план не начинается в прошлом
	now := uc.timeProvider.Now()
	if err := validateDateNotInPast(req.StartDate, now); err != nil {
		uc.logger.Warn("CreateBooking: start date %s is in the past", req.StartDate.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Получаем площадку
	turf, err := uc.turfClient.GetTurf(ctx, req.TurfID)
	if err != nil {
		if errors.Is(err, turfClient.ErrTurfNotFound) {
			uc.logger.Warn("CreateBooking: turf id=%d not found", req.TurfID)
			return nil, ErrTurfNotFound
		}
		uc.logger.Error("CreateBooking: failed to get turf id=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: failed to get turf: %v", ErrInternal, err)
	}

	if !turf.IsActive {
		uc.logger.Warn("CreateBooking: turf id=%d is not active", req.TurfID)
		return nil, ErrTurfInactive
	}

	// 4. Получаем профиль игрока для денормализации (graceful degradation:
	// при недоступности PlayerService бронирование создается без профиля)
	var playerName, playerPhone *string
	player, err := uc.playerClient.GetPlayerWithGracefulDegradation(ctx, req.UserID)
	switch {
	case err == nil:
		playerName = &player.Name
		playerPhone = &player.Phone
	case errors.Is(err, playerClient.ErrPlayerNotFound), errors.Is(err, playerClient.ErrServiceDegraded):
		uc.logger.Warn("CreateBooking: proceeding without player profile for user=%d: %v", req.UserID, err)
	default:
		uc.logger.Error("CreateBooking: failed to get player profile for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get player profile: %v", ErrInternal, err)
	}

	// Даты, которые займет план (для weekly - только выбранные дни недели)
	occupiedDates := expandPlanDates(req.Plan, req.StartDate, req.EndDate, req.RecurringDays)
	if len(occupiedDates) == 0 {
		uc.logger.Warn("CreateBooking: plan occupies no dates")
		return nil, fmt.Errorf("%w: plan occupies no dates", ErrInvalidRecurrence)
	}

	var result *domain.Reservation

	// 5. Проверка конфликтов и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем расписание площадки
		schedule, err := uc.scheduleRepo.GetWithFallback(txCtx, req.TurfID, turf.OwnerID)
		if err != nil {
			if !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				uc.logger.Error("CreateBooking: failed to get schedule: %v", err)
				return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
			}
			schedule = domain.DefaultSchedule(turf.OwnerID)
			uc.logger.Info("CreateBooking: using default schedule for turf=%d", req.TurfID)
		}

		// 5.2. Интервал должен лежать в рабочем окне по границам слотов
		if err := validateWithinWindow(schedule, req.StartTime, req.EndTime); err != nil {
			uc.logger.Warn("CreateBooking: time window validation failed: %v", err)
			return err
		}

		// 5.3. Получаем существующие бронирования с блокировкой (FOR UPDATE)
		existing, err := uc.reservationRepo.GetOverlappingRange(txCtx, req.TurfID, req.StartDate, req.EndDate)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get existing reservations: %v", err)
			return fmt.Errorf("%w: failed to get existing reservations: %v", ErrInternal, err)
		}

		// 5.4. Ищем конфликт на каждой дате плана
		if date, found := findConflict(occupiedDates, req.StartTime, req.EndTime, existing); found {
			uc.logger.Warn("CreateBooking: slot %s-%s is taken on %s",
				req.StartTime, req.EndTime, date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 5.5. Стоимость: цена слота * слотов в интервале * количество дат
		slotsPerDate := intervalMinutes(req.StartTime, req.EndTime) / schedule.SlotDurationMinutes
		totalPrice := turf.PricePerSlot * float64(slotsPerDate) * float64(len(occupiedDates))

		// 5.6. Создаем бронирование
		reservation := &domain.Reservation{
			UserID:        req.UserID,
			TurfID:        req.TurfID,
			Plan:          req.Plan,
			PlanStartDate: req.StartDate,
			PlanEndDate:   req.EndDate,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			RecurringDays: req.RecurringDays,
			Status:        domain.StatusConfirmed,
			PlayerName:    playerName,
			PlayerPhone:   playerPhone,
			TotalPrice:    totalPrice,
			Notes:         req.Notes,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 6. Сбрасываем закэшированные сетки затронутых дат
	uc.cache.Invalidate(ctx, req.TurfID, occupiedDates...)

	uc.logger.Info("CreateBooking: successfully created reservation id=%d (%d dates, total=%.2f)",
		result.ID, len(occupiedDates), result.TotalPrice)

	return &Response{
		ID:            result.ID,
		UserID:        result.UserID,
		TurfID:        result.TurfID,
		Plan:          string(result.Plan),
		PlanStartDate: result.PlanStartDate,
		PlanEndDate:   result.PlanEndDate,
		StartTime:     result.StartTime,
		EndTime:       result.EndTime,
		RecurringDays: result.RecurringDays,
		Status:        string(result.Status),
		PlayerName:    result.PlayerName,
		PlayerPhone:   result.PlayerPhone,
		TotalPrice:    result.TotalPrice,
		Notes:         result.Notes,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
