package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/playgrid/turf-booking-service/internal/domain"
	scheduleRepo "github.com/playgrid/turf-booking-service/internal/infra/storage/schedule"
	turfClient "github.com/playgrid/turf-booking-service/internal/integrations/turfservice"
	"github.com/playgrid/turf-booking-service/internal/service/schedule/models"
)

// Service сервис для работы с расписаниями площадок
type Service struct {
	scheduleRepo ScheduleRepository
	turfClient   TurfServiceClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	turfClient TurfServiceClient,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		turfClient:   turfClient,
		logger:       logger,
	}
}

// GetForTurf получает действующее расписание площадки с учетом иерархии приоритетов
// Публичный метод - используется фронтендом для отрисовки сетки слотов
// Приоритет: расписание площадки > owner-wide расписание > встроенные значения по умолчанию
func (s *Service) GetForTurf(ctx context.Context, turfID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetForTurf: fetching schedule for turf=%d", turfID)

	// Получаем площадку для определения владельца
	turf, err := s.turfClient.GetTurf(ctx, turfID)
	if err != nil {
		if errors.Is(err, turfClient.ErrTurfNotFound) {
			s.logger.Warn("GetForTurf: turf id=%d not found", turfID)
			return nil, ErrTurfNotFound
		}
		s.logger.Error("GetForTurf: failed to get turf id=%d: %v", turfID, err)
		return nil, fmt.Errorf("%w: failed to get turf: %v", ErrInternal, err)
	}

	schedule, err := s.scheduleRepo.GetWithFallback(ctx, turfID, turf.OwnerID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			// Расписание не настроено - отдаём встроенные значения по умолчанию
			s.logger.Info("GetForTurf: no schedule configured for turf=%d, using defaults", turfID)
			return models.FromDomainSchedule(domain.DefaultSchedule(turf.OwnerID), turfID, "default"), nil
		}
		s.logger.Error("GetForTurf: repository error for turf=%d: %v", turfID, err)
		return nil, fmt.Errorf("%w: GetForTurf - repository error: %v", ErrInternal, err)
	}

	source := "owner"
	if schedule.TurfID != nil {
		source = "turf"
	}

	s.logger.Info("GetForTurf: successfully fetched schedule for turf=%d (level: %s)", turfID, source)
	return models.FromDomainSchedule(schedule, turfID, source), nil
}

// Upsert создает или обновляет расписание площадки
// Доступно только менеджерам площадки
func (s *Service) Upsert(ctx context.Context, req *models.UpsertScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Upsert: updating schedule for turf=%d by user=%d", req.TurfID, req.UserID)

	// 1. Валидируем параметры расписания
	if err := s.validateScheduleData(req.OpenHour, req.CloseHour, req.SlotDurationMinutes); err != nil {
		s.logger.Warn("Upsert: validation failed for turf=%d: %v", req.TurfID, err)
		return nil, err
	}

	// 2. Получаем площадку для проверки прав доступа
	turf, err := s.turfClient.GetTurf(ctx, req.TurfID)
	if err != nil {
		if errors.Is(err, turfClient.ErrTurfNotFound) {
			s.logger.Warn("Upsert: turf id=%d not found", req.TurfID)
			return nil, ErrTurfNotFound
		}
		s.logger.Error("Upsert: failed to get turf id=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: failed to get turf: %v", ErrInternal, err)
	}

	// 3. Проверяем права доступа (только менеджер площадки)
	if !turf.IsManagedBy(req.UserID) {
		s.logger.Warn("Upsert: user=%d does not manage turf=%d", req.UserID, req.TurfID)
		return nil, ErrAccessDenied
	}

	// 4. Обновляем существующее расписание либо создаем новое
	existing, err := s.scheduleRepo.GetByTurfID(ctx, req.TurfID)
	if err != nil && !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		s.logger.Error("Upsert: failed to check existing schedule for turf=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: failed to check existing schedule: %v", ErrInternal, err)
	}

	if existing != nil {
		existing.OpenHour = req.OpenHour
		existing.CloseHour = req.CloseHour
		existing.SlotDurationMinutes = req.SlotDurationMinutes

		if err := s.scheduleRepo.Update(ctx, existing); err != nil {
			s.logger.Error("Upsert: repository error updating schedule for turf=%d: %v", req.TurfID, err)
			return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
		}

		s.logger.Info("Upsert: successfully updated schedule id=%d for turf=%d", existing.ID, req.TurfID)
		return models.FromDomainSchedule(existing, req.TurfID, "turf"), nil
	}

	turfID := req.TurfID
	created, err := s.scheduleRepo.Create(ctx, &domain.TurfSchedule{
		TurfID:              &turfID,
		OwnerID:             turf.OwnerID,
		OpenHour:            req.OpenHour,
		CloseHour:           req.CloseHour,
		SlotDurationMinutes: req.SlotDurationMinutes,
	})
	if err != nil {
		s.logger.Error("Upsert: repository error creating schedule for turf=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully created schedule id=%d for turf=%d", created.ID, req.TurfID)
	return models.FromDomainSchedule(created, req.TurfID, "turf"), nil
}

// Вспомогательные методы

// validateScheduleData валидирует параметры расписания
func (s *Service) validateScheduleData(openHour, closeHour, slotDuration int) error {
	// Проверяем границы рабочего окна
	if openHour < domain.MinOpenHour || openHour >= closeHour || closeHour > domain.MaxCloseHour {
		return fmt.Errorf("%w: openHour and closeHour must satisfy %d <= open < close <= %d",
			ErrInvalidInput, domain.MinOpenHour, domain.MaxCloseHour)
	}

	// Проверяем длительность слота
	if slotDuration < domain.MinSlotDurationMinutes || slotDuration > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slotDurationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	// Длительность слота должна делить рабочее окно нацело
	windowMinutes := (closeHour - openHour) * 60
	if windowMinutes%slotDuration != 0 {
		return fmt.Errorf("%w: slotDurationMinutes must evenly divide the working window", ErrInvalidInput)
	}

	return nil
}
