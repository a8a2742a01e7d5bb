package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/playgrid/turf-booking-service/internal/domain"
	reservationRepo "github.com/playgrid/turf-booking-service/internal/infra/storage/reservation"
	turfClient "github.com/playgrid/turf-booking-service/internal/integrations/turfservice"
	"github.com/playgrid/turf-booking-service/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	reservationRepo ReservationRepository
	turfClient      TurfServiceClient
	slotCache       SlotCacheInvalidator
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	turfClient TurfServiceClient,
	slotCache SlotCacheInvalidator,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		turfClient:      turfClient,
		slotCache:       slotCache,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - пользователь может видеть только своё бронирование
// или если он управляет площадкой
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, userID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, reservation, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(reservation), nil
}

// GetUserReservations получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserReservations(ctx context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%d, status=%v", req.UserID, req.Status)

	// Конвертируем статус из строки в domain.ReservationStatus
	var domainStatus *domain.ReservationStatus
	if req.Status != nil {
		status, err := models.ToDomainReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserReservations: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	reservations, err := s.reservationRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserReservations: successfully fetched %d reservations for user=%d", len(reservations), req.UserID)
	return models.FromDomainReservationList(reservations), nil
}

// GetTurfReservations получает бронирования площадки с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению неактивных бронирований
// Доступно только менеджерам площадки
//
// Примеры использования:
// - Все активные бронирования: GetTurfReservations(ctx, &GetTurfReservationsRequest{TurfID: 123, UserID: 456})
// - Бронирования на дату: StartDate и EndDate указывают на одну дату
// - Бронирования за период: StartDate и EndDate указывают на разные даты
// - Только подтвержденные: указать Status = "confirmed"
// - Включая отменённые: IncludeInactive = true
func (s *Service) GetTurfReservations(ctx context.Context, req *models.GetTurfReservationsRequest) (*models.ReservationListResponse, error) {
	// Логируем запрос с деталями фильтрации
	logMsg := fmt.Sprintf("GetTurfReservations: fetching reservations for turf=%d, user=%d", req.TurfID, req.UserID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	// Проверяем права доступа менеджера
	if err := s.checkManagerAccess(ctx, req.TurfID, req.UserID); err != nil {
		return nil, err
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetTurfReservations: invalid filter for turf=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	// Получаем бронирования с фильтрацией
	reservations, err := s.reservationRepo.GetByTurfWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetTurfReservations: repository error for turf=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: GetTurfReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetTurfReservations: successfully fetched %d reservations for turf=%d", len(reservations), req.TurfID)
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет бронирование
// Пользователь может отменить только своё бронирование (cancelled_by_user)
// Менеджер может отменить любое бронирование площадки (cancelled_by_turf)
func (s *Service) Cancel(ctx context.Context, reservationID int64, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", reservationID, req.UserID)

	// Получаем бронирование
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить бронирование
	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", reservationID, reservation.Status)
		return ErrCannotCancel
	}

	// Определяем статус отмены в зависимости от прав доступа
	var cancelStatus domain.ReservationStatus

	// Проверяем, является ли пользователь владельцем бронирования
	if reservation.UserID == req.UserID {
		cancelStatus = domain.StatusCancelledByUser
	} else {
		// Проверяем, является ли пользователь менеджером площадки
		if err := s.checkManagerAccess(ctx, reservation.TurfID, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel reservation id=%d", req.UserID, reservationID)
			return ErrAccessDenied
		}
		cancelStatus = domain.StatusCancelledByTurf
	}

	// Отменяем бронирование
	if err := s.reservationRepo.Cancel(ctx, reservationID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found during cancellation", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Слот снова свободен - сбрасываем кэш сетки слотов по всем датам плана
	s.slotCache.Invalidate(ctx, reservation.TurfID, planDates(reservation)...)

	s.logger.Info("Cancel: successfully cancelled reservation id=%d with status=%s", reservationID, cancelStatus)
	return nil
}

// Вспомогательные методы

// planDates возвращает даты, на которые бронирование фактически претендует
func planDates(r *domain.Reservation) []time.Time {
	var dates []time.Time
	for d := r.PlanStartDate; !d.After(r.PlanEndDate); d = d.AddDate(0, 0, 1) {
		if r.AppliesOn(d) {
			dates = append(dates, d)
		}
	}
	return dates
}

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию
// Пользователь может видеть своё бронирование или если он менеджер площадки
func (s *Service) checkUserAccess(ctx context.Context, reservation *domain.Reservation, userID int64) error {
	// Если пользователь владелец бронирования - доступ разрешён
	if reservation.UserID == userID {
		return nil
	}

	// Проверяем, является ли пользователь менеджером площадки
	if err := s.checkManagerAccess(ctx, reservation.TurfID, userID); err != nil {
		// Ошибка уже залогирована в checkManagerAccess
		return ErrAccessDenied
	}

	return nil
}

// checkManagerAccess проверяет, что пользователь управляет площадкой
func (s *Service) checkManagerAccess(ctx context.Context, turfID int64, userID int64) error {
	// Получаем площадку через TurfService
	turf, err := s.turfClient.GetTurf(ctx, turfID)
	if err != nil {
		if errors.Is(err, turfClient.ErrTurfNotFound) {
			s.logger.Warn("checkManagerAccess: turf id=%d not found", turfID)
			return ErrTurfNotFound
		}
		s.logger.Error("checkManagerAccess: failed to get turf id=%d: %v", turfID, err)
		return fmt.Errorf("%w: checkManagerAccess - failed to get turf: %v", ErrInternal, err)
	}

	// Проверяем, что userID владелец или в списке персонала
	if turf.IsManagedBy(userID) {
		s.logger.Info("checkManagerAccess: user=%d manages turf=%d", userID, turfID)
		return nil
	}

	s.logger.Warn("checkManagerAccess: user=%d does not manage turf=%d", userID, turfID)
	return ErrAccessDenied
}
