package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/playgrid/turf-booking-service/internal/domain"
	"github.com/playgrid/turf-booking-service/pkg/dbmetrics"
	"github.com/playgrid/turf-booking-service/pkg/psqlbuilder"
)

// scheduleColumns полный список колонок таблицы turf_schedules
var scheduleColumns = []string{
	"id",
	"turf_id",
	"owner_id",
	"open_hour",
	"close_hour",
	"slot_duration_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с расписаниями площадок
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое расписание (для площадки или owner-wide, если TurfID == nil)
func (r *Repository) Create(ctx context.Context, s *domain.TurfSchedule) (*domain.TurfSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("turf_schedules").
		Columns(
			"turf_id",
			"owner_id",
			"open_hour",
			"close_hour",
			"slot_duration_minutes",
		).
		Values(
			s.TurfID,
			s.OwnerID,
			s.OpenHour,
			s.CloseHour,
			s.SlotDurationMinutes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// Update обновляет параметры существующего расписания
func (r *Repository) Update(ctx context.Context, s *domain.TurfSchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("turf_schedules").
		Set("open_hour", s.OpenHour).
		Set("close_hour", s.CloseHour).
		Set("slot_duration_minutes", s.SlotDurationMinutes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

// GetByTurfID получает расписание конкретной площадки
func (r *Repository) GetByTurfID(ctx context.Context, turfID int64) (*domain.TurfSchedule, error) {
	return r.getOne(ctx, squirrel.Eq{"turf_id": turfID}, "GetByTurfID")
}

// GetOwnerDefault получает owner-wide расписание (turf_id IS NULL)
func (r *Repository) GetOwnerDefault(ctx context.Context, ownerID int64) (*domain.TurfSchedule, error) {
	return r.getOne(ctx, squirrel.And{
		squirrel.Eq{"owner_id": ownerID},
		squirrel.Eq{"turf_id": nil},
	}, "GetOwnerDefault")
}

// GetWithFallback получает расписание с учетом иерархии приоритетов:
// 1. Расписание конкретной площадки
// 2. Owner-wide расписание владельца
// Если не найдено ни одно, возвращает ErrScheduleNotFound - вызывающая сторона
// подставляет встроенные значения по умолчанию
func (r *Repository) GetWithFallback(ctx context.Context, turfID, ownerID int64) (*domain.TurfSchedule, error) {
	schedule, err := r.GetByTurfID(ctx, turfID)
	if err == nil {
		return schedule, nil
	}
	if !errors.Is(err, ErrScheduleNotFound) {
		return nil, fmt.Errorf("%w: GetWithFallback - turf level: %v", ErrExecQuery, err)
	}

	schedule, err = r.GetOwnerDefault(ctx, ownerID)
	if err == nil {
		return schedule, nil
	}
	if !errors.Is(err, ErrScheduleNotFound) {
		return nil, fmt.Errorf("%w: GetWithFallback - owner level: %v", ErrExecQuery, err)
	}

	return nil, ErrScheduleNotFound
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Sqlizer, op string) (*domain.TurfSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("turf_schedules").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var s domain.TurfSchedule
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.TurfID,
		&s.OwnerID,
		&s.OpenHour,
		&s.CloseHour,
		&s.SlotDurationMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan schedule: %v", ErrScanRow, op, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
