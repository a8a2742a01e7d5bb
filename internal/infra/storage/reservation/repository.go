package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/playgrid/turf-booking-service/internal/domain"
	"github.com/playgrid/turf-booking-service/pkg/dbmetrics"
	"github.com/playgrid/turf-booking-service/pkg/psqlbuilder"
)

// reservationColumns полный список колонок таблицы reservations
var reservationColumns = []string{
	"id",
	"user_id",
	"turf_id",
	"booking_plan",
	"plan_start_date",
	"plan_end_date",
	"start_time",
	"end_time",
	"recurring_days",
	"status",
	"player_name",
	"player_phone",
	"total_price",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями площадок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"user_id",
			"turf_id",
			"booking_plan",
			"plan_start_date",
			"plan_end_date",
			"start_time",
			"end_time",
			"recurring_days",
			"status",
			"player_name",
			"player_phone",
			"total_price",
			"notes",
		).
		Values(
			res.UserID,
			res.TurfID,
			res.Plan,
			res.PlanStartDate,
			res.PlanEndDate,
			res.StartTime,
			res.EndTime,
			pq.Array(toInt64Slice(res.RecurringDays)),
			res.Status,
			res.PlayerName,
			res.PlayerPhone,
			res.TotalPrice,
			res.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations, err := r.scanReservations(rows)
	if err != nil {
		return nil, err
	}
	if len(reservations) == 0 {
		return nil, ErrReservationNotFound
	}

	return reservations[0], nil
}

// GetByUserID получает список бронирований пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("plan_start_date DESC, start_time DESC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetByTurfWithFilter получает бронирования площадки с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению отменённых бронирований.
// Период сравнивается с диапазоном плана: бронирование попадает в выборку, если
// его [plan_start_date, plan_end_date] пересекается с [StartDate, EndDate]
func (r *Repository) GetByTurfWithFilter(ctx context.Context, filter domain.TurfReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"turf_id": filter.TurfID})

	// Пересечение диапазона плана с запрошенным периодом
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"plan_start_date": *filter.EndDate})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"plan_end_date": *filter.StartDate})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		// Если не указан конкретный статус и не нужны отменённые - исключаем их
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	// Для запроса на конкретную дату сортируем по времени начала,
	// для периода - сначала новые
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate) {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("plan_start_date DESC, start_time DESC")
	}

	// Внутри транзакции блокируем строки - выборка используется при создании
	// бронирования для проверки конфликтов
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTurfWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTurfWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetCoveringDate получает все неотменённые бронирования площадки, чей диапазон
// плана покрывает указанную дату. Фильтрация по площадке, дате и статусу -
// задача хранилища, движок слотов этого не перепроверяет
func (r *Repository) GetCoveringDate(ctx context.Context, turfID int64, date time.Time) ([]*domain.Reservation, error) {
	return r.GetByTurfWithFilter(ctx, domain.TurfReservationsFilter{
		TurfID:    turfID,
		StartDate: &date,
		EndDate:   &date,
	})
}

// GetOverlappingRange получает все неотменённые бронирования площадки, чей диапазон
// плана пересекается с [start, end]. Используется при создании бронирования
func (r *Repository) GetOverlappingRange(ctx context.Context, turfID int64, start, end time.Time) ([]*domain.Reservation, error) {
	return r.GetByTurfWithFilter(ctx, domain.TurfReservationsFilter{
		TurfID:    turfID,
		StartDate: &start,
		EndDate:   &end,
	})
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, status domain.ReservationStatus, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var res domain.Reservation
		var recurringDays pq.Int64Array
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&res.ID,
			&res.UserID,
			&res.TurfID,
			&res.Plan,
			&res.PlanStartDate,
			&res.PlanEndDate,
			&res.StartTime,
			&res.EndTime,
			&recurringDays,
			&res.Status,
			&res.PlayerName,
			&res.PlayerPhone,
			&res.TotalPrice,
			&res.Notes,
			&res.CancellationReason,
			&res.CancelledAt,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		res.RecurringDays = toIntSlice(recurringDays)
		res.CreatedAt = createdAt.Time
		res.UpdatedAt = updatedAt.Time

		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

func toInt64Slice(days []int) []int64 {
	if days == nil {
		return nil
	}
	result := make([]int64, len(days))
	for i, d := range days {
		result[i] = int64(d)
	}
	return result
}

func toIntSlice(days pq.Int64Array) []int {
	if days == nil {
		return nil
	}
	result := make([]int, len(days))
	for i, d := range days {
		result[i] = int(d)
	}
	return result
}
