package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/antoniozubakha/salon-booking-service/internal/domain"
	"github.com/antoniozubakha/salon-booking-service/pkg/psqlbuilder"
	"github.com/antoniozubakha/salon-booking-service/pkg/txmanager"
	"github.com/antoniozubakha/salon-booking-service/pkg/types"
)

// pgUniqueViolation код PostgreSQL для нарушения уникального ограничения
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с записями (занятыми слотами)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись на один слот
// Уникальность пары (date, time) гарантирует уникальный индекс в БД:
// конкурентная вставка дубликата вернёт ErrSlotTaken независимо от
// предварительных проверок на уровне приложения
// Если в контексте есть активная транзакция, вставка выполняется в ней
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booked_slots").
		Columns(
			"appointment_id",
			"date",
			"time",
			"name",
			"phone",
			"service",
			"booked_at",
		).
		Values(
			res.AppointmentID,
			res.Date,
			res.Time,
			res.Name,
			res.Phone,
			res.Service,
			res.BookedAt,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return fmt.Errorf("%w: %s %s", ErrSlotTaken, res.Date.Format(domain.DateFormat), res.Time)
		}
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ListAll возвращает записи начиная с указанной даты (включительно),
// отсортированные по дате и времени
// Фильтр по дате — только на чтении, старые строки не удаляются
func (r *Repository) ListAll(ctx context.Context, since time.Time) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := reservationSelect().
		Where(squirrel.GtOrEq{"date": since}).
		OrderBy("date ASC, time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// ListForDate возвращает все записи на указанную дату, отсортированные по времени
// Внутри транзакции добавляет FOR UPDATE, блокируя строки даты до коммита
func (r *Repository) ListForDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := reservationSelect().
		Where(squirrel.Eq{"date": date}).
		OrderBy("time ASC")

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// Delete удаляет запись по ключу (date, time)
// Возвращает ErrReservationNotFound, если записи не существует
func (r *Repository) Delete(ctx context.Context, date time.Time, t types.TimeString) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("booked_slots").
		Where(squirrel.Eq{"date": date, "time": t}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// reservationSelect общий SELECT со всеми столбцами записи
func reservationSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"appointment_id",
		"date",
		"time",
		"name",
		"phone",
		"service",
		"booked_at",
	).From("booked_slots")
}

// scanReservations сканирует результаты запроса в слайс записей
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var res domain.Reservation

		err := rows.Scan(
			&res.ID,
			&res.AppointmentID,
			&res.Date,
			&res.Time,
			&res.Name,
			&res.Phone,
			&res.Service,
			&res.BookedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
