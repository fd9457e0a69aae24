package workingday

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/antoniozubakha/salon-booking-service/internal/domain"
	"github.com/antoniozubakha/salon-booking-service/pkg/psqlbuilder"
	"github.com/antoniozubakha/salon-booking-service/pkg/txmanager"
)

// Repository репозиторий переопределений рабочих дней
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория переопределений
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все переопределения рабочих дней
func (r *Repository) List(ctx context.Context) ([]*domain.DayOverride, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("date", "status", "updated_at").
		From("working_days").
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	overrides := make([]*domain.DayOverride, 0)
	for rows.Next() {
		var o domain.DayOverride
		if err := rows.Scan(&o.Date, &o.Status, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		overrides = append(overrides, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}

// Upsert устанавливает статус дня, перезаписывая существующее переопределение
func (r *Repository) Upsert(ctx context.Context, date time.Time, status domain.DayStatus) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("working_days").
		Columns("date", "status", "updated_at").
		Values(date, status, squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (date) DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete удаляет переопределение, возвращая день к автоматической классификации
// Удаление несуществующего переопределения не является ошибкой
func (r *Repository) Delete(ctx context.Context, date time.Time) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("working_days").
		Where(squirrel.Eq{"date": date}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
