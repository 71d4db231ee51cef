package dateprice

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/aitzhn/PS-BookingService/internal/domain"
	"github.com/aitzhn/PS-BookingService/pkg/dbmetrics"
	"github.com/aitzhn/PS-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с точечными переопределениями цен
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория переопределений цен
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByRoomAndDate получает переопределение цены для зала на конкретную дату
func (r *Repository) GetByRoomAndDate(ctx context.Context, roomID int64, date time.Time) (*domain.DatePrice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"room_id",
		"price_date",
		"price",
		"created_at",
		"updated_at",
	).
		From("date_prices").
		Where(squirrel.Eq{"room_id": roomID, "price_date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomAndDate - build select query: %v", ErrBuildQuery, err)
	}

	var dp domain.DatePrice
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&dp.ID,
		&dp.RoomID,
		&dp.Date,
		&dp.Price,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrDatePriceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomAndDate - scan date price: %v", ErrScanRow, err)
	}

	dp.CreatedAt = createdAt.Time
	dp.UpdatedAt = updatedAt.Time

	return &dp, nil
}

// GetByRoomAndRange получает переопределения цен зала за период (включительно).
// Используется для расчёта слотов на диапазон дат одним запросом.
func (r *Repository) GetByRoomAndRange(ctx context.Context, roomID int64, startDate, endDate time.Time) ([]*domain.DatePrice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"room_id",
		"price_date",
		"price",
		"created_at",
		"updated_at",
	).
		From("date_prices").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.GtOrEq{"price_date": startDate}).
		Where(squirrel.LtOrEq{"price_date": endDate}).
		OrderBy("price_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomAndRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomAndRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	prices := make([]*domain.DatePrice, 0)

	for rows.Next() {
		var dp domain.DatePrice
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&dp.ID,
			&dp.RoomID,
			&dp.Date,
			&dp.Price,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: GetByRoomAndRange - scan row: %v", ErrScanRow, err)
		}

		dp.CreatedAt = createdAt.Time
		dp.UpdatedAt = updatedAt.Time

		prices = append(prices, &dp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByRoomAndRange - rows error: %v", ErrScanRow, err)
	}

	return prices, nil
}

// Upsert создает или обновляет переопределение цены для зала на дату.
// Нулевая цена допустима (бесплатный день), отрицательная - нет.
func (r *Repository) Upsert(ctx context.Context, dp *domain.DatePrice) (*domain.DatePrice, error) {
	if !dp.IsValid() {
		return nil, fmt.Errorf("%w: Upsert - price %.2f", ErrInvalidPrice, dp.Price)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("date_prices").
		Columns(
			"room_id",
			"price_date",
			"price",
		).
		Values(
			dp.RoomID,
			dp.Date,
			dp.Price,
		).
		Suffix("ON CONFLICT (room_id, price_date) DO UPDATE SET price = EXCLUDED.price, updated_at = NOW()").
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&dp.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	dp.CreatedAt = createdAt.Time
	dp.UpdatedAt = updatedAt.Time

	return dp, nil
}

// Delete удаляет переопределение цены для зала на дату
func (r *Repository) Delete(ctx context.Context, roomID int64, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("date_prices").
		Where(squirrel.Eq{"room_id": roomID, "price_date": date}).
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
		return ErrDatePriceNotFound
	}

	return nil
}
