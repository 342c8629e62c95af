package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Zero-Index-Tech/ZeroBook/internal/domain"
	"github.com/Zero-Index-Tech/ZeroBook/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL "relation does not exist"
const pgUndefinedTable = "42P01"

// Repository репозиторий для работы с таблицей bookings
// Хранилище - внешний коллаборатор: состояние сессии живет в памяти,
// а сюда записи попадают best-effort для сохранности между сессиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Insert сохраняет бронирование в таблицу bookings
// Возвращает ErrTableNotFound, если таблица не создана
func (r *Repository) Insert(ctx context.Context, booking *domain.Booking) error {
	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"customer_name",
			"customer_email",
			"customer_phone",
			"notes",
			"slot_id",
			"slot_date",
			"start_time",
			"end_time",
			"created_at",
		).
		Values(
			booking.ID,
			booking.CustomerName,
			booking.CustomerEmail,
			booking.CustomerPhone,
			booking.Notes,
			booking.TimeSlot.ID,
			booking.TimeSlot.Date,
			booking.TimeSlot.StartTime,
			booking.TimeSlot.EndTime,
			booking.CreatedAt,
		).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapPgError("Insert", err)
	}

	return nil
}

// List возвращает все сохраненные бронирования, упорядоченные по дате и
// времени слота. Возвращает ErrTableNotFound, если таблица не создана
func (r *Repository) List(ctx context.Context) ([]domain.Booking, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"customer_name",
		"customer_email",
		"customer_phone",
		"notes",
		"slot_id",
		"slot_date",
		"start_time",
		"end_time",
		"created_at",
	).
		From("bookings").
		OrderBy("slot_date ASC", "start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapPgError("List", err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		var createdAt sql.NullTime

		if err := rows.Scan(
			&b.ID,
			&b.CustomerName,
			&b.CustomerEmail,
			&b.CustomerPhone,
			&b.Notes,
			&b.TimeSlot.ID,
			&b.TimeSlot.Date,
			&b.TimeSlot.StartTime,
			&b.TimeSlot.EndTime,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: List - scan booking: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		b.TimeSlot.IsBooked = true
		b.TimeSlot.BookedBy = &b.CustomerName
		bookedAt := b.CreatedAt
		b.TimeSlot.BookedAt = &bookedAt

		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// Delete удаляет бронирование по id
// Используется тестовыми сценариями для очистки за собой
func (r *Repository) Delete(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapPgError("Delete", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// wrapPgError маппит ошибки PostgreSQL на sentinel ошибки репозитория
func wrapPgError(op string, err error) error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && string(pgErr.Code) == pgUndefinedTable {
		return fmt.Errorf("%w: %s: %v", ErrTableNotFound, op, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
}
