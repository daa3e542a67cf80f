package repository

import (
	"context"
	"fmt"
	"time"

	"nordlys_studio/internal/domain/models"
	"nordlys_studio/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

var (
	bookingColumns = []string{
		"id", "date", "client_name", "client_email", "client_phone",
		"event_type", "location", "notes", "status", "created_at", "updated_at",
	}
	blockedDateColumns = []string{"id", "date", "reason", "created_at"}
)

type BookingRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepo {
	return &BookingRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *BookingRepo) SaveBooking(ctx context.Context, booking models.Booking) (uuid.UUID, error) {
	const op = "repository.booking_repository.SaveBooking"

	query, args, err := r.sb.Insert("bookings").
		Columns(
			"date", "client_name", "client_email", "client_phone",
			"event_type", "location", "notes", "status",
		).
		Values(
			booking.Date,
			booking.ClientName,
			booking.ClientEmail,
			booking.ClientPhone,
			booking.EventType,
			booking.Location,
			booking.Notes,
			booking.Status,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgError(op, err)
	}

	return id, nil
}

func (r *BookingRepo) UpdateBookingFields(ctx context.Context, bookingID uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.booking_repository.UpdateBookingFields"

	allowedFields := map[string]bool{
		"date":         true,
		"client_name":  true,
		"client_email": true,
		"client_phone": true,
		"event_type":   true,
		"location":     true,
		"notes":        true,
		"status":       true,
	}

	if len(updates) == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNoUpdates)
	}

	updateBuilder := r.sb.Update("bookings").
		Set("updated_at", time.Now())

	for field, value := range updates {
		if !allowedFields[field] {
			return fmt.Errorf("%s: field '%s' is not allowed for update", op, field)
		}

		updateBuilder = updateBuilder.Set(field, value)
	}

	query, args, err := updateBuilder.Where(sq.Eq{"id": bookingID}).ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return wrapPgError(op, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *BookingRepo) UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, status string) error {
	const op = "repository.booking_repository.UpdateBookingStatus"

	query, args, err := r.sb.Update("bookings").
		Set("status", status).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": bookingID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *BookingRepo) DeleteBooking(ctx context.Context, bookingID uuid.UUID) error {
	const op = "repository.booking_repository.DeleteBooking"

	query, args, err := r.sb.Delete("bookings").
		Where(sq.Eq{"id": bookingID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *BookingRepo) GetBookingByID(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	const op = "repository.booking_repository.GetBookingByID"

	query, args, err := r.sb.Select(bookingColumns...).
		From("bookings").
		Where(sq.Eq{"id": bookingID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var booking models.Booking
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&booking.ID,
		&booking.Date,
		&booking.ClientName,
		&booking.ClientEmail,
		&booking.ClientPhone,
		&booking.EventType,
		&booking.Location,
		&booking.Notes,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, wrapPgError(op, err)
	}

	return &booking, nil
}

func (r *BookingRepo) GetBookings(ctx context.Context, statusFilter string) ([]models.Booking, error) {
	const op = "repository.booking_repository.GetBookings"

	queryBuilder := r.sb.Select(bookingColumns...).
		From("bookings").
		OrderBy("date ASC")

	if statusFilter != "" {
		queryBuilder = queryBuilder.Where(sq.Eq{"status": statusFilter})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var booking models.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.Date,
			&booking.ClientName,
			&booking.ClientEmail,
			&booking.ClientPhone,
			&booking.EventType,
			&booking.Location,
			&booking.Notes,
			&booking.Status,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}

func (r *BookingRepo) SaveBlockedDate(ctx context.Context, blocked models.BlockedDate) (uuid.UUID, error) {
	const op = "repository.booking_repository.SaveBlockedDate"

	query, args, err := r.sb.Insert("blocked_dates").
		Columns("date", "reason").
		Values(blocked.Date, blocked.Reason).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgError(op, err)
	}

	return id, nil
}

func (r *BookingRepo) DeleteBlockedDate(ctx context.Context, blockedID uuid.UUID) error {
	const op = "repository.booking_repository.DeleteBlockedDate"

	query, args, err := r.sb.Delete("blocked_dates").
		Where(sq.Eq{"id": blockedID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *BookingRepo) GetBlockedDates(ctx context.Context) ([]models.BlockedDate, error) {
	const op = "repository.booking_repository.GetBlockedDates"

	query, args, err := r.sb.Select(blockedDateColumns...).
		From("blocked_dates").
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var blocked []models.BlockedDate
	for rows.Next() {
		var b models.BlockedDate
		err := rows.Scan(&b.ID, &b.Date, &b.Reason, &b.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		blocked = append(blocked, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return blocked, nil
}
