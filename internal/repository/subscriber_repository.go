package repository

import (
	"context"
	"fmt"

	"nordlys_studio/internal/domain/models"
	"nordlys_studio/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

var subscriberColumns = []string{
	"id", "email", "name", "status", "source", "created_at", "updated_at",
}

type SubscriberRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewSubscriberRepository(db *pgxpool.Pool) *SubscriberRepo {
	return &SubscriberRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *SubscriberRepo) SaveSubscriber(ctx context.Context, subscriber models.Subscriber) (uuid.UUID, error) {
	const op = "repository.subscriber_repository.SaveSubscriber"

	query, args, err := r.sb.Insert("subscribers").
		Columns("email", "name", "status", "source").
		Values(subscriber.Email, subscriber.Name, subscriber.Status, subscriber.Source).
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

func (r *SubscriberRepo) UpdateSubscriberStatus(ctx context.Context, subscriberID uuid.UUID, status string) error {
	const op = "repository.subscriber_repository.UpdateSubscriberStatus"

	query, args, err := r.sb.Update("subscribers").
		Set("status", status).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": subscriberID}).
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

func (r *SubscriberRepo) DeleteSubscriber(ctx context.Context, subscriberID uuid.UUID) error {
	const op = "repository.subscriber_repository.DeleteSubscriber"

	query, args, err := r.sb.Delete("subscribers").
		Where(sq.Eq{"id": subscriberID}).
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

func (r *SubscriberRepo) GetSubscriberByID(ctx context.Context, subscriberID uuid.UUID) (*models.Subscriber, error) {
	const op = "repository.subscriber_repository.GetSubscriberByID"

	query, args, err := r.sb.Select(subscriberColumns...).
		From("subscribers").
		Where(sq.Eq{"id": subscriberID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var subscriber models.Subscriber
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&subscriber.ID,
		&subscriber.Email,
		&subscriber.Name,
		&subscriber.Status,
		&subscriber.Source,
		&subscriber.CreatedAt,
		&subscriber.UpdatedAt,
	)
	if err != nil {
		return nil, wrapPgError(op, err)
	}

	return &subscriber, nil
}

func (r *SubscriberRepo) GetSubscribers(ctx context.Context, statusFilter string) ([]models.Subscriber, error) {
	const op = "repository.subscriber_repository.GetSubscribers"

	queryBuilder := r.sb.Select(subscriberColumns...).
		From("subscribers").
		OrderBy("created_at DESC")

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

	var subscribers []models.Subscriber
	for rows.Next() {
		var subscriber models.Subscriber
		err := rows.Scan(
			&subscriber.ID,
			&subscriber.Email,
			&subscriber.Name,
			&subscriber.Status,
			&subscriber.Source,
			&subscriber.CreatedAt,
			&subscriber.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		subscribers = append(subscribers, subscriber)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return subscribers, nil
}
