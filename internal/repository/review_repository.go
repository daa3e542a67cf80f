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

var reviewColumns = []string{
	"id", "name", "event_type", "event_date", "rating", "content",
	"featured", "published", "created_at", "updated_at",
}

type ReviewRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewReviewRepository(db *pgxpool.Pool) *ReviewRepo {
	return &ReviewRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ReviewRepo) SaveReview(ctx context.Context, review models.Review) (uuid.UUID, error) {
	const op = "repository.review_repository.SaveReview"

	query, args, err := r.sb.Insert("reviews").
		Columns("name", "event_type", "event_date", "rating", "content", "featured", "published").
		Values(
			review.Name,
			review.EventType,
			review.EventDate,
			review.Rating,
			review.Content,
			review.Featured,
			review.Published,
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

func (r *ReviewRepo) UpdateReviewFields(ctx context.Context, reviewID uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.review_repository.UpdateReviewFields"

	allowedFields := map[string]bool{
		"name":       true,
		"event_type": true,
		"event_date": true,
		"rating":     true,
		"content":    true,
		"featured":   true,
		"published":  true,
	}

	if len(updates) == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNoUpdates)
	}

	updateBuilder := r.sb.Update("reviews").
		Set("updated_at", time.Now())

	for field, value := range updates {
		if !allowedFields[field] {
			return fmt.Errorf("%s: field '%s' is not allowed for update", op, field)
		}

		updateBuilder = updateBuilder.Set(field, value)
	}

	query, args, err := updateBuilder.Where(sq.Eq{"id": reviewID}).ToSql()
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

func (r *ReviewRepo) DeleteReview(ctx context.Context, reviewID uuid.UUID) error {
	const op = "repository.review_repository.DeleteReview"

	query, args, err := r.sb.Delete("reviews").
		Where(sq.Eq{"id": reviewID}).
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

func (r *ReviewRepo) GetReviewByID(ctx context.Context, reviewID uuid.UUID) (*models.Review, error) {
	const op = "repository.review_repository.GetReviewByID"

	query, args, err := r.sb.Select(reviewColumns...).
		From("reviews").
		Where(sq.Eq{"id": reviewID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var review models.Review
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&review.ID,
		&review.Name,
		&review.EventType,
		&review.EventDate,
		&review.Rating,
		&review.Content,
		&review.Featured,
		&review.Published,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	if err != nil {
		return nil, wrapPgError(op, err)
	}

	return &review, nil
}

func (r *ReviewRepo) GetReviews(ctx context.Context, publishedOnly, featuredOnly bool, limit int) ([]models.Review, error) {
	const op = "repository.review_repository.GetReviews"

	queryBuilder := r.sb.Select(reviewColumns...).
		From("reviews").
		OrderBy("created_at DESC")

	if publishedOnly {
		queryBuilder = queryBuilder.Where(sq.Eq{"published": true})
	}
	if featuredOnly {
		queryBuilder = queryBuilder.Where(sq.Eq{"featured": true})
	}
	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
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

	var reviews []models.Review
	for rows.Next() {
		var review models.Review
		err := rows.Scan(
			&review.ID,
			&review.Name,
			&review.EventType,
			&review.EventDate,
			&review.Rating,
			&review.Content,
			&review.Featured,
			&review.Published,
			&review.CreatedAt,
			&review.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return reviews, nil
}
