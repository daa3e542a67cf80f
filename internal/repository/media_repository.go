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

var mediaColumns = []string{
	"id", "project_id", "media_type", "url", "thumbnail_url",
	"title", "alt", "sort_order", "file_size", "mime_type", "created_at",
}

type MediaRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewMediaRepository(db *pgxpool.Pool) *MediaRepo {
	return &MediaRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *MediaRepo) CreateMedia(ctx context.Context, media *models.Media) (*models.Media, error) {
	const op = "repository.media_repository.CreateMedia"

	query, args, err := r.sb.Insert("media").
		Columns(
			"project_id",
			"media_type",
			"url",
			"thumbnail_url",
			"title",
			"alt",
			"sort_order",
			"file_size",
			"mime_type",
		).
		Values(
			media.ProjectID,
			media.MediaType,
			media.URL,
			media.ThumbnailURL,
			media.Title,
			media.Alt,
			media.SortOrder,
			media.FileSize,
			media.MimeType,
		).
		Suffix("RETURNING " + joinColumns(mediaColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var created models.Media
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&created.ID,
		&created.ProjectID,
		&created.MediaType,
		&created.URL,
		&created.ThumbnailURL,
		&created.Title,
		&created.Alt,
		&created.SortOrder,
		&created.FileSize,
		&created.MimeType,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, wrapPgError(op, err)
	}

	return &created, nil
}

func (r *MediaRepo) UpdateMediaFields(ctx context.Context, mediaID uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.media_repository.UpdateMediaFields"

	allowedFields := map[string]bool{
		"project_id":    true,
		"media_type":    true,
		"url":           true,
		"thumbnail_url": true,
		"title":         true,
		"alt":           true,
		"sort_order":    true,
	}

	if len(updates) == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNoUpdates)
	}

	updateBuilder := r.sb.Update("media")

	for field, value := range updates {
		if !allowedFields[field] {
			return fmt.Errorf("%s: field '%s' is not allowed for update", op, field)
		}

		updateBuilder = updateBuilder.Set(field, value)
	}

	query, args, err := updateBuilder.Where(sq.Eq{"id": mediaID}).ToSql()
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

func (r *MediaRepo) DeleteMedia(ctx context.Context, mediaID uuid.UUID) error {
	const op = "repository.media_repository.DeleteMedia"

	query, args, err := r.sb.Delete("media").
		Where(sq.Eq{"id": mediaID}).
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

func (r *MediaRepo) FindByID(ctx context.Context, mediaID uuid.UUID) (*models.Media, error) {
	const op = "repository.media_repository.FindByID"

	query, args, err := r.sb.Select(mediaColumns...).
		From("media").
		Where(sq.Eq{"id": mediaID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var media models.Media
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&media.ID,
		&media.ProjectID,
		&media.MediaType,
		&media.URL,
		&media.ThumbnailURL,
		&media.Title,
		&media.Alt,
		&media.SortOrder,
		&media.FileSize,
		&media.MimeType,
		&media.CreatedAt,
	)
	if err != nil {
		return nil, wrapPgError(op, err)
	}

	return &media, nil
}

// GetMediaByProjectID returns a project's media ordered by sort_order.
func (r *MediaRepo) GetMediaByProjectID(ctx context.Context, projectID uuid.UUID) ([]models.Media, error) {
	const op = "repository.media_repository.GetMediaByProjectID"

	return r.listMedia(ctx, op, sq.Eq{"project_id": projectID})
}

func (r *MediaRepo) GetAllMedia(ctx context.Context) ([]models.Media, error) {
	const op = "repository.media_repository.GetAllMedia"

	return r.listMedia(ctx, op, nil)
}

func (r *MediaRepo) listMedia(ctx context.Context, op string, where sq.Eq) ([]models.Media, error) {
	queryBuilder := r.sb.Select(mediaColumns...).
		From("media").
		OrderBy("sort_order ASC", "created_at ASC")

	if where != nil {
		queryBuilder = queryBuilder.Where(where)
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

	var mediaList []models.Media
	for rows.Next() {
		var m models.Media
		err := rows.Scan(
			&m.ID,
			&m.ProjectID,
			&m.MediaType,
			&m.URL,
			&m.ThumbnailURL,
			&m.Title,
			&m.Alt,
			&m.SortOrder,
			&m.FileSize,
			&m.MimeType,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		mediaList = append(mediaList, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return mediaList, nil
}
