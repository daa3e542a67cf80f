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

var galleryColumns = []string{
	"id", "project_id", "slug", "password_hash", "client_name", "client_email",
	"expires_at", "download_enabled", "view_count", "created_at", "updated_at",
}

type GalleryRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewGalleryRepository(db *pgxpool.Pool) *GalleryRepo {
	return &GalleryRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *GalleryRepo) SaveGallery(ctx context.Context, gallery models.ClientGallery) (uuid.UUID, error) {
	const op = "repository.gallery_repository.SaveGallery"

	query, args, err := r.sb.Insert("client_galleries").
		Columns(
			"project_id", "slug", "password_hash", "client_name",
			"client_email", "expires_at", "download_enabled",
		).
		Values(
			gallery.ProjectID,
			gallery.Slug,
			gallery.PasswordHash,
			gallery.ClientName,
			gallery.ClientEmail,
			gallery.ExpiresAt,
			gallery.DownloadEnabled,
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

func (r *GalleryRepo) UpdateGalleryFields(ctx context.Context, galleryID uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.gallery_repository.UpdateGalleryFields"

	allowedFields := map[string]bool{
		"project_id":       true,
		"slug":             true,
		"password_hash":    true,
		"client_name":      true,
		"client_email":     true,
		"expires_at":       true,
		"download_enabled": true,
	}

	if len(updates) == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNoUpdates)
	}

	updateBuilder := r.sb.Update("client_galleries").
		Set("updated_at", time.Now())

	for field, value := range updates {
		if !allowedFields[field] {
			return fmt.Errorf("%s: field '%s' is not allowed for update", op, field)
		}

		updateBuilder = updateBuilder.Set(field, value)
	}

	query, args, err := updateBuilder.Where(sq.Eq{"id": galleryID}).ToSql()
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

func (r *GalleryRepo) DeleteGallery(ctx context.Context, galleryID uuid.UUID) error {
	const op = "repository.gallery_repository.DeleteGallery"

	query, args, err := r.sb.Delete("client_galleries").
		Where(sq.Eq{"id": galleryID}).
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

func (r *GalleryRepo) GetGalleryByID(ctx context.Context, galleryID uuid.UUID) (*models.ClientGallery, error) {
	const op = "repository.gallery_repository.GetGalleryByID"

	return r.getGallery(ctx, op, sq.Eq{"id": galleryID})
}

func (r *GalleryRepo) GetGalleryBySlug(ctx context.Context, slug string) (*models.ClientGallery, error) {
	const op = "repository.gallery_repository.GetGalleryBySlug"

	return r.getGallery(ctx, op, sq.Eq{"slug": slug})
}

func (r *GalleryRepo) getGallery(ctx context.Context, op string, where sq.Eq) (*models.ClientGallery, error) {
	query, args, err := r.sb.Select(galleryColumns...).
		From("client_galleries").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var gallery models.ClientGallery
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&gallery.ID,
		&gallery.ProjectID,
		&gallery.Slug,
		&gallery.PasswordHash,
		&gallery.ClientName,
		&gallery.ClientEmail,
		&gallery.ExpiresAt,
		&gallery.DownloadEnabled,
		&gallery.ViewCount,
		&gallery.CreatedAt,
		&gallery.UpdatedAt,
	)
	if err != nil {
		return nil, wrapPgError(op, err)
	}

	return &gallery, nil
}

// IncrementViewCount bumps the counter atomically in the database so
// concurrent accesses never lose an increment.
func (r *GalleryRepo) IncrementViewCount(ctx context.Context, galleryID uuid.UUID) error {
	const op = "repository.gallery_repository.IncrementViewCount"

	query, args, err := r.sb.Update("client_galleries").
		Set("view_count", sq.Expr("view_count + 1")).
		Where(sq.Eq{"id": galleryID}).
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

func (r *GalleryRepo) GetGalleries(ctx context.Context) ([]models.ClientGallery, error) {
	const op = "repository.gallery_repository.GetGalleries"

	query, args, err := r.sb.Select(galleryColumns...).
		From("client_galleries").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var galleries []models.ClientGallery
	for rows.Next() {
		var gallery models.ClientGallery
		err := rows.Scan(
			&gallery.ID,
			&gallery.ProjectID,
			&gallery.Slug,
			&gallery.PasswordHash,
			&gallery.ClientName,
			&gallery.ClientEmail,
			&gallery.ExpiresAt,
			&gallery.DownloadEnabled,
			&gallery.ViewCount,
			&gallery.CreatedAt,
			&gallery.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		galleries = append(galleries, gallery)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return galleries, nil
}
