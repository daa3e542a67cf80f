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

var pageColumns = []string{
	"id", "slug", "title", "content", "meta_title", "meta_description",
	"published", "created_at", "updated_at",
}

type PageRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewPageRepository(db *pgxpool.Pool) *PageRepo {
	return &PageRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *PageRepo) SavePage(ctx context.Context, page models.Page) (uuid.UUID, error) {
	const op = "repository.page_repository.SavePage"

	query, args, err := r.sb.Insert("pages").
		Columns("slug", "title", "content", "meta_title", "meta_description", "published").
		Values(page.Slug, page.Title, page.Content, page.MetaTitle, page.MetaDescription, page.Published).
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

func (r *PageRepo) UpdatePageFields(ctx context.Context, pageID uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.page_repository.UpdatePageFields"

	allowedFields := map[string]bool{
		"slug":             true,
		"title":            true,
		"content":          true,
		"meta_title":       true,
		"meta_description": true,
		"published":        true,
	}

	if len(updates) == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNoUpdates)
	}

	updateBuilder := r.sb.Update("pages").
		Set("updated_at", time.Now())

	for field, value := range updates {
		if !allowedFields[field] {
			return fmt.Errorf("%s: field '%s' is not allowed for update", op, field)
		}

		updateBuilder = updateBuilder.Set(field, value)
	}

	query, args, err := updateBuilder.Where(sq.Eq{"id": pageID}).ToSql()
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

func (r *PageRepo) DeletePage(ctx context.Context, pageID uuid.UUID) error {
	const op = "repository.page_repository.DeletePage"

	query, args, err := r.sb.Delete("pages").
		Where(sq.Eq{"id": pageID}).
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

func (r *PageRepo) GetPageBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Page, error) {
	const op = "repository.page_repository.GetPageBySlug"

	queryBuilder := r.sb.Select(pageColumns...).
		From("pages").
		Where(sq.Eq{"slug": slug})

	if publishedOnly {
		queryBuilder = queryBuilder.Where(sq.Eq{"published": true})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var page models.Page
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&page.ID,
		&page.Slug,
		&page.Title,
		&page.Content,
		&page.MetaTitle,
		&page.MetaDescription,
		&page.Published,
		&page.CreatedAt,
		&page.UpdatedAt,
	)
	if err != nil {
		return nil, wrapPgError(op, err)
	}

	return &page, nil
}

func (r *PageRepo) GetPages(ctx context.Context) ([]models.Page, error) {
	const op = "repository.page_repository.GetPages"

	query, args, err := r.sb.Select(pageColumns...).
		From("pages").
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

	var pages []models.Page
	for rows.Next() {
		var page models.Page
		err := rows.Scan(
			&page.ID,
			&page.Slug,
			&page.Title,
			&page.Content,
			&page.MetaTitle,
			&page.MetaDescription,
			&page.Published,
			&page.CreatedAt,
			&page.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		pages = append(pages, page)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return pages, nil
}
