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
	navigationColumns = []string{
		"id", "label", "href", "display_order", "is_active", "created_at", "updated_at",
	}
	landingColumns = []string{
		"id", "section_key", "title", "body", "image_url",
		"display_order", "is_active", "created_at", "updated_at",
	}
)

type CmsRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewCmsRepository(db *pgxpool.Pool) *CmsRepo {
	return &CmsRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *CmsRepo) SaveNavigationItem(ctx context.Context, item models.NavigationItem) (uuid.UUID, error) {
	const op = "repository.cms_repository.SaveNavigationItem"

	query, args, err := r.sb.Insert("navigation_items").
		Columns("label", "href", "display_order", "is_active").
		Values(item.Label, item.Href, item.DisplayOrder, item.IsActive).
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

func (r *CmsRepo) UpdateNavigationItemFields(ctx context.Context, itemID uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.cms_repository.UpdateNavigationItemFields"

	allowedFields := map[string]bool{
		"label":         true,
		"href":          true,
		"display_order": true,
		"is_active":     true,
	}

	return r.updateFields(ctx, op, "navigation_items", itemID, updates, allowedFields)
}

func (r *CmsRepo) DeleteNavigationItem(ctx context.Context, itemID uuid.UUID) error {
	const op = "repository.cms_repository.DeleteNavigationItem"

	return r.deleteByID(ctx, op, "navigation_items", itemID)
}

func (r *CmsRepo) GetNavigationItems(ctx context.Context, activeOnly bool) ([]models.NavigationItem, error) {
	const op = "repository.cms_repository.GetNavigationItems"

	queryBuilder := r.sb.Select(navigationColumns...).
		From("navigation_items").
		OrderBy("display_order ASC", "created_at ASC")

	if activeOnly {
		queryBuilder = queryBuilder.Where(sq.Eq{"is_active": true})
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

	var items []models.NavigationItem
	for rows.Next() {
		var item models.NavigationItem
		err := rows.Scan(
			&item.ID,
			&item.Label,
			&item.Href,
			&item.DisplayOrder,
			&item.IsActive,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

func (r *CmsRepo) SaveLandingSection(ctx context.Context, section models.LandingSection) (uuid.UUID, error) {
	const op = "repository.cms_repository.SaveLandingSection"

	query, args, err := r.sb.Insert("landing_sections").
		Columns("section_key", "title", "body", "image_url", "display_order", "is_active").
		Values(
			section.SectionKey,
			section.Title,
			section.Body,
			section.ImageURL,
			section.DisplayOrder,
			section.IsActive,
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

func (r *CmsRepo) UpdateLandingSectionFields(ctx context.Context, sectionID uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.cms_repository.UpdateLandingSectionFields"

	allowedFields := map[string]bool{
		"section_key":   true,
		"title":         true,
		"body":          true,
		"image_url":     true,
		"display_order": true,
		"is_active":     true,
	}

	return r.updateFields(ctx, op, "landing_sections", sectionID, updates, allowedFields)
}

func (r *CmsRepo) DeleteLandingSection(ctx context.Context, sectionID uuid.UUID) error {
	const op = "repository.cms_repository.DeleteLandingSection"

	return r.deleteByID(ctx, op, "landing_sections", sectionID)
}

func (r *CmsRepo) GetLandingSections(ctx context.Context, activeOnly bool) ([]models.LandingSection, error) {
	const op = "repository.cms_repository.GetLandingSections"

	queryBuilder := r.sb.Select(landingColumns...).
		From("landing_sections").
		OrderBy("display_order ASC", "created_at ASC")

	if activeOnly {
		queryBuilder = queryBuilder.Where(sq.Eq{"is_active": true})
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

	var sections []models.LandingSection
	for rows.Next() {
		var section models.LandingSection
		err := rows.Scan(
			&section.ID,
			&section.SectionKey,
			&section.Title,
			&section.Body,
			&section.ImageURL,
			&section.DisplayOrder,
			&section.IsActive,
			&section.CreatedAt,
			&section.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		sections = append(sections, section)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sections, nil
}

func (r *CmsRepo) updateFields(
	ctx context.Context,
	op, table string,
	id uuid.UUID,
	updates map[string]interface{},
	allowedFields map[string]bool,
) error {
	if len(updates) == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNoUpdates)
	}

	updateBuilder := r.sb.Update(table).
		Set("updated_at", time.Now())

	for field, value := range updates {
		if !allowedFields[field] {
			return fmt.Errorf("%s: field '%s' is not allowed for update", op, field)
		}

		updateBuilder = updateBuilder.Set(field, value)
	}

	query, args, err := updateBuilder.Where(sq.Eq{"id": id}).ToSql()
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

func (r *CmsRepo) deleteByID(ctx context.Context, op, table string, id uuid.UUID) error {
	query, args, err := r.sb.Delete(table).
		Where(sq.Eq{"id": id}).
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
