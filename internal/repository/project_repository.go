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

var projectColumns = []string{
	"id", "title", "slug", "category", "cover_image", "video_url",
	"date", "location", "featured", "published", "sort_order",
	"created_at", "updated_at",
}

type ProjectRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewProjectRepository(db *pgxpool.Pool) *ProjectRepo {
	return &ProjectRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ProjectRepo) SaveProject(ctx context.Context, project models.Project) (uuid.UUID, error) {
	const op = "repository.project_repository.SaveProject"

	query, args, err := r.sb.Insert("projects").
		Columns(
			"title",
			"slug",
			"category",
			"cover_image",
			"video_url",
			"date",
			"location",
			"featured",
			"published",
			"sort_order",
		).
		Values(
			project.Title,
			project.Slug,
			project.Category,
			project.CoverImage,
			project.VideoURL,
			project.Date,
			project.Location,
			project.Featured,
			project.Published,
			project.SortOrder,
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

func (r *ProjectRepo) UpdateProjectFields(ctx context.Context, projectID uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.project_repository.UpdateProjectFields"

	allowedFields := map[string]bool{
		"title":       true,
		"slug":        true,
		"category":    true,
		"cover_image": true,
		"video_url":   true,
		"date":        true,
		"location":    true,
		"featured":    true,
		"published":   true,
		"sort_order":  true,
	}

	if len(updates) == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNoUpdates)
	}

	updateBuilder := r.sb.Update("projects").
		Set("updated_at", time.Now())

	for field, value := range updates {
		if !allowedFields[field] {
			return fmt.Errorf("%s: field '%s' is not allowed for update", op, field)
		}

		updateBuilder = updateBuilder.Set(field, value)
	}

	query, args, err := updateBuilder.Where(sq.Eq{"id": projectID}).ToSql()
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

// DeleteProject removes the project; media and client galleries referencing
// it go with it through the ON DELETE CASCADE foreign keys.
func (r *ProjectRepo) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	const op = "repository.project_repository.DeleteProject"

	query, args, err := r.sb.Delete("projects").
		Where(sq.Eq{"id": projectID}).
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

func (r *ProjectRepo) GetProjectByID(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	const op = "repository.project_repository.GetProjectByID"

	return r.getProject(ctx, op, sq.Eq{"id": projectID})
}

func (r *ProjectRepo) GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error) {
	const op = "repository.project_repository.GetProjectBySlug"

	return r.getProject(ctx, op, sq.Eq{"slug": slug})
}

func (r *ProjectRepo) getProject(ctx context.Context, op string, where sq.Eq) (*models.Project, error) {
	query, args, err := r.sb.Select(projectColumns...).
		From("projects").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var project models.Project
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&project.ID,
		&project.Title,
		&project.Slug,
		&project.Category,
		&project.CoverImage,
		&project.VideoURL,
		&project.Date,
		&project.Location,
		&project.Featured,
		&project.Published,
		&project.SortOrder,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, wrapPgError(op, err)
	}

	return &project, nil
}

func (r *ProjectRepo) GetProjects(ctx context.Context, category string, publishedOnly bool) ([]models.Project, error) {
	const op = "repository.project_repository.GetProjects"

	queryBuilder := r.sb.Select(projectColumns...).
		From("projects").
		OrderBy("sort_order ASC", "created_at DESC")

	if publishedOnly {
		queryBuilder = queryBuilder.Where(sq.Eq{"published": true})
	}
	if category != "" {
		queryBuilder = queryBuilder.Where(sq.Eq{"category": category})
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

	var projects []models.Project
	for rows.Next() {
		var project models.Project
		err := rows.Scan(
			&project.ID,
			&project.Title,
			&project.Slug,
			&project.Category,
			&project.CoverImage,
			&project.VideoURL,
			&project.Date,
			&project.Location,
			&project.Featured,
			&project.Published,
			&project.SortOrder,
			&project.CreatedAt,
			&project.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return projects, nil
}
