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
	"github.com/lib/pq"
)

var blogColumns = []string{
	"id", "title", "slug", "excerpt", "content", "cover_image", "category",
	"tags", "author", "published", "featured", "published_at", "created_at", "updated_at",
}

type BlogRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewBlogRepository(db *pgxpool.Pool) *BlogRepo {
	return &BlogRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *BlogRepo) SaveBlogPost(ctx context.Context, post models.BlogPost) (uuid.UUID, error) {
	const op = "repository.blog_repository.SaveBlogPost"

	query, args, err := r.sb.Insert("blog_posts").
		Columns(
			"title", "slug", "excerpt", "content", "cover_image", "category",
			"tags", "author", "published", "featured", "published_at",
		).
		Values(
			post.Title,
			post.Slug,
			post.Excerpt,
			post.Content,
			post.CoverImage,
			post.Category,
			pq.Array(post.Tags),
			post.Author,
			post.Published,
			post.Featured,
			post.PublishedAt,
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

func (r *BlogRepo) UpdateBlogPostFields(ctx context.Context, postID uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.blog_repository.UpdateBlogPostFields"

	allowedFields := map[string]bool{
		"title":        true,
		"slug":         true,
		"excerpt":      true,
		"content":      true,
		"cover_image":  true,
		"category":     true,
		"tags":         true,
		"author":       true,
		"published":    true,
		"featured":     true,
		"published_at": true,
	}

	if len(updates) == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNoUpdates)
	}

	updateBuilder := r.sb.Update("blog_posts").
		Set("updated_at", time.Now())

	for field, value := range updates {
		if !allowedFields[field] {
			return fmt.Errorf("%s: field '%s' is not allowed for update", op, field)
		}

		if field == "tags" {
			if tags, ok := value.([]string); ok {
				value = pq.Array(tags)
			}
		}

		updateBuilder = updateBuilder.Set(field, value)
	}

	query, args, err := updateBuilder.Where(sq.Eq{"id": postID}).ToSql()
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

func (r *BlogRepo) DeleteBlogPost(ctx context.Context, postID uuid.UUID) error {
	const op = "repository.blog_repository.DeleteBlogPost"

	query, args, err := r.sb.Delete("blog_posts").
		Where(sq.Eq{"id": postID}).
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

func (r *BlogRepo) GetBlogPostByID(ctx context.Context, postID uuid.UUID) (*models.BlogPost, error) {
	const op = "repository.blog_repository.GetBlogPostByID"

	return r.getBlogPost(ctx, op, sq.Eq{"id": postID})
}

func (r *BlogRepo) GetBlogPostBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.BlogPost, error) {
	const op = "repository.blog_repository.GetBlogPostBySlug"

	where := sq.Eq{"slug": slug}
	if publishedOnly {
		where["published"] = true
	}

	return r.getBlogPost(ctx, op, where)
}

func (r *BlogRepo) getBlogPost(ctx context.Context, op string, where sq.Eq) (*models.BlogPost, error) {
	query, args, err := r.sb.Select(blogColumns...).
		From("blog_posts").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var post models.BlogPost
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Excerpt,
		&post.Content,
		&post.CoverImage,
		&post.Category,
		pq.Array(&post.Tags),
		&post.Author,
		&post.Published,
		&post.Featured,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, wrapPgError(op, err)
	}

	return &post, nil
}

// GetBlogPosts returns one page of posts newest first along with the total
// row count for the filter, so the transport layer can build pagination.
func (r *BlogRepo) GetBlogPosts(ctx context.Context, publishedOnly bool, page, perPage int) ([]models.BlogPost, int, error) {
	const op = "repository.blog_repository.GetBlogPosts"

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	countBuilder := r.sb.Select("COUNT(*)").From("blog_posts")
	listBuilder := r.sb.Select(blogColumns...).
		From("blog_posts").
		OrderBy("created_at DESC").
		Limit(uint64(perPage)).
		Offset(uint64((page - 1) * perPage))

	if publishedOnly {
		countBuilder = countBuilder.Where(sq.Eq{"published": true})
		listBuilder = listBuilder.Where(sq.Eq{"published": true})
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	var total int
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	query, args, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var posts []models.BlogPost
	for rows.Next() {
		var post models.BlogPost
		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Slug,
			&post.Excerpt,
			&post.Content,
			&post.CoverImage,
			&post.Category,
			pq.Array(&post.Tags),
			&post.Author,
			&post.Published,
			&post.Featured,
			&post.PublishedAt,
			&post.CreatedAt,
			&post.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return posts, total, nil
}
