package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"nordlys_studio/internal/cache"
	"nordlys_studio/internal/domain/models"
	"nordlys_studio/internal/lib/logger/sl"
	"nordlys_studio/internal/lib/slug"
	"nordlys_studio/internal/repository"
	"nordlys_studio/internal/storage"
	"nordlys_studio/internal/transport/http/dto"

	"github.com/google/uuid"
)

var ErrSlugTaken = errors.New("slug already taken")

type BlogService struct {
	log   *slog.Logger
	repo  repository.BlogRepository
	cache *cache.Cache
}

func NewBlogService(log *slog.Logger, repo repository.BlogRepository, c *cache.Cache) *BlogService {
	return &BlogService{log: log, repo: repo, cache: c}
}

func (s *BlogService) CreatePost(ctx context.Context, req dto.CreateBlogPostRequest) (*models.BlogPost, error) {
	const op = "blog_service.CreatePost"
	log := s.log.With(
		slog.String("op", op),
		slog.String("title", req.Title),
	)

	log.Info("creating blog post")

	post := models.BlogPost{
		Title:      req.Title,
		Slug:       req.Slug,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		Category:   req.Category,
		Tags:       req.Tags,
		Author:     req.Author,
		Published:  req.Published,
		Featured:   req.Featured,
	}

	if post.Slug == "" {
		post.Slug = slug.Make(post.Title)
	}

	if post.Published {
		now := time.Now()
		post.PublishedAt = &now
	}

	id, err := s.repo.SaveBlogPost(ctx, post)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			log.Warn("slug conflict", slog.String("slug", post.Slug))
			return nil, fmt.Errorf("%s: %w", op, ErrSlugTaken)
		}
		log.Error("failed to save post", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.InvalidateBlog()

	log.Info("post created", slog.String("post_id", id.String()))
	return s.repo.GetBlogPostByID(ctx, id)
}

func (s *BlogService) UpdatePost(ctx context.Context, postID uuid.UUID, req dto.UpdateBlogPostRequest) (*models.BlogPost, error) {
	const op = "blog_service.UpdatePost"
	log := s.log.With(
		slog.String("op", op),
		slog.String("post_id", postID.String()),
	)

	log.Info("updating blog post")

	existing, err := s.repo.GetBlogPostByID(ctx, postID)
	if err != nil {
		log.Error("failed to get post", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updates := make(map[string]interface{})

	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.Excerpt != nil {
		updates["excerpt"] = *req.Excerpt
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.CoverImage != nil {
		updates["cover_image"] = *req.CoverImage
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Tags != nil {
		updates["tags"] = req.Tags
	}
	if req.Author != nil {
		updates["author"] = *req.Author
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if req.PublishedAt != nil {
		updates["published_at"] = *req.PublishedAt
	}

	// First transition into published stamps published_at; unpublishing
	// keeps the original timestamp.
	if req.Published != nil {
		updates["published"] = *req.Published
		if *req.Published && !existing.Published && req.PublishedAt == nil && existing.PublishedAt == nil {
			now := time.Now()
			updates["published_at"] = &now
		}
	}

	if err := s.repo.UpdateBlogPostFields(ctx, postID, updates); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%s: %w", op, ErrSlugTaken)
		}
		log.Error("failed to update post", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.InvalidateBlog()

	log.Info("post updated")
	return s.repo.GetBlogPostByID(ctx, postID)
}

func (s *BlogService) DeletePost(ctx context.Context, postID uuid.UUID) error {
	const op = "blog_service.DeletePost"
	log := s.log.With(
		slog.String("op", op),
		slog.String("post_id", postID.String()),
	)

	if err := s.repo.DeleteBlogPost(ctx, postID); err != nil {
		log.Error("failed to delete post", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.InvalidateBlog()

	log.Info("post deleted")
	return nil
}

func (s *BlogService) GetPostByID(ctx context.Context, postID uuid.UUID) (*models.BlogPost, error) {
	const op = "blog_service.GetPostByID"

	post, err := s.repo.GetBlogPostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return post, nil
}

// GetPublishedPost serves the public blog detail endpoint.
func (s *BlogService) GetPublishedPost(ctx context.Context, postSlug string) (*models.BlogPost, error) {
	const op = "blog_service.GetPublishedPost"

	if cached, ok := s.cache.Get(cache.KeyBlogPost(postSlug)); ok {
		return cached.(*models.BlogPost), nil
	}

	post, err := s.repo.GetBlogPostBySlug(ctx, postSlug, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Set(cache.KeyBlogPost(postSlug), post)
	return post, nil
}

func (s *BlogService) ListPublishedPosts(ctx context.Context, page, perPage int) (*dto.BlogPostListResponse, error) {
	const op = "blog_service.ListPublishedPosts"

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 10
	}

	if cached, ok := s.cache.Get(cache.KeyBlogList(page, perPage)); ok {
		return cached.(*dto.BlogPostListResponse), nil
	}

	posts, total, err := s.repo.GetBlogPosts(ctx, true, page, perPage)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	response := &dto.BlogPostListResponse{
		Posts:      posts,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}

	s.cache.Set(cache.KeyBlogList(page, perPage), response)
	return response, nil
}

func (s *BlogService) ListAllPosts(ctx context.Context, page, perPage int) (*dto.BlogPostListResponse, error) {
	const op = "blog_service.ListAllPosts"

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 10
	}

	posts, total, err := s.repo.GetBlogPosts(ctx, false, page, perPage)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &dto.BlogPostListResponse{
		Posts:      posts,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}
