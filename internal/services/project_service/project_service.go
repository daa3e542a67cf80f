package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"nordlys_studio/internal/cache"
	"nordlys_studio/internal/domain/models"
	"nordlys_studio/internal/lib/logger/sl"
	"nordlys_studio/internal/repository"
	"nordlys_studio/internal/storage"
	"nordlys_studio/internal/transport/http/dto"

	"github.com/google/uuid"
)

var (
	ErrInvalidCategory = errors.New("invalid project category")
	ErrSlugTaken       = errors.New("slug already taken")
)

type ProjectService struct {
	log   *slog.Logger
	repo  repository.ProjectRepository
	media repository.MediaRepository
	cache *cache.Cache
}

func NewProjectService(
	log *slog.Logger,
	repo repository.ProjectRepository,
	media repository.MediaRepository,
	c *cache.Cache,
) *ProjectService {
	return &ProjectService{log: log, repo: repo, media: media, cache: c}
}

func (s *ProjectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*models.Project, error) {
	const op = "project_service.CreateProject"
	log := s.log.With(
		slog.String("op", op),
		slog.String("title", req.Title),
	)

	log.Info("creating project")

	if !models.ValidProjectCategory(req.Category) {
		log.Warn("invalid category", slog.String("category", req.Category))
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCategory)
	}

	project := models.Project{
		Title:      req.Title,
		Slug:       req.Slug,
		Category:   req.Category,
		CoverImage: req.CoverImage,
		VideoURL:   req.VideoURL,
		Date:       req.Date,
		Location:   req.Location,
		Featured:   req.Featured,
		Published:  req.Published,
		SortOrder:  req.SortOrder,
	}

	id, err := s.repo.SaveProject(ctx, project)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			log.Warn("slug conflict", slog.String("slug", project.Slug))
			return nil, fmt.Errorf("%s: %w", op, ErrSlugTaken)
		}
		log.Error("failed to save project", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.InvalidateProjects()

	log.Info("project created", slog.String("project_id", id.String()))
	return s.repo.GetProjectByID(ctx, id)
}

func (s *ProjectService) UpdateProject(ctx context.Context, projectID uuid.UUID, req dto.UpdateProjectRequest) (*models.Project, error) {
	const op = "project_service.UpdateProject"
	log := s.log.With(
		slog.String("op", op),
		slog.String("project_id", projectID.String()),
	)

	log.Info("updating project")

	updates := make(map[string]interface{})

	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.Category != nil {
		if !models.ValidProjectCategory(*req.Category) {
			log.Warn("invalid category", slog.String("category", *req.Category))
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCategory)
		}
		updates["category"] = *req.Category
	}
	if req.CoverImage != nil {
		updates["cover_image"] = *req.CoverImage
	}
	if req.VideoURL != nil {
		updates["video_url"] = *req.VideoURL
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if req.Published != nil {
		updates["published"] = *req.Published
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}

	if err := s.repo.UpdateProjectFields(ctx, projectID, updates); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%s: %w", op, ErrSlugTaken)
		}
		log.Error("failed to update project", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.InvalidateProjects()

	log.Info("project updated")
	return s.repo.GetProjectByID(ctx, projectID)
}

// DeleteProject removes the project; media rows and client galleries go with
// it via FK cascade.
func (s *ProjectService) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	const op = "project_service.DeleteProject"
	log := s.log.With(
		slog.String("op", op),
		slog.String("project_id", projectID.String()),
	)

	log.Info("deleting project")

	if err := s.repo.DeleteProject(ctx, projectID); err != nil {
		log.Error("failed to delete project", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.InvalidateProjects()

	log.Info("project deleted")
	return nil
}

func (s *ProjectService) GetProjectByID(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	const op = "project_service.GetProjectByID"

	project, err := s.repo.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return project, nil
}

// GetPublishedProject serves the public project page. Unpublished projects
// are indistinguishable from missing ones.
func (s *ProjectService) GetPublishedProject(ctx context.Context, projectSlug string) (*models.Project, error) {
	const op = "project_service.GetPublishedProject"

	if cached, ok := s.cache.Get(cache.KeyProject(projectSlug)); ok {
		return cached.(*models.Project), nil
	}

	project, err := s.repo.GetProjectBySlug(ctx, projectSlug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !project.Published {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	s.cache.Set(cache.KeyProject(projectSlug), project)
	return project, nil
}

func (s *ProjectService) ListPublishedProjects(ctx context.Context, category string) ([]models.Project, error) {
	const op = "project_service.ListPublishedProjects"

	if cached, ok := s.cache.Get(cache.KeyProjects(category)); ok {
		return cached.([]models.Project), nil
	}

	projects, err := s.repo.GetProjects(ctx, category, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Set(cache.KeyProjects(category), projects)
	return projects, nil
}

func (s *ProjectService) ListAllProjects(ctx context.Context, category string) ([]models.Project, error) {
	const op = "project_service.ListAllProjects"

	projects, err := s.repo.GetProjects(ctx, category, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return projects, nil
}

// GetPublishedProjectMedia returns the ordered media of a published project.
func (s *ProjectService) GetPublishedProjectMedia(ctx context.Context, projectSlug string) ([]models.Media, error) {
	const op = "project_service.GetPublishedProjectMedia"

	if cached, ok := s.cache.Get(cache.KeyProjectMedia(projectSlug)); ok {
		return cached.([]models.Media), nil
	}

	project, err := s.GetPublishedProject(ctx, projectSlug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	media, err := s.media.GetMediaByProjectID(ctx, project.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Set(cache.KeyProjectMedia(projectSlug), media)
	return media, nil
}
