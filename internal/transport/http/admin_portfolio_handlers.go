package http

import (
	"errors"
	"log/slog"
	"net/http"

	"nordlys_studio/internal/lib/logger/sl"
	projectservice "nordlys_studio/internal/services/project_service"
	"nordlys_studio/internal/transport/http/dto"
	"nordlys_studio/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CreateProject godoc
// @Summary Create project
// @Description Creates a portfolio project. The slug is derived from the title when not provided.
// @Tags admin-projects
// @Accept json
// @Produce json
// @Param request body dto.CreateProjectRequest true "Project data"
// @Success 201 {object} response.Response{data=models.Project} "Created project"
// @Failure 400 {object} response.ErrorResponse "Invalid request or category"
// @Failure 409 {object} response.ErrorResponse "Slug already taken"
// @Security ApiKeyAuth
// @Router /api/admin/projects [post]
func (r *Routers) CreateProject(c echo.Context) error {
	const op = "http.routers.CreateProject"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateProjectRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid project request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	project, err := r.ProjectService.CreateProject(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, projectservice.ErrInvalidCategory):
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_category", "Unknown project category"))
		case errors.Is(err, projectservice.ErrSlugTaken):
			return c.JSON(http.StatusConflict, response.ErrConflict)
		}
		log.Error("failed to create project", sl.Err(err))
		return r.respondError(c, err)
	}

	log.Info("project created", slog.String("project_id", project.ID.String()))

	return c.JSON(http.StatusCreated, response.Response{Status: "success", Data: project})
}

// AdminProjects godoc
// @Summary List all projects
// @Description Returns every project regardless of published state, optionally filtered by category.
// @Tags admin-projects
// @Produce json
// @Param category query string false "Project category"
// @Success 200 {object} response.Response{data=[]models.Project} "Projects"
// @Security ApiKeyAuth
// @Router /api/admin/projects [get]
func (r *Routers) AdminProjects(c echo.Context) error {
	const op = "http.routers.AdminProjects"

	projects, err := r.ProjectService.ListAllProjects(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		r.log.Error("failed to list projects", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: projects})
}

// AdminProject godoc
// @Summary Get project by ID
// @Tags admin-projects
// @Produce json
// @Param id path string true "Project UUID" format(uuid)
// @Success 200 {object} response.Response{data=models.Project} "Project"
// @Failure 400 {object} response.ErrorResponse "Invalid UUID"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Security ApiKeyAuth
// @Router /api/admin/projects/{id} [get]
func (r *Routers) AdminProject(c echo.Context) error {
	const op = "http.routers.AdminProject"

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	project, err := r.ProjectService.GetProjectByID(c.Request().Context(), id)
	if err != nil {
		r.log.Warn("failed to get project", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: project})
}

// UpdateProject godoc
// @Summary Update project
// @Description Applies the provided fields to a project. Omitted fields keep their values.
// @Tags admin-projects
// @Accept json
// @Produce json
// @Param id path string true "Project UUID" format(uuid)
// @Param request body dto.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} response.Response{data=models.Project} "Updated project"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Failure 409 {object} response.ErrorResponse "Slug already taken"
// @Security ApiKeyAuth
// @Router /api/admin/projects/{id} [patch]
func (r *Routers) UpdateProject(c echo.Context) error {
	const op = "http.routers.UpdateProject"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	var req dto.UpdateProjectRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	project, err := r.ProjectService.UpdateProject(c.Request().Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, projectservice.ErrInvalidCategory):
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_category", "Unknown project category"))
		case errors.Is(err, projectservice.ErrSlugTaken):
			return c.JSON(http.StatusConflict, response.ErrConflict)
		}
		log.Error("failed to update project", sl.Err(err))
		return r.respondError(c, err)
	}

	log.Info("project updated", slog.String("project_id", id.String()))

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: project})
}

// DeleteProject godoc
// @Summary Delete project
// @Description Deletes a project. Its media rows go with it.
// @Tags admin-projects
// @Produce json
// @Param id path string true "Project UUID" format(uuid)
// @Success 200 {object} response.Response "Deleted"
// @Failure 400 {object} response.ErrorResponse "Invalid UUID"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Security ApiKeyAuth
// @Router /api/admin/projects/{id} [delete]
func (r *Routers) DeleteProject(c echo.Context) error {
	const op = "http.routers.DeleteProject"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := r.ProjectService.DeleteProject(c.Request().Context(), id); err != nil {
		log.Error("failed to delete project", sl.Err(err))
		return r.respondError(c, err)
	}

	log.Info("project deleted", slog.String("project_id", id.String()))

	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "project deleted"})
}

// UploadMedia godoc
// @Summary Upload media file
// @Description Stores the uploaded file and creates the media row. Without project_id the file lands in the shared library.
// @Tags admin-media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Param project_id formData string false "Owning project UUID" format(uuid)
// @Param media_type formData string true "Media type" Enums(image, video)
// @Param title formData string false "Title"
// @Param alt formData string false "Alt text"
// @Param sort_order formData integer false "Sort order"
// @Success 201 {object} response.Response{data=models.Media} "Created media"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Security ApiKeyAuth
// @Router /api/admin/media [post]
func (r *Routers) UploadMedia(c echo.Context) error {
	const op = "http.routers.UploadMedia"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.UploadMediaRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("missing_file", "File is required"))
	}
	req.File = file

	if err := c.Validate(req); err != nil {
		log.Warn("invalid upload request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	media, err := r.MediaService.UploadMedia(c.Request().Context(), req)
	if err != nil {
		log.Error("failed to upload media", sl.Err(err))
		return r.respondError(c, err)
	}

	log.Info("media uploaded", slog.String("media_id", media.ID.String()))

	return c.JSON(http.StatusCreated, response.Response{Status: "success", Data: media})
}

// AdminMedia godoc
// @Summary List media
// @Description Returns media rows, optionally scoped to a project.
// @Tags admin-media
// @Produce json
// @Param project_id query string false "Project UUID" format(uuid)
// @Success 200 {object} response.Response{data=[]models.Media} "Media"
// @Security ApiKeyAuth
// @Router /api/admin/media [get]
func (r *Routers) AdminMedia(c echo.Context) error {
	const op = "http.routers.AdminMedia"

	var projectID *uuid.UUID
	if raw := c.QueryParam("project_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
		}
		projectID = &id
	}

	media, err := r.MediaService.ListMedia(c.Request().Context(), projectID)
	if err != nil {
		r.log.Error("failed to list media", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: media})
}

// UpdateMedia godoc
// @Summary Update media
// @Tags admin-media
// @Accept json
// @Produce json
// @Param id path string true "Media UUID" format(uuid)
// @Param request body dto.UpdateMediaRequest true "Fields to update"
// @Success 200 {object} response.Response{data=models.Media} "Updated media"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Security ApiKeyAuth
// @Router /api/admin/media/{id} [patch]
func (r *Routers) UpdateMedia(c echo.Context) error {
	const op = "http.routers.UpdateMedia"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	var req dto.UpdateMediaRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	media, err := r.MediaService.UpdateMedia(c.Request().Context(), id, req)
	if err != nil {
		log.Error("failed to update media", sl.Err(err))
		return r.respondError(c, err)
	}

	log.Info("media updated", slog.String("media_id", id.String()))

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: media})
}

// DeleteMedia godoc
// @Summary Delete media
// @Description Removes the media row and its file from storage.
// @Tags admin-media
// @Produce json
// @Param id path string true "Media UUID" format(uuid)
// @Success 200 {object} response.Response "Deleted"
// @Failure 400 {object} response.ErrorResponse "Invalid UUID"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Security ApiKeyAuth
// @Router /api/admin/media/{id} [delete]
func (r *Routers) DeleteMedia(c echo.Context) error {
	const op = "http.routers.DeleteMedia"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := r.MediaService.DeleteMedia(c.Request().Context(), id); err != nil {
		log.Error("failed to delete media", sl.Err(err))
		return r.respondError(c, err)
	}

	log.Info("media deleted", slog.String("media_id", id.String()))

	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "media deleted"})
}
