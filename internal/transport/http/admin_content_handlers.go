package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"nordlys_studio/internal/lib/logger/sl"
	blogservice "nordlys_studio/internal/services/blog_service"
	pageservice "nordlys_studio/internal/services/page_service"
	settingsservice "nordlys_studio/internal/services/settings_service"
	"nordlys_studio/internal/transport/http/dto"
	"nordlys_studio/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// CreatePage godoc
// @Summary Create page
// @Tags admin-pages
// @Accept json
// @Produce json
// @Param request body dto.CreatePageRequest true "Page data"
// @Success 201 {object} response.Response{data=models.Page} "Created page"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Failure 409 {object} response.ErrorResponse "Slug already taken"
// @Security ApiKeyAuth
// @Router /api/admin/pages [post]
func (r *Routers) CreatePage(c echo.Context) error {
	const op = "http.routers.CreatePage"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreatePageRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid page request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	page, err := r.PageService.CreatePage(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, pageservice.ErrSlugTaken) {
			return c.JSON(http.StatusConflict, response.ErrConflict)
		}
		log.Error("failed to create page", sl.Err(err))
		return r.respondError(c, err)
	}

	log.Info("page created", slog.String("page_id", page.ID.String()))

	return c.JSON(http.StatusCreated, response.Response{Status: "success", Data: page})
}

// AdminPages godoc
// @Summary List all pages
// @Tags admin-pages
// @Produce json
// @Success 200 {object} response.Response{data=[]models.Page} "Pages"
// @Security ApiKeyAuth
// @Router /api/admin/pages [get]
func (r *Routers) AdminPages(c echo.Context) error {
	const op = "http.routers.AdminPages"

	pages, err := r.PageService.ListPages(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list pages", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: pages})
}

// UpdatePage godoc
// @Summary Update page
// @Tags admin-pages
// @Accept json
// @Produce json
// @Param id path string true "Page UUID" format(uuid)
// @Param request body dto.UpdatePageRequest true "Fields to update"
// @Success 200 {object} response.Response "Updated"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Failure 409 {object} response.ErrorResponse "Slug already taken"
// @Security ApiKeyAuth
// @Router /api/admin/pages/{id} [patch]
func (r *Routers) UpdatePage(c echo.Context) error {
	const op = "http.routers.UpdatePage"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	var req dto.UpdatePageRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := r.PageService.UpdatePage(c.Request().Context(), id, req); err != nil {
		if errors.Is(err, pageservice.ErrSlugTaken) {
			return c.JSON(http.StatusConflict, response.ErrConflict)
		}
		log.Error("failed to update page", sl.Err(err))
		return r.respondError(c, err)
	}

	log.Info("page updated", slog.String("page_id", id.String()))

	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "page updated"})
}

// DeletePage godoc
// @Summary Delete page
// @Tags admin-pages
// @Produce json
// @Param id path string true "Page UUID" format(uuid)
// @Success 200 {object} response.Response "Deleted"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Security ApiKeyAuth
// @Router /api/admin/pages/{id} [delete]
func (r *Routers) DeletePage(c echo.Context) error {
	const op = "http.routers.DeletePage"

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := r.PageService.DeletePage(c.Request().Context(), id); err != nil {
		r.log.Error("failed to delete page", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "page deleted"})
}

// CreateReview godoc
// @Summary Create review
// @Tags admin-reviews
// @Accept json
// @Produce json
// @Param request body dto.CreateReviewRequest true "Review data"
// @Success 201 {object} response.Response{data=models.Review} "Created review"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Security ApiKeyAuth
// @Router /api/admin/reviews [post]
func (r *Routers) CreateReview(c echo.Context) error {
	const op = "http.routers.CreateReview"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateReviewRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid review request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	review, err := r.ReviewService.CreateReview(c.Request().Context(), req)
	if err != nil {
		log.Error("failed to create review", sl.Err(err))
		return r.respondError(c, err)
	}

	log.Info("review created", slog.String("review_id", review.ID.String()))

	return c.JSON(http.StatusCreated, response.Response{Status: "success", Data: review})
}

// AdminReviews godoc
// @Summary List all reviews
// @Tags admin-reviews
// @Produce json
// @Success 200 {object} response.Response{data=[]models.Review} "Reviews"
// @Security ApiKeyAuth
// @Router /api/admin/reviews [get]
func (r *Routers) AdminReviews(c echo.Context) error {
	const op = "http.routers.AdminReviews"

	reviews, err := r.ReviewService.ListAllReviews(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list reviews", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: reviews})
}

// UpdateReview godoc
// @Summary Update review
// @Tags admin-reviews
// @Accept json
// @Produce json
// @Param id path string true "Review UUID" format(uuid)
// @Param request body dto.UpdateReviewRequest true "Fields to update"
// @Success 200 {object} response.Response{data=models.Review} "Updated review"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Security ApiKeyAuth
// @Router /api/admin/reviews/{id} [patch]
func (r *Routers) UpdateReview(c echo.Context) error {
	const op = "http.routers.UpdateReview"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	var req dto.UpdateReviewRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	review, err := r.ReviewService.UpdateReview(c.Request().Context(), id, req)
	if err != nil {
		log.Error("failed to update review", sl.Err(err))
		return r.respondError(c, err)
	}

	log.Info("review updated", slog.String("review_id", id.String()))

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: review})
}

// DeleteReview godoc
// @Summary Delete review
// @Tags admin-reviews
// @Produce json
// @Param id path string true "Review UUID" format(uuid)
// @Success 200 {object} response.Response "Deleted"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Security ApiKeyAuth
// @Router /api/admin/reviews/{id} [delete]
func (r *Routers) DeleteReview(c echo.Context) error {
	const op = "http.routers.DeleteReview"

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := r.ReviewService.DeleteReview(c.Request().Context(), id); err != nil {
		r.log.Error("failed to delete review", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "review deleted"})
}

// CreateBlogPost godoc
// @Summary Create blog post
// @Description Creates a post. Publishing at creation stamps published_at.
// @Tags admin-blog
// @Accept json
// @Produce json
// @Param request body dto.CreateBlogPostRequest true "Post data"
// @Success 201 {object} response.Response{data=models.BlogPost} "Created post"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Failure 409 {object} response.ErrorResponse "Slug already taken"
// @Security ApiKeyAuth
// @Router /api/admin/blog [post]
func (r *Routers) CreateBlogPost(c echo.Context) error {
	const op = "http.routers.CreateBlogPost"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateBlogPostRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid blog post request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	post, err := r.BlogService.CreatePost(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, blogservice.ErrSlugTaken) {
			return c.JSON(http.StatusConflict, response.ErrConflict)
		}
		log.Error("failed to create blog post", sl.Err(err))
		return r.respondError(c, err)
	}

	log.Info("blog post created", slog.String("post_id", post.ID.String()))

	return c.JSON(http.StatusCreated, response.Response{Status: "success", Data: post})
}

// AdminBlogPosts godoc
// @Summary List all blog posts
// @Tags admin-blog
// @Produce json
// @Param page query integer false "Page number, 1-based"
// @Param per_page query integer false "Page size"
// @Success 200 {object} response.Response{data=dto.BlogPostListResponse} "Paginated posts"
// @Security ApiKeyAuth
// @Router /api/admin/blog [get]
func (r *Routers) AdminBlogPosts(c echo.Context) error {
	const op = "http.routers.AdminBlogPosts"

	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))

	posts, err := r.BlogService.ListAllPosts(c.Request().Context(), page, perPage)
	if err != nil {
		r.log.Error("failed to list blog posts", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: posts})
}

// UpdateBlogPost godoc
// @Summary Update blog post
// @Description Applies the provided fields. The first transition into published stamps published_at; unpublishing keeps it.
// @Tags admin-blog
// @Accept json
// @Produce json
// @Param id path string true "Post UUID" format(uuid)
// @Param request body dto.UpdateBlogPostRequest true "Fields to update"
// @Success 200 {object} response.Response{data=models.BlogPost} "Updated post"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Failure 409 {object} response.ErrorResponse "Slug already taken"
// @Security ApiKeyAuth
// @Router /api/admin/blog/{id} [patch]
func (r *Routers) UpdateBlogPost(c echo.Context) error {
	const op = "http.routers.UpdateBlogPost"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	var req dto.UpdateBlogPostRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	post, err := r.BlogService.UpdatePost(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, blogservice.ErrSlugTaken) {
			return c.JSON(http.StatusConflict, response.ErrConflict)
		}
		log.Error("failed to update blog post", sl.Err(err))
		return r.respondError(c, err)
	}

	log.Info("blog post updated", slog.String("post_id", id.String()))

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: post})
}

// DeleteBlogPost godoc
// @Summary Delete blog post
// @Tags admin-blog
// @Produce json
// @Param id path string true "Post UUID" format(uuid)
// @Success 200 {object} response.Response "Deleted"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Security ApiKeyAuth
// @Router /api/admin/blog/{id} [delete]
func (r *Routers) DeleteBlogPost(c echo.Context) error {
	const op = "http.routers.DeleteBlogPost"

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := r.BlogService.DeletePost(c.Request().Context(), id); err != nil {
		r.log.Error("failed to delete blog post", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "blog post deleted"})
}

// CreateHeroSlide godoc
// @Summary Create hero slide
// @Tags admin-hero
// @Accept json
// @Produce json
// @Param request body dto.CreateHeroSlideRequest true "Slide data"
// @Success 201 {object} response.Response{data=object{slide_id=string}} "Created"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Security ApiKeyAuth
// @Router /api/admin/hero-slides [post]
func (r *Routers) CreateHeroSlide(c echo.Context) error {
	const op = "http.routers.CreateHeroSlide"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateHeroSlideRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid hero slide request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	id, err := r.SettingsService.CreateHeroSlide(c.Request().Context(), req)
	if err != nil {
		log.Error("failed to create hero slide", sl.Err(err))
		return r.respondError(c, err)
	}

	log.Info("hero slide created", slog.String("slide_id", id.String()))

	return c.JSON(http.StatusCreated, response.Response{
		Status: "success",
		Data:   map[string]string{"slide_id": id.String()},
	})
}

// AdminHeroSlides godoc
// @Summary List all hero slides
// @Tags admin-hero
// @Produce json
// @Success 200 {object} response.Response{data=[]models.HeroSlide} "Slides"
// @Security ApiKeyAuth
// @Router /api/admin/hero-slides [get]
func (r *Routers) AdminHeroSlides(c echo.Context) error {
	const op = "http.routers.AdminHeroSlides"

	slides, err := r.SettingsService.ListHeroSlides(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list hero slides", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: slides})
}

// UpdateHeroSlide godoc
// @Summary Update hero slide
// @Tags admin-hero
// @Accept json
// @Produce json
// @Param id path string true "Slide UUID" format(uuid)
// @Param request body dto.UpdateHeroSlideRequest true "Fields to update"
// @Success 200 {object} response.Response "Updated"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Security ApiKeyAuth
// @Router /api/admin/hero-slides/{id} [patch]
func (r *Routers) UpdateHeroSlide(c echo.Context) error {
	const op = "http.routers.UpdateHeroSlide"

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	var req dto.UpdateHeroSlideRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := r.SettingsService.UpdateHeroSlide(c.Request().Context(), id, req); err != nil {
		r.log.Error("failed to update hero slide", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "hero slide updated"})
}

// DeleteHeroSlide godoc
// @Summary Delete hero slide
// @Tags admin-hero
// @Produce json
// @Param id path string true "Slide UUID" format(uuid)
// @Success 200 {object} response.Response "Deleted"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Security ApiKeyAuth
// @Router /api/admin/hero-slides/{id} [delete]
func (r *Routers) DeleteHeroSlide(c echo.Context) error {
	const op = "http.routers.DeleteHeroSlide"

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := r.SettingsService.DeleteHeroSlide(c.Request().Context(), id); err != nil {
		r.log.Error("failed to delete hero slide", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "hero slide deleted"})
}

// UpsertSetting godoc
// @Summary Create or update a setting
// @Description Settings are keyed uniquely; writing an existing key overwrites its value and type.
// @Tags admin-settings
// @Accept json
// @Produce json
// @Param request body dto.UpsertSettingRequest true "Setting"
// @Success 200 {object} response.Response{data=models.SiteSetting} "Upserted setting"
// @Failure 400 {object} response.ErrorResponse "Invalid request or type"
// @Security ApiKeyAuth
// @Router /api/admin/settings [put]
func (r *Routers) UpsertSetting(c echo.Context) error {
	const op = "http.routers.UpsertSetting"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.UpsertSettingRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid setting request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	setting, err := r.SettingsService.UpsertSetting(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, settingsservice.ErrInvalidSettingType) {
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_type", "Unknown setting type"))
		}
		log.Error("failed to upsert setting", sl.Err(err))
		return r.respondError(c, err)
	}

	log.Info("setting upserted", slog.String("key", req.Key))

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: setting})
}

// AdminSettings godoc
// @Summary List all settings
// @Tags admin-settings
// @Produce json
// @Success 200 {object} response.Response{data=[]models.SiteSetting} "Settings"
// @Security ApiKeyAuth
// @Router /api/admin/settings [get]
func (r *Routers) AdminSettings(c echo.Context) error {
	const op = "http.routers.AdminSettings"

	settings, err := r.SettingsService.ListSettings(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list settings", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: settings})
}

// DeleteSetting godoc
// @Summary Delete setting
// @Tags admin-settings
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} response.Response "Deleted"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Security ApiKeyAuth
// @Router /api/admin/settings/{key} [delete]
func (r *Routers) DeleteSetting(c echo.Context) error {
	const op = "http.routers.DeleteSetting"

	key := c.Param("key")
	if key == "" {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := r.SettingsService.DeleteSetting(c.Request().Context(), key); err != nil {
		r.log.Error("failed to delete setting", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "setting deleted"})
}
