package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"nordlys_studio/internal/lib/logger/sl"
	bookingservice "nordlys_studio/internal/services/booking_service"
	subscriberservice "nordlys_studio/internal/services/subscriber_service"
	"nordlys_studio/internal/transport/http/dto"
	"nordlys_studio/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// PublicProjects godoc
// @Summary List published projects
// @Description Returns published portfolio projects, optionally filtered by category.
// @Tags public
// @Produce json
// @Param category query string false "Project category" Enums(wedding-photo, wedding-video)
// @Success 200 {object} response.Response{data=[]models.Project} "Projects"
// @Failure 500 {object} response.ErrorResponse "Internal error"
// @Router /api/projects [get]
func (r *Routers) PublicProjects(c echo.Context) error {
	const op = "http.routers.PublicProjects"

	projects, err := r.ProjectService.ListPublishedProjects(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		r.log.Error("failed to list projects", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: projects})
}

// PublicProject godoc
// @Summary Get published project
// @Description Returns a single published project by slug. Unpublished projects are indistinguishable from missing ones.
// @Tags public
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} response.Response{data=models.Project} "Project"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Router /api/projects/{slug} [get]
func (r *Routers) PublicProject(c echo.Context) error {
	const op = "http.routers.PublicProject"

	project, err := r.ProjectService.GetPublishedProject(c.Request().Context(), c.Param("slug"))
	if err != nil {
		r.log.Warn("failed to get project", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: project})
}

// PublicProjectMedia godoc
// @Summary List media of a published project
// @Tags public
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} response.Response{data=[]models.Media} "Media"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Router /api/projects/{slug}/media [get]
func (r *Routers) PublicProjectMedia(c echo.Context) error {
	const op = "http.routers.PublicProjectMedia"

	media, err := r.ProjectService.GetPublishedProjectMedia(c.Request().Context(), c.Param("slug"))
	if err != nil {
		r.log.Warn("failed to get project media", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: media})
}

// PublicReviews godoc
// @Summary List published reviews
// @Description Returns published reviews. With featured=true only the featured ones, capped at three.
// @Tags public
// @Produce json
// @Param featured query boolean false "Only featured reviews"
// @Success 200 {object} response.Response{data=[]models.Review} "Reviews"
// @Router /api/reviews [get]
func (r *Routers) PublicReviews(c echo.Context) error {
	const op = "http.routers.PublicReviews"

	featured := c.QueryParam("featured") == "true"

	reviews, err := r.ReviewService.ListPublishedReviews(c.Request().Context(), featured)
	if err != nil {
		r.log.Error("failed to list reviews", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: reviews})
}

// PublicHeroSlides godoc
// @Summary List active hero slides
// @Tags public
// @Produce json
// @Success 200 {object} response.Response{data=[]models.HeroSlide} "Slides ordered by sort_order"
// @Router /api/hero-slides [get]
func (r *Routers) PublicHeroSlides(c echo.Context) error {
	const op = "http.routers.PublicHeroSlides"

	slides, err := r.SettingsService.ActiveHeroSlides(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list hero slides", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: slides})
}

// PublicBlogPosts godoc
// @Summary List published blog posts
// @Tags public
// @Produce json
// @Param page query integer false "Page number, 1-based"
// @Param per_page query integer false "Page size"
// @Success 200 {object} response.Response{data=dto.BlogPostListResponse} "Paginated posts"
// @Router /api/blog [get]
func (r *Routers) PublicBlogPosts(c echo.Context) error {
	const op = "http.routers.PublicBlogPosts"

	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))

	posts, err := r.BlogService.ListPublishedPosts(c.Request().Context(), page, perPage)
	if err != nil {
		r.log.Error("failed to list blog posts", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: posts})
}

// PublicBlogPost godoc
// @Summary Get published blog post
// @Tags public
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} response.Response{data=models.BlogPost} "Post"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Router /api/blog/{slug} [get]
func (r *Routers) PublicBlogPost(c echo.Context) error {
	const op = "http.routers.PublicBlogPost"

	post, err := r.BlogService.GetPublishedPost(c.Request().Context(), c.Param("slug"))
	if err != nil {
		r.log.Warn("failed to get blog post", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: post})
}

// PublicPage godoc
// @Summary Get published page
// @Tags public
// @Produce json
// @Param slug path string true "Page slug"
// @Success 200 {object} response.Response{data=models.Page} "Page"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Router /api/pages/{slug} [get]
func (r *Routers) PublicPage(c echo.Context) error {
	const op = "http.routers.PublicPage"

	page, err := r.PageService.GetPublishedPage(c.Request().Context(), c.Param("slug"))
	if err != nil {
		r.log.Warn("failed to get page", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: page})
}

// PublicNavigation godoc
// @Summary Site navigation
// @Description Returns active navigation items, or the compiled-in default set when the CMS has none. The source field says which.
// @Tags public
// @Produce json
// @Success 200 {object} response.Response{data=dto.NavigationResponse} "Navigation"
// @Router /api/cms/navigation/public [get]
func (r *Routers) PublicNavigation(c echo.Context) error {
	const op = "http.routers.PublicNavigation"

	nav, err := r.CmsService.PublicNavigation(c.Request().Context())
	if err != nil {
		r.log.Error("failed to get navigation", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: nav})
}

// PublicLanding godoc
// @Summary Landing page sections
// @Description Returns active landing sections, or the compiled-in default layout when the CMS has none.
// @Tags public
// @Produce json
// @Success 200 {object} response.Response{data=dto.LandingResponse} "Landing sections"
// @Router /api/cms/landing/public [get]
func (r *Routers) PublicLanding(c echo.Context) error {
	const op = "http.routers.PublicLanding"

	landing, err := r.CmsService.PublicLanding(c.Request().Context())
	if err != nil {
		r.log.Error("failed to get landing", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: landing})
}

// PublicSettings godoc
// @Summary Public site settings
// @Description Returns all site settings flattened into a key/value map.
// @Tags public
// @Produce json
// @Success 200 {object} response.Response{data=map[string]string} "Settings"
// @Router /api/settings [get]
func (r *Routers) PublicSettings(c echo.Context) error {
	const op = "http.routers.PublicSettings"

	settings, err := r.SettingsService.PublicSettings(c.Request().Context())
	if err != nil {
		r.log.Error("failed to get settings", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: settings})
}

// SubmitContact godoc
// @Summary Submit contact inquiry
// @Description Accepts a contact form submission. New inquiries always start in the "new" status.
// @Tags public
// @Accept json
// @Produce json
// @Param request body dto.CreateContactRequest true "Inquiry"
// @Success 201 {object} response.Response{data=object{contact_id=string}} "Created"
// @Failure 400 {object} response.ErrorResponse "Invalid request format"
// @Router /api/contact [post]
func (r *Routers) SubmitContact(c echo.Context) error {
	const op = "http.routers.SubmitContact"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateContactRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid contact request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	id, err := r.ContactService.SubmitContact(c.Request().Context(), req)
	if err != nil {
		log.Error("failed to submit contact", sl.Err(err))
		return r.respondError(c, err)
	}

	log.Info("contact submitted", slog.String("contact_id", id.String()))

	return c.JSON(http.StatusCreated, response.Response{
		Status: "success",
		Data:   map[string]string{"contact_id": id.String()},
	})
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Tags public
// @Accept json
// @Produce json
// @Param request body dto.SubscribeRequest true "Subscription"
// @Success 201 {object} response.Response{data=object{subscriber_id=string}} "Subscribed"
// @Failure 400 {object} response.ErrorResponse "Invalid request format"
// @Failure 409 {object} response.ErrorResponse "Email already subscribed"
// @Router /api/subscribe [post]
func (r *Routers) Subscribe(c echo.Context) error {
	const op = "http.routers.Subscribe"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.SubscribeRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid subscribe request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	id, err := r.SubscriberService.Subscribe(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, subscriberservice.ErrAlreadySubscribed) {
			log.Warn("email already subscribed", slog.String("email", req.Email))
			return c.JSON(http.StatusConflict, response.ErrConflict)
		}
		log.Error("failed to subscribe", sl.Err(err))
		return r.respondError(c, err)
	}

	log.Info("subscriber added", slog.String("subscriber_id", id.String()))

	return c.JSON(http.StatusCreated, response.Response{
		Status: "success",
		Data:   map[string]string{"subscriber_id": id.String()},
	})
}

// PublicBlockedDates godoc
// @Summary List blocked booking dates
// @Tags public
// @Produce json
// @Success 200 {object} response.Response{data=[]models.BlockedDate} "Blocked dates"
// @Router /api/bookings/blocked-dates [get]
func (r *Routers) PublicBlockedDates(c echo.Context) error {
	const op = "http.routers.PublicBlockedDates"

	dates, err := r.BookingService.BlockedDates(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list blocked dates", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: dates})
}

// RequestBooking godoc
// @Summary Request a booking
// @Description Accepts a booking request. Dates blocked by the studio are rejected with a conflict.
// @Tags public
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking request"
// @Success 201 {object} response.Response{data=object{booking_id=string}} "Created"
// @Failure 400 {object} response.ErrorResponse "Invalid request format"
// @Failure 409 {object} response.ErrorResponse "Date is blocked"
// @Router /api/bookings [post]
func (r *Routers) RequestBooking(c echo.Context) error {
	const op = "http.routers.RequestBooking"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateBookingRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid booking request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	id, err := r.BookingService.RequestBooking(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, bookingservice.ErrDateBlocked) {
			log.Warn("booking date is blocked")
			return c.JSON(http.StatusConflict, response.ErrorResponseWithDetails("date_blocked", "Requested date is not available"))
		}
		log.Error("failed to request booking", sl.Err(err))
		return r.respondError(c, err)
	}

	log.Info("booking requested", slog.String("booking_id", id.String()))

	return c.JSON(http.StatusCreated, response.Response{
		Status: "success",
		Data:   map[string]string{"booking_id": id.String()},
	})
}

// AccessGallery godoc
// @Summary Unlock a client gallery
// @Description Checks the gallery password and returns the gallery with its media. Expired galleries and wrong passwords are both denied.
// @Tags public
// @Accept json
// @Produce json
// @Param slug path string true "Gallery slug"
// @Param request body dto.GalleryAccessRequest true "Gallery password"
// @Success 200 {object} response.Response{data=dto.GalleryAccessResponse} "Gallery contents"
// @Failure 403 {object} response.ErrorResponse "Wrong password or expired"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Router /api/galleries/{slug}/access [post]
func (r *Routers) AccessGallery(c echo.Context) error {
	const op = "http.routers.AccessGallery"

	log := r.log.With(
		slog.String("op", op),
		slog.String("slug", c.Param("slug")),
	)

	var req dto.GalleryAccessRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	gallery, err := r.GalleryService.AccessGallery(c.Request().Context(), c.Param("slug"), req.Password)
	if err != nil {
		log.Warn("gallery access denied", sl.Err(err))
		return r.respondError(c, err)
	}

	log.Info("gallery unlocked")

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: gallery})
}

// PublicGalleryMedia godoc
// @Summary List media of a client gallery
// @Description Returns the media of a non-expired gallery. Expiry is re-checked on every call.
// @Tags public
// @Produce json
// @Param slug path string true "Gallery slug"
// @Success 200 {object} response.Response{data=[]models.Media} "Media"
// @Failure 403 {object} response.ErrorResponse "Gallery expired"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Router /api/galleries/{slug}/media [get]
func (r *Routers) PublicGalleryMedia(c echo.Context) error {
	const op = "http.routers.PublicGalleryMedia"

	media, err := r.GalleryService.GalleryMedia(c.Request().Context(), c.Param("slug"))
	if err != nil {
		r.log.Warn("failed to get gallery media", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: media})
}
