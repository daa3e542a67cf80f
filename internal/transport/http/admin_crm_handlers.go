package http

import (
	"errors"
	"log/slog"
	"net/http"

	"nordlys_studio/internal/lib/logger/sl"
	bookingservice "nordlys_studio/internal/services/booking_service"
	contactservice "nordlys_studio/internal/services/contact_service"
	galleryservice "nordlys_studio/internal/services/gallery_service"
	subscriberservice "nordlys_studio/internal/services/subscriber_service"
	"nordlys_studio/internal/transport/http/dto"
	"nordlys_studio/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// AdminContacts godoc
// @Summary List contact inquiries
// @Tags admin-contacts
// @Produce json
// @Param status query string false "Status filter" Enums(new, replied, archived)
// @Success 200 {object} response.Response{data=[]models.Contact} "Contacts"
// @Failure 400 {object} response.ErrorResponse "Unknown status"
// @Security ApiKeyAuth
// @Router /api/admin/contacts [get]
func (r *Routers) AdminContacts(c echo.Context) error {
	const op = "http.routers.AdminContacts"

	contacts, err := r.ContactService.ListContacts(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		if errors.Is(err, contactservice.ErrInvalidStatus) {
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_status", "Unknown contact status"))
		}
		r.log.Error("failed to list contacts", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: contacts})
}

// UpdateContactStatus godoc
// @Summary Update contact status
// @Tags admin-contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact UUID" format(uuid)
// @Param request body dto.UpdateContactStatusRequest true "New status"
// @Success 200 {object} response.Response "Updated"
// @Failure 400 {object} response.ErrorResponse "Invalid request or status"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Security ApiKeyAuth
// @Router /api/admin/contacts/{id}/status [patch]
func (r *Routers) UpdateContactStatus(c echo.Context) error {
	const op = "http.routers.UpdateContactStatus"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	var req dto.UpdateContactStatusRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := r.ContactService.UpdateStatus(c.Request().Context(), id, req.Status); err != nil {
		if errors.Is(err, contactservice.ErrInvalidStatus) {
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_status", "Unknown contact status"))
		}
		log.Error("failed to update contact status", sl.Err(err))
		return r.respondError(c, err)
	}

	log.Info("contact status updated", slog.String("contact_id", id.String()), slog.String("status", req.Status))

	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "contact status updated"})
}

// DeleteContact godoc
// @Summary Delete contact inquiry
// @Tags admin-contacts
// @Produce json
// @Param id path string true "Contact UUID" format(uuid)
// @Success 200 {object} response.Response "Deleted"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Security ApiKeyAuth
// @Router /api/admin/contacts/{id} [delete]
func (r *Routers) DeleteContact(c echo.Context) error {
	const op = "http.routers.DeleteContact"

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := r.ContactService.DeleteContact(c.Request().Context(), id); err != nil {
		r.log.Error("failed to delete contact", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "contact deleted"})
}

// AdminSubscribers godoc
// @Summary List subscribers
// @Tags admin-subscribers
// @Produce json
// @Param status query string false "Status filter" Enums(active, unsubscribed)
// @Success 200 {object} response.Response{data=[]models.Subscriber} "Subscribers"
// @Failure 400 {object} response.ErrorResponse "Unknown status"
// @Security ApiKeyAuth
// @Router /api/admin/subscribers [get]
func (r *Routers) AdminSubscribers(c echo.Context) error {
	const op = "http.routers.AdminSubscribers"

	subscribers, err := r.SubscriberService.ListSubscribers(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		if errors.Is(err, subscriberservice.ErrInvalidStatus) {
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_status", "Unknown subscriber status"))
		}
		r.log.Error("failed to list subscribers", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: subscribers})
}

// ExportSubscribers godoc
// @Summary Export subscribers as CSV
// @Description Streams the subscriber list as a CSV attachment. An empty result set answers 204 with no body.
// @Tags admin-subscribers
// @Produce text/csv
// @Param status query string false "Status filter" Enums(active, unsubscribed)
// @Success 200 {string} string "CSV file"
// @Success 204 "No subscribers"
// @Failure 400 {object} response.ErrorResponse "Unknown status"
// @Security ApiKeyAuth
// @Router /api/admin/subscribers/export [get]
func (r *Routers) ExportSubscribers(c echo.Context) error {
	const op = "http.routers.ExportSubscribers"

	log := r.log.With(
		slog.String("op", op),
	)

	data, err := r.SubscriberService.ExportCSV(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		if errors.Is(err, subscriberservice.ErrInvalidStatus) {
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_status", "Unknown subscriber status"))
		}
		log.Error("failed to export subscribers", sl.Err(err))
		return r.respondError(c, err)
	}

	if data == nil {
		return c.NoContent(http.StatusNoContent)
	}

	log.Info("subscribers exported", slog.Int("bytes", len(data)))

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="subscribers.csv"`)
	return c.Blob(http.StatusOK, "text/csv", data)
}

// UpdateSubscriberStatus godoc
// @Summary Update subscriber status
// @Tags admin-subscribers
// @Accept json
// @Produce json
// @Param id path string true "Subscriber UUID" format(uuid)
// @Param request body dto.UpdateSubscriberStatusRequest true "New status"
// @Success 200 {object} response.Response "Updated"
// @Failure 400 {object} response.ErrorResponse "Invalid request or status"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Security ApiKeyAuth
// @Router /api/admin/subscribers/{id}/status [patch]
func (r *Routers) UpdateSubscriberStatus(c echo.Context) error {
	const op = "http.routers.UpdateSubscriberStatus"

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	var req dto.UpdateSubscriberStatusRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := r.SubscriberService.UpdateStatus(c.Request().Context(), id, req.Status); err != nil {
		if errors.Is(err, subscriberservice.ErrInvalidStatus) {
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_status", "Unknown subscriber status"))
		}
		r.log.Error("failed to update subscriber status", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "subscriber status updated"})
}

// DeleteSubscriber godoc
// @Summary Delete subscriber
// @Tags admin-subscribers
// @Produce json
// @Param id path string true "Subscriber UUID" format(uuid)
// @Success 200 {object} response.Response "Deleted"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Security ApiKeyAuth
// @Router /api/admin/subscribers/{id} [delete]
func (r *Routers) DeleteSubscriber(c echo.Context) error {
	const op = "http.routers.DeleteSubscriber"

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := r.SubscriberService.DeleteSubscriber(c.Request().Context(), id); err != nil {
		r.log.Error("failed to delete subscriber", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "subscriber deleted"})
}

// AdminBookings godoc
// @Summary List bookings
// @Tags admin-bookings
// @Produce json
// @Param status query string false "Status filter" Enums(pending, confirmed, cancelled)
// @Success 200 {object} response.Response{data=[]models.Booking} "Bookings ordered by date"
// @Failure 400 {object} response.ErrorResponse "Unknown status"
// @Security ApiKeyAuth
// @Router /api/admin/bookings [get]
func (r *Routers) AdminBookings(c echo.Context) error {
	const op = "http.routers.AdminBookings"

	bookings, err := r.BookingService.ListBookings(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		if errors.Is(err, bookingservice.ErrInvalidStatus) {
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_status", "Unknown booking status"))
		}
		r.log.Error("failed to list bookings", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: bookings})
}

// UpdateBooking godoc
// @Summary Update booking
// @Tags admin-bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking UUID" format(uuid)
// @Param request body dto.UpdateBookingRequest true "Fields to update"
// @Success 200 {object} response.Response{data=models.Booking} "Updated booking"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Security ApiKeyAuth
// @Router /api/admin/bookings/{id} [patch]
func (r *Routers) UpdateBooking(c echo.Context) error {
	const op = "http.routers.UpdateBooking"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	var req dto.UpdateBookingRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	booking, err := r.BookingService.UpdateBooking(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, bookingservice.ErrInvalidStatus) {
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_status", "Unknown booking status"))
		}
		log.Error("failed to update booking", sl.Err(err))
		return r.respondError(c, err)
	}

	log.Info("booking updated", slog.String("booking_id", id.String()))

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: booking})
}

// UpdateBookingStatus godoc
// @Summary Update booking status
// @Tags admin-bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking UUID" format(uuid)
// @Param request body dto.UpdateBookingStatusRequest true "New status"
// @Success 200 {object} response.Response "Updated"
// @Failure 400 {object} response.ErrorResponse "Invalid request or status"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Security ApiKeyAuth
// @Router /api/admin/bookings/{id}/status [patch]
func (r *Routers) UpdateBookingStatus(c echo.Context) error {
	const op = "http.routers.UpdateBookingStatus"

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	var req dto.UpdateBookingStatusRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := r.BookingService.UpdateStatus(c.Request().Context(), id, req.Status); err != nil {
		if errors.Is(err, bookingservice.ErrInvalidStatus) {
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_status", "Unknown booking status"))
		}
		r.log.Error("failed to update booking status", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "booking status updated"})
}

// DeleteBooking godoc
// @Summary Delete booking
// @Tags admin-bookings
// @Produce json
// @Param id path string true "Booking UUID" format(uuid)
// @Success 200 {object} response.Response "Deleted"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Security ApiKeyAuth
// @Router /api/admin/bookings/{id} [delete]
func (r *Routers) DeleteBooking(c echo.Context) error {
	const op = "http.routers.DeleteBooking"

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := r.BookingService.DeleteBooking(c.Request().Context(), id); err != nil {
		r.log.Error("failed to delete booking", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "booking deleted"})
}

// BlockDate godoc
// @Summary Block a date
// @Description Marks a date as unavailable for booking requests.
// @Tags admin-bookings
// @Accept json
// @Produce json
// @Param request body dto.CreateBlockedDateRequest true "Date to block"
// @Success 201 {object} response.Response{data=object{blocked_id=string}} "Blocked"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Security ApiKeyAuth
// @Router /api/admin/blocked-dates [post]
func (r *Routers) BlockDate(c echo.Context) error {
	const op = "http.routers.BlockDate"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateBlockedDateRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	id, err := r.BookingService.BlockDate(c.Request().Context(), req)
	if err != nil {
		log.Error("failed to block date", sl.Err(err))
		return r.respondError(c, err)
	}

	log.Info("date blocked", slog.String("blocked_id", id.String()))

	return c.JSON(http.StatusCreated, response.Response{
		Status: "success",
		Data:   map[string]string{"blocked_id": id.String()},
	})
}

// UnblockDate godoc
// @Summary Unblock a date
// @Tags admin-bookings
// @Produce json
// @Param id path string true "Blocked date UUID" format(uuid)
// @Success 200 {object} response.Response "Unblocked"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Security ApiKeyAuth
// @Router /api/admin/blocked-dates/{id} [delete]
func (r *Routers) UnblockDate(c echo.Context) error {
	const op = "http.routers.UnblockDate"

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := r.BookingService.UnblockDate(c.Request().Context(), id); err != nil {
		r.log.Error("failed to unblock date", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "date unblocked"})
}

// CreateGallery godoc
// @Summary Create client gallery
// @Description Creates a password-protected gallery for a project. The password is stored only as a bcrypt hash.
// @Tags admin-galleries
// @Accept json
// @Produce json
// @Param request body dto.CreateGalleryRequest true "Gallery data"
// @Success 201 {object} response.Response{data=models.ClientGallery} "Created gallery"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Failure 409 {object} response.ErrorResponse "Slug already taken"
// @Security ApiKeyAuth
// @Router /api/admin/galleries [post]
func (r *Routers) CreateGallery(c echo.Context) error {
	const op = "http.routers.CreateGallery"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateGalleryRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid gallery request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	gallery, err := r.GalleryService.CreateGallery(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, galleryservice.ErrSlugTaken) {
			return c.JSON(http.StatusConflict, response.ErrConflict)
		}
		log.Error("failed to create gallery", sl.Err(err))
		return r.respondError(c, err)
	}

	log.Info("gallery created", slog.String("gallery_id", gallery.ID.String()))

	return c.JSON(http.StatusCreated, response.Response{Status: "success", Data: gallery})
}

// AdminGalleries godoc
// @Summary List client galleries
// @Tags admin-galleries
// @Produce json
// @Success 200 {object} response.Response{data=[]models.ClientGallery} "Galleries"
// @Security ApiKeyAuth
// @Router /api/admin/galleries [get]
func (r *Routers) AdminGalleries(c echo.Context) error {
	const op = "http.routers.AdminGalleries"

	galleries, err := r.GalleryService.ListGalleries(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list galleries", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: galleries})
}

// UpdateGallery godoc
// @Summary Update client gallery
// @Description Applies the provided fields. A new password replaces the stored hash.
// @Tags admin-galleries
// @Accept json
// @Produce json
// @Param id path string true "Gallery UUID" format(uuid)
// @Param request body dto.UpdateGalleryRequest true "Fields to update"
// @Success 200 {object} response.Response{data=models.ClientGallery} "Updated gallery"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Security ApiKeyAuth
// @Router /api/admin/galleries/{id} [patch]
func (r *Routers) UpdateGallery(c echo.Context) error {
	const op = "http.routers.UpdateGallery"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	var req dto.UpdateGalleryRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	gallery, err := r.GalleryService.UpdateGallery(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, galleryservice.ErrSlugTaken) {
			return c.JSON(http.StatusConflict, response.ErrConflict)
		}
		log.Error("failed to update gallery", sl.Err(err))
		return r.respondError(c, err)
	}

	log.Info("gallery updated", slog.String("gallery_id", id.String()))

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: gallery})
}

// DeleteGallery godoc
// @Summary Delete client gallery
// @Tags admin-galleries
// @Produce json
// @Param id path string true "Gallery UUID" format(uuid)
// @Success 200 {object} response.Response "Deleted"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Security ApiKeyAuth
// @Router /api/admin/galleries/{id} [delete]
func (r *Routers) DeleteGallery(c echo.Context) error {
	const op = "http.routers.DeleteGallery"

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := r.GalleryService.DeleteGallery(c.Request().Context(), id); err != nil {
		r.log.Error("failed to delete gallery", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "gallery deleted"})
}

// AdminStats godoc
// @Summary Dashboard counters
// @Description Returns total projects and media, new contacts, pending bookings and active subscribers.
// @Tags admin-stats
// @Produce json
// @Success 200 {object} response.Response{data=models.DashboardStats} "Counters"
// @Security ApiKeyAuth
// @Router /api/admin/stats [get]
func (r *Routers) AdminStats(c echo.Context) error {
	const op = "http.routers.AdminStats"

	stats, err := r.StatsService.Dashboard(c.Request().Context())
	if err != nil {
		r.log.Error("failed to get dashboard stats", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: stats})
}
