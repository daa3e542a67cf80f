package http

import (
	"log/slog"
	"net/http"

	"nordlys_studio/internal/lib/logger/sl"
	"nordlys_studio/internal/transport/http/dto"
	"nordlys_studio/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// CreateNavigationItem godoc
// @Summary Create navigation item
// @Tags admin-cms
// @Accept json
// @Produce json
// @Param request body dto.CreateNavigationItemRequest true "Item data"
// @Success 201 {object} response.Response{data=object{item_id=string}} "Created"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Security ApiKeyAuth
// @Router /api/admin/cms/navigation [post]
func (r *Routers) CreateNavigationItem(c echo.Context) error {
	const op = "http.routers.CreateNavigationItem"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateNavigationItemRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid navigation item request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	id, err := r.CmsService.CreateNavigationItem(c.Request().Context(), req)
	if err != nil {
		log.Error("failed to create navigation item", sl.Err(err))
		return r.respondError(c, err)
	}

	log.Info("navigation item created", slog.String("item_id", id.String()))

	return c.JSON(http.StatusCreated, response.Response{
		Status: "success",
		Data:   map[string]string{"item_id": id.String()},
	})
}

// AdminNavigationItems godoc
// @Summary List navigation items
// @Description Returns all navigation items including inactive ones.
// @Tags admin-cms
// @Produce json
// @Success 200 {object} response.Response{data=[]models.NavigationItem} "Items"
// @Security ApiKeyAuth
// @Router /api/admin/cms/navigation [get]
func (r *Routers) AdminNavigationItems(c echo.Context) error {
	const op = "http.routers.AdminNavigationItems"

	items, err := r.CmsService.ListNavigationItems(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list navigation items", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: items})
}

// UpdateNavigationItem godoc
// @Summary Update navigation item
// @Tags admin-cms
// @Accept json
// @Produce json
// @Param id path string true "Item UUID" format(uuid)
// @Param request body dto.UpdateNavigationItemRequest true "Fields to update"
// @Success 200 {object} response.Response "Updated"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Security ApiKeyAuth
// @Router /api/admin/cms/navigation/{id} [patch]
func (r *Routers) UpdateNavigationItem(c echo.Context) error {
	const op = "http.routers.UpdateNavigationItem"

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	var req dto.UpdateNavigationItemRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := r.CmsService.UpdateNavigationItem(c.Request().Context(), id, req); err != nil {
		r.log.Error("failed to update navigation item", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "navigation item updated"})
}

// DeleteNavigationItem godoc
// @Summary Delete navigation item
// @Tags admin-cms
// @Produce json
// @Param id path string true "Item UUID" format(uuid)
// @Success 200 {object} response.Response "Deleted"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Security ApiKeyAuth
// @Router /api/admin/cms/navigation/{id} [delete]
func (r *Routers) DeleteNavigationItem(c echo.Context) error {
	const op = "http.routers.DeleteNavigationItem"

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := r.CmsService.DeleteNavigationItem(c.Request().Context(), id); err != nil {
		r.log.Error("failed to delete navigation item", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "navigation item deleted"})
}

// CreateLandingSection godoc
// @Summary Create landing section
// @Tags admin-cms
// @Accept json
// @Produce json
// @Param request body dto.CreateLandingSectionRequest true "Section data"
// @Success 201 {object} response.Response{data=object{section_id=string}} "Created"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Security ApiKeyAuth
// @Router /api/admin/cms/landing [post]
func (r *Routers) CreateLandingSection(c echo.Context) error {
	const op = "http.routers.CreateLandingSection"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateLandingSectionRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid landing section request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	id, err := r.CmsService.CreateLandingSection(c.Request().Context(), req)
	if err != nil {
		log.Error("failed to create landing section", sl.Err(err))
		return r.respondError(c, err)
	}

	log.Info("landing section created", slog.String("section_id", id.String()))

	return c.JSON(http.StatusCreated, response.Response{
		Status: "success",
		Data:   map[string]string{"section_id": id.String()},
	})
}

// AdminLandingSections godoc
// @Summary List landing sections
// @Description Returns all landing sections including inactive ones.
// @Tags admin-cms
// @Produce json
// @Success 200 {object} response.Response{data=[]models.LandingSection} "Sections"
// @Security ApiKeyAuth
// @Router /api/admin/cms/landing [get]
func (r *Routers) AdminLandingSections(c echo.Context) error {
	const op = "http.routers.AdminLandingSections"

	sections, err := r.CmsService.ListLandingSections(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list landing sections", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Data: sections})
}

// UpdateLandingSection godoc
// @Summary Update landing section
// @Tags admin-cms
// @Accept json
// @Produce json
// @Param id path string true "Section UUID" format(uuid)
// @Param request body dto.UpdateLandingSectionRequest true "Fields to update"
// @Success 200 {object} response.Response "Updated"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Security ApiKeyAuth
// @Router /api/admin/cms/landing/{id} [patch]
func (r *Routers) UpdateLandingSection(c echo.Context) error {
	const op = "http.routers.UpdateLandingSection"

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	var req dto.UpdateLandingSectionRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := r.CmsService.UpdateLandingSection(c.Request().Context(), id, req); err != nil {
		r.log.Error("failed to update landing section", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "landing section updated"})
}

// DeleteLandingSection godoc
// @Summary Delete landing section
// @Tags admin-cms
// @Produce json
// @Param id path string true "Section UUID" format(uuid)
// @Success 200 {object} response.Response "Deleted"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Security ApiKeyAuth
// @Router /api/admin/cms/landing/{id} [delete]
func (r *Routers) DeleteLandingSection(c echo.Context) error {
	const op = "http.routers.DeleteLandingSection"

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := r.CmsService.DeleteLandingSection(c.Request().Context(), id); err != nil {
		r.log.Error("failed to delete landing section", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "landing section deleted"})
}
