package http

import (
	"errors"
	"log/slog"
	"net/http"

	"nordlys_studio/internal/lib/logger/sl"
	"nordlys_studio/internal/lib/redirect"
	tokenservice "nordlys_studio/internal/services/token_service"
	userservice "nordlys_studio/internal/services/user_service"
	"nordlys_studio/internal/transport/http/dto"
	"nordlys_studio/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// Login godoc
// @Summary Admin login
// @Description Authenticates an admin by email and password, opens a session and returns a JWT pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} response.Response{data=map[string]string} "Token pair"
// @Failure 400 {object} response.ErrorResponse "Invalid request format"
// @Failure 401 {object} response.ErrorResponse "Authentication failed"
// @Router /api/admin/login [post]
func (r *Routers) Login(c echo.Context) error {
	const op = "http.routers.Login"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid login request", slog.String("email", req.Email))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	user, err := r.UserService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, userservice.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
		}
		log.Error("login failed", sl.Err(err))
		return r.respondError(c, err)
	}

	pair, err := r.TokenService.GenerateTokens(c.Request().Context(), user)
	if err != nil {
		log.Error("failed to generate tokens", sl.Err(err))
		return r.respondError(c, err)
	}

	sess, err := session.Get("session", c)
	if err != nil {
		log.Error("failed to get session", sl.Err(err))
		return r.respondError(c, err)
	}
	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	sess.Values["user_id"] = user.ID.String()
	sess.Values["authenticated"] = true
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		log.Error("failed to save session", sl.Err(err))
		return r.respondError(c, err)
	}

	log.Info("admin logged in", slog.String("user_id", user.ID.String()))

	return c.JSON(http.StatusOK, response.Response{
		Status: "success",
		Data: map[string]string{
			"user_id":       pair.UserID.String(),
			"access_token":  pair.AccessToken,
			"refresh_token": pair.RefreshToken,
		},
	})
}

// Refresh godoc
// @Summary Rotate token pair
// @Description Exchanges a valid refresh token for a new access/refresh pair. The old refresh token is revoked.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} response.Response{data=map[string]string} "New token pair"
// @Failure 400 {object} response.ErrorResponse "Invalid request format"
// @Failure 401 {object} response.ErrorResponse "Invalid or revoked token"
// @Router /api/admin/refresh [post]
func (r *Routers) Refresh(c echo.Context) error {
	const op = "http.routers.Refresh"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.RefreshRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	pair, err := r.TokenService.RefreshTokens(c.Request().Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, tokenservice.ErrInvalidToken) || errors.Is(err, tokenservice.ErrInvalidTokenClaims) {
			log.Warn("refresh rejected", sl.Err(err))
			return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
		}
		log.Error("refresh failed", sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.Response{
		Status: "success",
		Data: map[string]string{
			"user_id":       pair.UserID.String(),
			"access_token":  pair.AccessToken,
			"refresh_token": pair.RefreshToken,
		},
	})
}

// Logout godoc
// @Summary Admin logout
// @Description Revokes all refresh tokens of the current admin and destroys the session.
// @Tags auth
// @Produce json
// @Success 200 {object} response.Response "Logged out"
// @Security ApiKeyAuth
// @Router /api/admin/logout [post]
func (r *Routers) Logout(c echo.Context) error {
	const op = "http.routers.Logout"

	log := r.log.With(
		slog.String("op", op),
	)

	sess, err := session.Get("session", c)
	if err == nil {
		if userID, ok := sess.Values["user_id"].(string); ok {
			if uid, parseErr := uuid.Parse(userID); parseErr == nil {
				if revokeErr := r.TokenService.RevokeAll(c.Request().Context(), uid); revokeErr != nil {
					log.Warn("failed to revoke tokens", sl.Err(revokeErr))
				}
			}
		}
		sess.Options.MaxAge = -1
		if saveErr := sess.Save(c.Request(), c.Response()); saveErr != nil {
			log.Warn("failed to clear session", sl.Err(saveErr))
		}
	}

	log.Info("admin logged out")

	return c.JSON(http.StatusOK, response.Response{
		Status:  "success",
		Message: "logged out",
	})
}

// AuthCallback godoc
// @Summary Post-login redirect
// @Description Redirects the authenticated admin to the sanitized "next" path. Off-site values fall back to /admin.
// @Tags auth
// @Param next query string false "Path to return to after login"
// @Success 302 "Redirect"
// @Security ApiKeyAuth
// @Router /api/admin/auth/callback [get]
func (r *Routers) AuthCallback(c echo.Context) error {
	next := redirect.SanitizeNext(c.QueryParam("next"))
	return c.Redirect(http.StatusFound, next)
}

// IsAdminPermission godoc
// @Summary Check admin status
// @Description Tells whether the given user has admin rights. Requires a bearer token.
// @Tags auth
// @Produce json
// @Param user_id path string true "User UUID" format(uuid)
// @Success 200 {object} map[string]bool "Check result"
// @Failure 400 {object} response.ErrorResponse "Invalid UUID"
// @Failure 500 {object} response.ErrorResponse "Internal error"
// @Security ApiKeyAuth
// @Router /api/admin/users/{user_id}/is-admin [get]
func (r *Routers) IsAdminPermission(c echo.Context) error {
	const op = "http.routers.IsAdminPermission"

	log := r.log.With(
		slog.String("op", op),
	)

	userID, err := parseUUIDParam(c, "user_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	isAdmin, err := r.UserService.IsAdmin(c.Request().Context(), userID)
	if err != nil {
		log.Error("failed to check admin status", sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"is_admin": isAdmin})
}

// Register godoc
// @Summary Register admin user
// @Description Creates a new admin account. Only reachable from an authenticated session.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterUserRequest true "Account data"
// @Success 201 {object} response.Response{data=object{user_id=string}} "Created"
// @Failure 400 {object} response.ErrorResponse "Invalid request format"
// @Failure 409 {object} response.ErrorResponse "User already exists"
// @Failure 500 {object} response.ErrorResponse "Internal error"
// @Security ApiKeyAuth
// @Router /api/admin/register [post]
func (r *Routers) Register(c echo.Context) error {
	const op = "http.routers.Register"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.RegisterUserRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid register request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	userID, err := r.UserService.RegisterUser(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, userservice.ErrUserExists) {
			log.Warn("user already exists", slog.String("email", req.Email))
			return c.JSON(http.StatusConflict, response.ErrConflict)
		}
		log.Error("registration failed", sl.Err(err))
		return r.respondError(c, err)
	}

	log.Info("user registered", slog.String("user_id", userID.String()))

	return c.JSON(http.StatusCreated, response.Response{
		Status: "success",
		Data:   map[string]string{"user_id": userID.String()},
	})
}
