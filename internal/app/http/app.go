package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	appmw "nordlys_studio/internal/middleware"
	httprouters "nordlys_studio/internal/transport/http"

	"github.com/arl/statsviz"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type Server struct {
	m       *http.ServeMux
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	host    string
	port    string
	token   string
}

func New(log *slog.Logger, sessionSecret, tokenSecret, host, port string, routers *httprouters.Routers) *Server {
	e := echo.New()
	e.HideBanner = true

	validate := validator.New()
	e.Validator = &CustomValidator{validator: validate}

	e.Use(session.Middleware(sessions.NewCookieStore([]byte(sessionSecret))))

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(appmw.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
			)

			return nil
		},
	}))

	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		log.Info("statsviz start with error", slog.Any("error:", err.Error()))
	}

	return &Server{
		m:       mux,
		log:     log,
		e:       e,
		routers: routers,
		host:    host,
		port:    port,
		token:   tokenSecret,
	}
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(fmt.Sprintf(":%s", s.port)); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", op, "http server")

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

// adminOnlyMiddleware gates the mutation surface behind an authenticated
// admin session.
func (s *Server) adminOnlyMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := session.Get("session", c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "session required"})
		}

		userID, ok := sess.Values["user_id"].(string)
		if !ok || userID == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
		}

		parsedUUID, err := uuid.Parse(userID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid user ID format"})
		}

		isAdmin, err := s.routers.UserService.IsAdmin(c.Request().Context(), parsedUUID)
		if err != nil || !isAdmin {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "admin access required"})
		}

		return next(c)
	}
}

func (s *Server) BuildRouters() {
	api := s.e.Group("/api")
	{
		// Public read surface. Only published/active rows come out of these.
		api.GET("/projects", s.routers.PublicProjects)
		api.GET("/projects/:slug", s.routers.PublicProject)
		api.GET("/projects/:slug/media", s.routers.PublicProjectMedia)
		api.GET("/reviews", s.routers.PublicReviews)
		api.GET("/hero-slides", s.routers.PublicHeroSlides)
		api.GET("/blog", s.routers.PublicBlogPosts)
		api.GET("/blog/:slug", s.routers.PublicBlogPost)
		api.GET("/pages/:slug", s.routers.PublicPage)
		api.GET("/cms/navigation/public", s.routers.PublicNavigation)
		api.GET("/cms/landing/public", s.routers.PublicLanding)
		api.GET("/settings", s.routers.PublicSettings)

		api.POST("/contact", s.routers.SubmitContact)
		api.POST("/subscribe", s.routers.Subscribe)
		api.GET("/bookings/blocked-dates", s.routers.PublicBlockedDates)
		api.POST("/bookings", s.routers.RequestBooking)
		api.POST("/galleries/:slug/access", s.routers.AccessGallery)
		api.GET("/galleries/:slug/media", s.routers.PublicGalleryMedia)

		admin := api.Group("/admin")
		{
			admin.POST("/login", s.routers.Login)
			admin.POST("/refresh", s.routers.Refresh)
			admin.POST("/logout", s.routers.Logout)

			userGroup := admin.Group("/users")
			userGroup.Use(echojwt.WithConfig(echojwt.Config{
				SigningKey: []byte(s.token),
			}))
			{
				userGroup.GET("/:user_id/is-admin", s.routers.IsAdminPermission)
			}

			protected := admin.Group("", s.adminOnlyMiddleware)
			{
				protected.GET("/auth/callback", s.routers.AuthCallback)
				protected.POST("/register", s.routers.Register)
				protected.GET("/stats", s.routers.AdminStats)

				protected.POST("/projects", s.routers.CreateProject)
				protected.GET("/projects", s.routers.AdminProjects)
				protected.GET("/projects/:id", s.routers.AdminProject)
				protected.PATCH("/projects/:id", s.routers.UpdateProject)
				protected.DELETE("/projects/:id", s.routers.DeleteProject)

				protected.POST("/media", s.routers.UploadMedia)
				protected.GET("/media", s.routers.AdminMedia)
				protected.PATCH("/media/:id", s.routers.UpdateMedia)
				protected.DELETE("/media/:id", s.routers.DeleteMedia)

				protected.POST("/pages", s.routers.CreatePage)
				protected.GET("/pages", s.routers.AdminPages)
				protected.PATCH("/pages/:id", s.routers.UpdatePage)
				protected.DELETE("/pages/:id", s.routers.DeletePage)

				protected.POST("/reviews", s.routers.CreateReview)
				protected.GET("/reviews", s.routers.AdminReviews)
				protected.PATCH("/reviews/:id", s.routers.UpdateReview)
				protected.DELETE("/reviews/:id", s.routers.DeleteReview)

				protected.POST("/blog", s.routers.CreateBlogPost)
				protected.GET("/blog", s.routers.AdminBlogPosts)
				protected.PATCH("/blog/:id", s.routers.UpdateBlogPost)
				protected.DELETE("/blog/:id", s.routers.DeleteBlogPost)

				protected.POST("/hero-slides", s.routers.CreateHeroSlide)
				protected.GET("/hero-slides", s.routers.AdminHeroSlides)
				protected.PATCH("/hero-slides/:id", s.routers.UpdateHeroSlide)
				protected.DELETE("/hero-slides/:id", s.routers.DeleteHeroSlide)

				protected.PUT("/settings", s.routers.UpsertSetting)
				protected.GET("/settings", s.routers.AdminSettings)
				protected.DELETE("/settings/:key", s.routers.DeleteSetting)

				protected.GET("/contacts", s.routers.AdminContacts)
				protected.PATCH("/contacts/:id/status", s.routers.UpdateContactStatus)
				protected.DELETE("/contacts/:id", s.routers.DeleteContact)

				protected.GET("/subscribers", s.routers.AdminSubscribers)
				protected.GET("/subscribers/export", s.routers.ExportSubscribers)
				protected.PATCH("/subscribers/:id/status", s.routers.UpdateSubscriberStatus)
				protected.DELETE("/subscribers/:id", s.routers.DeleteSubscriber)

				protected.GET("/bookings", s.routers.AdminBookings)
				protected.PATCH("/bookings/:id", s.routers.UpdateBooking)
				protected.PATCH("/bookings/:id/status", s.routers.UpdateBookingStatus)
				protected.DELETE("/bookings/:id", s.routers.DeleteBooking)
				protected.POST("/blocked-dates", s.routers.BlockDate)
				protected.DELETE("/blocked-dates/:id", s.routers.UnblockDate)

				protected.POST("/galleries", s.routers.CreateGallery)
				protected.GET("/galleries", s.routers.AdminGalleries)
				protected.PATCH("/galleries/:id", s.routers.UpdateGallery)
				protected.DELETE("/galleries/:id", s.routers.DeleteGallery)

				protected.POST("/cms/navigation", s.routers.CreateNavigationItem)
				protected.GET("/cms/navigation", s.routers.AdminNavigationItems)
				protected.PATCH("/cms/navigation/:id", s.routers.UpdateNavigationItem)
				protected.DELETE("/cms/navigation/:id", s.routers.DeleteNavigationItem)
				protected.POST("/cms/landing", s.routers.CreateLandingSection)
				protected.GET("/cms/landing", s.routers.AdminLandingSections)
				protected.PATCH("/cms/landing/:id", s.routers.UpdateLandingSection)
				protected.DELETE("/cms/landing/:id", s.routers.DeleteLandingSection)
			}
		}

		debug := s.e.Group("/debug")
		{
			debug.GET("/statsviz/", echo.WrapHandler(s.m))
			debug.GET("/statsviz/*", echo.WrapHandler(s.m))
		}

		s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

		swagger := s.e.Group("/swag")
		{
			swagger.GET("/swagger/*", echoSwagger.WrapHandler)
		}
	}
}
