package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/handler/api"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth         *api.AuthHandler
	Reservation  *api.ReservationHandler
	Client       *api.ClientHandler
	User         *api.UserHandler
	GiftCard     *api.GiftCardHandler
	Organization *api.OrganizationHandler
	Accounting   *api.AccountingHandler
	Marketing    *api.MarketingHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
	limiter *middleware.RateLimiter,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limited := []gin.HandlerFunc{limiter.Limit()}
	staff := authMiddleware.RequireRoleAtLeast(user.RoleStaff)
	admin := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: limited},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// public
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/gift-cards/verify", Handler: h.GiftCard.Verify, Mw: limited},
			{Method: http.MethodGet, Path: "/newsletter/subscribe", Handler: h.Marketing.Subscribe, Mw: limited},
		})

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
			})
		}

		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(authMiddleware.RequireAuth(), staff)
		{
			addRoutes(adminGroup, []route{
				{Method: http.MethodGet, Path: "/reservations", Handler: h.Reservation.List},
				{Method: http.MethodGet, Path: "/reservations/export", Handler: h.Reservation.ExportCSV},
				{Method: http.MethodGet, Path: "/reservations/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPost, Path: "/reservations/:id/validate", Handler: h.Reservation.Validate},
				{Method: http.MethodGet, Path: "/reservations/:id/validation-context", Handler: h.Reservation.ValidationContext},
				{Method: http.MethodPost, Path: "/reservations/:id/correct", Handler: h.Reservation.CorrectPayment, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodGet, Path: "/reservations/:id/invoice", Handler: h.Reservation.Invoice},

				{Method: http.MethodGet, Path: "/clients", Handler: h.Client.List},
				{Method: http.MethodPost, Path: "/clients", Handler: h.Client.Create},
				{Method: http.MethodGet, Path: "/clients/export", Handler: h.Client.ExportCSV},
				{Method: http.MethodGet, Path: "/client-referral-status", Handler: h.Client.ReferralStatus},

				{Method: http.MethodGet, Path: "/users", Handler: h.User.List, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodPatch, Path: "/users/:id", Handler: h.User.Update, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodDelete, Path: "/users/:id", Handler: h.User.Delete, Mw: []gin.HandlerFunc{admin}},

				{Method: http.MethodGet, Path: "/gift-cards", Handler: h.GiftCard.List, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodPost, Path: "/gift-cards", Handler: h.GiftCard.Create, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodGet, Path: "/gift-cards/:id/qr", Handler: h.GiftCard.QRCode, Mw: []gin.HandlerFunc{admin}},

				{Method: http.MethodGet, Path: "/accounting/summary", Handler: h.Accounting.Summary, Mw: []gin.HandlerFunc{admin}},

				{Method: http.MethodGet, Path: "/email-templates", Handler: h.Marketing.ListTemplates},
				{Method: http.MethodPost, Path: "/email-templates", Handler: h.Marketing.CreateTemplate},
				{Method: http.MethodPost, Path: "/emails/send", Handler: h.Marketing.SendEmails},
				{Method: http.MethodGet, Path: "/social-media", Handler: h.Marketing.ListPosts},
				{Method: http.MethodPost, Path: "/social-media", Handler: h.Marketing.CreatePost},
				{Method: http.MethodPost, Path: "/social-media/publish", Handler: h.Marketing.PublishPost},
				{Method: http.MethodPut, Path: "/social-media/:id", Handler: h.Marketing.UpdatePost},
				{Method: http.MethodDelete, Path: "/social-media/:id", Handler: h.Marketing.DeletePost},
			})
		}

		superAdmin := apiGroup.Group("/super-admin")
		superAdmin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleSuperAdmin))
		{
			addRoutes(superAdmin, []route{
				{Method: http.MethodGet, Path: "/organizations", Handler: h.Organization.List},
				{Method: http.MethodPost, Path: "/organizations", Handler: h.Organization.Create},
				{Method: http.MethodGet, Path: "/organizations/:id/settings", Handler: h.Organization.GetSettings},
				{Method: http.MethodPut, Path: "/organizations/:id/settings", Handler: h.Organization.UpdateSettings},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
