package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	"github.com/BruksfildServices01/table-reservations/internal/config"
	"github.com/BruksfildServices01/table-reservations/internal/db"
	domainAuth "github.com/BruksfildServices01/table-reservations/internal/domain/auth"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/events"
	"github.com/BruksfildServices01/table-reservations/internal/handlers"
	infraRepo "github.com/BruksfildServices01/table-reservations/internal/infra/repository"
	"github.com/BruksfildServices01/table-reservations/internal/middleware"
	ucAuth "github.com/BruksfildServices01/table-reservations/internal/usecase/auth"
	ucReservation "github.com/BruksfildServices01/table-reservations/internal/usecase/reservation"
	ucSettings "github.com/BruksfildServices01/table-reservations/internal/usecase/settings"
)

// Deps are the process-wide collaborators the routes are built from.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Log    zerolog.Logger

	Audit  *audit.Dispatcher
	Events events.Publisher

	// Redis backs the shared rate limiter; nil falls back to a local one.
	Redis *redis.Client
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(d.DB)
	settingsRepo := infraRepo.NewSettingsGormRepository(d.DB)
	authRepo := infraRepo.NewAuthGormRepository(d.DB)

	auditLogger := audit.New(d.DB)
	tokens := ucAuth.NewTokens(cfg.JWTSecret, cfg.AccessTokenTTL)
	generator := domain.NewGenerator(cfg.Booking.InclusiveClosingBoundary)
	limiter := middleware.NewLimiter(cfg.RateLimit, d.Redis)

	publisher := d.Events
	if publisher == nil {
		publisher = events.Nop{}
	}

	hooks := ucReservation.Hooks{
		Audit:  d.Audit,
		Events: publisher,
		Log:    d.Log,
	}

	// ======================================================
	// USE CASES: RESERVATIONS
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		generator,
		hooks,
	).WithEmailDomainCheck(cfg.ValidateEmailDomain)

	updateReservationUC := ucReservation.NewUpdateReservation(
		reservationRepo,
		generator,
		hooks,
	)

	changeStatusUC := ucReservation.NewChangeStatus(
		reservationRepo,
		hooks,
	)

	deleteReservationUC := ucReservation.NewDeleteReservation(
		reservationRepo,
		hooks,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(
		ucAuth.NewRegister(authRepo, tokens, cfg.RefreshTokenTTL, d.Audit).
			WithDefaultTimezone(cfg.Booking.DefaultTimezone),
		ucAuth.NewLogin(authRepo, tokens, cfg.RefreshTokenTTL, d.Audit),
		ucAuth.NewRefresh(authRepo, tokens, cfg.RefreshTokenTTL),
		ucAuth.NewLogout(authRepo),
		d.Log,
	)

	meHandler := handlers.NewMeHandler(
		ucAuth.NewMe(authRepo),
		ucAuth.NewLogoutAll(authRepo),
		d.Log,
	)

	publicHandler := handlers.NewPublicHandler(
		ucReservation.NewGetPublicRestaurant(reservationRepo),
		ucReservation.NewGetAvailability(reservationRepo, generator),
		createReservationUC,
		d.Log,
	)

	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		updateReservationUC,
		changeStatusUC,
		deleteReservationUC,
		ucReservation.NewGetReservation(reservationRepo),
		ucReservation.NewListReservationsByDate(reservationRepo),
		ucReservation.NewListReservationsByMonth(reservationRepo),
		d.Log,
	)

	settingsHandler := handlers.NewSettingsHandler(handlers.SettingsUseCases{
		GetRestaurant:        ucSettings.NewGetRestaurant(settingsRepo),
		UpdateRestaurant:     ucSettings.NewUpdateRestaurant(settingsRepo, d.Audit),
		ListOperatingHours:   ucSettings.NewListOperatingHours(settingsRepo),
		UpdateOperatingHours: ucSettings.NewUpdateOperatingHours(settingsRepo, d.Audit),
		ListBlockedDates:     ucSettings.NewListBlockedDates(settingsRepo),
		AddBlockedDate:       ucSettings.NewAddBlockedDate(settingsRepo, d.Audit),
		RemoveBlockedDate:    ucSettings.NewRemoveBlockedDate(settingsRepo, d.Audit),
		GetSlotConfig:        ucSettings.NewGetSlotConfig(settingsRepo),
		UpdateSlotConfig:     ucSettings.NewUpdateSlotConfig(settingsRepo, d.Audit),
	}, d.Log)

	customerHandler := handlers.NewCustomerHandler(
		ucReservation.NewListCustomers(reservationRepo),
		d.Log,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger, d.Log)

	healthHandler := handlers.NewHealthHandler(
		handlers.PingFunc(func(ctx context.Context) error { return db.Ping(ctx, d.DB) }),
		d.Log,
	)

	// ======================================================
	// OPERATIONS
	// ======================================================
	r.GET("/health", healthHandler.Live)
	r.GET("/readyz", healthHandler.Ready)
	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public/:slug")
		{
			publicAPI.GET("", publicHandler.Restaurant)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST(
				"/reservations",
				middleware.RateLimit(cfg.RateLimit, limiter, "booking", d.Log),
				publicHandler.CreateReservation,
			)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		authAPI := api.Group("/auth")
		authAPI.Use(middleware.RateLimit(cfg.RateLimit, limiter, "auth", d.Log))
		{
			authAPI.POST("/register", authHandler.Register)
			authAPI.POST("/login", authHandler.Login)
			authAPI.POST("/refresh", authHandler.Refresh)
			authAPI.POST("/logout", authHandler.Logout)
		}

		// ------------------------------
		// STAFF
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(tokens))
		{
			secured.GET("", meHandler.GetMe)
			secured.POST("/logout-all", meHandler.LogoutAll)

			secured.GET("/reservations", reservationHandler.ListByDate)
			secured.GET("/reservations/month", reservationHandler.ListByMonth)
			secured.GET("/reservations/:id", reservationHandler.Get)
			secured.POST("/reservations", reservationHandler.Create)
			secured.PATCH("/reservations/:id", reservationHandler.Update)
			secured.PATCH("/reservations/:id/status", reservationHandler.ChangeStatus)
			secured.DELETE("/reservations/:id", reservationHandler.Delete)

			secured.GET("/customers", customerHandler.List)

			secured.GET("/restaurant", settingsHandler.GetRestaurant)
			secured.GET("/operating-hours", settingsHandler.GetOperatingHours)
			secured.GET("/blocked-dates", settingsHandler.ListBlockedDates)
			secured.GET("/slot-config", settingsHandler.GetSlotConfig)

			// settings changes and the audit trail are owner-only
			owner := secured.Group("")
			owner.Use(middleware.RequireRole(domainAuth.RoleOwner))
			{
				owner.PATCH("/restaurant", settingsHandler.UpdateRestaurant)
				owner.PUT("/operating-hours", settingsHandler.UpdateOperatingHours)
				owner.POST("/blocked-dates", settingsHandler.BlockDate)
				owner.DELETE("/blocked-dates/:id", settingsHandler.UnblockDate)
				owner.PATCH("/slot-config", settingsHandler.UpdateSlotConfig)
				owner.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
