package cmd

import (
	"log"
	"log/slog"

	"empiria-profile/config"
	"empiria-profile/internal/handlers"
	"empiria-profile/internal/services"
	"empiria-profile/internal/services/identity/auth0"
	"empiria-profile/monitoring"
	"empiria-profile/utils"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/plugins/migratecmd"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	pubnub "github.com/pubnub/go"
)

func Start() error {
	app := pocketbase.New()

	// Load configuration
	cfg := config.LoadConfig()

	// Initialize Redis
	redisClient := utils.NewRedisClient(cfg.RedisURL)
	defer redisClient.Close()

	// Initialize PubNub
	pnConfig := pubnub.NewConfig()
	pnConfig.PublishKey = cfg.PubNubPublishKey
	pnConfig.SubscribeKey = cfg.PubNubSubscribeKey
	pnConfig.SecretKey = cfg.PubNubSecretKey

	pn := pubnub.NewPubNub(pnConfig)

	// Identity provider client. Password resets are disabled when the
	// domain is not configured; everything else still works.
	identityClient, err := auth0.New(&auth0.Config{
		Domain:   cfg.Auth0Domain,
		ClientID: cfg.Auth0ClientID,
	})
	if err != nil {
		slog.Warn("auth0 client disabled", "error", err)
		identityClient = nil
	}

	monitor := monitoring.NewMonitor()

	// Initialize services
	ticketService := services.NewTicketService(app, monitor)
	orderService := services.NewOrderService(app, monitor)
	recommender := services.NewStoreRecommender(app)
	dashboardService := services.NewDashboardService(redisClient, ticketService, orderService, recommender, cfg, monitor)
	profileService := services.NewProfileService(app, identityClient, dashboardService, pn, cfg, monitor)
	searchIndex := services.NewSearchIndex(services.NewStoreEventSource(app, services.SampleEvents()))

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(app, dashboardService, cfg)
	ticketHandler := handlers.NewTicketHandler(app, ticketService, cfg)
	orderHandler := handlers.NewOrderHandler(app, orderService)
	profileHandler := handlers.NewProfileHandler(app, profileService)
	searchHandler := handlers.NewSearchHandler(searchIndex)
	supportHandler := handlers.NewSupportHandler(cfg)

	// Enable migrations
	migratecmd.MustRegister(app, app.RootCmd, migratecmd.Config{
		Automigrate: true,
	})

	app.OnTerminate().BindFunc(func(e *core.TerminateEvent) error {
		log.Println("Shutdown signal received, cleaning up...")
		return e.Next()
	})

	app.OnServe().BindFunc(func(e *core.ServeEvent) error {
		// Everything under /api/v1 is the attendee surface: it requires a
		// signed-in user and bounces organizer/admin accounts to their own
		// consoles.
		g := e.Router.Group("/api/v1")
		g.Bind(apis.RequireAuth())
		g.BindFunc(handlers.RequireAttendee(cfg))

		// Dashboard endpoints
		g.GET("/dashboard", dashboardHandler.GetDashboard)

		// Ticket endpoints
		g.GET("/tickets", ticketHandler.ListTickets)
		g.GET("/tickets/history", ticketHandler.TicketHistory)
		g.GET("/tickets/{ticketId}", ticketHandler.GetTicket)

		// Order endpoints
		g.GET("/orders", orderHandler.ListOrders)

		// Profile endpoints
		g.GET("/profile", profileHandler.GetProfile)
		g.PATCH("/profile", profileHandler.UpdateProfile)
		g.PATCH("/profile/settings", profileHandler.UpdateSettings)
		g.POST("/profile/avatar", profileHandler.UploadAvatar)
		g.POST("/profile/password-reset", profileHandler.RequestPasswordReset)

		// Search endpoint
		g.GET("/search", searchHandler.Search)

		// Support endpoint
		g.GET("/support", supportHandler.GetSupport)

		// Health check
		e.Router.GET("/health", func(e *core.RequestEvent) error {
			if err := utils.RedisHealthCheck(redisClient); err != nil {
				return e.JSON(503, map[string]string{
					"status": "unhealthy",
					"error":  err.Error(),
				})
			}
			return e.JSON(200, map[string]string{"status": "healthy"})
		})

		if cfg.EnableMetrics {
			e.Router.GET("/metrics", apis.WrapStdHandler(promhttp.Handler()))
		}

		log.Println("Server routes registered")

		setupRecordHooks(app, dashboardService)

		return e.Next()
	})

	// Start server
	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
	return nil
}

// setupRecordHooks keeps cached dashboard payloads honest when the
// underlying records change outside the profile API (admin edits,
// checkout writes, ticket scans).
func setupRecordHooks(app *pocketbase.PocketBase, dashboard *services.DashboardService) {
	invalidateFor := func(e *core.RecordEvent) error {
		userID := e.Record.GetString("user_id")
		if userID == "" {
			return e.Next()
		}
		if err := dashboard.Invalidate(e.Context, userID); err != nil {
			slog.Error("Failed to invalidate dashboard cache",
				"userID", userID,
				"collection", e.Record.Collection().Name,
				"error", err,
			)
		}
		return e.Next()
	}

	for _, collection := range []string{"tickets", "orders"} {
		app.OnRecordAfterCreateSuccess(collection).BindFunc(invalidateFor)
		app.OnRecordAfterUpdateSuccess(collection).BindFunc(invalidateFor)
		app.OnRecordAfterDeleteSuccess(collection).BindFunc(invalidateFor)
	}

	app.OnRecordAfterUpdateSuccess("users").BindFunc(func(e *core.RecordEvent) error {
		if err := dashboard.Invalidate(e.Context, e.Record.Id); err != nil {
			slog.Error("Failed to invalidate dashboard cache",
				"userID", e.Record.Id,
				"collection", "users",
				"error", err,
			)
		}
		return e.Next()
	})
}
