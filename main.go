package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/digitalfiroj/studio-site-server/src/config"
	"github.com/digitalfiroj/studio-site-server/src/database"
	"github.com/digitalfiroj/studio-site-server/src/handlers"
	"github.com/digitalfiroj/studio-site-server/src/logging"
	"github.com/digitalfiroj/studio-site-server/src/middleware"
	"github.com/digitalfiroj/studio-site-server/src/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize structured logging
	logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	log.Info().
		Int("port", cfg.Port).
		Str("log_level", cfg.LogLevel).
		Msg("starting server")

	// Initialize database
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.New(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	log.Info().Msg("database connected")

	// Initialize services
	adminService := services.NewAdminService(db.GetPool())
	sessionService := services.NewSessionService(adminService, cfg.SessionSecret, cfg.SessionTTLHours)
	leadService := services.NewLeadService(db.GetPool())
	portfolioService := services.NewPortfolioService(db.GetPool())
	notifyService := services.NewNotifyService(
		db.GetPool(),
		cfg.MailgunDomain,
		cfg.MailgunAPIKey,
		cfg.MailgunFromEmail,
		cfg.MailgunFromName,
		cfg.NotifyRecipient,
	)

	if notifyService.Enabled() {
		log.Info().Str("domain", cfg.MailgunDomain).Msg("Mailgun lead notifications enabled")
	} else {
		log.Warn().Msg("Mailgun credentials not configured - lead notifications will be recorded as failed")
	}

	// Auto-seed admin user on first run (if ADMIN_USERNAME, ADMIN_EMAIL and ADMIN_PASSWORD are set)
	if cfg.AdminUsername != "" && cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		hasAdmins, err := adminService.HasAdmins(context.Background())
		if err != nil {
			log.Error().Err(err).Msg("failed to check for existing admin users")
		} else if !hasAdmins {
			_, err := adminService.CreateUser(context.Background(), services.CreateUserParams{
				Username: cfg.AdminUsername,
				Email:    cfg.AdminEmail,
				Password: cfg.AdminPassword,
			})
			if err != nil {
				log.Error().Err(err).Msg("failed to create initial admin user")
			} else {
				log.Info().Str("username", cfg.AdminUsername).Msg("initial admin user created")
			}
		}
	}

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.Recovery())

	// CORS for the marketing site frontend
	allowed := map[string]bool{
		"http://localhost":      true,
		"http://localhost:5173": true,
		"http://localhost:8080": true,
	}
	for _, origin := range strings.Split(cfg.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			allowed[origin] = true
		}
	}
	corsConfig := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if allowed[origin] {
				return true
			}
			return origin == "https://digitalfiroj.com" || origin == "https://www.digitalfiroj.com"
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	// Setup routes
	setupRoutes(router, db, adminService, sessionService, leadService, portfolioService, notifyService)

	// Create HTTP server with timeouts
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Int("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	// Graceful shutdown with timeout
	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server shut down successfully")
}

func setupRoutes(
	router *gin.Engine,
	db *database.Database,
	adminService *services.AdminService,
	sessionService *services.SessionService,
	leadService *services.LeadService,
	portfolioService *services.PortfolioService,
	notifyService *services.NotifyService,
) {
	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(adminService, sessionService)
	usersHandler := handlers.NewUsersHandler(adminService)
	leadsHandler := handlers.NewLeadsHandler(leadService, notifyService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
	dashboardHandler := handlers.NewDashboardHandler(db, notifyService)

	// Health check endpoints
	router.GET("/health", healthHandler.HandleHealth)
	router.GET("/ready", healthHandler.HandleReady)
	router.GET("/info", healthHandler.HandleInfo)

	// Public form intake (rate limited per IP)
	api := router.Group("/api")
	api.Use(middleware.FormRateLimitMiddleware())
	{
		api.POST("/quiz-leads", leadsHandler.HandleQuizSubmit)
		api.POST("/contact", leadsHandler.HandleContactSubmit)
	}

	// Public portfolio listing
	router.GET("/api/portfolio", portfolioHandler.HandlePublicList)

	// Admin authentication endpoints
	router.POST("/admin/login", middleware.LoginRateLimitMiddleware(), authHandler.HandleLogin)
	router.POST("/admin/logout", authHandler.HandleLogout)
	router.GET("/admin/session", authHandler.HandleSession)

	// Admin endpoints (all require a valid session)
	admin := router.Group("/admin")
	admin.Use(middleware.AdminAuth(sessionService))
	{
		admin.GET("/users", usersHandler.HandleListUsers)
		admin.POST("/users", usersHandler.HandleCreateUser)
		admin.PUT("/users/:id/status", usersHandler.HandleUpdateUserStatus)
		admin.DELETE("/users/:id", usersHandler.HandleDeleteUser)

		admin.GET("/leads", leadsHandler.HandleListQuizLeads)
		admin.PUT("/leads/:id/status", leadsHandler.HandleUpdateQuizLeadStatus)
		admin.DELETE("/leads/:id", leadsHandler.HandleDeleteQuizLead)

		admin.GET("/messages", leadsHandler.HandleListContactMessages)
		admin.PUT("/messages/:id/status", leadsHandler.HandleUpdateContactMessageStatus)
		admin.DELETE("/messages/:id", leadsHandler.HandleDeleteContactMessage)

		admin.GET("/portfolio", portfolioHandler.HandleAdminList)
		admin.POST("/portfolio", portfolioHandler.HandleCreate)
		admin.PUT("/portfolio/:id", portfolioHandler.HandleUpdate)
		admin.PUT("/portfolio/:id/enabled", portfolioHandler.HandleSetEnabled)
		admin.DELETE("/portfolio/:id", portfolioHandler.HandleDelete)

		admin.GET("/stats", dashboardHandler.HandleStats)
		admin.GET("/notifications", dashboardHandler.HandleListNotifications)
	}
}
