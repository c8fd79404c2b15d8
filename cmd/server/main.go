package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"

	"github.com/mohitkumar/harvin/internal/auth"
	"github.com/mohitkumar/harvin/internal/config"
	"github.com/mohitkumar/harvin/internal/metrics"
	"github.com/mohitkumar/harvin/internal/middleware"
	"github.com/mohitkumar/harvin/internal/service"
	"github.com/mohitkumar/harvin/internal/storage/sqlite"
	"github.com/mohitkumar/harvin/internal/youtube"
	"github.com/mohitkumar/harvin/pkg/logging"
)

// health is a simple health check handler.
func health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "ok")
}

func main() {
	logging.Setup()

	// load .env if present
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found; using system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	budgetStart, err := cfg.StartDate()
	if err != nil {
		slog.Error("Failed to parse budget start date", "error", err)
		os.Exit(1)
	}

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	resolver := auth.NewResolver(jwtManager)
	guestAuth := auth.NewGuestAuthenticator(store)
	adminAuth := auth.NewPasswordAuthenticator(store)

	// Seed the configured admin account if it does not exist yet.
	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if _, err := adminAuth.Bootstrap(context.Background(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
			slog.Error("Failed to bootstrap admin account", "email", cfg.AdminEmail, "error", err)
			os.Exit(1)
		}
		slog.Info("Admin account ready", "email", cfg.AdminEmail)
	}

	authSvc := service.NewAuthService(guestAuth, adminAuth, jwtManager, resolver, slog.Default())
	registrySvc := service.NewRegistryService(store)
	ledgerSvc := service.NewLedgerService(store, budgetStart, cfg.DailyBudget)
	gallerySvc := service.NewGalleryService(store, cfg.GalleryDir, cfg.PublicPhotos, youtube.NewClient())

	router := httprouter.New()
	router.GET("/health", health)
	router.Handler(http.MethodGet, "/metrics", metrics.Handler())

	// Auth: all public entry points.
	router.POST("/api/auth/guest/login", authSvc.GuestLogin)
	router.POST("/api/auth/admin/login", authSvc.AdminLogin)
	router.POST("/api/auth/logout", authSvc.Logout)
	router.GET("/api/auth/state", authSvc.State)

	// Gallery: preview is public, the full listing needs a login.
	router.GET("/api/gallery/preview", gallerySvc.Preview)
	router.GET("/api/gallery", middleware.RequireLogin(resolver, gallerySvc.List))
	router.GET("/api/videos", middleware.RequireLogin(resolver, gallerySvc.ListVideos))
	router.POST("/api/videos", middleware.RequireAdmin(resolver, gallerySvc.AddVideo))
	router.DELETE("/api/videos/:id", middleware.RequireAdmin(resolver, gallerySvc.RemoveVideo))

	// Guest registry management: admin console only.
	router.GET("/api/guests", middleware.RequireAdmin(resolver, registrySvc.List))
	router.POST("/api/guests", middleware.RequireAdmin(resolver, registrySvc.Add))
	router.DELETE("/api/guests/:id", middleware.RequireAdmin(resolver, registrySvc.Remove))
	router.PATCH("/api/guests/:id", middleware.RequireAdmin(resolver, registrySvc.SetDisabled))

	// Budget tracker: admin only. The ledger service itself performs no
	// authorization checks, so it must never be mounted outside this gate.
	router.GET("/api/budget", middleware.RequireAdmin(resolver, ledgerSvc.Summary))
	router.POST("/api/expenses", middleware.RequireAdmin(resolver, ledgerSvc.AddExpense))
	router.DELETE("/api/expenses/:id", middleware.RequireAdmin(resolver, ledgerSvc.DeleteExpense))
	router.POST("/api/budgets", middleware.RequireAdmin(resolver, ledgerSvc.AddExtraBudget))
	router.DELETE("/api/budgets/:id", middleware.RequireAdmin(resolver, ledgerSvc.DeleteExtraBudget))

	// Image bytes are served ungated, like the public object URLs they
	// replace; the gate only controls whether names are listed.
	router.ServeFiles("/media/gallery/*filepath", http.Dir(cfg.GalleryDir))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}).Handler(router)

	handler := middleware.Logging(corsHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		slog.Info("Server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
}
