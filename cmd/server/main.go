package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"mindbloom/internal/config"
	"mindbloom/internal/database"
	"mindbloom/internal/handlers"
	"mindbloom/internal/repository"
	"mindbloom/internal/security"
	"mindbloom/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET must be set")
	}

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations for the active dialect
	migrationsPath := filepath.Join(cfg.MigrationsPath, db.Dialect.MigrationsSubdir())
	if err := db.RunMigrations(migrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize security primitives
	tokens, err := security.NewTokenIssuer(cfg.SessionSecret, cfg.SessionDuration)
	if err != nil {
		log.Fatalf("Failed to create token issuer: %v", err)
	}
	csrf := security.NewCSRFGenerator(cfg.SessionSecret)
	loginLimiter := security.NewRateLimiter(10, time.Minute)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokens, cfg.SessionDuration)
	progressionService := service.NewProgressionService(db, userRepo, activityRepo)
	achievementService := service.NewAchievementService()
	statsService := service.NewStatsService()

	// Initialize handlers
	middleware := handlers.NewMiddleware(authService, loginLimiter, csrf)
	gameStore := handlers.NewGameStore()
	authHandler := handlers.NewAuthHandler(authService, csrf)
	memoryHandler := handlers.NewMemoryHandler(gameStore, progressionService)
	quizHandler := handlers.NewQuizHandler(gameStore, progressionService)
	focusHandler := handlers.NewFocusHandler(gameStore, progressionService)
	progressHandler := handlers.NewProgressHandler(activityRepo, statsService, achievementService)
	settingsHandler := handlers.NewSettingsHandler(settingsRepo)

	// Setup routes
	mux := http.NewServeMux()

	// Auth routes
	mux.HandleFunc("POST /register", middleware.RateLimit(authHandler.Register))
	mux.HandleFunc("POST /login", middleware.RateLimit(authHandler.Login))
	mux.HandleFunc("POST /logout", authHandler.Logout)
	mux.HandleFunc("GET /me", middleware.RequireAuth(authHandler.Me))

	// Memory game routes
	mux.HandleFunc("POST /games/memory/start", middleware.RequireAuth(middleware.CSRFProtect(memoryHandler.Start)))
	mux.HandleFunc("GET /games/memory", middleware.RequireAuth(memoryHandler.Get))
	mux.HandleFunc("POST /games/memory/select", middleware.RequireAuth(middleware.CSRFProtect(memoryHandler.Select)))
	mux.HandleFunc("POST /games/memory/resolve", middleware.RequireAuth(middleware.CSRFProtect(memoryHandler.Resolve)))
	mux.HandleFunc("POST /games/memory/exit", middleware.RequireAuth(middleware.CSRFProtect(memoryHandler.Exit)))

	// Quiz routes
	mux.HandleFunc("POST /games/quiz/start", middleware.RequireAuth(middleware.CSRFProtect(quizHandler.Start)))
	mux.HandleFunc("GET /games/quiz", middleware.RequireAuth(quizHandler.Get))
	mux.HandleFunc("POST /games/quiz/answer", middleware.RequireAuth(middleware.CSRFProtect(quizHandler.Answer)))
	mux.HandleFunc("POST /games/quiz/next", middleware.RequireAuth(middleware.CSRFProtect(quizHandler.Next)))
	mux.HandleFunc("POST /games/quiz/exit", middleware.RequireAuth(middleware.CSRFProtect(quizHandler.Exit)))

	// Focus game routes
	mux.HandleFunc("POST /games/focus/start", middleware.RequireAuth(middleware.CSRFProtect(focusHandler.Start)))
	mux.HandleFunc("GET /games/focus", middleware.RequireAuth(focusHandler.Get))
	mux.HandleFunc("POST /games/focus/click", middleware.RequireAuth(middleware.CSRFProtect(focusHandler.Click)))
	mux.HandleFunc("POST /games/focus/next", middleware.RequireAuth(middleware.CSRFProtect(focusHandler.Next)))
	mux.HandleFunc("POST /games/focus/exit", middleware.RequireAuth(middleware.CSRFProtect(focusHandler.Exit)))

	// Progress routes
	mux.HandleFunc("GET /progress/summary", middleware.RequireAuth(progressHandler.Summary))
	mux.HandleFunc("GET /progress/weekly", middleware.RequireAuth(progressHandler.Weekly))
	mux.HandleFunc("GET /progress/history", middleware.RequireAuth(progressHandler.History))
	mux.HandleFunc("GET /progress/achievements", middleware.RequireAuth(progressHandler.Achievements))

	// Settings routes
	mux.HandleFunc("GET /settings", middleware.RequireAuth(settingsHandler.Get))
	mux.HandleFunc("PUT /settings", middleware.RequireAuth(middleware.CSRFProtect(settingsHandler.Put)))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
