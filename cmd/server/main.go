package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/zenithapp/zenith-server/internal/config"
	"github.com/zenithapp/zenith-server/internal/database"
	"github.com/zenithapp/zenith-server/internal/handlers"
	"github.com/zenithapp/zenith-server/internal/jobs"
	"github.com/zenithapp/zenith-server/internal/prayer"
	"github.com/zenithapp/zenith-server/internal/repository"
	cronjobs "github.com/zenithapp/zenith-server/internal/scheduler"
	"github.com/zenithapp/zenith-server/internal/services"
	"github.com/zenithapp/zenith-server/pkg/logger"
	"github.com/zenithapp/zenith-server/pkg/middleware"
)

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger()
	logger.Log.Info("Logger initialized")

	// Connect to MongoDB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	// --- Repositories ---
	userRepo := repository.NewUserRepository(db)
	logRepo := repository.NewLogRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	if err := logRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Failed to ensure log indexes: %v", err)
	}

	// --- External clients ---
	prayerClient := prayer.NewClient(cfg.PrayerAPIBaseURL)
	geocoder := prayer.NewGeocoder(cfg.GeocodeAPIBaseURL)

	// --- Services ---
	userService := services.NewUserService(userRepo, geocoder)
	trackerService := services.NewTrackerService(logRepo, settingRepo, prayerClient)
	historyService := services.NewHistoryService(logRepo)
	systemService := services.NewSystemService(settingRepo)
	feedbackService := services.NewFeedbackService(feedbackRepo, cfg.AdminEmail)

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService, cfg)
	trackerHandler := handlers.NewTrackerHandler(trackerService, userService)
	historyHandler := handlers.NewHistoryHandler(historyService, userService)
	systemHandler := handlers.NewSystemHandler(systemService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)

	// Initialize Gorilla Mux router
	router := mux.NewRouter()

	// Public user routes
	router.HandleFunc("/users/register", userHandler.RegisterUserHandler).Methods("POST")
	router.HandleFunc("/users/login", userHandler.LoginUserHandler).Methods("POST")
	router.HandleFunc("/users/verify", userHandler.VerifyEmailHandler).Methods("GET")

	// Public read of the global Hijri calibration
	router.HandleFunc("/system/hijri-offset", systemHandler.GetHijriOffsetHandler).Methods("GET")

	// Protected user routes
	protectedUserRoutes := router.PathPrefix("/users").Subrouter()
	protectedUserRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedUserRoutes.HandleFunc("/me", userHandler.GetProfileHandler).Methods("GET")
	protectedUserRoutes.HandleFunc("/me", userHandler.UpdateProfileHandler).Methods("PATCH")
	protectedUserRoutes.HandleFunc("/me/preferences", userHandler.UpdatePreferencesHandler).Methods("PATCH")
	protectedUserRoutes.HandleFunc("/me/location", userHandler.UpdateLocationHandler).Methods("PUT")

	// Tracker routes
	trackerRoutes := router.PathPrefix("/tracker").Subrouter()
	trackerRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	trackerRoutes.HandleFunc("", trackerHandler.GetTrackerHandler).Methods("GET")
	trackerRoutes.HandleFunc("/habits/{habitId}/toggle", trackerHandler.ToggleHabitHandler).Methods("POST")
	trackerRoutes.HandleFunc("/habits/{habitId}/counter", trackerHandler.SetCounterHandler).Methods("PUT")
	trackerRoutes.HandleFunc("/note", trackerHandler.SetNoteHandler).Methods("PUT")
	trackerRoutes.HandleFunc("/menstruating", trackerHandler.SetMenstruatingHandler).Methods("PUT")

	// History routes
	historyRoutes := router.PathPrefix("/history").Subrouter()
	historyRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	historyRoutes.HandleFunc("", historyHandler.GetHistoryHandler).Methods("GET")

	// Feedback routes
	feedbackRoutes := router.PathPrefix("/feedback").Subrouter()
	feedbackRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	feedbackRoutes.HandleFunc("", feedbackHandler.SubmitFeedbackHandler).Methods("POST")

	// Admin routes
	adminRoutes := router.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	adminRoutes.Use(middleware.RequireRole("admin"))
	adminRoutes.HandleFunc("/users", userHandler.GetAllUsersHandler).Methods("GET")
	adminRoutes.HandleFunc("/feedback", feedbackHandler.GetAllFeedbackHandler).Methods("GET")
	adminRoutes.HandleFunc("/feedback/{id}/read", feedbackHandler.MarkFeedbackReadHandler).Methods("POST")
	adminRoutes.HandleFunc("/hijri-offset", systemHandler.UpdateHijriOffsetHandler).Methods("PUT")

	// Apply middleware for logging
	router.Use(middleware.LoggingMiddleware)

	// Background jobs
	prefetcher := jobs.NewPrayerPrefetcher(userRepo, prayerClient)
	cronjobs.StartDailyCronJobs(prefetcher)

	// Start the HTTP server
	port := cfg.Port
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(router)

	fmt.Printf("Server running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
