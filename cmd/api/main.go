package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	// Application Layer
	appService "carcare/internal/application/service"
	"carcare/internal/domain/repository"

	// Infrastructure Layer
	mongostore "carcare/internal/infrastructure/database/mongo"
	"carcare/internal/infrastructure/database/sqlite"
	lineClient "carcare/internal/infrastructure/line"
	"carcare/internal/infrastructure/scheduler"
	"carcare/internal/infrastructure/storage"

	// Interfaces Layer
	"carcare/internal/interfaces/api/handler"
	"carcare/internal/interfaces/api/router"

	// Packages
	"carcare/internal/pkg/config"
	appLogger "carcare/internal/pkg/logger"

	_ "github.com/joho/godotenv/autoload" // Automatically load .env file
)

// repositories is the storage backend chosen by STORE_DRIVER.
type repositories struct {
	users     repository.UserRepository
	vehicles  repository.VehicleRepository
	services  repository.ServiceRepository
	reminders repository.ReminderRepository
	history   repository.HistoryRepository
	close     func(ctx context.Context) error
}

func openRepositories(ctx context.Context, cfg *config.Config, log appLogger.Logger) (*repositories, error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		client, err := mongostore.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.MongoDatabase)
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		log.Info(fmt.Sprintf("Connected to MongoDB database %s", cfg.MongoDatabase))
		return &repositories{
			users:     mongostore.NewUserRepository(db),
			vehicles:  mongostore.NewVehicleRepository(db),
			services:  mongostore.NewServiceRepository(db),
			reminders: mongostore.NewReminderRepository(db),
			history:   mongostore.NewHistoryRepository(db),
			close:     client.Disconnect,
		}, nil
	default:
		db, err := sqlite.NewDB(cfg.SQLitePath, log)
		if err != nil {
			return nil, err
		}
		return &repositories{
			users:     sqlite.NewUserRepository(db),
			vehicles:  sqlite.NewVehicleRepository(db),
			services:  sqlite.NewServiceRepository(db),
			reminders: sqlite.NewReminderRepository(db),
			history:   sqlite.NewHistoryRepository(db),
			close:     func(context.Context) error { return sqlite.CloseDB(db) },
		}, nil
	}
}

func gracefulShutdown(apiServer *http.Server, notifications appService.NotificationScheduler, repos *repositories, log appLogger.Logger, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	log.Info("Shutting down gracefully, press Ctrl+C again to force")

	// Stop the scheduler first so no notification fires against a closed store
	log.Info("Stopping scheduler...")
	notifications.Stop()
	log.Info("Scheduler stopped.")

	// The server has 5 seconds to finish the request it is currently handling
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err)
	}

	log.Info("Closing database connection...")
	if err := repos.close(shutdownCtx); err != nil {
		log.Error("Error closing database", err)
	} else {
		log.Info("Database connection closed.")
	}

	done <- true
}

func main() {
	// --- Initialization ---
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	appLog := appLogger.New(appLogger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	appLog.Info("Logger initialized.")

	// --- Infrastructure ---
	repos, err := openRepositories(context.Background(), cfg, appLog)
	if err != nil {
		appLog.Error("Failed to open the store", err)
		os.Exit(1)
	}
	appLog.Info(fmt.Sprintf("Store %q and repositories initialized.", cfg.StoreDriver))

	// Pusher and PhotoStore stay nil interfaces when their backend is not configured.
	var (
		line   *lineClient.Client
		pusher appService.Pusher
		photos appService.PhotoStore
	)
	if cfg.LineEnabled() {
		line, err = lineClient.NewClient(cfg.LineChannelSecret, cfg.LineChannelToken, appLog)
		if err != nil {
			appLog.Error("Failed to create LINE client", err)
			os.Exit(1)
		}
		pusher = line
	} else {
		appLog.Warn("CHANNEL_SECRET or CHANNEL_ACCESS_TOKEN not set. Notifications will not be delivered.")
	}
	if cfg.CloudinaryEnabled() {
		store, err := storage.NewCloudinaryStore(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, appLog)
		if err != nil {
			appLog.Error("Failed to create Cloudinary store", err)
			os.Exit(1)
		}
		photos = store
	} else {
		appLog.Warn("Cloudinary not configured. Avatar uploads are disabled.")
	}

	cronScheduler := scheduler.NewScheduler(appLog)

	// --- Application Services ---
	notifications := appService.NewNotificationScheduler(cronScheduler, appLog)
	reminderSvc := appService.NewReminderService(repos.reminders, repos.users, notifications, pusher, appLog)
	userSvc := appService.NewUserService(repos.users, repos.vehicles, repos.services, repos.history, reminderSvc, photos, appLog)
	vehicleSvc := appService.NewVehicleService(repos.vehicles, repos.services, appLog)
	maintenanceSvc := appService.NewMaintenanceService(repos.services, repos.vehicles, reminderSvc, appLog)
	historySvc := appService.NewHistoryService(repos.history, repos.vehicles, appLog)
	appLog.Info("Application services initialized.")

	// --- Initialize Schedules ---
	appLog.Info("Initializing reminder schedules...")
	if err := reminderSvc.InitializeSchedules(context.Background()); err != nil {
		// Log the error but continue starting the server
		appLog.Error("Failed to initialize schedules on startup", err)
	} else {
		appLog.Info("Reminder schedules initialized.")
	}

	// --- API Handlers ---
	routerCfg := &router.Config{
		ReminderHandler:    handler.NewReminderHandler(reminderSvc, appLog),
		VehicleHandler:     handler.NewVehicleHandler(vehicleSvc, appLog),
		MaintenanceHandler: handler.NewMaintenanceHandler(maintenanceSvc, appLog),
		HistoryHandler:     handler.NewHistoryHandler(historySvc, appLog),
		SettingsHandler:    handler.NewSettingsHandler(userSvc, appLog),
		Logger:             appLog,
	}
	if line != nil {
		routerCfg.LineHandler = handler.NewLineHandler(line, userSvc, reminderSvc, cfg.AdminUserID, appLog)
	}
	appLog.Info("API handlers initialized.")

	echoRouter := router.NewRouter(routerCfg)

	// --- HTTP Server ---
	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      echoRouter,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// --- Start Server & Shutdown Handling ---
	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, notifications, repos, appLog, done)

	appLog.Info(fmt.Sprintf("Server starting on port %d", cfg.Port))
	err = apiServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		appLog.Error("HTTP server ListenAndServe error", err)
		panic(fmt.Sprintf("http server error: %s", err))
	}

	// Wait for graceful shutdown signal
	<-done
	appLog.Info("Graceful shutdown complete.")
}
