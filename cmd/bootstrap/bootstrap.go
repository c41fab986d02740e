package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"easymed-booking/config"
	"easymed-booking/internal/availability"
	"easymed-booking/internal/catalog"
	deliveryHttp "easymed-booking/internal/delivery/http"
	"easymed-booking/internal/delivery/http/handler"
	"easymed-booking/internal/delivery/http/middleware"
	domainRepo "easymed-booking/internal/domain/repository"
	"easymed-booking/internal/infrastructure/cache"
	"easymed-booking/internal/infrastructure/database"
	"easymed-booking/internal/notify"
	"easymed-booking/internal/observability/metrics"
	"easymed-booking/internal/repository"
	"easymed-booking/internal/usecase"
	"easymed-booking/pkg/jwt"
	"easymed-booking/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const startupTimeout = 30 * time.Second

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Registry    *availability.Registry
	Dispatcher  *notify.Dispatcher
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	app.Log = setupLogger(cfg.App.LogLevel)
	app.Log.Info("Configuration loaded successfully")

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	doctors, err := app.loadCatalog(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Log.Infof("Catalog loaded with %d doctors from %s source", doctors.Len(), cfg.Catalog.Source)

	store, err := app.newClientStore()
	if err != nil {
		app.Close()
		return nil, err
	}

	app.Server = app.initializeServer(doctors, store)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("Unknown log level %q, using info", level)
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	return log
}

// loadCatalog reads the doctor catalog once from the configured source
func (app *App) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	var repo domainRepo.DoctorRepository

	switch app.Config.Catalog.Source {
	case config.CatalogSourcePostgres:
		db, err := database.NewPostgresConnection(app.Config.DB, app.Log, app.Config.App.Env == "development")
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		repo = repository.NewDoctorRepository(db)
	default:
		repo = repository.NewStaticDoctorRepository(repository.SampleDoctors())
	}

	doctors, err := catalog.Load(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return doctors, nil
}

// newClientStore selects where per-client state lives
func (app *App) newClientStore() (domainRepo.ClientStore, error) {
	if app.Config.Store.Driver != config.StoreDriverRedis {
		app.Log.Info("Using in-memory client store")
		return repository.NewMemoryClientStore(), nil
	}

	redisClient, err := cache.NewRedisClient(app.Config.Redis, app.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	return repository.NewRedisClientStore(redisClient, app.Config.Store.TTL), nil
}

// newEmailSender uses SendGrid when an API key is configured
func (app *App) newEmailSender() notify.EmailSender {
	sendGrid := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    app.Config.Notify.SendGridAPIKey,
		FromEmail: app.Config.Notify.SendGridFromEmail,
		FromName:  app.Config.Notify.SendGridFromName,
	}, app.Log)
	if sendGrid != nil {
		app.Log.Info("Sending notifications through SendGrid")
		return sendGrid
	}

	app.Log.Infof("SendGrid not configured, using stub email sender with %s delay", app.Config.Notify.Delay)
	return notify.NewStubEmailSender(app.Config.Notify.Delay, app.Log)
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer(doctors *catalog.Catalog, store domainRepo.ClientStore) *http.Server {
	cfg := app.Config
	log := app.Log

	// Initialize metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	bookingMetrics := metrics.NewBookingMetrics(reg)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize client-scoped state
	app.Registry = availability.NewRegistry(log, cfg.Availability.IdleTTL)
	app.Dispatcher = notify.NewDispatcher(app.newEmailSender(), log, bookingMetrics)

	// Initialize usecases
	doctorUsecase := usecase.NewDoctorSearchUsecase(log, doctors, bookingMetrics)
	availabilityUsecase := usecase.NewAvailabilityUsecase(log, doctors, app.Registry, bookingMetrics)
	favoritesUsecase := usecase.NewFavoritesUsecase(log, doctors, store, bookingMetrics)
	bookingUsecase := usecase.NewBookingUsecase(log, doctors, app.Registry, app.Dispatcher, bookingMetrics)
	notificationUsecase := usecase.NewNotificationUsecase(log, app.Dispatcher)
	authUsecase := usecase.NewAuthUsecase(log, store, app.Registry, jwtService)

	// Initialize router
	router := deliveryHttp.NewRouter(deliveryHttp.RouterParams{
		DoctorHandler:       handler.NewDoctorHandler(doctorUsecase, customValidator),
		AvailabilityHandler: handler.NewAvailabilityHandler(availabilityUsecase),
		FavoritesHandler:    handler.NewFavoritesHandler(favoritesUsecase),
		BookingHandler:      handler.NewBookingHandler(bookingUsecase, customValidator),
		NotificationHandler: handler.NewNotificationHandler(notificationUsecase, customValidator),
		AuthHandler:         handler.NewAuthHandler(authUsecase, customValidator),
		ClientMiddleware:    middleware.NewClientMiddleware(jwtService, log),
		CORSMiddleware:      middleware.NewCORSMiddleware(cfg.App.CORSOrigins...),
		MetricsHandler:      promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close stops background workers and closes all connections
func (app *App) Close() {
	// Let in-flight notifications finish
	if app.Dispatcher != nil {
		app.Dispatcher.Close()
	}

	if app.Registry != nil {
		app.Registry.Stop()
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
