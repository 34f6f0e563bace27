// Package main provides the main entry point for the college content management API
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/opencampus/college-cms/app/handlers"
	"github.com/opencampus/college-cms/app/middleware"
	"github.com/opencampus/college-cms/app/router"
	"github.com/opencampus/college-cms/app/services"
	businessflow "github.com/opencampus/college-cms/business_flow"
	"github.com/opencampus/college-cms/config"
	_ "github.com/opencampus/college-cms/docs"
	"github.com/opencampus/college-cms/models"
	"github.com/opencampus/college-cms/repository"
)

// Application represents the main application structure
type Application struct {
	router    router.Router
	config    *config.ProductionConfig
	db        *gorm.DB
	stopFuncs []func()
}

func main() {
	seedAdmin := flag.Bool("seed-admin", false, "create the initial super-admin account and exit")
	flag.Parse()

	log.Println("Starting college-cms application...")

	cfg, err := config.LoadProductionConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogOutput(cfg.Logging)

	app, err := initializeApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if *seedAdmin {
		runAdminSeed(app.db, cfg)
		return
	}

	// Setup routes
	app.router.SetupRoutes()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := app.router.Start(address); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	log.Println("Shutting down gracefully...")

	// Stop background workers
	for _, fn := range app.stopFuncs {
		fn()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := app.router.GetApp().ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// setupLogOutput routes the standard logger through lumberjack when file
// output is configured.
func setupLogOutput(cfg config.LoggingConfig) {
	if cfg.Output != "file" && cfg.Output != "both" {
		return
	}
	rotator := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
	if cfg.Output == "both" {
		log.SetOutput(io.MultiWriter(os.Stdout, rotator))
		return
	}
	log.SetOutput(rotator)
}

// initializeDatabase initializes the database connection with connection pooling
func initializeDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pooling
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("Database connection established with %d max open connections, %d max idle connections",
		cfg.MaxOpenConns, cfg.MaxIdleConns)

	return db, nil
}

// migrateSchema keeps the content tables in sync with the models
func migrateSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.News{},
		&models.GalleryItem{},
		&models.Faculty{},
		&models.Admission{},
		&models.Examination{},
		&models.Activity{},
		&models.Video{},
		&models.RollNumber{},
		&models.Contact{},
		&models.MediaAsset{},
	)
}

// initializeCache initializes the redis client and verifies connectivity
func initializeCache(cfg config.CacheConfig) (*redis.Client, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	opt.DB = cfg.RedisDB

	rc := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rc.Ping(ctx).Err(); err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Printf("Redis connection established to %s (db=%d)", cfg.RedisURL, cfg.RedisDB)
	return rc, nil
}

// startCacheHealthMonitor starts a background goroutine that periodically pings redis
// to detect connectivity issues. The returned cancel function stops the monitor.
func startCacheHealthMonitor(parent context.Context, client *redis.Client, interval time.Duration) func() {
	monitorCtx, cancel := context.WithCancel(parent)
	if interval <= 0 {
		interval = 30 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-monitorCtx.Done():
				return
			case <-ticker.C:
				ctx, c := context.WithTimeout(context.Background(), 3*time.Second)
				if err := client.Ping(ctx).Err(); err != nil {
					log.Printf("Redis healthcheck failed: %v", err)
				}
				c()
			}
		}
	}()
	return cancel
}

// runAdminSeed creates the first super-admin from environment configuration
func runAdminSeed(db *gorm.DB, cfg *config.ProductionConfig) {
	adminRepo := repository.NewAdminRepository(db)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := businessflow.SeedSuperAdmin(ctx, adminRepo,
		cfg.AdminSeed.Username, cfg.AdminSeed.Email, cfg.AdminSeed.Password)
	if err != nil {
		log.Fatalf("Admin seed failed: %v", err)
	}
	log.Printf("Super admin %q is ready", cfg.AdminSeed.Username)
}

// initializeApplication initializes the main application components
func initializeApplication(cfg *config.ProductionConfig) (*Application, error) {
	var stopFuncs []func()

	db, err := initializeDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := migrateSchema(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	rc, err := initializeCache(cfg.Cache)
	if err != nil {
		return nil, err
	}
	if rc != nil {
		cancel := startCacheHealthMonitor(context.Background(), rc, 30*time.Second)
		stopFuncs = append(stopFuncs, cancel)
	}

	// Repositories
	adminRepo := repository.NewAdminRepository(db)
	assetRepo := repository.NewMediaAssetRepository(db)
	newsRepo := repository.NewContentRepository[models.News](db)
	galleryRepo := repository.NewContentRepository[models.GalleryItem](db)
	facultyRepo := repository.NewContentRepository[models.Faculty](db)
	admissionRepo := repository.NewContentRepository[models.Admission](db)
	examinationRepo := repository.NewContentRepository[models.Examination](db)
	activityRepo := repository.NewContentRepository[models.Activity](db)
	videoRepo := repository.NewContentRepository[models.Video](db)
	rollNumberRepo := repository.NewContentRepository[models.RollNumber](db)
	contactRepo := repository.NewContentRepository[models.Contact](db)

	// Services
	tokenService, err := services.NewTokenService(
		cfg.JWT.AccessTokenTTL,
		cfg.JWT.RefreshTokenTTL,
		cfg.JWT.Issuer,
		cfg.JWT.Audience,
		cfg.JWT.UseRSAKeys,
		cfg.JWT.PrivateKey,
		cfg.JWT.PublicKey,
		cfg.JWT.SecretKey,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	log.Printf("Token service initialized with issuer: %s, audience: %s", cfg.JWT.Issuer, cfg.JWT.Audience)

	captchaSvc, err := services.NewCaptchaServiceRotate(cfg.Captcha.TTL, 15, 300)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize captcha service: %w", err)
	}

	storage := services.NewDiskMediaStorage(cfg.Upload.BaseDir, cfg.Upload.BaseURL, cfg.Upload.MaxSizeBytes)
	listCache := services.NewRedisListCache(rc, cfg.Cache.RedisPrefix, cfg.Cache.ListTTL)

	// Flows
	authFlow := businessflow.NewAdminAuthFlow(
		adminRepo,
		tokenService,
		captchaSvc,
		cfg.Captcha.Enabled,
		cfg.Security.PasswordMinLength,
		cfg.JWT.AccessTokenTTL,
	)

	newsFlow := businessflow.NewContentFlow[models.News, *models.News](newsRepo, storage, listCache, "news", true)
	galleryFlow := businessflow.NewContentFlow[models.GalleryItem, *models.GalleryItem](galleryRepo, storage, listCache, "gallery", true)
	facultyFlow := businessflow.NewContentFlow[models.Faculty, *models.Faculty](facultyRepo, storage, listCache, "faculty", true)
	admissionFlow := businessflow.NewContentFlow[models.Admission, *models.Admission](admissionRepo, storage, listCache, "admissions", true)
	examinationFlow := businessflow.NewContentFlow[models.Examination, *models.Examination](examinationRepo, storage, listCache, "examinations", true)
	activityFlow := businessflow.NewContentFlow[models.Activity, *models.Activity](activityRepo, storage, listCache, "activities", true)
	videoFlow := businessflow.NewContentFlow[models.Video, *models.Video](videoRepo, storage, listCache, "videos", true)
	rollNumberBase := businessflow.NewContentFlow[models.RollNumber, *models.RollNumber](rollNumberRepo, storage, listCache, "roll-numbers", true)
	rollNumberFlow := businessflow.NewRollNumberFlow(rollNumberBase, rollNumberRepo)
	contactBase := businessflow.NewContentFlow[models.Contact, *models.Contact](contactRepo, storage, listCache, "contacts", false)
	contactFlow := businessflow.NewContactFlow(contactBase)
	mediaFlow := businessflow.NewMediaFlow(storage, assetRepo)

	// Handlers
	h := router.Handlers{
		Auth:         handlers.NewAdminAuthHandler(authFlow),
		News:         handlers.NewNewsHandler(newsFlow, listCache),
		Gallery:      handlers.NewGalleryHandler(galleryFlow, listCache),
		Faculty:      handlers.NewFacultyHandler(facultyFlow, listCache),
		Admissions:   handlers.NewAdmissionHandler(admissionFlow, listCache),
		Examinations: handlers.NewExaminationHandler(examinationFlow, listCache),
		Activities:   handlers.NewActivityHandler(activityFlow, listCache),
		Videos:       handlers.NewVideoHandler(videoFlow, listCache),
		RollNumbers:  handlers.NewRollNumberHandler(rollNumberFlow, listCache),
		Contacts:     handlers.NewContactHandler(contactFlow, listCache),
		Media:        handlers.NewMediaHandler(mediaFlow),
	}

	authMw := middleware.NewAuthMiddleware(tokenService)

	dbPing := func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	}

	r := router.NewFiberRouter(cfg, h, authMw, dbPing)

	return &Application{
		router:    r,
		config:    cfg,
		db:        db,
		stopFuncs: stopFuncs,
	}, nil
}
