// Package router provides HTTP routing, middleware configuration, and server setup for the web application
package router

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/compress"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/gofiber/fiber/v3/middleware/static"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/opencampus/college-cms/app/dto"
	"github.com/opencampus/college-cms/app/handlers"
	"github.com/opencampus/college-cms/app/middleware"
	"github.com/opencampus/college-cms/config"
	_ "github.com/opencampus/college-cms/docs"
	"github.com/opencampus/college-cms/models"
	"github.com/opencampus/college-cms/utils"
)

// Router interface for HTTP routing
type Router interface {
	SetupRoutes()
	Start(address string) error
	GetApp() *fiber.App
}

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth         *handlers.AdminAuthHandler
	News         *handlers.NewsHandler
	Gallery      *handlers.GalleryHandler
	Faculty      *handlers.FacultyHandler
	Admissions   *handlers.AdmissionHandler
	Examinations *handlers.ExaminationHandler
	Activities   *handlers.ActivityHandler
	Videos       *handlers.VideoHandler
	RollNumbers  *handlers.RollNumberHandler
	Contacts     *handlers.ContactHandler
	Media        *handlers.MediaHandler
}

// FiberRouter implements Router using Fiber v3
type FiberRouter struct {
	app      *fiber.App
	cfg      *config.ProductionConfig
	handlers Handlers
	authMw   *middleware.AuthMiddleware
	dbPing   func() error
}

// NewFiberRouter creates a new Fiber router
func NewFiberRouter(cfg *config.ProductionConfig, h Handlers, authMw *middleware.AuthMiddleware, dbPing func() error) Router {
	app := fiber.New(fiber.Config{
		AppName:      "College CMS API",
		ServerHeader: "college-cms",
		ErrorHandler: errorHandler,
		BodyLimit:    cfg.Server.BodyLimit,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ProxyHeader:  cfg.Server.ProxyHeader,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	return &FiberRouter{
		app:      app,
		cfg:      cfg,
		handlers: h,
		authMw:   authMw,
		dbPing:   dbPing,
	}
}

// SetupRoutes configures all application routes
func (r *FiberRouter) SetupRoutes() {
	r.setupMiddleware()

	if r.cfg.Metrics.Enabled {
		r.app.Get(r.cfg.Metrics.Path, adaptor.HTTPHandler(promhttp.Handler()))
		r.app.Use(middleware.Metrics())
	}

	// Uploaded media is served directly from disk
	r.app.Use(r.cfg.Upload.BaseURL, static.New(r.cfg.Upload.BaseDir))

	api := r.app.Group("/api")

	// Health check route (no rate limiting)
	api.Get("/health", r.healthCheck)

	// General rate limiting for all API routes
	api.Use(limiter.New(limiter.Config{
		Max:        r.cfg.Security.GlobalRateLimit,
		Expiration: r.cfg.Security.RateLimitWindow,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: rateLimitReached,
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/api/health"
		},
	}))

	// Stricter limit on the endpoints bots hammer
	strictLimiter := limiter.New(limiter.Config{
		Max:        r.cfg.Security.AuthRateLimit,
		Expiration: r.cfg.Security.RateLimitWindow,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: rateLimitReached,
	})

	// Public content routes
	r.publicContent(api, "/news", r.handlers.News.ContentHandler)
	r.publicContent(api, "/gallery", r.handlers.Gallery.ContentHandler)
	r.publicContent(api, "/faculty", r.handlers.Faculty.ContentHandler)
	r.publicContent(api, "/admissions", r.handlers.Admissions.ContentHandler)
	r.publicContent(api, "/examinations", r.handlers.Examinations.ContentHandler)
	r.publicContent(api, "/activities", r.handlers.Activities.ContentHandler)
	r.publicContent(api, "/videos", r.handlers.Videos.ContentHandler)
	r.publicContent(api, "/roll-numbers", r.handlers.RollNumbers.ContentHandler)

	// Public contact form
	api.Post("/contact", r.handlers.Contacts.Submit, strictLimiter)

	// Admin surface
	admin := api.Group("/admin")

	auth := admin.Group("/auth")
	auth.Use(strictLimiter)
	auth.Get("/captcha", r.handlers.Auth.InitCaptcha)
	auth.Post("/login", r.handlers.Auth.Login)
	auth.Post("/refresh", r.handlers.Auth.Refresh)
	auth.Get("/profile", r.handlers.Auth.Profile, r.authMw.AdminAuthenticate())
	auth.Put("/change-password", r.handlers.Auth.ChangePassword, r.authMw.AdminAuthenticate())

	admin.Use(r.authMw.AdminAuthenticate())

	r.adminContent(admin, "/news", r.handlers.News.ContentHandler, r.handlers.News.Create, r.handlers.News.Update, true)
	r.adminContent(admin, "/gallery", r.handlers.Gallery.ContentHandler, r.handlers.Gallery.Create, r.handlers.Gallery.Update, true)
	r.adminContent(admin, "/faculty", r.handlers.Faculty.ContentHandler, r.handlers.Faculty.Create, r.handlers.Faculty.Update, true)
	r.adminContent(admin, "/admissions", r.handlers.Admissions.ContentHandler, r.handlers.Admissions.Create, r.handlers.Admissions.Update, true)
	r.adminContent(admin, "/examinations", r.handlers.Examinations.ContentHandler, r.handlers.Examinations.Create, r.handlers.Examinations.Update, true)
	r.adminContent(admin, "/activities", r.handlers.Activities.ContentHandler, r.handlers.Activities.Create, r.handlers.Activities.Update, true)
	r.adminContent(admin, "/videos", r.handlers.Videos.ContentHandler, r.handlers.Videos.Create, r.handlers.Videos.Update, true)

	// Spreadsheet routes go first so ":id" does not capture them
	admin.Post("/roll-numbers/import", r.handlers.RollNumbers.Import)
	admin.Get("/roll-numbers/export", r.handlers.RollNumbers.Export)
	r.adminContent(admin, "/roll-numbers", r.handlers.RollNumbers.ContentHandler, r.handlers.RollNumbers.Create, r.handlers.RollNumbers.Update, true)

	// Contact inbox
	contacts := admin.Group("/contacts")
	contacts.Get("/", r.handlers.Contacts.ListAdmin)
	contacts.Get("/:id", r.handlers.Contacts.GetAdmin)
	contacts.Patch("/:id/status", r.handlers.Contacts.UpdateStatus)
	contacts.Delete("/:id", r.handlers.Contacts.Delete)
	contacts.Post("/bulk-delete", r.handlers.Contacts.BulkDelete, r.authMw.RequireRole(models.RoleAdmin))

	// Media upload
	admin.Post("/upload", r.handlers.Media.Upload)
	admin.Delete("/media", r.handlers.Media.Delete)

	// Not found handler
	r.app.Use(r.notFoundHandler)

	log.Println("Routes configured successfully")
}

// publicContent mounts the published-only listing and detail routes.
func (r *FiberRouter) publicContent(api fiber.Router, prefix string, listGet interface {
	ListPublic(c fiber.Ctx) error
	GetPublic(c fiber.Ctx) error
}) {
	api.Get(prefix, listGet.ListPublic)
	api.Get(prefix+"/:id", listGet.GetPublic)
}

// adminContent mounts the full management surface for one content resource.
// Bulk delete is restricted to the admin role and above.
func (r *FiberRouter) adminContent(admin fiber.Router, prefix string, base interface {
	ListAdmin(c fiber.Ctx) error
	GetAdmin(c fiber.Ctx) error
	Delete(c fiber.Ctx) error
	BulkDelete(c fiber.Ctx) error
	TogglePublished(c fiber.Ctx) error
	ToggleFeatured(c fiber.Ctx) error
}, create, update fiber.Handler, featured bool) {
	group := admin.Group(prefix)
	group.Get("/", base.ListAdmin)
	group.Get("/:id", base.GetAdmin)
	group.Post("/", create)
	group.Put("/:id", update)
	group.Delete("/:id", base.Delete)
	group.Post("/bulk-delete", base.BulkDelete, r.authMw.RequireRole(models.RoleAdmin))
	group.Patch("/:id/toggle-published", base.TogglePublished)
	if featured {
		group.Patch("/:id/toggle-featured", base.ToggleFeatured)
	}
}

// setupMiddleware configures global middleware
func (r *FiberRouter) setupMiddleware() {
	// Request ID middleware - must be first
	r.app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return generateRequestID()
		},
	}))

	// Security headers middleware
	r.app.Use(helmet.New(helmet.Config{
		XSSProtection:         r.cfg.Security.XSSProtection,
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         r.cfg.Security.XFrameOptions,
		HSTSMaxAge:            r.cfg.Security.HSTSMaxAge,
		ContentSecurityPolicy: r.cfg.Security.CSPPolicy,
		ReferrerPolicy:        r.cfg.Security.ReferrerPolicy,
	}))

	// CORS middleware for the SPA
	r.app.Use(cors.New(cors.Config{
		AllowOrigins:     r.cfg.Security.AllowedOrigins,
		AllowMethods:     r.cfg.Security.AllowedMethods,
		AllowHeaders:     r.cfg.Security.AllowedHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: r.cfg.Security.AllowCredentials,
		MaxAge:           r.cfg.Security.CORSMaxAge,
	}))

	// Compression middleware for performance
	r.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Structured access log, one JSON line per request
	r.app.Use(logger.New(logger.Config{
		Format:     `{"time":"${time}","pid":"${pid}","request_id":"${locals:requestid}","level":"info","method":"${method}","path":"${path}","protocol":"${protocol}","ip":"${ip}","user_agent":"${ua}","status":${status},"latency":"${latency}","bytes_in":${bytesReceived},"bytes_out":${bytesSent},"referer":"${referer}"}` + "\n",
		TimeFormat: time.RFC3339,
		TimeZone:   "UTC",
	}))

	// Recovery middleware with custom error handling
	r.app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			log.Printf(`{"time":"%s","level":"error","request_id":"%s","event":"panic","error":"%v","path":"%s","method":"%s","ip":"%s"}`,
				utils.UTCNow().Format(time.RFC3339),
				c.Locals("requestid"),
				e,
				c.Path(),
				c.Method(),
				c.IP(),
			)
		},
	}))
}

// Start starts the HTTP server
func (r *FiberRouter) Start(address string) error {
	log.Printf("Starting server on %s", address)
	return r.app.Listen(address)
}

// GetApp returns the Fiber app instance
func (r *FiberRouter) GetApp() *fiber.App {
	return r.app
}

// Health check endpoint
func (r *FiberRouter) healthCheck(c fiber.Ctx) error {
	dbStatus := "ok"
	if r.dbPing != nil {
		if err := r.dbPing(); err != nil {
			dbStatus = "unreachable"
		}
	}
	return c.JSON(dto.APIResponse{
		Success: true,
		Message: "Service is healthy",
		Data: fiber.Map{
			"status":    "ok",
			"database":  dbStatus,
			"timestamp": utils.UTCNow().Unix(),
			"version":   r.cfg.Deployment.Version,
			"service":   "college-cms-api",
		},
	})
}

func rateLimitReached(c fiber.Ctx) error {
	return c.Status(fiber.StatusTooManyRequests).JSON(dto.APIResponse{
		Success: false,
		Message: "Too many requests. Please try again later.",
		Error: dto.ErrorDetail{
			Code: "RATE_LIMIT_EXCEEDED",
		},
	})
}

// Global error handler
func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	log.Printf(`{"time":"%s","level":"error","request_id":"%s","event":"unhandled_error","error":"%v","path":"%s","method":"%s","status":%d}`,
		utils.UTCNow().Format(time.RFC3339),
		c.Locals("requestid"),
		err,
		c.Path(),
		c.Method(),
		code,
	)

	return c.Status(code).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code: "INTERNAL_ERROR",
		},
	})
}

// Not found handler for unmatched routes
func (r *FiberRouter) notFoundHandler(c fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.APIResponse{
		Success: false,
		Message: "The requested resource was not found",
		Error: dto.ErrorDetail{
			Code: "NOT_FOUND",
		},
	})
}

// generateRequestID creates a random request identifier
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return "req-" + hex.EncodeToString([]byte(time.Now().Format("150405.000")))
	}
	return "req-" + hex.EncodeToString(bytes)
}
