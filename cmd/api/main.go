package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"resumatch/resume-matcher/internal/config"
	"resumatch/resume-matcher/internal/handlers"
	"resumatch/resume-matcher/internal/repositories"
	"resumatch/resume-matcher/internal/services"
)

// route is one entry of the declarative routing table.
type route struct {
	Method  string
	Path    string
	Handler fiber.Handler
}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	resumeRepo := repositories.NewResumeRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	pdfParser := services.NewPDFParserService()

	skillDict, err := services.LoadSkillDictionary(cfg.Matcher.SkillDictionaryPath)
	if err != nil {
		log.Fatalf("❌ Failed to load skill dictionary: %v", err)
	}
	extractor := services.NewExtractorService(skillDict)

	matcher := services.NewMatcherService(
		cfg.Matcher.SimilarityThreshold,
		cfg.Matcher.ExperienceBonusYears,
	)

	notifier := services.NewClearNotifier(cfg.Notifier.ClearURL, cfg.Notifier.Timeout)
	selection := services.NewSelectionService(notifier)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	uploadHandler := handlers.NewUploadHandler(
		resumeRepo,
		storageService,
		pdfParser,
		extractor,
		cfg.Storage.MaxFileSize,
	)
	searchHandler := handlers.NewSearchHandler(resumeRepo, matcher)
	selectionHandler := handlers.NewSelectionHandler(selection)
	clearHandler := handlers.NewClearHandler(resumeRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Matcher API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	routes := []route{
		{fiber.MethodGet, "/health", handleHealth},
		{fiber.MethodPost, "/upload", uploadHandler.HandleUpload},
		{fiber.MethodPost, "/selection", selectionHandler.HandleSelection},
		{fiber.MethodPost, "/search", searchHandler.HandleSearch},
		{fiber.MethodPost, "/skills/assist", selectionHandler.HandleSkillAssist},
		{fiber.MethodPost, "/clear", clearHandler.HandleClear},
	}

	for _, r := range routes {
		api.Add(r.Method, r.Path, r.Handler)
	}

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Matcher API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/upload",
				"POST /api/v1/selection",
				"POST /api/v1/search",
				"POST /api/v1/skills/assist",
				"POST /api/v1/clear",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now(),
	})
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
