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

	"nilanjanc/ai-interviewer/internal/config"
	"nilanjanc/ai-interviewer/internal/handlers"
	"nilanjanc/ai-interviewer/internal/repositories"
	"nilanjanc/ai-interviewer/internal/services"
)

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
	jobRepo := repositories.NewJobRepository(db)
	docRepo := repositories.NewDocumentRepository(db)
	resultRepo := repositories.NewResultRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	extractor := services.NewDocumentExtractor()
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize assessment pipeline
	assessor := services.NewAssessmentService(
		extractor,
		geminiService,
		cfg.Gemini.Timeout,
	)
	log.Println("✅ Assessment service initialized")

	// Initialize handlers
	quizHandler := handlers.NewQuizHandler(
		jobRepo,
		docRepo,
		storageService,
		assessor,
		cfg.Storage.MaxFileSize,
	)
	jobHandler := handlers.NewJobHandler(jobRepo)
	resultHandler := handlers.NewResultHandler(resultRepo, jobRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI Interview Quiz API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
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

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/quiz", quizHandler.HandleGenerateQuiz)

	api.Post("/jobs", jobHandler.HandleCreateJob)
	api.Get("/jobs", jobHandler.HandleListJobs)
	api.Get("/jobs/:id", jobHandler.HandleGetJob)
	api.Put("/jobs/:id", jobHandler.HandleUpdateJob)
	api.Delete("/jobs/:id", jobHandler.HandleDeleteJob)

	api.Post("/results", resultHandler.HandleSaveResult)
	api.Get("/jobs/:id/results", resultHandler.HandleListResults)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Interview Quiz API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/quiz",
				"POST /api/v1/jobs",
				"GET /api/v1/jobs",
				"GET /api/v1/jobs/:id",
				"PUT /api/v1/jobs/:id",
				"DELETE /api/v1/jobs/:id",
				"POST /api/v1/results",
				"GET /api/v1/jobs/:id/results",
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
