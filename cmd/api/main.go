package main

import (
	"context"
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

	"ai-resume-analyzer/internal/config"
	"ai-resume-analyzer/internal/handlers"
	"ai-resume-analyzer/internal/repositories"
	"ai-resume-analyzer/internal/services"
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
	docRepo := repositories.NewDocumentRepository(db)
	analysisRepo := repositories.NewAnalysisRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	extractor := services.NewDocumentExtractor()
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.EmbedModel,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize the similarity engine. The service cannot score anything
	// without the embedding model, so a failed warmup aborts startup.
	engine := services.InitSimilarityEngine(geminiService)

	warmupCtx, cancelWarmup := context.WithTimeout(context.Background(), 30*time.Second)
	if err := engine.Warmup(warmupCtx); err != nil {
		cancelWarmup()
		log.Fatalf("❌ Failed to warm up similarity engine: %v", err)
	}
	cancelWarmup()
	log.Println("✅ Similarity engine ready")

	// Initialize resume index
	resumeIndex, err := services.NewResumeIndexService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize resume index: %v", err)
	}

	if err := resumeIndex.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize resume index collection: %v", err)
	}
	log.Println("✅ Resume index initialized successfully")

	// Initialize LLM-backed services and the analyzer
	skillService := services.NewSkillExtractionService(
		geminiService,
		cfg.Analyzer.LLMTimeout,
		cfg.Analyzer.RetryMaxAttempts,
	)
	assessorService := services.NewQualityAssessorService(
		geminiService,
		cfg.Analyzer.LLMTimeout,
		cfg.Analyzer.RetryMaxAttempts,
	)
	feedbackService := services.NewFeedbackService(
		geminiService,
		cfg.Analyzer.LLMTimeout,
		cfg.Analyzer.RetryMaxAttempts,
	)

	analyzerService := services.NewAnalyzerService(
		engine,
		skillService,
		assessorService,
		feedbackService,
	)
	log.Println("✅ Analyzer service initialized")

	// Initialize index worker
	indexWorker := services.NewIndexWorker(
		engine,
		resumeIndex,
		cfg.Worker.Concurrency,
	)

	ctx := context.Background()
	indexWorker.Start(ctx)
	log.Println("✅ Index worker started successfully")

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(
		docRepo,
		analysisRepo,
		storageService,
		extractor,
		analyzerService,
		indexWorker,
		cfg.Storage.MaxFileSize,
	)
	feedbackHandler := handlers.NewFeedbackHandler(
		storageService,
		extractor,
		skillService,
		feedbackService,
		cfg.Storage.MaxFileSize,
	)
	analysisHandler := handlers.NewAnalysisHandler(
		analysisRepo,
		docRepo,
		extractor,
		engine,
		resumeIndex,
	)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI Resume Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
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

	// Health check reports whether the embedding model is loaded
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":      "healthy",
			"model_ready": engine.Ready(),
			"message":     "Service is running",
		})
	})

	// API endpoints
	api.Post("/analyze_resume", analyzeHandler.HandleAnalyzeResume)
	api.Post("/optimize-skills", feedbackHandler.HandleOptimizeSkills)
	api.Post("/optimize_structure_feedback", feedbackHandler.HandleStructureFeedback)
	api.Post("/optimize_content_feedback", feedbackHandler.HandleContentFeedback)
	api.Post("/optimize_tone_style_feedback", feedbackHandler.HandleToneStyleFeedback)
	api.Get("/analyses/:id", analysisHandler.HandleGetAnalysis)
	api.Get("/analyses/:id/similar", analysisHandler.HandleFindSimilar)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Resume Analyzer API is running successfully",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/analyze_resume",
				"POST /api/v1/optimize-skills",
				"POST /api/v1/optimize_structure_feedback",
				"POST /api/v1/optimize_content_feedback",
				"POST /api/v1/optimize_tone_style_feedback",
				"GET /api/v1/analyses/:id",
				"GET /api/v1/analyses/:id/similar",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		indexWorker.Stop()
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
