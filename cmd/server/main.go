package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"secure_vault/internal/config"
	"secure_vault/internal/handler"
	"secure_vault/internal/middleware"
	"secure_vault/internal/repository"
	"secure_vault/internal/service"
	"secure_vault/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("Failed to load DB config: %v", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		log.Fatalf("JWT_SECRET_KEY not set in environment")
	}
	tokenTTLStr := os.Getenv("TOKEN_TTL_HOURS")
	tokenTTLHours, err := strconv.ParseInt(tokenTTLStr, 10, 64)
	if err != nil {
		// Sessions live for 7 days unless configured otherwise
		log.Printf("Invalid or missing TOKEN_TTL_HOURS, defaulting to 168: %v", err)
		tokenTTLHours = 168
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "uploads" // Default uploads directory
	}
	if err := os.MkdirAll(uploadsDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create uploads directory %s: %v", uploadsDir, err)
	}
	log.Printf("Uploads will be stored in: %s", uploadsDir)

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(dbCfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(jwtSecret, tokenTTLHours)

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	fileRepo := repository.NewFileRepository(dbPool)
	noteRepo := repository.NewNoteRepository(dbPool)
	textRepo := repository.NewTextRepository(dbPool)
	statsRepo := repository.NewStatsRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, jwtUtil)
	fileService := service.NewFileService(fileRepo, uploadsDir)
	noteService := service.NewNoteService(noteRepo)
	textService := service.NewTextService(textRepo)
	userService := service.NewUserService(userRepo)
	analyticsService := service.NewAnalyticsService(statsRepo)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	fileHandler := handler.NewFileHandler(fileService)
	noteHandler := handler.NewNoteHandler(noteService)
	textHandler := handler.NewTextHandler(textService)
	userHandler := handler.NewUserHandler(userService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)

	// --- Setup Gin Router ---
	router := gin.Default()

	// Simple CORS middleware (allow all for development)
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// --- Initialize Middlewares ---
	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)

	// --- Register Routes ---
	apiGroup := router.Group("/api")
	apiGroup.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Secure Auth API Server"})
	})
	authHandler.RegisterAuthRoutes(apiGroup)
	fileHandler.RegisterFileRoutes(apiGroup, jwtAuthMW)
	noteHandler.RegisterSnippetRoutes(apiGroup, "/notes", jwtAuthMW)
	textHandler.RegisterSnippetRoutes(apiGroup, "/texts", jwtAuthMW)
	userHandler.RegisterUserRoutes(apiGroup, jwtAuthMW)
	analyticsHandler.RegisterAnalyticsRoutes(apiGroup, jwtAuthMW)

	// Uploaded files are served directly; their URLs are what the file
	// metadata records point at.
	router.Static("/uploads", uploadsDir)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(context.Background()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + serverPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
