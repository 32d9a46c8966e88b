package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"HSP-PORTAL/internal"
	"HSP-PORTAL/internal/config"
	"HSP-PORTAL/internal/handlers"
	"HSP-PORTAL/internal/services"
	"HSP-PORTAL/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	if err := internal.InitDB(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize storage client based on configuration
	ctx := context.Background()
	log.Printf("Initializing %s storage", cfg.Storage.Type)
	storageClient, err := storage.NewStorageClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage client: %v", err)
	}
	defer storageClient.Close()

	// The local file server below needs the concrete local client
	localStorageClient, _ := storageClient.(*storage.LocalStorageClient)

	// Initialize PDF service with configurable timeout
	pdfService, err := services.NewPDFService(cfg.Gotenberg.URL, cfg.Gotenberg.Timeout)
	if err != nil {
		log.Fatalf("Failed to initialize PDF service: %v", err)
	}
	log.Printf("PDF service initialized with URL: %s, timeout: %s", cfg.Gotenberg.URL, cfg.Gotenberg.Timeout)

	// Initialize services
	statisticsService := services.NewStatisticsService()
	activityLogService := services.NewActivityLogService()
	departmentService := services.NewDepartmentService()
	memberService := services.NewMemberService(storageClient)
	exportService := services.NewExportService(memberService, statisticsService)
	applicationService := services.NewApplicationService(statisticsService)
	renewalService := services.NewContractRenewalService()
	templateService := services.NewTemplateService(storageClient)
	documentService := services.NewDocumentService(storageClient, applicationService, templateService, pdfService, statisticsService)

	// Initialize handlers
	memberHandler := handlers.NewMemberHandler(memberService, exportService)
	departmentHandler := handlers.NewDepartmentHandler(departmentService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, documentService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	renewalHandler := handlers.NewContractRenewalHandler(renewalService)
	templateHandler := handlers.NewTemplateHandler(templateService)
	optionsHandler := handlers.NewOptionsHandler()
	logsHandler := handlers.NewActivityLogHandler(activityLogService)
	statsHandler := handlers.NewStatisticsHandler(statisticsService)

	// Initialize Gin router
	r := gin.Default()

	// CORS for the form and admin frontends
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// Activity logging middleware
	r.Use(activityLogService.LoggingMiddleware())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"storage":   cfg.Storage.Type,
		})
	})

	// Local file server endpoint (only for local storage with public URL configured)
	// For internal-only deployments, files are served via signed download endpoints
	if localStorageClient != nil && cfg.Storage.LocalURL != "" && cfg.Storage.LocalURL != "internal://storage" {
		r.GET("/files/*filepath", func(c *gin.Context) {
			filePath := c.Param("filepath")
			if filePath == "" || filePath == "/" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "file path required"})
				return
			}

			// Remove leading slash
			if filePath[0] == '/' {
				filePath = filePath[1:]
			}

			// Security: Reject path traversal attempts
			cleanPath := filepath.Clean(filePath)
			if strings.Contains(cleanPath, "..") || strings.HasPrefix(cleanPath, "/") || strings.HasPrefix(cleanPath, "\\") {
				c.JSON(http.StatusForbidden, gin.H{"error": "invalid file path"})
				return
			}

			// Security: Always require signed URLs for file access
			expiresStr := c.Query("expires")
			signature := c.Query("signature")

			if signature == "" || expiresStr == "" {
				c.JSON(http.StatusForbidden, gin.H{"error": "signed URL required"})
				return
			}

			var expiresAt int64
			if _, err := fmt.Sscanf(expiresStr, "%d", &expiresAt); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expires parameter"})
				return
			}

			if !localStorageClient.VerifySignedURL(cleanPath, expiresAt, signature) {
				c.JSON(http.StatusForbidden, gin.H{"error": "invalid or expired signature"})
				return
			}

			// Security: Verify the resolved path is within storage directory
			fullPath := localStorageClient.GetFilePath(cleanPath)
			absPath, err := filepath.Abs(fullPath)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve path"})
				return
			}
			basePath, err := filepath.Abs(localStorageClient.GetBasePath())
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve base path"})
				return
			}
			if !strings.HasPrefix(absPath, basePath+string(filepath.Separator)) {
				c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
				return
			}

			c.File(fullPath)
		})
		log.Printf("Local file server enabled at /files/*")
	} else if localStorageClient != nil {
		log.Printf("Local storage in internal-only mode - files served via download endpoints")
	}

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		// Staff members (admin console)
		v1.POST("/members", memberHandler.Create)
		v1.GET("/members", memberHandler.List)
		v1.GET("/members/export", memberHandler.Export)
		v1.GET("/members/:id", memberHandler.Get)
		v1.PUT("/members/:id", memberHandler.Update)
		v1.DELETE("/members/:id", memberHandler.Delete)
		v1.POST("/members/:id/profile-image", memberHandler.UploadProfileImage)
		v1.GET("/members/:id/contract-renewals", renewalHandler.ListByMember)

		// Hospital departments and public job listings
		v1.POST("/departments", departmentHandler.Create)
		v1.GET("/departments", departmentHandler.List)
		v1.GET("/departments/:id", departmentHandler.Get)
		v1.PUT("/departments/:id", departmentHandler.Update)
		v1.DELETE("/departments/:id", departmentHandler.Delete)

		// Job applications (multi-tab form)
		v1.POST("/applications", applicationHandler.Submit)
		v1.GET("/applications", applicationHandler.List)
		v1.GET("/applications/:id", applicationHandler.Get)
		v1.PATCH("/applications/:id/status", applicationHandler.UpdateStatus)
		v1.DELETE("/applications/:id", applicationHandler.Delete)

		// Official document generation
		v1.POST("/applications/:id/documents", applicationHandler.GenerateDocument)
		v1.GET("/applications/:id/documents", applicationHandler.ListDocuments)
		v1.GET("/documents/:id", documentHandler.Get)
		v1.GET("/documents/:id/download", documentHandler.Download)
		v1.POST("/documents/:id/regenerate", documentHandler.Regenerate)
		v1.DELETE("/documents/:id", documentHandler.Delete)

		// Contract renewals
		v1.POST("/contract-renewals", renewalHandler.Create)
		v1.GET("/contract-renewals/expiring", renewalHandler.ListExpiring)
		v1.GET("/contract-renewals/:id", renewalHandler.Get)
		v1.PATCH("/contract-renewals/:id/decision", renewalHandler.Decide)

		// Document templates
		v1.POST("/templates", templateHandler.Upload)
		v1.GET("/templates", templateHandler.List)
		v1.GET("/templates/:id", templateHandler.Get)
		v1.PUT("/templates/:id", templateHandler.Update)
		v1.DELETE("/templates/:id", templateHandler.Delete)
		v1.GET("/templates/:id/download", templateHandler.Download)

		// Form option lists for the application UI
		v1.GET("/form-options", optionsHandler.GetFormOptions)

		// Activity logs and statistics
		v1.GET("/logs", logsHandler.GetLogs)
		v1.GET("/stats/summary", statsHandler.GetSummary)
		v1.GET("/stats/trends", statsHandler.GetTrends)
	}

	// Create HTTP server with increased timeouts for document processing
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 150 * time.Second, // PDF conversion can be slow
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on port %s (environment: %s)", cfg.Server.Port, cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Give outstanding requests a deadline for completion
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := internal.CloseDB(); err != nil {
		log.Printf("Error closing database: %v", err)
	}

	if err := pdfService.Close(); err != nil {
		log.Printf("Error closing PDF service: %v", err)
	}

	log.Println("Server exited")
}
