package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/quiz-api/internal/config"
	"github.com/yourusername/quiz-api/internal/handler"
	"github.com/yourusername/quiz-api/internal/middleware"
	pgRepo "github.com/yourusername/quiz-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/quiz-api/internal/repository/redis"
	"github.com/yourusername/quiz-api/internal/service"
	"github.com/yourusername/quiz-api/pkg/auth"
	"github.com/yourusername/quiz-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к Redis с использованием унифицированной конфигурации
	redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	log.Println("Successfully connected to Redis")

	// Инициализируем репозитории
	questionRepo := pgRepo.NewQuestionRepo(db)
	categoryRepo := pgRepo.NewCategoryRepo(db)
	attemptRepo := pgRepo.NewAttemptRepo(db)
	reportRepo := pgRepo.NewReportRepo(db)
	adminRepo := pgRepo.NewAdminRepo(db)

	cacheRepo, err := redisRepo.NewCacheRepo(redisClient)
	if err != nil {
		log.Printf("Failed to initialize CacheRepo: %v", err)
		os.Exit(1)
	}

	// Инициализируем JWT сервис для администраторов
	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs)
	if err != nil {
		log.Printf("Failed to initialize JWTService: %v", err)
		os.Exit(1)
	}

	// Инициализируем сервис почтовых уведомлений.
	// Без API-ключа уведомления о жалобах отключены.
	var emailService service.EmailService
	if cfg.Email.ResendAPIKey != "" {
		emailService, err = service.NewResendEmailService(cfg.Email.ResendAPIKey, cfg.Email.From)
		if err != nil {
			log.Printf("Failed to initialize ResendEmailService: %v", err)
			os.Exit(1)
		}
		log.Println("Email notifications enabled (Resend)")
	} else {
		emailService = &service.NoopEmailService{}
		log.Println("Email notifications disabled: RESEND_API_KEY is not set")
	}

	// Инициализируем сервисы
	assemblerService := service.NewAssemblerService(questionRepo, cacheRepo, cfg.Quiz.TargetSize)
	attemptService := service.NewAttemptService(attemptRepo)
	categoryService := service.NewCategoryService(categoryRepo, assemblerService)
	questionService := service.NewQuestionService(questionRepo, categoryRepo, assemblerService)
	reportService := service.NewReportService(reportRepo, questionRepo, emailService, cfg.Email.NotifyEmail)
	authService := service.NewAuthService(adminRepo, jwtService)

	// Инициализируем обработчики
	quizHandler := handler.NewQuizHandler(assemblerService, attemptService)
	questionHandler := handler.NewQuestionHandler(questionService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	reportHandler := handler.NewReportHandler(reportService)
	authHandler := handler.NewAuthHandler(authService)

	// Инициализируем middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	rateLimiter := middleware.NewRateLimiter(redisClient)

	// Инициализируем роутер Gin
	router := gin.Default()
	router.Use(middleware.RequestID())

	isProduction := gin.Mode() == gin.ReleaseMode

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	// В production (GIN_MODE=release): не доверяем прокси (защита от IP spoofing)
	// В development: доверяем localhost
	if isProduction {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:8000", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Настраиваем маршруты API
	api := router.Group("/api")
	{
		quiz := api.Group("/quiz")
		{
			quiz.GET("/test", quizHandler.GetTest)
			quiz.POST("/test", rateLimiter.Limit(middleware.SubmitRateLimitConfig()), quizHandler.SubmitTest)
			quiz.GET("/attempts", quizHandler.GetAttempts)
			quiz.GET("/category", categoryHandler.GetCategories)

			// Маршруты администратора банка вопросов
			adminQuiz := quiz.Group("")
			adminQuiz.Use(authMiddleware.RequireAdmin())
			{
				adminQuiz.GET("/questions", questionHandler.GetQuestions)
				adminQuiz.POST("/questions", questionHandler.CreateQuestion)
				adminQuiz.POST("/category", categoryHandler.CreateCategory)

				questionWithID := adminQuiz.Group("/questions/:id")
				questionWithID.Use(middleware.ExtractUintParam("id", "questionID"))
				{
					questionWithID.PUT("", questionHandler.UpdateQuestion)
					questionWithID.DELETE("", questionHandler.DeleteQuestion)
				}

				categoryWithID := adminQuiz.Group("/category/:id")
				categoryWithID.Use(middleware.ExtractUintParam("id", "categoryID"))
				{
					categoryWithID.PUT("", categoryHandler.UpdateCategory)
					categoryWithID.DELETE("", categoryHandler.DeleteCategory)
				}
			}
		}

		// Жалобы на вопросы
		api.POST("/report-question", rateLimiter.Limit(middleware.ReportRateLimitConfig()), reportHandler.SubmitReport)

		// Администрирование
		admin := api.Group("/admin")
		{
			admin.POST("/login", rateLimiter.Limit(middleware.LoginRateLimitConfig()), authHandler.Login)

			authedAdmin := admin.Group("")
			authedAdmin.Use(authMiddleware.RequireAdmin())
			{
				authedAdmin.GET("/attempts/export", quizHandler.ExportAttempts)
				authedAdmin.GET("/reports", reportHandler.GetReports)
			}
		}
	}

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Server started on port %s", cfg.Server.Port)

	// Ждем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Создаем контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Server exited properly")
}
