package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Coursegate/config"
	"github.com/lshigami/Coursegate/database"
	_ "github.com/lshigami/Coursegate/docs" // Swagger docs - generated by swag
	adminctrl "github.com/lshigami/Coursegate/internal/controller/admin"
	instructorctrl "github.com/lshigami/Coursegate/internal/controller/instructor"
	userctrl "github.com/lshigami/Coursegate/internal/controller/user"
	"github.com/lshigami/Coursegate/internal/logger"
	"github.com/lshigami/Coursegate/internal/middleware"
	"github.com/lshigami/Coursegate/internal/model"
	"github.com/lshigami/Coursegate/internal/repository"
	"github.com/lshigami/Coursegate/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Coursegate Exam & Progress API
// @version 1.0
// @description Quiz submission with automatic grading, single-attempt enforcement and module progress tracking.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.NopLogger,

		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewRedisClient,       // nil when REDIS_ADDR is empty
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewQuizRepository,
			repository.NewQuestionRepository,
			NewAnswerRepository,
			repository.NewQuizAttemptRepository,
			repository.NewSubmittedAnswerRepository,
			repository.NewModuleProgressRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewAnswerResolver,
			service.NewGradingService,
			service.NewExamSubmissionService,
			service.NewModuleProgressService,
			service.NewAdminQuizService,
			service.NewUserQuizService,
			service.NewGeminiEssayReviewService,
		),

		// API Controllers Layer
		fx.Provide(
			userctrl.NewExamController,
			userctrl.NewQuizController,
			userctrl.NewModuleProgressController,
			adminctrl.NewAdminQuizController,
			instructorctrl.NewEssayReviewController,
		),

		fx.Invoke(func(cfg *config.Config) { logger.SetLevel(cfg.LogLevel) }),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Error during shutdown")
	}
}

// NewRedisClient returns nil when no address is configured; the answer cache is then skipped.
func NewRedisClient(lc fx.Lifecycle, cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		log.Info().Msg("REDIS_ADDR not set, answer cache disabled")
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				// Cache misses fall back to the database, so an unreachable redis is not fatal.
				log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis ping failed")
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return rdb.Close()
		},
	})
	return rdb
}

// NewAnswerRepository fronts the answer table with redis when a client is available.
func NewAnswerRepository(db *gorm.DB, rdb *redis.Client, cfg *config.Config) repository.AnswerRepository {
	base := repository.NewAnswerRepository(db)
	if rdb == nil {
		return base
	}
	return repository.NewCachedAnswerRepository(base, rdb, cfg.Redis.AnswerCacheTTL)
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.Server.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("request_id", middleware.RequestIDFromKeys(param.Keys)).
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI
	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	db *gorm.DB,
	examCtrl *userctrl.ExamController,
	quizCtrl *userctrl.QuizController,
	progressCtrl *userctrl.ModuleProgressController,
	adminQuizCtrl *adminctrl.AdminQuizController,
	reviewCtrl *instructorctrl.EssayReviewController,
) {
	router.GET("/healthz", func(ctx *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx.Request.Context())
		}
		if err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1", middleware.Authenticate(cfg.Auth.JWTSecret))
	anyRole := middleware.RequireRoles(middleware.RoleStudent, middleware.RoleInstructor, middleware.RoleAdmin)

	exam := api.Group("/exam", anyRole)
	{
		exam.POST("/submit", examCtrl.SubmitExam)
		exam.GET("/check-submission/:quiz_id", examCtrl.CheckSubmission)
		exam.GET("/result/:quiz_id", examCtrl.GetResult)
	}

	api.GET("/quizzes/:quiz_id", anyRole, quizCtrl.GetQuiz)

	progress := api.Group("/module-progress", anyRole)
	{
		progress.POST("/content/:module_id", progressCtrl.UpdateContent)
		progress.POST("/video/:module_id", progressCtrl.UpdateVideo)
		progress.POST("/test/:module_id", progressCtrl.UpdateTest)
		progress.GET("/test-unlock/:module_id", progressCtrl.TestUnlock)
		progress.GET("/completed/:module_id", progressCtrl.Completed)
		progress.GET("/course/:course_id", progressCtrl.CourseProgress)
	}

	admin := api.Group("/admin", middleware.RequireRoles(middleware.RoleAdmin))
	{
		admin.POST("/quizzes", adminQuizCtrl.CreateQuiz)
		admin.PATCH("/quizzes/:quiz_id/publish", adminQuizCtrl.PublishQuiz)
	}

	instructor := api.Group("/instructor", middleware.RequireRoles(middleware.RoleInstructor, middleware.RoleAdmin))
	{
		instructor.GET("/submitted-answers/:answer_id/ai-review", reviewCtrl.SuggestFeedback)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Coursegate API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Quiz{},
		&model.Question{},
		&model.Answer{},
		&model.Module{},
		&model.QuizAttempt{},
		&model.SubmittedAnswer{},
		&model.ModuleProgress{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
