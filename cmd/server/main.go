package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prepnaija/prepnaija-backend/internal/config"
	"github.com/prepnaija/prepnaija-backend/internal/database"
	"github.com/prepnaija/prepnaija-backend/internal/guest"
	"github.com/prepnaija/prepnaija-backend/internal/handler"
	"github.com/prepnaija/prepnaija-backend/internal/logger"
	"github.com/prepnaija/prepnaija-backend/internal/model"
	"github.com/prepnaija/prepnaija-backend/internal/planner"
	"github.com/prepnaija/prepnaija-backend/internal/repository"
	"github.com/prepnaija/prepnaija-backend/internal/router"
	"github.com/prepnaija/prepnaija-backend/internal/service"
	"github.com/prepnaija/prepnaija-backend/internal/validator"
	"github.com/prepnaija/prepnaija-backend/internal/worker"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting PrepNaija Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	userRepo := repository.NewUserRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)
	roleRepo := repository.NewRoleRepository(pool)
	subjectRepo := repository.NewSubjectRepository(pool)
	topicRepo := repository.NewTopicRepository(pool)
	boardRepo := repository.NewExamBoardRepository(pool)
	passageRepo := repository.NewPassageRepository(pool)
	questionRepo := repository.NewQuestionRepository(pool)
	sessionRepo := repository.NewSessionRepository(pool)
	answerRepo := repository.NewAnswerRepository(pool)
	progressRepo := repository.NewProgressRepository(pool)
	settingRepo := repository.NewSettingRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, rdb)
	settingService := service.NewSettingService(settingRepo, log)
	userService := service.NewUserService(userRepo, settingService, authService, log)
	adminService := service.NewAdminService(adminRepo, roleRepo)
	adminUserService := service.NewAdminUserService(adminRepo, roleRepo, authService, log)
	adminRoleService := service.NewAdminRoleService(roleRepo)
	subjectService := service.NewSubjectService(subjectRepo, log)
	topicService := service.NewTopicService(topicRepo, log)
	boardService := service.NewExamBoardService(boardRepo, log)
	passageService := service.NewPassageService(passageRepo, log)
	questionService := service.NewQuestionService(questionRepo, topicRepo, log)
	importService := service.NewImportService(questionRepo, topicRepo, log)
	mediaService := service.NewMediaService(cfg)
	dashboardService := service.NewDashboardService(dashboardRepo)

	// The free-trial ceiling is an app setting with a config fallback, read
	// on every check so admin updates apply without a restart.
	gate := guest.NewGate(guest.NewRedisCounterStore(rdb), func(ctx context.Context) int {
		return settingService.GetIntSetting(ctx, model.SettingGuestQuestionLimit, cfg.GuestQuestionLimit)
	})

	tracker := service.NewAnswerTracker(rdb)
	paperPlanner := planner.New(questionRepo, log)
	sessionService := service.NewSessionService(
		sessionRepo, questionRepo, answerRepo,
		subjectRepo, topicRepo, passageRepo, progressRepo,
		paperPlanner, gate, tracker, rdb, log,
	)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:      handler.NewAuthHandler(authService, userService, adminService, gate),
		Catalog:   handler.NewCatalogHandler(subjectService, topicService, boardService, settingService),
		Session:   handler.NewSessionHandler(sessionService),
		Learner:   handler.NewLearnerHandler(sessionService, gate),
		Subject:   handler.NewSubjectHandler(subjectService),
		Topic:     handler.NewTopicHandler(topicService, subjectService),
		ExamBoard: handler.NewExamBoardHandler(boardService),
		Passage:   handler.NewPassageHandler(passageService),
		Question:  handler.NewQuestionHandler(questionService, importService),
		UserMgmt:  handler.NewUserManagementHandler(userService),
		AdminUser: handler.NewAdminUserHandler(adminUserService),
		AdminRole: handler.NewAdminRoleHandler(adminRoleService),
		Setting:   handler.NewSettingHandler(settingService),
		Media:     handler.NewMediaHandler(mediaService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		System:    handler.NewSystemHandler(rdb, log),
		WS:        handler.NewWSHandler(sessionService, log, cfg.AllowedOrigins),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	orderWorker := worker.NewOrderWorker(sessionRepo, rdb, log)
	activityWorker := worker.NewActivityWorker(sessionRepo, answerRepo, rdb, log)
	progressWorker := worker.NewProgressWorker(progressRepo, rdb, log)

	go orderWorker.Start(workerCtx)
	go activityWorker.Start(workerCtx)
	go progressWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop background workers and wait for queues to drain.
	workerCancel()
	time.Sleep(2 * time.Second) // Allow workers to drain.

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
