package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prepnaija/prepnaija-backend/internal/config"
	"github.com/prepnaija/prepnaija-backend/internal/handler"
	"github.com/prepnaija/prepnaija-backend/internal/middleware"
	"github.com/prepnaija/prepnaija-backend/internal/model"
	"github.com/prepnaija/prepnaija-backend/internal/response"
	"github.com/prepnaija/prepnaija-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth      *handler.AuthHandler
	Catalog   *handler.CatalogHandler
	Session   *handler.SessionHandler
	Learner   *handler.LearnerHandler
	Subject   *handler.SubjectHandler
	Topic     *handler.TopicHandler
	ExamBoard *handler.ExamBoardHandler
	Passage   *handler.PassageHandler
	Question  *handler.QuestionHandler
	UserMgmt  *handler.UserManagementHandler
	AdminUser *handler.AdminUserHandler
	AdminRole *handler.AdminRoleHandler
	Setting   *handler.SettingHandler
	Media     *handler.MediaHandler
	Dashboard *handler.DashboardHandler
	System    *handler.SystemHandler
	WS        *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Serve uploaded media files statically with aggressive caching (1 year).
	uploadsGroup := router.Group("/uploads")
	uploadsGroup.Use(middleware.CacheControl(31536000))
	{
		uploadsGroup.Static("/", cfg.UploadDir)
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── 0. Public Group (No Auth) ─────────────────────────────────────
	publicAPI := router.Group("/api/v1")
	{
		publicAPI.GET("/settings", handlers.Catalog.PublicSettings)
		publicAPI.GET("/catalog/subjects", handlers.Catalog.ListSubjects)
		publicAPI.GET("/catalog/subjects/:id/topics", handlers.Catalog.ListTopics)
		publicAPI.GET("/catalog/exam-boards", handlers.Catalog.ListExamBoards)
	}

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)
		auth.POST("/guest", handlers.Auth.GuestToken)
		auth.POST("/admin/login", handlers.Auth.AdminLogin)

		// Authenticated profile routes
		auth.POST("/logout", middleware.RequireLearnerJWT(authService), handlers.Auth.Logout)
		auth.GET("/me", middleware.RequireUserJWT(authService), handlers.Auth.Me)
		auth.GET("/admin/me", middleware.RequireAdminJWT(authService), handlers.Auth.AdminMe)
	}

	// ─── 2. Session Group (Learner JWT: registered or guest) ───────────
	sessionAPI := router.Group("/api/v1/sessions")
	sessionAPI.Use(middleware.RequireLearnerJWT(authService))
	{
		sessionAPI.POST("", handlers.Session.Create)
		sessionAPI.GET("/:id", handlers.Session.Get)
		sessionAPI.POST("/:id/answers", handlers.Session.Answer)
		sessionAPI.POST("/:id/questions/:question_id/flag", handlers.Session.ToggleFlag)
		sessionAPI.GET("/:id/questions/:question_id/hint", handlers.Session.Hint)
		sessionAPI.GET("/:id/questions/:question_id/solution", handlers.Session.Solution)
		sessionAPI.GET("/:id/progress", handlers.Session.Progress)
		sessionAPI.POST("/:id/submit", handlers.Session.Submit)
		sessionAPI.POST("/:id/pause", handlers.Session.Pause)
		sessionAPI.POST("/:id/resume", handlers.Session.Resume)
		sessionAPI.POST("/:id/abandon", handlers.Session.Abandon)
	}

	// Session history is only meaningful for registered accounts.
	router.GET("/api/v1/me/sessions", middleware.RequireUserJWT(authService), handlers.Session.List)
	router.GET("/api/v1/me/dashboard", middleware.RequireUserJWT(authService), handlers.Learner.Dashboard)
	router.GET("/api/v1/guest/status", middleware.RequireLearnerJWT(authService), handlers.Learner.GuestStatus)

	// ─── 3. WebSocket Group (Learner WS Auth) ──────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireLearnerWSAuth(authService))
	{
		ws.GET("/sessions/:id/stream", handlers.WS.SessionStream)
	}

	// ─── 4. Admin Group (JWT + RBAC) ───────────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(middleware.RequireAdminJWT(authService))
	{
		// Media upload
		adminAPI.POST("/media/upload",
			middleware.RequirePermission(model.PermissionMediaUpload),
			handlers.Media.UploadMedia,
		)

		// Subjects
		subjectsGroup := adminAPI.Group("/subjects")
		{
			subjectsGroup.GET("", middleware.RequirePermission(model.PermissionCatalogRead), handlers.Subject.GetAll)
			subjectsGroup.POST("", middleware.RequirePermission(model.PermissionCatalogWrite), handlers.Subject.Create)
			subjectsGroup.PUT("/:id", middleware.RequirePermission(model.PermissionCatalogWrite), handlers.Subject.Update)
			subjectsGroup.DELETE("/:id", middleware.RequirePermission(model.PermissionCatalogWrite), handlers.Subject.Delete)
			subjectsGroup.GET("/:id/topics", middleware.RequirePermission(model.PermissionCatalogRead), handlers.Topic.ListBySubject)
			subjectsGroup.POST("/:id/topics", middleware.RequirePermission(model.PermissionCatalogWrite), handlers.Topic.Create)
		}

		// Topics
		topicsGroup := adminAPI.Group("/topics")
		{
			topicsGroup.PUT("/:id", middleware.RequirePermission(model.PermissionCatalogWrite), handlers.Topic.Update)
			topicsGroup.DELETE("/:id", middleware.RequirePermission(model.PermissionCatalogWrite), handlers.Topic.Delete)
			topicsGroup.GET("/:id/questions", middleware.RequirePermission(model.PermissionQuestionsRead), handlers.Question.ListByTopic)
			topicsGroup.POST("/:id/questions", middleware.RequirePermission(model.PermissionQuestionsWrite), handlers.Question.Create)
			topicsGroup.POST("/:id/questions/import", middleware.RequirePermission(model.PermissionQuestionsImport), handlers.Question.Import)
		}

		// Exam boards
		boardsGroup := adminAPI.Group("/exam-boards")
		{
			boardsGroup.GET("", middleware.RequirePermission(model.PermissionCatalogRead), handlers.ExamBoard.GetAll)
			boardsGroup.POST("", middleware.RequirePermission(model.PermissionCatalogWrite), handlers.ExamBoard.Create)
			boardsGroup.PUT("/:id", middleware.RequirePermission(model.PermissionCatalogWrite), handlers.ExamBoard.Update)
			boardsGroup.DELETE("/:id", middleware.RequirePermission(model.PermissionCatalogWrite), handlers.ExamBoard.Delete)
		}

		// Passages
		passagesGroup := adminAPI.Group("/passages")
		{
			passagesGroup.GET("", middleware.RequirePermission(model.PermissionCatalogRead), handlers.Passage.List)
			passagesGroup.GET("/:id", middleware.RequirePermission(model.PermissionCatalogRead), handlers.Passage.Get)
			passagesGroup.POST("", middleware.RequirePermission(model.PermissionCatalogWrite), handlers.Passage.Create)
			passagesGroup.PUT("/:id", middleware.RequirePermission(model.PermissionCatalogWrite), handlers.Passage.Update)
			passagesGroup.DELETE("/:id", middleware.RequirePermission(model.PermissionCatalogWrite), handlers.Passage.Delete)
		}

		// Question bank
		questionsGroup := adminAPI.Group("/questions")
		{
			questionsGroup.GET("/import-template", middleware.RequirePermission(model.PermissionQuestionsImport), handlers.Question.ImportTemplate)
			questionsGroup.GET("/:id", middleware.RequirePermission(model.PermissionQuestionsRead), handlers.Question.Get)
			questionsGroup.PUT("/:id", middleware.RequirePermission(model.PermissionQuestionsWrite), handlers.Question.Update)
			questionsGroup.DELETE("/:id", middleware.RequirePermission(model.PermissionQuestionsWrite), handlers.Question.Delete)
			questionsGroup.POST("/:id/publish", middleware.RequirePermission(model.PermissionQuestionsPublish), handlers.Question.Publish)
			questionsGroup.POST("/:id/archive", middleware.RequirePermission(model.PermissionQuestionsPublish), handlers.Question.Archive)
		}

		// Learner account management
		usersGroup := adminAPI.Group("/users")
		{
			usersGroup.GET("", middleware.RequirePermission(model.PermissionUsersRead), handlers.UserMgmt.List)
			usersGroup.GET("/:id", middleware.RequirePermission(model.PermissionUsersRead), handlers.UserMgmt.Get)
			usersGroup.POST("", middleware.RequirePermission(model.PermissionUsersWrite), handlers.UserMgmt.Create)
			usersGroup.PUT("/:id", middleware.RequirePermission(model.PermissionUsersWrite), handlers.UserMgmt.Update)
			usersGroup.DELETE("/:id", middleware.RequirePermission(model.PermissionUsersWrite), handlers.UserMgmt.Delete)
		}

		// Admin user management
		adminsGroup := adminAPI.Group("/admins")
		{
			adminsGroup.GET("", middleware.RequirePermission(model.PermissionAdminsRead), handlers.AdminUser.ListAdmins)
			adminsGroup.POST("", middleware.RequirePermission(model.PermissionAdminsWrite), handlers.AdminUser.CreateAdmin)
			adminsGroup.PUT("/:id", middleware.RequirePermission(model.PermissionAdminsWrite), handlers.AdminUser.UpdateAdmin)
			adminsGroup.DELETE("/:id", middleware.RequirePermission(model.PermissionAdminsWrite), handlers.AdminUser.DeleteAdmin)
		}

		// Role management
		adminAPI.GET("/permissions",
			middleware.RequirePermission(model.PermissionRolesRead),
			handlers.AdminRole.ListPermissions,
		)
		rolesGroup := adminAPI.Group("/roles")
		{
			rolesGroup.GET("", middleware.RequirePermission(model.PermissionRolesRead), handlers.AdminRole.ListRoles)
			rolesGroup.GET("/:id", middleware.RequirePermission(model.PermissionRolesRead), handlers.AdminRole.GetRole)
			rolesGroup.POST("", middleware.RequirePermission(model.PermissionRolesWrite), handlers.AdminRole.CreateRole)
			rolesGroup.PUT("/:id", middleware.RequirePermission(model.PermissionRolesWrite), handlers.AdminRole.UpdateRole)
			rolesGroup.DELETE("/:id", middleware.RequirePermission(model.PermissionRolesWrite), handlers.AdminRole.DeleteRole)
		}

		// App settings
		settingsGroup := adminAPI.Group("/settings")
		{
			settingsGroup.GET("", middleware.RequirePermission(model.PermissionSettingsRead), handlers.Setting.GetAllSettings)
			settingsGroup.PUT("", middleware.RequirePermission(model.PermissionSettingsWrite), handlers.Setting.UpdateSettings)
		}

		// Dashboard
		adminAPI.GET("/dashboard",
			handlers.Dashboard.GetDashboard, // Open to all admins
		)

		// System Monitoring
		adminAPI.GET("/system/metrics",
			handlers.System.SystemMetricsSSE, // Open to all admins
		)
	}

	return router
}
